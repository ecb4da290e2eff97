package handlers

import (
	"net/http"

	"foodshare_backend/internal/dto"
	"foodshare_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	*BaseHandler
	listingService services.ListingService
}

func NewListingHandler(base *BaseHandler, listingService services.ListingService) *ListingHandler {
	return &ListingHandler{
		BaseHandler:    base,
		listingService: listingService,
	}
}

func (h *ListingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	listings := rg.Group("/listings")
	{
		listings.POST("", h.CreateListing)
		listings.GET("", h.ListListings)
		listings.GET("/:listingId", h.GetListing)
		listings.POST("/:listingId/claim", h.ClaimListing)
	}
}

func (h *ListingHandler) CreateListing(c *gin.Context) {
	var req dto.CreateListingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	listing, err := h.listingService.CreateListing(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, listing)
}

func (h *ListingHandler) ListListings(c *gin.Context) {
	db := h.GetDB(c)

	listings, err := h.listingService.ListListings(db, c.Query("status"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, listings)
}

func (h *ListingHandler) GetListing(c *gin.Context) {
	db := h.GetDB(c)

	listing, err := h.listingService.GetListing(db, c.Param("listingId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

func (h *ListingHandler) ClaimListing(c *gin.Context) {
	var req dto.ClaimRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.listingService.ClaimListing(db, c.Param("listingId"), req.RecipientID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
