package handlers

import (
	"net/http"

	"foodshare_backend/internal/dto"
	"foodshare_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type LogisticsHandler struct {
	*BaseHandler
	logisticsService services.LogisticsService
}

func NewLogisticsHandler(base *BaseHandler, logisticsService services.LogisticsService) *LogisticsHandler {
	return &LogisticsHandler{
		BaseHandler:      base,
		logisticsService: logisticsService,
	}
}

func (h *LogisticsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tasks := rg.Group("/logistics/tasks")
	{
		tasks.POST("", h.CreateTask)
		tasks.POST("/:taskId/complete", h.CompleteTask)
	}
}

func (h *LogisticsHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	task, err := h.logisticsService.CreatePickupTask(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Pickup task scheduled",
		"task":    task,
	})
}

func (h *LogisticsHandler) CompleteTask(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.logisticsService.CompleteTask(db, c.Param("taskId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Pickup task marked as completed",
	})
}
