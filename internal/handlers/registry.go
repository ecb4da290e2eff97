package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	ListingHandler   *ListingHandler
	LogisticsHandler *LogisticsHandler
	AnalyticsHandler *AnalyticsHandler
}
