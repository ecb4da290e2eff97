package services

// ServiceContainer holds every service the handlers depend on.
type ServiceContainer struct {
	AuthService      AuthService
	ListingService   ListingService
	LogisticsService LogisticsService
	AnalyticsService AnalyticsService
}
