package routes

import (
	"capi-onboarding-backend/internal/api/handlers"
	"capi-onboarding-backend/internal/api/middleware"
	"capi-onboarding-backend/internal/auth"
	"capi-onboarding-backend/internal/catalog"
	"capi-onboarding-backend/internal/config"
	"capi-onboarding-backend/internal/logger"
	"capi-onboarding-backend/internal/metrics"
	"capi-onboarding-backend/internal/repository"
	"capi-onboarding-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options carries optional collaborators of the router
type Options struct {
	// TipRand picks a random index below n; nil uses math/rand
	TipRand func(n int) int
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(store *repository.Store, cat *catalog.Catalog, cfg *config.Config, opts *Options) (*gin.Engine, error) {
	if opts == nil {
		opts = &Options{}
	}

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorDetail(cfg))
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics())
	}

	validator := service.NewValidator()

	// Initialize services
	progressService := service.NewProgressService(store, cat, validator)
	clientService := service.NewClientService(store, cat, validator)
	noteService := service.NewNoteService(store.Notes, validator)
	tipService := service.NewTipService(cat, opts.TipRand)

	// Initialize auth. With AUTH_ENABLED every /api route except health needs a
	// bearer token; otherwise a valid token is still read to attribute changes.
	var authGuard gin.HandlerFunc
	if cfg.AuthEnabled || cfg.JWTSecret != "" {
		authService, err := auth.NewAuthService(cfg.JWTSecret)
		if err != nil {
			return nil, err
		}
		authMiddleware := auth.NewAuthMiddleware(authService)
		if cfg.AuthEnabled {
			authGuard = authMiddleware.RequireAuth()
		} else {
			authGuard = authMiddleware.OptionalAuth()
		}
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(store)
	clientHandler := handlers.NewClientHandler(clientService)
	progressHandler := handlers.NewProgressHandler(progressService)
	noteHandler := handlers.NewNoteHandler(noteService)
	catalogHandler := handlers.NewCatalogHandler(cat)
	tipHandler := handlers.NewTipHandler(tipService)

	if cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	// Swagger documentation route
	if !cfg.IsProduction() {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.Health)
		api.GET("/health/live", healthHandler.Live)

		if authGuard != nil {
			api.Use(authGuard)
		}

		clients := api.Group("/clients")
		{
			clients.GET("", clientHandler.ListClients)
			clients.POST("", clientHandler.CreateClient)
			clients.GET("/:id", clientHandler.GetClient)
			clients.PUT("/:id", clientHandler.UpdateClient)
			clients.DELETE("/:id", clientHandler.DeleteClient)
			clients.POST("/:id/platforms", clientHandler.AddPlatform)
			clients.DELETE("/:id/platforms/:platform", clientHandler.RemovePlatform)
		}

		progress := api.Group("/progress")
		{
			progress.GET("/:clientId", progressHandler.GetClientProgress)
			progress.GET("/:clientId/:platform", progressHandler.GetPlatformProgress)
			progress.POST("/:clientId/:platform/:stepId", progressHandler.MarkStepComplete)
			progress.DELETE("/:clientId/:platform/:stepId", progressHandler.UnmarkStep)
			progress.GET("/:clientId/:platform/:stepId/items", progressHandler.GetChecklistProgress)
			progress.POST("/:clientId/:platform/:stepId/items/:itemIndex", progressHandler.MarkChecklistItemComplete)
			progress.DELETE("/:clientId/:platform/:stepId/items/:itemIndex", progressHandler.UnmarkChecklistItem)
		}

		notes := api.Group("/notes")
		{
			notes.GET("/:clientId/:platform/:stepId", noteHandler.GetNotes)
			notes.POST("/:clientId/:platform/:stepId", noteHandler.SaveNote)
			notes.DELETE("/:clientId/:platform/:stepId", noteHandler.DeleteNote)
		}

		catalogRoutes := api.Group("/catalog")
		{
			catalogRoutes.GET("/platforms", catalogHandler.ListPlatforms)
			catalogRoutes.GET("/phases", catalogHandler.ListPhases)
			catalogRoutes.GET("/steps", catalogHandler.ListSteps)
		}

		docs := api.Group("/docs")
		{
			docs.GET("", catalogHandler.DocStructure)
			docs.GET("/content/:stepId", catalogHandler.ChecklistContent)
		}

		api.POST("/tips/next", tipHandler.NextTip)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(handlers.NotFound)

	logger.New().WithFields(map[string]interface{}{
		"store":   store.Driver,
		"auth":    cfg.AuthEnabled,
		"metrics": cfg.MetricsEnabled,
	}).Info("Routes configured")

	return router, nil
}
