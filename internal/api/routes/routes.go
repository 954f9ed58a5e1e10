package routes

import (
	"projextpal-backend/internal/api/handlers"
	"projextpal-backend/internal/api/middleware"
	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/cache"
	"projextpal-backend/internal/config"
	"projextpal-backend/internal/mailer"
	"projextpal-backend/internal/notify"
	"projextpal-backend/internal/repository"
	"projextpal-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, cacheClient *cache.Client, hub *notify.Hub) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	portfolioRepo := repository.NewPortfolioRepository(db)
	programmeRepo := repository.NewProgrammeRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	dependencyRepo := repository.NewDependencyRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	milestoneRepo := repository.NewMilestoneRepository(db)
	scrumRepo := repository.NewScrumRepository(db)
	kanbanRepo := repository.NewKanbanRepository(db)
	prince2Repo := repository.NewPrince2Repository(db)
	programmeArtifactRepo := repository.NewProgrammeArtifactRepository(db)
	safeRepo := repository.NewSAFeRepository(db)
	lssRepo := repository.NewLSSRepository(db)
	hybridRepo := repository.NewHybridRepository(db)

	// Initialize auth and shared collaborators
	authService := auth.NewService(cfg.JWTSecret, cfg.JWTExpiryHours)
	authMiddleware := auth.NewMiddleware(authService)
	auditor := service.NewAuditor(auditRepo)
	mail := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom)

	// Initialize services. The notification hub doubles as the domain
	// event publisher so state changes reach connected clients.
	accountService := service.NewAccountService(userRepo, tokenRepo, companyRepo, authService, mail, auditor)
	catalogService := service.NewCatalogService(cacheClient)
	auditService := service.NewAuditService(auditRepo)
	portfolioService := service.NewPortfolioService(portfolioRepo, auditor, hub)
	programmeService := service.NewProgrammeService(programmeRepo, auditor, hub)
	projectService := service.NewProjectService(projectRepo, portfolioRepo, programmeRepo, auditor, hub)
	dependencyService := service.NewDependencyService(dependencyRepo, projectRepo, auditor)
	resourceService := service.NewResourceService(resourceRepo, projectRepo, programmeRepo, auditor)
	waterfallService := service.NewWaterfallService(milestoneRepo, projectRepo, auditor, hub)
	scrumService := service.NewScrumService(scrumRepo, projectRepo, hybridRepo, auditor, hub)
	kanbanService := service.NewKanbanService(kanbanRepo, projectRepo, hybridRepo, auditor, hub)
	prince2Service := service.NewPrince2Service(prince2Repo, projectRepo, hybridRepo, auditor, hub)
	pmiService := service.NewPMIService(programmeArtifactRepo, programmeRepo, auditor)
	mspService := service.NewMSPService(programmeArtifactRepo, programmeRepo, auditor, hub)
	p2Service := service.NewP2Service(programmeArtifactRepo, programmeRepo, auditor, hub)
	safeService := service.NewSAFeService(safeRepo, programmeRepo, auditor, hub)
	lssService := service.NewLSSService(lssRepo, projectRepo, hybridRepo, auditor, hub)
	hybridService := service.NewHybridService(hybridRepo, projectRepo, auditor)
	analyticsService := service.NewAnalyticsService(projectRepo, portfolioRepo, programmeRepo,
		dependencyRepo, resourceRepo, scrumRepo, kanbanRepo, lssRepo, cacheClient)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	accountHandler := handlers.NewAccountHandler(accountService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	auditHandler := handlers.NewAuditHandler(auditService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
	programmeHandler := handlers.NewProgrammeHandler(programmeService)
	projectHandler := handlers.NewProjectHandler(projectService)
	dependencyHandler := handlers.NewDependencyHandler(dependencyService)
	resourceHandler := handlers.NewResourceHandler(resourceService)
	waterfallHandler := handlers.NewWaterfallHandler(waterfallService)
	scrumHandler := handlers.NewScrumHandler(scrumService)
	kanbanHandler := handlers.NewKanbanHandler(kanbanService)
	prince2Handler := handlers.NewPrince2Handler(prince2Service)
	pmiHandler := handlers.NewPMIHandler(pmiService)
	mspHandler := handlers.NewMSPHandler(mspService)
	p2Handler := handlers.NewP2Handler(p2Service)
	safeHandler := handlers.NewSAFeHandler(safeService)
	lssHandler := handlers.NewLSSHandler(lssService)
	hybridHandler := handlers.NewHybridHandler(hybridService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	notifyHandler := handlers.NewNotifyHandler(hub)

	// Health check endpoint
	router.GET("/health", healthHandler.Health)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")

	// Public account endpoints
	accounts := api.Group("/accounts")
	{
		accounts.POST("/register", accountHandler.Register)
		accounts.POST("/verify", accountHandler.Verify)
		accounts.POST("/password-reset/request", accountHandler.RequestPasswordReset)
		accounts.POST("/password-reset/confirm", accountHandler.ResetPassword)
		accounts.POST("/login", accountHandler.Login)
	}

	authed := api.Group("")
	authed.Use(authMiddleware.RequireAuth())

	me := authed.Group("/accounts/me")
	{
		me.GET("", accountHandler.GetMe)
		me.PATCH("", accountHandler.UpdateMe)
	}

	users := authed.Group("/users")
	{
		users.GET("", authMiddleware.RequireAdmin(), accountHandler.ListUsers)
		users.PUT("/:id/role", authMiddleware.RequireAdmin(), accountHandler.SetRole)
		users.POST("/link-company", authMiddleware.RequireAdmin(), accountHandler.LinkUserCompany)
	}

	companies := authed.Group("/companies")
	{
		companies.POST("", authMiddleware.RequireSuperAdmin(), accountHandler.CreateCompany)
		companies.GET("", authMiddleware.RequireSuperAdmin(), accountHandler.ListCompanies)
		companies.GET("/:id", accountHandler.GetCompany)
	}

	catalog := authed.Group("/catalog")
	{
		catalog.GET("/methodologies", catalogHandler.ListMethodologies)
		catalog.GET("/methodologies/:key", catalogHandler.GetMethodology)
		catalog.GET("/statuses", catalogHandler.ListStatuses)
		catalog.GET("/priorities", catalogHandler.ListPriorities)
		catalog.GET("/dependency-types", catalogHandler.ListDependencyTypes)
		catalog.GET("/frameworks", catalogHandler.ListFrameworks)
		catalog.GET("/dmaic-phases", catalogHandler.ListDMAICPhases)
		catalog.GET("/enums", catalogHandler.ListEnums)
	}

	portfolios := authed.Group("/portfolios")
	{
		portfolios.POST("", portfolioHandler.Create)
		portfolios.GET("", portfolioHandler.List)
		portfolios.GET("/:id", portfolioHandler.Get)
		portfolios.PATCH("/:id", portfolioHandler.Update)
		portfolios.PUT("/:id/status", portfolioHandler.SetStatus)
		portfolios.DELETE("/:id", portfolioHandler.Delete)
	}

	programmes := authed.Group("/programmes")
	{
		programmes.POST("", programmeHandler.Create)
		programmes.GET("", programmeHandler.List)
		programmes.GET("/:id", programmeHandler.Get)
		programmes.PATCH("/:id", programmeHandler.Update)
		programmes.PUT("/:id/status", programmeHandler.SetStatus)
		programmes.DELETE("/:id", programmeHandler.Delete)

		programmes.GET("/:id/resources", resourceHandler.ListByProgramme)
		programmes.GET("/:id/rollup", analyticsHandler.GetProgrammeRollup)
		programmes.GET("/:id/components", pmiHandler.ListComponents)
		programmes.GET("/:id/tranches", mspHandler.ListTranches)
		programmes.GET("/:id/benefits", mspHandler.ListBenefits)
		programmes.GET("/:id/blueprints", p2Handler.ListBlueprints)
		programmes.GET("/:id/arts", safeHandler.ListARTs)
		programmes.GET("/:id/pis", safeHandler.ListPIs)
	}

	projects := authed.Group("/projects")
	{
		projects.POST("", projectHandler.Create)
		projects.GET("", projectHandler.List)
		projects.GET("/:id", projectHandler.Get)
		projects.PATCH("/:id", projectHandler.Update)
		projects.PUT("/:id/status", projectHandler.SetStatus)
		projects.PUT("/:id/attach", projectHandler.Attach)
		projects.DELETE("/:id", projectHandler.Delete)

		projects.GET("/:id/resources", resourceHandler.ListByProject)
		projects.GET("/:id/milestones", waterfallHandler.ListByProject)
		projects.GET("/:id/iterations", scrumHandler.ListIterations)
		projects.GET("/:id/backlog", scrumHandler.ListBacklog)
		projects.GET("/:id/dod", scrumHandler.ListDoD)
		projects.POST("/:id/dod/initialize", scrumHandler.InitializeDoD)
		projects.GET("/:id/boards", kanbanHandler.ListBoards)
		projects.GET("/:id/policies", kanbanHandler.ListWorkPolicies)
		projects.GET("/:id/stages", prince2Handler.ListStages)
		projects.GET("/:id/products", prince2Handler.ListProducts)
		projects.GET("/:id/dmaic", lssHandler.ListDMAICRecords)
		projects.GET("/:id/metrics", lssHandler.ListMetrics)
		projects.GET("/:id/hypothesis-tests", lssHandler.ListHypothesisTests)
		projects.GET("/:id/experiments", lssHandler.ListDoE)
		projects.GET("/:id/spc-charts", lssHandler.ListSPCCharts)
		projects.GET("/:id/control-plans", lssHandler.ListControlPlans)
		projects.GET("/:id/hybrid-config", hybridHandler.GetConfig)
		projects.GET("/:id/hybrid-artifacts", hybridHandler.ListArtifacts)
		projects.GET("/:id/methodology-metrics", analyticsHandler.MethodologyMetrics)
	}

	dependencies := authed.Group("/dependencies")
	{
		dependencies.POST("", dependencyHandler.Create)
		dependencies.GET("", dependencyHandler.List)
		dependencies.DELETE("/:id", dependencyHandler.Delete)
	}

	resources := authed.Group("/resources")
	{
		resources.POST("", resourceHandler.Create)
		resources.PATCH("/:id", resourceHandler.Update)
		resources.DELETE("/:id", resourceHandler.Delete)
	}

	waterfall := authed.Group("/waterfall")
	{
		waterfall.POST("/milestones", waterfallHandler.Create)
		waterfall.PATCH("/milestones/:id", waterfallHandler.Update)
		waterfall.DELETE("/milestones/:id", waterfallHandler.Delete)
	}

	scrum := authed.Group("/scrum")
	{
		scrum.POST("/iterations", scrumHandler.CreateIteration)
		scrum.GET("/iterations/:id", scrumHandler.GetIteration)
		scrum.PATCH("/iterations/:id", scrumHandler.UpdateIteration)
		scrum.DELETE("/iterations/:id", scrumHandler.DeleteIteration)
		scrum.GET("/iterations/:id/daily-updates", scrumHandler.ListDailyUpdates)
		scrum.POST("/daily-updates", scrumHandler.CreateDailyUpdate)
		scrum.POST("/backlog", scrumHandler.CreateBacklogItem)
		scrum.PATCH("/backlog/:id", scrumHandler.UpdateBacklogItem)
		scrum.DELETE("/backlog/:id", scrumHandler.DeleteBacklogItem)
		scrum.POST("/dod", scrumHandler.CreateDoDItem)
		scrum.PATCH("/dod/:id", scrumHandler.UpdateDoDItem)
		scrum.DELETE("/dod/:id", scrumHandler.DeleteDoDItem)
	}

	kanban := authed.Group("/kanban")
	{
		kanban.POST("/boards", kanbanHandler.CreateBoard)
		kanban.GET("/boards/:id", kanbanHandler.GetBoard)
		kanban.DELETE("/boards/:id", kanbanHandler.DeleteBoard)
		kanban.POST("/columns", kanbanHandler.CreateColumn)
		kanban.PATCH("/columns/:id", kanbanHandler.UpdateColumn)
		kanban.DELETE("/columns/:id", kanbanHandler.DeleteColumn)
		kanban.GET("/columns/:id/cards", kanbanHandler.ListCards)
		kanban.POST("/cards", kanbanHandler.CreateCard)
		kanban.PUT("/cards/:id/move", kanbanHandler.MoveCard)
		kanban.PATCH("/cards/:id", kanbanHandler.UpdateCard)
		kanban.DELETE("/cards/:id", kanbanHandler.DeleteCard)
		kanban.POST("/policies", kanbanHandler.CreateWorkPolicy)
		kanban.PATCH("/policies/:id", kanbanHandler.UpdateWorkPolicy)
		kanban.DELETE("/policies/:id", kanbanHandler.DeleteWorkPolicy)
	}

	prince2 := authed.Group("/prince2")
	{
		prince2.POST("/stages", prince2Handler.CreateStage)
		prince2.POST("/stages/:id/gate", prince2Handler.ApproveGate)
		prince2.POST("/stages/:id/complete", prince2Handler.CompleteStage)
		prince2.DELETE("/stages/:id", prince2Handler.DeleteStage)
		prince2.POST("/products", prince2Handler.CreateProduct)
		prince2.POST("/products/:id/check", prince2Handler.CheckCriterion)
		prince2.POST("/products/:id/approve", prince2Handler.ApproveProduct)
		prince2.DELETE("/products/:id", prince2Handler.DeleteProduct)
	}

	pmi := authed.Group("/pmi")
	{
		pmi.POST("/components", pmiHandler.CreateComponent)
		pmi.PATCH("/components/:id", pmiHandler.UpdateComponent)
		pmi.DELETE("/components/:id", pmiHandler.DeleteComponent)
	}

	msp := authed.Group("/msp")
	{
		msp.POST("/tranches", mspHandler.CreateTranche)
		msp.DELETE("/tranches/:id", mspHandler.DeleteTranche)
		msp.POST("/benefits", mspHandler.CreateBenefit)
		msp.POST("/benefits/:id/realizations", mspHandler.RecordRealization)
	}

	p2 := authed.Group("/p2")
	{
		p2.POST("/blueprints", p2Handler.CreateBlueprint)
		p2.POST("/blueprints/:id/activate", p2Handler.ActivateBlueprint)
	}

	safe := authed.Group("/safe")
	{
		safe.POST("/arts", safeHandler.CreateART)
		safe.DELETE("/arts/:id", safeHandler.DeleteART)
		safe.GET("/arts/:id/sync-meetings", safeHandler.ListSyncMeetings)
		safe.POST("/sync-meetings", safeHandler.RecordSyncMeeting)
		safe.POST("/pis", safeHandler.CreatePI)
		safe.POST("/objectives", safeHandler.CreateObjective)
		safe.PATCH("/objectives/:id", safeHandler.UpdateObjective)
	}

	lss := authed.Group("/lss")
	{
		lss.POST("/dmaic", lssHandler.CreateDMAICRecord)
		lss.POST("/dmaic/:id/complete", lssHandler.CompleteDMAICPhase)
		lss.PUT("/metrics", lssHandler.UpsertMetric)
		lss.POST("/hypothesis-tests", lssHandler.CreateHypothesisTest)
		lss.POST("/experiments", lssHandler.CreateDoE)
		lss.POST("/spc-charts", lssHandler.CreateSPCChart)
		lss.POST("/control-plans", lssHandler.CreateControlPlan)
	}

	hybrid := authed.Group("/hybrid")
	{
		hybrid.PUT("/config", hybridHandler.SetConfig)
		hybrid.POST("/artifacts", hybridHandler.CreateArtifact)
		hybrid.PATCH("/artifacts/:id", hybridHandler.UpdateArtifact)
		hybrid.DELETE("/artifacts/:id", hybridHandler.DeleteArtifact)
	}

	analytics := authed.Group("/analytics")
	{
		analytics.GET("/summary", analyticsHandler.GetSummary)
		analytics.GET("/methodology-distribution", analyticsHandler.MethodologyDistribution)
		analytics.POST("/summary/recalculate", authMiddleware.RequireAdmin(), analyticsHandler.Recalculate)
	}

	notifications := authed.Group("/notifications")
	{
		notifications.GET("/ws", hub.ServeWS)
		notifications.POST("/broadcast", authMiddleware.RequireAdmin(), notifyHandler.Broadcast)
	}

	authed.GET("/audit", authMiddleware.RequireAdmin(), auditHandler.List)

	return router
}
