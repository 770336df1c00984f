package router

import (
	"github.com/gin-gonic/gin"

	"github.com/inclusive-jobs/server/internal/api/http/handler"
	"github.com/inclusive-jobs/server/internal/api/http/middleware"
	"github.com/inclusive-jobs/server/internal/logger"
	"github.com/inclusive-jobs/server/internal/service"
)

// Router wires handlers and middleware into the gin engine.
type Router struct {
	authService         *service.Auth
	catalogService      *service.Catalog
	resumeService       *service.Resume
	applicationService  *service.Applications
	subscriptionService *service.Subscription
	assistantService    *service.Assistant
	forumService        *service.Forum
	supportService      *service.Support
	tokenParser         middleware.TokenParser
	logger              *logger.Logger
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	catalogService *service.Catalog,
	resumeService *service.Resume,
	applicationService *service.Applications,
	subscriptionService *service.Subscription,
	assistantService *service.Assistant,
	forumService *service.Forum,
	supportService *service.Support,
	tokenParser middleware.TokenParser,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:         authService,
		catalogService:      catalogService,
		resumeService:       resumeService,
		applicationService:  applicationService,
		subscriptionService: subscriptionService,
		assistantService:    assistantService,
		forumService:        forumService,
		supportService:      supportService,
		tokenParser:         tokenParser,
		logger:              logger,
	}
}

// Register sets up middleware and all routes and returns the engine.
// Public routes: register, login, job listing and detail, forum feed and the
// support form. Everything else requires a bearer token.
func (r *Router) Register() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.NewLogging(r.logger).Handle())

	authenticate := middleware.NewAuthenticate(r.tokenParser, r.logger).Handle()

	authHandler := handler.NewAuth(r.authService, r.logger)
	jobHandler := handler.NewJob(r.catalogService, r.logger)
	resumeHandler := handler.NewResume(r.resumeService, r.logger)
	applicationHandler := handler.NewApplication(r.applicationService, r.logger)
	subscriptionHandler := handler.NewSubscription(r.subscriptionService, r.logger)
	assistantHandler := handler.NewAssistant(r.assistantService, r.logger)
	communityHandler := handler.NewCommunity(r.forumService, r.supportService, r.logger)

	api := engine.Group("/api")

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authenticate, authHandler.Logout)
	api.GET("/auth/me", authenticate, authHandler.Me)
	api.PUT("/auth/profile", authenticate, authHandler.UpdateProfile)

	api.GET("/jobs", jobHandler.List)
	api.GET("/jobs/mine", authenticate, jobHandler.Mine)
	api.GET("/jobs/:id", jobHandler.Get)
	api.POST("/jobs", authenticate, jobHandler.Post)
	api.POST("/jobs/rewrite", authenticate, jobHandler.Rewrite)
	api.GET("/jobs/:id/applications", authenticate, applicationHandler.ListForJob)

	api.POST("/resumes", authenticate, resumeHandler.Upload)
	api.POST("/resumes/generate", authenticate, resumeHandler.Generate)
	api.GET("/resumes/me", authenticate, resumeHandler.Me)
	api.GET("/resumes/:id/file", authenticate, resumeHandler.Download)

	api.POST("/applications", authenticate, applicationHandler.Apply)
	api.GET("/applications", authenticate, applicationHandler.ListMine)
	api.POST("/applications/:id/decision", authenticate, applicationHandler.Decide)

	api.POST("/subscription", authenticate, subscriptionHandler.Subscribe)

	api.POST("/assistant/chat", authenticate, assistantHandler.Chat)
	api.GET("/assistant/history", authenticate, assistantHandler.History)

	api.GET("/forum", communityHandler.Feed)
	api.POST("/forum", authenticate, communityHandler.Post)

	api.POST("/support", communityHandler.Support)

	return engine
}
