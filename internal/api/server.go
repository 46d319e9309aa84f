package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/echoes-archive/feria-api/docs"
	v1 "github.com/echoes-archive/feria-api/internal/api/handler/v1"
	"github.com/echoes-archive/feria-api/internal/api/middleware"
	"github.com/echoes-archive/feria-api/internal/config"
	"github.com/echoes-archive/feria-api/internal/gemini"
	"github.com/echoes-archive/feria-api/internal/repository"
	"github.com/echoes-archive/feria-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, store *repository.FairStore, gen gemini.TextGenerator) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	insightSvc := service.NewInsightService(gen, store)
	fairSvc := service.NewFairService(store, insightSvc)

	fairHandler := v1.NewFairHandler(fairSvc)
	insightHandler := v1.NewInsightHandler(insightSvc)
	catalogHandler := v1.NewCatalogHandler(fairSvc)
	s.MountHandlers(fairHandler, insightHandler, catalogHandler)

	return s
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(fairHandler *v1.FairHandler, insightHandler *v1.InsightHandler, catalogHandler *v1.CatalogHandler) {
	const basePath = "/api/v1"

	fairs := s.Router.Group(basePath)
	{
		fairs.GET("/fairs", fairHandler.HandleListFairs)
		fairs.POST("/fairs", fairHandler.HandleCreateFair)
		fairs.GET("/fairs/:fairID", fairHandler.HandleGetFair)
		fairs.PUT("/fairs/:fairID", fairHandler.HandleReplaceFair)
		fairs.GET("/fairs/:fairID/summary", fairHandler.HandleGetSummary)
		fairs.POST("/fairs/:fairID/feasibility/:stepID/toggle", fairHandler.HandleToggleStep)
		fairs.POST("/fairs/:fairID/activities", fairHandler.HandleAddActivity)
		fairs.POST("/fairs/:fairID/activities/:activityID/link", fairHandler.HandleToggleActivityLink)
		fairs.POST("/fairs/:fairID/entertainment/:providerID/link", fairHandler.HandleToggleEntertainmentLink)
		fairs.POST("/fairs/:fairID/materials", fairHandler.HandleAddMaterial)
		fairs.POST("/fairs/:fairID/contacts", fairHandler.HandleAddContact)
		fairs.POST("/fairs/:fairID/budget", fairHandler.HandleAddBudgetEntry)
		fairs.POST("/fairs/:fairID/budget/:entryID/status", fairHandler.HandleFlipBudgetStatus)
		fairs.PUT("/fairs/:fairID/report/:field", fairHandler.HandleSetReportField)
		fairs.PUT("/fairs/:fairID/marketing/:executionID", fairHandler.HandleSetMarketingExecution)
		fairs.POST("/fairs/:fairID/marketing/materials", fairHandler.HandleAddMarketingMaterial)
		fairs.PUT("/fairs/:fairID/companies", fairHandler.HandleSelectCompanies)
		fairs.POST("/fairs/:fairID/social-posts", fairHandler.HandleAddSocialPost)

		fairs.GET("/selection", fairHandler.HandleGetSelection)
		fairs.PUT("/selection", fairHandler.HandleSetSelection)
	}

	insights := s.Router.Group(basePath)
	{
		insights.POST("/fairs/:fairID/population/lookup", insightHandler.HandleLookupPopulation)
		insights.POST("/fairs/:fairID/feasibility/analysis", insightHandler.HandleGenerateFeasibilityAnalysis)
		insights.POST("/fairs/:fairID/social-posts/generate", insightHandler.HandleGenerateSocialPost)
	}

	catalogs := s.Router.Group(basePath)
	{
		catalogs.GET("/catalog/activities", catalogHandler.HandleListActivityLibrary)
		catalogs.GET("/catalog/materials", catalogHandler.HandleListMaterialLibrary)
		catalogs.GET("/catalog/study-companies", catalogHandler.HandleListStudyCompanies)
		catalogs.GET("/catalog/marketing-companies", catalogHandler.HandleListMarketingCompanies)
		catalogs.GET("/catalog/entertainment", catalogHandler.HandleListEntertainment)
		catalogs.GET("/i18n/:lang", catalogHandler.HandleGetLabels)
		catalogs.GET("/locale", catalogHandler.HandleGetLocale)
		catalogs.PUT("/locale", catalogHandler.HandleSetLocale)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Echoes Archive fair-planning API"
	docs.SwaggerInfo.Description = "Feasibility checklists, budgets, activities, materials and AI-assisted lookups for cultural heritage fairs."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
