package http

import (
	"net/http"

	"github.com/veloguard/veloguard-backend/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	router *gin.Engine
}

func NewRouter(
	cfg *config.HTTP,
	bikeHandler *BikeHandler,
	accessoryHandler *AccessoryHandler,
	documentHandler *DocumentHandler,
	draftHandler *DraftHandler,
	workflowHandler *WorkflowHandler,
	directoryHandler *DirectoryHandler,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigins},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Bike registry
	bikes := router.Group("/bikes")
	{
		bikes.POST("", bikeHandler.RegisterBike)
		bikes.GET("", bikeHandler.ListBikes)
		bikes.GET("/selectable", bikeHandler.ListSelectable)
		bikes.GET("/marketplace", bikeHandler.ListMarketplace)
		bikes.GET("/status-changes", bikeHandler.StatusChanges)
		bikes.GET("/:id", bikeHandler.GetBike)
		bikes.PUT("/:id", bikeHandler.UpdateBike)
		bikes.DELETE("/:id", bikeHandler.DeleteBike)
		bikes.POST("/:id/sell", bikeHandler.SellBike)
		bikes.POST("/:id/sold", bikeHandler.MarkSold)
		bikes.POST("/:id/accessories", accessoryHandler.AddAccessory)
		bikes.GET("/:id/accessories", accessoryHandler.GetAccessories)
		bikes.POST("/:id/documents", documentHandler.AddDocument)
		bikes.GET("/:id/documents", documentHandler.GetDocuments)
	}

	accessories := router.Group("/accessories")
	{
		accessories.DELETE("/:id", accessoryHandler.RemoveAccessory)
	}

	documents := router.Group("/documents")
	{
		documents.DELETE("/:id", documentHandler.RemoveDocument)
	}

	// Generation helpers for the registration flow
	ai := router.Group("/ai")
	{
		ai.POST("/description", draftHandler.GenerateDescription)
		ai.POST("/analyze-image", draftHandler.AnalyzeImage)
	}

	// Theft report workflow
	workflows := router.Group("/workflows")
	{
		workflows.POST("", workflowHandler.StartReport)
		workflows.GET("/:id", workflowHandler.GetWorkflow)
		workflows.POST("/:id/facts", workflowHandler.SubmitFacts)
		workflows.POST("/:id/revise", workflowHandler.ReviseFacts)
		workflows.GET("/:id/document", workflowHandler.RenderDocument)
		workflows.POST("/:id/confirm", workflowHandler.Confirm)
		workflows.POST("/:id/online-submission", workflowHandler.SubmitOnline)
	}

	reports := router.Group("/reports")
	{
		reports.GET("", workflowHandler.ListReports)
		reports.GET("/:id", workflowHandler.GetReport)
	}

	jurisdictions := router.Group("/jurisdictions")
	{
		jurisdictions.GET("", directoryHandler.ListJurisdictions)
		jurisdictions.GET("/:region", directoryHandler.GetJurisdiction)
	}

	router.GET("/profile", directoryHandler.GetProfile)

	return &Router{router: router}, nil
}

func (r *Router) Serve(addr string) error {
	return r.router.Run(addr)
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
