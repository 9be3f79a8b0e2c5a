package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fincontrol/internal/metrics"
	"fincontrol/internal/middleware"
	"fincontrol/internal/services"
)

// RouterConfig carries everything the HTTP layer needs.
type RouterConfig struct {
	APIKey   string
	Recorder metrics.Recorder
	// Gatherer backs /metrics. The route is skipped when nil.
	Gatherer prometheus.Gatherer
	// Swagger mounts /swagger/*any when true.
	Swagger bool

	Transactions services.TransactionServicer
	Goals        services.GoalServicer
	Dashboard    services.DashboardServicer
	Reports      services.ReportServicer
	Backup       services.BackupServicer
	Advisor      services.AdvisorServicer
}

// NewRouter builds the gin engine with the middleware chain and every route.
func NewRouter(cfg RouterConfig) *gin.Engine {
	recorder := cfg.Recorder
	if recorder == nil {
		recorder = metrics.NoOp{}
	}

	transactionHandler := NewTransactionHandler(cfg.Transactions)
	goalHandler := NewGoalHandler(cfg.Goals)
	categoryHandler := NewCategoryHandler()
	dashboardHandler := NewDashboardHandler(cfg.Dashboard)
	reportHandler := NewReportHandler(cfg.Reports)
	backupHandler := NewBackupHandler(cfg.Backup)
	advisorHandler := NewAdvisorHandler(cfg.Advisor)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.Metrics(recorder))
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	if cfg.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	if cfg.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.APIKeyAuth(cfg.APIKey))

	v1.GET("/categories", categoryHandler.ListCategories)
	v1.GET("/transaction-types", categoryHandler.ListTransactionTypes)

	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	goals := v1.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.ListGoals)
	goals.GET("/:id", goalHandler.GetGoal)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)

	v1.GET("/dashboard", dashboardHandler.GetDashboard)

	reports := v1.Group("/reports")
	reports.GET("", reportHandler.GetReport)
	reports.GET("/csv", reportHandler.ExportCSV)
	reports.GET("/pdf", reportHandler.ExportPDF)

	v1.GET("/backup", backupHandler.ExportBackup)
	v1.POST("/backup", backupHandler.ImportBackup)

	advisorRoutes := v1.Group("/advisor")
	advisorRoutes.POST("/analysis", advisorHandler.Analyze)
	advisorRoutes.POST("/receipt", advisorHandler.ExtractReceipt)

	return router
}
