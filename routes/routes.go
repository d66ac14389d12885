package routes

import (
	"net/http"
	"os"

	"insuretrack-backend/config"
	"insuretrack-backend/controllers"
	"insuretrack-backend/services"
	"insuretrack-backend/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, store storage.Store) *gin.Engine {
	r := gin.Default()

	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	customerCtl := controllers.NewCustomerController(services.NewCustomerService(db))
	insuranceCtl := controllers.NewInsuranceController(services.NewInsuranceService(db))
	documentCtl := controllers.NewDocumentController(services.NewDocumentService(db, store))
	dashboardCtl := controllers.NewDashboardController(services.NewDashboardService(db))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Insurance Tracking System API"})
	})

	// Customer routes
	customers := r.Group("/customers")
	{
		customers.POST("/", customerCtl.Create)
		customers.GET("/", customerCtl.List)
		customers.GET("/:id", customerCtl.Get)
		customers.PUT("/:id", customerCtl.Update)
		customers.DELETE("/:id", customerCtl.Delete)
	}

	// Insurance routes. Collection sub-paths are registered before the
	// generic :id matcher so it cannot swallow them.
	insurances := r.Group("/insurances")
	{
		insurances.POST("/", insuranceCtl.Create)
		insurances.GET("/", insuranceCtl.List)
		insurances.GET("/customer/:customer_id", insuranceCtl.ListByCustomer)
		insurances.GET("/upcoming-renewals/", insuranceCtl.UpcomingRenewals)
		insurances.GET("/:id", insuranceCtl.Get)
		insurances.PUT("/:id", insuranceCtl.Update)
		insurances.DELETE("/:id", insuranceCtl.Delete)
	}

	// Document routes
	documents := r.Group("/documents")
	{
		documents.POST("/upload/:customer_id", documentCtl.Upload)
		documents.GET("/customer/:customer_id", documentCtl.ListByCustomer)
		documents.GET("/insurance/:insurance_id", documentCtl.ListByInsurance)
		documents.GET("/:id", documentCtl.Get)
		documents.DELETE("/:id", documentCtl.Delete)
	}

	// Dashboard routes
	r.GET("/dashboard/stats", dashboardCtl.Stats)

	return r
}
