// Package router assembles the HTTP stack: services, handlers, middleware and routes.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"butce/internal/config"
	_ "butce/internal/docs" // swagger docs
	"butce/internal/handlers"
	"butce/internal/middleware"
	"butce/internal/services"
	"butce/internal/validator"
)

// New builds the application router on top of db. now decides what "today"
// is for reports and savings plans.
func New(cfg *config.Config, db *gorm.DB, now services.Clock) *gin.Engine {
	validator.Register()

	// Services
	userService := services.NewUserService(db)
	accountService := services.NewAccountService(db)
	categoryService := services.NewCategoryService(db)
	transactionService := services.NewTransactionService(db, now)
	savingsService := services.NewSavingsGoalService(db, now)
	reportService := services.NewReportService(db, now, accountService, savingsService)

	// Handlers
	sessions := middleware.NewSessionManager(cfg)
	authHandler := handlers.NewAuthHandler(userService, sessions)
	dashboardHandler := handlers.NewDashboardHandler(reportService)
	accountHandler := handlers.NewAccountHandler(accountService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, accountService, categoryService)
	savingsHandler := handlers.NewSavingsGoalHandler(savingsService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes
	router.GET("/login", authHandler.LoginPage)
	router.POST("/login", authHandler.Login)
	router.GET("/register", authHandler.RegisterPage)
	router.POST("/register", authHandler.Register)
	router.GET("/logout", authHandler.Logout)

	// Protected routes
	auth := sessions.RequireLogin

	router.GET("/", auth(dashboardHandler.Dashboard))
	router.GET("/reports", auth(dashboardHandler.Reports))

	accounts := router.Group("/accounts")
	accounts.GET("", auth(accountHandler.ListAccounts))
	accounts.POST("", auth(accountHandler.CreateAccount))
	accounts.POST("/:id/update", auth(accountHandler.UpdateAccount))
	accounts.POST("/:id/delete", auth(accountHandler.DeleteAccount))

	categories := router.Group("/categories")
	categories.GET("", auth(categoryHandler.ListCategories))
	categories.POST("", auth(categoryHandler.CreateCategory))
	categories.POST("/:id/update", auth(categoryHandler.UpdateCategory))
	categories.POST("/:id/delete", auth(categoryHandler.DeleteCategory))

	transactions := router.Group("/transactions")
	transactions.GET("", auth(transactionHandler.ListTransactions))
	transactions.POST("", auth(transactionHandler.CreateTransaction))
	transactions.POST("/:id/update", auth(transactionHandler.UpdateTransaction))
	transactions.POST("/:id/delete", auth(transactionHandler.DeleteTransaction))

	savings := router.Group("/savings-goals")
	savings.POST("", auth(savingsHandler.CreateGoal))
	savings.POST("/:id/delete", auth(savingsHandler.DeleteGoal))

	return router
}
