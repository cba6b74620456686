package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"spendwise/internal/config"
	"spendwise/internal/database"
	"spendwise/internal/forecast"
	"spendwise/internal/handlers"
	"spendwise/internal/logger"
	"spendwise/internal/middleware"
	"spendwise/internal/snapshot"
	"spendwise/internal/store"
	"spendwise/internal/validator"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Open the snapshot database
	dbManager, err := database.NewManager(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize the state store; rehydrates from the last snapshot if one exists
	snapshots := snapshot.NewStore(dbManager.DB())
	appStore, err := store.New(snapshots)
	if err != nil {
		return fmt.Errorf("failed to initialize state store: %w", err)
	}

	// Initialize the forecaster when credentials are configured
	var forecaster forecast.Forecaster
	if cfg.OpenAIAPIKey != "" {
		forecaster, err = forecast.New(forecast.Config{
			Provider: cfg.ForecastProvider,
			APIKey:   cfg.OpenAIAPIKey,
			Model:    cfg.ForecastModel,
			Timeout:  cfg.ForecastTimeout,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize forecaster: %w", err)
		}
	} else {
		log.Warn("OPENAI_API_KEY not set, spending forecasts are disabled")
	}

	// Register custom request validators
	validator.Register()

	// Initialize handlers
	transactionHandler := handlers.NewTransactionHandler(appStore)
	categoryHandler := handlers.NewCategoryHandler(appStore)
	budgetGoalHandler := handlers.NewBudgetGoalHandler(appStore)
	dashboardHandler := handlers.NewDashboardHandler(appStore)
	forecastHandler := handlers.NewForecastHandler(appStore, forecaster)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Category routes
	categories := v1.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.ListCategories)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Budget goal routes
	budgetGoals := v1.Group("/budget-goals")
	budgetGoals.POST("", budgetGoalHandler.CreateBudgetGoal)
	budgetGoals.GET("", budgetGoalHandler.ListBudgetGoals)
	budgetGoals.GET("/:id", budgetGoalHandler.GetBudgetGoalByID)
	budgetGoals.PUT("/:id", budgetGoalHandler.UpdateBudgetGoal)
	budgetGoals.DELETE("/:id", budgetGoalHandler.DeleteBudgetGoal)
	budgetGoals.GET("/:id/progress", budgetGoalHandler.GetBudgetGoalProgress)

	// Dashboard and forecast routes
	v1.GET("/dashboard", dashboardHandler.GetDashboard)
	v1.POST("/forecast", forecastHandler.Predict)

	log.Infof("Starting SpendWise backend server on port %s", cfg.Port)
	return router.Run(":" + cfg.Port)
}
