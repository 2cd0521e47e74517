package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/handlers"
	"fintrack/internal/logger"
	"fintrack/internal/middleware"
	"fintrack/internal/services"
	"fintrack/internal/storage"
	"fintrack/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "fintrack/internal/docs" // Import swagger docs
)

// @title           Fintrack API
// @version         1.0
// @description     Fintrack is a personal finance tracker for expenses, credit card billing cycles, loans, and invoice documents.

// @host      localhost:8080
// @BasePath  /api

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
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// File storage for uploaded PDFs
	store := storage.NewStore(appConfig.UploadDir)

	// Initialize services
	db := dbManager.DB()
	paymentMethodService := services.NewPaymentMethodService(db)
	billingCycleService := services.NewBillingCycleService(db)
	paymentService := services.NewCreditCardPaymentService(db)
	statementService := services.NewStatementService(db, store)
	loanService := services.NewLoanService(db)
	loanBalanceService := services.NewLoanBalanceService(db)
	expenseService := services.NewExpenseService(db)
	personService := services.NewPersonService(db)
	invoiceService := services.NewInvoiceService(db, store)
	activityLogService := services.NewActivityLogService(db)

	// Prune the audit trail at boot and on a timer thereafter.
	if err := activityLogService.EnforceRetention(); err != nil {
		log.Warnf("Activity log retention sweep failed at startup: %v", err)
	}
	go retentionSweep(activityLogService, appConfig.RetentionSweepInterval)

	// Initialize handlers
	paymentMethodHandler := handlers.NewPaymentMethodHandler(paymentMethodService, billingCycleService, paymentService, activityLogService)
	billingCycleHandler := handlers.NewBillingCycleHandler(billingCycleService, activityLogService, store)
	creditCardHandler := handlers.NewCreditCardHandler(paymentService, statementService, activityLogService)
	loanHandler := handlers.NewLoanHandler(loanService, loanBalanceService, activityLogService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, personService, activityLogService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, activityLogService)
	activityLogHandler := handlers.NewActivityLogHandler(activityLogService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.CORS())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// Payment method routes
	paymentMethods := api.Group("/payment-methods")
	paymentMethods.POST("", paymentMethodHandler.CreatePaymentMethod)
	paymentMethods.GET("", paymentMethodHandler.GetPaymentMethods)
	paymentMethods.GET("/:id", paymentMethodHandler.GetPaymentMethod)
	paymentMethods.PUT("/:id", paymentMethodHandler.UpdatePaymentMethod)
	paymentMethods.DELETE("/:id", paymentMethodHandler.DeletePaymentMethod)
	paymentMethods.GET("/:id/credit-card-detail", paymentMethodHandler.GetCreditCardDetail)

	// Billing cycle routes
	paymentMethods.GET("/:id/billing-cycles/current", billingCycleHandler.GetCurrentCycle)
	paymentMethods.GET("/:id/billing-cycles/unified", billingCycleHandler.GetUnifiedBillingCycles)
	paymentMethods.GET("/:id/billing-cycles/history", billingCycleHandler.GetCycleHistory)
	paymentMethods.POST("/:id/billing-cycles", billingCycleHandler.CreateBillingCycle)
	paymentMethods.PUT("/:id/billing-cycles/:cycleId", billingCycleHandler.UpdateBillingCycle)
	paymentMethods.DELETE("/:id/billing-cycles/:cycleId", billingCycleHandler.DeleteBillingCycle)

	// Credit card payment routes
	paymentMethods.POST("/:id/payments", creditCardHandler.CreatePayment)
	paymentMethods.GET("/:id/payments", creditCardHandler.GetPayments)
	paymentMethods.DELETE("/:id/payments/:paymentId", creditCardHandler.DeletePayment)

	// Statement routes
	paymentMethods.POST("/:id/statements", creditCardHandler.UploadStatement)
	paymentMethods.GET("/:id/statements", creditCardHandler.GetStatements)
	paymentMethods.GET("/:id/statements/:statementId/file", creditCardHandler.GetStatementFile)
	paymentMethods.DELETE("/:id/statements/:statementId", creditCardHandler.DeleteStatement)

	// Loan routes
	loans := api.Group("/loans")
	loans.POST("", loanHandler.CreateLoan)
	loans.GET("", loanHandler.GetLoans)
	loans.GET("/:id", loanHandler.GetLoan)
	loans.PUT("/:id", loanHandler.UpdateLoan)
	loans.DELETE("/:id", loanHandler.DeleteLoan)
	loans.GET("/:id/balances", loanHandler.GetBalanceHistory)
	loans.GET("/:id/balances/:year/:month", loanHandler.GetBalanceForMonth)

	// Loan balance routes
	loanBalances := api.Group("/loan-balances")
	loanBalances.POST("", loanHandler.CreateOrUpdateBalance)
	loanBalances.PUT("/:id", loanHandler.UpdateBalance)
	loanBalances.DELETE("/:id", loanHandler.DeleteBalance)

	// Expense routes
	expenses := api.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.GET("/:id", expenseHandler.GetExpense)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)
	expenses.GET("/:id/invoices", invoiceHandler.GetInvoicesByExpense)

	// People routes
	people := api.Group("/people")
	people.POST("", expenseHandler.CreatePerson)
	people.GET("", expenseHandler.GetPeople)
	people.GET("/:id", expenseHandler.GetPerson)
	people.PUT("/:id", expenseHandler.UpdatePerson)
	people.DELETE("/:id", expenseHandler.DeletePerson)

	// Invoice routes
	invoices := api.Group("/invoices")
	invoices.POST("", invoiceHandler.UploadInvoice)
	invoices.GET("/:id", invoiceHandler.GetInvoice)
	invoices.GET("/:id/file", invoiceHandler.GetInvoiceFile)
	invoices.PUT("/:id", invoiceHandler.ReplaceInvoice)
	invoices.DELETE("/:id", invoiceHandler.DeleteInvoice)

	// Activity log routes
	activityLogs := api.Group("/activity-logs")
	activityLogs.GET("", activityLogHandler.GetActivityLogs)
	activityLogs.GET("/settings", activityLogHandler.GetSettings)
	activityLogs.PUT("/settings", activityLogHandler.UpdateSettings)

	log.Infof("Starting Fintrack backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

// retentionSweep prunes the activity log on a fixed interval.
func retentionSweep(activityLogService services.ActivityLogServicer, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if err := activityLogService.EnforceRetention(); err != nil {
			logger.Get().Warnf("Activity log retention sweep failed: %v", err)
		}
	}
}
