package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/jewelsoft/saraf-api/internal/application/service"
	"github.com/jewelsoft/saraf-api/internal/config"
	"github.com/jewelsoft/saraf-api/internal/infrastructure/database"
	"github.com/jewelsoft/saraf-api/internal/infrastructure/repository"
	"github.com/jewelsoft/saraf-api/internal/presentation/http/handler"
	"github.com/jewelsoft/saraf-api/internal/presentation/http/routes"
	"github.com/jewelsoft/saraf-api/pkg/email"
	"github.com/jewelsoft/saraf-api/pkg/printer"
	"github.com/jewelsoft/saraf-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	shopRepo := repository.NewShopRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	voucherRepo := repository.NewVoucherRepository(db)
	settlementRepo := repository.NewSettlementRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	karigarRepo := repository.NewKarigarRepository(db)
	stockRepo := repository.NewStockRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		FrontendURL:  cfg.Email.FrontendURL,
	})

	// Initialize services. The reconciler owns every balance write, so the
	// ledger, voucher, settlement and statement services all share one.
	reconciler := service.NewReconciler(ledgerRepo, voucherRepo, settlementRepo)

	authService := service.NewAuthService(userRepo, shopRepo, passwordResetRepo, jwtManager, emailService)
	shopService := service.NewShopService(shopRepo, userRepo, roleRepo)
	ledgerService := service.NewLedgerService(ledgerRepo, voucherRepo, reconciler)
	voucherService := service.NewVoucherService(voucherRepo, ledgerRepo, shopRepo, reconciler)
	settlementService := service.NewSettlementService(settlementRepo, ledgerRepo, reconciler)
	statementService := service.NewStatementService(ledgerRepo, shopRepo, reconciler)
	expenseService := service.NewExpenseService(expenseRepo)
	karigarService := service.NewKarigarService(karigarRepo)
	stockService := service.NewStockService(stockRepo)
	reportService := service.NewReportService(analyticsRepo, expenseRepo)
	userService := service.NewUserService(userRepo, roleRepo, permissionRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, voucherRepo, ledgerRepo, shopRepo, cfg.Printer.Type, cfg.Printer.CharWidth)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Shop:       handler.NewShopHandler(shopService),
		Ledger:     handler.NewLedgerHandler(ledgerService),
		Voucher:    handler.NewVoucherHandler(voucherService),
		Settlement: handler.NewSettlementHandler(settlementService),
		Statement:  handler.NewStatementHandler(statementService),
		Expense:    handler.NewExpenseHandler(expenseService),
		Karigar:    handler.NewKarigarHandler(karigarService),
		Stock:      handler.NewStockHandler(stockService),
		Report:     handler.NewReportHandler(reportService),
		User:       handler.NewUserHandler(userService),
		Printer:    handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		ShopRepo:        shopRepo,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
