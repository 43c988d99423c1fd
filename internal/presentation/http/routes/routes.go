package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jewelsoft/saraf-api/internal/config"
	domainRepo "github.com/jewelsoft/saraf-api/internal/domain/repository"
	"github.com/jewelsoft/saraf-api/internal/presentation/http/handler"
	"github.com/jewelsoft/saraf-api/internal/presentation/http/middleware"
	"github.com/jewelsoft/saraf-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth       *handler.AuthHandler
	Shop       *handler.ShopHandler
	Ledger     *handler.LedgerHandler
	Voucher    *handler.VoucherHandler
	Settlement *handler.SettlementHandler
	Statement  *handler.StatementHandler
	Expense    *handler.ExpenseHandler
	Karigar    *handler.KarigarHandler
	Stock      *handler.StockHandler
	Report     *handler.ReportHandler
	User       *handler.UserHandler
	Printer    *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	ShopRepo        domainRepo.ShopRepository
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-shop rate limiter
		rateLimiter := middleware.NewShopRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Everything below operates on the user's shop; the shop middleware
	// blocks lapsed licenses.
	shopScoped := protected.Group("")
	shopScoped.Use(middleware.ShopMiddleware(deps.ShopRepo))

	// Shop (own)
	shopScoped.GET("/shop", h.Shop.GetCurrent)
	shopScoped.PUT("/shop", h.Shop.UpdateCurrent)
	shopScoped.PUT("/shop/settings", h.Shop.UpdateSettings)

	// Dashboard and reports
	registerReportRoutes(shopScoped, h)

	// Ledgers
	registerLedgerRoutes(shopScoped, h)

	// Vouchers
	registerVoucherRoutes(shopScoped, h, deps)

	// Settlements
	registerSettlementRoutes(shopScoped, h)

	// Expenses
	registerExpenseRoutes(shopScoped, h)

	// Karigars
	registerKarigarRoutes(shopScoped, h)

	// Stock
	registerStockRoutes(shopScoped, h)

	// Users (Admin)
	registerUserRoutes(shopScoped, h)

	// Printer
	registerPrinterRoutes(shopScoped, h)

	// Super Admin routes
	registerAdminRoutes(protected, h)
}

func registerLedgerRoutes(protected *gin.RouterGroup, h *Handlers) {
	ledgers := protected.Group("/ledgers")
	ledgers.Use(middleware.RequirePermission("manage-ledgers"))
	{
		ledgers.GET("", h.Ledger.List)
		ledgers.POST("", h.Ledger.Create)
		ledgers.GET("/:id", h.Ledger.Get)
		ledgers.PUT("/:id", h.Ledger.Update)
		ledgers.DELETE("/:id", h.Ledger.Delete)

		ledgers.GET("/:id/balance", h.Ledger.GetBalance)
		ledgers.GET("/:id/transactions", h.Ledger.GetTransactions)
		ledgers.GET("/:id/statement", h.Ledger.GetStatement)
		ledgers.GET("/:id/statement/csv", h.Statement.ExportCSV)
		ledgers.GET("/:id/statement/pdf", h.Statement.ExportPDF)
		ledgers.GET("/:id/share", h.Statement.ShareLink)
		ledgers.POST("/:id/recalculate", h.Ledger.Recalculate)
		ledgers.DELETE("/:id/vouchers", h.Ledger.DeleteAllVouchers)

		ledgers.GET("/:id/settlements", h.Settlement.ListByLedger)
	}
}

func registerVoucherRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	vouchers := protected.Group("/vouchers")
	vouchers.Use(middleware.RequirePermission("manage-vouchers"))
	{
		vouchers.GET("", h.Voucher.List)
		// Voucher creation uses idempotency middleware so a retried submit
		// cannot bill a customer twice
		vouchers.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Voucher.Create)
		vouchers.GET("/:id", h.Voucher.Get)
		vouchers.GET("/:id/balance-details", h.Voucher.GetBalanceDetails)
		vouchers.DELETE("/:id", h.Voucher.Delete)
	}
}

func registerSettlementRoutes(protected *gin.RouterGroup, h *Handlers) {
	settlements := protected.Group("/settlements")
	settlements.Use(middleware.RequirePermission("manage-vouchers"))
	{
		settlements.POST("", h.Settlement.Create)
		settlements.POST("/calculate", h.Settlement.Calculate)
		settlements.GET("/:id", h.Settlement.Get)
		settlements.DELETE("/:id", h.Settlement.Delete)
	}
}

func registerExpenseRoutes(protected *gin.RouterGroup, h *Handlers) {
	expenses := protected.Group("/expenses")
	expenses.Use(middleware.RequirePermission("manage-expenses"))
	{
		expenses.GET("", h.Expense.List)
		expenses.POST("", h.Expense.Create)
		expenses.GET("/summary", h.Expense.GetSummary)
		expenses.GET("/:id", h.Expense.Get)
		expenses.PUT("/:id", h.Expense.Update)
		expenses.DELETE("/:id", h.Expense.Delete)
	}
}

func registerKarigarRoutes(protected *gin.RouterGroup, h *Handlers) {
	karigars := protected.Group("/karigars")
	karigars.Use(middleware.RequirePermission("manage-karigars"))
	{
		karigars.GET("", h.Karigar.List)
		karigars.POST("", h.Karigar.Create)
		karigars.GET("/:id", h.Karigar.GetAccount)
		karigars.PUT("/:id", h.Karigar.Update)
		karigars.DELETE("/:id", h.Karigar.Delete)
		karigars.POST("/:id/entries", h.Karigar.AddEntry)
		karigars.DELETE("/:id/entries/:entryId", h.Karigar.DeleteEntry)
	}
}

func registerStockRoutes(protected *gin.RouterGroup, h *Handlers) {
	stock := protected.Group("/stock")
	stock.Use(middleware.RequirePermission("manage-stock"))
	{
		stock.GET("", h.Stock.List)
		stock.POST("", h.Stock.Create)
		stock.GET("/summary", h.Stock.GetSummary)
		stock.GET("/:id", h.Stock.Get)
		stock.PUT("/:id", h.Stock.Update)
		stock.DELETE("/:id", h.Stock.Delete)
	}
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	reports.Use(middleware.RequirePermission("view-reports"))
	{
		reports.GET("/dashboard", h.Report.GetDashboard)
		reports.GET("/forecast", h.Report.GetForecast)
		reports.GET("/cashflow", h.Report.GetCashFlow)
	}

	// Expense summary doubles as a report but lives under /expenses
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequirePermission("manage-users"))
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id/roles", h.User.UpdateRoles)
		users.DELETE("/:id", h.User.Delete)
	}

	roles := protected.Group("/roles")
	roles.Use(middleware.RequirePermission("manage-users"))
	{
		roles.GET("", h.User.ListRoles)
	}

	permissions := protected.Group("/permissions")
	permissions.Use(middleware.RequirePermission("manage-users"))
	{
		permissions.GET("", h.User.ListPermissions)
	}
}

func registerAdminRoutes(protected *gin.RouterGroup, h *Handlers) {
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRole("super-admin"))
	{
		admin.GET("/shops", h.Shop.List)
		admin.POST("/shops", h.Shop.Create)
		admin.POST("/shops/:id/license", h.Shop.RenewLicense)
		admin.DELETE("/shops/:id", h.Shop.Delete)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
		printerGroup.POST("/receipt", h.Printer.PrintReceipt)
	}
}
