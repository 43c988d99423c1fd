package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/domain/enum"
)

// TopLedgerResult represents a customer's business volume
type TopLedgerResult struct {
	LedgerID     uuid.UUID
	LedgerName   string
	TotalSales   float64
	VoucherCount int
}

// MetalSalesResult represents sales aggregated by metal type
type MetalSalesResult struct {
	MetalType  enum.MetalType
	FineWeight float64
	TotalSales float64
	Percentage float64
}

// DailySalesResult represents sales data for a single day
type DailySalesResult struct {
	Date          time.Time
	Revenue       float64
	CashCollected float64
}

// OutstandingResult represents the shop's aggregate customer balances
type OutstandingResult struct {
	CashOwed       float64
	GoldFineOwed   float64
	SilverFineOwed float64
}

// AnalyticsRepository defines interface for analytics/aggregation queries
type AnalyticsRepository interface {
	// GetTopLedgers returns top customers by sales volume
	GetTopLedgers(ctx context.Context, limit int) ([]TopLedgerResult, error)

	// GetSalesByMetal returns sales aggregated by metal type with percentages
	GetSalesByMetal(ctx context.Context) ([]MetalSalesResult, error)

	// GetDailySales returns daily sales data for the last N days
	GetDailySales(ctx context.Context, days int) ([]DailySalesResult, error)

	// GetTotalRevenue returns total sale-voucher revenue
	GetTotalRevenue(ctx context.Context) (float64, error)

	// GetMonthlyRevenue returns revenue for the current month
	GetMonthlyRevenue(ctx context.Context) (float64, error)

	// GetOutstanding sums what customers owe the shop across all ledgers
	GetOutstanding(ctx context.Context) (*OutstandingResult, error)
}
