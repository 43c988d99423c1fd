package service

import (
	"context"
	"time"

	"github.com/jewelsoft/saraf-api/internal/domain/enum"
	"github.com/jewelsoft/saraf-api/internal/domain/repository"
)

// ReportService provides dashboard statistics and sales reports
type ReportService struct {
	analyticsRepo repository.AnalyticsRepository
	expenseRepo   repository.ExpenseRepository
}

// NewReportService creates a new report service
func NewReportService(
	analyticsRepo repository.AnalyticsRepository,
	expenseRepo repository.ExpenseRepository,
) *ReportService {
	return &ReportService{
		analyticsRepo: analyticsRepo,
		expenseRepo:   expenseRepo,
	}
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	TotalRevenue   float64                       `json:"total_revenue"`
	MonthlyRevenue float64                       `json:"monthly_revenue"`
	RevenueGrowth  float64                       `json:"revenue_growth"`
	Outstanding    *repository.OutstandingResult `json:"outstanding"`
	TopLedgers     []repository.TopLedgerResult  `json:"top_ledgers"`
	MetalSales     []repository.MetalSalesResult `json:"metal_sales"`
	DailySalesData []DailySalesPoint             `json:"daily_sales_data"`
}

// DailySalesPoint represents a daily sales data point
type DailySalesPoint struct {
	Date          string  `json:"date"`
	Revenue       float64 `json:"revenue"`
	CashCollected float64 `json:"cash_collected"`
}

// GetDashboardStats returns dashboard statistics for the current shop
func (s *ReportService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	totalRevenue, err := s.analyticsRepo.GetTotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue = totalRevenue

	monthlyRevenue, err := s.analyticsRepo.GetMonthlyRevenue(ctx)
	if err != nil {
		return nil, err
	}
	stats.MonthlyRevenue = monthlyRevenue

	outstanding, err := s.analyticsRepo.GetOutstanding(ctx)
	if err != nil {
		return nil, err
	}
	stats.Outstanding = outstanding

	topLedgers, err := s.analyticsRepo.GetTopLedgers(ctx, 5)
	if err != nil {
		return nil, err
	}
	stats.TopLedgers = topLedgers

	metalSales, err := s.analyticsRepo.GetSalesByMetal(ctx)
	if err != nil {
		return nil, err
	}
	stats.MetalSales = metalSales

	daily, err := s.analyticsRepo.GetDailySales(ctx, 7)
	if err != nil {
		return nil, err
	}
	stats.DailySalesData = dailyPoints(daily, 7)

	if monthlyRevenue > 0 && totalRevenue > monthlyRevenue {
		avgOtherMonths := (totalRevenue - monthlyRevenue) / 11
		if avgOtherMonths > 0 {
			stats.RevenueGrowth = (monthlyRevenue - avgOtherMonths) / avgOtherMonths * 100
		}
	}

	return stats, nil
}

// dailyPoints fills a contiguous run of the last N days from sparse query
// results, so missing days show as zero instead of being skipped.
func dailyPoints(results []repository.DailySalesResult, days int) []DailySalesPoint {
	byDate := make(map[string]repository.DailySalesResult, len(results))
	for _, r := range results {
		byDate[r.Date.Format("2006-01-02")] = r
	}

	now := time.Now()
	points := make([]DailySalesPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		key := date.Format("2006-01-02")

		point := DailySalesPoint{Date: date.Format("Jan 02")}
		if r, ok := byDate[key]; ok {
			point.Revenue = r.Revenue
			point.CashCollected = r.CashCollected
		}
		points = append(points, point)
	}
	return points
}

// SalesForecast projects near-term revenue from recent daily sales.
type SalesForecast struct {
	DailyAverage   float64           `json:"daily_average"`
	ProjectedTotal float64           `json:"projected_total"`
	Projection     []DailySalesPoint `json:"projection"`
}

// GetSalesForecast projects the next `horizon` days of revenue using a
// moving average over the last 30 days of sales.
func (s *ReportService) GetSalesForecast(ctx context.Context, horizon int) (*SalesForecast, error) {
	if horizon <= 0 {
		horizon = 7
	}

	daily, err := s.analyticsRepo.GetDailySales(ctx, 30)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, r := range daily {
		total += r.Revenue
	}
	avg := total / 30

	forecast := &SalesForecast{
		DailyAverage:   avg,
		ProjectedTotal: avg * float64(horizon),
	}

	now := time.Now()
	for i := 1; i <= horizon; i++ {
		forecast.Projection = append(forecast.Projection, DailySalesPoint{
			Date:    now.AddDate(0, 0, i).Format("Jan 02"),
			Revenue: avg,
		})
	}
	return forecast, nil
}

// CashFlowReport sets collections against expenses for a window.
type CashFlowReport struct {
	From         time.Time `json:"from"`
	To           time.Time `json:"to"`
	CashIn       float64   `json:"cash_in"`
	ExpenseCash  float64   `json:"expense_cash"`
	ExpenseOther float64   `json:"expense_other"`
	NetCash      float64   `json:"net_cash"`
}

// GetCashFlow reports cash collected against expenses paid for the window
func (s *ReportService) GetCashFlow(ctx context.Context, from, to time.Time) (*CashFlowReport, error) {
	days := int(to.Sub(from).Hours()/24) + 1
	if days < 1 {
		days = 1
	}

	daily, err := s.analyticsRepo.GetDailySales(ctx, days)
	if err != nil {
		return nil, err
	}

	var cashIn float64
	for _, r := range daily {
		if r.Date.Before(from) || r.Date.After(to) {
			continue
		}
		cashIn += r.CashCollected
	}

	expenseCash, err := s.expenseRepo.TotalByMethod(ctx, enum.ExpenseCash, from, to)
	if err != nil {
		return nil, err
	}
	expenseOnline, err := s.expenseRepo.TotalByMethod(ctx, enum.ExpenseOnline, from, to)
	if err != nil {
		return nil, err
	}

	return &CashFlowReport{
		From:         from,
		To:           to,
		CashIn:       cashIn,
		ExpenseCash:  expenseCash,
		ExpenseOther: expenseOnline,
		NetCash:      cashIn - expenseCash,
	}, nil
}
