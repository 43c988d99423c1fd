package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	domainRepo "github.com/jewelsoft/saraf-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// shopID resolves the scoped shop from context; aggregate queries use raw SQL
// so the gorm scope helper does not apply.
func (r *analyticsRepository) shopID(ctx context.Context) uuid.UUID {
	id, _ := GetShopID(ctx)
	return id
}

func (r *analyticsRepository) GetTopLedgers(ctx context.Context, limit int) ([]domainRepo.TopLedgerResult, error) {
	var results []domainRepo.TopLedgerResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			l.id as ledger_id,
			l.name as ledger_name,
			COALESCE(SUM(v.total), 0) as total_sales,
			COUNT(v.id) as voucher_count
		FROM vouchers v
		JOIN ledgers l ON l.id = v.ledger_id
		WHERE v.shop_id = ?
			AND v.voucher_type = 'sale'
			AND v.deleted_at IS NULL
		GROUP BY l.id, l.name
		ORDER BY total_sales DESC
		LIMIT ?
	`, r.shopID(ctx), limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetSalesByMetal(ctx context.Context) ([]domainRepo.MetalSalesResult, error) {
	var results []domainRepo.MetalSalesResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			vi.metal_type,
			COALESCE(SUM(vi.fine_weight), 0) as fine_weight,
			COALESCE(SUM(vi.amount), 0) as total_sales
		FROM voucher_items vi
		JOIN vouchers v ON v.id = vi.voucher_id
		WHERE v.shop_id = ?
			AND v.voucher_type = 'sale'
			AND v.deleted_at IS NULL
		GROUP BY vi.metal_type
		ORDER BY total_sales DESC
	`, r.shopID(ctx)).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	var totalSales float64
	for i := range results {
		totalSales += results[i].TotalSales
	}
	for i := range results {
		if totalSales > 0 {
			results[i].Percentage = (results[i].TotalSales / totalSales) * 100
		}
	}

	return results, nil
}

func (r *analyticsRepository) GetDailySales(ctx context.Context, days int) ([]domainRepo.DailySalesResult, error) {
	results := make([]domainRepo.DailySalesResult, 0, days)
	now := time.Now()

	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		endOfDay := startOfDay.Add(24 * time.Hour)

		var row struct {
			Revenue sql.NullFloat64
			Cash    sql.NullFloat64
		}
		err := r.db.WithContext(ctx).Raw(`
			SELECT
				COALESCE(SUM(total), 0) as revenue,
				COALESCE(SUM(cash_received), 0) as cash
			FROM vouchers
			WHERE shop_id = ?
				AND voucher_type = 'sale'
				AND deleted_at IS NULL
				AND date >= ? AND date < ?
		`, r.shopID(ctx), startOfDay, endOfDay).Scan(&row).Error

		if err != nil {
			return nil, err
		}

		results = append(results, domainRepo.DailySalesResult{
			Date:          startOfDay,
			Revenue:       row.Revenue.Float64,
			CashCollected: row.Cash.Float64,
		})
	}

	return results, nil
}

func (r *analyticsRepository) GetTotalRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0)
		FROM vouchers
		WHERE shop_id = ? AND voucher_type = 'sale' AND deleted_at IS NULL
	`, r.shopID(ctx)).Scan(&revenue).Error

	return revenue, err
}

func (r *analyticsRepository) GetMonthlyRevenue(ctx context.Context) (float64, error) {
	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var revenue float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0)
		FROM vouchers
		WHERE shop_id = ? AND voucher_type = 'sale' AND deleted_at IS NULL AND date >= ?
	`, r.shopID(ctx), startOfMonth).Scan(&revenue).Error

	return revenue, err
}

func (r *analyticsRepository) GetOutstanding(ctx context.Context) (*domainRepo.OutstandingResult, error) {
	// Balances are stored shop-liability positive; customers owing the shop
	// show up as negative, hence the sign flip. Rows still on the legacy
	// single-amount shape fall back to it when the split is absent.
	var result domainRepo.OutstandingResult
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			-COALESCE(SUM(COALESCE(cash_balance + COALESCE(credit_balance, 0), amount)), 0) as cash_owed,
			-COALESCE(SUM(gold_fine_weight), 0) as gold_fine_owed,
			-COALESCE(SUM(silver_fine_weight), 0) as silver_fine_owed
		FROM ledgers
		WHERE shop_id = ? AND deleted_at IS NULL
	`, r.shopID(ctx)).Scan(&result).Error

	if err != nil {
		return nil, err
	}
	return &result, nil
}
