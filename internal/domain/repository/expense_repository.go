package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/domain/entity"
	"github.com/jewelsoft/saraf-api/internal/domain/enum"
	"github.com/jewelsoft/saraf-api/pkg/pagination"
)

// ExpenseRepository defines the interface for expense data operations
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)
	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns the shop's expenses newest first, optionally filtered by
	// category and date window.
	List(ctx context.Context, params *pagination.PaginationParams, category string, from, to time.Time) ([]entity.Expense, int64, error)
	// TotalByMethod sums expense amounts per payment method inside the window.
	TotalByMethod(ctx context.Context, method enum.ExpenseMethod, from, to time.Time) (float64, error)
}
