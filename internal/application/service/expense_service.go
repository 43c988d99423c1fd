package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/domain/entity"
	"github.com/jewelsoft/saraf-api/internal/domain/enum"
	"github.com/jewelsoft/saraf-api/internal/domain/repository"
	infraRepo "github.com/jewelsoft/saraf-api/internal/infrastructure/repository"
	"github.com/jewelsoft/saraf-api/pkg/apperror"
	"github.com/jewelsoft/saraf-api/pkg/pagination"
)

// ExpenseService handles shop expense operations
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// CreateExpenseInput represents the create expense input
type CreateExpenseInput struct {
	Date          time.Time
	Category      string
	Amount        float64
	PaymentMethod enum.ExpenseMethod
	Description   *string
}

// CreateExpense records a shop expense
func (s *ExpenseService) CreateExpense(ctx context.Context, input *CreateExpenseInput) (*entity.Expense, error) {
	shopID, ok := infraRepo.GetShopID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Shop context required")
	}

	method := input.PaymentMethod
	if method == "" {
		method = enum.ExpenseCash
	}
	if !method.Valid() {
		return nil, apperror.NewBadRequestError("Invalid payment method")
	}
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Amount must be positive")
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	expense := &entity.Expense{
		ShopID:        shopID,
		Date:          date,
		Category:      input.Category,
		Amount:        input.Amount,
		PaymentMethod: method,
		Description:   input.Description,
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// GetExpense retrieves an expense by ID
func (s *ExpenseService) GetExpense(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}
	return expense, nil
}

// ListExpenses lists the shop's expenses
func (s *ExpenseService) ListExpenses(ctx context.Context, params *pagination.PaginationParams, category string, from, to time.Time) (*pagination.PaginatedResult[entity.Expense], error) {
	expenses, total, err := s.expenseRepo.List(ctx, params, category, from, to)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(expenses, pag), nil
}

// UpdateExpenseInput represents the update expense input
type UpdateExpenseInput struct {
	ID            uuid.UUID
	Date          *time.Time
	Category      *string
	Amount        *float64
	PaymentMethod *enum.ExpenseMethod
	Description   *string
}

// UpdateExpense updates an expense
func (s *ExpenseService) UpdateExpense(ctx context.Context, input *UpdateExpenseInput) (*entity.Expense, error) {
	expense, err := s.GetExpense(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		expense.Date = *input.Date
	}
	if input.Category != nil {
		expense.Category = *input.Category
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, apperror.NewBadRequestError("Amount must be positive")
		}
		expense.Amount = *input.Amount
	}
	if input.PaymentMethod != nil {
		if !input.PaymentMethod.Valid() {
			return nil, apperror.NewBadRequestError("Invalid payment method")
		}
		expense.PaymentMethod = *input.PaymentMethod
	}
	if input.Description != nil {
		expense.Description = input.Description
	}

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// DeleteExpense deletes an expense
func (s *ExpenseService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	expense, err := s.GetExpense(ctx, id)
	if err != nil {
		return err
	}
	return s.expenseRepo.Delete(ctx, expense.ID)
}

// ExpenseSummary aggregates the shop's expenses per payment method for a
// window.
type ExpenseSummary struct {
	CashTotal   float64 `json:"cash_total"`
	OnlineTotal float64 `json:"online_total"`
	Total       float64 `json:"total"`
}

// GetSummary sums expenses per payment method inside the window
func (s *ExpenseService) GetSummary(ctx context.Context, from, to time.Time) (*ExpenseSummary, error) {
	cash, err := s.expenseRepo.TotalByMethod(ctx, enum.ExpenseCash, from, to)
	if err != nil {
		return nil, err
	}
	online, err := s.expenseRepo.TotalByMethod(ctx, enum.ExpenseOnline, from, to)
	if err != nil {
		return nil, err
	}

	return &ExpenseSummary{
		CashTotal:   cash,
		OnlineTotal: online,
		Total:       cash + online,
	}, nil
}
