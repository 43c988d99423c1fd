package request

import "time"

// CreateExpenseRequest represents an expense creation request
type CreateExpenseRequest struct {
	Date          *time.Time `json:"date"`
	Category      string     `json:"category" binding:"required,max=255"`
	Amount        float64    `json:"amount" binding:"required,gt=0"`
	PaymentMethod string     `json:"payment_method" binding:"omitempty,oneof=cash online"`
	Description   *string    `json:"description"`
}

// UpdateExpenseRequest represents an expense update request
type UpdateExpenseRequest struct {
	Date          *time.Time `json:"date"`
	Category      *string    `json:"category" binding:"omitempty,max=255"`
	Amount        *float64   `json:"amount" binding:"omitempty,gt=0"`
	PaymentMethod *string    `json:"payment_method" binding:"omitempty,oneof=cash online"`
	Description   *string    `json:"description"`
}

// ExpenseFilterRequest represents expense list filter parameters
type ExpenseFilterRequest struct {
	Category string `form:"category"`
	From     string `form:"from"`
	To       string `form:"to"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}
