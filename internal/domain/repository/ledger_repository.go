package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/domain/entity"
	"github.com/jewelsoft/saraf-api/internal/domain/enum"
	"github.com/jewelsoft/saraf-api/pkg/pagination"
)

// LedgerRepository defines the interface for ledger data operations
type LedgerRepository interface {
	Create(ctx context.Context, ledger *entity.Ledger) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Ledger, error)
	GetByPhone(ctx context.Context, phone string) (*entity.Ledger, error)
	Update(ctx context.Context, ledger *entity.Ledger) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns the shop's ledgers with page-based pagination. An empty
	// ledgerType returns both regular and GST ledgers.
	List(ctx context.Context, params *pagination.PaginationParams, search string, ledgerType enum.LedgerType) ([]entity.Ledger, int64, error)
}
