package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/domain/entity"
)

// SettlementRepository defines the interface for settlement data operations
type SettlementRepository interface {
	Create(ctx context.Context, settlement *entity.Settlement) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Settlement, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// ListByLedger returns a ledger's settlements, oldest first.
	ListByLedger(ctx context.Context, ledgerID uuid.UUID) ([]entity.Settlement, error)
}
