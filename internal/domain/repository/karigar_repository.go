package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jewelsoft/saraf-api/internal/domain/entity"
	"github.com/jewelsoft/saraf-api/pkg/pagination"
)

// KarigarRepository defines the interface for karigar (artisan) data operations
type KarigarRepository interface {
	Create(ctx context.Context, karigar *entity.Karigar) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Karigar, error)
	Update(ctx context.Context, karigar *entity.Karigar) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Karigar, int64, error)

	AddEntry(ctx context.Context, entry *entity.KarigarEntry) error
	GetEntry(ctx context.Context, id uuid.UUID) (*entity.KarigarEntry, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error
	// ListEntries returns a karigar's issue/receive entries, oldest first.
	ListEntries(ctx context.Context, karigarID uuid.UUID) ([]entity.KarigarEntry, error)
}
