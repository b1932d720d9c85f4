package contract

import (
	"context"

	"parts-catalog-be/internal/entity"
	"parts-catalog-be/internal/repository/specification"
)

// SearchHistoryRepository is append-only: entries are created and read,
// never updated or deleted.
type SearchHistoryRepository interface {
	Create(ctx context.Context, entry *entity.SearchHistoryEntry) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SearchHistoryEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
