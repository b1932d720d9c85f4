package contract

import (
	"context"

	"parts-catalog-be/internal/entity"
	"parts-catalog-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *entity.Favorite) error
	Delete(ctx context.Context, id uuid.UUID) error
	// FindByKey looks up the favorite for the (user, tagged reference)
	// dedup key; nil when absent.
	FindByKey(ctx context.Context, userKey string, ref entity.FavoriteRef) (*entity.Favorite, error)
	// DeleteByKey removes the favorite for the dedup key in one statement
	// and reports the rows actually deleted, so concurrent removes of the
	// same key cannot both claim the deletion.
	DeleteByKey(ctx context.Context, userKey string, ref entity.FavoriteRef) (int64, error)
	// DeleteByRef removes every favorite pointing at the referenced
	// entity, across all users. Used by cascading deletes.
	DeleteByRef(ctx context.Context, ref entity.FavoriteRef) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Favorite, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
