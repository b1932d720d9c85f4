package mapper

import (
	"parts-catalog-be/internal/entity"
	"parts-catalog-be/internal/model"

	"github.com/google/uuid"
)

type FavoriteMapper struct{}

func NewFavoriteMapper() *FavoriteMapper {
	return &FavoriteMapper{}
}

// ToEntity collapses the two nullable reference columns into the tagged
// reference. The column matching favorite_type wins; a row whose payload
// column is null maps to a zero-id reference and is treated as dangling
// by callers.
func (m *FavoriteMapper) ToEntity(n *model.Favorite) *entity.Favorite {
	if n == nil {
		return nil
	}

	ref := entity.FavoriteRef{Kind: entity.FavoriteKind(n.FavoriteType)}
	switch ref.Kind {
	case entity.FavoriteMachine:
		if n.MachineId != nil {
			ref.Id = *n.MachineId
		}
	case entity.FavoriteComponent:
		if n.ComponentId != nil {
			ref.Id = *n.ComponentId
		}
	}

	return &entity.Favorite{
		Id:        n.Id,
		UserKey:   n.UserId,
		Ref:       ref,
		CreatedAt: n.CreatedAt,
	}
}

// ToModel writes the tagged reference back into exactly one payload
// column, keeping the schema's favorite_type agreement invariant.
func (m *FavoriteMapper) ToModel(n *entity.Favorite) *model.Favorite {
	if n == nil {
		return nil
	}

	row := &model.Favorite{
		Id:           n.Id,
		UserId:       n.UserKey,
		FavoriteType: string(n.Ref.Kind),
		CreatedAt:    n.CreatedAt,
	}

	id := n.Ref.Id
	switch n.Ref.Kind {
	case entity.FavoriteMachine:
		row.MachineId = &id
	case entity.FavoriteComponent:
		row.ComponentId = &id
	}

	return row
}

func (m *FavoriteMapper) ToEntities(favorites []*model.Favorite) []*entity.Favorite {
	entities := make([]*entity.Favorite, len(favorites))
	for i, n := range favorites {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

// RefColumns returns the column values a tagged reference occupies,
// used by repositories to build keyed predicates.
func RefColumns(ref entity.FavoriteRef) (machineId, componentId *uuid.UUID) {
	id := ref.Id
	switch ref.Kind {
	case entity.FavoriteMachine:
		return &id, nil
	case entity.FavoriteComponent:
		return nil, &id
	}
	return nil, nil
}
