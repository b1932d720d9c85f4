package mapper

import (
	"time"

	"parts-catalog-be/internal/entity"
	"parts-catalog-be/internal/model"
)

type CategoryMapper struct{}

func NewCategoryMapper() *CategoryMapper {
	return &CategoryMapper{}
}

func (m *CategoryMapper) ToEntity(n *model.Category) *entity.Category {
	if n == nil {
		return nil
	}

	var updatedAt *time.Time
	if !n.UpdatedAt.IsZero() {
		t := n.UpdatedAt
		updatedAt = &t
	}

	return &entity.Category{
		Id:          n.Id,
		Name:        n.Name,
		Description: n.Description,
		ImagePath:   n.ImagePath,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *CategoryMapper) ToModel(n *entity.Category) *model.Category {
	if n == nil {
		return nil
	}

	var updatedAt time.Time
	if n.UpdatedAt != nil {
		updatedAt = *n.UpdatedAt
	}

	return &model.Category{
		Id:          n.Id,
		Name:        n.Name,
		Description: n.Description,
		ImagePath:   n.ImagePath,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *CategoryMapper) ToEntities(categories []*model.Category) []*entity.Category {
	entities := make([]*entity.Category, len(categories))
	for i, n := range categories {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
