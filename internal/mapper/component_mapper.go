package mapper

import (
	"time"

	"parts-catalog-be/internal/entity"
	"parts-catalog-be/internal/model"
)

type ComponentMapper struct{}

func NewComponentMapper() *ComponentMapper {
	return &ComponentMapper{}
}

func (m *ComponentMapper) ToEntity(n *model.Component) *entity.Component {
	if n == nil {
		return nil
	}

	var updatedAt *time.Time
	if !n.UpdatedAt.IsZero() {
		t := n.UpdatedAt
		updatedAt = &t
	}

	return &entity.Component{
		Id:            n.Id,
		MachineId:     n.MachineId,
		CategoryId:    n.CategoryId,
		PosNumber:     n.PosNumber,
		Quantity:      n.Quantity,
		Unit:          n.Unit,
		NameDe:        n.NameDe,
		NameEn:        n.NameEn,
		SapNumber:     n.SapNumber,
		Description:   n.Description,
		IsSparePart:   n.IsSparePart,
		IsWearingPart: n.IsWearingPart,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *ComponentMapper) ToModel(n *entity.Component) *model.Component {
	if n == nil {
		return nil
	}

	var updatedAt time.Time
	if n.UpdatedAt != nil {
		updatedAt = *n.UpdatedAt
	}

	return &model.Component{
		Id:            n.Id,
		MachineId:     n.MachineId,
		CategoryId:    n.CategoryId,
		PosNumber:     n.PosNumber,
		Quantity:      n.Quantity,
		Unit:          n.Unit,
		NameDe:        n.NameDe,
		NameEn:        n.NameEn,
		SapNumber:     n.SapNumber,
		Description:   n.Description,
		IsSparePart:   n.IsSparePart,
		IsWearingPart: n.IsWearingPart,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *ComponentMapper) ToEntities(components []*model.Component) []*entity.Component {
	entities := make([]*entity.Component, len(components))
	for i, n := range components {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

type ComponentImageMapper struct{}

func NewComponentImageMapper() *ComponentImageMapper {
	return &ComponentImageMapper{}
}

func (m *ComponentImageMapper) ToEntity(n *model.ComponentImage) *entity.ComponentImage {
	if n == nil {
		return nil
	}

	var updatedAt *time.Time
	if !n.UpdatedAt.IsZero() {
		t := n.UpdatedAt
		updatedAt = &t
	}

	return &entity.ComponentImage{
		Id:          n.Id,
		ComponentId: n.ComponentId,
		ImagePath:   n.ImagePath,
		AltText:     n.AltText,
		IsPrimary:   n.IsPrimary,
		SortOrder:   n.SortOrder,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *ComponentImageMapper) ToModel(n *entity.ComponentImage) *model.ComponentImage {
	if n == nil {
		return nil
	}

	var updatedAt time.Time
	if n.UpdatedAt != nil {
		updatedAt = *n.UpdatedAt
	}

	return &model.ComponentImage{
		Id:          n.Id,
		ComponentId: n.ComponentId,
		ImagePath:   n.ImagePath,
		AltText:     n.AltText,
		IsPrimary:   n.IsPrimary,
		SortOrder:   n.SortOrder,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *ComponentImageMapper) ToEntities(images []*model.ComponentImage) []*entity.ComponentImage {
	entities := make([]*entity.ComponentImage, len(images))
	for i, n := range images {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

type ComponentSpecificationMapper struct{}

func NewComponentSpecificationMapper() *ComponentSpecificationMapper {
	return &ComponentSpecificationMapper{}
}

func (m *ComponentSpecificationMapper) ToEntity(n *model.ComponentSpecification) *entity.ComponentSpecification {
	if n == nil {
		return nil
	}

	var updatedAt *time.Time
	if !n.UpdatedAt.IsZero() {
		t := n.UpdatedAt
		updatedAt = &t
	}

	return &entity.ComponentSpecification{
		Id:          n.Id,
		ComponentId: n.ComponentId,
		SpecKey:     n.SpecKey,
		SpecValue:   n.SpecValue,
		SpecUnit:    n.SpecUnit,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *ComponentSpecificationMapper) ToModel(n *entity.ComponentSpecification) *model.ComponentSpecification {
	if n == nil {
		return nil
	}

	var updatedAt time.Time
	if n.UpdatedAt != nil {
		updatedAt = *n.UpdatedAt
	}

	return &model.ComponentSpecification{
		Id:          n.Id,
		ComponentId: n.ComponentId,
		SpecKey:     n.SpecKey,
		SpecValue:   n.SpecValue,
		SpecUnit:    n.SpecUnit,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *ComponentSpecificationMapper) ToEntities(specs []*model.ComponentSpecification) []*entity.ComponentSpecification {
	entities := make([]*entity.ComponentSpecification, len(specs))
	for i, n := range specs {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
