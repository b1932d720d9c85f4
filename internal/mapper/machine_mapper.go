package mapper

import (
	"time"

	"parts-catalog-be/internal/entity"
	"parts-catalog-be/internal/model"
)

type MachineMapper struct{}

func NewMachineMapper() *MachineMapper {
	return &MachineMapper{}
}

func (m *MachineMapper) ToEntity(n *model.Machine) *entity.Machine {
	if n == nil {
		return nil
	}

	var updatedAt *time.Time
	if !n.UpdatedAt.IsZero() {
		t := n.UpdatedAt
		updatedAt = &t
	}

	return &entity.Machine{
		Id:          n.Id,
		Name:        n.Name,
		Model:       n.Model,
		SapNumber:   n.SapNumber,
		Description: n.Description,
		ImagePath:   n.ImagePath,
		Company:     n.Company,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *MachineMapper) ToModel(n *entity.Machine) *model.Machine {
	if n == nil {
		return nil
	}

	var updatedAt time.Time
	if n.UpdatedAt != nil {
		updatedAt = *n.UpdatedAt
	}

	return &model.Machine{
		Id:          n.Id,
		Name:        n.Name,
		Model:       n.Model,
		SapNumber:   n.SapNumber,
		Description: n.Description,
		ImagePath:   n.ImagePath,
		Company:     n.Company,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *MachineMapper) ToEntities(machines []*model.Machine) []*entity.Machine {
	entities := make([]*entity.Machine, len(machines))
	for i, n := range machines {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
