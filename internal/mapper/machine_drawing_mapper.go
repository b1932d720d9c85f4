package mapper

import (
	"encoding/json"
	"time"

	"parts-catalog-be/internal/entity"
	"parts-catalog-be/internal/model"
	"parts-catalog-be/pkg/hotspot"

	"gorm.io/datatypes"
)

type MachineDrawingMapper struct{}

func NewMachineDrawingMapper() *MachineDrawingMapper {
	return &MachineDrawingMapper{}
}

func (m *MachineDrawingMapper) ToEntity(n *model.MachineDrawing) *entity.MachineDrawing {
	if n == nil {
		return nil
	}

	var updatedAt *time.Time
	if !n.UpdatedAt.IsZero() {
		t := n.UpdatedAt
		updatedAt = &t
	}

	// JSON array decoding keeps element order, which hit testing relies on.
	var areas []hotspot.Area
	if len(n.ClickableAreas) > 0 {
		_ = json.Unmarshal(n.ClickableAreas, &areas)
	}

	return &entity.MachineDrawing{
		Id:             n.Id,
		MachineId:      n.MachineId,
		Title:          n.Title,
		FilePath:       n.FilePath,
		DrawingType:    entity.DrawingType(n.DrawingType),
		PageNumber:     n.PageNumber,
		ClickableAreas: areas,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *MachineDrawingMapper) ToModel(n *entity.MachineDrawing) *model.MachineDrawing {
	if n == nil {
		return nil
	}

	var updatedAt time.Time
	if n.UpdatedAt != nil {
		updatedAt = *n.UpdatedAt
	}

	var areas datatypes.JSON
	if n.ClickableAreas != nil {
		raw, _ := json.Marshal(n.ClickableAreas)
		areas = datatypes.JSON(raw)
	}

	return &model.MachineDrawing{
		Id:             n.Id,
		MachineId:      n.MachineId,
		Title:          n.Title,
		FilePath:       n.FilePath,
		DrawingType:    string(n.DrawingType),
		PageNumber:     n.PageNumber,
		ClickableAreas: areas,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *MachineDrawingMapper) ToEntities(drawings []*model.MachineDrawing) []*entity.MachineDrawing {
	entities := make([]*entity.MachineDrawing, len(drawings))
	for i, n := range drawings {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
