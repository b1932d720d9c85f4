package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MachineSearch matches machines by name, model or SAP number.
type MachineSearch struct {
	Query string
}

func (s MachineSearch) Apply(db *gorm.DB) *gorm.DB {
	pattern := likePattern(s.Query)
	return db.Where(
		`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(model) LIKE ? ESCAPE '\' OR LOWER(sap_number) LIKE ? ESCAPE '\'`,
		pattern, pattern, pattern,
	)
}

// ComponentSearch matches components by either localized name, SAP number
// or position label.
type ComponentSearch struct {
	Query string
}

func (s ComponentSearch) Apply(db *gorm.DB) *gorm.DB {
	pattern := likePattern(s.Query)
	return db.Where(
		`LOWER(name_de) LIKE ? ESCAPE '\' OR LOWER(name_en) LIKE ? ESCAPE '\' OR LOWER(sap_number) LIKE ? ESCAPE '\' OR LOWER(pos_number) LIKE ? ESCAPE '\'`,
		pattern, pattern, pattern, pattern,
	)
}

// CategorySearch matches categories by name or description.
type CategorySearch struct {
	Query string
}

func (s CategorySearch) Apply(db *gorm.DB) *gorm.DB {
	pattern := likePattern(s.Query)
	return db.Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\'`, pattern, pattern)
}

// ByMachineID filters rows owned by a machine.
type ByMachineID struct {
	MachineID uuid.UUID
}

func (s ByMachineID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("machine_id = ?", s.MachineID)
}

// ByMachineIDs filters rows owned by several machines.
type ByMachineIDs struct {
	MachineIDs []uuid.UUID
}

func (s ByMachineIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("machine_id IN ?", s.MachineIDs)
}

// ByCategoryID filters components in a category.
type ByCategoryID struct {
	CategoryID uuid.UUID
}

func (s ByCategoryID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category_id = ?", s.CategoryID)
}

// ByComponentID filters dependent rows of a component.
type ByComponentID struct {
	ComponentID uuid.UUID
}

func (s ByComponentID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("component_id = ?", s.ComponentID)
}

// ByComponentIDs filters dependent rows of several components.
type ByComponentIDs struct {
	ComponentIDs []uuid.UUID
}

func (s ByComponentIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("component_id IN ?", s.ComponentIDs)
}

// SparePartsOnly keeps components flagged as spare parts.
type SparePartsOnly struct{}

func (SparePartsOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_spare_part = ?", true)
}

// WearingPartsOnly keeps components flagged as wearing parts.
type WearingPartsOnly struct{}

func (WearingPartsOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_wearing_part = ?", true)
}

// ByPosNumber filters components by exact position label.
type ByPosNumber struct {
	PosNumber string
}

func (s ByPosNumber) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("pos_number = ?", s.PosNumber)
}

// ByDrawingType filters drawings by type.
type ByDrawingType struct {
	DrawingType string
}

func (s ByDrawingType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("drawing_type = ?", s.DrawingType)
}

// HasSpecifications keeps components with (or without) specification rows.
type HasSpecifications struct {
	Has bool
}

func (s HasSpecifications) Apply(db *gorm.DB) *gorm.DB {
	if s.Has {
		return db.Where("id IN (SELECT component_id FROM component_specifications)")
	}
	return db.Where("id NOT IN (SELECT component_id FROM component_specifications)")
}

// HasImages keeps components with (or without) image rows.
type HasImages struct {
	Has bool
}

func (s HasImages) Apply(db *gorm.DB) *gorm.DB {
	if s.Has {
		return db.Where("id IN (SELECT component_id FROM component_images)")
	}
	return db.Where("id NOT IN (SELECT component_id FROM component_images)")
}

// PrimaryOnly keeps primary component images.
type PrimaryOnly struct{}

func (PrimaryOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_primary = ?", true)
}
