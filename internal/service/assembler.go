package service

import (
	"context"
	"encoding/json"

	"parts-catalog-be/internal/dto"
	"parts-catalog-be/internal/entity"
	"parts-catalog-be/internal/repository/specification"
	"parts-catalog-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

func pageMeta(page, perPage int, total int64) dto.Pagination {
	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	return dto.Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}

func pagination(page, perPage int) specification.Pagination {
	return specification.Pagination{
		Limit:  perPage,
		Offset: (page - 1) * perPage,
	}
}

func machineToResponse(m *entity.Machine) dto.MachineResponse {
	return dto.MachineResponse{
		Id:          m.Id,
		Name:        m.Name,
		Model:       m.Model,
		SapNumber:   m.SapNumber,
		Description: m.Description,
		ImagePath:   m.ImagePath,
		Company:     m.Company,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func categoryToResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		Id:          c.Id,
		Name:        c.Name,
		Description: c.Description,
		ImagePath:   c.ImagePath,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func componentToResponse(c *entity.Component) dto.ComponentResponse {
	return dto.ComponentResponse{
		Id:            c.Id,
		MachineId:     c.MachineId,
		CategoryId:    c.CategoryId,
		PosNumber:     c.PosNumber,
		Quantity:      c.Quantity,
		Unit:          c.Unit,
		NameDe:        c.NameDe,
		NameEn:        c.NameEn,
		SapNumber:     c.SapNumber,
		Description:   c.Description,
		IsSparePart:   c.IsSparePart,
		IsWearingPart: c.IsWearingPart,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func imageToResponse(i *entity.ComponentImage) dto.ComponentImageResponse {
	return dto.ComponentImageResponse{
		Id:        i.Id,
		ImagePath: i.ImagePath,
		AltText:   i.AltText,
		IsPrimary: i.IsPrimary,
		SortOrder: i.SortOrder,
	}
}

func specToResponse(s *entity.ComponentSpecification) dto.ComponentSpecificationResponse {
	return dto.ComponentSpecificationResponse{
		Id:             s.Id,
		SpecKey:        s.SpecKey,
		SpecValue:      s.SpecValue,
		SpecUnit:       s.SpecUnit,
		FormattedValue: s.FormattedValue(),
	}
}

func drawingToResponse(d *entity.MachineDrawing) dto.DrawingResponse {
	return dto.DrawingResponse{
		Id:             d.Id,
		MachineId:      d.MachineId,
		Title:          d.Title,
		FilePath:       d.FilePath,
		DrawingType:    string(d.DrawingType),
		PageNumber:     d.PageNumber,
		ClickableAreas: d.ClickableAreas,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// assembleComponents batches the eager loads for a component listing:
// images, specifications, owning machines and categories are each fetched
// in one query and stitched in memory.
func assembleComponents(ctx context.Context, uow unitofwork.UnitOfWork, comps []*entity.Component) ([]dto.ComponentResponse, error) {
	result := make([]dto.ComponentResponse, 0, len(comps))
	if len(comps) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, 0, len(comps))
	machineIds := make([]uuid.UUID, 0, len(comps))
	categoryIds := make([]uuid.UUID, 0)
	seenMachines := make(map[uuid.UUID]bool)
	seenCategories := make(map[uuid.UUID]bool)
	for _, c := range comps {
		ids = append(ids, c.Id)
		if !seenMachines[c.MachineId] {
			seenMachines[c.MachineId] = true
			machineIds = append(machineIds, c.MachineId)
		}
		if c.CategoryId != nil && !seenCategories[*c.CategoryId] {
			seenCategories[*c.CategoryId] = true
			categoryIds = append(categoryIds, *c.CategoryId)
		}
	}

	images, err := uow.ComponentImageRepository().FindAll(ctx,
		specification.ByComponentIDs{ComponentIDs: ids},
		specification.OrderBy{Field: "sort_order"},
	)
	if err != nil {
		return nil, err
	}
	imagesByComponent := make(map[uuid.UUID][]dto.ComponentImageResponse)
	for _, img := range images {
		imagesByComponent[img.ComponentId] = append(imagesByComponent[img.ComponentId], imageToResponse(img))
	}

	specs, err := uow.ComponentSpecificationRepository().FindAll(ctx,
		specification.ByComponentIDs{ComponentIDs: ids},
	)
	if err != nil {
		return nil, err
	}
	specsByComponent := make(map[uuid.UUID][]dto.ComponentSpecificationResponse)
	for _, s := range specs {
		specsByComponent[s.ComponentId] = append(specsByComponent[s.ComponentId], specToResponse(s))
	}

	machines, err := uow.MachineRepository().FindAll(ctx, specification.ByIDs{IDs: machineIds})
	if err != nil {
		return nil, err
	}
	machinesById := make(map[uuid.UUID]*entity.Machine, len(machines))
	for _, m := range machines {
		machinesById[m.Id] = m
	}

	categoriesById := make(map[uuid.UUID]*entity.Category)
	if len(categoryIds) > 0 {
		categories, err := uow.CategoryRepository().FindAll(ctx, specification.ByIDs{IDs: categoryIds})
		if err != nil {
			return nil, err
		}
		for _, c := range categories {
			categoriesById[c.Id] = c
		}
	}

	for _, c := range comps {
		res := componentToResponse(c)
		res.Images = imagesByComponent[c.Id]
		res.Specifications = specsByComponent[c.Id]
		if m, ok := machinesById[c.MachineId]; ok {
			mr := machineToResponse(m)
			res.Machine = &mr
		}
		if c.CategoryId != nil {
			if cat, ok := categoriesById[*c.CategoryId]; ok {
				cr := categoryToResponse(cat)
				res.Category = &cr
			}
		}
		result = append(result, res)
	}
	return result, nil
}

func cleanupPayload(paths []string) []byte {
	payload, _ := json.Marshal(dto.FileCleanupMessage{Paths: paths})
	return payload
}
