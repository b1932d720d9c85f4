package service

import (
	"context"
	"errors"
	"time"

	"parts-catalog-be/internal/dto"
	"parts-catalog-be/internal/entity"
	"parts-catalog-be/internal/pkg/apperror"
	"parts-catalog-be/internal/pkg/filestore"
	"parts-catalog-be/internal/repository/specification"
	"parts-catalog-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IComponentService interface {
	List(ctx context.Context, userKey string, req *dto.ListComponentsRequest) (*dto.Paginated[dto.ComponentResponse], error)
	Search(ctx context.Context, userKey string, req *dto.SearchComponentsRequest) (*dto.Paginated[dto.ComponentResponse], error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ComponentResponse, error)
	FindByPosition(ctx context.Context, req *dto.FindByPositionRequest) (*dto.ComponentResponse, error)
	Create(ctx context.Context, req *dto.CreateComponentRequest) (*dto.CreateComponentResponse, error)
	Update(ctx context.Context, req *dto.UpdateComponentRequest) (*dto.UpdateComponentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type componentService struct {
	uowFactory       unitofwork.RepositoryFactory
	store            filestore.Store
	publisherService IPublisherService
}

func NewComponentService(
	uowFactory unitofwork.RepositoryFactory,
	store filestore.Store,
	publisherService IPublisherService,
) IComponentService {
	return &componentService{
		uowFactory:       uowFactory,
		store:            store,
		publisherService: publisherService,
	}
}

func componentFilterSpecs(machineId, categoryId *uuid.UUID, isSpare, isWearing *bool) []specification.Specification {
	specs := []specification.Specification{}
	if machineId != nil {
		specs = append(specs, specification.ByMachineID{MachineID: *machineId})
	}
	if categoryId != nil {
		specs = append(specs, specification.ByCategoryID{CategoryID: *categoryId})
	}
	if isSpare != nil && *isSpare {
		specs = append(specs, specification.SparePartsOnly{})
	}
	if isWearing != nil && *isWearing {
		specs = append(specs, specification.WearingPartsOnly{})
	}
	return specs
}

func (s *componentService) List(ctx context.Context, userKey string, req *dto.ListComponentsRequest) (*dto.Paginated[dto.ComponentResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	page, perPage := normalizePage(req.Page, req.PerPage)

	specs := componentFilterSpecs(req.MachineId, req.CategoryId, req.IsSparePart, req.IsWearingPart)
	if req.Search != "" {
		specs = append(specs, specification.ComponentSearch{Query: req.Search})
	}

	total, err := uow.ComponentRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	specs = append(specs, specification.OrderBy{Field: "pos_number"}, pagination(page, perPage))
	components, err := uow.ComponentRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	items, err := assembleComponents(ctx, uow, components)
	if err != nil {
		return nil, err
	}

	// A filtered listing with a query is a search from the analytics
	// point of view.
	if req.Search != "" {
		if err := recordSearch(ctx, uow, userKey, req.Search, entity.SearchComponent, int(total)); err != nil {
			return nil, err
		}
	}

	return &dto.Paginated[dto.ComponentResponse]{
		Items:      items,
		Pagination: pageMeta(page, perPage, total),
	}, nil
}

func (s *componentService) Search(ctx context.Context, userKey string, req *dto.SearchComponentsRequest) (*dto.Paginated[dto.ComponentResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	page, perPage := normalizePage(req.Page, req.PerPage)

	specs := componentFilterSpecs(req.MachineId, req.CategoryId, req.IsSparePart, req.IsWearingPart)
	specs = append(specs, specification.ComponentSearch{Query: req.Query})

	total, err := uow.ComponentRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	specs = append(specs, specification.OrderBy{Field: "pos_number"}, pagination(page, perPage))
	components, err := uow.ComponentRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	items, err := assembleComponents(ctx, uow, components)
	if err != nil {
		return nil, err
	}

	if err := recordSearch(ctx, uow, userKey, req.Query, entity.SearchComponent, int(total)); err != nil {
		return nil, err
	}

	return &dto.Paginated[dto.ComponentResponse]{
		Items:      items,
		Pagination: pageMeta(page, perPage, total),
	}, nil
}

func (s *componentService) Show(ctx context.Context, id uuid.UUID) (*dto.ComponentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	component, err := uow.ComponentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if component == nil {
		return nil, apperror.NotFound("component")
	}

	assembled, err := assembleComponents(ctx, uow, []*entity.Component{component})
	if err != nil {
		return nil, err
	}
	return &assembled[0], nil
}

func (s *componentService) FindByPosition(ctx context.Context, req *dto.FindByPositionRequest) (*dto.ComponentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	component, err := uow.ComponentRepository().FindOne(ctx,
		specification.ByMachineID{MachineID: req.MachineId},
		specification.ByPosNumber{PosNumber: req.PosNumber},
	)
	if err != nil {
		return nil, err
	}
	if component == nil {
		return nil, apperror.NotFound("component")
	}

	assembled, err := assembleComponents(ctx, uow, []*entity.Component{component})
	if err != nil {
		return nil, err
	}
	return &assembled[0], nil
}

func (s *componentService) Create(ctx context.Context, req *dto.CreateComponentRequest) (*dto.CreateComponentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	machine, err := uow.MachineRepository().FindOne(ctx, specification.ByID{ID: req.MachineId})
	if err != nil {
		return nil, err
	}
	if machine == nil {
		return nil, apperror.Validation("machine_id", "machine does not exist")
	}
	if req.CategoryId != nil {
		category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: *req.CategoryId})
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.Validation("category_id", "category does not exist")
		}
	}

	component := entity.Component{
		Id:            uuid.New(),
		MachineId:     req.MachineId,
		CategoryId:    req.CategoryId,
		PosNumber:     req.PosNumber,
		Quantity:      req.Quantity,
		Unit:          req.Unit,
		NameDe:        req.NameDe,
		NameEn:        req.NameEn,
		SapNumber:     req.SapNumber,
		Description:   req.Description,
		IsSparePart:   req.IsSparePart,
		IsWearingPart: req.IsWearingPart,
		CreatedAt:     time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ComponentRepository().Create(ctx, &component); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("sap number already in use")
		}
		return nil, err
	}
	if err := s.createSpecifications(ctx, uow, component.Id, req.Specifications); err != nil {
		return nil, err
	}
	if err := s.createImages(ctx, uow, component.Id, req.Images, 0); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.CreateComponentResponse{Id: component.Id}, nil
}

func (s *componentService) Update(ctx context.Context, req *dto.UpdateComponentRequest) (*dto.UpdateComponentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	component, err := uow.ComponentRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if component == nil {
		return nil, apperror.NotFound("component")
	}
	if req.CategoryId != nil {
		category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: *req.CategoryId})
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.Validation("category_id", "category does not exist")
		}
	}

	now := time.Now()
	component.CategoryId = req.CategoryId
	component.PosNumber = req.PosNumber
	component.Quantity = req.Quantity
	component.Unit = req.Unit
	component.NameDe = req.NameDe
	component.NameEn = req.NameEn
	component.SapNumber = req.SapNumber
	component.Description = req.Description
	component.IsSparePart = req.IsSparePart
	component.IsWearingPart = req.IsWearingPart
	component.UpdatedAt = &now

	existingImages, err := uow.ComponentImageRepository().Count(ctx,
		specification.ByComponentID{ComponentID: component.Id},
	)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ComponentRepository().Update(ctx, component); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("sap number already in use")
		}
		return nil, err
	}

	// Specifications are replaced wholesale on every update.
	if err := uow.ComponentSpecificationRepository().DeleteByComponentId(ctx, component.Id); err != nil {
		return nil, err
	}
	if err := s.createSpecifications(ctx, uow, component.Id, req.Specifications); err != nil {
		return nil, err
	}
	if err := s.createImages(ctx, uow, component.Id, req.Images, int(existingImages)); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.UpdateComponentResponse{Id: component.Id}, nil
}

func (s *componentService) createSpecifications(ctx context.Context, uow unitofwork.UnitOfWork, componentId uuid.UUID, inputs []dto.SpecificationInput) error {
	for _, in := range inputs {
		spec := entity.ComponentSpecification{
			Id:          uuid.New(),
			ComponentId: componentId,
			SpecKey:     in.Key,
			SpecValue:   in.Value,
			SpecUnit:    in.Unit,
			CreatedAt:   time.Now(),
		}
		if err := uow.ComponentSpecificationRepository().Create(ctx, &spec); err != nil {
			return err
		}
	}
	return nil
}

// createImages stores the uploads and appends them after any existing
// images; the very first image of a component becomes primary.
func (s *componentService) createImages(ctx context.Context, uow unitofwork.UnitOfWork, componentId uuid.UUID, uploads []dto.FileUpload, offset int) error {
	for i, up := range uploads {
		path, err := s.store.Save("components", up.Name, up.Data)
		if err != nil {
			return apperror.Storage(err)
		}
		image := entity.ComponentImage{
			Id:          uuid.New(),
			ComponentId: componentId,
			ImagePath:   path,
			IsPrimary:   offset == 0 && i == 0,
			SortOrder:   offset + i,
			CreatedAt:   time.Now(),
		}
		if err := uow.ComponentImageRepository().Create(ctx, &image); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the component with its images, specifications and
// favorites in one transaction; image blobs are cleaned up after commit.
func (s *componentService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	component, err := uow.ComponentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if component == nil {
		return apperror.NotFound("component")
	}

	images, err := uow.ComponentImageRepository().FindAll(ctx,
		specification.ByComponentID{ComponentID: id},
	)
	if err != nil {
		return err
	}
	blobs := make([]string, 0, len(images))
	for _, img := range images {
		blobs = append(blobs, img.ImagePath)
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ComponentImageRepository().DeleteByComponentId(ctx, id); err != nil {
		return err
	}
	if err := uow.ComponentSpecificationRepository().DeleteByComponentId(ctx, id); err != nil {
		return err
	}
	if err := uow.FavoriteRepository().DeleteByRef(ctx, entity.ComponentRef(id)); err != nil {
		return err
	}
	if err := uow.ComponentRepository().Delete(ctx, id); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	if len(blobs) > 0 {
		_ = s.publisherService.Publish(ctx, cleanupPayload(blobs))
	}
	return nil
}
