package service

import (
	"context"
	"time"

	"parts-catalog-be/internal/dto"
	"parts-catalog-be/internal/entity"
	"parts-catalog-be/internal/pkg/apperror"
	"parts-catalog-be/internal/pkg/filestore"
	"parts-catalog-be/internal/repository/specification"
	"parts-catalog-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IMachineService interface {
	List(ctx context.Context, req *dto.ListMachinesRequest) (*dto.Paginated[dto.MachineResponse], error)
	Show(ctx context.Context, id uuid.UUID) (*dto.MachineResponse, error)
	Create(ctx context.Context, req *dto.CreateMachineRequest) (*dto.CreateMachineResponse, error)
	Update(ctx context.Context, req *dto.UpdateMachineRequest) (*dto.UpdateMachineResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Components(ctx context.Context, req *dto.ListMachineComponentsRequest) (*dto.Paginated[dto.ComponentResponse], error)
	DrawingByType(ctx context.Context, machineId uuid.UUID, drawingType string) (*dto.DrawingResponse, error)
}

type machineService struct {
	uowFactory       unitofwork.RepositoryFactory
	store            filestore.Store
	publisherService IPublisherService
}

func NewMachineService(
	uowFactory unitofwork.RepositoryFactory,
	store filestore.Store,
	publisherService IPublisherService,
) IMachineService {
	return &machineService{
		uowFactory:       uowFactory,
		store:            store,
		publisherService: publisherService,
	}
}

func (s *machineService) List(ctx context.Context, req *dto.ListMachinesRequest) (*dto.Paginated[dto.MachineResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	page, perPage := normalizePage(req.Page, req.PerPage)

	specs := []specification.Specification{}
	if req.Search != "" {
		specs = append(specs, specification.MachineSearch{Query: req.Search})
	}

	total, err := uow.MachineRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	specs = append(specs, specification.OrderBy{Field: "name"}, pagination(page, perPage))
	machines, err := uow.MachineRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.MachineResponse, 0, len(machines))
	machineIds := make([]uuid.UUID, 0, len(machines))
	for _, m := range machines {
		items = append(items, machineToResponse(m))
		machineIds = append(machineIds, m.Id)
	}

	// Attach drawings per machine in one query.
	if len(machineIds) > 0 {
		drawings, err := uow.DrawingRepository().FindAll(ctx, specification.ByMachineIDs{MachineIDs: machineIds})
		if err != nil {
			return nil, err
		}
		drawingsByMachine := make(map[uuid.UUID][]dto.DrawingResponse)
		for _, d := range drawings {
			drawingsByMachine[d.MachineId] = append(drawingsByMachine[d.MachineId], drawingToResponse(d))
		}
		for i := range items {
			items[i].Drawings = drawingsByMachine[items[i].Id]
		}
	}

	return &dto.Paginated[dto.MachineResponse]{
		Items:      items,
		Pagination: pageMeta(page, perPage, total),
	}, nil
}

func (s *machineService) Show(ctx context.Context, id uuid.UUID) (*dto.MachineResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	machine, err := uow.MachineRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if machine == nil {
		return nil, apperror.NotFound("machine")
	}

	res := machineToResponse(machine)

	drawings, err := uow.DrawingRepository().FindAll(ctx, specification.ByMachineID{MachineID: id})
	if err != nil {
		return nil, err
	}
	for _, d := range drawings {
		res.Drawings = append(res.Drawings, drawingToResponse(d))
	}

	components, err := uow.ComponentRepository().FindAll(ctx,
		specification.ByMachineID{MachineID: id},
		specification.OrderBy{Field: "pos_number"},
	)
	if err != nil {
		return nil, err
	}
	res.Components, err = assembleComponents(ctx, uow, components)
	if err != nil {
		return nil, err
	}

	return &res, nil
}

func (s *machineService) Create(ctx context.Context, req *dto.CreateMachineRequest) (*dto.CreateMachineResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	machine := entity.Machine{
		Id:          uuid.New(),
		Name:        req.Name,
		Model:       req.Model,
		SapNumber:   req.SapNumber,
		Description: req.Description,
		Company:     req.Company,
		CreatedAt:   time.Now(),
	}

	if req.Image != nil {
		path, err := s.store.Save("machines", req.Image.Name, req.Image.Data)
		if err != nil {
			return nil, apperror.Storage(err)
		}
		machine.ImagePath = path
	}

	if err := uow.MachineRepository().Create(ctx, &machine); err != nil {
		return nil, err
	}

	return &dto.CreateMachineResponse{Id: machine.Id}, nil
}

func (s *machineService) Update(ctx context.Context, req *dto.UpdateMachineRequest) (*dto.UpdateMachineResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	machine, err := uow.MachineRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if machine == nil {
		return nil, apperror.NotFound("machine")
	}

	now := time.Now()
	machine.Name = req.Name
	machine.Model = req.Model
	machine.SapNumber = req.SapNumber
	machine.Description = req.Description
	machine.Company = req.Company
	machine.UpdatedAt = &now

	oldImage := ""
	if req.Image != nil {
		path, err := s.store.Save("machines", req.Image.Name, req.Image.Data)
		if err != nil {
			return nil, apperror.Storage(err)
		}
		oldImage = machine.ImagePath
		machine.ImagePath = path
	}

	if err := uow.MachineRepository().Update(ctx, machine); err != nil {
		return nil, err
	}

	if oldImage != "" {
		_ = s.publisherService.Publish(ctx, cleanupPayload([]string{oldImage}))
	}

	return &dto.UpdateMachineResponse{Id: machine.Id}, nil
}

// Delete removes the machine and everything hanging off it: components with
// their images and specifications, drawings, and favorites pointing at any
// of them. Rows go inside one transaction; blobs are cleaned up after commit
// via the event bus.
func (s *machineService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	machine, err := uow.MachineRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if machine == nil {
		return apperror.NotFound("machine")
	}

	components, err := uow.ComponentRepository().FindAll(ctx, specification.ByMachineID{MachineID: id})
	if err != nil {
		return err
	}
	drawings, err := uow.DrawingRepository().FindAll(ctx, specification.ByMachineID{MachineID: id})
	if err != nil {
		return err
	}

	blobs := []string{machine.ImagePath}
	for _, d := range drawings {
		blobs = append(blobs, d.FilePath)
	}

	componentIds := make([]uuid.UUID, 0, len(components))
	for _, c := range components {
		componentIds = append(componentIds, c.Id)
	}
	if len(componentIds) > 0 {
		images, err := uow.ComponentImageRepository().FindAll(ctx,
			specification.ByComponentIDs{ComponentIDs: componentIds},
		)
		if err != nil {
			return err
		}
		for _, img := range images {
			blobs = append(blobs, img.ImagePath)
		}
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	for _, c := range components {
		if err := uow.ComponentImageRepository().DeleteByComponentId(ctx, c.Id); err != nil {
			return err
		}
		if err := uow.ComponentSpecificationRepository().DeleteByComponentId(ctx, c.Id); err != nil {
			return err
		}
		if err := uow.FavoriteRepository().DeleteByRef(ctx, entity.ComponentRef(c.Id)); err != nil {
			return err
		}
	}
	if err := uow.ComponentRepository().DeleteByMachineId(ctx, id); err != nil {
		return err
	}
	if err := uow.DrawingRepository().DeleteByMachineId(ctx, id); err != nil {
		return err
	}
	if err := uow.FavoriteRepository().DeleteByRef(ctx, entity.MachineRef(id)); err != nil {
		return err
	}
	if err := uow.MachineRepository().Delete(ctx, id); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	_ = s.publisherService.Publish(ctx, cleanupPayload(blobs))
	return nil
}

func (s *machineService) Components(ctx context.Context, req *dto.ListMachineComponentsRequest) (*dto.Paginated[dto.ComponentResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	machine, err := uow.MachineRepository().FindOne(ctx, specification.ByID{ID: req.MachineId})
	if err != nil {
		return nil, err
	}
	if machine == nil {
		return nil, apperror.NotFound("machine")
	}

	page, perPage := normalizePage(req.Page, req.PerPage)
	specs := []specification.Specification{specification.ByMachineID{MachineID: req.MachineId}}
	if req.CategoryId != nil {
		specs = append(specs, specification.ByCategoryID{CategoryID: *req.CategoryId})
	}
	if req.IsSparePart != nil && *req.IsSparePart {
		specs = append(specs, specification.SparePartsOnly{})
	}
	if req.IsWearingPart != nil && *req.IsWearingPart {
		specs = append(specs, specification.WearingPartsOnly{})
	}
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

	return &dto.Paginated[dto.ComponentResponse]{
		Items:      items,
		Pagination: pageMeta(page, perPage, total),
	}, nil
}

func (s *machineService) DrawingByType(ctx context.Context, machineId uuid.UUID, drawingType string) (*dto.DrawingResponse, error) {
	if !entity.ValidDrawingType(drawingType) {
		return nil, apperror.Validation("type", "unknown drawing type")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	drawing, err := uow.DrawingRepository().FindOne(ctx,
		specification.ByMachineID{MachineID: machineId},
		specification.ByDrawingType{DrawingType: drawingType},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}
	if drawing == nil {
		return nil, apperror.NotFound("drawing")
	}

	res := drawingToResponse(drawing)
	return &res, nil
}
