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
	"parts-catalog-be/pkg/hotspot"

	"github.com/google/uuid"
)

type IDrawingService interface {
	Show(ctx context.Context, id uuid.UUID) (*dto.DrawingResponse, error)
	Create(ctx context.Context, req *dto.CreateDrawingRequest) (*dto.CreateDrawingResponse, error)
	Update(ctx context.Context, req *dto.UpdateDrawingRequest) (*dto.UpdateDrawingResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ClickableAreas(ctx context.Context, id uuid.UUID) (*dto.ClickableAreasResponse, error)
	SetClickableAreas(ctx context.Context, req *dto.SetClickableAreasRequest) (*dto.ClickableAreasResponse, error)
	FindComponent(ctx context.Context, req *dto.FindComponentRequest) (*dto.ComponentResponse, error)
}

type drawingService struct {
	uowFactory       unitofwork.RepositoryFactory
	store            filestore.Store
	publisherService IPublisherService
}

func NewDrawingService(
	uowFactory unitofwork.RepositoryFactory,
	store filestore.Store,
	publisherService IPublisherService,
) IDrawingService {
	return &drawingService{
		uowFactory:       uowFactory,
		store:            store,
		publisherService: publisherService,
	}
}

// toAreas checks every input rectangle against the referenced components
// before anything is written, preserving the input order.
func (s *drawingService) toAreas(ctx context.Context, uow unitofwork.UnitOfWork, machineId uuid.UUID, inputs []dto.ClickableAreaInput) ([]hotspot.Area, error) {
	areas := make([]hotspot.Area, 0, len(inputs))
	for _, in := range inputs {
		component, err := uow.ComponentRepository().FindOne(ctx, specification.ByID{ID: in.ComponentId})
		if err != nil {
			return nil, err
		}
		if component == nil || component.MachineId != machineId {
			return nil, apperror.Validation("component_id", "component does not belong to this machine")
		}
		areas = append(areas, hotspot.Area{
			X:           in.X,
			Y:           in.Y,
			Width:       in.Width,
			Height:      in.Height,
			ComponentId: in.ComponentId,
		})
	}
	return areas, nil
}

func (s *drawingService) Show(ctx context.Context, id uuid.UUID) (*dto.DrawingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	drawing, err := uow.DrawingRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if drawing == nil {
		return nil, apperror.NotFound("drawing")
	}

	res := drawingToResponse(drawing)

	machine, err := uow.MachineRepository().FindOne(ctx, specification.ByID{ID: drawing.MachineId})
	if err != nil {
		return nil, err
	}
	if machine != nil {
		mr := machineToResponse(machine)
		res.Machine = &mr
	}

	componentIds := hotspot.DistinctComponentIds(drawing.ClickableAreas)
	if len(componentIds) > 0 {
		components, err := uow.ComponentRepository().FindAll(ctx, specification.ByIDs{IDs: componentIds})
		if err != nil {
			return nil, err
		}
		res.Components, err = assembleComponents(ctx, uow, components)
		if err != nil {
			return nil, err
		}
	}

	return &res, nil
}

func (s *drawingService) Create(ctx context.Context, req *dto.CreateDrawingRequest) (*dto.CreateDrawingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	machine, err := uow.MachineRepository().FindOne(ctx, specification.ByID{ID: req.MachineId})
	if err != nil {
		return nil, err
	}
	if machine == nil {
		return nil, apperror.Validation("machine_id", "machine does not exist")
	}

	areas, err := s.toAreas(ctx, uow, req.MachineId, req.ClickableAreas)
	if err != nil {
		return nil, err
	}

	drawing := entity.MachineDrawing{
		Id:             uuid.New(),
		MachineId:      req.MachineId,
		Title:          req.Title,
		DrawingType:    entity.DrawingType(req.DrawingType),
		PageNumber:     req.PageNumber,
		ClickableAreas: areas,
		CreatedAt:      time.Now(),
	}

	if req.File != nil {
		path, err := s.store.Save("drawings", req.File.Name, req.File.Data)
		if err != nil {
			return nil, apperror.Storage(err)
		}
		drawing.FilePath = path
	}

	if err := uow.DrawingRepository().Create(ctx, &drawing); err != nil {
		return nil, err
	}

	return &dto.CreateDrawingResponse{Id: drawing.Id}, nil
}

func (s *drawingService) Update(ctx context.Context, req *dto.UpdateDrawingRequest) (*dto.UpdateDrawingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	drawing, err := uow.DrawingRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if drawing == nil {
		return nil, apperror.NotFound("drawing")
	}

	areas, err := s.toAreas(ctx, uow, drawing.MachineId, req.ClickableAreas)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	drawing.Title = req.Title
	drawing.DrawingType = entity.DrawingType(req.DrawingType)
	drawing.PageNumber = req.PageNumber
	drawing.ClickableAreas = areas
	drawing.UpdatedAt = &now

	oldFile := ""
	if req.File != nil {
		path, err := s.store.Save("drawings", req.File.Name, req.File.Data)
		if err != nil {
			return nil, apperror.Storage(err)
		}
		oldFile = drawing.FilePath
		drawing.FilePath = path
	}

	if err := uow.DrawingRepository().Update(ctx, drawing); err != nil {
		return nil, err
	}

	if oldFile != "" {
		_ = s.publisherService.Publish(ctx, cleanupPayload([]string{oldFile}))
	}

	return &dto.UpdateDrawingResponse{Id: drawing.Id}, nil
}

func (s *drawingService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	drawing, err := uow.DrawingRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if drawing == nil {
		return apperror.NotFound("drawing")
	}

	if err := uow.DrawingRepository().Delete(ctx, id); err != nil {
		return err
	}

	if drawing.FilePath != "" {
		_ = s.publisherService.Publish(ctx, cleanupPayload([]string{drawing.FilePath}))
	}
	return nil
}

func (s *drawingService) ClickableAreas(ctx context.Context, id uuid.UUID) (*dto.ClickableAreasResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	drawing, err := uow.DrawingRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if drawing == nil {
		return nil, apperror.NotFound("drawing")
	}

	res := dto.ClickableAreasResponse{Areas: drawing.ClickableAreas}
	componentIds := hotspot.DistinctComponentIds(drawing.ClickableAreas)
	if len(componentIds) > 0 {
		components, err := uow.ComponentRepository().FindAll(ctx, specification.ByIDs{IDs: componentIds})
		if err != nil {
			return nil, err
		}
		res.Components, err = assembleComponents(ctx, uow, components)
		if err != nil {
			return nil, err
		}
	}

	return &res, nil
}

func (s *drawingService) SetClickableAreas(ctx context.Context, req *dto.SetClickableAreasRequest) (*dto.ClickableAreasResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	drawing, err := uow.DrawingRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if drawing == nil {
		return nil, apperror.NotFound("drawing")
	}

	areas, err := s.toAreas(ctx, uow, drawing.MachineId, req.Areas)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	drawing.ClickableAreas = areas
	drawing.UpdatedAt = &now

	if err := uow.DrawingRepository().Update(ctx, drawing); err != nil {
		return nil, err
	}

	return s.ClickableAreas(ctx, req.Id)
}

// FindComponent hit-tests a click against the drawing's areas; the first
// area in stored order wins.
func (s *drawingService) FindComponent(ctx context.Context, req *dto.FindComponentRequest) (*dto.ComponentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	drawing, err := uow.DrawingRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if drawing == nil {
		return nil, apperror.NotFound("drawing")
	}

	componentId, ok := hotspot.Resolve(drawing.ClickableAreas, req.X, req.Y)
	if !ok {
		return nil, apperror.NotFound("component")
	}

	component, err := uow.ComponentRepository().FindOne(ctx, specification.ByID{ID: componentId})
	if err != nil {
		return nil, err
	}
	if component == nil {
		// Dangling reference in the stored areas.
		return nil, apperror.NotFound("component")
	}

	assembled, err := assembleComponents(ctx, uow, []*entity.Component{component})
	if err != nil {
		return nil, err
	}
	return &assembled[0], nil
}
