package service

import (
	"context"
	"errors"
	"time"

	"parts-catalog-be/internal/dto"
	"parts-catalog-be/internal/entity"
	"parts-catalog-be/internal/pkg/apperror"
	"parts-catalog-be/internal/repository/specification"
	"parts-catalog-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IFavoriteService interface {
	Toggle(ctx context.Context, userKey string, req *dto.FavoriteRequest) (*dto.ToggleFavoriteResponse, error)
	Add(ctx context.Context, userKey string, req *dto.FavoriteRequest) (*dto.AddFavoriteResponse, error)
	Remove(ctx context.Context, userKey string, req *dto.FavoriteRequest) (*dto.RemoveFavoriteResponse, error)
	Exists(ctx context.Context, userKey string, req *dto.FavoriteRequest) (*dto.CheckFavoriteResponse, error)
	ListForUser(ctx context.Context, userKey string, kindFilter string) (*dto.ListFavoritesResponse, error)
	MachinesWithComponents(ctx context.Context, userKey string) ([]dto.MachineWithComponentsResponse, error)
}

type favoriteService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewFavoriteService(uowFactory unitofwork.RepositoryFactory) IFavoriteService {
	return &favoriteService{
		uowFactory: uowFactory,
	}
}

func parseRef(req *dto.FavoriteRequest) (entity.FavoriteRef, error) {
	if !entity.ValidFavoriteKind(req.Type) {
		return entity.FavoriteRef{}, apperror.Validation("favorite_type", "unknown favorite type")
	}
	return entity.FavoriteRef{Kind: entity.FavoriteKind(req.Type), Id: req.Id}, nil
}

// checkTarget verifies the referenced entity exists, dispatching over the
// tag of the reference.
func (s *favoriteService) checkTarget(ctx context.Context, uow unitofwork.UnitOfWork, ref entity.FavoriteRef) error {
	switch ref.Kind {
	case entity.FavoriteMachine:
		machine, err := uow.MachineRepository().FindOne(ctx, specification.ByID{ID: ref.Id})
		if err != nil {
			return err
		}
		if machine == nil {
			return apperror.NotFound("machine")
		}
	case entity.FavoriteComponent:
		component, err := uow.ComponentRepository().FindOne(ctx, specification.ByID{ID: ref.Id})
		if err != nil {
			return err
		}
		if component == nil {
			return apperror.NotFound("component")
		}
	}
	return nil
}

func favoriteToResponse(f *entity.Favorite) dto.FavoriteResponse {
	return dto.FavoriteResponse{
		Id:        f.Id,
		Type:      string(f.Ref.Kind),
		RefId:     f.Ref.Id,
		CreatedAt: f.CreatedAt,
	}
}

// Toggle removes the favorite when present, creates it otherwise. The
// transaction plus the unique index make concurrent toggles on the same
// key settle on one of the two states instead of duplicating rows.
func (s *favoriteService) Toggle(ctx context.Context, userKey string, req *dto.FavoriteRequest) (*dto.ToggleFavoriteResponse, error) {
	ref, err := parseRef(req)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.checkTarget(ctx, uow, ref); err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	existing, err := uow.FavoriteRepository().FindByKey(ctx, userKey, ref)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if err := uow.FavoriteRepository().Delete(ctx, existing.Id); err != nil {
			return nil, err
		}
		if err := uow.Commit(); err != nil {
			return nil, err
		}
		return &dto.ToggleFavoriteResponse{IsFavorite: false}, nil
	}

	favorite := entity.Favorite{
		Id:        uuid.New(),
		UserKey:   userKey,
		Ref:       ref,
		CreatedAt: time.Now(),
	}
	if err := uow.FavoriteRepository().Create(ctx, &favorite); err != nil {
		// A concurrent toggle won the race; the favorite exists.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			_ = uow.Rollback()
			return s.existingResponse(ctx, userKey, ref)
		}
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	res := favoriteToResponse(&favorite)
	return &dto.ToggleFavoriteResponse{IsFavorite: true, Favorite: &res}, nil
}

func (s *favoriteService) existingResponse(ctx context.Context, userKey string, ref entity.FavoriteRef) (*dto.ToggleFavoriteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.FavoriteRepository().FindByKey(ctx, userKey, ref)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return &dto.ToggleFavoriteResponse{IsFavorite: false}, nil
	}
	res := favoriteToResponse(existing)
	return &dto.ToggleFavoriteResponse{IsFavorite: true, Favorite: &res}, nil
}

// Add is find-or-create: adding an existing favorite reports created=false
// instead of failing.
func (s *favoriteService) Add(ctx context.Context, userKey string, req *dto.FavoriteRequest) (*dto.AddFavoriteResponse, error) {
	ref, err := parseRef(req)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.checkTarget(ctx, uow, ref); err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	existing, err := uow.FavoriteRepository().FindByKey(ctx, userKey, ref)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := uow.Commit(); err != nil {
			return nil, err
		}
		return &dto.AddFavoriteResponse{Favorite: favoriteToResponse(existing), Created: false}, nil
	}

	favorite := entity.Favorite{
		Id:        uuid.New(),
		UserKey:   userKey,
		Ref:       ref,
		CreatedAt: time.Now(),
	}
	if err := uow.FavoriteRepository().Create(ctx, &favorite); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			_ = uow.Rollback()
			retryUow := s.uowFactory.NewUnitOfWork(ctx)
			winner, ferr := retryUow.FavoriteRepository().FindByKey(ctx, userKey, ref)
			if ferr != nil {
				return nil, ferr
			}
			if winner != nil {
				return &dto.AddFavoriteResponse{Favorite: favoriteToResponse(winner), Created: false}, nil
			}
		}
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.AddFavoriteResponse{Favorite: favoriteToResponse(&favorite), Created: true}, nil
}

func (s *favoriteService) Remove(ctx context.Context, userKey string, req *dto.FavoriteRequest) (*dto.RemoveFavoriteResponse, error) {
	ref, err := parseRef(req)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	removed, err := uow.FavoriteRepository().DeleteByKey(ctx, userKey, ref)
	if err != nil {
		return nil, err
	}
	return &dto.RemoveFavoriteResponse{Removed: int(removed)}, nil
}

func (s *favoriteService) Exists(ctx context.Context, userKey string, req *dto.FavoriteRequest) (*dto.CheckFavoriteResponse, error) {
	ref, err := parseRef(req)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.FavoriteRepository().FindByKey(ctx, userKey, ref)
	if err != nil {
		return nil, err
	}
	return &dto.CheckFavoriteResponse{IsFavorite: existing != nil}, nil
}

// ListForUser returns the user's favorites grouped by kind, each resolved
// to the machine or component it references. Dangling favorites are
// skipped.
func (s *favoriteService) ListForUser(ctx context.Context, userKey string, kindFilter string) (*dto.ListFavoritesResponse, error) {
	if kindFilter != "" && !entity.ValidFavoriteKind(kindFilter) {
		return nil, apperror.Validation("favorite_type", "unknown favorite type")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	specs := []specification.Specification{
		specification.ForUser{UserKey: userKey},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if kindFilter != "" {
		specs = append(specs, specification.ByFavoriteType{FavoriteType: kindFilter})
	}

	favorites, err := uow.FavoriteRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	machineIds := make([]uuid.UUID, 0)
	componentIds := make([]uuid.UUID, 0)
	for _, f := range favorites {
		switch f.Ref.Kind {
		case entity.FavoriteMachine:
			machineIds = append(machineIds, f.Ref.Id)
		case entity.FavoriteComponent:
			componentIds = append(componentIds, f.Ref.Id)
		}
	}

	machinesById := make(map[uuid.UUID]*entity.Machine)
	if len(machineIds) > 0 {
		machines, err := uow.MachineRepository().FindAll(ctx, specification.ByIDs{IDs: machineIds})
		if err != nil {
			return nil, err
		}
		for _, m := range machines {
			machinesById[m.Id] = m
		}
	}

	componentsById := make(map[uuid.UUID]dto.ComponentResponse)
	if len(componentIds) > 0 {
		components, err := uow.ComponentRepository().FindAll(ctx, specification.ByIDs{IDs: componentIds})
		if err != nil {
			return nil, err
		}
		assembled, err := assembleComponents(ctx, uow, components)
		if err != nil {
			return nil, err
		}
		for _, c := range assembled {
			componentsById[c.Id] = c
		}
	}

	res := dto.ListFavoritesResponse{
		Machines:   make([]dto.FavoriteResponse, 0),
		Components: make([]dto.FavoriteResponse, 0),
	}
	for _, f := range favorites {
		fr := favoriteToResponse(f)
		switch f.Ref.Kind {
		case entity.FavoriteMachine:
			m, ok := machinesById[f.Ref.Id]
			if !ok {
				continue
			}
			mr := machineToResponse(m)
			fr.Machine = &mr
			res.Machines = append(res.Machines, fr)
		case entity.FavoriteComponent:
			c, ok := componentsById[f.Ref.Id]
			if !ok {
				continue
			}
			fr.Component = &c
			res.Components = append(res.Components, fr)
		}
	}

	return &res, nil
}

// MachinesWithComponents lists the user's favorite machines, each carrying
// the user's favorite components that belong to it.
func (s *favoriteService) MachinesWithComponents(ctx context.Context, userKey string) ([]dto.MachineWithComponentsResponse, error) {
	grouped, err := s.ListForUser(ctx, userKey, "")
	if err != nil {
		return nil, err
	}

	result := make([]dto.MachineWithComponentsResponse, 0, len(grouped.Machines))
	for _, mf := range grouped.Machines {
		item := dto.MachineWithComponentsResponse{
			Machine:    *mf.Machine,
			Components: make([]dto.ComponentResponse, 0),
		}
		for _, cf := range grouped.Components {
			if cf.Component != nil && cf.Component.MachineId == mf.Machine.Id {
				item.Components = append(item.Components, *cf.Component)
			}
		}
		result = append(result, item)
	}
	return result, nil
}
