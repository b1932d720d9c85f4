package service

import (
	"context"
	"fmt"
	"time"

	"parts-catalog-be/internal/dto"
	"parts-catalog-be/internal/entity"
	"parts-catalog-be/internal/repository/specification"
	"parts-catalog-be/internal/repository/unitofwork"
	"parts-catalog-be/pkg/period"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

type IAnalyticsService interface {
	PopularQueries(ctx context.Context, req *dto.AnalyticsRequest) ([]dto.PopularQueryResponse, error)
	SearchTrends(ctx context.Context, req *dto.AnalyticsRequest) ([]dto.SearchTrendResponse, error)
	PopularMachines(ctx context.Context, req *dto.AnalyticsRequest) ([]dto.PopularMachineResponse, error)
	PopularComponents(ctx context.Context, req *dto.AnalyticsRequest) ([]dto.PopularComponentResponse, error)
	UserFavorites(ctx context.Context, userKey string) (*dto.UserFavoritesAnalyticsResponse, error)
}

// analyticsService aggregates history and favorites in memory. Result sets
// are small and window-bounded; a short TTL cache absorbs dashboard polling.
type analyticsService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

func NewAnalyticsService(uowFactory unitofwork.RepositoryFactory) IAnalyticsService {
	return &analyticsService{
		uowFactory: uowFactory,
		cache:      gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func analyticsLimit(limit int) int {
	if limit < 1 || limit > 50 {
		return 10
	}
	return limit
}

func (s *analyticsService) historySince(ctx context.Context, uow unitofwork.UnitOfWork, p period.Period, typeFilter string) ([]*entity.SearchHistoryEntry, error) {
	specs := []specification.Specification{
		specification.SearchedSince{Since: period.WindowStart(p, time.Now())},
	}
	if typeFilter != "" {
		specs = append(specs, specification.BySearchType{SearchType: typeFilter})
	}
	return uow.SearchHistoryRepository().FindAll(ctx, specs...)
}

func (s *analyticsService) PopularQueries(ctx context.Context, req *dto.AnalyticsRequest) ([]dto.PopularQueryResponse, error) {
	limit := analyticsLimit(req.Limit)
	key := fmt.Sprintf("popular_queries:%s:%d", req.Type, limit)
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]dto.PopularQueryResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	specs := []specification.Specification{
		specification.OrderBy{Field: "searched_at"},
	}
	if req.Type != "" {
		specs = append(specs, specification.BySearchType{SearchType: req.Type})
	}
	entries, err := uow.SearchHistoryRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := aggregatePopularQueries(entries, limit)
	s.cache.SetDefault(key, result)
	return result, nil
}

func (s *analyticsService) SearchTrends(ctx context.Context, req *dto.AnalyticsRequest) ([]dto.SearchTrendResponse, error) {
	p := period.Parse(req.Period, period.Week)
	key := fmt.Sprintf("search_trends:%s:%s", p, req.Type)
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]dto.SearchTrendResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	entries, err := s.historySince(ctx, uow, p, req.Type)
	if err != nil {
		return nil, err
	}

	result := aggregateTrends(entries)
	s.cache.SetDefault(key, result)
	return result, nil
}

// PopularMachines ranks machines favorited within the window. Search counts
// come from window history entries whose query matches the machine's name,
// model or SAP number; they only break ties between equal favorite counts.
func (s *analyticsService) PopularMachines(ctx context.Context, req *dto.AnalyticsRequest) ([]dto.PopularMachineResponse, error) {
	p := period.Parse(req.Period, period.Week)
	limit := analyticsLimit(req.Limit)
	key := fmt.Sprintf("popular_machines:%s:%d", p, limit)
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]dto.PopularMachineResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	favorites, err := uow.FavoriteRepository().FindAll(ctx,
		specification.ByFavoriteType{FavoriteType: string(entity.FavoriteMachine)},
		specification.CreatedSince{Since: period.WindowStart(p, time.Now())},
	)
	if err != nil {
		return nil, err
	}
	favoriteCounts := countFavoritesByRef(favorites)
	if len(favoriteCounts) == 0 {
		result := make([]dto.PopularMachineResponse, 0)
		s.cache.SetDefault(key, result)
		return result, nil
	}

	ids := make([]uuid.UUID, 0, len(favoriteCounts))
	for id := range favoriteCounts {
		ids = append(ids, id)
	}
	machines, err := uow.MachineRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, err
	}
	machinesById := make(map[uuid.UUID]*entity.Machine, len(machines))
	for _, m := range machines {
		machinesById[m.Id] = m
	}

	entries, err := s.historySince(ctx, uow, p, "")
	if err != nil {
		return nil, err
	}

	ranks := make([]popularityRank, 0, len(machines))
	for _, m := range machines {
		ranks = append(ranks, popularityRank{
			id:             m.Id,
			favoritesCount: favoriteCounts[m.Id],
			searchCount:    searchCountFor(entries, m.Name, m.Model, m.SapNumber),
		})
	}
	sortPopularity(ranks)
	if len(ranks) > limit {
		ranks = ranks[:limit]
	}

	result := make([]dto.PopularMachineResponse, 0, len(ranks))
	for _, r := range ranks {
		result = append(result, dto.PopularMachineResponse{
			Machine:        machineToResponse(machinesById[r.id]),
			FavoritesCount: r.favoritesCount,
			SearchCount:    r.searchCount,
		})
	}
	s.cache.SetDefault(key, result)
	return result, nil
}

func (s *analyticsService) PopularComponents(ctx context.Context, req *dto.AnalyticsRequest) ([]dto.PopularComponentResponse, error) {
	p := period.Parse(req.Period, period.Week)
	limit := analyticsLimit(req.Limit)
	key := fmt.Sprintf("popular_components:%s:%d", p, limit)
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]dto.PopularComponentResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	favorites, err := uow.FavoriteRepository().FindAll(ctx,
		specification.ByFavoriteType{FavoriteType: string(entity.FavoriteComponent)},
		specification.CreatedSince{Since: period.WindowStart(p, time.Now())},
	)
	if err != nil {
		return nil, err
	}
	favoriteCounts := countFavoritesByRef(favorites)
	if len(favoriteCounts) == 0 {
		result := make([]dto.PopularComponentResponse, 0)
		s.cache.SetDefault(key, result)
		return result, nil
	}

	ids := make([]uuid.UUID, 0, len(favoriteCounts))
	for id := range favoriteCounts {
		ids = append(ids, id)
	}
	components, err := uow.ComponentRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, err
	}

	entries, err := s.historySince(ctx, uow, p, "")
	if err != nil {
		return nil, err
	}

	ranks := make([]popularityRank, 0, len(components))
	componentsById := make(map[uuid.UUID]*entity.Component, len(components))
	for _, c := range components {
		componentsById[c.Id] = c
		ranks = append(ranks, popularityRank{
			id:             c.Id,
			favoritesCount: favoriteCounts[c.Id],
			searchCount:    searchCountFor(entries, c.NameEn, c.NameDe, c.SapNumber, c.PosNumber),
		})
	}
	sortPopularity(ranks)
	if len(ranks) > limit {
		ranks = ranks[:limit]
	}

	assembled, err := assembleComponents(ctx, uow, components)
	if err != nil {
		return nil, err
	}
	assembledById := make(map[uuid.UUID]dto.ComponentResponse, len(assembled))
	for _, c := range assembled {
		assembledById[c.Id] = c
	}

	result := make([]dto.PopularComponentResponse, 0, len(ranks))
	for _, r := range ranks {
		result = append(result, dto.PopularComponentResponse{
			Component:      assembledById[r.id],
			FavoritesCount: r.favoritesCount,
			SearchCount:    r.searchCount,
		})
	}
	s.cache.SetDefault(key, result)
	return result, nil
}

func (s *analyticsService) UserFavorites(ctx context.Context, userKey string) (*dto.UserFavoritesAnalyticsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	machineCount, err := uow.FavoriteRepository().Count(ctx,
		specification.ForUser{UserKey: userKey},
		specification.ByFavoriteType{FavoriteType: string(entity.FavoriteMachine)},
	)
	if err != nil {
		return nil, err
	}
	componentCount, err := uow.FavoriteRepository().Count(ctx,
		specification.ForUser{UserKey: userKey},
		specification.ByFavoriteType{FavoriteType: string(entity.FavoriteComponent)},
	)
	if err != nil {
		return nil, err
	}

	return &dto.UserFavoritesAnalyticsResponse{
		TotalFavorites:     int(machineCount + componentCount),
		MachineFavorites:   int(machineCount),
		ComponentFavorites: int(componentCount),
	}, nil
}
