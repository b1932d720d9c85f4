package service

import (
	"context"
	"time"

	"parts-catalog-be/internal/dto"
	"parts-catalog-be/internal/entity"
	"parts-catalog-be/internal/pkg/apperror"
	"parts-catalog-be/internal/repository/specification"
	"parts-catalog-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ISearchService interface {
	Search(ctx context.Context, userKey string, req *dto.GlobalSearchRequest) (*dto.GlobalSearchResponse, error)
	AdvancedSearch(ctx context.Context, userKey string, req *dto.AdvancedSearchRequest) (*dto.Paginated[dto.ComponentResponse], error)
	Suggestions(ctx context.Context, req *dto.SuggestionsRequest) (*dto.SuggestionsResponse, error)
	History(ctx context.Context, userKey string, typeFilter string, limit int) ([]dto.SearchHistoryResponse, error)
	RecordSearch(ctx context.Context, userKey string, query string, searchType string, resultsCount int) error
}

type searchService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSearchService(uowFactory unitofwork.RepositoryFactory) ISearchService {
	return &searchService{
		uowFactory: uowFactory,
	}
}

// recordSearch appends one history entry. History is an append-only log;
// storage errors propagate so the caller's response reflects the failure.
func recordSearch(ctx context.Context, uow unitofwork.UnitOfWork, userKey string, query string, searchType entity.SearchType, resultsCount int) error {
	entry := entity.SearchHistoryEntry{
		Id:           uuid.New(),
		SearchQuery:  query,
		SearchType:   searchType,
		ResultsCount: resultsCount,
		SearchedAt:   time.Now(),
	}
	if userKey != "" {
		entry.UserKey = &userKey
	}
	return uow.SearchHistoryRepository().Create(ctx, &entry)
}

func (s *searchService) RecordSearch(ctx context.Context, userKey string, query string, searchType string, resultsCount int) error {
	if !entity.ValidSearchType(searchType) {
		return apperror.Validation("type", "unknown search type")
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return recordSearch(ctx, uow, userKey, query, entity.SearchType(searchType), resultsCount)
}

// Search runs the global machine and component lookup. The requested type
// narrows which side actually hits the store; the other side comes back
// empty with a zero total.
func (s *searchService) Search(ctx context.Context, userKey string, req *dto.GlobalSearchRequest) (*dto.GlobalSearchResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	page, perPage := normalizePage(req.Page, req.PerPage)

	searchType := entity.SearchAll
	if req.Type != "" {
		searchType = entity.SearchType(req.Type)
	}

	res := dto.GlobalSearchResponse{
		Machines: dto.Paginated[dto.MachineResponse]{
			Items:      make([]dto.MachineResponse, 0),
			Pagination: pageMeta(page, perPage, 0),
		},
		Components: dto.Paginated[dto.ComponentResponse]{
			Items:      make([]dto.ComponentResponse, 0),
			Pagination: pageMeta(page, perPage, 0),
		},
	}

	totalResults := 0

	if searchType == entity.SearchAll || searchType == entity.SearchMachine {
		total, err := uow.MachineRepository().Count(ctx, specification.MachineSearch{Query: req.Query})
		if err != nil {
			return nil, err
		}
		machines, err := uow.MachineRepository().FindAll(ctx,
			specification.MachineSearch{Query: req.Query},
			specification.OrderBy{Field: "name"},
			pagination(page, perPage),
		)
		if err != nil {
			return nil, err
		}
		items := make([]dto.MachineResponse, 0, len(machines))
		for _, m := range machines {
			items = append(items, machineToResponse(m))
		}
		res.Machines = dto.Paginated[dto.MachineResponse]{
			Items:      items,
			Pagination: pageMeta(page, perPage, total),
		}
		totalResults += int(total)
	}

	if searchType == entity.SearchAll || searchType == entity.SearchComponent {
		total, err := uow.ComponentRepository().Count(ctx, specification.ComponentSearch{Query: req.Query})
		if err != nil {
			return nil, err
		}
		components, err := uow.ComponentRepository().FindAll(ctx,
			specification.ComponentSearch{Query: req.Query},
			specification.OrderBy{Field: "pos_number"},
			pagination(page, perPage),
		)
		if err != nil {
			return nil, err
		}
		items, err := assembleComponents(ctx, uow, components)
		if err != nil {
			return nil, err
		}
		res.Components = dto.Paginated[dto.ComponentResponse]{
			Items:      items,
			Pagination: pageMeta(page, perPage, total),
		}
		totalResults += int(total)
	}

	if err := recordSearch(ctx, uow, userKey, req.Query, searchType, totalResults); err != nil {
		return nil, err
	}

	return &res, nil
}

// AdvancedSearch filters components on top of the text query and records
// the search with the advanced type tag.
func (s *searchService) AdvancedSearch(ctx context.Context, userKey string, req *dto.AdvancedSearchRequest) (*dto.Paginated[dto.ComponentResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	page, perPage := normalizePage(req.Page, req.PerPage)

	specs := componentFilterSpecs(req.MachineId, req.CategoryId, req.IsSparePart, req.IsWearingPart)
	if req.Query != "" {
		specs = append(specs, specification.ComponentSearch{Query: req.Query})
	}
	if req.HasSpecifications != nil {
		specs = append(specs, specification.HasSpecifications{Has: *req.HasSpecifications})
	}
	if req.HasImages != nil {
		specs = append(specs, specification.HasImages{Has: *req.HasImages})
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

	if req.Query != "" {
		if err := recordSearch(ctx, uow, userKey, req.Query, entity.SearchAdvanced, int(total)); err != nil {
			return nil, err
		}
	}

	return &dto.Paginated[dto.ComponentResponse]{
		Items:      items,
		Pagination: pageMeta(page, perPage, total),
	}, nil
}

// Suggestions mixes machine names, component names and previously searched
// queries that share the typed prefix.
func (s *searchService) Suggestions(ctx context.Context, req *dto.SuggestionsRequest) (*dto.SuggestionsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	limit := req.Limit
	if limit < 1 || limit > 20 {
		limit = 10
	}

	suggestions := make([]dto.Suggestion, 0, limit)

	machines, err := uow.MachineRepository().FindAll(ctx,
		specification.MachineSearch{Query: req.Query},
		specification.OrderBy{Field: "name"},
		specification.Limit{N: limit},
	)
	if err != nil {
		return nil, err
	}
	for _, m := range machines {
		id := m.Id
		suggestions = append(suggestions, dto.Suggestion{Type: "machine", Text: m.Name, Id: &id})
	}

	components, err := uow.ComponentRepository().FindAll(ctx,
		specification.ComponentSearch{Query: req.Query},
		specification.OrderBy{Field: "name_en"},
		specification.Limit{N: limit},
	)
	if err != nil {
		return nil, err
	}
	for _, c := range components {
		id := c.Id
		suggestions = append(suggestions, dto.Suggestion{Type: "component", Text: c.DisplayName(""), Id: &id})
	}

	entries, err := uow.SearchHistoryRepository().FindAll(ctx,
		specification.ByQueryPrefix{Prefix: req.Query},
		specification.OrderBy{Field: "searched_at", Desc: true},
		specification.Limit{N: limit * 5},
	)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	for _, e := range entries {
		if seen[e.SearchQuery] {
			continue
		}
		seen[e.SearchQuery] = true
		suggestions = append(suggestions, dto.Suggestion{Type: "query", Text: e.SearchQuery})
	}

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return &dto.SuggestionsResponse{Suggestions: suggestions}, nil
}

func (s *searchService) History(ctx context.Context, userKey string, typeFilter string, limit int) ([]dto.SearchHistoryResponse, error) {
	if typeFilter != "" && !entity.ValidSearchType(typeFilter) {
		return nil, apperror.Validation("type", "unknown search type")
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	specs := []specification.Specification{
		specification.ForUser{UserKey: userKey},
		specification.OrderBy{Field: "searched_at", Desc: true},
		specification.Limit{N: limit},
	}
	if typeFilter != "" {
		specs = append(specs, specification.BySearchType{SearchType: typeFilter})
	}

	entries, err := uow.SearchHistoryRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]dto.SearchHistoryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, dto.SearchHistoryResponse{
			Id:           e.Id,
			Query:        e.SearchQuery,
			Type:         string(e.SearchType),
			ResultsCount: e.ResultsCount,
			SearchedAt:   e.SearchedAt,
		})
	}
	return result, nil
}
