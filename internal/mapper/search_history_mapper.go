package mapper

import (
	"parts-catalog-be/internal/entity"
	"parts-catalog-be/internal/model"
)

type SearchHistoryMapper struct{}

func NewSearchHistoryMapper() *SearchHistoryMapper {
	return &SearchHistoryMapper{}
}

func (m *SearchHistoryMapper) ToEntity(n *model.SearchHistory) *entity.SearchHistoryEntry {
	if n == nil {
		return nil
	}

	return &entity.SearchHistoryEntry{
		Id:           n.Id,
		SearchQuery:  n.SearchQuery,
		SearchType:   entity.SearchType(n.SearchType),
		ResultsCount: n.ResultsCount,
		SearchedAt:   n.SearchedAt,
		UserKey:      n.UserId,
	}
}

func (m *SearchHistoryMapper) ToModel(n *entity.SearchHistoryEntry) *model.SearchHistory {
	if n == nil {
		return nil
	}

	return &model.SearchHistory{
		Id:           n.Id,
		SearchQuery:  n.SearchQuery,
		SearchType:   string(n.SearchType),
		ResultsCount: n.ResultsCount,
		SearchedAt:   n.SearchedAt,
		UserId:       n.UserKey,
	}
}

func (m *SearchHistoryMapper) ToEntities(entries []*model.SearchHistory) []*entity.SearchHistoryEntry {
	entities := make([]*entity.SearchHistoryEntry, len(entries))
	for i, n := range entries {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
