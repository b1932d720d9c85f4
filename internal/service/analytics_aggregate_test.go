package service

import (
	"fmt"
	"testing"
	"time"

	"parts-catalog-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func historyEntry(query string, at time.Time) *entity.SearchHistoryEntry {
	return &entity.SearchHistoryEntry{
		Id:          uuid.New(),
		SearchQuery: query,
		SearchType:  entity.SearchAll,
		SearchedAt:  at,
	}
}

func TestAggregatePopularQueries(t *testing.T) {
	now := time.Now()
	entries := []*entity.SearchHistoryEntry{
		historyEntry("pump", now),
		historyEntry("valve", now),
		historyEntry("pump", now),
		historyEntry("seal", now),
		historyEntry("valve", now),
		historyEntry("pump", now),
	}

	result := aggregatePopularQueries(entries, 10)

	assert.Len(t, result, 3)
	assert.Equal(t, "pump", result[0].Query)
	assert.Equal(t, 3, result[0].Count)
	assert.Equal(t, "valve", result[1].Query)
	assert.Equal(t, 2, result[1].Count)
	assert.Equal(t, "seal", result[2].Query)
	assert.Equal(t, 1, result[2].Count)
}

func TestAggregatePopularQueriesTieBreaksOnFirstSeen(t *testing.T) {
	now := time.Now()
	entries := []*entity.SearchHistoryEntry{
		historyEntry("zeta", now),
		historyEntry("alpha", now),
		historyEntry("zeta", now),
		historyEntry("alpha", now),
	}

	result := aggregatePopularQueries(entries, 10)

	// Equal counts keep first-seen order, not alphabetical order.
	assert.Equal(t, "zeta", result[0].Query)
	assert.Equal(t, "alpha", result[1].Query)
}

func TestAggregatePopularQueriesLimit(t *testing.T) {
	now := time.Now()
	entries := []*entity.SearchHistoryEntry{
		historyEntry("a", now),
		historyEntry("b", now),
		historyEntry("c", now),
	}

	result := aggregatePopularQueries(entries, 2)
	assert.Len(t, result, 2)
}

func TestAggregateTrendsGroupsByDay(t *testing.T) {
	day1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	entries := []*entity.SearchHistoryEntry{
		historyEntry("pump", day1),
		historyEntry("pump", day1.Add(2*time.Hour)),
		historyEntry("pump", day2),
		historyEntry("valve", day2),
	}

	result := aggregateTrends(entries)

	assert.Len(t, result, 3)
	assert.Equal(t, "pump", result[0].Query)
	assert.Equal(t, "2026-03-01", result[0].Date)
	assert.Equal(t, 2, result[0].Count)
}

func TestAggregateTrendsCap(t *testing.T) {
	now := time.Now()
	entries := make([]*entity.SearchHistoryEntry, 0, trendsCap+20)
	for i := 0; i < trendsCap+20; i++ {
		entries = append(entries, historyEntry(fmt.Sprintf("query-%03d", i), now))
	}

	result := aggregateTrends(entries)
	assert.Len(t, result, trendsCap)
}

func TestMatchesEntry(t *testing.T) {
	assert.True(t, matchesEntry("pump", "Hydraulic Pump", "PL-200"))
	assert.True(t, matchesEntry("  PL-2  ", "Hydraulic Pump", "PL-200"))
	assert.False(t, matchesEntry("motor", "Hydraulic Pump", "PL-200"))
	assert.False(t, matchesEntry("", "Hydraulic Pump"))
	assert.False(t, matchesEntry("pump"))
}

func TestSearchCountFor(t *testing.T) {
	now := time.Now()
	entries := []*entity.SearchHistoryEntry{
		historyEntry("pump", now),
		historyEntry("hydraulic", now),
		historyEntry("motor", now),
	}

	count := searchCountFor(entries, "Hydraulic Pump", "SAP-100")
	assert.Equal(t, 2, count)
}

func TestCountFavoritesByRef(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	favorites := []*entity.Favorite{
		{Id: uuid.New(), Ref: entity.MachineRef(a)},
		{Id: uuid.New(), Ref: entity.MachineRef(a)},
		{Id: uuid.New(), Ref: entity.MachineRef(b)},
	}

	counts := countFavoritesByRef(favorites)
	assert.Equal(t, 2, counts[a])
	assert.Equal(t, 1, counts[b])
}

func TestSortPopularity(t *testing.T) {
	a := uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000000")
	b := uuid.MustParse("bbbbbbbb-0000-0000-0000-000000000000")
	c := uuid.MustParse("cccccccc-0000-0000-0000-000000000000")

	ranks := []popularityRank{
		{id: c, favoritesCount: 1, searchCount: 5},
		{id: b, favoritesCount: 2, searchCount: 0},
		{id: a, favoritesCount: 1, searchCount: 5},
	}
	sortPopularity(ranks)

	assert.Equal(t, b, ranks[0].id)
	assert.Equal(t, a, ranks[1].id)
	assert.Equal(t, c, ranks[2].id)
}
