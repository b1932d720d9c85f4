package service

import (
	"sort"
	"strings"

	"parts-catalog-be/internal/dto"
	"parts-catalog-be/internal/entity"

	"github.com/google/uuid"
)

// The aggregations below run over already filtered history and favorite
// rows. Keeping them as pure functions keeps the ordering rules testable
// without a store.

const trendsCap = 50

// aggregatePopularQueries groups entries by exact query text. Ordering:
// count desc, then first-seen asc, then query asc.
func aggregatePopularQueries(entries []*entity.SearchHistoryEntry, limit int) []dto.PopularQueryResponse {
	type bucket struct {
		query     string
		count     int
		firstSeen int
	}
	buckets := make(map[string]*bucket)
	order := make([]*bucket, 0)
	for i, e := range entries {
		b, ok := buckets[e.SearchQuery]
		if !ok {
			b = &bucket{query: e.SearchQuery, firstSeen: i}
			buckets[e.SearchQuery] = b
			order = append(order, b)
		}
		b.count++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		if order[i].firstSeen != order[j].firstSeen {
			return order[i].firstSeen < order[j].firstSeen
		}
		return order[i].query < order[j].query
	})

	if limit > 0 && len(order) > limit {
		order = order[:limit]
	}
	result := make([]dto.PopularQueryResponse, 0, len(order))
	for _, b := range order {
		result = append(result, dto.PopularQueryResponse{Query: b.query, Count: b.count})
	}
	return result
}

// aggregateTrends groups entries by (query, calendar date). Ordering:
// count desc, then date asc, then query asc; capped at trendsCap rows.
func aggregateTrends(entries []*entity.SearchHistoryEntry) []dto.SearchTrendResponse {
	type key struct {
		query string
		date  string
	}
	counts := make(map[key]int)
	for _, e := range entries {
		k := key{query: e.SearchQuery, date: e.SearchedAt.Format("2006-01-02")}
		counts[k]++
	}

	result := make([]dto.SearchTrendResponse, 0, len(counts))
	for k, c := range counts {
		result = append(result, dto.SearchTrendResponse{Query: k.query, Date: k.date, Count: c})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		return result[i].Query < result[j].Query
	})

	if len(result) > trendsCap {
		result = result[:trendsCap]
	}
	return result
}

// countFavoritesByRef tallies favorites per referenced id.
func countFavoritesByRef(favorites []*entity.Favorite) map[uuid.UUID]int {
	counts := make(map[uuid.UUID]int)
	for _, f := range favorites {
		counts[f.Ref.Id]++
	}
	return counts
}

// matchesEntry reports whether a history entry's query hits any of the
// given labels, case-insensitively.
func matchesEntry(query string, labels ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	for _, label := range labels {
		if label == "" {
			continue
		}
		if strings.Contains(strings.ToLower(label), q) {
			return true
		}
	}
	return false
}

// searchCountFor counts entries whose query matches the labels.
func searchCountFor(entries []*entity.SearchHistoryEntry, labels ...string) int {
	count := 0
	for _, e := range entries {
		if matchesEntry(e.SearchQuery, labels...) {
			count++
		}
	}
	return count
}

type popularityRank struct {
	id             uuid.UUID
	favoritesCount int
	searchCount    int
}

// sortPopularity orders by favorites desc, then searches desc, then id asc
// so equal popularity has a stable winner.
func sortPopularity(ranks []popularityRank) {
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].favoritesCount != ranks[j].favoritesCount {
			return ranks[i].favoritesCount > ranks[j].favoritesCount
		}
		if ranks[i].searchCount != ranks[j].searchCount {
			return ranks[i].searchCount > ranks[j].searchCount
		}
		return ranks[i].id.String() < ranks[j].id.String()
	})
}
