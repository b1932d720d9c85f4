package service

import (
	"context"
	"testing"

	"parts-catalog-be/internal/dto"
	"parts-catalog-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalSearchBothSides(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	machineId := env.createMachine(t, "Hydraulic Press")
	env.createComponent(t, machineId, dto.CreateComponentRequest{NameEn: "Hydraulic pump"})
	env.createComponent(t, machineId, dto.CreateComponentRequest{NameEn: "Seal kit"})

	res, err := env.Search.Search(ctx, "user-1", &dto.GlobalSearchRequest{Query: "hydraulic"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Machines.Pagination.Total)
	assert.Equal(t, int64(1), res.Components.Pagination.Total)

	history, err := env.Search.History(ctx, "user-1", "", 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "hydraulic", history[0].Query)
	assert.Equal(t, "all", history[0].Type)
	assert.Equal(t, 2, history[0].ResultsCount)
}

func TestGlobalSearchTypeNarrows(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	machineId := env.createMachine(t, "Hydraulic Press")
	env.createComponent(t, machineId, dto.CreateComponentRequest{NameEn: "Hydraulic pump"})

	res, err := env.Search.Search(ctx, "user-1", &dto.GlobalSearchRequest{Query: "hydraulic", Type: "machine"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Machines.Pagination.Total)
	assert.Equal(t, int64(0), res.Components.Pagination.Total)
	assert.Empty(t, res.Components.Items)
}

func TestAdvancedSearchStructuralFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	machineId := env.createMachine(t, "Press")
	env.createComponent(t, machineId, dto.CreateComponentRequest{
		NameEn: "Pump",
		Specifications: []dto.SpecificationInput{
			{Key: "Pressure", Value: "200", Unit: "bar"},
		},
	})
	env.createComponent(t, machineId, dto.CreateComponentRequest{NameEn: "Seal"})

	hasSpecs := true
	res, err := env.Search.AdvancedSearch(ctx, "user-1", &dto.AdvancedSearchRequest{
		HasSpecifications: &hasSpecs,
	})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Pump", res.Items[0].NameEn)

	hasSpecs = false
	res, err = env.Search.AdvancedSearch(ctx, "user-1", &dto.AdvancedSearchRequest{
		HasSpecifications: &hasSpecs,
	})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Seal", res.Items[0].NameEn)

	// No query text, so nothing was recorded.
	history, err := env.Search.History(ctx, "user-1", "", 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestAdvancedSearchRecordsQuery(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	machineId := env.createMachine(t, "Press")
	env.createComponent(t, machineId, dto.CreateComponentRequest{NameEn: "Hydraulic pump"})

	_, err := env.Search.AdvancedSearch(ctx, "user-1", &dto.AdvancedSearchRequest{Query: "pump"})
	require.NoError(t, err)

	history, err := env.Search.History(ctx, "user-1", "advanced", 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "pump", history[0].Query)
}

func TestSuggestionsMixSources(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	machineId := env.createMachine(t, "Hydraulic Press")
	env.createComponent(t, machineId, dto.CreateComponentRequest{NameEn: "Hydraulic pump"})

	require.NoError(t, env.Search.RecordSearch(ctx, "user-1", "hydraulic oil", "all", 0))
	require.NoError(t, env.Search.RecordSearch(ctx, "user-2", "hydraulic oil", "all", 0))

	res, err := env.Search.Suggestions(ctx, &dto.SuggestionsRequest{Query: "hydraulic"})
	require.NoError(t, err)

	byType := make(map[string][]string)
	for _, s := range res.Suggestions {
		byType[s.Type] = append(byType[s.Type], s.Text)
	}
	assert.Contains(t, byType["machine"], "Hydraulic Press")
	assert.Contains(t, byType["component"], "Hydraulic pump")
	// Recorded queries are deduplicated.
	assert.Equal(t, []string{"hydraulic oil"}, byType["query"])
}

func TestSuggestionsLimit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		env.createMachine(t, "Press "+string(rune('A'+i)))
	}

	res, err := env.Search.Suggestions(ctx, &dto.SuggestionsRequest{Query: "press", Limit: 3})
	require.NoError(t, err)
	assert.Len(t, res.Suggestions, 3)
}

func TestSearchHistoryFiltersAndScopes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.Search.RecordSearch(ctx, "user-1", "pump", "component", 3))
	require.NoError(t, env.Search.RecordSearch(ctx, "user-1", "press", "machine", 1))
	require.NoError(t, env.Search.RecordSearch(ctx, "user-2", "valve", "component", 0))

	all, err := env.Search.History(ctx, "user-1", "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	components, err := env.Search.History(ctx, "user-1", "component", 0)
	require.NoError(t, err)
	require.Len(t, components, 1)
	assert.Equal(t, "pump", components[0].Query)

	_, err = env.Search.History(ctx, "user-1", "bogus", 0)
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestRecordSearchRejectsUnknownType(t *testing.T) {
	env := newTestEnv(t)

	err := env.Search.RecordSearch(context.Background(), "user-1", "pump", "bogus", 0)
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}
