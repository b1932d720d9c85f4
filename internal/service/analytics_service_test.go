package service

import (
	"context"
	"testing"

	"parts-catalog-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsPopularQueries(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.Search.RecordSearch(ctx, "user-1", "pump", "component", 2))
	require.NoError(t, env.Search.RecordSearch(ctx, "user-2", "pump", "component", 2))
	require.NoError(t, env.Search.RecordSearch(ctx, "user-1", "valve", "component", 0))

	res, err := env.Analytics.PopularQueries(ctx, &dto.AnalyticsRequest{})
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "pump", res[0].Query)
	assert.Equal(t, 2, res[0].Count)
	assert.Equal(t, "valve", res[1].Query)
}

func TestAnalyticsPopularQueriesServedFromCache(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.Search.RecordSearch(ctx, "user-1", "pump", "component", 0))

	first, err := env.Analytics.PopularQueries(ctx, &dto.AnalyticsRequest{})
	require.NoError(t, err)
	require.Len(t, first, 1)

	// New history within the TTL does not change the cached answer.
	require.NoError(t, env.Search.RecordSearch(ctx, "user-1", "valve", "component", 0))
	second, err := env.Analytics.PopularQueries(ctx, &dto.AnalyticsRequest{})
	require.NoError(t, err)
	assert.Len(t, second, 1)
}

func TestAnalyticsSearchTrends(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.Search.RecordSearch(ctx, "user-1", "pump", "component", 1))
	require.NoError(t, env.Search.RecordSearch(ctx, "user-1", "pump", "component", 1))

	res, err := env.Analytics.SearchTrends(ctx, &dto.AnalyticsRequest{Period: "week"})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "pump", res[0].Query)
	assert.Equal(t, 2, res[0].Count)
}

func TestAnalyticsPopularMachines(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	pressId := env.createMachine(t, "Hydraulic Press")
	millId := env.createMachine(t, "Mill")

	for _, user := range []string{"user-1", "user-2"} {
		_, err := env.Favorites.Add(ctx, user, &dto.FavoriteRequest{Type: "machine", Id: pressId})
		require.NoError(t, err)
	}
	_, err := env.Favorites.Add(ctx, "user-1", &dto.FavoriteRequest{Type: "machine", Id: millId})
	require.NoError(t, err)

	require.NoError(t, env.Search.RecordSearch(ctx, "user-1", "hydraulic", "machine", 1))

	res, err := env.Analytics.PopularMachines(ctx, &dto.AnalyticsRequest{})
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, pressId, res[0].Machine.Id)
	assert.Equal(t, 2, res[0].FavoritesCount)
	assert.Equal(t, 1, res[0].SearchCount)
	assert.Equal(t, millId, res[1].Machine.Id)
	assert.Equal(t, 1, res[1].FavoritesCount)
}

func TestAnalyticsPopularComponents(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	machineId := env.createMachine(t, "Press")
	pumpId := env.createComponent(t, machineId, dto.CreateComponentRequest{NameEn: "Pump"})
	env.createComponent(t, machineId, dto.CreateComponentRequest{NameEn: "Seal"})

	_, err := env.Favorites.Add(ctx, "user-1", &dto.FavoriteRequest{Type: "component", Id: pumpId})
	require.NoError(t, err)

	res, err := env.Analytics.PopularComponents(ctx, &dto.AnalyticsRequest{})
	require.NoError(t, err)

	// Only favorited components are ranked.
	require.Len(t, res, 1)
	assert.Equal(t, pumpId, res[0].Component.Id)
	assert.Equal(t, 1, res[0].FavoritesCount)
	require.NotNil(t, res[0].Component.Machine)
	assert.Equal(t, machineId, res[0].Component.Machine.Id)
}

func TestAnalyticsPopularMachinesEmpty(t *testing.T) {
	env := newTestEnv(t)

	res, err := env.Analytics.PopularMachines(context.Background(), &dto.AnalyticsRequest{})
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestAnalyticsUserFavorites(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	machineId := env.createMachine(t, "Press")
	componentId := env.createComponent(t, machineId, dto.CreateComponentRequest{NameEn: "Pump"})

	_, err := env.Favorites.Add(ctx, "user-1", &dto.FavoriteRequest{Type: "machine", Id: machineId})
	require.NoError(t, err)
	_, err = env.Favorites.Add(ctx, "user-1", &dto.FavoriteRequest{Type: "component", Id: componentId})
	require.NoError(t, err)
	_, err = env.Favorites.Add(ctx, "user-2", &dto.FavoriteRequest{Type: "machine", Id: machineId})
	require.NoError(t, err)

	res, err := env.Analytics.UserFavorites(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalFavorites)
	assert.Equal(t, 1, res.MachineFavorites)
	assert.Equal(t, 1, res.ComponentFavorites)
}
