package service

import (
	"context"
	"testing"

	"parts-catalog-be/internal/dto"
	"parts-catalog-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryListWithCounts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	machineId := env.createMachine(t, "Press")
	hydraulicsId := env.createCategory(t, "Hydraulics")
	env.createCategory(t, "Electrics")

	env.createComponent(t, machineId, dto.CreateComponentRequest{NameEn: "Pump", CategoryId: &hydraulicsId})
	env.createComponent(t, machineId, dto.CreateComponentRequest{NameEn: "Valve", CategoryId: &hydraulicsId})

	res, err := env.Categories.List(ctx, &dto.ListCategoriesRequest{WithCounts: true})
	require.NoError(t, err)
	require.Len(t, res.Items, 2)

	// Ordered by name: Electrics first.
	assert.Equal(t, "Electrics", res.Items[0].Name)
	require.NotNil(t, res.Items[0].ComponentsCount)
	assert.Equal(t, int64(0), *res.Items[0].ComponentsCount)
	require.NotNil(t, res.Items[1].ComponentsCount)
	assert.Equal(t, int64(2), *res.Items[1].ComponentsCount)
}

func TestCategoryShowIncludesRecentComponents(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	machineId := env.createMachine(t, "Press")
	categoryId := env.createCategory(t, "Hydraulics")
	env.createComponent(t, machineId, dto.CreateComponentRequest{NameEn: "Pump", CategoryId: &categoryId})

	res, err := env.Categories.Show(ctx, categoryId)
	require.NoError(t, err)
	require.NotNil(t, res.ComponentsCount)
	assert.Equal(t, int64(1), *res.ComponentsCount)
	require.Len(t, res.RecentComponents, 1)
	assert.Equal(t, "Pump", res.RecentComponents[0].NameEn)
}

func TestCategoryDeleteBlockedByComponents(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	machineId := env.createMachine(t, "Press")
	categoryId := env.createCategory(t, "Hydraulics")
	componentId := env.createComponent(t, machineId, dto.CreateComponentRequest{NameEn: "Pump", CategoryId: &categoryId})

	err := env.Categories.Delete(ctx, categoryId)
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))

	// Once the component is gone the category can be removed.
	require.NoError(t, env.Components.Delete(ctx, componentId))
	require.NoError(t, env.Categories.Delete(ctx, categoryId))

	_, err = env.Categories.Show(ctx, categoryId)
	assert.True(t, apperror.IsNotFound(err))
}

func TestCategoryComponentsListing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	machineId := env.createMachine(t, "Press")
	categoryId := env.createCategory(t, "Hydraulics")
	env.createComponent(t, machineId, dto.CreateComponentRequest{NameEn: "Pump", PosNumber: "10", CategoryId: &categoryId})
	env.createComponent(t, machineId, dto.CreateComponentRequest{NameEn: "Seal", PosNumber: "20"})

	res, err := env.Categories.Components(ctx, &dto.ListCategoryComponentsRequest{CategoryId: categoryId})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Pump", res.Items[0].NameEn)
}
