package service

import (
	"context"
	"testing"

	"parts-catalog-be/internal/dto"
	"parts-catalog-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachineCreateAndShow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.Machines.Create(ctx, &dto.CreateMachineRequest{
		Name:        "Press Line PL-200",
		Model:       "PL-200",
		SapNumber:   "SAP-100200",
		Description: "Hydraulic press line",
		Company:     "Demo Industries",
	})
	require.NoError(t, err)

	res, err := env.Machines.Show(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Press Line PL-200", res.Name)
	assert.Equal(t, "SAP-100200", res.SapNumber)
	assert.Empty(t, res.Components)
}

func TestMachineShowNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.Machines.Show(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestMachineListSearchAndPagination(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createMachine(t, "Press Alpha")
	env.createMachine(t, "Press Beta")
	env.createMachine(t, "Lathe Gamma")

	res, err := env.Machines.List(ctx, &dto.ListMachinesRequest{Search: "press"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Pagination.Total)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "Press Alpha", res.Items[0].Name)

	paged, err := env.Machines.List(ctx, &dto.ListMachinesRequest{Page: 2, PerPage: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), paged.Pagination.Total)
	assert.Len(t, paged.Items, 1)
	assert.Equal(t, 2, paged.Pagination.Page)
}

func TestMachineListSearchTreatsWildcardsLiterally(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createMachine(t, "Press 100% Duty")
	env.createMachine(t, "Mill")

	// "%" only matches names containing a literal percent sign.
	res, err := env.Machines.List(ctx, &dto.ListMachinesRequest{Search: "%"})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Press 100% Duty", res.Items[0].Name)

	res, err = env.Machines.List(ctx, &dto.ListMachinesRequest{Search: "100%"})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)

	res, err = env.Machines.List(ctx, &dto.ListMachinesRequest{Search: "_"})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
}

func TestMachineUpdate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	machineId := env.createMachine(t, "Press")

	_, err := env.Machines.Update(ctx, &dto.UpdateMachineRequest{
		Id:        machineId,
		Name:      "Press Mk2",
		Model:     "PL-201",
		SapNumber: "SAP-Press",
	})
	require.NoError(t, err)

	res, err := env.Machines.Show(ctx, machineId)
	require.NoError(t, err)
	assert.Equal(t, "Press Mk2", res.Name)
	assert.NotNil(t, res.UpdatedAt)
}

func TestMachineComponentsFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	machineId := env.createMachine(t, "Press")
	env.createComponent(t, machineId, dto.CreateComponentRequest{NameEn: "Pump", PosNumber: "10", IsSparePart: true})
	env.createComponent(t, machineId, dto.CreateComponentRequest{NameEn: "Seal", PosNumber: "20", IsWearingPart: true})

	spare := true
	res, err := env.Machines.Components(ctx, &dto.ListMachineComponentsRequest{
		MachineId:   machineId,
		IsSparePart: &spare,
	})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Pump", res.Items[0].NameEn)

	all, err := env.Machines.Components(ctx, &dto.ListMachineComponentsRequest{MachineId: machineId})
	require.NoError(t, err)
	require.Len(t, all.Items, 2)
	assert.Equal(t, "10", all.Items[0].PosNumber)
}

func TestMachineDeleteCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	machineId := env.createMachine(t, "Press")
	componentId := env.createComponent(t, machineId, dto.CreateComponentRequest{NameEn: "Pump"})

	_, err := env.Drawings.Create(ctx, &dto.CreateDrawingRequest{
		MachineId:   machineId,
		Title:       "Exploded view",
		DrawingType: "exploded",
		ClickableAreas: []dto.ClickableAreaInput{
			{X: 1, Y: 1, Width: 10, Height: 10, ComponentId: componentId},
		},
	})
	require.NoError(t, err)

	_, err = env.Favorites.Add(ctx, "user-1", &dto.FavoriteRequest{Type: "machine", Id: machineId})
	require.NoError(t, err)
	_, err = env.Favorites.Add(ctx, "user-1", &dto.FavoriteRequest{Type: "component", Id: componentId})
	require.NoError(t, err)

	require.NoError(t, env.Machines.Delete(ctx, machineId))

	_, err = env.Machines.Show(ctx, machineId)
	assert.True(t, apperror.IsNotFound(err))
	_, err = env.Components.Show(ctx, componentId)
	assert.True(t, apperror.IsNotFound(err))

	check, err := env.Favorites.Exists(ctx, "user-1", &dto.FavoriteRequest{Type: "machine", Id: machineId})
	require.NoError(t, err)
	assert.False(t, check.IsFavorite)
	check, err = env.Favorites.Exists(ctx, "user-1", &dto.FavoriteRequest{Type: "component", Id: componentId})
	require.NoError(t, err)
	assert.False(t, check.IsFavorite)
}

func TestMachineDrawingByType(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	machineId := env.createMachine(t, "Press")

	_, err := env.Drawings.Create(ctx, &dto.CreateDrawingRequest{
		MachineId:   machineId,
		Title:       "Exploded view",
		DrawingType: "exploded",
	})
	require.NoError(t, err)

	res, err := env.Machines.DrawingByType(ctx, machineId, "exploded")
	require.NoError(t, err)
	assert.Equal(t, "Exploded view", res.Title)

	_, err = env.Machines.DrawingByType(ctx, machineId, "assembly")
	assert.True(t, apperror.IsNotFound(err))

	_, err = env.Machines.DrawingByType(ctx, machineId, "blueprint")
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}
