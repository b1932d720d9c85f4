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

func TestComponentCreateWithSpecifications(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	machineId := env.createMachine(t, "Press")
	categoryId := env.createCategory(t, "Hydraulics")

	created, err := env.Components.Create(ctx, &dto.CreateComponentRequest{
		MachineId:  machineId,
		CategoryId: &categoryId,
		PosNumber:  "10",
		Quantity:   2,
		Unit:       "pc",
		NameDe:     "Hydraulikpumpe",
		NameEn:     "Hydraulic pump",
		SapNumber:  "SAP-200301",
		Specifications: []dto.SpecificationInput{
			{Key: "Pressure", Value: "200", Unit: "bar"},
			{Key: "Weight", Value: "12.5", Unit: "kg"},
		},
	})
	require.NoError(t, err)

	res, err := env.Components.Show(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Hydraulic pump", res.NameEn)
	require.NotNil(t, res.Machine)
	assert.Equal(t, machineId, res.Machine.Id)
	require.NotNil(t, res.Category)
	assert.Equal(t, "Hydraulics", res.Category.Name)
	require.Len(t, res.Specifications, 2)
	assert.Equal(t, "Pressure", res.Specifications[0].SpecKey)
	assert.Equal(t, "200 bar", res.Specifications[0].FormattedValue)
}

func TestComponentCreateRejectsUnknownMachine(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.Components.Create(context.Background(), &dto.CreateComponentRequest{
		MachineId: uuid.New(),
		NameEn:    "Pump",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestComponentDuplicateSapNumberConflict(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	machineId := env.createMachine(t, "Press")

	_, err := env.Components.Create(ctx, &dto.CreateComponentRequest{
		MachineId: machineId,
		NameEn:    "Pump",
		SapNumber: "SAP-DUP-1",
	})
	require.NoError(t, err)

	_, err = env.Components.Create(ctx, &dto.CreateComponentRequest{
		MachineId: machineId,
		NameEn:    "Other pump",
		SapNumber: "SAP-DUP-1",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))

	// Updating onto a taken SAP number conflicts the same way.
	sealId := env.createComponent(t, machineId, dto.CreateComponentRequest{NameEn: "Seal"})
	_, err = env.Components.Update(ctx, &dto.UpdateComponentRequest{
		Id:        sealId,
		NameEn:    "Seal",
		Quantity:  1,
		SapNumber: "SAP-DUP-1",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
}

func TestComponentUpdateReplacesSpecifications(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	machineId := env.createMachine(t, "Press")
	componentId := env.createComponent(t, machineId, dto.CreateComponentRequest{
		NameEn: "Pump",
		Specifications: []dto.SpecificationInput{
			{Key: "Pressure", Value: "200", Unit: "bar"},
		},
	})

	_, err := env.Components.Update(ctx, &dto.UpdateComponentRequest{
		Id:       componentId,
		NameEn:   "Pump Mk2",
		Quantity: 1,
		Specifications: []dto.SpecificationInput{
			{Key: "Flow", Value: "80", Unit: "l/min"},
		},
	})
	require.NoError(t, err)

	res, err := env.Components.Show(ctx, componentId)
	require.NoError(t, err)
	assert.Equal(t, "Pump Mk2", res.NameEn)
	require.Len(t, res.Specifications, 1)
	assert.Equal(t, "Flow", res.Specifications[0].SpecKey)
}

func TestComponentFindByPosition(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	machineId := env.createMachine(t, "Press")
	env.createComponent(t, machineId, dto.CreateComponentRequest{NameEn: "Pump", PosNumber: "10"})

	res, err := env.Components.FindByPosition(ctx, &dto.FindByPositionRequest{
		MachineId: machineId,
		PosNumber: "10",
	})
	require.NoError(t, err)
	assert.Equal(t, "Pump", res.NameEn)

	_, err = env.Components.FindByPosition(ctx, &dto.FindByPositionRequest{
		MachineId: machineId,
		PosNumber: "99",
	})
	assert.True(t, apperror.IsNotFound(err))
}

func TestComponentSearchRecordsHistory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	machineId := env.createMachine(t, "Press")
	env.createComponent(t, machineId, dto.CreateComponentRequest{NameEn: "Hydraulic pump"})

	res, err := env.Components.Search(ctx, "user-1", &dto.SearchComponentsRequest{Query: "hydraulic"})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)

	history, err := env.Search.History(ctx, "user-1", "", 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "hydraulic", history[0].Query)
	assert.Equal(t, "component", history[0].Type)
	assert.Equal(t, 1, history[0].ResultsCount)
}

func TestComponentDeleteRemovesFavorites(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	machineId := env.createMachine(t, "Press")
	componentId := env.createComponent(t, machineId, dto.CreateComponentRequest{NameEn: "Pump"})

	_, err := env.Favorites.Add(ctx, "user-1", &dto.FavoriteRequest{Type: "component", Id: componentId})
	require.NoError(t, err)

	require.NoError(t, env.Components.Delete(ctx, componentId))

	_, err = env.Components.Show(ctx, componentId)
	assert.True(t, apperror.IsNotFound(err))

	check, err := env.Favorites.Exists(ctx, "user-1", &dto.FavoriteRequest{Type: "component", Id: componentId})
	require.NoError(t, err)
	assert.False(t, check.IsFavorite)
}
