package service

import (
	"context"
	"testing"

	"parts-catalog-be/internal/dto"
	"parts-catalog-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawingCreateAndShow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	machineId := env.createMachine(t, "Press")
	componentId := env.createComponent(t, machineId, dto.CreateComponentRequest{NameEn: "Pump"})

	page := 1
	created, err := env.Drawings.Create(ctx, &dto.CreateDrawingRequest{
		MachineId:   machineId,
		Title:       "Exploded view",
		DrawingType: "exploded",
		PageNumber:  &page,
		ClickableAreas: []dto.ClickableAreaInput{
			{X: 10, Y: 10, Width: 100, Height: 50, ComponentId: componentId},
		},
	})
	require.NoError(t, err)

	res, err := env.Drawings.Show(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Exploded view", res.Title)
	assert.Equal(t, "exploded", res.DrawingType)
	require.NotNil(t, res.Machine)
	assert.Equal(t, machineId, res.Machine.Id)
	require.Len(t, res.ClickableAreas, 1)
	require.Len(t, res.Components, 1)
	assert.Equal(t, "Pump", res.Components[0].NameEn)
}

func TestDrawingRejectsForeignComponent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	machineId := env.createMachine(t, "Press")
	otherId := env.createMachine(t, "Mill")
	foreignComponent := env.createComponent(t, otherId, dto.CreateComponentRequest{NameEn: "Blade"})

	_, err := env.Drawings.Create(ctx, &dto.CreateDrawingRequest{
		MachineId:   machineId,
		Title:       "Exploded view",
		DrawingType: "exploded",
		ClickableAreas: []dto.ClickableAreaInput{
			{X: 0, Y: 0, Width: 10, Height: 10, ComponentId: foreignComponent},
		},
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestDrawingSetClickableAreasReplaces(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	machineId := env.createMachine(t, "Press")
	pumpId := env.createComponent(t, machineId, dto.CreateComponentRequest{NameEn: "Pump"})
	sealId := env.createComponent(t, machineId, dto.CreateComponentRequest{NameEn: "Seal"})

	created, err := env.Drawings.Create(ctx, &dto.CreateDrawingRequest{
		MachineId:   machineId,
		Title:       "Exploded view",
		DrawingType: "exploded",
		ClickableAreas: []dto.ClickableAreaInput{
			{X: 0, Y: 0, Width: 10, Height: 10, ComponentId: pumpId},
		},
	})
	require.NoError(t, err)

	res, err := env.Drawings.SetClickableAreas(ctx, &dto.SetClickableAreasRequest{
		Id: created.Id,
		Areas: []dto.ClickableAreaInput{
			{X: 50, Y: 50, Width: 20, Height: 20, ComponentId: sealId},
		},
	})
	require.NoError(t, err)
	require.Len(t, res.Areas, 1)
	assert.Equal(t, sealId, res.Areas[0].ComponentId)
	require.Len(t, res.Components, 1)
	assert.Equal(t, "Seal", res.Components[0].NameEn)
}

func TestDrawingFindComponent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	machineId := env.createMachine(t, "Press")
	pumpId := env.createComponent(t, machineId, dto.CreateComponentRequest{NameEn: "Pump"})
	sealId := env.createComponent(t, machineId, dto.CreateComponentRequest{NameEn: "Seal"})

	created, err := env.Drawings.Create(ctx, &dto.CreateDrawingRequest{
		MachineId:   machineId,
		Title:       "Exploded view",
		DrawingType: "exploded",
		ClickableAreas: []dto.ClickableAreaInput{
			{X: 0, Y: 0, Width: 100, Height: 100, ComponentId: pumpId},
			{X: 50, Y: 50, Width: 100, Height: 100, ComponentId: sealId},
		},
	})
	require.NoError(t, err)

	// Both rectangles contain (75, 75); the first in stored order wins.
	res, err := env.Drawings.FindComponent(ctx, &dto.FindComponentRequest{Id: created.Id, X: 75, Y: 75})
	require.NoError(t, err)
	assert.Equal(t, "Pump", res.NameEn)

	res, err = env.Drawings.FindComponent(ctx, &dto.FindComponentRequest{Id: created.Id, X: 120, Y: 120})
	require.NoError(t, err)
	assert.Equal(t, "Seal", res.NameEn)

	_, err = env.Drawings.FindComponent(ctx, &dto.FindComponentRequest{Id: created.Id, X: 500, Y: 500})
	assert.True(t, apperror.IsNotFound(err))
}

func TestDrawingDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	machineId := env.createMachine(t, "Press")

	created, err := env.Drawings.Create(ctx, &dto.CreateDrawingRequest{
		MachineId:   machineId,
		Title:       "Schematic",
		DrawingType: "schematic",
	})
	require.NoError(t, err)

	require.NoError(t, env.Drawings.Delete(ctx, created.Id))

	_, err = env.Drawings.Show(ctx, created.Id)
	assert.True(t, apperror.IsNotFound(err))
}
