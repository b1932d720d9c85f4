package hotspot

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	comp1 := uuid.New()
	comp2 := uuid.New()

	areas := []Area{
		{X: 0, Y: 0, Width: 10, Height: 10, ComponentId: comp1},
		{X: 5, Y: 5, Width: 10, Height: 10, ComponentId: comp2},
	}

	tests := []struct {
		name   string
		x, y   float64
		wantId uuid.UUID
		wantOk bool
	}{
		{name: "overlap resolves to first area", x: 7, y: 7, wantId: comp1, wantOk: true},
		{name: "second area only", x: 12, y: 12, wantId: comp2, wantOk: true},
		{name: "outside all areas", x: 50, y: 50, wantOk: false},
		{name: "top-left corner inclusive", x: 0, y: 0, wantId: comp1, wantOk: true},
		{name: "bottom-right corner inclusive", x: 15, y: 15, wantId: comp2, wantOk: true},
		{name: "left edge inclusive", x: 0, y: 5, wantId: comp1, wantOk: true},
		{name: "just past right edge", x: 15.0001, y: 10, wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := Resolve(areas, tt.x, tt.y)
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.Equal(t, tt.wantId, id)
			}
		})
	}
}

func TestResolveDeterministic(t *testing.T) {
	comp1 := uuid.New()
	comp2 := uuid.New()
	areas := []Area{
		{X: 0, Y: 0, Width: 20, Height: 20, ComponentId: comp1},
		{X: 0, Y: 0, Width: 20, Height: 20, ComponentId: comp2},
	}

	// Identical rectangles: the first-in-order must win on every call.
	for i := 0; i < 100; i++ {
		id, ok := Resolve(areas, 10, 10)
		assert.True(t, ok)
		assert.Equal(t, comp1, id)
	}
}

func TestResolveEmpty(t *testing.T) {
	_, ok := Resolve(nil, 0, 0)
	assert.False(t, ok)

	_, ok = Resolve([]Area{}, 123.4, 567.8)
	assert.False(t, ok)
}

func TestResolveFractionalCoordinates(t *testing.T) {
	comp := uuid.New()
	areas := []Area{{X: 1.5, Y: 2.5, Width: 1.25, Height: 1.25, ComponentId: comp}}

	id, ok := Resolve(areas, 2.75, 3.75)
	assert.True(t, ok)
	assert.Equal(t, comp, id)

	_, ok = Resolve(areas, 2.7500001, 3.7500001)
	assert.False(t, ok)
}

func TestDistinctComponentIds(t *testing.T) {
	comp1 := uuid.New()
	comp2 := uuid.New()

	areas := []Area{
		{ComponentId: comp1},
		{ComponentId: comp2},
		{ComponentId: comp1},
		{ComponentId: uuid.Nil},
	}

	ids := DistinctComponentIds(areas)
	assert.Equal(t, []uuid.UUID{comp1, comp2}, ids)

	assert.Empty(t, DistinctComponentIds(nil))
}
