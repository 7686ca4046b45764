package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/housegen/core"
	"github.com/lixenwraith/housegen/grid"
	"github.com/lixenwraith/housegen/vmath"
)

var unit = vmath.Vec3F{X: 1, Y: 1, Z: 1}

func mustGrid(t *testing.T, rows ...string) *grid.FeatureGrid {
	t.Helper()
	g, err := grid.ParseRows(rows)
	require.NoError(t, err)
	return g
}

func TestClassifyRoles(t *testing.T) {
	// z=2 row first
	g := mustGrid(t,
		"###.#",
		"###.#",
		"###..",
	)
	tests := []struct {
		name string
		x, z int
		role Role
		dir  vmath.Vec3F
	}{
		{"internal", 1, 1, Internal, vmath.Vec3F{}},
		{"bridge west edge", 0, 1, Bridge, vmath.V3FLeft},
		{"bridge top", 1, 2, Bridge, vmath.V3FForward},
		{"corner ne", 2, 2, Corner, vmath.Vec3F{X: 1, Z: 1}},
		{"corner sw", 0, 0, Corner, vmath.Vec3F{X: -1, Z: -1}},
		{"corner se", 2, 0, Corner, vmath.Vec3F{X: 1, Z: -1}},
		{"peninsula", 4, 1, Peninsula, vmath.Vec3F{X: 0, Z: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, dir := Classify(g, tt.x, tt.z)
			assert.Equal(t, tt.role, role)
			assert.Equal(t, tt.dir, dir)
		})
	}
}

func TestClassifyIsolatedAndStraight(t *testing.T) {
	g := mustGrid(t,
		"#...",
		"....",
		".###",
	)
	role, dir := Classify(g, 0, 2)
	assert.Equal(t, Empty, role)
	assert.True(t, dir.IsZero(), "all four unit vectors cancel")

	role, dir = Classify(g, 2, 0)
	assert.Equal(t, Straight, role)
	// open north and south cancel
	assert.Equal(t, vmath.Vec3F{}, dir)
}

func TestFloorDescriptors(t *testing.T) {
	g := mustGrid(t,
		"##",
		"#D",
	)
	cs := vmath.Vec3F{X: 2, Y: 3, Z: 4}
	cells := Floor(1, g, cs)
	require.Len(t, cells, 4)

	first := cells[0]
	assert.Equal(t, core.Cell{X: 0, Z: 0}, first.Cell)
	assert.Equal(t, vmath.Vec3F{X: 0, Y: 3, Z: 0}, first.World)

	door := cells[1]
	assert.Equal(t, grid.Door, door.Feature)
	assert.Equal(t, vmath.Vec3F{X: 2, Y: 3, Z: 0}, door.World)
	// W first, then N
	assert.Equal(t, []core.Cell{{X: 0, Z: 0}, {X: 1, Z: 1}}, door.Neighbors)
	for _, c := range cells {
		assert.Equal(t, Corner, c.Role)
		assert.True(t, c.Instantiable())
	}
}

func TestOfRole(t *testing.T) {
	g := mustGrid(t,
		"###",
		"###",
		"###",
	)
	cells := Building([]*grid.FeatureGrid{g, g}, unit)
	require.Len(t, cells, 2)

	internal := OfRole(cells, Internal)
	require.Len(t, internal, 2)
	assert.Equal(t, 0, internal[0].Floor)
	assert.Equal(t, 1, internal[1].Floor)
	assert.False(t, internal[0].Instantiable())

	assert.Len(t, OfRole(cells, Corner), 8)
	assert.Len(t, OfRole(cells, Bridge), 8)
	assert.Empty(t, OfRole(cells, Peninsula))
}

func TestPlace(t *testing.T) {
	g := mustGrid(t,
		"###",
		"#W#",
		"#D#",
	)
	cells := Floor(0, g, unit)
	byCell := map[core.Cell]CellDescriptor{}
	for _, c := range cells {
		byCell[c.Cell] = c
	}

	ne, ok := Place(byCell[core.Cell{X: 2, Z: 2}], unit)
	require.True(t, ok)
	assert.Equal(t, PieceCorner, ne.Kind)
	assert.True(t, ne.Ground)
	assert.Equal(t, vmath.Vec3F{X: 3, Y: 0, Z: 3}, ne.Position)
	assert.Equal(t, -90.0, ne.Yaw)
	assert.True(t, ne.Forward.IsZero())

	door, ok := Place(byCell[core.Cell{X: 1, Z: 0}], unit)
	require.True(t, ok)
	assert.Equal(t, PieceDoor, door.Kind)
	assert.Equal(t, vmath.V3FBack, door.Forward)
	assert.InDelta(t, 180.0, door.Yaw, 1e-9)

	east, ok := Place(byCell[core.Cell{X: 2, Z: 1}], unit)
	require.True(t, ok)
	assert.Equal(t, PieceWall, east.Kind)
	assert.Equal(t, vmath.Vec3F{X: 3, Y: 0, Z: 1}, east.Position)
	assert.InDelta(t, 90.0, east.Yaw, 1e-9)

	_, ok = Place(byCell[core.Cell{X: 1, Z: 1}], unit)
	assert.False(t, ok, "internal window cell gets no piece")
}
