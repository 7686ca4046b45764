package footprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/housegen/core"
	"github.com/lixenwraith/housegen/grid"
	"github.com/lixenwraith/housegen/vmath"
)

// seqRand replays fixed values, modulo n
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	if n <= 0 || len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

func TestBetween(t *testing.T) {
	r := &seqRand{vals: []int{0, 1, 2}}
	assert.Equal(t, 5, between(r, 5, 5))
	assert.Equal(t, 5, between(r, 5, 3))
	assert.Equal(t, 2, between(r, 2, 4)) // 2 + 0
	assert.Equal(t, 3, between(r, 2, 4)) // 2 + 1
}

func TestPickRange(t *testing.T) {
	r := vmath.NewFastRand(1)
	assert.Equal(t, 2, pick(r, Range{2, 2}))
	assert.Equal(t, 0, pick(r, Range{-3, -1}))
	for i := 0; i < 50; i++ {
		v := pick(r, Range{1, 3})
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 3)
	}
}

func TestBuildAlwaysConnected(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NotchCount = Range{0, 3}
	cfg.OffshootCount = Range{0, 5}

	sizes := []core.Size{{W: 10, H: 8}, {W: 4, H: 4}, {W: 2, H: 2}, {W: 20, H: 3}, {W: 1, H: 1}}
	for _, sz := range sizes {
		for seed := uint64(1); seed <= 200; seed++ {
			s := New(sz.W, sz.H, cfg, vmath.NewFastRand(seed))
			m := s.Build()
			require.True(t, m.IsConnected(), "size %v seed %d:\n%s", sz, seed, m)
			require.Greater(t, m.Count(), 0, "size %v seed %d produced empty footprint", sz, seed)
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	a := New(10, 8, cfg, vmath.NewFastRand(12345)).Floors(3)
	b := New(10, 8, cfg, vmath.NewFastRand(12345)).Floors(3)
	require.Len(t, a, 3)
	for i := range a {
		assert.True(t, a[i].Equal(b[i]), "floor %d differs", i)
	}
}

func TestBaseRectangleOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OffshootCount = Range{0, 0}
	cfg.Notches = false
	cfg.BaseMin = core.Size{W: 4, H: 3}
	cfg.BaseMax = core.Size{W: 4, H: 3}

	m := New(10, 8, cfg, vmath.NewFastRand(9)).Build()
	assert.Equal(t, 12, m.Count())
	b, ok := m.Bounds()
	require.True(t, ok)
	assert.Equal(t, 4, b.Width)
	assert.Equal(t, 3, b.Height)
}

func TestOffshootGrowsOutward(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseMin = core.Size{W: 4, H: 4}
	cfg.BaseMax = core.Size{W: 4, H: 4}
	cfg.OffshootCount = Range{1, 1}
	cfg.Notches = false

	grew := 0
	for seed := uint64(1); seed <= 50; seed++ {
		m := New(12, 12, cfg, vmath.NewFastRand(seed)).Build()
		require.True(t, m.IsConnected())
		if m.Count() > 16 {
			grew++
		}
	}
	assert.Greater(t, grew, 40, "offshoots should attach on a roomy grid")
}

func TestNotchKeepsConnectivity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseMin = core.Size{W: 6, H: 6}
	cfg.BaseMax = core.Size{W: 6, H: 6}
	cfg.OffshootCount = Range{0, 0}
	cfg.NotchCount = Range{2, 2}
	cfg.NotchMax = core.Size{W: 6, H: 6}

	for seed := uint64(1); seed <= 100; seed++ {
		m := New(6, 6, cfg, vmath.NewFastRand(seed)).Build()
		require.True(t, m.IsConnected(), "seed %d:\n%s", seed, m)
		assert.Less(t, m.Count(), 36, "seed %d carved nothing", seed)
	}
}

func TestNotchDepthCapped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseMin = core.Size{W: 20, H: 20}
	cfg.BaseMax = core.Size{W: 20, H: 20}
	cfg.OffshootCount = Range{0, 0}
	cfg.NotchCount = Range{3, 3}
	cfg.NotchMin = core.Size{W: 2, H: 8}
	cfg.NotchMax = core.Size{W: 4, H: 10}

	ring := func(x, z int) int { return min(x, z, 19-x, 19-z) }
	deepest := -1
	for seed := uint64(1); seed <= 200; seed++ {
		m := New(20, 20, cfg, vmath.NewFastRand(seed)).Build()
		require.Less(t, m.Count(), 400, "seed %d carved nothing", seed)
		require.True(t, m.IsConnected(), "seed %d:\n%s", seed, m)

		for z := 0; z < 20; z++ {
			for x := 0; x < 20; x++ {
				if m.Get(x, z) {
					continue
				}
				d := ring(x, z)
				require.Less(t, d, MaxNotchDepth, "seed %d: cell (%d,%d) carved past the cap", seed, x, z)
				deepest = max(deepest, d)
			}
		}
	}
	// NotchMin.H exceeds the cap, so notches carve exactly MaxNotchDepth rows
	assert.Equal(t, MaxNotchDepth-1, deepest)
}

func TestDoorInterior(t *testing.T) {
	m := grid.NewMask(6, 5)
	m.FillRect(0, 0, 6, 5, true)

	c, ok := PickDoor(m, grid.South, true)
	require.True(t, ok)
	assert.Equal(t, 0, c.Z)
	assert.Greater(t, c.X, 0)
	assert.Less(t, c.X, 5)

	back, ok := PickDoor(m, grid.South, false)
	require.True(t, ok)
	assert.Equal(t, 4, back.Z)

	east, ok := PickDoor(m, grid.East, true)
	require.True(t, ok)
	assert.Equal(t, 5, east.X)
	assert.Greater(t, east.Z, 0)
	assert.Less(t, east.Z, 4)
}

func TestDoorShortRunStaysOnRun(t *testing.T) {
	m := grid.NewMask(5, 3)
	m.FillRect(2, 0, 2, 3, true)
	c, ok := PickDoor(m, grid.South, true)
	require.True(t, ok)
	assert.True(t, m.Get(c.X, c.Z), "door %v off the footprint", c)

	_, ok = PickDoor(grid.NewMask(3, 3), grid.North, true)
	assert.False(t, ok)
}

func TestDecorateGroundAndUpper(t *testing.T) {
	m := grid.NewMask(6, 5)
	m.FillRect(0, 0, 6, 5, true)
	cfg := DefaultConfig()

	ground := Decorate(0, m, cfg)
	assert.Equal(t, 2, ground.Count(grid.Door))
	assert.Equal(t, grid.Door, ground.Get(3, 0))
	assert.Equal(t, grid.Door, ground.Get(3, 4))

	upper := Decorate(1, m, cfg)
	assert.Equal(t, 0, upper.Count(grid.Door))
	assert.Equal(t, grid.Window, upper.Get(3, 0))

	// interior cells never get windows
	for z := 1; z < 4; z++ {
		for x := 1; x < 5; x++ {
			assert.Equal(t, grid.Wall, ground.Get(x, z))
		}
	}
	// spacing 2 on perimeter: (x+z) even
	assert.Equal(t, grid.Window, ground.Get(0, 0))
	assert.Equal(t, grid.Wall, ground.Get(1, 0))
}

func TestDecorateNoGroundWindows(t *testing.T) {
	m := grid.NewMask(4, 4)
	m.FillRect(0, 0, 4, 4, true)
	cfg := DefaultConfig()
	cfg.GroundWindows = false
	cfg.WindowSpacing = 1

	g := Decorate(0, m, cfg)
	assert.Equal(t, 0, g.Count(grid.Window))
	assert.Equal(t, 2, g.Count(grid.Door))

	up := Decorate(2, m, cfg)
	// every perimeter cell is a window with spacing 1
	assert.Equal(t, 12, up.Count(grid.Window))
}

func TestUpperFloorsVary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CopyGround = false
	cfg.UpperVariance = Range{1, 1}
	cfg.OffshootCount = Range{1, 1}

	floors := New(10, 8, cfg, vmath.NewFastRand(77)).Floors(3)
	require.Len(t, floors, 3)
	for i, f := range floors {
		assert.True(t, f.Mask().IsConnected(), "floor %d", i)
	}
	assert.Equal(t, Range{0, 0}, (&Synthesizer{cfg: cfg, rng: vmath.NewFastRand(1)}).varied())
}

func TestFloorsCopyGround(t *testing.T) {
	floors := New(10, 8, DefaultConfig(), vmath.NewFastRand(5)).Floors(2)
	require.Len(t, floors, 2)
	assert.True(t, floors[0].Mask().Equal(floors[1].Mask()))
	assert.Nil(t, New(10, 8, DefaultConfig(), vmath.NewFastRand(5)).Floors(0))
}
