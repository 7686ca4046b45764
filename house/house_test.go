package house

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/housegen/grid"
	"github.com/lixenwraith/housegen/status"
)

func fixedConfig() Config {
	cfg := DefaultConfig()
	cfg.RandomSeed = false
	cfg.Seed = 42
	cfg.Floors = 2
	return cfg
}

func manualConfig(w, h int) Config {
	cfg := fixedConfig()
	cfg.Mode = Manual
	cfg.Floors = 1
	cfg.Width, cfg.Height = w, h
	return cfg
}

func rows(t *testing.T, r ...string) *grid.FeatureGrid {
	t.Helper()
	g, err := grid.ParseRows(r)
	require.NoError(t, err)
	return g
}

func TestValidateRejects(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Floors = 0
	cfg.CellSize.X = 0

	_, err := NewGenerator(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "floors", ve.Field)
	assert.Contains(t, err.Error(), "cell_size")
}

func TestValidateDefaults(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := NewGenerator(fixedConfig())
	require.NoError(t, err)
	b, err := NewGenerator(fixedConfig())
	require.NoError(t, err)

	ra, err := a.Generate()
	require.NoError(t, err)
	rb, err := b.Generate()
	require.NoError(t, err)

	assert.Equal(t, int64(42), ra.Seed)
	require.Len(t, ra.Floors, 2)
	for i := range ra.Floors {
		assert.True(t, ra.Floors[i].Equal(rb.Floors[i]), "floor %d differs", i)
	}
	assert.Equal(t, ra.Rects, rb.Rects)
	assert.Equal(t, ra.Report(), rb.Report())
	require.Len(t, ra.Pieces, len(ra.Rects))
	for i, p := range ra.Pieces {
		assert.Equal(t, ra.Rects[i].Name(), p.Name)
	}
}

func TestManualSingleRect(t *testing.T) {
	g, err := NewGenerator(manualConfig(4, 3))
	require.NoError(t, err)
	require.NoError(t, g.SetFloor(0, rows(t, "####", "####", "####")))

	res, err := g.Generate()
	require.NoError(t, err)
	require.Len(t, res.Rects, 1)
	assert.Equal(t, []string{"[0] F0 X:0..3 Z:0..2 4x3 Ridge X MAIN Area:12"}, res.Report())
	assert.Len(t, res.Placements(), 10)

	rects, err := g.Detect()
	require.NoError(t, err)
	assert.Equal(t, res.Rects, rects)
}

func TestManualMissingFloor(t *testing.T) {
	g, err := NewGenerator(manualConfig(4, 3))
	require.NoError(t, err)
	g.floors[0] = nil

	_, err = g.Generate()
	assert.ErrorIs(t, err, ErrMissingFloor)
}

func TestSetFloorRejectsMismatch(t *testing.T) {
	g, err := NewGenerator(manualConfig(4, 3))
	require.NoError(t, err)
	assert.ErrorIs(t, g.SetFloor(0, rows(t, "###")), ErrGridMismatch)
	assert.ErrorIs(t, g.SetFloor(3, rows(t, "####", "####", "####")), ErrMissingFloor)
}

func TestFailureKeepsLastResult(t *testing.T) {
	g, err := NewGenerator(manualConfig(4, 3))
	require.NoError(t, err)
	require.NoError(t, g.SetFloor(0, rows(t, "####", "####", "####")))
	first, err := g.Generate()
	require.NoError(t, err)

	g.cfg.CellSize.Y = -1
	_, err = g.Generate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Same(t, first, g.Last())
}

func TestSetFloorCountCopiesBelow(t *testing.T) {
	g, err := NewGenerator(manualConfig(4, 3))
	require.NoError(t, err)
	require.NoError(t, g.SetFloor(0, rows(t, "D...", "##W.", "####")))

	require.NoError(t, g.SetFloorCount(3))
	assert.Equal(t, 3, g.Config().Floors)
	for f := 1; f < 3; f++ {
		assert.Equal(t, []string{"#...", "###.", "####"}, g.Floor(f).Rows(), "floor %d", f)
	}

	require.NoError(t, g.SetFloorCount(1))
	assert.Len(t, g.Floors(), 1)
	assert.ErrorIs(t, g.SetFloorCount(0), ErrInvalidConfig)
}

func TestResizeAndClear(t *testing.T) {
	g, err := NewGenerator(manualConfig(4, 3))
	require.NoError(t, err)
	require.NoError(t, g.SetFloor(0, rows(t, "####", "####", "####")))

	require.NoError(t, g.Resize(2, 5))
	f := g.Floor(0)
	assert.Equal(t, 2, f.Width())
	assert.Equal(t, 5, f.Height())
	assert.Equal(t, 6, f.Mask().Count())

	require.NoError(t, g.ClearFloor(0))
	assert.Zero(t, g.Floor(0).Mask().Count())
	assert.ErrorIs(t, g.ClearFloor(1), ErrMissingFloor)

	// empty floors decompose to nothing
	res, err := g.Generate()
	require.NoError(t, err)
	assert.Empty(t, res.Rects)
}

func TestZeroPitchCompletes(t *testing.T) {
	cfg := fixedConfig()
	cfg.Mesh.Pitch = 0
	cfg.Mesh.ExtendIntoMain = false
	g, err := NewGenerator(cfg)
	require.NoError(t, err)
	res, err := g.Generate()
	require.NoError(t, err)
	for _, p := range res.Pieces {
		lo, hi := p.Slopes.Bounds()
		assert.InDelta(t, lo.Y, hi.Y, 1e-9, p.Name)
	}
}

func TestSharedMeshesTransparent(t *testing.T) {
	shared := fixedConfig()
	plain := fixedConfig()
	plain.SharedMeshes = false

	a, err := NewGenerator(shared)
	require.NoError(t, err)
	b, err := NewGenerator(plain)
	require.NoError(t, err)

	ra, err := a.Generate()
	require.NoError(t, err)
	rb, err := b.Generate()
	require.NoError(t, err)

	require.Len(t, ra.Pieces, len(rb.Pieces))
	for i := range ra.Pieces {
		assert.Equal(t, rb.Pieces[i], ra.Pieces[i])
	}
	assert.Zero(t, b.Builder().Len())
}

func TestRerollStoresSeed(t *testing.T) {
	g, err := NewGenerator(fixedConfig())
	require.NoError(t, err)
	res, err := g.Reroll()
	require.NoError(t, err)
	assert.Equal(t, res.Seed, g.Config().Seed)
	assert.Same(t, res, g.Last())
}

func TestErrorsJoinable(t *testing.T) {
	err := errors.Join(invalid("a", "x"), invalid("b", "y"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, "a: x\nb: y", err.Error())
}

func TestMetricsRecordGenerations(t *testing.T) {
	g, err := NewGenerator(manualConfig(4, 3))
	require.NoError(t, err)
	require.NoError(t, g.SetFloor(0, rows(t, "####", "####", "####")))

	_, err = g.Generate()
	require.NoError(t, err)
	_, err = g.Generate()
	require.NoError(t, err)

	m := g.Metrics()
	assert.Equal(t, int64(2), m.Counter(status.Generations).Load())
	assert.Equal(t, int64(1), m.Counter(status.Rects).Load())
	assert.Equal(t, int64(42), m.Counter(status.LastSeed).Load())
	assert.Equal(t, int64(1), m.Counter(status.CacheHits).Load())
	assert.Equal(t, int64(1), m.Counter(status.CacheMisses).Load())
	assert.Equal(t, int64(1), m.Counter(status.CacheLen).Load())
	assert.GreaterOrEqual(t, m.Gauge(status.TotalMillis).Get(), m.Gauge(status.LastMillis).Get())

	g.cfg.Floors = 0
	_, err = g.Generate()
	require.Error(t, err)
	assert.Equal(t, int64(1), m.Counter(status.Failures).Load())
	assert.Equal(t, int64(2), m.Counter(status.Generations).Load())
}
