package house

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lixenwraith/housegen/classify"
	"github.com/lixenwraith/housegen/core"
	"github.com/lixenwraith/housegen/footprint"
	"github.com/lixenwraith/housegen/grid"
	"github.com/lixenwraith/housegen/mesh"
	"github.com/lixenwraith/housegen/roof"
	"github.com/lixenwraith/housegen/status"
	"github.com/lixenwraith/housegen/vmath"
)

// Generator owns the floor grids and runs the full pipeline.
// Not safe for concurrent use.
type Generator struct {
	cfg     Config
	floors  []*grid.FeatureGrid
	builder *mesh.Builder
	last    *Result
	metrics *status.Registry
	log     *slog.Logger
}

// NewGenerator validates cfg and allocates empty floor grids
func NewGenerator(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{
		cfg:     cfg,
		metrics: status.NewRegistry(),
		log:     core.Logger().With("pkg", "house"),
	}
	if err := g.resetBuilder(); err != nil {
		return nil, err
	}
	g.floors = make([]*grid.FeatureGrid, cfg.Floors)
	for i := range g.floors {
		g.floors[i] = grid.NewFeatureGrid(cfg.Width, cfg.Height)
	}
	return g, nil
}

func (g *Generator) resetBuilder() error {
	size := 0
	if g.cfg.SharedMeshes {
		size = g.cfg.CacheSize
	}
	b, err := mesh.NewBuilder(g.cfg.meshParams(), size)
	if err != nil {
		return fmt.Errorf("mesh cache: %w", err)
	}
	g.builder = b
	return nil
}

// Config returns a copy of the active configuration
func (g *Generator) Config() Config {
	return g.cfg
}

// Floor returns the grid of floor i, or nil when out of range
func (g *Generator) Floor(i int) *grid.FeatureGrid {
	if i < 0 || i >= len(g.floors) {
		return nil
	}
	return g.floors[i]
}

// Floors returns the current grids, ground first
func (g *Generator) Floors() []*grid.FeatureGrid {
	return g.floors
}

// Last returns the most recent successful result
func (g *Generator) Last() *Result {
	return g.last
}

// Builder exposes the mesh builder for cache statistics
func (g *Generator) Builder() *mesh.Builder {
	return g.builder
}

// Metrics returns the registry updated by every generation attempt
func (g *Generator) Metrics() *status.Registry {
	return g.metrics
}

// SetFloor replaces floor i with an authored grid of the configured size
func (g *Generator) SetFloor(i int, fg *grid.FeatureGrid) error {
	if i < 0 || i >= len(g.floors) {
		return fmt.Errorf("%w: floor %d of %d", ErrMissingFloor, i, len(g.floors))
	}
	if fg == nil {
		return fmt.Errorf("%w: floor %d is nil", ErrMissingFloor, i)
	}
	if fg.Width() != g.cfg.Width || fg.Height() != g.cfg.Height {
		return fmt.Errorf("%w: floor %d is %dx%d, want %dx%d",
			ErrGridMismatch, i, fg.Width(), fg.Height(), g.cfg.Width, g.cfg.Height)
	}
	g.floors[i] = fg
	return nil
}

// SetFloorCount grows or shrinks the floor list. Added floors start as walls
// wherever the floor below is occupied.
func (g *Generator) SetFloorCount(n int) error {
	if n < 1 {
		return invalid("floors", "must be >= 1, got %d", n)
	}
	if n <= len(g.floors) {
		g.floors = g.floors[:n]
		g.cfg.Floors = n
		return nil
	}
	for len(g.floors) < n {
		below := g.floors[len(g.floors)-1]
		g.floors = append(g.floors, grid.FromMask(below.Mask(), grid.Wall))
	}
	g.cfg.Floors = n
	return nil
}

// Resize changes the grid size of every floor, keeping the overlapping region
func (g *Generator) Resize(w, h int) error {
	if w < 1 || h < 1 {
		return invalid("grid", "size must be positive, got %dx%d", w, h)
	}
	for i, f := range g.floors {
		g.floors[i] = f.Resized(w, h)
	}
	g.cfg.Width, g.cfg.Height = w, h
	return nil
}

// ClearFloor empties floor i
func (g *Generator) ClearFloor(i int) error {
	f := g.Floor(i)
	if f == nil {
		return fmt.Errorf("%w: floor %d of %d", ErrMissingFloor, i, len(g.floors))
	}
	f.Clear()
	return nil
}

// checkFloors verifies the authored grids in manual mode
func (g *Generator) checkFloors() error {
	var errs []error
	if len(g.floors) != g.cfg.Floors {
		errs = append(errs, fmt.Errorf("%w: have %d grids for %d floors", ErrMissingFloor, len(g.floors), g.cfg.Floors))
	}
	for i, f := range g.floors {
		switch {
		case f == nil:
			errs = append(errs, fmt.Errorf("%w: floor %d", ErrMissingFloor, i))
		case f.Width() != g.cfg.Width || f.Height() != g.cfg.Height:
			errs = append(errs, fmt.Errorf("%w: floor %d is %dx%d, want %dx%d",
				ErrGridMismatch, i, f.Width(), f.Height(), g.cfg.Width, g.cfg.Height))
		}
	}
	return errors.Join(errs...)
}

func (g *Generator) validate() error {
	if err := g.cfg.Validate(); err != nil {
		return err
	}
	if g.cfg.Mode == Manual {
		return g.checkFloors()
	}
	return nil
}

// Generate runs validate, synthesize (auto), classify, decompose, resolve and
// mesh build. On error the previous result and grids are untouched.
func (g *Generator) Generate() (*Result, error) {
	if g.cfg.RandomSeed {
		return g.generate(time.Now().UnixNano())
	}
	return g.generate(g.cfg.Seed)
}

// Reroll draws a fresh seed from entropy, stores it and generates
func (g *Generator) Reroll() (*Result, error) {
	return g.generate(time.Now().UnixNano())
}

func (g *Generator) generate(seed int64) (*Result, error) {
	start := time.Now()
	if err := g.validate(); err != nil {
		g.metrics.Counter(status.Failures).Add(1)
		g.log.Warn("generation rejected", "err", err)
		return nil, err
	}

	floors := g.floors
	if g.cfg.Mode == Auto {
		rng := vmath.NewFastRand(uint64(seed))
		floors = footprint.New(g.cfg.Width, g.cfg.Height, g.cfg.Footprint, rng).Floors(g.cfg.Floors)
	}

	cells := classify.Building(floors, g.cfg.CellSize)
	rects := roof.Layout(floors, g.cfg.roofOptions())
	pieces := g.builder.BuildAll(rects)

	g.floors = floors
	g.cfg.Seed = seed
	res := &Result{
		Seed:     seed,
		CellSize: g.cfg.CellSize,
		Floors:   cloneFloors(floors),
		Cells:    cells,
		Rects:    rects,
		Pieces:   pieces,
	}
	g.last = res

	hits, misses := g.builder.Stats()
	g.record(res, hits, misses, time.Since(start))
	g.log.Info("house generated",
		"seed", seed,
		"mode", g.cfg.Mode,
		"floors", len(floors),
		"rects", len(rects),
		"cache_hits", hits,
		"cache_misses", misses,
	)
	return res, nil
}

func (g *Generator) record(res *Result, hits, misses int, took time.Duration) {
	m := g.metrics
	ms := float64(took.Microseconds()) / 1000
	m.Counter(status.Generations).Add(1)
	m.Counter(status.Rects).Store(int64(len(res.Rects)))
	m.Counter(status.LastSeed).Store(res.Seed)
	m.Counter(status.CacheHits).Store(int64(hits))
	m.Counter(status.CacheMisses).Store(int64(misses))
	m.Counter(status.CacheLen).Store(int64(g.builder.Len()))
	m.Gauge(status.LastMillis).Set(ms)
	m.Gauge(status.TotalMillis).Add(ms)
}

// Detect decomposes the current grids and resolves joins without building meshes
func (g *Generator) Detect() ([]roof.Rect, error) {
	if err := g.checkFloors(); err != nil {
		return nil, err
	}
	return roof.Layout(g.floors, g.cfg.roofOptions()), nil
}

func cloneFloors(floors []*grid.FeatureGrid) []*grid.FeatureGrid {
	out := make([]*grid.FeatureGrid, len(floors))
	for i, f := range floors {
		out[i] = f.Clone()
	}
	return out
}
