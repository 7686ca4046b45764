package house

import (
	"errors"

	"github.com/lixenwraith/housegen/footprint"
	"github.com/lixenwraith/housegen/mesh"
	"github.com/lixenwraith/housegen/parameter"
	"github.com/lixenwraith/housegen/roof"
	"github.com/lixenwraith/housegen/vmath"
)

// Mode selects where floor grids come from
type Mode uint8

const (
	// Auto synthesizes every floor on each generation
	Auto Mode = iota
	// Manual uses the authored grids as-is
	Manual
)

func (m Mode) String() string {
	if m == Manual {
		return "manual"
	}
	return "auto"
}

// Config aggregates every generation input. CellSize overrides the cell size
// carried by Roof and Mesh.
type Config struct {
	Floors        int
	Width, Height int
	CellSize      vmath.Vec3F

	Mode       Mode
	RandomSeed bool // reseed from entropy on every Generate
	Seed       int64

	Footprint footprint.Config
	Roof      roof.Options
	Mesh      mesh.Params

	SharedMeshes bool
	CacheSize    int
}

func DefaultConfig() Config {
	return Config{
		Floors:       parameter.Floors,
		Width:        parameter.GridWidth,
		Height:       parameter.GridHeight,
		CellSize:     vmath.Vec3F{X: parameter.CellSizeX, Y: parameter.CellSizeY, Z: parameter.CellSizeZ},
		Mode:         Auto,
		RandomSeed:   true,
		Seed:         parameter.DefaultSeed,
		Footprint:    footprint.DefaultConfig(),
		Roof:         roof.DefaultOptions(),
		Mesh:         mesh.DefaultParams(),
		SharedMeshes: true,
		CacheSize:    parameter.MeshCacheSize,
	}
}

// Validate reports every rejected field, joined
func (c Config) Validate() error {
	var errs []error
	if c.Floors < 1 {
		errs = append(errs, invalid("floors", "must be >= 1, got %d", c.Floors))
	}
	if c.Width < 1 || c.Height < 1 {
		errs = append(errs, invalid("grid", "size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.CellSize.X <= 0 || c.CellSize.Y <= 0 || c.CellSize.Z <= 0 {
		errs = append(errs, invalid("cell_size", "components must be positive, got %+v", c.CellSize))
	}

	fp := c.Footprint
	if fp.BaseMin.W > fp.BaseMax.W || fp.BaseMin.H > fp.BaseMax.H {
		errs = append(errs, invalid("footprint.base", "min %v exceeds max %v", fp.BaseMin, fp.BaseMax))
	}
	if fp.OffshootCount.Min > fp.OffshootCount.Max {
		errs = append(errs, invalid("footprint.offshoots", "min %d exceeds max %d", fp.OffshootCount.Min, fp.OffshootCount.Max))
	}
	if fp.NotchCount.Min > fp.NotchCount.Max {
		errs = append(errs, invalid("footprint.notches", "min %d exceeds max %d", fp.NotchCount.Min, fp.NotchCount.Max))
	}
	if fp.UpperVariance.Min > fp.UpperVariance.Max || fp.UpperVariance.Min < 0 {
		errs = append(errs, invalid("footprint.upper_variance", "bad range %v", fp.UpperVariance))
	}
	if fp.WindowSpacing < 0 {
		errs = append(errs, invalid("footprint.window_spacing", "must be >= 0, got %d", fp.WindowSpacing))
	}

	if c.Roof.Strategy != roof.Largest && c.Roof.Strategy != roof.Greedy {
		errs = append(errs, invalid("roof.strategy", "unknown strategy %d", c.Roof.Strategy))
	}
	if c.Roof.GlobalAxisBias < 1 {
		errs = append(errs, invalid("roof.global_axis_bias", "must be >= 1, got %g", c.Roof.GlobalAxisBias))
	}
	if c.Mesh.Pitch < 0 || c.Mesh.Overhang < 0 {
		errs = append(errs, invalid("mesh", "pitch and overhang must be >= 0"))
	}
	return errors.Join(errs...)
}

// roofOptions applies the shared cell size
func (c Config) roofOptions() roof.Options {
	o := c.Roof
	o.CellSize = c.CellSize
	return o
}

func (c Config) meshParams() mesh.Params {
	p := c.Mesh
	p.CellSize = c.CellSize
	return p
}
