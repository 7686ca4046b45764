// Package config layers housegen settings: defaults, an optional TOML file,
// a .env file, then HOUSEGEN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/housegen/core"
	"github.com/lixenwraith/housegen/footprint"
	"github.com/lixenwraith/housegen/grid"
	"github.com/lixenwraith/housegen/house"
	"github.com/lixenwraith/housegen/roof"
	"github.com/lixenwraith/housegen/toml"
	"github.com/lixenwraith/housegen/vmath"
)

const (
	EnvSeed       = "HOUSEGEN_SEED"
	EnvFloors     = "HOUSEGEN_FLOORS"
	EnvRandomSeed = "HOUSEGEN_RANDOM_SEED"
	EnvGrid       = "HOUSEGEN_GRID"
)

// EnvFile is the dotenv file read from the working directory
var EnvFile = ".env"

// Config is a resolved house configuration plus any authored floors
type Config struct {
	House  house.Config
	Floors []*grid.FeatureGrid
	Source string
}

func Default() *Config {
	return &Config{House: house.DefaultConfig()}
}

// Load resolves the layered configuration; an empty path skips the file layer
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := c.applyTOML(data); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		c.Source = path
	}

	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", EnvFile, err)
	}
	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	return c, nil
}

// Parse applies TOML data over the defaults without touching the environment
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := c.applyTOML(data); err != nil {
		return nil, err
	}
	return c, nil
}

// Apply installs authored floors into a generator built from c.House
func (c *Config) Apply(g *house.Generator) error {
	for i, f := range c.Floors {
		if i >= len(g.Floors()) {
			break
		}
		if err := g.SetFloor(i, f); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) applyTOML(data []byte) error {
	var f File
	if err := toml.UnmarshalStrict(data, &f); err != nil {
		return err
	}
	if err := c.applyFloors(f.Floor); err != nil {
		return err
	}
	if err := applyLayout(&c.House, f.Layout); err != nil {
		return err
	}
	if err := applyFootprint(&c.House.Footprint, f.Footprint); err != nil {
		return err
	}
	if err := applyRoof(&c.House.Roof, f.Roof); err != nil {
		return err
	}
	applyMesh(&c.House, f.Mesh)
	return nil
}

// applyFloors parses authored grids. Their presence switches to manual mode
// and sizes the layout unless [layout] says otherwise.
func (c *Config) applyFloors(floors []Floor) error {
	if len(floors) == 0 {
		return nil
	}
	c.Floors = make([]*grid.FeatureGrid, len(floors))
	for i, fl := range floors {
		g, err := grid.ParseRows(fl.Rows)
		if err != nil {
			return fmt.Errorf("floor[%d]: %w", i, err)
		}
		c.Floors[i] = g
	}
	base := c.Floors[0]
	for i, g := range c.Floors {
		if g.Width() != base.Width() || g.Height() != base.Height() {
			return fmt.Errorf("floor[%d]: %w: %dx%d, floor[0] is %dx%d",
				i, house.ErrGridMismatch, g.Width(), g.Height(), base.Width(), base.Height())
		}
	}
	c.House.Mode = house.Manual
	c.House.Floors = len(c.Floors)
	c.House.Width, c.House.Height = base.Width(), base.Height()
	return nil
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setSize(dst *core.Size, src *[2]int) {
	if src != nil {
		*dst = core.Size{W: src[0], H: src[1]}
	}
}

func setRange(dst *footprint.Range, src *[2]int) {
	if src != nil {
		*dst = footprint.Range{Min: src[0], Max: src[1]}
	}
}

func setUV(dst *vmath.Vec2F, src *[2]float64) {
	if src != nil {
		*dst = vmath.V2F(src[0], src[1])
	}
}

func applyLayout(h *house.Config, l Layout) error {
	set(&h.Floors, l.Floors)
	if l.Grid != nil {
		h.Width, h.Height = l.Grid[0], l.Grid[1]
	}
	if l.CellSize != nil {
		h.CellSize = vmath.Vec3F{X: l.CellSize[0], Y: l.CellSize[1], Z: l.CellSize[2]}
	}
	if l.Mode != nil {
		m, err := ParseMode(*l.Mode)
		if err != nil {
			return fmt.Errorf("layout.mode: %w", err)
		}
		h.Mode = m
	}
	set(&h.RandomSeed, l.RandomSeed)
	if l.Seed != nil {
		h.Seed = *l.Seed
		if l.RandomSeed == nil {
			h.RandomSeed = false
		}
	}
	set(&h.SharedMeshes, l.SharedMeshes)
	set(&h.CacheSize, l.CacheSize)
	return nil
}

func applyFootprint(fp *footprint.Config, f Footprint) error {
	setSize(&fp.BaseMin, f.BaseMin)
	setSize(&fp.BaseMax, f.BaseMax)
	setRange(&fp.OffshootCount, f.Offshoots)
	setSize(&fp.OffshootMin, f.OffshootMin)
	setSize(&fp.OffshootMax, f.OffshootMax)
	set(&fp.Notches, f.Notches)
	setRange(&fp.NotchCount, f.NotchCount)
	setSize(&fp.NotchMin, f.NotchMin)
	setSize(&fp.NotchMax, f.NotchMax)
	setRange(&fp.UpperVariance, f.UpperVariance)
	if f.Front != nil {
		side, err := grid.ParseSide(*f.Front)
		if err != nil {
			return fmt.Errorf("footprint.front: %w", err)
		}
		fp.Front = side
	}
	set(&fp.WindowSpacing, f.WindowSpacing)
	set(&fp.GroundWindows, f.GroundWindows)
	set(&fp.CopyGround, f.CopyGround)
	return nil
}

func applyRoof(o *roof.Options, r Roof) error {
	if r.Strategy != nil {
		s, err := ParseStrategy(*r.Strategy)
		if err != nil {
			return fmt.Errorf("roof.strategy: %w", err)
		}
		o.Strategy = s
	}
	set(&o.MinCells, r.MinCells)
	set(&o.MinWorldSpan, r.MinWorldSpan)
	set(&o.OrientPerpendicular, r.OrientPerpendicular)
	set(&o.MinSharedEdgeWorld, r.MinSharedEdge)
	set(&o.MinJoinOverlapRatio, r.MinJoinRatio)
	set(&o.PreferGlobalRidge, r.PreferGlobalRidge)
	set(&o.GlobalAxisBias, r.GlobalAxisBias)
	return nil
}

func applyMesh(h *house.Config, m Mesh) {
	p := &h.Mesh
	set(&p.Pitch, m.Pitch)
	set(&p.Overhang, m.Overhang)
	set(&p.ExtendIntoMain, m.ExtendIntoMain)
	set(&p.MergeExtension, m.MergeExtension)
	set(&p.MergeDrop, m.MergeDrop)
	set(&p.RidgeCap, m.RidgeCap)
	set(&p.RidgeCapWidth, m.RidgeCapWidth)
	set(&p.RidgeCapDrop, m.RidgeCapDrop)
	set(&p.Fascia, m.Fascia)
	set(&p.FasciaDepth, m.FasciaDepth)
	setUV(&p.SlopeUV, m.SlopeUV)
	setUV(&p.EndCapUV, m.EndCapUV)
}

func (c *Config) applyEnv() error {
	h := &c.House
	if v := strings.TrimSpace(os.Getenv(EnvSeed)); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		h.Seed, h.RandomSeed = seed, false
	}
	if v := strings.TrimSpace(os.Getenv(EnvRandomSeed)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRandomSeed, err)
		}
		h.RandomSeed = b
	}
	if v := strings.TrimSpace(os.Getenv(EnvFloors)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFloors, err)
		}
		h.Floors = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvGrid)); v != "" {
		w, ht, err := ParseGrid(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvGrid, err)
		}
		h.Width, h.Height = w, ht
	}
	return nil
}

// ParseGrid reads "WxH"
func ParseGrid(v string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(v)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("grid %q: want WxH", v)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("grid %q: %w", v, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("grid %q: %w", v, err)
	}
	return w, h, nil
}

func ParseMode(v string) (house.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "auto":
		return house.Auto, nil
	case "manual":
		return house.Manual, nil
	}
	return 0, fmt.Errorf("unknown mode %q", v)
}

func ParseStrategy(v string) (roof.Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "largest":
		return roof.Largest, nil
	case "greedy":
		return roof.Greedy, nil
	}
	return 0, fmt.Errorf("unknown strategy %q", v)
}
