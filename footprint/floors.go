package footprint

import (
	"github.com/lixenwraith/housegen/core"
	"github.com/lixenwraith/housegen/grid"
)

// Floors synthesizes and decorates n floors. Floor 0 is always synthesized first;
// upper floors copy it or are re-synthesized with a reduced offshoot range.
func (s *Synthesizer) Floors(n int) []*grid.FeatureGrid {
	if n <= 0 {
		return nil
	}
	ground := s.Build()
	out := make([]*grid.FeatureGrid, n)
	for f := 0; f < n; f++ {
		m := ground
		if f > 0 && !s.cfg.CopyGround {
			m = s.BuildWithOffshoots(s.varied())
		}
		out[f] = Decorate(f, m, s.cfg)
	}
	return out
}

// varied returns the offshoot range reduced by a per-floor draw from UpperVariance
func (s *Synthesizer) varied() Range {
	v := s.cfg.UpperVariance
	delta := v.Min
	if v.Min != v.Max {
		delta = between(s.rng, v.Min, v.Max+1)
	}
	return Range{
		Min: max(0, s.cfg.OffshootCount.Min-delta),
		Max: max(0, s.cfg.OffshootCount.Max-delta),
	}
}

// PickDoor finds the door cell on the front side (isFront) or the opposite side.
// The door sits at the middle of the widest run on that side's extreme line and
// avoids the run's corner cells when the run has an interior.
func PickDoor(m *grid.Mask, front grid.Side, isFront bool) (core.Cell, bool) {
	side := front
	if !isFront {
		side = front.Opposite()
	}
	edge, runs, ok := m.EdgeRuns(side)
	if !ok {
		return core.Cell{}, false
	}
	run, _ := grid.Widest(runs)
	along := run.Mid()
	if run.Len >= 3 {
		along = min(max(along, run.Start+1), run.Start+run.Len-2)
	}
	if side.AlongZ() {
		return core.Cell{X: along, Z: edge}, true
	}
	return core.Cell{X: edge, Z: along}, true
}

// Decorate converts an occupancy mask to floor features: walls everywhere,
// doors (ground) or windows (upper) at the front and back door cells, and
// perimeter windows at the configured spacing.
func Decorate(floor int, m *grid.Mask, cfg Config) *grid.FeatureGrid {
	g := grid.FromMask(m, grid.Wall)

	var doors []core.Cell
	for _, isFront := range []bool{true, false} {
		c, ok := PickDoor(m, cfg.Front, isFront)
		if !ok {
			continue
		}
		doors = append(doors, c)
		switch {
		case floor == 0:
			g.Set(c.X, c.Z, grid.Door)
		case m.Get(c.X, c.Z):
			g.Set(c.X, c.Z, grid.Window)
		}
	}

	if floor == 0 && !cfg.GroundWindows {
		return g
	}
	for z := 0; z < m.Height(); z++ {
		for x := 0; x < m.Width(); x++ {
			if !m.IsPerimeter(x, z) || isDoor(doors, x, z) {
				continue
			}
			if cfg.WindowSpacing <= 1 || (x+z)%cfg.WindowSpacing == 0 {
				g.Set(x, z, grid.Window)
			}
		}
	}
	return g
}

func isDoor(doors []core.Cell, x, z int) bool {
	for _, d := range doors {
		if d.X == x && d.Z == z {
			return true
		}
	}
	return false
}
