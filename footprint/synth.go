package footprint

import (
	"github.com/lixenwraith/housegen/core"
	"github.com/lixenwraith/housegen/grid"
	"github.com/lixenwraith/housegen/parameter"
)

// Synthesizer grows a connected compound footprint: base rectangle,
// outward offshoots, inward notches.
type Synthesizer struct {
	size core.Size
	cfg  Config
	rng  Rand
}

func New(w, h int, cfg Config, rng Rand) *Synthesizer {
	return &Synthesizer{size: core.Size{W: w, H: h}, cfg: cfg, rng: rng}
}

// Build synthesizes one footprint with the configured offshoot count
func (s *Synthesizer) Build() *grid.Mask {
	return s.BuildWithOffshoots(s.cfg.OffshootCount)
}

// BuildWithOffshoots synthesizes one footprint with an explicit offshoot count range.
// The result is empty or exactly one 4-connected component.
func (s *Synthesizer) BuildWithOffshoots(offshoots Range) *grid.Mask {
	W, H := s.size.W, s.size.H
	m := grid.NewMask(W, H)
	if W <= 0 || H <= 0 {
		return m
	}
	log := core.Logger()

	// 1. Base rectangle
	bwMin := clampSize(s.cfg.BaseMin.W, 2, W)
	bhMin := clampSize(s.cfg.BaseMin.H, 2, H)
	bwMax := clampSize(s.cfg.BaseMax.W, bwMin, W)
	bhMax := clampSize(s.cfg.BaseMax.H, bhMin, H)

	bw := between(s.rng, bwMin, bwMax+1)
	bh := between(s.rng, bhMin, bhMax+1)
	bx := between(s.rng, 0, max(1, W-bw+1))
	bz := between(s.rng, 0, max(1, H-bh+1))
	m.FillRect(bx, bz, bw, bh, true)

	// 2. Offshoots
	count := pick(s.rng, offshoots)
	for i := 0; i < count; i++ {
		if !s.addOffshoot(m) {
			log.Debug("offshoot skipped", "index", i)
		}
	}

	// 3. Notches
	if s.cfg.Notches {
		count = pick(s.rng, s.cfg.NotchCount)
		for i := 0; i < count; i++ {
			if !s.carveNotch(m) {
				log.Debug("notch skipped", "index", i)
			}
		}
	}

	// 4. Connectivity repair
	if removed := m.KeepLargest(); removed > 0 {
		log.Debug("footprint repaired", "removed", removed)
	}
	return m
}

// placement is a candidate rectangle attached to an edge run
type placement struct {
	side  grid.Side
	edge  int
	along int // start along the edge
	width int // extent along the edge
	depth int // extent across the edge
}

// rect converts to grid coordinates; inward selects notch (into the shape) vs offshoot
func (p placement) rect(inward bool) (x0, z0, w, h int) {
	switch p.side {
	case grid.North:
		if inward {
			return p.along, p.edge - p.depth + 1, p.width, p.depth
		}
		return p.along, p.edge + 1, p.width, p.depth
	case grid.South:
		if inward {
			return p.along, p.edge, p.width, p.depth
		}
		return p.along, p.edge - p.depth, p.width, p.depth
	case grid.East:
		if inward {
			return p.edge - p.depth + 1, p.along, p.depth, p.width
		}
		return p.edge + 1, p.along, p.depth, p.width
	default:
		if inward {
			return p.edge, p.along, p.depth, p.width
		}
		return p.edge - p.depth, p.along, p.depth, p.width
	}
}

func (s *Synthesizer) addOffshoot(m *grid.Mask) bool {
	wMin := clampSize(s.cfg.OffshootMin.W, 1, s.size.W)
	dMin := clampSize(s.cfg.OffshootMin.H, 1, s.size.H)
	wMax := clampSize(s.cfg.OffshootMax.W, wMin, s.size.W)
	dMax := clampSize(s.cfg.OffshootMax.H, dMin, s.size.H)

	for attempt := 0; attempt < parameter.PlacementAttempts; attempt++ {
		p, ok := s.choose(m, wMin, wMax, 1)
		if !ok {
			continue
		}
		room := s.outwardRoom(p)
		if room <= 0 {
			continue
		}
		p.depth = between(s.rng, min(dMin, room), min(dMax, room)+1)
		if p.depth <= 0 || p.width <= 0 {
			continue
		}
		x0, z0, w, h := p.rect(false)
		m.FillRect(x0, z0, w, h, true)
		return true
	}
	return false
}

func (s *Synthesizer) carveNotch(m *grid.Mask) bool {
	wMin := clampSize(s.cfg.NotchMin.W, 1, s.size.W)
	dMin := clampSize(s.cfg.NotchMin.H, 1, s.size.H)
	wMax := clampSize(s.cfg.NotchMax.W, wMin, s.size.W)
	dMax := clampSize(s.cfg.NotchMax.H, dMin, s.size.H)

	for attempt := 0; attempt < parameter.PlacementAttempts; attempt++ {
		p, ok := s.choose(m, wMin, wMax, 2)
		if !ok {
			continue
		}
		room := min(MaxNotchDepth, s.inwardRoom(p))
		if room <= 0 {
			continue
		}
		p.depth = between(s.rng, min(dMin, room), min(dMax, room)+1)

		x0, z0, w, h := p.rect(true)
		var cleared []core.Cell
		for z := z0; z < z0+h; z++ {
			for x := x0; x < x0+w; x++ {
				if m.Get(x, z) {
					m.Set(x, z, false)
					cleared = append(cleared, core.Cell{X: x, Z: z})
				}
			}
		}
		if m.Count() > 0 && m.IsConnected() {
			return true
		}
		for _, c := range cleared {
			m.Set(c.X, c.Z, true)
		}
	}
	return false
}

// choose picks a side, its extreme line, a random run and a width/offset in it.
// minRun rejects runs whose usable width is below it.
func (s *Synthesizer) choose(m *grid.Mask, wMin, wMax, minRun int) (placement, bool) {
	side := grid.Side(s.rng.Intn(4))
	edge, runs, ok := m.EdgeRuns(side)
	if !ok {
		return placement{}, false
	}
	run := runs[s.rng.Intn(len(runs))]
	maxW := min(run.Len, wMax)
	if maxW < minRun {
		return placement{}, false
	}
	w := between(s.rng, min(wMin, maxW), maxW+1)
	along := between(s.rng, run.Start, run.Start+run.Len-w+1)
	return placement{side: side, edge: edge, along: along, width: w}, true
}

// outwardRoom is the free grid space beyond the edge
func (s *Synthesizer) outwardRoom(p placement) int {
	switch p.side {
	case grid.North:
		return s.size.H - 1 - p.edge
	case grid.South:
		return p.edge
	case grid.East:
		return s.size.W - 1 - p.edge
	default:
		return p.edge
	}
}

// inwardRoom is the depth available for carving into the shape from the edge.
// The far line of the grid is never reached.
func (s *Synthesizer) inwardRoom(p placement) int {
	switch p.side {
	case grid.North, grid.East:
		return p.edge
	case grid.South:
		return s.size.H - 1 - p.edge
	default:
		return s.size.W - 1 - p.edge
	}
}

// clampSize bounds v to [lo, hi], lo winning when the grid is smaller than lo
func clampSize(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
