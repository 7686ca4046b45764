package footprint

import (
	"github.com/lixenwraith/housegen/core"
	"github.com/lixenwraith/housegen/grid"
	"github.com/lixenwraith/housegen/parameter"
)

// MaxNotchDepth caps notch depth independently of NotchMax.
// TODO: decide whether NotchMax.H alone should bound notch depth.
const MaxNotchDepth = 4

// Rand is the randomness source; vmath.FastRand and math/rand satisfy it
type Rand interface {
	Intn(n int) int
}

// Range is an inclusive integer interval
type Range struct {
	Min, Max int
}

// Config drives footprint synthesis and floor decoration.
// Size values use W for extent along the attaching edge and H for depth.
type Config struct {
	BaseMin, BaseMax core.Size

	OffshootCount            Range
	OffshootMin, OffshootMax core.Size

	Notches            bool
	NotchCount         Range
	NotchMin, NotchMax core.Size

	// Offshoot count reduction for re-synthesized upper floors
	UpperVariance Range

	Front         grid.Side
	WindowSpacing int
	GroundWindows bool
	CopyGround    bool
}

// DefaultConfig returns the stock procedural house settings
func DefaultConfig() Config {
	return Config{
		BaseMin:       core.Size{W: parameter.BaseWidthMin, H: parameter.BaseHeightMin},
		BaseMax:       core.Size{W: parameter.BaseWidthMax, H: parameter.BaseHeightMax},
		OffshootCount: Range{parameter.OffshootCountMin, parameter.OffshootCountMax},
		OffshootMin:   core.Size{W: parameter.OffshootWidthMin, H: parameter.OffshootDepthMin},
		OffshootMax:   core.Size{W: parameter.OffshootWidthMax, H: parameter.OffshootDepthMax},
		Notches:       true,
		NotchCount:    Range{parameter.NotchCountMin, parameter.NotchCountMax},
		NotchMin:      core.Size{W: parameter.NotchWidthMin, H: parameter.NotchDepthMin},
		NotchMax:      core.Size{W: parameter.NotchWidthMax, H: parameter.NotchDepthMax},
		UpperVariance: Range{parameter.UpperVarianceMin, parameter.UpperVarianceMax},
		Front:         grid.South,
		WindowSpacing: parameter.WindowSpacing,
		GroundWindows: true,
		CopyGround:    true,
	}
}

// between returns lo + Intn(hi-lo), or lo when the interval is empty
func between(rng Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo)
}

// pick draws from an inclusive count range, fixed when Min == Max
func pick(rng Rand, r Range) int {
	lo := max(0, r.Min)
	hi := max(lo, r.Max)
	if lo == hi {
		return lo
	}
	return between(rng, lo, hi+1)
}
