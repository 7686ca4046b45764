package config

import (
	"github.com/lixenwraith/housegen/grid"
	"github.com/lixenwraith/housegen/house"
	"github.com/lixenwraith/housegen/toml"
)

func ptr[T any](v T) *T { return &v }

// FileOf renders a resolved config as a complete File
func FileOf(h house.Config, floors []*grid.FeatureGrid) File {
	fp, r, m := h.Footprint, h.Roof, h.Mesh
	size := func(w, ht int) *[2]int { return &[2]int{w, ht} }

	f := File{
		Layout: Layout{
			Floors:       ptr(h.Floors),
			Grid:         size(h.Width, h.Height),
			CellSize:     &[3]float64{h.CellSize.X, h.CellSize.Y, h.CellSize.Z},
			Mode:         ptr(h.Mode.String()),
			RandomSeed:   ptr(h.RandomSeed),
			Seed:         ptr(h.Seed),
			SharedMeshes: ptr(h.SharedMeshes),
			CacheSize:    ptr(h.CacheSize),
		},
		Footprint: Footprint{
			BaseMin:       size(fp.BaseMin.W, fp.BaseMin.H),
			BaseMax:       size(fp.BaseMax.W, fp.BaseMax.H),
			Offshoots:     size(fp.OffshootCount.Min, fp.OffshootCount.Max),
			OffshootMin:   size(fp.OffshootMin.W, fp.OffshootMin.H),
			OffshootMax:   size(fp.OffshootMax.W, fp.OffshootMax.H),
			Notches:       ptr(fp.Notches),
			NotchCount:    size(fp.NotchCount.Min, fp.NotchCount.Max),
			NotchMin:      size(fp.NotchMin.W, fp.NotchMin.H),
			NotchMax:      size(fp.NotchMax.W, fp.NotchMax.H),
			UpperVariance: size(fp.UpperVariance.Min, fp.UpperVariance.Max),
			Front:         ptr(fp.Front.String()),
			WindowSpacing: ptr(fp.WindowSpacing),
			GroundWindows: ptr(fp.GroundWindows),
			CopyGround:    ptr(fp.CopyGround),
		},
		Roof: Roof{
			Strategy:            ptr(r.Strategy.String()),
			MinCells:            ptr(r.MinCells),
			MinWorldSpan:        ptr(r.MinWorldSpan),
			OrientPerpendicular: ptr(r.OrientPerpendicular),
			MinSharedEdge:       ptr(r.MinSharedEdgeWorld),
			MinJoinRatio:        ptr(r.MinJoinOverlapRatio),
			PreferGlobalRidge:   ptr(r.PreferGlobalRidge),
			GlobalAxisBias:      ptr(r.GlobalAxisBias),
		},
		Mesh: Mesh{
			Pitch:          ptr(m.Pitch),
			Overhang:       ptr(m.Overhang),
			ExtendIntoMain: ptr(m.ExtendIntoMain),
			MergeExtension: ptr(m.MergeExtension),
			MergeDrop:      ptr(m.MergeDrop),
			RidgeCap:       ptr(m.RidgeCap),
			RidgeCapWidth:  ptr(m.RidgeCapWidth),
			RidgeCapDrop:   ptr(m.RidgeCapDrop),
			Fascia:         ptr(m.Fascia),
			FasciaDepth:    ptr(m.FasciaDepth),
			SlopeUV:        &[2]float64{m.SlopeUV.X, m.SlopeUV.Y},
			EndCapUV:       &[2]float64{m.EndCapUV.X, m.EndCapUV.Y},
		},
	}
	for _, g := range floors {
		f.Floor = append(f.Floor, Floor{Rows: g.Rows()})
	}
	return f
}

// Marshal writes c as a TOML document that Parse reads back unchanged
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(FileOf(c.House, c.Floors))
}
