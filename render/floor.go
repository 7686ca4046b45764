package render

import (
	"github.com/lixenwraith/housegen/grid"
	"github.com/lixenwraith/housegen/roof"
)

// DrawFloor paints floor f of floors at (x, y), one cell per character, north
// up. Cells on a roof rectangle border of that floor take the rectangle color.
func DrawFloor(b *Buffer, x, y int, floors []*grid.FeatureGrid, f int, rects []roof.Rect) {
	if f < 0 || f >= len(floors) {
		return
	}
	g := floors[f]
	h := g.Height()
	for z := 0; z < h; z++ {
		for cx := 0; cx < g.Width(); cx++ {
			feat := g.Get(cx, z)
			c := Cell{Rune: feat.Glyph(), Fg: RgbLabel, Bg: FeatureColor(feat)}
			if feat == grid.Wall {
				c.Fg = Scale(RgbWall, 1.6)
			}
			b.Set(x+cx, y+h-1-z, c)
		}
	}

	for _, main := range []bool{false, true} {
		for _, r := range rects {
			if r.Floor != f || r.IsMain != main {
				continue
			}
			fg := RectColor(main)
			bd := r.Bounds
			for z := bd.Z; z < bd.MaxZ(); z++ {
				for cx := bd.X; cx < bd.MaxX(); cx++ {
					if z != bd.Z && z != bd.MaxZ()-1 && cx != bd.X && cx != bd.MaxX()-1 {
						continue
					}
					px, py := x+cx, y+h-1-z
					c := b.Get(px, py)
					c.Fg = fg
					b.Set(px, py, c)
				}
			}
		}
	}
}
