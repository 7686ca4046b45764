// Package render draws floor plans with their roof rectangles, as PNG images
// and as terminal cell buffers.
package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/lixenwraith/housegen/grid"
	"github.com/lixenwraith/housegen/roof"
)

const (
	Margin      = 4
	LabelHeight = 16
)

// PlanSize returns the image size Plan produces
func PlanSize(floors []*grid.FeatureGrid, scale int) (int, int) {
	scale = max(1, scale)
	w, h := Margin, 0
	for _, f := range floors {
		w += f.Width()*scale + Margin
		h = max(h, f.Height()*scale)
	}
	return w, Margin + LabelHeight + h + Margin
}

// FloorOrigin is the top-left pixel of floor i's cell area
func FloorOrigin(floors []*grid.FeatureGrid, i, scale int) image.Point {
	scale = max(1, scale)
	x := Margin
	for _, f := range floors[:i] {
		x += f.Width()*scale + Margin
	}
	return image.Point{X: x, Y: Margin + LabelHeight}
}

// Plan lays floors out left to right, ground first, north up. Each cell is a
// scale x scale block; rectangles are outlined on their floor, main last.
func Plan(floors []*grid.FeatureGrid, rects []roof.Rect, scale int) *image.RGBA {
	scale = max(1, scale)
	w, h := PlanSize(floors, scale)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(RgbBackground.RGBA()), image.Point{}, draw.Src)

	for i, f := range floors {
		o := FloorOrigin(floors, i, scale)
		cells := cellImage(f)
		target := image.Rect(o.X, o.Y, o.X+f.Width()*scale, o.Y+f.Height()*scale)
		xdraw.NearestNeighbor.Scale(dst, target, cells, cells.Bounds(), xdraw.Src, nil)

		label(dst, o.X, Margin+LabelHeight-4, fmt.Sprintf("F%d", i))

		for _, main := range []bool{false, true} {
			for _, r := range rects {
				if r.Floor == i && r.IsMain == main {
					outline(dst, o, f.Height(), r, scale)
				}
			}
		}
	}
	return dst
}

// cellImage renders one pixel per cell, row 0 north
func cellImage(f *grid.FeatureGrid) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width(), f.Height()))
	for z := 0; z < f.Height(); z++ {
		for x := 0; x < f.Width(); x++ {
			img.SetRGBA(x, f.Height()-1-z, FeatureColor(f.Get(x, z)).RGBA())
		}
	}
	return img
}

// RectPixels is the pixel bounds of a rectangle on a floor drawn at origin o
func RectPixels(o image.Point, floorHeight int, r roof.Rect, scale int) image.Rectangle {
	b := r.Bounds
	return image.Rect(
		o.X+b.X*scale,
		o.Y+(floorHeight-b.MaxZ())*scale,
		o.X+b.MaxX()*scale,
		o.Y+(floorHeight-b.Z)*scale,
	)
}

func outline(dst *image.RGBA, o image.Point, floorHeight int, r roof.Rect, scale int) {
	px := RectPixels(o, floorHeight, r, scale)
	c := RectColor(r.IsMain).RGBA()
	for x := px.Min.X; x < px.Max.X; x++ {
		dst.SetRGBA(x, px.Min.Y, c)
		dst.SetRGBA(x, px.Max.Y-1, c)
	}
	for y := px.Min.Y; y < px.Max.Y; y++ {
		dst.SetRGBA(px.Min.X, y, c)
		dst.SetRGBA(px.Max.X-1, y, c)
	}
}

func label(dst draw.Image, x, baseline int, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(RgbLabel.RGBA()),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}

// WritePNG encodes img
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
