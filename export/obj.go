// Package export writes generated houses to interchange formats.
package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/lixenwraith/housegen/mesh"
)

// WriteOBJ writes each piece buffer as a Wavefront OBJ group named
// {piece}_{part}, with per-vertex UVs and one normal per triangle.
func WriteOBJ(w io.Writer, pieces []*mesh.Piece) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# housegen roof export")

	// OBJ indices are 1-based and global across groups
	var vBase, nBase int
	for _, p := range pieces {
		if p == nil {
			continue
		}
		for _, part := range p.Buffers() {
			b := part.Buffer
			if b.IsEmpty() {
				continue
			}
			fmt.Fprintf(bw, "g %s_%s\n", p.Name, part.Part)
			for _, v := range b.Vertices {
				fmt.Fprintf(bw, "v %s %s %s\n", num(v.X), num(v.Y), num(v.Z))
			}
			for i := range b.Vertices {
				var u, vv float64
				if i < len(b.UVs) {
					u, vv = b.UVs[i].X, b.UVs[i].Y
				}
				fmt.Fprintf(bw, "vt %s %s\n", num(u), num(vv))
			}
			tris := b.TriangleCount()
			for t := 0; t < tris; t++ {
				n := b.Normal(t)
				fmt.Fprintf(bw, "vn %s %s %s\n", num(n.X), num(n.Y), num(n.Z))
			}
			for t := 0; t < tris; t++ {
				fmt.Fprint(bw, "f")
				for k := 0; k < 3; k++ {
					vi := vBase + int(b.Indices[t*3+k]) + 1
					fmt.Fprintf(bw, " %d/%d/%d", vi, vi, nBase+t+1)
				}
				fmt.Fprintln(bw)
			}
			vBase += b.VertexCount()
			nBase += tris
		}
	}
	return bw.Flush()
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
