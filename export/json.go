package export

import (
	"encoding/json"
	"io"

	"github.com/lixenwraith/housegen/house"
	"github.com/lixenwraith/housegen/mesh"
)

// Document is the JSON form of a generation result
type Document struct {
	Seed   int64          `json:"seed"`
	Floors [][]string     `json:"floors"`
	Rects  []RectDocument `json:"rects"`
	Pieces []*mesh.Piece  `json:"pieces,omitempty"`
}

type RectDocument struct {
	Name        string `json:"name"`
	Floor       int    `json:"floor"`
	X           int    `json:"x"`
	Z           int    `json:"z"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	RidgeAlongX bool   `json:"ridgeAlongX"`
	Join        string `json:"join,omitempty"`
	Main        bool   `json:"main,omitempty"`
}

// NewDocument flattens res; geometry is included when withMeshes is set
func NewDocument(res *house.Result, withMeshes bool) Document {
	doc := Document{Seed: res.Seed}
	for _, f := range res.Floors {
		doc.Floors = append(doc.Floors, f.Rows())
	}
	for _, r := range res.Rects {
		rd := RectDocument{
			Name:        r.Name(),
			Floor:       r.Floor,
			X:           r.Bounds.X,
			Z:           r.Bounds.Z,
			Width:       r.Bounds.Width,
			Height:      r.Bounds.Height,
			RidgeAlongX: r.RidgeAlongX,
			Main:        r.IsMain,
		}
		if r.HasJoin {
			sign := "-"
			if r.JoinSign > 0 {
				sign = "+"
			}
			rd.Join = r.JoinAxis.String() + sign
		}
		doc.Rects = append(doc.Rects, rd)
	}
	if withMeshes {
		doc.Pieces = res.Pieces
	}
	return doc
}

// WriteJSON writes the indented document for res
func WriteJSON(w io.Writer, res *house.Result, withMeshes bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(res, withMeshes))
}
