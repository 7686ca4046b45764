package mesh

import (
	"github.com/hashicorp/golang-lru/v2"

	"github.com/lixenwraith/housegen/core"
	"github.com/lixenwraith/housegen/roof"
)

// Key is the structural identity of a roof piece under fixed Params
type Key struct {
	Floor       int
	Bounds      core.Area
	RidgeAlongX bool
	HasJoin     bool
	JoinAxis    roof.Axis
	JoinSign    int
}

// KeyOf derives the cache key of a resolved rectangle
func KeyOf(r roof.Rect) Key {
	k := Key{Floor: r.Floor, Bounds: r.Bounds, RidgeAlongX: r.RidgeAlongX, HasJoin: r.HasJoin}
	if r.HasJoin {
		k.JoinAxis, k.JoinSign = r.JoinAxis, r.JoinSign
	}
	return k
}

// Builder builds pieces under one immutable Params, sharing geometry between
// structurally identical rectangles. Cached pieces are shared; callers must
// not modify them.
type Builder struct {
	params Params
	cache  *lru.Cache[Key, *Piece]

	hits, misses int
}

// NewBuilder creates a builder; size <= 0 disables caching
func NewBuilder(p Params, size int) (*Builder, error) {
	b := &Builder{params: p}
	if size <= 0 {
		return b, nil
	}
	cache, err := lru.New[Key, *Piece](size)
	if err != nil {
		return nil, err
	}
	b.cache = cache
	return b, nil
}

// Params returns the builder's parameters
func (b *Builder) Params() Params {
	return b.params
}

// Build returns the piece for r, from cache when possible
func (b *Builder) Build(r roof.Rect) *Piece {
	if b.cache == nil {
		return Build(r, b.params)
	}
	k := KeyOf(r)
	if p, ok := b.cache.Get(k); ok {
		b.hits++
		return p
	}
	b.misses++
	p := Build(r, b.params)
	b.cache.Add(k, p)
	return p
}

// BuildAll builds one piece per rectangle, order preserved
func (b *Builder) BuildAll(rects []roof.Rect) []*Piece {
	out := make([]*Piece, len(rects))
	for i, r := range rects {
		out[i] = b.Build(r)
	}
	return out
}

// Stats reports cache hits and misses since creation
func (b *Builder) Stats() (hits, misses int) {
	return b.hits, b.misses
}

// Len is the number of cached pieces
func (b *Builder) Len() int {
	if b.cache == nil {
		return 0
	}
	return b.cache.Len()
}
