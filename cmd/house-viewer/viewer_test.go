package main

import (
	"strconv"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/housegen/house"
	"github.com/lixenwraith/housegen/render"
)

func newTestViewer(t *testing.T, cfg house.Config) (*viewer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 30)

	gen, err := house.NewGenerator(cfg)
	require.NoError(t, err)
	return newViewer(screen, gen, nil), screen
}

func fixed() house.Config {
	cfg := house.DefaultConfig()
	cfg.RandomSeed = false
	cfg.Seed = 42
	cfg.Floors = 3
	return cfg
}

func line(s tcell.SimulationScreen, y int) string {
	w, _ := s.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestViewerDrawsResult(t *testing.T) {
	v, s := newTestViewer(t, fixed())
	v.generate(v.gen.Generate)
	v.draw()

	assert.True(t, strings.HasPrefix(line(s, 0), "housegen"))
	assert.Equal(t, "seed 42  floor 0/2  rects "+strconv.Itoa(len(v.res.Rects)), line(s, 1))
	status := line(s, 29)
	assert.True(t, strings.HasPrefix(status, "generated seed 42 "))
	assert.True(t, strings.HasSuffix(status, "ms"))
	assert.Contains(t, status, "gen 1  cache ")

	// ground plan rows land under the header, north first
	rows := v.res.Floors[0].Rows()
	for i, row := range rows {
		assert.Equal(t, row, line(s, planY+i)[planX:planX+len(row)])
	}
	report := line(s, planY+len(rows)+1)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(report), "[0] F"), report)
}

func TestViewerFloorKeys(t *testing.T) {
	v, _ := newTestViewer(t, fixed())
	v.generate(v.gen.Generate)

	assert.True(t, v.handle(key(']')))
	assert.Equal(t, 1, v.floor)
	v.handle(tcell.NewEventKey(tcell.KeyPgUp, 0, tcell.ModNone))
	v.handle(key(']'))
	assert.Equal(t, 2, v.floor, "clamped to top floor")
	v.handle(key('['))
	v.handle(tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone))
	v.handle(key('['))
	assert.Equal(t, 0, v.floor)
}

func TestViewerQuitKeys(t *testing.T) {
	v, _ := newTestViewer(t, fixed())
	assert.False(t, v.handle(key('q')))
	assert.False(t, v.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, v.handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)))
	assert.True(t, v.handle(key('x')))
}

func TestViewerReroll(t *testing.T) {
	v, _ := newTestViewer(t, fixed())
	v.handle(key('r'))
	require.NotNil(t, v.res)
	assert.Equal(t, v.gen.Config().Seed, v.res.Seed)
	assert.True(t, strings.HasPrefix(v.status, "generated seed"))
}

func TestViewerKeepsResultOnError(t *testing.T) {
	cfg := fixed()
	cfg.Mode = house.Manual
	cfg.Floors = 1
	v, s := newTestViewer(t, cfg)
	v.handle(key('g'))
	first := v.res
	require.NotNil(t, first)

	v.gen.Floors()[0] = nil
	v.handle(key('g'))
	assert.Same(t, first, v.res)
	assert.True(t, strings.HasPrefix(v.status, "error: "))

	v.draw()
	assert.True(t, strings.HasPrefix(line(s, 29), "error: "))
}

func TestViewerMainRectColor(t *testing.T) {
	v, s := newTestViewer(t, fixed())
	v.generate(v.gen.Generate)
	v.draw()
	for i, r := range v.res.Rects {
		if r.Floor == 0 && r.IsMain {
			_, _, style, _ := s.GetContent(planX, planY+v.res.Floors[0].Height()+1+i)
			fg, _, _ := style.Decompose()
			assert.Equal(t, render.RgbMainRect.TCell(), fg)
		}
	}
}
