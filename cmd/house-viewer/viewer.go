package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/housegen/house"
	"github.com/lixenwraith/housegen/render"
)

const (
	planX = 1
	planY = 2
)

// viewer shows one floor of the latest result with its roof rectangles
type viewer struct {
	screen tcell.Screen
	gen    *house.Generator
	buf    *render.Buffer
	sound  *chime

	res    *house.Result
	floor  int
	status string
}

func newViewer(screen tcell.Screen, gen *house.Generator, sound *chime) *viewer {
	w, h := screen.Size()
	return &viewer{
		screen: screen,
		gen:    gen,
		buf:    render.NewBuffer(w, h),
		sound:  sound,
	}
}

// generate runs fn and keeps the previous result on failure
func (v *viewer) generate(fn func() (*house.Result, error)) {
	res, err := fn()
	if err != nil {
		v.status = "error: " + err.Error()
		return
	}
	v.res = res
	v.floor = min(v.floor, len(res.Floors)-1)
	v.status = fmt.Sprintf("generated seed %d", res.Seed)
	v.sound.play()
}

// handle applies one event; false means quit
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyPgUp:
			v.step(1)
		case tcell.KeyPgDn:
			v.step(-1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ']':
				v.step(1)
			case '[':
				v.step(-1)
			case 'r':
				v.generate(v.gen.Reroll)
			case 'g':
				v.generate(v.gen.Generate)
			}
		}
	case *tcell.EventResize:
		w, h := v.screen.Size()
		v.buf.Resize(w, h)
		v.screen.Sync()
	}
	return true
}

func (v *viewer) step(d int) {
	if v.res == nil {
		return
	}
	v.floor = max(0, min(len(v.res.Floors)-1, v.floor+d))
}

func (v *viewer) draw() {
	b := v.buf
	b.Clear()
	b.Text(0, 0, "housegen  [ ] floor  r reroll  g regenerate  q quit", render.RgbStatusText)

	if v.res != nil {
		res := v.res
		b.Text(0, 1, fmt.Sprintf("seed %d  floor %d/%d  rects %d",
			res.Seed, v.floor, len(res.Floors)-1, len(res.Rects)), render.RgbLabel)
		render.DrawFloor(b, planX, planY, res.Floors, v.floor, res.Rects)

		y := planY + res.Floors[v.floor].Height() + 1
		for i, line := range res.Report() {
			fg := render.RectColor(res.Rects[i].IsMain)
			if res.Rects[i].Floor != v.floor {
				fg = render.RgbStatusText
			}
			b.Text(planX, y, line, fg)
			y++
		}
	}

	w, h := b.Size()
	b.Text(0, h-1, v.status, render.RgbStatusText)
	if sum := v.gen.Metrics().Summary(); len(sum) < w {
		b.Text(w-len(sum), h-1, sum, render.RgbStatusText)
	}
	b.Flush(v.screen)
	v.screen.Show()
}

func (v *viewer) run() {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	v.draw()
	for ev := range events {
		if !v.handle(ev) {
			return
		}
		v.draw()
	}
}
