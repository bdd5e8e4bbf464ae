// Package tui provides the small set of tcell drawing primitives the demo
// needs: boxes, text, horizontal gauges, and a bullet rail.
package tui

import (
	"github.com/gdamore/tcell/v2"
)

// Rect is a screen-space rectangle
type Rect struct {
	X, Y, W, H int
}

// Box drawing characters: top-left, horizontal, top-right, vertical,
// bottom-left, bottom-right
var boxChars = [6]rune{'┌', '─', '┐', '│', '└', '┘'}

// Box draws a single-line border around the rectangle edge
func Box(s tcell.Screen, r Rect, style tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}

	s.SetContent(r.X, r.Y, boxChars[0], nil, style)
	s.SetContent(r.X+r.W-1, r.Y, boxChars[2], nil, style)
	s.SetContent(r.X, r.Y+r.H-1, boxChars[4], nil, style)
	s.SetContent(r.X+r.W-1, r.Y+r.H-1, boxChars[5], nil, style)

	for x := 1; x < r.W-1; x++ {
		s.SetContent(r.X+x, r.Y, boxChars[1], nil, style)
		s.SetContent(r.X+x, r.Y+r.H-1, boxChars[1], nil, style)
	}
	for y := 1; y < r.H-1; y++ {
		s.SetContent(r.X, r.Y+y, boxChars[3], nil, style)
		s.SetContent(r.X+r.W-1, r.Y+y, boxChars[3], nil, style)
	}
}

// Fill paints the rectangle interior with the given rune
func Fill(s tcell.Screen, r Rect, ch rune, style tcell.Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			s.SetContent(r.X+x, r.Y+y, ch, nil, style)
		}
	}
}

// Label draws text starting at (x, y)
func Label(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, style)
	}
}

// Gauge draws a horizontal progress bar filled to percent of width
func Gauge(s tcell.Screen, x, y, width int, percent float64, style tcell.Style) {
	if width < 1 {
		return
	}
	filled := GaugeFill(width, percent)
	for i := 0; i < width; i++ {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		s.SetContent(x+i, y, ch, nil, style)
	}
}

// GaugeFill returns how many of width cells a percentage fills
func GaugeFill(width int, percent float64) int {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return int(percent * float64(width) / 100)
}

// Bullets draws the bullet rail with the active slide highlighted
func Bullets(s tcell.Screen, x, y, count, active int, style, activeStyle tcell.Style) {
	for i := 0; i < count; i++ {
		ch := '○'
		st := style
		if i == active {
			ch = '●'
			st = activeStyle
		}
		s.SetContent(x+i*2, y, ch, nil, st)
	}
}
