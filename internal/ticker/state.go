// Package ticker models the single line scrolling notice bar. State holds
// every transition as a pure function; Player drives it once per frame.
package ticker

import (
	"unicode/utf8"

	"noticeboard/internal/model"
	"noticeboard/internal/render"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseShowing
	PhaseAdvancing
	PhaseHidden
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseShowing:
		return "showing"
	case PhaseAdvancing:
		return "advancing"
	case PhaseHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Geometry sizes the traversal of one item across the bar, in pixels.
type Geometry struct {
	Viewport   float64
	GlyphWidth float64
}

type State struct {
	Notices  []model.Notice
	Widths   []float64
	Viewport float64
	Current  int
	Position float64
	Paused   bool
	Phase    Phase
}

func New(notices []model.Notice, g Geometry) State {
	widths := make([]float64, len(notices))
	for i, n := range notices {
		widths[i] = g.GlyphWidth * float64(utf8.RuneCountInString(Text(n)))
	}
	return State{
		Notices:  notices,
		Widths:   widths,
		Viewport: g.Viewport,
		Current:  -1,
		Phase:    PhaseIdle,
	}
}

// Text is the visible single line text of a ticker item.
func Text(n model.Notice) string {
	return render.PlainText(render.InlineHTML(n.Title + " " + n.Date + " " + n.Description))
}

// Start leaves Idle. With nothing to show the bar goes straight to Hidden.
func (s State) Start() State {
	if s.Phase != PhaseIdle {
		return s
	}
	return s.Advance()
}

// Advance moves to the next notice in round-robin order and places it at
// the right edge of the bar.
func (s State) Advance() State {
	if len(s.Notices) == 0 {
		s.Phase = PhaseHidden
		s.Current = -1
		return s
	}
	s.Current = (s.Current + 1) % len(s.Notices)
	s.Position = s.Viewport
	s.Phase = PhaseShowing
	return s
}

// Step moves the current notice left by speed. Once it has fully left the
// bar the state becomes Advancing. A paused state does not move.
func (s State) Step(speed float64) State {
	if s.Phase != PhaseShowing || s.Paused {
		return s
	}
	s.Position -= speed
	if s.Position+s.Widths[s.Current] < 0 {
		s.Phase = PhaseAdvancing
	}
	return s
}

func (s State) Pause() State {
	s.Paused = true
	return s
}

func (s State) Resume() State {
	s.Paused = false
	return s
}

// Notice returns the notice on display, if any.
func (s State) Notice() (model.Notice, bool) {
	if s.Phase != PhaseShowing && s.Phase != PhaseAdvancing {
		return model.Notice{}, false
	}
	return s.Notices[s.Current], true
}
