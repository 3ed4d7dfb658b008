package ticker

import (
	"testing"

	"noticeboard/internal/model"

	"github.com/go-playground/assert/v2"
)

func scrolling(titles ...string) []model.Notice {
	out := make([]model.Notice, len(titles))
	for i, title := range titles {
		out[i] = model.Notice{Date: "1 Jan", Title: title, Description: "body", Status: model.StatusShow, Type: model.TypeScrolling}
	}
	return out
}

var geometry = Geometry{Viewport: 100, GlyphWidth: 1}

func TestStartEmptyIsHidden(t *testing.T) {
	s := New(nil, geometry).Start()

	assert.Equal(t, PhaseHidden, s.Phase)
	_, ok := s.Notice()
	assert.Equal(t, false, ok)
}

func TestStartShowsFirstNotice(t *testing.T) {
	s := New(scrolling("A", "B"), geometry).Start()

	assert.Equal(t, PhaseShowing, s.Phase)
	assert.Equal(t, 0, s.Current)
	assert.Equal(t, 100.0, s.Position)
	n, ok := s.Notice()
	assert.Equal(t, true, ok)
	assert.Equal(t, "A", n.Title)
}

func TestAdvanceCyclesRoundRobin(t *testing.T) {
	for n := 1; n <= 5; n++ {
		titles := make([]string, n)
		for i := range titles {
			titles[i] = string(rune('A' + i))
		}

		s := New(scrolling(titles...), geometry).Start()
		start := s.Current
		seen := map[int]bool{}
		for i := 0; i < n; i++ {
			seen[s.Current] = true
			s = s.Advance()
		}

		assert.Equal(t, start, s.Current)
		assert.Equal(t, n, len(seen))
	}
}

func TestStepReachesAdvancing(t *testing.T) {
	notices := scrolling("A", "B")
	s := New(notices, geometry).Start()
	width := s.Widths[0]

	assert.Equal(t, float64(len([]rune(Text(notices[0])))), width)

	frames := 0
	for s.Phase == PhaseShowing {
		s = s.Step(10)
		frames++
	}

	assert.Equal(t, PhaseAdvancing, s.Phase)
	assert.Equal(t, true, s.Position+width < 0)
	assert.Equal(t, true, frames > 10)

	s = s.Advance()
	assert.Equal(t, PhaseShowing, s.Phase)
	assert.Equal(t, 1, s.Current)
	assert.Equal(t, 100.0, s.Position)
}

func TestPauseFreezesPosition(t *testing.T) {
	s := New(scrolling("A"), geometry).Start().Step(5)
	before := s.Position

	s = s.Pause()
	for i := 0; i < 100; i++ {
		s = s.Step(5)
	}
	assert.Equal(t, before, s.Position)
	assert.Equal(t, PhaseShowing, s.Phase)

	s = s.Resume().Step(5)
	assert.Equal(t, before-5, s.Position)
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	s := New(scrolling("A", "B"), geometry).Start()

	next := s.Advance()

	assert.Equal(t, 0, s.Current)
	assert.Equal(t, 1, next.Current)
}

func TestStartOnlyLeavesIdle(t *testing.T) {
	s := New(scrolling("A", "B"), geometry).Start()

	assert.Equal(t, s, s.Start())
}

func TestTextFlattensMarkup(t *testing.T) {
	n := model.Notice{Date: "1 Jan", Title: "<strong>Exam</strong>", Description: "<p>Room 4</p><p>Bring ID</p>"}

	assert.Equal(t, "Exam 1 Jan Room 4 Bring ID", Text(n))
}
