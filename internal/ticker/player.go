package ticker

import (
	"context"
	"sync"
	"time"

	"noticeboard/internal/frame"
	"noticeboard/internal/model"
)

type Event struct {
	Index  int
	Notice model.Notice
}

// Player owns one ticker State and steps it on a frame loop. Each time a
// notice starts showing an Event is sent on Events.
type Player struct {
	mu        sync.Mutex
	state     State
	speed     float64
	scheduler *frame.Scheduler
	slot      frame.Slot
	events    chan Event
}

func NewPlayer(notices []model.Notice, g Geometry, speed float64, scheduler *frame.Scheduler) *Player {
	return &Player{
		state:     New(notices, g),
		speed:     speed,
		scheduler: scheduler,
		events:    make(chan Event, 1),
	}
}

func (p *Player) Events() <-chan Event {
	return p.events
}

// Start shows the first notice and begins scrolling. It returns false when
// there is nothing to show; the ticker is then hidden and no loop runs.
// Starting again restarts from the next notice after cancelling the
// previous loop.
func (p *Player) Start(ctx context.Context) bool {
	p.slot.Cancel()

	p.mu.Lock()
	if p.state.Phase == PhaseIdle {
		p.state = p.state.Start()
	} else {
		p.state = p.state.Advance()
	}
	state := p.state
	p.mu.Unlock()

	if state.Phase == PhaseHidden {
		return false
	}

	first := &Event{Index: state.Current, Notice: state.Notices[state.Current]}
	p.slot.Restart(func() *frame.Task {
		return p.scheduler.Start(ctx, func(ctx context.Context, _ time.Time) bool {
			if first != nil {
				ev := *first
				first = nil
				return p.send(ctx, ev)
			}
			return p.frame(ctx)
		})
	})
	return true
}

func (p *Player) Stop() {
	p.slot.Cancel()
}

func (p *Player) Pause() {
	p.mu.Lock()
	p.state = p.state.Pause()
	p.mu.Unlock()
}

func (p *Player) Resume() {
	p.mu.Lock()
	p.state = p.state.Resume()
	p.mu.Unlock()
}

func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Player) frame(ctx context.Context) bool {
	p.mu.Lock()
	p.state = p.state.Step(p.speed)
	advanced := p.state.Phase == PhaseAdvancing
	if advanced {
		p.state = p.state.Advance()
	}
	state := p.state
	p.mu.Unlock()

	if !advanced {
		return true
	}
	return p.send(ctx, Event{Index: state.Current, Notice: state.Notices[state.Current]})
}

func (p *Player) send(ctx context.Context, ev Event) bool {
	select {
	case p.events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
