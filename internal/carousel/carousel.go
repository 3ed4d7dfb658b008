package carousel

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"noticeboard/internal/frame"
)

type Transition struct {
	From   int
	To     int
	Effect Effect
}

// Carousel tracks the visible slide. Automatic moves pick a random slide
// other than the current one; effects come from a ShuffleBag.
type Carousel struct {
	mu      sync.Mutex
	n       int
	current int
	effects *ShuffleBag
	rng     *rand.Rand
}

func New(n int, rng *rand.Rand) *Carousel {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Carousel{
		n:       n,
		effects: NewShuffleBag(len(Effects), rng),
		rng:     rng,
	}
}

func (c *Carousel) Len() int {
	return c.n
}

func (c *Carousel) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Next moves to a random other slide. It reports false when there is at
// most one slide.
func (c *Carousel) Next() (Transition, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.n <= 1 {
		return Transition{}, false
	}
	to := c.rng.IntN(c.n - 1)
	if to >= c.current {
		to++
	}
	return c.moveLocked(to), true
}

// GoTo jumps to slide i. Jumping to the current slide or out of range does
// nothing.
func (c *Carousel) GoTo(i int) (Transition, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i < 0 || i >= c.n || i == c.current {
		return Transition{}, false
	}
	return c.moveLocked(i), true
}

func (c *Carousel) moveLocked(to int) Transition {
	t := Transition{
		From:   c.current,
		To:     to,
		Effect: Effects[c.effects.Next()],
	}
	c.current = to
	return t
}

// Rotator advances a Carousel every interval and sends each Transition on
// Transitions. A manual GoTo restarts the interval. GoTo may be called from
// other goroutines while the rotation runs.
type Rotator struct {
	carousel    *Carousel
	interval    time.Duration
	slot        frame.Slot
	transitions chan Transition

	mu  sync.Mutex
	ctx context.Context
}

func NewRotator(c *Carousel, interval time.Duration) *Rotator {
	return &Rotator{
		carousel:    c,
		interval:    interval,
		transitions: make(chan Transition, 1),
	}
}

func (r *Rotator) Transitions() <-chan Transition {
	return r.transitions
}

func (r *Rotator) Len() int {
	return r.carousel.Len()
}

// Start begins rotating. It reports false when there is nothing to rotate.
func (r *Rotator) Start(ctx context.Context) bool {
	if r.carousel.Len() <= 1 {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.ctx = ctx
	r.restartLocked()
	return true
}

// GoTo shows slide i now and restarts the rotation interval. It reports
// false before Start, after the rotation's context ends, or when i is out
// of range or already showing.
func (r *Rotator) GoTo(i int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ctx == nil || r.ctx.Err() != nil {
		return false
	}
	r.slot.Cancel()

	t, ok := r.carousel.GoTo(i)
	if ok {
		select {
		case r.transitions <- t:
		case <-r.ctx.Done():
			return false
		}
	}

	r.restartLocked()
	return ok
}

func (r *Rotator) Stop() {
	r.slot.Cancel()
}

func (r *Rotator) restartLocked() {
	ctx := r.ctx
	r.slot.Restart(func() *frame.Task {
		return frame.NewScheduler(r.interval).Start(ctx, func(ctx context.Context, _ time.Time) bool {
			t, ok := r.carousel.Next()
			if !ok {
				return false
			}
			select {
			case r.transitions <- t:
				return true
			case <-ctx.Done():
				return false
			}
		})
	})
}
