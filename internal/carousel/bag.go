package carousel

import (
	"math/rand/v2"
	"sync"
)

// ShuffleBag hands out every index in 0..n-1 once per cycle in random
// order, then reshuffles. With more than one index the first draw of a new
// cycle never repeats the last draw of the previous one.
type ShuffleBag struct {
	n    int
	bag  []int
	last int
	rng  *rand.Rand
}

func NewShuffleBag(n int, rng *rand.Rand) *ShuffleBag {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &ShuffleBag{n: n, last: -1, rng: rng}
}

func (b *ShuffleBag) Len() int {
	return b.n
}

// Next returns the next index, or -1 for an empty bag.
func (b *ShuffleBag) Next() int {
	if b.n == 0 {
		return -1
	}
	if len(b.bag) == 0 {
		b.refill()
	}

	i := b.bag[len(b.bag)-1]
	b.bag = b.bag[:len(b.bag)-1]
	b.last = i
	return i
}

func (b *ShuffleBag) refill() {
	b.bag = b.bag[:0]
	for i := 0; i < b.n; i++ {
		b.bag = append(b.bag, i)
	}
	b.rng.Shuffle(len(b.bag), func(i, j int) {
		b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
	})

	top := len(b.bag) - 1
	if b.n > 1 && b.bag[top] == b.last {
		b.bag[0], b.bag[top] = b.bag[top], b.bag[0]
	}
}

// Picker chooses options at random without picking the same one twice in
// a row. It is safe for concurrent use.
type Picker struct {
	mu      sync.Mutex
	options []string
	last    int
	rng     *rand.Rand
}

func NewPicker(options []string, rng *rand.Rand) *Picker {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Picker{options: options, last: -1, rng: rng}
}

// Pick returns "" when there are no options.
func (p *Picker) Pick() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch len(p.options) {
	case 0:
		return ""
	case 1:
		p.last = 0
		return p.options[0]
	}

	var i int
	if p.last < 0 {
		i = p.rng.IntN(len(p.options))
	} else if i = p.rng.IntN(len(p.options) - 1); i >= p.last {
		i++
	}
	p.last = i
	return p.options[i]
}
