package gallery

const DefaultPerLoad = 5

// Pager reveals images PerLoad at a time and hides them again down to the
// first batch.
type Pager struct {
	PerLoad int
}

func NewPager(perLoad int) Pager {
	if perLoad <= 0 {
		perLoad = DefaultPerLoad
	}
	return Pager{PerLoad: perLoad}
}

// Initial is the number of images visible on first load.
func (p Pager) Initial(total int) int {
	return min(p.PerLoad, total)
}

func (p Pager) LoadMore(visible, total int) int {
	return min(visible+p.PerLoad, total)
}

func (p Pager) ShowLess(visible int) int {
	remove := min(p.PerLoad, visible-p.PerLoad)
	if remove <= 0 {
		return visible
	}
	return visible - remove
}

func (p Pager) CanLoadMore(visible, total int) bool {
	return visible < total
}

func (p Pager) CanShowLess(visible int) bool {
	return visible > p.PerLoad
}

// Clamp bounds a visible count requested by a client.
func (p Pager) Clamp(visible, total int) int {
	if visible < p.PerLoad {
		visible = p.PerLoad
	}
	return min(visible, total)
}
