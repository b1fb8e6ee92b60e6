package main

import "fmt"

const defaultPageSize = 5

// Pager tracks page size and current page number against the length of
// the current view. Navigation clamps instead of wrapping or failing;
// explicit jumps and size changes are range-checked.
type Pager struct {
	size  int
	page  int
	total int
}

func newPager(total int) Pager {
	return Pager{size: defaultPageSize, page: 1, total: total}
}

func (p *Pager) Size() int { return p.size }
func (p *Pager) Page() int { return p.page }

// TotalPages is ceil(total/size), never below 1 even for zero rows.
func (p *Pager) TotalPages() int {
	if p.total <= 0 {
		return 1
	}
	return (p.total-1)/p.size + 1
}

// Bounds returns the [start, end) record range of the current page.
func (p *Pager) Bounds() (int, int) {
	start := (p.page - 1) * p.size
	if start > p.total {
		start = p.total
	}
	end := start + p.size
	if end > p.total {
		end = p.total
	}
	return start, end
}

// Next advances one page, clamping at the last page.
func (p *Pager) Next() {
	if p.page < p.TotalPages() {
		p.page++
	}
}

// Prev goes back one page, clamping at page 1.
func (p *Pager) Prev() {
	if p.page > 1 {
		p.page--
	}
}

// Goto jumps to page n, failing outside [1, totalPages].
func (p *Pager) Goto(n int) error {
	if n < 1 || n > p.TotalPages() {
		return fmt.Errorf("%w: %d (valid: 1-%d)", ErrPageOutOfRange, n, p.TotalPages())
	}
	p.page = n
	return nil
}

// SetSize changes the page size, failing for sizes below 1. The page
// number is clamped so it stays within the new page range.
func (p *Pager) SetSize(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPageSize, n)
	}
	p.size = n
	p.clamp()
	return nil
}

// SetTotal is called whenever the current view's length changes, keeping
// the page number inside [1, totalPages] for the new total.
func (p *Pager) SetTotal(total int) {
	p.total = total
	p.clamp()
}

func (p *Pager) reset(total int) {
	p.size = defaultPageSize
	p.page = 1
	p.total = total
}

func (p *Pager) clamp() {
	if max := p.TotalPages(); p.page > max {
		p.page = max
	}
	if p.page < 1 {
		p.page = 1
	}
}
