package requests

import "math"

type Pagination struct {
	Page     int
	PageSize int
}

// Offset is the number of rows to skip for the current page. It saturates
// instead of overflowing for out of range pages.
func (p *Pagination) Offset() int {
	if p.Page <= 1 || p.PageSize <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.PageSize {
		return math.MaxInt
	}
	return (p.Page - 1) * p.PageSize
}
