package pagination

// DefaultItemsPerPage is used when a paginator is created with a non-positive
// page size.
const DefaultItemsPerPage = 10

// Paginator slices an ordered sequence into fixed-size pages.
// The invariant 1 <= CurrentPage <= TotalPages is re-asserted on every
// recomputation: whenever the item count or page size changes so that the
// current page falls past the end, it is reset to 1.
type Paginator struct {
	CurrentPage  int `json:"currentPage"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// New creates a paginator on page 1 with the given page size.
func New(itemsPerPage int) Paginator {
	if itemsPerPage < 1 {
		itemsPerPage = DefaultItemsPerPage
	}
	return Paginator{CurrentPage: 1, ItemsPerPage: itemsPerPage}
}

// TotalPages returns the page count for totalItems, never less than 1.
func (p Paginator) TotalPages(totalItems int) int {
	if totalItems <= 0 {
		return 1
	}
	return (totalItems + p.ItemsPerPage - 1) / p.ItemsPerPage
}

// Clamp re-asserts the page invariant against totalItems: a page past the
// end resets to 1, a page below 1 clamps to 1.
func (p Paginator) Clamp(totalItems int) Paginator {
	if p.ItemsPerPage < 1 {
		p.ItemsPerPage = DefaultItemsPerPage
	}
	if p.CurrentPage < 1 {
		p.CurrentPage = 1
	}
	if p.CurrentPage > p.TotalPages(totalItems) {
		p.CurrentPage = 1
	}
	return p
}

// Bounds returns the slice bounds for the current page. The end index is
// exclusive and may exceed totalItems; callers slicing directly must clamp,
// or use Slice which does.
func (p Paginator) Bounds() (start, end int) {
	start = (p.CurrentPage - 1) * p.ItemsPerPage
	end = start + p.ItemsPerPage
	return start, end
}

// Next advances one page, clamped at the last page.
func (p Paginator) Next(totalItems int) Paginator {
	if p.CurrentPage < p.TotalPages(totalItems) {
		p.CurrentPage++
	}
	return p
}

// Previous moves back one page, clamped at page 1.
func (p Paginator) Previous() Paginator {
	if p.CurrentPage > 1 {
		p.CurrentPage--
	}
	return p
}

// GoTo jumps to page n, clamped to [1, TotalPages].
func (p Paginator) GoTo(n, totalItems int) Paginator {
	if n < 1 {
		n = 1
	}
	if max := p.TotalPages(totalItems); n > max {
		n = max
	}
	p.CurrentPage = n
	return p
}

// SetItemsPerPage changes the page size and resets to page 1, since the old
// page index is meaningless under a new page size.
func (p Paginator) SetItemsPerPage(n int) Paginator {
	if n < 1 {
		n = DefaultItemsPerPage
	}
	p.ItemsPerPage = n
	p.CurrentPage = 1
	return p
}

// Slice returns the current page of items, with the end bound clamped to the
// slice length.
func Slice[T any](items []T, p Paginator) []T {
	start, end := p.Bounds()
	if start >= len(items) {
		return []T{}
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
