package domain

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page is one slice of a paginated listing.
type Page[T any] struct {
	Items []T
	Total int
	Page  int
	Limit int
}

func (p Page[T]) TotalPages() int {
	if p.Limit <= 0 {
		return 0
	}
	return (p.Total + p.Limit - 1) / p.Limit
}

func (p Page[T]) HasNext() bool { return p.Page < p.TotalPages() }
func (p Page[T]) HasPrev() bool { return p.Page > 1 }

// NormalizePaging clamps page and limit into their allowed ranges.
func NormalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// Offset returns the number of rows to skip for page.
func Offset(page, limit int) int {
	return (page - 1) * limit
}
