package domain

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page is a zero-based offset/count window over an ordered collection.
type Page struct {
	Offset int64
	Count  int64
}

// PageFromQuery converts 1-based page/limit values into a Page. Out-of-range
// values fall back to the first page and the default size.
func PageFromQuery(page, limit int) Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return Page{
		Offset: int64(page-1) * int64(limit),
		Count:  int64(limit),
	}
}

// Stop is the inclusive end index as Redis range commands expect it.
func (p Page) Stop() int64 {
	return p.Offset + p.Count - 1
}

func (p Page) Empty() bool {
	return p.Count <= 0 || p.Offset < 0
}
