package pagination

import "math"

const (
	// DefaultPageSize is used when the caller does not ask for a page size.
	DefaultPageSize = 50
	// MaxPageSize caps the page size a caller may ask for.
	MaxPageSize = 100
)

// Page is a normalised page request.
type Page struct {
	Number int
	Size   int
}

// NewPage clamps a caller's page and page size into valid values.
// Pages are 1-based; a size of zero or less selects DefaultPageSize. The page
// number is capped so its offset always fits in an int.
func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	if maxNumber := math.MaxInt / size; number > maxNumber {
		number = maxNumber
	}
	return Page{Number: number, Size: size}
}

// Offset returns the number of rows before this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// TotalPages returns how many pages of this size hold total rows.
func (p Page) TotalPages(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + p.Size - 1) / p.Size
}
