// Package pagination holds the page arithmetic shared by every paginated listing.
package pagination

import (
	"math"
	"net/url"
	"strconv"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// MaxPage keeps page*MaxPageSize inside int32.
const MaxPage = math.MaxInt32 / MaxPageSize

// Info describes one page of a listing. StartItem and EndItem are 1-based and inclusive.
type Info struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	HasPrev     bool  `json:"has_prev"`
	HasNext     bool  `json:"has_next"`
	StartItem   int   `json:"start_item"`
	EndItem     int   `json:"end_item"`
	TotalItems  int64 `json:"total_items"`
}

// PrevPage and NextPage are used by the listing templates.
func (i Info) PrevPage() int { return i.CurrentPage - 1 }
func (i Info) NextPage() int { return i.CurrentPage + 1 }

// Normalize applies the page floor and ceiling and the page size default and ceiling.
func Normalize(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// Skip is the number of items before the first item of page.
func Skip(page, pageSize int) int {
	return (page - 1) * pageSize
}

// New computes the pagination info for a normalized page and page size.
func New(page, pageSize int, totalItems int64) Info {
	totalPages := 1
	if totalItems > 0 {
		totalPages = int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	}

	info := Info{
		CurrentPage: page,
		TotalPages:  totalPages,
		HasPrev:     page > 1,
		HasNext:     page < totalPages,
		TotalItems:  totalItems,
	}
	if totalItems > 0 {
		info.StartItem = (page-1)*pageSize + 1
		info.EndItem = int(min(int64(page*pageSize), totalItems))
	}
	return info
}

// Window returns the slice of items that falls on page.
func Window[T any](items []T, page, pageSize int) []T {
	skip := Skip(page, pageSize)
	if skip < 0 || skip >= len(items) {
		return []T{}
	}
	end := min(skip+pageSize, len(items))
	return items[skip:end]
}

// Params are the page and page size requested by a client.
type Params struct {
	Page     int
	PageSize int
}

// ParseQuery reads page and page_size from a query string and normalizes them.
// Missing or malformed values fall back to the defaults.
func ParseQuery(q url.Values) Params {
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil {
		page = 1
	}
	pageSize, err := strconv.Atoi(q.Get("page_size"))
	if err != nil {
		pageSize = DefaultPageSize
	}
	page, pageSize = Normalize(page, pageSize)
	return Params{Page: page, PageSize: pageSize}
}
