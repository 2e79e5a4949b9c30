package catalog

import (
	"strconv"
	"strings"
)

// PageSize is the number of products per listing page.
const PageSize = 12

// Page describes one slice of an ordered result set plus the navigation
// metadata the templates and the load-more endpoint need.
type Page struct {
	Number     int  `json:"number"`
	PageSize   int  `json:"pageSize"`
	TotalItems int  `json:"totalItems"`
	TotalPages int  `json:"totalPages"`
	Offset     int  `json:"-"`
	HasNext    bool `json:"hasNext"`
	NextPage   int  `json:"nextPage,omitempty"` // 0 when there is no next page
	HasPrev    bool `json:"hasPrev"`
	PrevPage   int  `json:"prevPage,omitempty"`
}

// Paginate turns a raw page parameter into a clamped Page over total items.
// A value that does not parse as an integer, or is below 1, becomes page 1;
// a value past the end becomes the last page. Zero items still yield a
// single empty page, so callers never see an error from here.
func Paginate(total, pageSize int, rawPage string) Page {
	if pageSize < 1 {
		pageSize = PageSize
	}

	number, err := strconv.Atoi(strings.TrimSpace(rawPage))
	if err != nil || number < 1 {
		number = 1
	}

	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if number > totalPages {
		number = totalPages
	}

	p := Page{
		Number:     number,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
		Offset:     (number - 1) * pageSize,
	}
	if number < totalPages {
		p.HasNext = true
		p.NextPage = number + 1
	}
	if number > 1 {
		p.HasPrev = true
		p.PrevPage = number - 1
	}
	return p
}

// PaginateStrict is the incremental-load variant: instead of clamping it
// reports whether the requested page exists at all. A malformed or
// out-of-range page returns ok = false, which the caller answers with an
// empty fragment rather than repeating the last page forever.
func PaginateStrict(total, pageSize int, rawPage string) (Page, bool) {
	if pageSize < 1 {
		pageSize = PageSize
	}

	number, err := strconv.Atoi(strings.TrimSpace(rawPage))
	if err != nil || number < 1 {
		return Page{}, false
	}

	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if number > totalPages {
		return Page{}, false
	}

	return Paginate(total, pageSize, rawPage), true
}
