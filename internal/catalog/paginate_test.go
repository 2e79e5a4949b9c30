package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginateBasics(t *testing.T) {
	// 30 items at 12 per page: pages of 12, 12 and 6.
	p := Paginate(30, 12, "1")
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 0, p.Offset)
	assert.True(t, p.HasNext)
	assert.Equal(t, 2, p.NextPage)
	assert.False(t, p.HasPrev)

	p = Paginate(30, 12, "2")
	assert.Equal(t, 12, p.Offset)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
	assert.Equal(t, 1, p.PrevPage)

	p = Paginate(30, 12, "3")
	assert.Equal(t, 24, p.Offset)
	assert.False(t, p.HasNext)
	assert.Equal(t, 0, p.NextPage)
}

func TestPaginateMalformedFallsBackToFirstPage(t *testing.T) {
	for _, raw := range []string{"", "abc", "1.5", "-3", "0", "  ", "2x"} {
		p := Paginate(30, 12, raw)
		assert.Equal(t, 1, p.Number, "raw=%q", raw)
		assert.Equal(t, 0, p.Offset, "raw=%q", raw)
	}
}

func TestPaginateOverflowClampsToLastPage(t *testing.T) {
	p := Paginate(30, 12, "99")
	assert.Equal(t, 3, p.Number)
	assert.Equal(t, 24, p.Offset)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestPaginateEmptySet(t *testing.T) {
	p := Paginate(0, 12, "5")
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, 0, p.TotalItems)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestPaginateExactMultiple(t *testing.T) {
	// 24 items is exactly two pages, not two and an empty third.
	p := Paginate(24, 12, "2")
	require.Equal(t, 2, p.TotalPages)
	assert.False(t, p.HasNext)
}

func TestPaginatePagesCoverAllItems(t *testing.T) {
	// Walking every page visits each item exactly once.
	const total = 53
	seen := make(map[int]bool)
	p := Paginate(total, 12, "1")
	for page := 1; page <= p.TotalPages; page++ {
		p = Paginate(total, 12, fmt.Sprint(page))
		count := p.PageSize
		if p.Offset+count > total {
			count = total - p.Offset
		}
		for i := 0; i < count; i++ {
			idx := p.Offset + i
			assert.False(t, seen[idx], "item %d served twice", idx)
			seen[idx] = true
		}
	}
	assert.Len(t, seen, total)
}

func TestPaginateStrict(t *testing.T) {
	p, ok := PaginateStrict(30, 12, "2")
	require.True(t, ok)
	assert.Equal(t, 2, p.Number)
	assert.Equal(t, 12, p.Offset)

	_, ok = PaginateStrict(30, 12, "4")
	assert.False(t, ok, "page past the end must not clamp")

	_, ok = PaginateStrict(30, 12, "abc")
	assert.False(t, ok)

	_, ok = PaginateStrict(30, 12, "0")
	assert.False(t, ok)

	// The single page of an empty set still exists.
	p, ok = PaginateStrict(0, 12, "1")
	require.True(t, ok)
	assert.Equal(t, 1, p.Number)

	_, ok = PaginateStrict(0, 12, "2")
	assert.False(t, ok)
}
