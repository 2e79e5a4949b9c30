package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortPriceAsc, ParseSortKey("price_asc"))
	assert.Equal(t, SortNameDesc, ParseSortKey("name_desc"))
	assert.Equal(t, SortNewest, ParseSortKey("newest"))

	// Unknown and empty values fall back instead of erroring.
	assert.Equal(t, SortNewest, ParseSortKey(""))
	assert.Equal(t, SortNewest, ParseSortKey("price"))
	assert.Equal(t, SortNewest, ParseSortKey("PRICE_ASC"))
}

func TestOrderByCarriesTiebreaker(t *testing.T) {
	for _, k := range []SortKey{SortNewest, SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc} {
		assert.Contains(t, k.OrderBy(), "p.id DESC", "key %s", k)
	}
	assert.Equal(t, "p.price ASC, p.id DESC", SortPriceAsc.OrderBy())
	assert.Equal(t, "p.created_at DESC, p.id DESC", SortNewest.OrderBy())
}
