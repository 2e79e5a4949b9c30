package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func whereFor(f Filter) (string, []interface{}) {
	var b strings.Builder
	args := buildProductWhere(&b, nil, f)
	return b.String(), args
}

func TestBuildProductWhereBasePredicate(t *testing.T) {
	where, args := whereFor(Filter{})
	assert.Equal(t, " WHERE p.is_active = 1", where)
	assert.Empty(t, args)
}

func TestBuildProductWhereCategory(t *testing.T) {
	where, args := whereFor(Filter{CategoryID: 7})
	assert.Contains(t, where, "p.category_id = ?")
	assert.Equal(t, []interface{}{int64(7)}, args)
}

func TestBuildProductWhereSearch(t *testing.T) {
	where, args := whereFor(Filter{Search: "mug"})
	assert.Contains(t, where, "p.name LIKE ?")
	assert.NotContains(t, where, "c.name LIKE ?")
	assert.Len(t, args, 3)
	assert.Equal(t, "%mug%", args[0])

	// The full listing path also matches the category name.
	where, args = whereFor(Filter{Search: "mug", SearchCategoryName: true})
	assert.Contains(t, where, "c.name LIKE ?")
	assert.Len(t, args, 4)
}

func TestBuildProductWhereFeatured(t *testing.T) {
	where, _ := whereFor(Filter{FeaturedOnly: true})
	assert.Contains(t, where, "p.is_featured = 1")
}

func TestBuildProductWhereCombined(t *testing.T) {
	where, args := whereFor(Filter{CategoryID: 2, Search: "pan", SearchCategoryName: true})
	assert.True(t, strings.HasPrefix(where, " WHERE p.is_active = 1"))
	assert.Len(t, args, 5)
}
