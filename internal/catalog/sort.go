package catalog

// SortKey is the fixed enumeration of listing orderings. Anything outside
// the enumeration falls back to newest-first at the parse boundary, so the
// query layer never sees an unknown key.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortNameAsc   SortKey = "name_asc"
	SortNameDesc  SortKey = "name_desc"
)

// ParseSortKey maps a raw query parameter to a SortKey, defaulting unknown
// or absent values to newest-first.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc, SortNewest:
		return SortKey(raw)
	default:
		return SortNewest
	}
}

// OrderBy returns the ORDER BY clause for the key. Every ordering carries
// id DESC as a tiebreaker so pagination is stable across requests.
func (k SortKey) OrderBy() string {
	switch k {
	case SortPriceAsc:
		return "p.price ASC, p.id DESC"
	case SortPriceDesc:
		return "p.price DESC, p.id DESC"
	case SortNameAsc:
		return "p.name ASC, p.id DESC"
	case SortNameDesc:
		return "p.name DESC, p.id DESC"
	default:
		return "p.created_at DESC, p.id DESC"
	}
}
