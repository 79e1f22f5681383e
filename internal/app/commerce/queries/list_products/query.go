package list_products

// SortField selects the listing order.
type SortField string

const (
	SortNone  SortField = ""
	SortName  SortField = "NAME"
	SortPrice SortField = "PRICE"
)

type SortOrder string

const (
	Asc  SortOrder = "ASC"
	Desc SortOrder = "DESC"
)

const (
	DefaultLimit = 20
	MaxLimit     = 500
)

// Query is a product listing request. Nil Limit/Offset take the defaults.
type Query struct {
	Limit       *int
	Offset      *int
	Search      string
	CategoryKey string
	SortBy      SortField
	SortOrder   SortOrder
}
