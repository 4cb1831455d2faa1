package repo

// ItemFilter narrows a listing by free-text name match, exact category,
// quantity/price ranges and offset/limit pagination. Nil means "no bound".
type ItemFilter struct {
	Name     string
	Category string
	MinQty   *int
	MaxQty   *int
	MinPrice *float64
	MaxPrice *float64
	Offset   *int
	Limit    *int
}
