package models

import "github.com/shopspring/decimal"

func init() {
	// price goes over the wire as a JSON number, not a quoted string
	decimal.MarshalJSONWithoutQuotes = true
}

// Item represents a single inventory line item. The id is supplied by the
// caller at creation time and is immutable afterwards. Field names on the wire
// are camelCase for compatibility with the browser frontend.
type Item struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Quantity       int             `json:"quantity"`
	Unit           string          `json:"unit"`
	ExpirationDate string          `json:"expirationDate"`
	Supplier       string          `json:"supplier"`
	Price          decimal.Decimal `json:"price"`
	SKU            string          `json:"sku"`
	ReorderLevel   int             `json:"reorderLevel"`
	BatchNumber    string          `json:"batchNumber"`
}

// ItemPatch is a partial update: only non-nil fields are applied. The ID field
// is accepted so that clients may echo the record id in the payload, but it is
// never written back to the row.
type ItemPatch struct {
	ID             *string          `json:"id"`
	Name           *string          `json:"name"`
	Category       *string          `json:"category"`
	Quantity       *int             `json:"quantity"`
	Unit           *string          `json:"unit"`
	ExpirationDate *string          `json:"expirationDate"`
	Supplier       *string          `json:"supplier"`
	Price          *decimal.Decimal `json:"price"`
	SKU            *string          `json:"sku"`
	ReorderLevel   *int             `json:"reorderLevel"`
	BatchNumber    *string          `json:"batchNumber"`
}

// Apply copies the non-nil patch fields onto the item, leaving the id alone.
func (p ItemPatch) Apply(item Item) Item {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	if p.Unit != nil {
		item.Unit = *p.Unit
	}
	if p.ExpirationDate != nil {
		item.ExpirationDate = *p.ExpirationDate
	}
	if p.Supplier != nil {
		item.Supplier = *p.Supplier
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.SKU != nil {
		item.SKU = *p.SKU
	}
	if p.ReorderLevel != nil {
		item.ReorderLevel = *p.ReorderLevel
	}
	if p.BatchNumber != nil {
		item.BatchNumber = *p.BatchNumber
	}
	return item
}

// Empty reports whether the patch changes nothing.
func (p ItemPatch) Empty() bool {
	return p.Name == nil && p.Category == nil && p.Quantity == nil &&
		p.Unit == nil && p.ExpirationDate == nil && p.Supplier == nil &&
		p.Price == nil && p.SKU == nil && p.ReorderLevel == nil &&
		p.BatchNumber == nil
}
