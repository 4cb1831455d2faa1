package client

import "time"

// PurchaseOrder and DamagedReturn exist only as in-memory sample data for the
// purchase-orders and damaged-returns screens; the backend does not persist
// them.
type PurchaseOrder struct {
	ID        string    `json:"id"`
	Supplier  string    `json:"supplier"`
	ItemName  string    `json:"itemName"`
	Quantity  int       `json:"quantity"`
	Status    string    `json:"status"`
	OrderedAt time.Time `json:"orderedAt"`
}

type DamagedReturn struct {
	ID         string    `json:"id"`
	ItemName   string    `json:"itemName"`
	Quantity   int       `json:"quantity"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
	ReportedAt time.Time `json:"reportedAt"`
}

// SamplePurchaseOrders returns the seed data shown on the purchase-orders
// screen.
func SamplePurchaseOrders(now time.Time) []PurchaseOrder {
	return []PurchaseOrder{
		{ID: "PO-1001", Supplier: "Acme Wholesale", ItemName: "Paracetamol 500mg", Quantity: 200, Status: "pending", OrderedAt: now.AddDate(0, 0, -2)},
		{ID: "PO-1002", Supplier: "Northline Supplies", ItemName: "Surgical Gloves", Quantity: 500, Status: "received", OrderedAt: now.AddDate(0, 0, -9)},
		{ID: "PO-1003", Supplier: "Acme Wholesale", ItemName: "Saline 0.9%", Quantity: 120, Status: "pending", OrderedAt: now.AddDate(0, 0, -1)},
	}
}

// SampleDamagedReturns returns the seed data shown on the damaged-returns
// screen.
func SampleDamagedReturns(now time.Time) []DamagedReturn {
	return []DamagedReturn{
		{ID: "DR-2001", ItemName: "Surgical Gloves", Quantity: 40, Reason: "torn packaging", Status: "open", ReportedAt: now.AddDate(0, 0, -3)},
		{ID: "DR-2002", ItemName: "Saline 0.9%", Quantity: 6, Reason: "leaking bags", Status: "resolved", ReportedAt: now.AddDate(0, 0, -14)},
	}
}

// FilterOrdersByStatus narrows purchase orders to one status.
func FilterOrdersByStatus(orders []PurchaseOrder, status string) []PurchaseOrder {
	matched := []PurchaseOrder{}
	for _, o := range orders {
		if o.Status == status {
			matched = append(matched, o)
		}
	}
	return matched
}

// FilterReturnsByStatus narrows damaged returns to one status.
func FilterReturnsByStatus(returns []DamagedReturn, status string) []DamagedReturn {
	matched := []DamagedReturn{}
	for _, r := range returns {
		if r.Status == status {
			matched = append(matched, r)
		}
	}
	return matched
}
