// Package report computes dashboard figures from the current item list.
// Everything here is a pure function of the items and a reference time;
// nothing is cached or persisted.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stocktrack/inventory-api/internal/models"
)

// ExpiryHorizonDays is the window within which an item counts as expiring soon.
const ExpiryHorizonDays = 90

// Summary is the dashboard payload.
type Summary struct {
	TotalItems        int             `json:"total_items"`
	TotalStockUnits   int             `json:"total_stock_units"`
	TotalStockValue   decimal.Decimal `json:"total_stock_value"`
	Categories        map[string]int  `json:"categories"`
	LowStockCount     int             `json:"low_stock_count"`
	LowStockIDs       []string        `json:"low_stock_ids"`
	ExpiringSoonCount int             `json:"expiring_soon_count"`
	ExpiringSoonIDs   []string        `json:"expiring_soon_ids"`
}

// LowStock reports whether the item is at or below its reorder threshold.
func LowStock(item models.Item) bool {
	return item.Quantity <= item.ReorderLevel
}

// DaysUntil returns the number of whole calendar days from now until the given
// YYYY-MM-DD date. Today is 0, yesterday is -1.
func DaysUntil(date string, now time.Time) (int, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, err
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	target := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return int(target.Sub(today).Hours() / 24), nil
}

// ExpiringSoon reports whether the item expires within the horizon. Items that
// are already expired (today or earlier) are excluded, as are items whose
// expiration date does not parse.
func ExpiringSoon(item models.Item, now time.Time) bool {
	days, err := DaysUntil(item.ExpirationDate, now)
	if err != nil {
		return false
	}
	return days > 0 && days <= ExpiryHorizonDays
}

// Summarize aggregates the item list into the dashboard summary.
func Summarize(items []models.Item, now time.Time) Summary {
	s := Summary{
		TotalStockValue: decimal.Zero,
		Categories:      map[string]int{},
		LowStockIDs:     []string{},
		ExpiringSoonIDs: []string{},
	}

	s.TotalItems = len(items)
	for _, item := range items {
		s.TotalStockUnits += item.Quantity
		s.TotalStockValue = s.TotalStockValue.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		s.Categories[item.Category]++
		if LowStock(item) {
			s.LowStockCount++
			s.LowStockIDs = append(s.LowStockIDs, item.ID)
		}
		if ExpiringSoon(item, now) {
			s.ExpiringSoonCount++
			s.ExpiringSoonIDs = append(s.ExpiringSoonIDs, item.ID)
		}
	}
	return s
}
