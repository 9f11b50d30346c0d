// Package lot tracks batch purchases of devices, resolved in aggregate.
package lot

import "time"

// Lot is one batch purchase. "Latest lot" lookups resolve by most recent
// purchase date.
type Lot struct {
	ID           int64     `db:"id"`
	Code         string    `db:"code"` // generated identifier
	Qty          int       `db:"qty"`
	TotalCost    int64     `db:"total_cost"`
	PurchaseDate time.Time `db:"purchase_date"`
	Wallet       *string   `db:"wallet"`
	ChatID       int64     `db:"chat_id"`
	CreatedAt    time.Time `db:"created_at"`
}

// Result is one append-only lot outcome. Reward may be absent — a result
// recorded before the reward is known, a real workflow state. Results are
// independent rows: a later result never patches an earlier one.
type Result struct {
	ID        int64     `db:"id"`
	LotID     int64     `db:"lot_id"`
	LotCode   string    `db:"lot_code"`
	Qty       int       `db:"qty"`
	TotalCost int64     `db:"total_cost"`
	OkCount   int       `db:"ok_count"`
	TachCount int       `db:"tach_count"`
	Channel   string    `db:"channel"`
	Reward    *int64    `db:"reward"`
	Profit    *int64    `db:"profit"`
	CreatedAt time.Time `db:"created_at"`
}

// profitOf computes total reward minus total cost, or nil when the reward
// is not yet known. The profit field is never back-filled later.
func profitOf(reward *int64, totalCost int64) *int64 {
	if reward == nil {
		return nil
	}
	p := *reward - totalCost
	return &p
}
