// Package device tracks purchased units through their lifecycle:
// bought → wallet assigned → resolved with a game amount.
package device

import "time"

// Device statuses.
const (
	StatusBought = "bought"
	StatusOK     = "ok"
)

// Device is one purchased unit. Codes are operator shorthand, not unique
// across time: every lookup by code takes the most recently purchased row.
type Device struct {
	ID           int64      `db:"id"`
	Code         string     `db:"code"`
	Price        int64      `db:"price"`
	PurchaseDate time.Time  `db:"purchase_date"`
	Status       string     `db:"status"`
	Wallet       *string    `db:"wallet"`
	Channel      *string    `db:"channel"`
	GameAmount   *int64     `db:"game_amount"`
	Profit       *int64     `db:"profit"`
	ResolvedAt   *time.Time `db:"resolved_at"`
	ChatID       int64      `db:"chat_id"`
	CreatedAt    time.Time  `db:"created_at"`
}

// ProfitRecord is the append-only audit snapshot written at resolution.
type ProfitRecord struct {
	ID         int64     `db:"id"`
	DeviceID   int64     `db:"device_id"`
	Code       string    `db:"code"`
	Channel    string    `db:"channel"`
	Price      int64     `db:"price"`
	GameAmount int64     `db:"game_amount"`
	Profit     int64     `db:"profit"`
	CreatedAt  time.Time `db:"created_at"`
}

// profitOf is the resolution arithmetic: reported game amount minus the
// recorded purchase price. Negative is a loss, not an error.
func profitOf(gameAmount, price int64) int64 {
	return gameAmount - price
}
