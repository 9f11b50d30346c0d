// Package audit keeps the append-only operation log.
// Every financial operation writes one entry with its inputs serialized
// as JSON. There is no replay: the log exists for auditability, and
// /undo only shows the tail of it.
package audit

import (
	"encoding/json"
	"time"
)

// Action tags, one per domain operation.
const (
	ActionRevenuePost    = "revenue_post"
	ActionInviteCreate   = "invite_create"
	ActionInviteCheckin  = "invite_checkin"
	ActionWalletAdjust   = "wallet_adjust"
	ActionWalletAdminSet = "wallet_admin_set"
	ActionDeviceBuy      = "device_buy"
	ActionDeviceWallet   = "device_wallet"
	ActionDeviceResolve  = "device_resolve"
	ActionLotBuy         = "lot_buy"
	ActionLotWallet      = "lot_wallet"
	ActionLotResult      = "lot_result"
)

// Entry is one audit log row.
type Entry struct {
	ID        int64           `db:"id"`
	Action    string          `db:"action"`
	Payload   json.RawMessage `db:"payload"`
	CreatedAt time.Time       `db:"created_at"`
}
