// Package wallet tracks the funding sources and their running balances.
// models.go declares the wallet enum and the ledger row shapes.
package wallet

import (
	"strings"
	"time"

	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/common"
)

// The closed set of wallet names. Wallets are created lazily on first
// reference and never deleted.
const (
	WalletMomo    = "momo"
	WalletBank    = "bank"
	WalletTienMat = "tienmat"
)

// ParseName validates a free-text wallet answer against the enum.
func ParseName(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case WalletMomo:
		return WalletMomo, nil
	case WalletBank:
		return WalletBank, nil
	case WalletTienMat:
		return WalletTienMat, nil
	}
	return "", common.ErrUnknownWallet
}

// Names lists the enum for help and re-prompt texts.
func Names() string {
	return WalletMomo + "/" + WalletBank + "/" + WalletTienMat
}

// Account is the denormalized balance of one wallet. The balance always
// equals the sum of its ledger entries in append order; both are written
// in the same DB transaction, so drift is a bug.
type Account struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Balance   int64     `db:"balance"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Entry is one immutable ledger row. Amount is signed.
type Entry struct {
	ID        int64     `db:"id"`
	Wallet    string    `db:"wallet"`
	Amount    int64     `db:"amount"`
	Kind      string    `db:"kind"`
	Ref       string    `db:"ref"`
	Note      string    `db:"note"`
	CreatedAt time.Time `db:"created_at"`
}

// Ledger entry kinds.
const (
	EntryCredit   = "credit"
	EntryDebit    = "debit"
	EntryAdminSet = "admin_set"
)

// planAdjust computes the outcome of applying a signed delta:
// the new balance and the entry kind implied by the sign.
func planAdjust(current, delta int64) (newBalance int64, kind string) {
	kind = EntryCredit
	if delta < 0 {
		kind = EntryDebit
	}
	return current + delta, kind
}

// planAdminSet computes the outcome of an absolute override: the balance
// is set to target, and the ledger records the delta that got it there.
func planAdminSet(current, target int64) (delta int64) {
	return target - current
}
