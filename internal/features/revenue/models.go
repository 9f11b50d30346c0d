// Package revenue records game-reward income events, the unit of monthly
// reporting. models.go declares the channel enum and event shapes.
package revenue

import (
	"strings"
	"time"
)

// Revenue channels. Free-form channel labels from device/lot results pass
// through unchanged; only the known aliases collapse.
const (
	ChannelDB    = "db" // đá bóng
	ChannelHQ    = "hq" // hộp quà
	ChannelQR    = "qr"
	ChannelOther = "other"
)

// Event kinds.
const (
	KindInviteReward  = "invite_reward"
	KindCheckinReward = "checkin_reward"
	KindOtherIncome   = "other_income"
)

// NormalizeChannel collapses the operator's channel aliases onto the
// canonical names. Total and idempotent: unknown labels pass through
// lower-cased, so normalize(normalize(x)) == normalize(x).
func NormalizeChannel(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hopqua", "hq", "hh":
		return ChannelHQ
	case "dabong", "db":
		return ChannelDB
	case "qr":
		return ChannelQR
	default:
		return strings.ToLower(strings.TrimSpace(s))
	}
}

// ChannelLabel renders a channel for prompts: "Hopqua", "Dabong", "QR".
func ChannelLabel(channel string) string {
	switch NormalizeChannel(channel) {
	case ChannelHQ:
		return "Hopqua"
	case ChannelDB:
		return "Dabong"
	case ChannelQR:
		return "QR"
	default:
		c := NormalizeChannel(channel)
		if c == "" {
			return c
		}
		return strings.ToUpper(c[:1]) + c[1:]
	}
}

// Event is one append-only revenue row.
type Event struct {
	ID          int64     `db:"id"`
	Channel     string    `db:"channel"`
	Kind        string    `db:"kind"`
	Amount      int64     `db:"amount"`
	Note        string    `db:"note"`
	ChatID      int64     `db:"chat_id"`
	PersonName  string    `db:"person_name"`
	PersonEmail string    `db:"person_email"`
	CreatedAt   time.Time `db:"created_at"`
}
