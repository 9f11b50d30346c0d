package bot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/features/revenue"
)

func TestParseCommandKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want command
	}{
		{"help slash", "/help", command{kind: cmdHelp}},
		{"start", "start", command{kind: cmdHelp}},
		{"undo", "undo", command{kind: cmdUndo}},
		{"report current", "baocao", command{kind: cmdReport}},
		{"report month", "baocao 2026-08", command{kind: cmdReport, month: "2026-08"}},
		{"pending", "pending", command{kind: cmdPending}},
		{
			"dabong income", "dabong 60k",
			command{kind: cmdRevenue, channel: revenue.ChannelDB,
				revKind: revenue.KindInviteReward, amount: 60000},
		},
		{
			"db short form", "db 25k",
			command{kind: cmdRevenue, channel: revenue.ChannelDB,
				revKind: revenue.KindInviteReward, amount: 25000},
		},
		{
			"hopqua income", "hopqua 100k",
			command{kind: cmdRevenue, channel: revenue.ChannelHQ,
				revKind: revenue.KindInviteReward, amount: 100000},
		},
		{
			"hh alias", "hh 100k",
			command{kind: cmdRevenue, channel: revenue.ChannelHQ,
				revKind: revenue.KindInviteReward, amount: 100000},
		},
		{
			"qr income", "qr 45k",
			command{kind: cmdRevenue, channel: revenue.ChannelQR,
				revKind: revenue.KindInviteReward, amount: 45000},
		},
		{
			"hq invite", "hq Minh minh@gmail.com",
			command{kind: cmdInviteCreate, channel: revenue.ChannelHQ,
				name: "Minh", email: "minh@gmail.com"},
		},
		{
			"qr invite", "qr Lan lan123@yahoo.com",
			command{kind: cmdInviteCreate, channel: revenue.ChannelQR,
				name: "Lan", email: "lan123@yahoo.com"},
		},
		{
			"other income", "them 500k",
			command{kind: cmdRevenue, channel: revenue.ChannelOther,
				revKind: revenue.KindOtherIncome, amount: 500000},
		},
		{
			"admin set", "chinh momo 1000k",
			command{kind: cmdAdminSet, wallet: "momo", amount: 1000000},
		},
		{
			"lot buy", "mua 5may 350k",
			command{kind: cmdLotBuy, qty: 5, amount: 350000},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, parseCommand(tt.text))
		})
	}
}

func TestParseCommandLotResult(t *testing.T) {
	reward := int64(800000)

	got := parseCommand("5may hopqua800k tach2")
	require.Equal(t, cmdLotResult, got.kind)
	require.Equal(t, 5, got.qty)
	require.Equal(t, 3, got.okCount)
	require.Equal(t, 2, got.tach)
	require.Equal(t, revenue.ChannelHQ, got.channel)
	require.NotNil(t, got.reward)
	require.Equal(t, reward, *got.reward)

	// Either token order.
	swapped := parseCommand("5may tach2 hopqua800k")
	require.Equal(t, got, swapped)

	// Free-form channel labels survive normalization.
	got = parseCommand("3may tiktok450k tach1")
	require.Equal(t, cmdLotResult, got.kind)
	require.Equal(t, "tiktok", got.channel)
	require.Equal(t, 2, got.okCount)

	// No reward yet: ok count is the full lot, reward absent.
	got = parseCommand("4may hq ok tach1")
	require.Equal(t, cmdLotResult, got.kind)
	require.Equal(t, 4, got.qty)
	require.Equal(t, 4, got.okCount)
	require.Equal(t, 1, got.tach)
	require.Equal(t, revenue.ChannelHQ, got.channel)
	require.Nil(t, got.reward)

	// The no-reward form only accepts the three core channels.
	require.Equal(t, cmdUnknown, parseCommand("4may tiktok ok tach1").kind)

	// Missing tach token.
	require.Equal(t, cmdUnknown, parseCommand("5may hopqua800k").kind)

	// A duplicate tach token never passes for a channel+amount.
	require.Equal(t, cmdUnknown, parseCommand("5may tach2 tach3").kind)
}

func TestParseCommandDeviceShapes(t *testing.T) {
	got := parseCommand("abc12 35k")
	require.Equal(t, command{kind: cmdDeviceBuy, code: "abc12", amount: 35000}, got)

	got = parseCommand("ABC12 ok hopqua60k")
	require.Equal(t, cmdDeviceResolve, got.kind)
	require.Equal(t, "abc12", got.code)
	require.Equal(t, revenue.ChannelHQ, got.channel)
	require.Equal(t, int64(60000), got.amount)

	// Reserved keywords never act as device codes.
	require.Equal(t, cmdUnknown, parseCommand("them them").kind)
	require.Equal(t, cmdUnknown, parseCommand("ok 35k").kind)

	// An <N>may head is a lot result, never a device code.
	require.Equal(t, cmdUnknown, parseCommand("5may 35k").kind)

	// Malformed compound in a resolve.
	require.Equal(t, cmdUnknown, parseCommand("abc12 ok hopqua").kind)
}

func TestParseCommandUnknown(t *testing.T) {
	for _, text := range []string{
		"",
		"   ",
		"xin chao",
		"dabong",
		"dabong abc",
		"hq Minh",
		"chinh momo",
		"mua 5may",
		"mua abc 350k",
		"baocao 2026 08",
	} {
		require.Equal(t, cmdUnknown, parseCommand(text).kind, "text=%q", text)
	}
}
