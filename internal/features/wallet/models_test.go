package wallet

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kinhnguyen92nvk/tiktok-lite-bot/internal/common"
)

func TestParseName(t *testing.T) {
	for _, s := range []string{"momo", " MOMO ", "Bank", "tienmat"} {
		name, err := ParseName(s)
		require.NoError(t, err, s)
		require.NotEmpty(t, name)
	}

	for _, s := range []string{"", "cash", "vi", "momo1"} {
		_, err := ParseName(s)
		require.ErrorIs(t, err, common.ErrUnknownWallet, s)
	}
}

func TestPlanAdjust(t *testing.T) {
	balance, kind := planAdjust(0, 100000)
	require.Equal(t, int64(100000), balance)
	require.Equal(t, EntryCredit, kind)

	balance, kind = planAdjust(balance, -35000)
	require.Equal(t, int64(65000), balance)
	require.Equal(t, EntryDebit, kind)
}

// The §-style scenario: credit, debit, then an absolute override.
// The stored balance must equal the sum of the three ledger deltas.
func TestAdminSetKeepsLedgerReplayable(t *testing.T) {
	var balance int64
	var deltas []int64

	balance, _ = planAdjust(balance, 100000) // device sale
	deltas = append(deltas, 100000)
	balance, _ = planAdjust(balance, -35000) // device purchase
	deltas = append(deltas, -35000)

	delta := planAdminSet(balance, 200000) // admin override to 200,000
	require.Equal(t, int64(135000), delta)
	deltas = append(deltas, delta)
	balance = 200000

	var sum int64
	for _, d := range deltas {
		sum += d
	}
	require.Equal(t, balance, sum)
}
