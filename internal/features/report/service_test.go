package report

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderReport(t *testing.T) {
	out := renderReport("2026-09", map[string]int64{
		"hq":     160000,
		"db":     100000,
		"tiktok": 50000,
	}, 310000, 5, 2, map[string]int64{
		"momo": 1200000,
		"bank": 0,
	})

	require.Contains(t, out, "Báo cáo 2026-09")
	require.Contains(t, out, "hq: 160,000")
	require.Contains(t, out, "db: 100,000")
	require.Contains(t, out, "tiktok: 50,000")
	require.Contains(t, out, "Tổng: 310,000")
	require.Contains(t, out, "Lời mời: 5 tạo, 2 xong")
	// channels without postings are omitted entirely
	require.NotContains(t, out, "qr:")
	// all three wallets always render, unwritten ones at zero
	require.Contains(t, out, "momo: 1,200,000")
	require.Contains(t, out, "bank: 0")
	require.Contains(t, out, "tienmat: 0")
}

func TestRenderReport_EmptyMonth(t *testing.T) {
	out := renderReport("2026-01", map[string]int64{}, 0, 0, 0, map[string]int64{})
	require.Contains(t, out, "Tổng: 0")
	require.Contains(t, out, "0 tạo, 0 xong")
}

func TestMonthPattern(t *testing.T) {
	require.True(t, monthPattern.MatchString("2026-09"))
	require.True(t, monthPattern.MatchString("2025-12"))
	require.False(t, monthPattern.MatchString("2026-13"))
	require.False(t, monthPattern.MatchString("2026-9"))
	require.False(t, monthPattern.MatchString("09-2026"))
	require.False(t, monthPattern.MatchString("baocao"))
}
