package invite

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRenderPending_Empty(t *testing.T) {
	out := renderPending(nil, time.Now(), hcm)
	require.Contains(t, out, "Không có lời mời")
}

func TestRenderPending_OverdueMarker(t *testing.T) {
	now := time.Date(2026, 9, 20, 12, 0, 0, 0, hcm)
	pending := []*Invite{
		pendingInvite(1, "hq", "Khanh", "a@gmail.com", now.AddDate(0, 0, -20)), // overdue
		pendingInvite(2, "qr", "Linh", "b@gmail.com", now.AddDate(0, 0, -2)),   // not due yet
	}

	out := renderPending(pending, now, hcm)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[1], "Khanh")
	require.Contains(t, lines[1], "QUÁ HẠN")
	require.Contains(t, lines[2], "Linh")
	require.NotContains(t, lines[2], "QUÁ HẠN")
}

func TestRenderPending_Cap(t *testing.T) {
	now := time.Now().In(hcm)
	var pending []*Invite
	for i := 0; i < pendingListCap+3; i++ {
		pending = append(pending, pendingInvite(int64(i+1), "hq",
			fmt.Sprintf("Person%d", i), "", now.Add(time.Duration(i)*time.Minute)))
	}

	out := renderPending(pending, now, hcm)
	require.Contains(t, out, fmt.Sprintf("%d. ", pendingListCap))
	require.NotContains(t, out, fmt.Sprintf("%d. ", pendingListCap+1))
	require.Contains(t, out, "và 3 lời mời khác")
}
