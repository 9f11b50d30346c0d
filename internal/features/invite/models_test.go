package invite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var hcm = time.FixedZone("ICT", 7*60*60)

func pendingInvite(id int64, channel, name, email string, invitedAt time.Time) *Invite {
	return &Invite{
		ID:        id,
		Channel:   channel,
		Name:      name,
		Email:     email,
		InvitedAt: invitedAt,
		DueAt:     invitedAt.AddDate(0, 0, DueDays),
		Status:    StatusPending,
	}
}

func TestMatchPending_ByEmail(t *testing.T) {
	now := time.Now()
	invites := []*Invite{
		pendingInvite(1, "hq", "Khanh", "mail@gmail.com", now.Add(-48*time.Hour)),
		pendingInvite(2, "qr", "Khanh", "mail@gmail.com", now.Add(-24*time.Hour)),
	}

	// channel narrows the match even when emails collide
	got := matchPending(invites, "hq", "someone", "MAIL@gmail.com")
	require.NotNil(t, got)
	require.Equal(t, int64(1), got.ID)

	require.Nil(t, matchPending(invites, "db", "Khanh", "mail@gmail.com"))
}

func TestMatchPending_NameFallback(t *testing.T) {
	now := time.Now()
	invites := []*Invite{
		pendingInvite(1, "hq", "Khanh", "old@gmail.com", now.Add(-time.Hour)),
	}

	// email mismatched, name still matches case-insensitively
	got := matchPending(invites, "hq", "khanh", "new@gmail.com")
	require.NotNil(t, got)
	require.Equal(t, int64(1), got.ID)
}

// Two people sharing a name on one channel is inherently ambiguous;
// the documented tie-break is most recent invited-at.
func TestMatchPending_AmbiguousTieBreak(t *testing.T) {
	now := time.Now()
	invites := []*Invite{
		pendingInvite(1, "hq", "Khanh", "a@gmail.com", now.Add(-72*time.Hour)),
		pendingInvite(2, "hq", "Khanh", "b@gmail.com", now.Add(-24*time.Hour)),
	}

	got := matchPending(invites, "hq", "Khanh", "")
	require.NotNil(t, got)
	require.Equal(t, int64(2), got.ID)
}

func TestMatchPending_SkipsDone(t *testing.T) {
	now := time.Now()
	done := pendingInvite(1, "hq", "Khanh", "mail@gmail.com", now)
	done.Status = StatusDone

	require.Nil(t, matchPending([]*Invite{done}, "hq", "Khanh", "mail@gmail.com"))
}

func TestDueDateMath(t *testing.T) {
	invited := time.Date(2026, 9, 1, 10, 0, 0, 0, hcm)
	inv := pendingInvite(1, "hq", "Khanh", "mail@gmail.com", invited)

	require.Equal(t, time.Date(2026, 9, 15, 10, 0, 0, 0, hcm), inv.DueAt)
	require.False(t, inv.Overdue(invited.AddDate(0, 0, 13)))
	require.True(t, inv.Overdue(invited.AddDate(0, 0, 15)))
}

func TestShouldRemind(t *testing.T) {
	due := time.Date(2026, 9, 15, 10, 0, 0, 0, hcm)
	base := &Invite{Status: StatusPending, DueAt: due}

	// not yet due
	require.False(t, shouldRemind(base, due.Add(-time.Minute), hcm))
	// due
	require.True(t, shouldRemind(base, due.Add(time.Hour), hcm))

	// done invites are skipped
	doneInv := *base
	doneInv.Status = StatusDone
	require.False(t, shouldRemind(&doneInv, due.Add(time.Hour), hcm))

	// zero due date is skipped
	noDue := *base
	noDue.DueAt = time.Time{}
	require.False(t, shouldRemind(&noDue, due, hcm))
}

// Reminded at T → silent for the rest of T's calendar day, fires again
// the next day if still pending.
func TestShouldRemind_DailyThrottle(t *testing.T) {
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, hcm)
	remindedAt := time.Date(2026, 9, 16, 9, 0, 0, 0, hcm)
	inv := &Invite{Status: StatusPending, DueAt: due, LastRemindedAt: &remindedAt}

	// same calendar day, even hours later
	require.False(t, shouldRemind(inv, remindedAt.Add(5*time.Hour), hcm))
	require.False(t, shouldRemind(inv, time.Date(2026, 9, 16, 23, 59, 0, 0, hcm), hcm))
	// next calendar day, even one minute in
	require.True(t, shouldRemind(inv, time.Date(2026, 9, 17, 0, 1, 0, 0, hcm), hcm))
}
