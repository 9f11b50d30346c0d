package revenue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeChannel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hopqua", "hq"},
		{"hq", "hq"},
		{"hh", "hq"},
		{"HopQua", "hq"},
		{"dabong", "db"},
		{"db", "db"},
		{"qr", "qr"},
		{"QR", "qr"},
		{"other", "other"},
		{"tiktok", "tiktok"}, // free-form label passes through
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, NormalizeChannel(tt.in))
		})
	}
}

// normalize(normalize(x)) == normalize(x) for every input
func TestNormalizeChannelIdempotent(t *testing.T) {
	for _, in := range []string{"hopqua", "hq", "hh", "dabong", "db", "qr", "them", "tiktok", "X", ""} {
		once := NormalizeChannel(in)
		require.Equal(t, once, NormalizeChannel(once), in)
	}
}

func TestChannelLabel(t *testing.T) {
	require.Equal(t, "Hopqua", ChannelLabel("hq"))
	require.Equal(t, "Hopqua", ChannelLabel("hopqua"))
	require.Equal(t, "Dabong", ChannelLabel("db"))
	require.Equal(t, "QR", ChannelLabel("qr"))
	require.Equal(t, "Tiktok", ChannelLabel("tiktok"))
}
