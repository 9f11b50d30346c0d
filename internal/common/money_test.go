package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		token string
		want  int64
	}{
		{"100k", 100000},
		{"0.5k", 500},
		{"120000", 120000},
		{"57k", 57000},
		{"60k", 60000},
		{"1,000", 1000},
		{"1,500k", 1500000},
		{"100,", 100}, // separators are stripped wherever they appear
		{" 35K ", 35000},
		{"0", 0},
		{"2.5", 3}, // rounds to nearest
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseAmount(tt.token)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, token := range []string{"", "abc", "k", "100kk", "100k5", "-50", "10 0", "hq100k"} {
		t.Run(token, func(t *testing.T) {
			_, err := ParseAmount(token)
			require.ErrorIs(t, err, ErrInvalidAmount)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0"},
		{500, "500"},
		{60000, "60,000"},
		{1234567, "1,234,567"},
		{-15000, "-15,000"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, FormatAmount(tt.amount))
	}
}

func TestFormatSigned(t *testing.T) {
	require.Equal(t, "+60,000", FormatSigned(60000))
	require.Equal(t, "-35,000", FormatSigned(-35000))
	require.Equal(t, "+0", FormatSigned(0))
}
