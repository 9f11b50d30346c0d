package device

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfitOf(t *testing.T) {
	tests := []struct {
		name       string
		gameAmount int64
		price      int64
		want       int64
	}{
		{"gain", 60000, 35000, 25000},
		{"loss is valid", 20000, 35000, -15000},
		{"break even", 35000, 35000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, profitOf(tt.gameAmount, tt.price))
		})
	}
}
