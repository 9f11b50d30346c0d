package lot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfitOf(t *testing.T) {
	reward := int64(800000)
	p := profitOf(&reward, 500000)
	require.NotNil(t, p)
	require.Equal(t, int64(300000), *p)

	loss := int64(400000)
	p = profitOf(&loss, 500000)
	require.NotNil(t, p)
	require.Equal(t, int64(-100000), *p)

	// reward not yet known → profit stays absent
	require.Nil(t, profitOf(nil, 500000))
}
