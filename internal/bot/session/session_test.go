package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreLifecycle(t *testing.T) {
	s := NewStore()
	require.Nil(t, s.Get(1))

	s.Set(1, &Pending{Kind: KindDeviceWallet, Code: "abc123", Amount: 35000})
	p := s.Get(1)
	require.NotNil(t, p)
	require.Equal(t, KindDeviceWallet, p.Kind)
	require.Equal(t, "abc123", p.Code)

	// other chats are unaffected
	require.Nil(t, s.Get(2))

	// a new question replaces the old one
	s.Set(1, &Pending{Kind: KindCheckinReward, Channel: "hq", Name: "Khanh"})
	require.Equal(t, KindCheckinReward, s.Get(1).Kind)

	s.Clear(1)
	require.Nil(t, s.Get(1))

	// clearing an idle chat is a no-op
	s.Clear(2)
}
