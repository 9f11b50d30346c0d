package middleware

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChatSerializer_OrdersOneChat(t *testing.T) {
	s := NewChatSerializer()
	defer s.Close()

	var mu sync.Mutex
	var order []int
	var wg sync.WaitGroup

	// handlers for the same chat must never overlap; the critical
	// section appends exactly one value while holding the chat lock
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			release := s.Acquire(7)
			defer release()
			mu.Lock()
			order = append(order, n)
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	require.Len(t, order, 20)
}

func TestChatSerializer_ChatsIndependent(t *testing.T) {
	s := NewChatSerializer()
	defer s.Close()

	releaseA := s.Acquire(1)

	done := make(chan struct{})
	go func() {
		releaseB := s.Acquire(2) // must not block on chat 1
		releaseB()
		close(done)
	}()

	<-done
	releaseA()
}
