package middleware

import (
	"sync"
	"time"
)

// ChatSerializer runs the handlers of one chat strictly in arrival order
// while different chats proceed in parallel. The update loop handles
// updates concurrently (inflight semaphore), so without this a slow store
// call could interleave two operations of the same conversation — e.g. a
// wallet answer racing the purchase that asked for it.
type ChatSerializer struct {
	mu    sync.Mutex
	chats map[int64]*chatLock

	stopOnce sync.Once
	stopCh   chan struct{}
}

type chatLock struct {
	mu sync.Mutex
	// guarded by ChatSerializer.mu
	refs    int
	lastUse time.Time
}

func NewChatSerializer() *ChatSerializer {
	s := &ChatSerializer{
		chats:  make(map[int64]*chatLock),
		stopCh: make(chan struct{}),
	}
	go s.cleanup()
	return s
}

// Acquire blocks until the chat's previous handler finished and returns
// the release func.
func (s *ChatSerializer) Acquire(chatID int64) func() {
	s.mu.Lock()
	cl := s.chats[chatID]
	if cl == nil {
		cl = &chatLock{}
		s.chats[chatID] = cl
	}
	cl.refs++
	s.mu.Unlock()

	cl.mu.Lock()
	return func() {
		cl.mu.Unlock()
		s.mu.Lock()
		cl.refs--
		cl.lastUse = time.Now()
		s.mu.Unlock()
	}
}

// Close stops the background cleanup goroutine. Call on shutdown.
func (s *ChatSerializer) Close() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

// cleanup drops idle chat locks so the map does not grow forever.
func (s *ChatSerializer) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-30 * time.Minute)
			s.mu.Lock()
			for chatID, cl := range s.chats {
				if cl.refs == 0 && cl.lastUse.Before(cutoff) {
					delete(s.chats, chatID)
				}
			}
			s.mu.Unlock()
		}
	}
}
