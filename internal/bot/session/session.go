// Package session holds the per-chat conversation state: at most one
// outstanding question the bot is waiting on, plus the data needed to
// finish the operation once the operator answers.
//
// State is process-lifetime only. A restart drops pending questions;
// the operator just repeats the command.
package session

import "sync"

// Question kinds. While a chat has a pending question, every inbound
// message from that chat is routed as the answer, never as a command.
const (
	// KindDeviceWallet — waiting for the wallet that funded a device purchase
	KindDeviceWallet = "device_wallet"
	// KindLotWallet — waiting for the wallet that funded a lot purchase
	KindLotWallet = "lot_wallet"
	// KindCheckinReward — waiting for the reward amount of a due invite
	KindCheckinReward = "checkin_reward"
)

// Pending describes one outstanding question.
type Pending struct {
	Kind string

	// device / lot purchase context
	Code   string // device code or lot code
	Amount int64  // purchase price / total cost, for the reply text

	// check-in context — enough to re-run the pending-invite match
	Channel string
	Name    string
	Email   string
}

// Store maps chat IDs to their pending question. One writer per chat
// (handlers for a chat are serialized), but chats run concurrently,
// so the map itself is guarded.
type Store struct {
	mu     sync.RWMutex
	byChat map[int64]*Pending
}

func NewStore() *Store {
	return &Store{byChat: make(map[int64]*Pending)}
}

// Get returns the pending question for a chat, or nil.
func (s *Store) Get(chatID int64) *Pending {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byChat[chatID]
}

// Set records the pending question for a chat, replacing any previous one.
func (s *Store) Set(chatID int64, p *Pending) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byChat[chatID] = p
}

// Clear removes the pending question. Called only after a successfully
// validated answer; invalid answers leave the state untouched.
func (s *Store) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byChat, chatID)
}
