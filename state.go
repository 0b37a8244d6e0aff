package spotr

import (
	"crypto/rand"
	"sync"
)

const (
	stateLen   = 16
	stateChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_.~"
)

// stateSet tracks the outstanding anti-forgery state values generated by
// AuthorizationURL. Each value is single-use: Consume removes it whether or
// not the exchange that follows succeeds.
type stateSet struct {
	mu      sync.Mutex
	pending map[string]struct{}
}

func newStateSet() *stateSet {
	return &stateSet{pending: make(map[string]struct{})}
}

// Generate creates a new random state value and registers it as pending.
func (s *stateSet) Generate() string {
	buf := make([]byte, stateLen)
	if _, err := rand.Read(buf); err != nil {
		panic("spotr: crypto/rand unavailable: " + err.Error())
	}
	for i, b := range buf {
		buf[i] = stateChars[int(b)%len(stateChars)]
	}
	state := string(buf)

	s.mu.Lock()
	s.pending[state] = struct{}{}
	s.mu.Unlock()
	return state
}

// Consume removes state from the pending set, reporting whether it was there.
func (s *stateSet) Consume(state string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pending[state]; !ok {
		return false
	}
	delete(s.pending, state)
	return true
}
