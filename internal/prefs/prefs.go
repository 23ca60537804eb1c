// Package prefs is the shared display-preference store. It replaces the old
// ad hoc persisted-flag-plus-broadcast-event coupling with one explicit
// object: Set persists the flag and notifies every live subscriber in this
// process. There is no cross-instance synchronization.
package prefs

import (
	"context"
	"sync"
)

// KeyShowSENDInfo is the one preference the finder currently carries: the
// opt-in toggle for SEND (special educational needs) detail on cards.
const KeyShowSENDInfo = "show_send_info"

type Change struct {
	Key   string `json:"key"`
	Value bool   `json:"value"`
}

// Backend persists flag values; the store layers subscriptions on top.
type Backend interface {
	Load(ctx context.Context, key string) (value, found bool, err error)
	Save(ctx context.Context, key string, value bool) error
}

type Store struct {
	backend Backend

	mu   sync.Mutex
	subs map[int]chan Change
	next int
}

func NewStore(b Backend) *Store {
	return &Store{backend: b, subs: map[int]chan Change{}}
}

// Get reads a flag; an unset flag reads as false.
func (s *Store) Get(ctx context.Context, key string) (bool, error) {
	v, found, err := s.backend.Load(ctx, key)
	if err != nil || !found {
		return false, err
	}
	return v, nil
}

// Set persists the flag, then notifies subscribers. A subscriber that is not
// draining its channel is skipped rather than blocking the writer.
func (s *Store) Set(ctx context.Context, key string, value bool) error {
	if err := s.backend.Save(ctx, key, value); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- Change{Key: key, Value: value}:
		default:
		}
	}
	return nil
}

// Subscribe registers for change notifications. The returned cancel func
// unregisters and closes the channel; callers must invoke it when done.
func (s *Store) Subscribe() (<-chan Change, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	ch := make(chan Change, 8)
	s.subs[id] = ch
	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}
	return ch, cancel
}
