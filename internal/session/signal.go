package session

import "sync"

// subscriberBuffer bounds each subscription channel. When a slow subscriber
// falls behind, the oldest buffered value is dropped so the latest value is
// always deliverable (replay-last semantics, not a full event log).
const subscriberBuffer = 16

// Signal is a multicast, replay-last-value container.
//
// Late subscribers immediately receive the current value instead of waiting
// for the next transition, which is what lets a guard evaluated after service
// construction observe the already-resolved authentication status.
type Signal[T any] struct {
	mu    sync.Mutex
	value T
	subs  map[int]chan T
	next  int
}

// NewSignal creates a signal holding the given initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{value: initial, subs: make(map[int]chan T)}
}

// Get returns the current value synchronously.
func (s *Signal[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set publishes a new value to all subscribers and stores it as the current value.
func (s *Signal[T]) Set(value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = value
	for _, ch := range s.subs {
		send(ch, value)
	}
}

// Subscribe registers a new subscriber and delivers the current value
// immediately. The returned cancel function removes the subscription and
// closes the channel; it is safe to call more than once.
func (s *Signal[T]) Subscribe() (<-chan T, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++

	ch := make(chan T, subscriberBuffer)
	ch <- s.value
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

// send delivers value without blocking, evicting the oldest buffered value if
// the subscriber is full.
func send[T any](ch chan T, value T) {
	for {
		select {
		case ch <- value:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
