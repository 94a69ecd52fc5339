// Package state holds client-side copies of server data. Each copy is written
// only by responses to requests newer than the one that produced it, so a slow
// response can never overwrite fresher data.
package state

import "sync"

// Ticket orders requests by the moment they were issued.
type Ticket uint64

type Latest[T any] struct {
	mu      sync.RWMutex
	issued  Ticket
	applied Ticket
	value   T
	set     bool
}

// Begin must be called before the request is sent.
func (l *Latest[T]) Begin() Ticket {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.issued++

	return l.issued
}

// Apply stores value unless a newer request already landed.
func (l *Latest[T]) Apply(ticket Ticket, value T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if ticket <= l.applied {
		return false
	}

	l.applied = ticket
	l.value = value
	l.set = true

	return true
}

// Get returns the current value and whether any response has been applied.
func (l *Latest[T]) Get() (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.value, l.set
}

// Notifier fans change signals out to subscribers. The zero value is ready to use.
type Notifier struct {
	mu   sync.Mutex
	next int
	subs map[int]chan struct{}
}

// Subscribe returns a channel that receives a token after each change.
// Changes that arrive while a token is pending are coalesced.
func (n *Notifier) Subscribe() (<-chan struct{}, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.subs == nil {
		n.subs = make(map[int]chan struct{})
	}

	id := n.next
	n.next++

	ch := make(chan struct{}, 1)
	n.subs[id] = ch

	return ch, func() {
		n.mu.Lock()
		defer n.mu.Unlock()

		delete(n.subs, id)
	}
}

func (n *Notifier) Broadcast() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
