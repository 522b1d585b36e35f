package state

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrStoreClosed reports a dispatch against a closed store.
var ErrStoreClosed = errors.New("state: store closed")

type request struct {
	m     Mutation
	reply chan error
}

// Store owns the process-wide current snapshot.
//
// All mutations are serialized through one writer goroutine, so a snapshot is
// fully constructed before it is published and readers always observe either
// the pre- or post-mutation state, never a partial update.
type Store struct {
	reducer  *Reducer
	current  atomic.Pointer[State]
	requests chan request
	done     chan struct{}
	closed   sync.Once

	subMu   sync.Mutex
	subs    map[int]func(State)
	nextSub int
}

// NewStore seeds a store with the reducer's initial state and starts the
// writer goroutine. Callers must Close the store when done with it.
func NewStore(r *Reducer) (*Store, error) {
	st, err := r.InitialState()
	if err != nil {
		return nil, err
	}
	s := &Store{
		reducer:  r,
		requests: make(chan request),
		done:     make(chan struct{}),
		subs:     make(map[int]func(State)),
	}
	s.current.Store(&st)
	go s.run()
	return s, nil
}

// Current returns the latest published snapshot.
func (s *Store) Current() State {
	return *s.current.Load()
}

// Dispatch applies one mutation and blocks until the successor snapshot is
// published. A failed transition leaves the current snapshot in place.
func (s *Store) Dispatch(m Mutation) error {
	req := request{m: m, reply: make(chan error, 1)}
	select {
	case s.requests <- req:
		return <-req.reply
	case <-s.done:
		return ErrStoreClosed
	}
}

// Subscribe registers fn to run after every successful transition, called
// from the writer goroutine with the freshly published snapshot. The returned
// cancel function unregisters it.
func (s *Store) Subscribe(fn func(State)) (cancel func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// Close stops the writer goroutine. Pending and later dispatches report
// ErrStoreClosed.
func (s *Store) Close() {
	s.closed.Do(func() { close(s.done) })
}

func (s *Store) run() {
	for {
		select {
		case req := <-s.requests:
			next, err := s.reducer.Reduce(s.Current(), req.m)
			if err == nil {
				s.current.Store(&next)
				s.notify(next)
			}
			req.reply <- err
		case <-s.done:
			return
		}
	}
}

func (s *Store) notify(st State) {
	s.subMu.Lock()
	fns := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}
