// Package signal implements synchronous, single goroutine multicast signals.
//
// A Signal keeps its connections in an intrusive list, so connecting and
// disconnecting never allocate list nodes. Every running broadcast registers
// an iteration token with the signal. Tokens form a stack, innermost first,
// and a connection that is removed while a broadcast is in flight moves any
// token parked on it forward before it leaves the list. This makes it safe
// for a slot to disconnect itself or any other connection, to connect new
// slots, to emit the same signal again, or to Close the signal, all from
// inside a broadcast.
//
// Signals are not safe for concurrent use.
package signal

import (
	"fmt"

	"github.com/delaneyj/turnsignal/ilist"
)

type connectionTag struct{}

// Signal broadcasts to the slots connected to it. F is the slot function
// type. The zero value is a signal without connections. A Signal must not be
// copied after first use.
//
// The generated Signal0 to Signal4 wrap Signal with a typed Emit; use
// Broadcast directly for other slot shapes.
type Signal[F any] struct {
	cons ilist.List[*Connection[F], connectionTag]
	top  *token[F]
}

// token is the cursor of one running broadcast.
type token[F any] struct {
	// sig is nil once the signal has been closed
	sig  *Signal[F]
	iter ilist.Iterator[*Connection[F], connectionTag]
	next *token[F]
}

func (t *token[F]) release() {
	if t.sig != nil {
		t.sig.top = t.next
	}
}

// Connect links slot at the back of the signal and returns the handle that
// owns the subscription.
func (s *Signal[F]) Connect(slot F) *Connection[F] {
	c := &Connection[F]{
		sig:   s,
		slot:  slot,
		state: Connected,
	}
	c.link.Value = c
	s.cons.PushBack(&c.link)
	return c
}

// Broadcast calls invoke once for every connected slot, in connection order.
// A connection disconnected before the broadcast reaches it is skipped; a
// connection added during the broadcast is reached if the broadcast has not
// already passed the back of the list. A panic raised by a slot stops the
// broadcast and propagates to the caller.
func (s *Signal[F]) Broadcast(invoke func(slot F)) {
	t := &token[F]{sig: s, iter: s.cons.Begin(), next: s.top}
	s.top = t
	defer t.release()

	for t.sig != nil && t.iter != s.cons.End() {
		current := t.iter
		t.iter = t.iter.Next()
		invoke(current.Value().slot)
	}
}

// Close disconnects every connection. Broadcasts in flight, including outer
// frames of a nested emit, stop after the slot that is currently running.
// The signal is empty and usable again afterwards.
func (s *Signal[F]) Close() {
	for t := s.top; t != nil; t = t.next {
		t.sig = nil
	}
	s.top = nil
	for !s.cons.Empty() {
		s.cons.Back().remove()
	}
}

// Len returns the number of connected slots.
func (s *Signal[F]) Len() int {
	return s.cons.Len()
}

// Empty reports whether no slot is connected.
func (s *Signal[F]) Empty() bool {
	return s.cons.Empty()
}

// verify checks the connection list and that every token on the stack
// still belongs to s.
func (s *Signal[F]) verify() error {
	depth := 0
	for t := s.top; t != nil; t = t.next {
		if t.sig != s {
			return fmt.Errorf("signal: token %d on the stack is detached", depth)
		}
		depth++
	}
	return s.cons.Verify()
}
