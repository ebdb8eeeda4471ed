package signal

import "github.com/delaneyj/turnsignal/ilist"

// State is the lifecycle stage of a Connection.
type State uint8

const (
	// Unbound is the zero Connection, never attached to a signal.
	Unbound State = iota
	// Connected connections receive broadcasts.
	Connected
	// Disconnected is terminal for a binding: after Disconnect, Close on
	// the signal, or after the handle was moved from.
	Disconnected
)

func (s State) String() string {
	switch s {
	case Unbound:
		return "unbound"
	case Connected:
		return "connected"
	case Disconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// Connection is the handle of one subscription. It is the only way to end
// the subscription early, and it cannot be duplicated: a Connection must not
// be copied, use Transfer or MoveFrom to hand it over.
type Connection[F any] struct {
	_     noCopy
	link  ilist.Element[*Connection[F], connectionTag]
	sig   *Signal[F]
	slot  F
	state State
}

// Connected reports whether c still receives broadcasts.
func (c *Connection[F]) Connected() bool {
	return c.sig != nil
}

// State returns c's lifecycle stage.
func (c *Connection[F]) State() State {
	return c.state
}

// Disconnect stops c from receiving broadcasts. Any broadcast in flight that
// was about to visit c skips it. Disconnecting twice is a no-op.
func (c *Connection[F]) Disconnect() {
	if c.sig == nil {
		return
	}
	here := c.sig.cons.Wrap(&c.link)
	for t := c.sig.top; t != nil; t = t.next {
		if t.iter == here {
			t.iter = t.iter.Next()
		}
	}
	c.remove()
}

// Transfer moves the subscription to a new handle that takes c's place in
// the delivery order. c is left disconnected. Transferring an unbound or
// disconnected handle yields an unbound one.
func (c *Connection[F]) Transfer() *Connection[F] {
	dst := &Connection[F]{}
	dst.switchWith(c)
	return dst
}

// MoveFrom disconnects c, then takes over src's subscription in src's place.
// src is left disconnected. Moving a handle onto itself does nothing.
func (c *Connection[F]) MoveFrom(src *Connection[F]) {
	if c == src {
		return
	}
	c.Disconnect()
	c.switchWith(src)
}

// remove drops c from its signal without touching iteration tokens.
func (c *Connection[F]) remove() {
	var zero F
	c.sig = nil
	c.slot = zero
	c.state = Disconnected
	c.link.Unlink()
}

func (c *Connection[F]) switchWith(src *Connection[F]) {
	c.link.Value = c
	c.sig = src.sig
	c.slot = src.slot
	if c.sig == nil {
		return
	}
	c.state = Connected
	cons := &c.sig.cons
	cons.Insert(cons.Wrap(&src.link).Next(), &c.link)
	src.Disconnect()
}

// noCopy may be embedded into structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
