package ilist

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

var (
	ErrBrokenLink = errors.New("ilist: links are not doubly consistent")
	ErrCycle      = errors.New("ilist: element reached twice before the sentinel")
)

// Verify walks l and checks that every link is mirrored by its neighbour and
// that the walk returns to the sentinel without revisiting an element.
// It is meant for tests and debugging, it costs O(n) time and memory.
func (l *List[T, Tag]) Verify() error {
	end := l.sentinel()
	seen := mapset.NewThreadUnsafeSet[*Element[T, Tag]]()

	for e, i := end, 0; ; i++ {
		if e.next == nil || e.prev == nil {
			return fmt.Errorf("%w: position %d is unlinked", ErrBrokenLink, i)
		}
		if e.next.prev != e {
			return fmt.Errorf("%w: next of position %d does not point back", ErrBrokenLink, i)
		}
		if e.prev.next != e {
			return fmt.Errorf("%w: prev of position %d does not point forward", ErrBrokenLink, i)
		}
		e = e.next
		if e == end {
			return nil
		}
		if !seen.Add(e) {
			return fmt.Errorf("%w: position %d", ErrCycle, i+1)
		}
	}
}
