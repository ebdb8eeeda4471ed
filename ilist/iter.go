package ilist

import "iter"

// All yields the values of l front to back. The element being yielded may
// be unlinked by the loop body; anything else linked or unlinked during the
// loop is the caller's business.
func (l *List[T, Tag]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		end := l.End()
		for it := l.Begin(); it != end; {
			cur := it
			it = it.Next()
			if !yield(cur.Value()) {
				return
			}
		}
	}
}

// Backward yields the values of l back to front.
func (l *List[T, Tag]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		end := l.End()
		for it := end.Prev(); it != end; {
			cur := it
			it = it.Prev()
			if !yield(cur.Value()) {
				return
			}
		}
	}
}
