// Package ilist implements an intrusive, circular, doubly-linked list.
//
// Unlike container/list, the links live inside the values themselves: a type
// that wants to be listed embeds an Element and points its Value back at
// itself. Linking and unlinking never allocate, and a value can be moved
// between lists, or a whole range of values spliced, by rewriting a handful
// of pointers.
//
//	type job struct {
//		name string
//		link ilist.Element[*job, queueTag]
//	}
//
//	j := &job{name: "a"}
//	j.link.Value = j
//
//	var q ilist.List[*job, queueTag]
//	q.PushBack(&j.link)
//
// The Tag parameter only distinguishes element types, so one struct may
// embed several elements and sit in several lists at once, one per tag.
//
// A List never owns its values. Dropping the last reference to a list does
// not unlink anything; call Clear when the values outlive the list.
package ilist

// DefaultTag can be used when a type takes part in a single kind of list.
type DefaultTag struct{}

// Element holds the links of one value for lists tagged with Tag.
// The zero value is unlinked.
type Element[T any, Tag any] struct {
	prev, next *Element[T, Tag]

	// Value is the owner of the element, returned by iterators.
	Value T
}

// Linked reports whether e currently sits in a list.
func (e *Element[T, Tag]) Linked() bool {
	return e.prev != nil
}

// Unlink removes e from whatever list it is in. It is a no-op for an
// unlinked element.
func (e *Element[T, Tag]) Unlink() {
	if e.prev == nil {
		return
	}
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev = nil
	e.next = nil
}

// Reset forgets e's links without touching its neighbours. A struct copy of
// a linked element shares the original's neighbours but is not pointed to by
// them, Reset turns such a copy into a clean unlinked element.
func (e *Element[T, Tag]) Reset() {
	e.prev = nil
	e.next = nil
}

// Iterator is a position in a List. Iterators are comparable; two iterators
// are equal when they refer to the same element.
type Iterator[T any, Tag any] struct {
	e *Element[T, Tag]
}

// Next returns the following position.
func (it Iterator[T, Tag]) Next() Iterator[T, Tag] {
	return Iterator[T, Tag]{e: it.e.next}
}

// Prev returns the preceding position.
func (it Iterator[T, Tag]) Prev() Iterator[T, Tag] {
	return Iterator[T, Tag]{e: it.e.prev}
}

// Value returns the value at it. For End it is the zero T.
func (it Iterator[T, Tag]) Value() T {
	return it.e.Value
}

// Element returns the element at it.
func (it Iterator[T, Tag]) Element() *Element[T, Tag] {
	return it.e
}

// List is an intrusive list of T. The zero value is an empty list ready to
// use. A List must not be copied after first use.
type List[T any, Tag any] struct {
	_    noCopy
	root Element[T, Tag]
}

// sentinel returns the fake head, closing the loop on first use.
func (l *List[T, Tag]) sentinel() *Element[T, Tag] {
	if l.root.next == nil {
		l.root.next = &l.root
		l.root.prev = &l.root
	}
	return &l.root
}

// Empty reports whether l has no elements.
func (l *List[T, Tag]) Empty() bool {
	return l.root.next == nil || l.root.next == &l.root
}

// Len counts the elements of l. It walks the list, splicing ranges between
// lists keeps no per-list count.
func (l *List[T, Tag]) Len() int {
	n := 0
	end := l.sentinel()
	for e := end.next; e != end; e = e.next {
		n++
	}
	return n
}

// Begin returns the position of the first element, or End if l is empty.
func (l *List[T, Tag]) Begin() Iterator[T, Tag] {
	return Iterator[T, Tag]{e: l.sentinel().next}
}

// End returns the position one past the last element.
func (l *List[T, Tag]) End() Iterator[T, Tag] {
	return Iterator[T, Tag]{e: l.sentinel()}
}

// Wrap returns the position of e, which must be linked in l.
func (l *List[T, Tag]) Wrap(e *Element[T, Tag]) Iterator[T, Tag] {
	return Iterator[T, Tag]{e: e}
}

// Front returns the first value. l must not be empty.
func (l *List[T, Tag]) Front() T {
	return l.Begin().Value()
}

// Back returns the last value. l must not be empty.
func (l *List[T, Tag]) Back() T {
	return l.End().Prev().Value()
}

// Insert links e right before pos and returns e's position. If e is linked
// anywhere, in l or another list, it is unlinked first.
func (l *List[T, Tag]) Insert(pos Iterator[T, Tag], e *Element[T, Tag]) Iterator[T, Tag] {
	if pos.e != e {
		e.Unlink()
		link(pos.e.prev, e)
		link(e, pos.e)
	}
	return Iterator[T, Tag]{e: e}
}

// PushBack links e at the back of l.
func (l *List[T, Tag]) PushBack(e *Element[T, Tag]) {
	l.Insert(l.End(), e)
}

// PushFront links e at the front of l.
func (l *List[T, Tag]) PushFront(e *Element[T, Tag]) {
	l.Insert(l.Begin(), e)
}

// Erase unlinks the element at pos and returns the position that followed
// it. The element itself is left intact.
func (l *List[T, Tag]) Erase(pos Iterator[T, Tag]) Iterator[T, Tag] {
	next := Iterator[T, Tag]{e: pos.e.next}
	pos.e.Unlink()
	return next
}

// PopBack unlinks the last element. l must not be empty.
func (l *List[T, Tag]) PopBack() {
	l.Erase(l.End().Prev())
}

// PopFront unlinks the first element. l must not be empty.
func (l *List[T, Tag]) PopFront() {
	l.Erase(l.Begin())
}

// Splice moves the range [first, last) out of from and links it before pos
// in l. from may be l itself; pos must not lie inside the range. The cost
// does not depend on the length of the range.
func (l *List[T, Tag]) Splice(pos Iterator[T, Tag], from *List[T, Tag], first, last Iterator[T, Tag]) {
	if first == last || pos == first || pos == last {
		return
	}
	l.sentinel()
	from.sentinel()

	left := first.e.prev
	tail := last.e.prev
	link(pos.e.prev, first.e)
	link(tail, pos.e)
	link(left, last.e)
}

// MoveFrom empties l, then takes over every element of other. other is left
// empty. Neither list needs to be walked.
func (l *List[T, Tag]) MoveFrom(other *List[T, Tag]) {
	if l == other {
		return
	}
	l.Clear()
	if other.Empty() {
		return
	}
	root := l.sentinel()
	link(other.root.prev, root)
	link(root, other.root.next)
	other.root.next = &other.root
	other.root.prev = &other.root
}

// Clear unlinks every element of l.
func (l *List[T, Tag]) Clear() {
	for !l.Empty() {
		l.PopFront()
	}
}

func link[T any, Tag any](first, second *Element[T, Tag]) {
	first.next = second
	second.prev = first
}

// noCopy may be embedded into structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
