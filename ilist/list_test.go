package ilist_test

import (
	"slices"
	"testing"

	"github.com/delaneyj/turnsignal/ilist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	primaryTag   struct{}
	secondaryTag struct{}
)

type item struct {
	name      string
	primary   ilist.Element[*item, primaryTag]
	secondary ilist.Element[*item, secondaryTag]
}

type itemList = ilist.List[*item, primaryTag]

func newItems(names ...string) []*item {
	items := make([]*item, len(names))
	for i, name := range names {
		it := &item{name: name}
		it.primary.Value = it
		it.secondary.Value = it
		items[i] = it
	}
	return items
}

func names(l *itemList) []string {
	var out []string
	for it := range l.All() {
		out = append(out, it.name)
	}
	return out
}

func fill(l *itemList, items ...*item) {
	for _, it := range items {
		l.PushBack(&it.primary)
	}
}

func TestZeroValue(t *testing.T) {
	var l itemList
	assert.True(t, l.Empty())
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, l.End(), l.Begin())
	assert.Nil(t, l.End().Value())
	require.NoError(t, l.Verify())
}

func TestPushPop(t *testing.T) {
	var l itemList
	items := newItems("a", "b", "c")

	l.PushBack(&items[1].primary)
	l.PushBack(&items[2].primary)
	l.PushFront(&items[0].primary)
	require.NoError(t, l.Verify())
	assert.Equal(t, []string{"a", "b", "c"}, names(&l))
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, "a", l.Front().name)
	assert.Equal(t, "c", l.Back().name)

	l.PopFront()
	assert.False(t, items[0].primary.Linked())
	assert.Equal(t, []string{"b", "c"}, names(&l))

	l.PopBack()
	assert.False(t, items[2].primary.Linked())
	assert.Equal(t, []string{"b"}, names(&l))
	require.NoError(t, l.Verify())

	l.PopBack()
	assert.True(t, l.Empty())
	require.NoError(t, l.Verify())
}

func TestInsert(t *testing.T) {
	t.Run("before position", func(t *testing.T) {
		var l itemList
		items := newItems("a", "b", "c")
		fill(&l, items[0], items[2])

		pos := l.Insert(l.Wrap(&items[2].primary), &items[1].primary)
		assert.Equal(t, "b", pos.Value().name)
		assert.Equal(t, []string{"a", "b", "c"}, names(&l))
		require.NoError(t, l.Verify())
	})

	t.Run("before itself is a no-op", func(t *testing.T) {
		var l itemList
		items := newItems("a", "b")
		fill(&l, items...)

		l.Insert(l.Wrap(&items[1].primary), &items[1].primary)
		assert.Equal(t, []string{"a", "b"}, names(&l))
		require.NoError(t, l.Verify())
	})

	t.Run("re-homes a linked element", func(t *testing.T) {
		var a, b itemList
		items := newItems("x", "y", "z")
		fill(&a, items[0], items[1])
		fill(&b, items[2])

		b.PushFront(&items[1].primary)
		assert.Equal(t, []string{"x"}, names(&a))
		assert.Equal(t, []string{"y", "z"}, names(&b))
		require.NoError(t, a.Verify())
		require.NoError(t, b.Verify())
	})

	t.Run("moves within the same list", func(t *testing.T) {
		var l itemList
		items := newItems("a", "b", "c")
		fill(&l, items...)

		l.PushFront(&items[2].primary)
		assert.Equal(t, []string{"c", "a", "b"}, names(&l))
		require.NoError(t, l.Verify())
	})
}

func TestErase(t *testing.T) {
	var l itemList
	items := newItems("a", "b", "c")
	fill(&l, items...)

	next := l.Erase(l.Wrap(&items[1].primary))
	assert.Equal(t, "c", next.Value().name)
	assert.False(t, items[1].primary.Linked())
	assert.Equal(t, "b", items[1].name)
	assert.Equal(t, []string{"a", "c"}, names(&l))

	next = l.Erase(next)
	assert.Equal(t, l.End(), next)
	require.NoError(t, l.Verify())
}

func TestIterators(t *testing.T) {
	var l itemList
	items := newItems("a", "b", "c")
	fill(&l, items...)

	var forward, backward []string
	for it := l.Begin(); it != l.End(); it = it.Next() {
		forward = append(forward, it.Value().name)
	}
	for it := l.End().Prev(); it != l.End(); it = it.Prev() {
		backward = append(backward, it.Value().name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, forward)
	assert.Equal(t, []string{"c", "b", "a"}, backward)

	var seq []string
	for it := range l.Backward() {
		seq = append(seq, it.name)
	}
	assert.Equal(t, backward, seq)

	assert.Equal(t, &items[1].primary, l.Wrap(&items[1].primary).Element())
	assert.Equal(t, l.Wrap(&items[1].primary), l.Begin().Next())
}

func TestAllToleratesUnlinkingCurrent(t *testing.T) {
	var l itemList
	items := newItems("a", "b", "c", "d")
	fill(&l, items...)

	var visited []string
	for it := range l.All() {
		visited = append(visited, it.name)
		it.primary.Unlink()
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, visited)
	assert.True(t, l.Empty())
}

func TestAllStopsEarly(t *testing.T) {
	var l itemList
	fill(&l, newItems("a", "b", "c")...)

	var visited []string
	for it := range l.All() {
		visited = append(visited, it.name)
		if it.name == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, visited)
}

func TestSplice(t *testing.T) {
	/*
		a: 1 2 3 4 5
		b: x y
		move [2, 5) before y
		a: 1 5
		b: x 2 3 4 y
	*/
	t.Run("between lists", func(t *testing.T) {
		var a, b itemList
		nums := newItems("1", "2", "3", "4", "5")
		letters := newItems("x", "y")
		fill(&a, nums...)
		fill(&b, letters...)

		b.Splice(b.Wrap(&letters[1].primary), &a, a.Wrap(&nums[1].primary), a.Wrap(&nums[4].primary))

		assert.Equal(t, []string{"1", "5"}, names(&a))
		assert.Equal(t, []string{"x", "2", "3", "4", "y"}, names(&b))
		require.NoError(t, a.Verify())
		require.NoError(t, b.Verify())
	})

	t.Run("whole list to end", func(t *testing.T) {
		var a, b itemList
		nums := newItems("1", "2", "3")
		fill(&a, nums...)
		fill(&b, newItems("x")...)

		b.Splice(b.End(), &a, a.Begin(), a.End())

		assert.True(t, a.Empty())
		assert.Equal(t, []string{"x", "1", "2", "3"}, names(&b))
		require.NoError(t, a.Verify())
		require.NoError(t, b.Verify())
	})

	t.Run("into empty list", func(t *testing.T) {
		var a, b itemList
		fill(&a, newItems("1", "2", "3")...)

		b.Splice(b.End(), &a, a.Begin().Next(), a.End())

		assert.Equal(t, []string{"1"}, names(&a))
		assert.Equal(t, []string{"2", "3"}, names(&b))
		require.NoError(t, a.Verify())
		require.NoError(t, b.Verify())
	})

	t.Run("within one list", func(t *testing.T) {
		var l itemList
		items := newItems("1", "2", "3", "4", "5")
		fill(&l, items...)

		l.Splice(l.Begin(), &l, l.Wrap(&items[3].primary), l.End())
		assert.Equal(t, []string{"4", "5", "1", "2", "3"}, names(&l))
		require.NoError(t, l.Verify())

		l.Splice(l.Wrap(&items[0].primary).Prev(), &l, l.Wrap(&items[0].primary), l.Wrap(&items[2].primary))
		assert.Equal(t, []string{"4", "1", "2", "5", "3"}, names(&l))
		require.NoError(t, l.Verify())
	})

	t.Run("degenerate ranges are no-ops", func(t *testing.T) {
		var l itemList
		items := newItems("1", "2", "3")
		fill(&l, items...)
		first, last := l.Begin(), l.Wrap(&items[2].primary)

		l.Splice(l.End(), &l, first, first)
		l.Splice(first, &l, first, last)
		l.Splice(last, &l, first, last)
		assert.Equal(t, []string{"1", "2", "3"}, names(&l))
		require.NoError(t, l.Verify())
	})
}

func TestMoveFrom(t *testing.T) {
	var a, b itemList
	nums := newItems("1", "2", "3")
	old := newItems("x")
	fill(&a, nums...)
	fill(&b, old...)

	b.MoveFrom(&a)
	assert.True(t, a.Empty())
	assert.False(t, old[0].primary.Linked())
	assert.Equal(t, []string{"1", "2", "3"}, names(&b))
	require.NoError(t, a.Verify())
	require.NoError(t, b.Verify())

	b.MoveFrom(&b)
	assert.Equal(t, []string{"1", "2", "3"}, names(&b))

	var empty itemList
	b.MoveFrom(&empty)
	assert.True(t, b.Empty())
	for _, it := range nums {
		assert.False(t, it.primary.Linked())
	}
}

func TestClear(t *testing.T) {
	var l itemList
	items := newItems("a", "b", "c")
	fill(&l, items...)

	l.Clear()
	assert.True(t, l.Empty())
	for _, it := range items {
		assert.False(t, it.primary.Linked())
	}

	fill(&l, items[1])
	assert.Equal(t, []string{"b"}, names(&l))
}

func TestIndependentTags(t *testing.T) {
	var primary itemList
	var secondary ilist.List[*item, secondaryTag]
	items := newItems("a", "b", "c")

	for _, it := range items {
		primary.PushBack(&it.primary)
		secondary.PushFront(&it.secondary)
	}
	primary.Erase(primary.Wrap(&items[1].primary))

	var back []string
	for it := range secondary.All() {
		back = append(back, it.name)
	}
	assert.Equal(t, []string{"a", "c"}, names(&primary))
	assert.Equal(t, []string{"c", "b", "a"}, back)
	assert.True(t, items[1].secondary.Linked())
}

func TestElementResetAfterCopy(t *testing.T) {
	var l itemList
	items := newItems("a", "b", "c")
	fill(&l, items...)

	dup := *items[1]
	dup.primary.Reset()
	assert.False(t, dup.primary.Linked())
	dup.primary.Unlink()

	assert.Equal(t, []string{"a", "b", "c"}, names(&l))
	require.NoError(t, l.Verify())
}

func TestUnlinkIsIdempotent(t *testing.T) {
	var l itemList
	items := newItems("a", "b")
	fill(&l, items...)

	items[0].primary.Unlink()
	items[0].primary.Unlink()
	assert.Equal(t, []string{"b"}, names(&l))
	require.NoError(t, l.Verify())
}

func TestRandomOperationsKeepInvariant(t *testing.T) {
	var a, b itemList
	items := newItems("0", "1", "2", "3", "4", "5", "6", "7", "8", "9")

	// deterministic pseudo-random walk over the public operations
	seed := uint32(7)
	next := func(n int) int {
		seed = seed*1664525 + 1013904223
		return int(seed>>16) % n
	}
	lists := []*itemList{&a, &b}
	for i := 0; i < 2000; i++ {
		l := lists[next(2)]
		it := items[next(len(items))]
		switch next(5) {
		case 0:
			l.PushBack(&it.primary)
		case 1:
			l.PushFront(&it.primary)
		case 2:
			it.primary.Unlink()
		case 3:
			if !l.Empty() {
				other := lists[next(2)]
				if other != l {
					other.Splice(other.Begin(), l, l.Begin(), l.End())
				}
			}
		case 4:
			if it.primary.Linked() && l.Len() > 0 {
				l.Insert(l.Begin(), &it.primary)
			}
		}
		require.NoError(t, a.Verify())
		require.NoError(t, b.Verify())
	}

	all := append(names(&a), names(&b)...)
	linked := 0
	for _, it := range items {
		if it.primary.Linked() {
			linked++
		}
	}
	assert.Len(t, all, linked)
	slices.Sort(all)
	assert.Equal(t, len(all), len(slices.Compact(all)))
}
