package domain

import "iter"

// chain is an immutable append-only sequence. Each version points at its
// predecessor, so pushing onto a shared prefix never disturbs other versions.
type chain[T any] struct {
	tail *link[T]
	size int
}

type link[T any] struct {
	val  T
	prev *link[T]
}

func (c chain[T]) push(v T) chain[T] {
	return chain[T]{tail: &link[T]{val: v, prev: c.tail}, size: c.size + 1}
}

// replaceLast returns a chain whose final element is v. The receiver must be non-empty.
func (c chain[T]) replaceLast(v T) chain[T] {
	return chain[T]{tail: &link[T]{val: v, prev: c.tail.prev}, size: c.size}
}

func (c chain[T]) last() T { return c.tail.val }

func (c chain[T]) len() int { return c.size }

// slice materializes the chain in insertion order into a new slice.
func (c chain[T]) slice() []T {
	out := make([]T, c.size)
	i := c.size - 1
	for l := c.tail; l != nil; l = l.prev {
		out[i] = l.val
		i--
	}
	return out
}

func (c chain[T]) all() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range c.slice() {
			if !yield(v) {
				return
			}
		}
	}
}

// equalChains compares two chains element-wise in order.
func equalChains[T any](a, b chain[T], eq func(T, T) bool) bool {
	if a.size != b.size {
		return false
	}
	for la, lb := a.tail, b.tail; la != nil; la, lb = la.prev, lb.prev {
		if la == lb {
			// Shared prefix from here on.
			return true
		}
		if !eq(la.val, lb.val) {
			return false
		}
	}
	return true
}
