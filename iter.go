package dynarray

import "iter"

// Iterator walks the live elements of an Array from index 0 upward.
// It checks the array length at every step rather than taking a snapshot;
// the array must not be pushed to, popped or released while iterating.
type Iterator[T any] struct {
	arr *Array[T]
	idx int
}

// Iter returns a new iterator positioned before the first element.
func (a *Array[T]) Iter() *Iterator[T] {
	return &Iterator[T]{arr: a}
}

// Next returns a pointer to the next element, or false once the live
// elements are exhausted.
func (it *Iterator[T]) Next() (*T, bool) {
	p, ok := it.arr.GetMut(it.idx)
	if !ok {
		return nil, false
	}
	it.idx++
	return p, true
}

// Index returns the index of the element most recently returned by Next,
// or -1 before the first call.
func (it *Iterator[T]) Index() int {
	return it.idx - 1
}

// All returns a sequence of index and element pointer pairs.
//
//	for i, p := range arr.All() {
//		fmt.Println(i, *p)
//	}
func (a *Array[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		it := a.Iter()
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(it.Index(), p) {
				return
			}
		}
	}
}

// Values returns a sequence of element copies.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := a.Iter()
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(*p) {
				return
			}
		}
	}
}
