package dynarray

import (
	"fmt"
	"math"
	"runtime"

	"go.uber.org/zap"
)

// Array is a growable contiguous array of T that manages its own region.
// Slots [0, Len()) hold live values; the rest of the region is never exposed.
//
// The zero value is an empty array ready to use. Arrays are not safe for
// concurrent use. Call Release when done, typically with defer.
type Array[T any] struct {
	st      *state[T]
	cleanup runtime.Cleanup
	tracked bool
}

// state is kept apart from Array so a runtime cleanup can own it without
// keeping the Array itself reachable.
type state[T any] struct {
	buf      rawBuffer[T]
	len      int
	growths  int
	released bool
	log      *zap.Logger
	in       *Instruments
}

// New returns an empty array. No memory is reserved until the first Push.
func New[T any](opts ...Option) *Array[T] {
	return newArray[T](0, opts)
}

// WithCapacity returns an empty array with room for exactly n elements.
// n <= 0 behaves like New. It panics with ErrCapacityOverflow if the runtime
// cannot size a region of n slots of T.
func WithCapacity[T any](n int, opts ...Option) *Array[T] {
	return newArray[T](n, opts)
}

func newArray[T any](n int, opts []Option) *Array[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	st := &state[T]{
		buf: newRawBuffer[T](),
		log: o.logger,
		in:  o.instruments,
	}
	if n > 0 {
		st.buf.reserve(n)
	}
	st.in.resize(st.buf.cap, st.buf.sizeBytes(st.buf.cap))

	a := &Array[T]{st: st}
	if o.finalizer {
		a.cleanup = runtime.AddCleanup(a, (*state[T]).destroy, st)
		a.tracked = true
	}
	return a
}

// Push appends v, growing the region first when it is full.
func (a *Array[T]) Push(v T) {
	s := a.live()
	if s.len == s.buf.cap {
		s.grow()
	}
	s.buf.write(s.len, v)
	s.len++

	if ce := s.log.Check(zap.DebugLevel, "push"); ce != nil {
		ce.Write(zap.Int("len", s.len), zap.Int("cap", s.buf.cap))
	}
	s.in.push(s.len)
	runtime.KeepAlive(a)
}

// Pop removes the last element and hands it to the caller.
// It reports false on an empty array.
func (a *Array[T]) Pop() (T, bool) {
	s := a.live()
	if s.len == 0 {
		runtime.KeepAlive(a)
		var zero T
		return zero, false
	}
	s.len--
	v := s.buf.take(s.len)
	s.in.pop(s.len)
	runtime.KeepAlive(a)
	return v, true
}

// Get returns a copy of the element at i, or false if i is not a live index.
func (a *Array[T]) Get(i int) (T, bool) {
	s := a.live()
	if i < 0 || i >= s.len {
		runtime.KeepAlive(a)
		var zero T
		return zero, false
	}
	v := *s.buf.slot(i)
	runtime.KeepAlive(a)
	return v, true
}

// GetMut returns a pointer to the element at i, or false if i is not a live
// index. The pointer is valid until the array next grows or is released,
// and only while the array itself is still reachable.
func (a *Array[T]) GetMut(i int) (*T, bool) {
	s := a.live()
	if i < 0 || i >= s.len {
		runtime.KeepAlive(a)
		return nil, false
	}
	p := s.buf.slot(i)
	runtime.KeepAlive(a)
	return p, true
}

// Set replaces the element at i, dropping the value it overwrites.
// It panics with ErrIndexOutOfRange unless 0 <= i < Len().
func (a *Array[T]) Set(i int, v T) {
	s := a.live()
	if i < 0 || i >= s.len {
		err := fmt.Errorf("%w: index %d, len %d", ErrIndexOutOfRange, i, s.len)
		runtime.KeepAlive(a)
		panic(err)
	}
	p := s.buf.slot(i)
	if dropValue(p) {
		s.in.drop(1)
	}
	*p = v
	runtime.KeepAlive(a)
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int {
	if a.st == nil {
		return 0
	}
	return a.st.len
}

// Cap returns the number of reserved slots.
func (a *Array[T]) Cap() int {
	if a.st == nil {
		return 0
	}
	return a.st.buf.cap
}

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool {
	return a.Len() == 0
}

// Release drops every live element in index order and frees the region.
// Only the first call has any effect; any later use other than Release, Len,
// Cap, IsEmpty or Metrics panics with ErrReleased.
func (a *Array[T]) Release() {
	if a.st == nil {
		a.st = &state[T]{released: true}
		return
	}
	if a.st.released {
		return
	}
	if a.tracked {
		a.cleanup.Stop()
		a.tracked = false
	}
	a.st.destroy()
}

// live returns the state, creating it for a zero-value Array.
// Callers holding the state must keep a alive until they are done with it,
// otherwise a WithFinalizer cleanup may destroy the state mid-call.
func (a *Array[T]) live() *state[T] {
	if a.st == nil {
		a.st = &state[T]{buf: newRawBuffer[T](), log: zap.NewNop()}
	}
	if a.st.released {
		panic(ErrReleased)
	}
	return a.st
}

// grow doubles the capacity, or reserves a single slot when there is none.
func (s *state[T]) grow() {
	from := s.buf.cap
	to := 1
	if from != 0 {
		if from > math.MaxInt/2 {
			panic(fmt.Errorf("%w: cannot double %d slots", ErrCapacityOverflow, from))
		}
		to = from * 2
	}

	if ce := s.log.Check(zap.DebugLevel, "growing capacity"); ce != nil {
		ce.Write(zap.Int("from", from), zap.Int("to", to))
	}

	s.buf.growTo(to)
	s.growths++
	s.in.grow(s.buf.cap, s.buf.sizeBytes(s.buf.cap))
}

// destroy runs element cleanup over the live prefix and frees the region.
func (s *state[T]) destroy() {
	if s.released {
		return
	}
	dropped := 0
	for i := 0; i < s.len; i++ {
		if dropValue(s.buf.slot(i)) {
			dropped++
		}
	}
	s.buf.release()
	s.len = 0
	s.released = true

	s.in.drop(dropped)
	s.in.release()
}
