package dynarray

import (
	"fmt"
	"math"
	"runtime"
	"unsafe"
)

// rawBuffer owns one contiguous region of slots for elements of type T.
// It knows nothing about which slots are live; Array tracks that.
// All pointer arithmetic in the package is confined to this type.
type rawBuffer[T any] struct {
	ptr      unsafe.Pointer // first slot, nil when cap == 0
	cap      int            // slots reserved
	elemSize uintptr
	align    uintptr
}

func newRawBuffer[T any]() rawBuffer[T] {
	var zero T
	return rawBuffer[T]{
		elemSize: unsafe.Sizeof(zero),
		align:    unsafe.Alignof(zero),
	}
}

// reserve allocates a fresh region of exactly n slots.
// The buffer must not already own a region.
func (b *rawBuffer[T]) reserve(n int) {
	if b.ptr != nil {
		panic("dynarray: reserve on an allocated buffer")
	}
	b.ptr = b.allocate(n)
	b.cap = n
}

// growTo relocates the region into a new one of n slots. The first b.cap
// slots keep their contents at the same offsets. With no region yet this is
// a plain reserve.
func (b *rawBuffer[T]) growTo(n int) {
	if n <= b.cap {
		return
	}
	if b.ptr == nil {
		b.reserve(n)
		return
	}
	ptr := b.allocate(n)
	// Typed copy so the collector sees pointer writes into the new region.
	copy(unsafe.Slice((*T)(ptr), n), b.slots())
	// Swap both together only once the new region is populated.
	b.ptr, b.cap = ptr, n
}

// release zeroes and drops the region. Safe to call on an empty buffer.
func (b *rawBuffer[T]) release() {
	if b.ptr != nil {
		clear(b.slots())
	}
	b.ptr = nil
	b.cap = 0
}

// slot returns the address of slot i. The caller guarantees 0 <= i < b.cap.
func (b *rawBuffer[T]) slot(i int) *T {
	return (*T)(unsafe.Add(b.ptr, uintptr(i)*b.elemSize))
}

// write stores v into slot i without reading the old contents.
func (b *rawBuffer[T]) write(i int, v T) {
	*b.slot(i) = v
}

// take moves the value out of slot i and leaves the slot zeroed.
func (b *rawBuffer[T]) take(i int) T {
	p := b.slot(i)
	v := *p
	var zero T
	*p = zero
	return v
}

// slots views the whole region as a slice. Nil when nothing is reserved.
func (b *rawBuffer[T]) slots() []T {
	if b.ptr == nil {
		return nil
	}
	return unsafe.Slice((*T)(b.ptr), b.cap)
}

// sizeBytes returns the byte size of n slots, padded to the element alignment.
func (b *rawBuffer[T]) sizeBytes(n int) int {
	return int(alignUp(uintptr(n)*b.elemSize, b.align))
}

// allocate returns the first slot of a zeroed region of n slots. The region
// is typed Go memory, so element pointers stay visible to the collector and
// the interior pointer keeps the whole region alive.
func (b *rawBuffer[T]) allocate(n int) unsafe.Pointer {
	if n <= 0 {
		panic(fmt.Errorf("%w: %d slots", ErrCapacityOverflow, n))
	}
	if b.elemSize > 0 && uintptr(n) > uintptr(math.MaxInt)/b.elemSize {
		panic(fmt.Errorf("%w: %d slots of %d bytes", ErrCapacityOverflow, n, b.elemSize))
	}
	return unsafe.Pointer(unsafe.SliceData(makeRegion[T](n, b.elemSize)))
}

// makeRegion allocates n slots. The runtime rejects lengths beyond its
// allocation limit with a recoverable makeslice error, which is reported as
// ErrCapacityOverflow like any other unaddressable size.
func makeRegion[T any](n int, elemSize uintptr) (region []T) {
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			panic(fmt.Errorf("%w: %d slots of %d bytes: %v", ErrCapacityOverflow, n, elemSize, re))
		}
	}()
	return make([]T, n)
}

// alignUp rounds off up to a multiple of align, which must be a power of two.
func alignUp(off, align uintptr) uintptr {
	mask := align - 1
	return (off + mask) & ^mask
}
