// Package dynarray implements a growable, type-generic contiguous array that
// manages its own backing region.
//
// # Overview
//
// An Array reserves a single region of slots for elements of one type,
// tracks how many of those slots hold live values, and doubles the region
// whenever an append finds it full. Unlike a plain slice, the lifecycle of
// the region and of the elements in it is explicit:
//
//   - Slots beyond Len() are never read or exposed
//   - Values removed by Pop belong to the caller
//   - Values overwritten by Set, and all live values at Release, are dropped
//   - Release frees the region exactly once
//
// # Basic Usage
//
//	arr := dynarray.New[int]()
//	defer arr.Release() // Drop elements and free the region
//
//	for i := 0; i < 10; i++ {
//		arr.Push(i)
//	}
//	arr.Set(2, 42)
//
//	v, ok := arr.Get(2)         // 42, true
//	_, ok = arr.Get(100)        // absent, no panic
//
//	for i, p := range arr.All() {
//		fmt.Println(i, *p)
//	}
//
//	for v, ok := arr.Pop(); ok; v, ok = arr.Pop() {
//		fmt.Println(v)
//	}
//
// # Growth
//
// Capacity goes 0, 1, 2, 4, 8 and so on; each step reallocates the region
// and relocates the live elements wholesale. Elements must therefore be safe
// to move by copy: they may not hold pointers into their own slot. Pointers
// obtained from GetMut or an Iterator are invalidated by growth.
//
// # Element Cleanup
//
// Element types that hold resources implement Dropper. The array calls Drop
// on each value it owns when that value is overwritten or when the array is
// released. WithFinalizer additionally arranges for cleanup to run if the
// array is garbage collected without Release.
//
// # Failure Modes
//
// Absence is not an error: Pop, Get and GetMut report false. Programmer
// errors panic with a value matching one of the package sentinels:
//
//   - ErrIndexOutOfRange from Set past the live prefix
//   - ErrReleased from use after Release
//   - ErrCapacityOverflow when a region size cannot be addressed
//
// # Thread Safety
//
// An Array is not safe for concurrent use. Guard it externally if it must be
// shared between goroutines.
//
// # Metrics and Monitoring
//
// Metrics returns a snapshot of the array state:
//
//	m := arr.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Reserved: %d bytes\n", m.Reserved)
//
// For Prometheus, pass instruments at construction:
//
//	in := dynarray.MustNewInstruments(prometheus.DefaultRegisterer, "app", "jobs")
//	arr := dynarray.New[Job](dynarray.WithInstruments(in))
//
// Push and growth are logged at debug level through WithLogger.
package dynarray
