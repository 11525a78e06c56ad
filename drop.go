package dynarray

// Dropper is implemented by element types that own resources needing
// explicit cleanup. The array calls Drop once for every value it still owns
// when that value is overwritten by Set or when the array is released.
// Values handed out by Pop belong to the caller and are never dropped.
//
// Drop may be declared on T or on *T; the pointer form is preferred so the
// call sees the slot itself. When T is a pointer type, nil elements are
// passed to Drop as well.
type Dropper interface {
	Drop()
}

// dropValue runs element cleanup for the value stored at p, if its type has any.
func dropValue[T any](p *T) bool {
	if d, ok := any(p).(Dropper); ok {
		d.Drop()
		return true
	}
	if d, ok := any(*p).(Dropper); ok {
		d.Drop()
		return true
	}
	return false
}
