package dynarray

import "errors"

// Fatal conditions. They are never returned; they are the values carried by
// the panics an Array raises, so a recovering caller can match with errors.Is.
var (
	// ErrCapacityOverflow reports a region whose byte size cannot be addressed.
	ErrCapacityOverflow = errors.New("dynarray: capacity overflow")
	// ErrIndexOutOfRange reports a Set outside the live prefix.
	ErrIndexOutOfRange = errors.New("dynarray: index out of range")
	// ErrReleased reports use of an Array after Release.
	ErrReleased = errors.New("dynarray: use after Release()")
)
