package dynarray

// SizeInUse returns the number of bytes occupied by live elements.
func (a *Array[T]) SizeInUse() int {
	if a.st == nil {
		return 0
	}
	return a.st.len * int(a.st.buf.elemSize)
}

// Reserved returns the number of bytes reserved for all slots.
func (a *Array[T]) Reserved() int {
	if a.st == nil {
		return 0
	}
	return a.st.buf.sizeBytes(a.st.buf.cap)
}

// Utilization returns the ratio of live elements to reserved slots (0.0 to 1.0).
// Returns 0.0 if nothing is reserved.
func (a *Array[T]) Utilization() float64 {
	c := a.Cap()
	if c == 0 {
		return 0
	}
	return float64(a.Len()) / float64(c)
}

// Growths returns how many times the region has been reallocated.
func (a *Array[T]) Growths() int {
	if a.st == nil {
		return 0
	}
	return a.st.growths
}

// Metrics returns a snapshot of array statistics.
func (a *Array[T]) Metrics() ArrayMetrics {
	var elemSize int
	if a.st != nil {
		elemSize = int(a.st.buf.elemSize)
	}
	return ArrayMetrics{
		Len:         a.Len(),
		Capacity:    a.Cap(),
		ElemSize:    elemSize,
		SizeInUse:   a.SizeInUse(),
		Reserved:    a.Reserved(),
		Growths:     a.Growths(),
		Utilization: a.Utilization(),
	}
}

// ArrayMetrics contains statistical information about an array.
type ArrayMetrics struct {
	Len         int     // Live elements
	Capacity    int     // Reserved slots
	ElemSize    int     // Bytes per slot
	SizeInUse   int     // Bytes held by live elements
	Reserved    int     // Bytes reserved for all slots
	Growths     int     // Reallocations so far
	Utilization float64 // Ratio of Len to Capacity (0.0-1.0)
}
