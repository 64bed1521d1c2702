package pulse

import "unsafe"

// SliceBytes reinterprets the backing array of values as raw bytes.
// The returned slice aliases values.
func SliceBytes[T any](values []T) []byte {
	if len(values) == 0 {
		return nil
	}

	var zeroT T

	n := int(unsafe.Sizeof(zeroT)) * len(values)
	ptr := (*byte)(unsafe.Pointer(unsafe.SliceData(values)))

	return unsafe.Slice(ptr, n)
}
