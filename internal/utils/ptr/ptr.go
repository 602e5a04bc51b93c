// Package ptr provides helpers for optional values stored as pointers.
package ptr

// To creates a pointer to the given value.
func To[T any](v T) *T {
	return &v
}

// Deref returns the value p points to, or the zero value when p is nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
