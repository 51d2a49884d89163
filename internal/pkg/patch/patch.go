package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Optional resolves a patch field for an optional (pointer) target.
// A nil field keeps current; a field pointing at the zero value clears it.
func Optional[T comparable](field *T, current *T) *T {
	if field == nil {
		return current
	}
	var zero T
	if *field == zero {
		return nil
	}
	v := *field
	return &v
}
