package ofxevent

// Field is an optional value. Valid is only true once a value has been supplied, since the zero
// value of most fields is itself legal data.
type Field[T any] struct {
	Value T
	Valid bool
}

// ValidField returns a field holding v.
func ValidField[T any](v T) Field[T] {
	return Field[T]{Value: v, Valid: true}
}

// Set stores v and marks the field valid.
func (f *Field[T]) Set(v T) {
	f.Value = v
	f.Valid = true
}

// Clear resets the field to its zero, invalid state.
func (f *Field[T]) Clear() {
	var zero T
	f.Value = zero
	f.Valid = false
}

// Get returns the value and whether it is valid.
func (f Field[T]) Get() (T, bool) {
	return f.Value, f.Valid
}
