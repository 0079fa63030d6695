package helper

// GetTypedValueOf2 asserts the result of a getter to the expected type T.
// ok is false if the getter reports a miss or the value is not a T.
func GetTypedValueOf2[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}
