//go:build !assertions_disabled

package assert

// True asserts that the given value is true.
// If the assertion fails, it panics with a message.
// The optional args can be used to provide a formatted panic message:
// - If the first arg is a string, it's used as a format string with remaining args.
// - Otherwise, all args are included in the panic message.
func True(value bool, args ...any) {
	if value {
		return
	}

	panic(message(args))
}

// NotNil panics when ptr is nil. The args follow the rules of True.
func NotNil[T any](ptr *T, args ...any) {
	True(ptr != nil, args...)
}

// NonEmptySlice panics when slice has no elements. The args follow the rules of True.
func NonEmptySlice[T any](slice []T, args ...any) {
	True(len(slice) > 0, args...)
}
