//go:build assertions_disabled

package assert

// True is a no-op when built with the assertions_disabled tag.
func True(value bool, args ...any) {}

// NotNil is a no-op when built with the assertions_disabled tag.
func NotNil[T any](ptr *T, args ...any) {}

// NonEmptySlice is a no-op when built with the assertions_disabled tag.
func NonEmptySlice[T any](slice []T, args ...any) {}
