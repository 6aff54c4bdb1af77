package testing

import (
	"errors"
	"reflect"
	"testing"
)

// Equal asserts that values are deeply equal.
func Equal[T any](t testing.TB, a, b T) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// PanicsWith asserts that f panics with the error want.
func PanicsWith(t testing.TB, want error, f func()) {
	t.Helper()

	defer func() {
		t.Helper()

		r := recover()
		if r == nil {
			t.Fatalf("expected panic with '%v'", want)
		}

		err, ok := r.(error)
		if !ok || !errors.Is(err, want) {
			t.Fatalf("expected panic with '%v', got '%v'", want, r)
		}
	}()

	f()
}
