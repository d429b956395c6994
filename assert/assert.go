// Package assert provides the small set of test assertions used across the
// repo, so tests stay free of repeated if/Errorf boilerplate.
package assert

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"
)

func label(msgAndArgs ...any) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if format, ok := msgAndArgs[0].(string); ok && len(msgAndArgs) > 1 {
		return fmt.Sprintf(format, msgAndArgs[1:]...) + ": "
	}
	return fmt.Sprint(msgAndArgs...) + ": "
}

// Equal fails the test when expected and actual are not deeply equal.
func Equal(t *testing.T, expected, actual any, msgAndArgs ...any) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("%sexpected %v, got %v", label(msgAndArgs...), expected, actual)
	}
}

// NotEqual fails the test when expected and actual are deeply equal.
func NotEqual(t *testing.T, expected, actual any, msgAndArgs ...any) {
	t.Helper()
	if reflect.DeepEqual(expected, actual) {
		t.Errorf("%sexpected values to differ, both were %v", label(msgAndArgs...), actual)
	}
}

// True fails the test when value is false.
func True(t *testing.T, value bool, msgAndArgs ...any) {
	t.Helper()
	if !value {
		t.Errorf("%sexpected true", label(msgAndArgs...))
	}
}

// False fails the test when value is true.
func False(t *testing.T, value bool, msgAndArgs ...any) {
	t.Helper()
	if value {
		t.Errorf("%sexpected false", label(msgAndArgs...))
	}
}

// Nil fails the test when value is non-nil.
func Nil(t *testing.T, value any, msgAndArgs ...any) {
	t.Helper()
	if !isNil(value) {
		t.Errorf("%sexpected nil, got %v", label(msgAndArgs...), value)
	}
}

// NotNil fails the test when value is nil.
func NotNil(t *testing.T, value any, msgAndArgs ...any) {
	t.Helper()
	if isNil(value) {
		t.Errorf("%sexpected non-nil", label(msgAndArgs...))
	}
}

// Len fails the test when the slice, map or string does not have length n.
func Len(t *testing.T, object any, n int, msgAndArgs ...any) {
	t.Helper()
	v := reflect.ValueOf(object)
	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.String, reflect.Array, reflect.Chan:
		if v.Len() != n {
			t.Errorf("%sexpected length %d, got %d", label(msgAndArgs...), n, v.Len())
		}
	default:
		t.Errorf("%scannot take length of %T", label(msgAndArgs...), object)
	}
}

// NoError fails the test when err is non-nil.
func NoError(t *testing.T, err error, msgAndArgs ...any) {
	t.Helper()
	if err != nil {
		t.Errorf("%sunexpected error: %v", label(msgAndArgs...), err)
	}
}

// Error fails the test when err is nil.
func Error(t *testing.T, err error, msgAndArgs ...any) {
	t.Helper()
	if err == nil {
		t.Errorf("%sexpected an error", label(msgAndArgs...))
	}
}

// Contains fails the test when s does not contain substr.
func Contains(t *testing.T, s, substr string, msgAndArgs ...any) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Errorf("%sexpected %q to contain %q", label(msgAndArgs...), s, substr)
	}
}

// InDelta fails the test when actual is not within delta of expected.
func InDelta(t *testing.T, expected, actual, delta float64, msgAndArgs ...any) {
	t.Helper()
	if math.Abs(expected-actual) > delta {
		t.Errorf("%sexpected %v within %v of %v", label(msgAndArgs...), actual, delta, expected)
	}
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	}
	return false
}
