package util

import (
	"encoding/json"
	"fmt"
	"reflect"
	"testing"
)

// AreEqualJSON reports whether two strings parse to the same JSON
// document, ignoring formatting and key order.
func AreEqualJSON(s1, s2 string) (bool, error) {
	var o1 interface{}
	var o2 interface{}

	if err := json.Unmarshal([]byte(s1), &o1); err != nil {
		return false, fmt.Errorf("error parsing string 1: %s", err.Error())
	}
	if err := json.Unmarshal([]byte(s2), &o2); err != nil {
		return false, fmt.Errorf("error parsing string 2: %s", err.Error())
	}

	return reflect.DeepEqual(o1, o2), nil
}

// AssertError fails the test if the actual error doesn't match the
// expected error string ("" meaning success expected). Returns true if
// an error was expected and matched, i.e. the case is finished.
func AssertError(t *testing.T, caseIdx int, expected string, err error) bool {
	t.Helper()
	if err != nil {
		if expected == "" {
			t.Fatalf(`case %d: expected success; got error "%s"`, caseIdx, err.Error())
			return false
		}
		if err.Error() != expected {
			t.Fatalf(`case %d: expected error "%s"; got "%s"`, caseIdx, expected, err.Error())
			return false
		}
		return true
	}
	if expected != "" {
		t.Fatalf(`case %d: expected error "%s"; got success`, caseIdx, expected)
		return false
	}
	return false
}
