package pipe

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestTypeError_Message(t *testing.T) {
	err := &TypeError{
		Flow:     "short-words",
		Step:     "join",
		Position: 2,
		Want:     reflect.TypeFor[[]string](),
		Got:      reflect.TypeFor[int](),
	}

	msg := err.Error()
	for _, part := range []string{"short-words", "join", "position 2", "[]string", "int"} {
		if !strings.Contains(msg, part) {
			t.Errorf("expected message to contain %q, got %q", part, msg)
		}
	}
}

func TestTypeError_NilGot(t *testing.T) {
	err := &TypeError{
		Flow: "dynamic",
		Step: "split",
		Want: reflect.TypeFor[string](),
	}

	if !strings.Contains(err.Error(), "<nil>") {
		t.Errorf("expected nil got type to render as <nil>, got %q", err.Error())
	}
}

func TestTypeError_ErrorsAs(t *testing.T) {
	var err error = &TypeError{Flow: "f", Step: "s"}

	var typeErr *TypeError
	if !errors.As(err, &typeErr) {
		t.Fatal("expected errors.As to match *TypeError")
	}
	if typeErr.Flow != "f" {
		t.Errorf("expected flow 'f', got %s", typeErr.Flow)
	}
}
