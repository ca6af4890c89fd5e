package pipe

import (
	"context"
	"errors"
	"strconv"
	"testing"
)

func TestApply(t *testing.T) {
	t.Run("Successful Apply", func(t *testing.T) {
		parse := Apply("parse", func(_ context.Context, s string) (int, error) {
			return strconv.Atoi(s)
		})

		result, err := parse.Process(context.Background(), "42")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != 42 {
			t.Errorf("expected 42, got %d", result)
		}
		if parse.Name() != "parse" {
			t.Errorf("expected name 'parse', got %s", parse.Name())
		}
	})

	t.Run("Error Surfaces Verbatim", func(t *testing.T) {
		errInvalid := errors.New("invalid value")
		reject := Apply("reject", func(_ context.Context, _ string) (string, error) {
			return "", errInvalid
		})

		result, err := reject.Process(context.Background(), "anything")
		if err != errInvalid { //nolint:errorlint
			t.Errorf("expected the original error, got %v", err)
		}
		if result != "" {
			t.Errorf("expected zero value on error, got %s", result)
		}
	})

	t.Run("Stdlib Errors Pass Through", func(t *testing.T) {
		parse := Apply("parse", func(_ context.Context, s string) (int, error) {
			return strconv.Atoi(s)
		})

		_, err := parse.Process(context.Background(), "not a number")
		if err == nil {
			t.Fatal("expected error")
		}
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) {
			t.Errorf("expected *strconv.NumError to survive untouched, got %T", err)
		}
	})
}
