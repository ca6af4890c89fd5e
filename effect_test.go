package pipe

import (
	"context"
	"errors"
	"testing"
)

func TestEffect(t *testing.T) {
	t.Run("Value Passes Through", func(t *testing.T) {
		var seen []int
		record := Effect("record", func(_ context.Context, n int) error {
			seen = append(seen, n)
			return nil
		})

		result, err := record.Process(context.Background(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != 7 {
			t.Errorf("expected value unchanged, got %d", result)
		}
		if len(seen) != 1 || seen[0] != 7 {
			t.Errorf("expected side effect to observe 7, got %v", seen)
		}
	})

	t.Run("Error Stops The Value", func(t *testing.T) {
		errVeto := errors.New("veto")
		veto := Effect("veto", func(_ context.Context, _ string) error {
			return errVeto
		})

		result, err := veto.Process(context.Background(), "payload")
		if err != errVeto { //nolint:errorlint
			t.Errorf("expected the original error, got %v", err)
		}
		if result != "" {
			t.Errorf("expected zero value on error, got %s", result)
		}
	})
}
