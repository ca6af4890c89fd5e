package pipe

import (
	"context"
	"strings"
	"testing"
)

func TestTransform(t *testing.T) {
	t.Run("Basic Transform", func(t *testing.T) {
		toUpper := Transform("to-upper", func(_ context.Context, s string) string {
			return strings.ToUpper(s)
		})

		result, err := toUpper.Process(context.Background(), "hello")
		if err != nil {
			t.Fatalf("transform should not return error: %v", err)
		}
		if result != "HELLO" {
			t.Errorf("expected HELLO, got %s", result)
		}
		if toUpper.Name() != "to-upper" {
			t.Errorf("expected name 'to-upper', got %s", toUpper.Name())
		}
	})

	t.Run("Changes Type", func(t *testing.T) {
		count := Transform("count", func(_ context.Context, words []string) int {
			return len(words)
		})

		result, err := count.Process(context.Background(), []string{"a", "b", "c"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != 3 {
			t.Errorf("expected 3, got %d", result)
		}
	})

	t.Run("Never Returns Error", func(t *testing.T) {
		divider := Transform("divide", func(_ context.Context, n int) int {
			if n == 0 {
				return 0 // Transform can't return error, must handle internally
			}
			return 100 / n
		})

		result, err := divider.Process(context.Background(), 0)
		if err != nil {
			t.Fatalf("transform should never return error: %v", err)
		}
		if result != 0 {
			t.Errorf("expected 0, got %d", result)
		}
	})

	t.Run("Context Aware", func(t *testing.T) {
		transformer := Transform("context-aware", func(ctx context.Context, s string) string {
			select {
			case <-ctx.Done():
				return "canceled"
			default:
				return s + "_processed"
			}
		})

		result, err := transformer.Process(context.Background(), "test")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != "test_processed" {
			t.Errorf("expected test_processed, got %s", result)
		}
	})
}
