package pipe

import (
	"context"
)

// Transform creates a Step that applies a pure transformation to a value.
// Transform is the simplest adapter - use it when your operation always
// succeeds and produces its output in a predictable way. Unlike the other
// adapters it can change the value's type, which is the normal case in a
// pipeline: split a string into words, collect words into a count, and so on.
//
// Transform is ideal for:
//   - Data formatting (uppercase, trimming, splitting)
//   - Mathematical calculations that can't error
//   - Field mapping or restructuring
//   - Shaping a value for the next step
//
// If your transformation might fail (parsing, validation), use Apply instead.
// If you only need to observe the value, use Effect.
//
// Example:
//
//	split := pipe.Transform("split", func(_ context.Context, s string) []string {
//	    return strings.Split(s, " ")
//	})
func Transform[In, Out any](name Name, fn func(context.Context, In) Out) Step[In, Out] {
	return Step[In, Out]{
		name: name,
		fn: func(ctx context.Context, value In) (Out, error) {
			return fn(ctx, value), nil
		},
	}
}
