package pipe

import (
	"context"
)

// Effect creates a Step that performs side effects without modifying the
// value. Effect is for operations that need to happen alongside your main
// processing flow, such as logging, recording, notifications, or audit
// trails. The value passes through unchanged, so an Effect step never
// changes the pipeline's type at that position.
//
// The function receives the value for inspection but must not modify it.
// Any returned error stops the pipeline immediately and surfaces verbatim.
//
// Effect is perfect for:
//   - Logging important events or data states
//   - Recording values for later inspection
//   - Sending notifications
//   - Validating without transformation
//
// Unlike Apply, Effect cannot transform the value. Unlike Transform, it can
// fail. This separation keeps side effects explicit and testable.
//
// Example:
//
//	audit := pipe.Effect("audit", func(_ context.Context, words []string) error {
//	    return auditLog.Record(len(words))
//	})
func Effect[T any](name Name, fn func(context.Context, T) error) Step[T, T] {
	return Step[T, T]{
		name: name,
		fn: func(ctx context.Context, value T) (T, error) {
			if err := fn(ctx, value); err != nil {
				var zero T
				return zero, err
			}
			return value, nil
		},
	}
}
