package pipe

import (
	"context"
)

// Apply creates a Step from a function that transforms a value and may return
// an error. Apply is the workhorse adapter - use it when your transformation
// might fail due to validation, parsing, or business rule violations.
//
// The function receives a context for the step's own use. On error, the
// pipeline stops at this step and the error is returned to the caller
// verbatim - the composer never wraps or suppresses step failures.
//
// Apply is ideal for:
//   - Parsing operations that might fail
//   - Data validation with transformation
//   - Lookups that shape data for the next step
//   - Business rule enforcement
//
// For pure transformations that can't fail, use Transform.
//
// Example:
//
//	parse := pipe.Apply("parse", func(_ context.Context, raw string) (Config, error) {
//	    var cfg Config
//	    if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
//	        return Config{}, fmt.Errorf("invalid JSON: %w", err)
//	    }
//	    return cfg, nil
//	})
func Apply[In, Out any](name Name, fn func(context.Context, In) (Out, error)) Step[In, Out] {
	return Step[In, Out]{
		name: name,
		fn:   fn,
	}
}
