package pipe

import (
	"context"
	"reflect"
)

// Chainable defines the interface for any component that transforms a value
// of type In into a value of type Out. This is the foundation of pipe - every
// step and every composed pipeline implements this interface, enabling
// seamless composition while maintaining type safety through Go generics.
//
// Key design principles:
//   - Context support, passed through to steps for their own use
//   - Type safety through generics on both the input and output side
//   - Fail-fast error propagation, with step errors surfaced verbatim
//   - Immutable by convention (composition returns new values)
//   - Named components for debugging and monitoring
type Chainable[In, Out any] interface {
	Process(context.Context, In) (Out, error)
	Name() Name
}

// Name is a type alias for step and pipeline names.
// Using this type encourages storing names as constants rather than
// using inline strings throughout your code.
//
// Example:
//
//	const (
//	    SplitWordsName Name = "split-words"
//	    JoinWordsName  Name = "join-words"
//	)
//
//	split := pipe.Transform(SplitWordsName, splitFunc)
type Name = string

// Step is a single named transformation from In to Out, the basic building
// block created by the adapter functions Transform, Apply, and Effect.
//
// The fn field is intentionally private so that steps are only created
// through the adapters, keeping the success and failure conventions uniform.
// The name appears in span tags and step events to identify exactly where
// time is spent or where a failure occurred.
//
// Best practices for step names:
//   - Use descriptive, action-oriented names ("split-words", not "words")
//   - Keep names concise but meaningful
//   - Use consistent naming conventions across your application
type Step[In, Out any] struct {
	fn   func(context.Context, In) (Out, error)
	name Name
}

// Process implements the Chainable interface, allowing individual steps
// to be invoked directly or composed into pipelines.
func (s Step[In, Out]) Process(ctx context.Context, value In) (Out, error) {
	return s.fn(ctx, value)
}

// Name returns the name of the step for debugging and observability.
func (s Step[In, Out]) Name() Name {
	return s.name
}

// stage is the type-erased record of one step inside a pipeline. Pipelines
// change type from step to step, so the chain is stored erased; the generic
// signatures of From, Then, and Bind carry the proof that adjacent stages
// line up, and the reflect endpoints exist for the Flow surface's runtime
// checks.
type stage struct {
	fn   func(context.Context, any) (any, error)
	in   reflect.Type
	out  reflect.Type
	name Name
}

// liftStage erases a Chainable into a stage. The assertion inside the
// closure cannot fail on values admitted by the construction-time checks.
func liftStage[In, Out any](step Chainable[In, Out]) stage {
	return stage{
		name: step.Name(),
		in:   reflect.TypeFor[In](),
		out:  reflect.TypeFor[Out](),
		fn: func(ctx context.Context, value any) (any, error) {
			out, err := step.Process(ctx, value.(In))
			return out, err
		},
	}
}
