// Package pipe provides a lightweight, type-safe library for composing single-argument
// transformation steps into one invokable pipeline in Go.
//
// # Overview
//
// pipe chains steps of differing types - A -> B, B -> C, and so on - into a single
// callable value, evaluated strictly left to right. Each step's output becomes the
// next step's input. There is no scheduler, no branching, and no retry logic: the
// library's entire job is ordered, type-safe function composition with first-class
// observability.
//
// # Core Concepts
//
// The library is built around a small, uniform interface:
//
//	type Chainable[In, Out any] interface {
//	    Process(context.Context, In) (Out, error)
//	    Name() Name
//	}
//
// Key components:
//   - Steps: Individual transformations created with adapter functions (Transform, Apply, Effect)
//   - Pipe: The composed pipeline value, built with From and extended with Then
//   - Flow: An alternative sequence-literal construction form with runtime type checking
//
// Both Step and Pipe implement Chainable, so whole pipelines compose into larger
// pipelines exactly like individual steps.
//
// # Adapter Functions
//
// Adapters wrap your functions to implement the Chainable interface:
//
// Transform - Pure transformations that cannot fail:
//
//	split := pipe.Transform("split", func(_ context.Context, s string) []string {
//	    return strings.Split(s, " ")
//	})
//
// Apply - Transformations that can fail:
//
//	parse := pipe.Apply("parse", func(_ context.Context, s string) (int, error) {
//	    return strconv.Atoi(s)
//	})
//
// Effect - Side effects that observe the value without changing it:
//
//	audit := pipe.Effect("audit", func(_ context.Context, n int) error {
//	    return auditLog.Record(n)
//	})
//
// # Two Construction Forms
//
// The chained-call form starts from one step and extends it, each call returning a
// new pipeline. Because Go methods cannot introduce type parameters, extension is
// the free function Then:
//
//	p := pipe.From("short-words", split)
//	p2 := pipe.Then(p, keepShort)
//	p3 := pipe.Then(p2, join)
//
//	result, err := p3.Process(ctx, "foo bar hello world baz")
//	// result: "foo bar baz"
//
// The sequence form declares the input binding type once and lists the steps in
// order. Inter-step type compatibility is validated at construction time with
// reflection, and Bind produces the identical typed pipeline:
//
//	flow := pipe.NewFlow[string]("short-words",
//	    pipe.Use(split),
//	    pipe.Use(keepShort),
//	    pipe.Use(join),
//	)
//	p, err := pipe.Bind[string, string](flow)
//
// The two forms are observably equivalent for the same logical steps.
//
// # Error Semantics
//
// The composer introduces exactly one error kind of its own: *TypeError, reported
// by the Flow surface when adjacent steps, endpoints, or a dynamic input value do
// not line up. On the static surface the compiler rejects the mismatch instead.
//
// Every other failure belongs to the steps. A step error stops execution at the
// failing step and is returned to the caller verbatim - never caught, wrapped, or
// suppressed - exactly as if the caller had invoked the steps by hand. Panics
// propagate as panics.
//
// # Execution Model
//
// Invocation is synchronous on the calling goroutine. Step i completes fully
// before step i+1 begins; steps are never skipped or reordered. The context is
// passed through for the steps' own use - the composer imposes no cancellation or
// timeout semantics of its own. A Pipe is safe to reuse across invocations as
// long as its steps are; a step that consumes a captured resource on first use
// makes its pipeline single-use, which is the step's contract to document.
//
// # Observability
//
// Each Pipe carries its own metrics registry, tracer, and hook source:
//
// Metrics:
//   - pipe.processed.total: Counter of pipeline invocations
//   - pipe.successes.total: Counter of successful completions
//   - pipe.failures.total: Counter of failed invocations
//   - pipe.steps.completed: Gauge of steps completed in the last invocation
//   - pipe.steps.total: Gauge of total steps
//   - pipe.duration.ms: Gauge of total invocation duration
//
// Traces:
//   - pipe.process: Parent span for the entire invocation
//   - pipe.step: Child span for each individual step
//
// Events (via hooks):
//   - pipe.step_complete: Fired as each step completes, success or failure
//   - pipe.all_complete: Fired when every step succeeds
//
// Event timestamps and durations come from an injectable clock (WithClock),
// defaulting to the real clock.
//
// For usage examples, see the example tests.
package pipe
