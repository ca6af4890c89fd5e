package pipe

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Observability constants for the Pipe connector.
const (
	// Metrics.
	PipeProcessedTotal = metricz.Key("pipe.processed.total")
	PipeSuccessesTotal = metricz.Key("pipe.successes.total")
	PipeFailuresTotal  = metricz.Key("pipe.failures.total")
	PipeStepsCompleted = metricz.Key("pipe.steps.completed")
	PipeStepsTotal     = metricz.Key("pipe.steps.total")
	PipeDurationMs     = metricz.Key("pipe.duration.ms")

	// Spans.
	PipeProcessSpan = tracez.Key("pipe.process")
	PipeStepSpan    = tracez.Key("pipe.step")

	// Tags.
	PipeTagStepCount  = tracez.Tag("pipe.step_count")
	PipeTagStepNumber = tracez.Tag("pipe.step_number")
	PipeTagStepName   = tracez.Tag("pipe.step_name")
	PipeTagSuccess    = tracez.Tag("pipe.success")
	PipeTagError      = tracez.Tag("pipe.error")

	// Hook event keys.
	PipeEventStepComplete = hookz.Key("pipe.step_complete")
	PipeEventAllComplete  = hookz.Key("pipe.all_complete")
)

// StepEvent represents a pipeline processing event.
// This is emitted via hookz as individual steps complete and when all steps
// have finished, providing visibility into pipeline progress.
type StepEvent struct {
	Name           Name          // Pipeline name
	StepName       Name          // Name of the step
	StepNumber     int           // Current step number (1-based)
	TotalSteps     int           // Total number of steps
	Success        bool          // Whether the step succeeded
	Error          error         // Error if the step failed
	Duration       time.Duration // How long this step took
	CompletedSteps int           // Number of steps completed (for all_complete)
	TotalDuration  time.Duration // Total time for all steps (for all_complete)
	Timestamp      time.Time     // When the event occurred
}

// Pipe is an ordered chain of steps exposed as one callable value.
// Its input type is the first step's input type and its output type is the
// last step's output type; every intermediate boundary is guaranteed to line
// up by the generic signatures of From and Then.
//
// A Pipe is immutable: Then never modifies an existing pipeline, it returns
// a new one. Invocation runs the steps strictly left to right, synchronously
// on the calling goroutine, stopping at the first step error and returning
// that error verbatim.
//
// A Pipe may be invoked any number of times as long as its steps permit it;
// steps that consume captured resources on first use make the pipeline
// effectively single-use, which is documented per step, not enforced here.
//
// # Observability
//
// Each Pipe carries its own metrics, tracer, and hooks:
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
//   - pipe.step_complete: Fired as each step completes
//   - pipe.all_complete: Fired when every step succeeds
//
// Example with hooks:
//
//	p := pipe.Then(pipe.From("words", split), join)
//
//	p.OnStepComplete(func(ctx context.Context, event pipe.StepEvent) error {
//	    log.Printf("step %d/%d %s took %v",
//	        event.StepNumber, event.TotalSteps, event.StepName, event.Duration)
//	    return nil
//	})
type Pipe[In, Out any] struct {
	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[StepEvent]
	clock   clockz.Clock
	name    Name
	stages  []stage
}

func newPipe[In, Out any](name Name, stages []stage) *Pipe[In, Out] {
	metrics := metricz.New()
	metrics.Counter(PipeProcessedTotal)
	metrics.Counter(PipeSuccessesTotal)
	metrics.Counter(PipeFailuresTotal)
	metrics.Gauge(PipeStepsCompleted)
	metrics.Gauge(PipeStepsTotal)
	metrics.Gauge(PipeDurationMs)

	return &Pipe[In, Out]{
		name:    name,
		stages:  stages,
		metrics: metrics,
		tracer:  tracez.New(),
		hooks:   hookz.New[StepEvent](),
	}
}

// From wraps a single step as the initial pipeline. The pipeline has the
// same input and output types as the step, and invoking it yields exactly
// what invoking the step would yield.
//
// Example:
//
//	split := pipe.Transform("split", func(_ context.Context, s string) []string {
//	    return strings.Split(s, " ")
//	})
//	p := pipe.From("word-pipeline", split)
func From[In, Out any](name Name, step Chainable[In, Out]) *Pipe[In, Out] {
	return newPipe[In, Out](name, []stage{liftStage(step)})
}

// Then appends a step to a pipeline, producing a new pipeline whose output
// type is the step's output type. The step's input type must match the
// pipeline's current output type; the compiler rejects anything else.
//
// Then never mutates its argument - the original pipeline remains valid and
// unchanged, so intermediate pipelines can be kept and extended in several
// directions. Repeated Then calls are the chained-call construction form:
//
//	p := pipe.From("short-words", split)
//	p2 := pipe.Then(p, keepShort)
//	p3 := pipe.Then(p2, join)
//
// Because a Pipe is itself a Chainable, whole pipelines compose the same
// way single steps do:
//
//	whole := pipe.Then(prefix, suffixPipeline)
//
// Then is a free function rather than a method because Go methods cannot
// introduce the new output type parameter.
func Then[In, Mid, Out any](p *Pipe[In, Mid], step Chainable[Mid, Out]) *Pipe[In, Out] {
	stages := slices.Clone(p.stages)
	stages = append(stages, liftStage(step))
	next := newPipe[In, Out](p.name, stages)
	next.clock = p.clock
	return next
}

// Process executes the chain left to right, passing each step's result as
// the next step's input and returning the final result. Step i completes
// fully before step i+1 begins; steps are never skipped or reordered.
//
// Execution is synchronous on the calling goroutine. The context is handed
// to each step for its own use - the composer imposes no cancellation or
// timeout semantics of its own, so a step that hangs leaves the pipeline
// hanging, exactly as if the caller had invoked the steps by hand.
//
// If a step returns an error, execution stops at that step and the error is
// returned to the caller verbatim: never caught, wrapped, or suppressed.
// Step panics propagate as panics for the same reason.
func (p *Pipe[In, Out]) Process(ctx context.Context, input In) (result Out, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	clock := p.getClock()

	p.metrics.Counter(PipeProcessedTotal).Inc()
	p.metrics.Gauge(PipeStepsTotal).Set(float64(len(p.stages)))
	start := clock.Now()

	ctx, span := p.tracer.StartSpan(ctx, PipeProcessSpan)
	span.SetTag(PipeTagStepCount, fmt.Sprintf("%d", len(p.stages)))
	defer func() {
		elapsed := clock.Now().Sub(start)
		p.metrics.Gauge(PipeDurationMs).Set(float64(elapsed.Milliseconds()))

		if err == nil {
			span.SetTag(PipeTagSuccess, "true")
			p.metrics.Counter(PipeSuccessesTotal).Inc()
		} else {
			span.SetTag(PipeTagSuccess, "false")
			span.SetTag(PipeTagError, err.Error())
			p.metrics.Counter(PipeFailuresTotal).Inc()
		}
		span.Finish()
	}()

	var current any = input
	completed := 0

	for i, st := range p.stages {
		stepCtx, stepSpan := p.tracer.StartSpan(ctx, PipeStepSpan)
		stepSpan.SetTag(PipeTagStepNumber, fmt.Sprintf("%d", i+1))
		stepSpan.SetTag(PipeTagStepName, string(st.name))

		stepStart := clock.Now()
		next, stepErr := st.fn(stepCtx, current)
		stepDuration := clock.Now().Sub(stepStart)
		if stepErr != nil {
			stepSpan.SetTag(PipeTagError, stepErr.Error())
		}
		stepSpan.Finish()

		_ = p.hooks.Emit(ctx, PipeEventStepComplete, StepEvent{ //nolint:errcheck
			Name:       p.name,
			StepName:   st.name,
			StepNumber: i + 1,
			TotalSteps: len(p.stages),
			Success:    stepErr == nil,
			Error:      stepErr,
			Duration:   stepDuration,
			Timestamp:  clock.Now(),
		})

		if stepErr != nil {
			// Step failures surface verbatim.
			err = stepErr
			return result, err
		}

		completed++
		p.metrics.Gauge(PipeStepsCompleted).Set(float64(completed))
		current = next
	}

	totalDuration := clock.Now().Sub(start)
	_ = p.hooks.Emit(ctx, PipeEventAllComplete, StepEvent{ //nolint:errcheck
		Name:           p.name,
		TotalSteps:     len(p.stages),
		CompletedSteps: completed,
		Success:        true,
		TotalDuration:  totalDuration,
		Timestamp:      clock.Now(),
	})

	result = current.(Out)
	return result, nil
}

// Name returns the name of this pipeline.
func (p *Pipe[In, Out]) Name() Name {
	return p.name
}

// Len returns the number of steps in the pipeline.
func (p *Pipe[In, Out]) Len() int {
	return len(p.stages)
}

// Steps returns the names of the pipeline's steps in execution order.
func (p *Pipe[In, Out]) Steps() []Name {
	names := make([]Name, len(p.stages))
	for i, st := range p.stages {
		names[i] = st.name
	}
	return names
}

// Metrics returns the metrics registry for this pipeline.
func (p *Pipe[In, Out]) Metrics() *metricz.Registry {
	return p.metrics
}

// Tracer returns the tracer for this pipeline.
func (p *Pipe[In, Out]) Tracer() *tracez.Tracer {
	return p.tracer
}

// WithClock sets a custom clock for event timestamps and duration
// measurement. Returns the pipeline for chaining during setup.
func (p *Pipe[In, Out]) WithClock(clock clockz.Clock) *Pipe[In, Out] {
	p.clock = clock
	return p
}

func (p *Pipe[In, Out]) getClock() clockz.Clock {
	if p.clock == nil {
		return clockz.RealClock
	}
	return p.clock
}

// Close gracefully shuts down observability components.
func (p *Pipe[In, Out]) Close() error {
	if p.tracer != nil {
		p.tracer.Close()
	}
	p.hooks.Close()
	return nil
}

// OnStepComplete registers a handler for when an individual step completes,
// on success or failure. The handler is called asynchronously.
func (p *Pipe[In, Out]) OnStepComplete(handler func(context.Context, StepEvent) error) error {
	_, err := p.hooks.Hook(PipeEventStepComplete, handler)
	return err
}

// OnAllComplete registers a handler for when every step has completed
// successfully. The handler is called asynchronously.
func (p *Pipe[In, Out]) OnAllComplete(handler func(context.Context, StepEvent) error) error {
	_, err := p.hooks.Hook(PipeEventAllComplete, handler)
	return err
}
