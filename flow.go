package pipe

import (
	"context"
	"reflect"
	"slices"
)

// FlowStep is one step expression in a Flow. Create one with Stage or
// StageErr, or lift any existing Chainable - a Step or a whole Pipe - with
// Use. The same step values can feed both construction forms.
type FlowStep struct {
	stage stage
}

// Stage wraps a pure expression as a flow step. It is shorthand for
// Use(Transform(name, fn)), convenient when steps are written inline rather
// than pre-named:
//
//	flow := pipe.NewFlow[string]("short-words",
//	    pipe.Stage("split", func(_ context.Context, s string) []string {
//	        return strings.Split(s, " ")
//	    }),
//	    pipe.Stage("join", func(_ context.Context, words []string) string {
//	        return strings.Join(words, " ")
//	    }),
//	)
func Stage[In, Out any](name Name, fn func(context.Context, In) Out) FlowStep {
	return Use(Transform(name, fn))
}

// StageErr wraps a fallible expression as a flow step. It is shorthand for
// Use(Apply(name, fn)).
func StageErr[In, Out any](name Name, fn func(context.Context, In) (Out, error)) FlowStep {
	return Use(Apply(name, fn))
}

// Use lifts any Chainable into a flow step.
func Use[In, Out any](step Chainable[In, Out]) FlowStep {
	return FlowStep{stage: liftStage(step)}
}

// Flow is the sequence-literal construction form: declare the input binding
// type once with NewFlow, list the steps in order, then Bind back to the
// typed pipeline the chained-call form would have produced. It exists purely
// for ergonomics when steps are written inline as expressions - the bound
// pipeline behaves identically to one built with From and Then from the
// same steps.
//
// Go has no macros, so where a macro would check the step types during
// expansion, Flow checks them with reflection as steps are appended. The
// first incompatibility is recorded as a sticky *TypeError: further Then
// calls keep the flow inert, and Err, Bind, and Process all report the
// recorded error. Nothing is ever silently coerced.
//
// Like Pipe, a Flow is immutable - Then returns a new Flow.
type Flow struct {
	input  reflect.Type
	err    error
	name   Name
	stages []stage
}

// NewFlow declares a flow with the given name and fixed input type In,
// appending any provided steps in order.
//
//	flow := pipe.NewFlow[string]("short-words",
//	    pipe.Use(split),
//	    pipe.Use(keepShort),
//	    pipe.Use(join),
//	)
func NewFlow[In any](name Name, steps ...FlowStep) *Flow {
	flow := &Flow{
		name:  name,
		input: reflect.TypeFor[In](),
	}
	for _, step := range steps {
		flow = flow.Then(step)
	}
	return flow
}

// Then appends a step to the flow, returning a new Flow; the original is
// not modified. The step's input type must be satisfied by what the chain
// produces at that position - the flow's declared input type when empty,
// the previous step's output type otherwise. A concrete input type must
// match exactly; an interface input type accepts anything implementing it.
// A mismatch makes the new flow carry a *TypeError instead of the step.
func (f *Flow) Then(step FlowStep) *Flow {
	next := &Flow{
		name:   f.name,
		input:  f.input,
		stages: slices.Clone(f.stages),
		err:    f.err,
	}
	if next.err != nil {
		return next
	}

	produced := f.output()
	if !assignable(produced, step.stage.in) {
		next.err = &TypeError{
			Flow:     f.name,
			Step:     step.stage.name,
			Position: len(f.stages),
			Want:     step.stage.in,
			Got:      produced,
		}
		return next
	}

	next.stages = append(next.stages, step.stage)
	return next
}

// Err returns the first type mismatch recorded while building the flow,
// or nil if every step lined up so far.
func (f *Flow) Err() error {
	return f.err
}

// Name returns the name of the flow.
func (f *Flow) Name() Name {
	return f.name
}

// Len returns the number of steps appended so far. A step rejected for a
// type mismatch is not counted.
func (f *Flow) Len() int {
	return len(f.stages)
}

// Steps returns the names of the flow's steps in order.
func (f *Flow) Steps() []Name {
	names := make([]Name, len(f.stages))
	for i, st := range f.stages {
		names[i] = st.name
	}
	return names
}

// Process executes the flow directly with a dynamically typed input. The
// input value's runtime type is validated against the flow's declared input
// type before any step runs; a mismatch is reported as a *TypeError rather
// than coerced. Step errors surface verbatim, as with Pipe.
//
// Process is the escape hatch for callers that only know types at runtime.
// Code that knows its types should Bind the flow and invoke the resulting
// Pipe, which adds metrics, spans, and events around the same steps.
func (f *Flow) Process(ctx context.Context, input any) (any, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.stages) == 0 {
		return nil, ErrEmptyFlow
	}
	if ctx == nil {
		ctx = context.Background()
	}

	got := reflect.TypeOf(input)
	if !assignable(got, f.input) {
		return nil, &TypeError{
			Flow:     f.name,
			Step:     f.stages[0].name,
			Position: 0,
			Want:     f.input,
			Got:      got,
		}
	}

	current := input
	for _, st := range f.stages {
		next, err := st.fn(ctx, current)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

// Bind validates the flow's endpoint types and produces the typed pipeline
// that repeated Then calls on the chained-call form would have produced
// from the same steps. In must match the flow's declared input type and Out
// must be satisfied by the last step's output type - exactly for concrete
// types, by implementation for interface types. A mismatch is reported as a
// *TypeError. A flow that recorded a mismatch while building reports that
// error instead.
func Bind[In, Out any](f *Flow) (*Pipe[In, Out], error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.stages) == 0 {
		return nil, ErrEmptyFlow
	}

	in := reflect.TypeFor[In]()
	if !assignable(in, f.input) {
		return nil, &TypeError{
			Flow:     f.name,
			Step:     f.stages[0].name,
			Position: 0,
			Want:     f.input,
			Got:      in,
		}
	}

	last := len(f.stages) - 1
	out := reflect.TypeFor[Out]()
	if !assignable(f.stages[last].out, out) {
		return nil, &TypeError{
			Flow:     f.name,
			Step:     f.stages[last].name,
			Position: last,
			Want:     out,
			Got:      f.stages[last].out,
		}
	}

	return newPipe[In, Out](f.name, slices.Clone(f.stages)), nil
}

// output is the type the flow currently produces: the declared input type
// when no steps have been appended, the last step's output type otherwise.
func (f *Flow) output() reflect.Type {
	if len(f.stages) == 0 {
		return f.input
	}
	return f.stages[len(f.stages)-1].out
}

// assignable reports whether a value of type got may flow into a position
// requiring type want. The erased stages recover values with type
// assertions, which demand the exact dynamic type for concrete targets, so
// a concrete want requires type identity - a named type and its underlying
// type do not line up here even though Go assignment would convert between
// them. An interface want keeps full Go assignability, since asserting to
// an interface succeeds for any implementing dynamic type. A nil got means
// an untyped nil input, which no step can receive through a type assertion.
func assignable(got, want reflect.Type) bool {
	if got == nil {
		return false
	}
	if want.Kind() == reflect.Interface {
		return got.AssignableTo(want)
	}
	return got == want
}
