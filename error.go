package pipe

import (
	"errors"
	"fmt"
	"reflect"
)

// Flow construction errors.
var (
	// ErrEmptyFlow is returned when a Flow with no steps is bound or invoked.
	ErrEmptyFlow = errors.New("flow has no steps")
)

// TypeError reports a type mismatch on the Flow surface: a step whose input
// type is not satisfied by what the chain produces at that position, a Bind
// whose endpoint types do not match the flow, or a dynamic input value of
// the wrong runtime type.
//
// This is the only error kind the composer introduces on its own. The static
// From/Then surface has no equivalent - there the compiler rejects the
// mismatched program instead.
//
// Check for it with errors.As:
//
//	if _, err := pipe.Bind[string, string](flow); err != nil {
//	    var typeErr *pipe.TypeError
//	    if errors.As(err, &typeErr) {
//	        log.Printf("step %q wants %v, chain produces %v",
//	            typeErr.Step, typeErr.Want, typeErr.Got)
//	    }
//	}
type TypeError struct {
	Want     reflect.Type // type required at this point in the chain
	Got      reflect.Type // type actually produced or supplied (nil for an untyped nil input)
	Flow     Name         // name of the flow
	Step     Name         // step at which the mismatch was detected
	Position int          // zero-based position of Step in the chain
}

// Error implements the error interface, identifying the flow, the step, and
// the two types that failed to line up.
func (e *TypeError) Error() string {
	return fmt.Sprintf("flow %q: step %q (position %d) requires %v, got %v",
		e.Flow, e.Step, e.Position, e.Want, e.Got)
}
