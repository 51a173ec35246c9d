package multistep

import (
	"errors"
	"fmt"
)

// ErrPolicyRequired is returned by New when a named-key form is missing its
// OnNext or OnPrevious function.
var ErrPolicyRequired = errors.New("the onNext and onPrevious functions are required when using non-numeric step keys")

// UnknownStepError is raised when the current key does not resolve to a step.
type UnknownStepError struct {
	Key any
}

func (e *UnknownStepError) Error() string {
	return fmt.Sprintf("step %v is not defined", e.Key)
}

// MisuseError is raised when Use is called outside a Form's step context.
type MisuseError struct {
	Reason string
}

func (e *MisuseError) Error() string {
	msg := "multistep.Use() must be used within a multistep.Form"
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}
