package job

import (
	"fmt"
	"strings"
)

// UnknownOptionError is returned when a jobs file contains a key that is not
// in the option table.
type UnknownOptionError struct {
	Option string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option %q; valid options are: %s",
		e.Option, strings.Join(OptionNames(), ", "))
}

// TypeMismatchError is returned when an option value's container shape
// disagrees with the option table.
type TypeMismatchError struct {
	Option   string
	Got      Shape
	Expected Shape
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("option %q: expected %s, got %s", e.Option, e.Expected, e.Got)
}

// MissingTokenError is returned when a template token has no value in the
// substitution context of the current row.
type MissingTokenError struct {
	Token string
}

func (e *MissingTokenError) Error() string {
	return fmt.Sprintf("template token {%s} has no value for this job", e.Token)
}

// MalformedConditionError is returned for a condition token that is not of
// the form name-value.
type MalformedConditionError struct {
	Token string
}

func (e *MalformedConditionError) Error() string {
	return fmt.Sprintf("malformed condition %q: expected name-value", e.Token)
}
