package assembler

import (
	"errors"
	"strconv"
)

var (
	ErrMissingPlaceholder = errors.New("condition has no :name placeholder")
	ErrBindCount          = errors.New("bind names and values differ in count")
	ErrUnknownFormatter   = errors.New("unknown formatter")
)

// BuildError is recorded when a builder call rejects its input. ToSQL returns it.
type BuildError struct {
	Op, Input string
	Err       error
}

func (e *BuildError) Error() string {
	return e.Op + " " + strconv.Quote(e.Input) + ": " + e.Err.Error()
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
