package emulator

import (
	"errors"

	"github.com/btern/btern/translate"
)

var f = translate.From

var (
	// Image errors
	ErrImageTrit      = errors.New(f("image byte is not a trit"))
	ErrImageTruncated = errors.New(f("image truncated mid-word"))
)

// ErrRuntime indicates the location of a runtime fault.
type ErrRuntime struct {
	Pc  int
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("pc %d %v", err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
