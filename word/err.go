package word

import (
	"errors"

	"github.com/btern/btern/translate"
)

var f = translate.From

var (
	ErrTritInvalid = errors.New(f("trit value invalid"))
	ErrBctInvalid  = errors.New(f("bct value invalid"))
	ErrOutOfRange  = errors.New(f("value out of range"))
)

// ErrRange reports a value that does not fit in a fixed trit width.
type ErrRange struct {
	Value int64
	Width int
}

func (err ErrRange) Error() string {
	return f("value %v does not fit in %v trits", err.Value, err.Width)
}

func (err ErrRange) Is(other error) bool {
	return other == ErrOutOfRange
}
