package emulator

import (
	"errors"

	"github.com/sis16/svm/translate"
)

var f = translate.From

var (
	ErrPulseLimit = errors.New(f("pulse limit reached"))
)

// ErrRuntime indicates the clock pulse of a runtime error.
type ErrRuntime struct {
	Pulse int
	Err   error
}

func (err *ErrRuntime) Error() string {
	return f("pulse %v %v", err.Pulse, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
