package microcode

import (
	"errors"

	"github.com/sis16/svm/translate"
)

var f = translate.From

var (
	ErrScript  = errors.New(f("microcode script"))
	ErrNoFetch = errors.New(f("fetch prefix missing"))
)
