package io

import (
	"errors"

	"github.com/sis16/svm/translate"
)

var f = translate.From

var (
	// Port errors
	ErrPortClosed = errors.New(f("port closed"))
	ErrPortFull   = errors.New(f("port full"))
)
