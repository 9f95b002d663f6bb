package emath

import "errors"

// Sentinels shared by every package in this module; wrap them with %w.
var(
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEmptyInput      = errors.New("empty input")
)
