package core

import (
	"errors"
	"fmt"
)

// ErrNotImplemented is returned by operations that exist as contract
// placeholders only (install, remove, update, check-update). Callers can
// distinguish "not built yet" from "ran and did nothing".
var ErrNotImplemented = errors.New("not implemented")

// ParseError reports a mod archive whose metadata could not be read, tagged
// with the offending archive path so a scan can skip it and keep going.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing mod archive %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
