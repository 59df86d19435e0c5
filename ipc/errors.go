package ipc

import (
	"errors"
	"fmt"
)

var (
	// ErrDisconnected is returned for requests issued after the player went away.
	ErrDisconnected = errors.New("player disconnected")

	// ErrReleased is returned by accessors of a released result.
	ErrReleased = errors.New("result already released")

	// ErrNotReady is returned by accessors of a result whose reply has not arrived.
	ErrNotReady = errors.New("result not ready")
)

// ResultError is an error reported by the player for a single request.
type ResultError struct {
	Op      string
	Message string
}

func (e *ResultError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// DecodeError means a reply did not have the shape its request guarantees.
type DecodeError struct {
	Op   string
	Want string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode %s: %v", e.Op, e.Want, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ErrMissingValue is wrapped by a DecodeError when a reply carries no data.
var ErrMissingValue = errors.New("missing value")
