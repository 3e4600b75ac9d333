package api

import (
	"errors"
	"fmt"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest = errors.New("bad request")
	ErrReload     = errors.New("reload failed")
)

// NewKind returns a kind error tagged with the operation name.
func NewKind(op string, kind error) error {
	return fmt.Errorf("%s: %w", op, kind)
}

// WrapKind wraps err under both the operation name and a kind, so callers
// can errors.Is against the kind while keeping the cause.
func WrapKind(op string, kind, err error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}

// Wrap tags err with the operation name.
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
