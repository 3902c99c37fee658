package domain

import "fmt"

// ErrConnectionFailed indicates the backing database could not be reached
// or a pooled connection could not be leased.
type ErrConnectionFailed struct {
	Driver string
	Reason string
}

func (e *ErrConnectionFailed) Error() string {
	return fmt.Sprintf("connection failed (%s): %s", e.Driver, e.Reason)
}

// ErrUnsupportedScheme indicates a connection URL whose scheme maps to no
// registered dialect.
type ErrUnsupportedScheme struct {
	Scheme string
}

func (e *ErrUnsupportedScheme) Error() string {
	return fmt.Sprintf("unsupported connection URL scheme: %q", e.Scheme)
}
