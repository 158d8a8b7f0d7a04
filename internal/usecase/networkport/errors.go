package networkport

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPortType marks a matched port whose type is outside the
	// allowed link technologies. It is reported to callers as NotFoundError.
	ErrInvalidPortType = errors.New("port id refers to invalid port type")

	// ErrTypeNotSupported marks an allowed port type that has no address mapping.
	ErrTypeNotSupported = errors.New("type not supported")

	// ErrAddressMissing marks a port without the address field its type requires.
	ErrAddressMissing = errors.New("port address missing")
)

// NotFoundError reports that the requested resource could not be resolved.
// Cause keeps the lower-level failure for logging only.
type NotFoundError struct {
	ID           string
	ResourceType string
	Cause        error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.ResourceType, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return e.Cause
}

// IsNotFound reports whether err is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError

	return errors.As(err, &nf)
}
