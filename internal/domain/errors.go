package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is returned before any network or persistence side effects
// when required input is missing.
var ErrValidation = errors.New("attacker and defender are required")

// NotFoundError means the remote source has no record for the requested name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("pokemon '%s' not found", e.Name)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
