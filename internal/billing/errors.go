package billing

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound indicates the requested bill session could not be located.
var ErrSessionNotFound = errors.New("bill session not found")

// ErrItemNotFound indicates the referenced catalog item is not visible to the session.
var ErrItemNotFound = errors.New("catalog item not found")

// ValidationError reports a rejected input along with the failing field so
// the caller can re-prompt.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
