package service

import "fmt"

type validationErr struct {
	field   string
	message string
}

func (e *validationErr) Error() string {
	return fmt.Sprintf("%s: %s", e.field, e.message)
}

// IsValidation reports whether err is a request-level validation failure
// rather than an infrastructure error.
func IsValidation(err error) bool {
	_, ok := err.(*validationErr)
	return ok
}
