package serverutils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError marks a request body that failed validation so the
// error handler can map it to a 400 instead of a 500.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			first := errs[0]
			return &ValidationError{
				Message: fmt.Sprintf("field '%s' failed on rule '%s'", first.Field(), first.Tag()),
			}
		}
		return &ValidationError{Message: err.Error()}
	}
	return nil
}
