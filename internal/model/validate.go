package model

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the `validate` struct tags on a request DTO. Required-field
// checks live here rather than ad hoc in each handler so every entity is
// validated against a single contract before persistence.
func Validate(v any) error {
	return validate.Struct(v)
}
