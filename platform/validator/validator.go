// Package validator wraps go-playground/validator for struct-tag validation.
package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Validator is the shared, injectable validation instance.
type Validator struct {
	v *validator.Validate
}

// New creates a new Validator instance.
func New() *Validator {
	return &Validator{
		v: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Struct validates a struct based on its validate tags.
func (val *Validator) Struct(s any) error {
	return val.v.Struct(s)
}

// FailedTags returns the validation tags that failed, in field order.
// Non-validation errors yield nil.
func FailedTags(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	tags := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		tags = append(tags, fe.Tag())
	}
	return tags
}
