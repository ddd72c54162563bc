// Package validation holds the field rules shared by the console, which
// checks records before any request leaves it, and the content API.
// Failures are reported field by field.
package validation

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/fundunity/cmsdash/internal/common"
)

// FieldError is one failed rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors collects every FieldError of a validation pass. It matches
// common.ErrorValidation with errors.Is.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Error()
	}
	return strings.Join(parts, "; ")
}

func (e Errors) Is(target error) bool {
	return target == common.ErrorValidation
}

// Validator accumulates failures through chained calls:
//
//	err := validation.New().Required("nama", t.Nama).Email("email", t.Email).Err()
type Validator struct {
	errs Errors
}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) add(field, msg string) *Validator {
	v.errs = append(v.errs, FieldError{Field: field, Message: msg})
	return v
}

// Required fails on empty or whitespace-only values.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		return v.add(field, "is required")
	}
	return v
}

// MinLength fails when value is shorter than min characters.
func (v *Validator) MinLength(field, value string, min int) *Validator {
	if len([]rune(value)) < min {
		return v.add(field, fmt.Sprintf("must be at least %d characters", min))
	}
	return v
}

// Email is a loose check: non-empty values must contain "@".
func (v *Validator) Email(field, value string) *Validator {
	if value != "" && !strings.Contains(value, "@") {
		return v.add(field, "must be a valid email address")
	}
	return v
}

// Positive fails on zero, negative and non-finite amounts.
func (v *Validator) Positive(field string, value float64) *Validator {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return v.add(field, "must be a finite number")
	}
	if value <= 0 {
		return v.add(field, "must be greater than zero")
	}
	return v
}

// OneOf fails when value is not among allowed.
func (v *Validator) OneOf(field, value string, allowed []string) *Validator {
	if !slices.Contains(allowed, value) {
		return v.add(field, "must be one of "+strings.Join(allowed, ", "))
	}
	return v
}

// Check records msg for field when ok is false.
func (v *Validator) Check(ok bool, field, msg string) *Validator {
	if !ok {
		return v.add(field, msg)
	}
	return v
}

func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// Err returns nil or the collected Errors.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return v.errs
}
