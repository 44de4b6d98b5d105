// Copyright (c) 2026 Marquee. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate turns malformed input into a single VALIDATION_ERROR
// [apperr.AppError] carrying per-field details.
//
// # Architecture
//
// Two styles coexist. Request DTOs are checked declaratively through
// `validate:"..."` struct tags ([Struct], backed by go-playground/validator).
// Rules that depend on runtime configuration, like the comment length limit,
// use the chainable [Validator].
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/taibuivan/marquee/internal/platform/apperr"
)

// Rule names carried in [apperr.FieldError.Rule]. They match the
// go-playground/validator tags so both styles report the same vocabulary.
const (
	RuleRequired = "required"
	RuleOneOf    = "oneof"
	RuleUUID     = "uuid"
	RuleMax      = "max"
	RuleCustom   = "custom"
)

// ErrInvalidJSON is returned when the request body cannot be decoded.
var ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")

var (
	engine     *validator.Validate
	engineOnce sync.Once
)

// instance lazily builds the shared validator. Field names in errors follow
// the json tag so clients see the names they sent.
func instance() *validator.Validate {
	engineOnce.Do(func() {
		engine = validator.New(validator.WithRequiredStructEnabled())
		engine.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})
	})
	return engine
}

// Struct validates v against its `validate` tags.
func Struct(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return apperr.Internal(err)
	}

	details := make([]apperr.FieldError, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		details = append(details, apperr.FieldError{
			Field:   fieldError.Field(),
			Rule:    fieldError.Tag(),
			Message: describe(fieldError),
		})
	}

	return apperr.ValidationError("Validation failed", details...)
}

func describe(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case RuleRequired:
		return "This field is required"
	case RuleOneOf:
		return oneOfMessage(strings.Fields(fieldError.Param()))
	case RuleUUID:
		return "Must be a valid UUID"
	case RuleMax:
		return fmt.Sprintf("Maximum %s characters", fieldError.Param())
	default:
		return fmt.Sprintf("Failed %q rule", fieldError.Tag())
	}
}

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. Create one per operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, RuleRequired, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, RuleMax, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// OneOf fails if the value is not in the allowed set of strings.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.add(field, RuleOneOf, oneOfMessage(allowed))
	return v
}

// Custom adds a failure with a custom message if the condition is true.
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, RuleCustom, message)
	}
	return v
}

// Err returns a VALIDATION_ERROR [apperr.AppError] if any rule failed, nil otherwise.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

func (v *Validator) add(field, rule, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Rule: rule, Message: message})
}

func oneOfMessage(allowed []string) string {
	return fmt.Sprintf("Must be one of: %s", strings.Join(allowed, ", "))
}

// RequiredError is a shortcut to create a single-field validation error for
// a missing value.
func RequiredError(field, message string) *apperr.AppError {
	return FieldError(field, RuleRequired, message)
}

// OneOfError reports a value that is present but outside the allowed set.
func OneOfError(field string, allowed ...string) *apperr.AppError {
	return FieldError(field, RuleOneOf, oneOfMessage(allowed))
}

// FieldError builds a single-field validation error for the given rule.
func FieldError(field, rule, message string) *apperr.AppError {
	return apperr.ValidationError("Validation failed", apperr.FieldError{
		Field:   field,
		Rule:    rule,
		Message: message,
	})
}
