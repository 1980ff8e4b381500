// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// FirstReportYear is the first year Swarm check-ins exist for.
const FirstReportYear = 2009

// singleton validator instance
var (
	validate     *validator.Validate
	validateOnce sync.Once

	// now is replaced in tests to pin the upper year bound.
	now = time.Now
)

var shareTokenPattern = regexp.MustCompile(`^[0-9a-f]{24}$`)

// ReportQuery holds the query parameters accepted by the report endpoints.
// A zero Year selects the configured default. The param tag names the
// field in error messages.
type ReportQuery struct {
	Year             int  `param:"year" validate:"omitempty,reportyear"`
	ExcludeSensitive bool `param:"exclude_sensitive"`
}

// ShareTokenParam holds a share token taken from the URL path.
type ShareTokenParam struct {
	Token string `param:"token" validate:"required,sharetoken"`
}

// ValidationError represents a single field validation error with structured information.
type ValidationError struct {
	field   string
	tag     string
	param   string
	value   interface{}
	message string
}

// Field returns the struct field name that failed validation.
func (e *ValidationError) Field() string {
	return e.field
}

// Tag returns the validation tag that failed.
func (e *ValidationError) Tag() string {
	return e.tag
}

// Param returns the parameter for the validation tag (e.g., "100" for "max=100").
func (e *ValidationError) Param() string {
	return e.param
}

// Value returns the actual value that failed validation.
func (e *ValidationError) Value() interface{} {
	return e.value
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	return e.message
}

// RequestValidationError represents a collection of validation errors.
type RequestValidationError struct {
	errors []ValidationError
}

// Errors returns the slice of validation errors.
func (ve *RequestValidationError) Errors() []ValidationError {
	return ve.errors
}

// Error implements the error interface, returning a combined error message.
func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}

	messages := make([]string, 0, len(ve.errors))
	for _, err := range ve.errors {
		messages = append(messages, err.Error())
	}

	return strings.Join(messages, "; ")
}

// APIError mirrors models.APIError so this package stays free of model imports.
type APIError struct {
	Code    string
	Message string
	Details map[string]interface{}
}

// ToAPIError converts validation errors to the VALIDATION_ERROR response shape.
func (ve *RequestValidationError) ToAPIError() *APIError {
	if len(ve.errors) == 0 {
		return &APIError{
			Code:    "VALIDATION_ERROR",
			Message: "Validation failed",
		}
	}

	if len(ve.errors) == 1 {
		err := ve.errors[0]
		return &APIError{
			Code:    "VALIDATION_ERROR",
			Message: err.message,
			Details: map[string]interface{}{
				"field": err.field,
				"tag":   err.tag,
				"value": err.value,
			},
		}
	}

	fields := make([]map[string]interface{}, len(ve.errors))
	messages := make([]string, 0, len(ve.errors))

	for i, err := range ve.errors {
		fields[i] = map[string]interface{}{
			"field":   err.field,
			"tag":     err.tag,
			"message": err.message,
		}
		messages = append(messages, fmt.Sprintf("%s: %s", err.field, err.message))
	}

	return &APIError{
		Code:    "VALIDATION_ERROR",
		Message: strings.Join(messages, "; "),
		Details: map[string]interface{}{
			"fields": fields,
		},
	}
}

// GetValidator returns the singleton validator instance with the custom
// reportyear and sharetoken tags registered. It is safe for concurrent use.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Registration only fails for empty tags or nil funcs.
		_ = validate.RegisterValidation("reportyear", validateReportYear)
		_ = validate.RegisterValidation("sharetoken", validateShareToken)

		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			if name := f.Tag.Get("param"); name != "" {
				return name
			}
			return f.Name
		})
	})

	return validate
}

// MaxReportYear is the latest year a report can be requested for.
func MaxReportYear() int {
	return now().Year() + 1
}

func validateReportYear(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	return year >= FirstReportYear && year <= int64(MaxReportYear())
}

func validateShareToken(fl validator.FieldLevel) bool {
	return shareTokenPattern.MatchString(fl.Field().String())
}

// ValidateStruct validates a struct using the singleton validator.
// Returns nil if validation passes, or *RequestValidationError if validation fails.
func ValidateStruct(s interface{}) *RequestValidationError {
	v := GetValidator()

	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &RequestValidationError{
			errors: []ValidationError{
				{
					field:   "unknown",
					tag:     "unknown",
					message: err.Error(),
				},
			},
		}
	}

	fieldErrors := make([]ValidationError, len(validationErrs))
	for i, fieldErr := range validationErrs {
		fieldErrors[i] = ValidationError{
			field:   fieldErr.Field(),
			tag:     fieldErr.Tag(),
			param:   fieldErr.Param(),
			value:   fieldErr.Value(),
			message: translateError(fieldErr),
		}
	}

	return &RequestValidationError{errors: fieldErrors}
}

// ParseReportQuery reads year and exclude_sensitive from query values and
// validates them. A missing year yields 0. A missing exclude_sensitive
// yields defaultExclude.
func ParseReportQuery(get func(string) string, defaultExclude bool) (ReportQuery, *RequestValidationError) {
	q := ReportQuery{ExcludeSensitive: defaultExclude}

	if raw := strings.TrimSpace(get("year")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return q, singleError("year", "numeric", raw, "year must be a number")
		}
		q.Year = year
	}

	if raw := strings.TrimSpace(get("exclude_sensitive")); raw != "" {
		exclude, err := strconv.ParseBool(raw)
		if err != nil {
			return q, singleError("exclude_sensitive", "boolean", raw, "exclude_sensitive must be true or false")
		}
		q.ExcludeSensitive = exclude
	}

	if verr := ValidateStruct(&q); verr != nil {
		return q, verr
	}
	return q, nil
}

// ValidateShareToken checks a share token taken from a URL path.
func ValidateShareToken(token string) *RequestValidationError {
	return ValidateStruct(&ShareTokenParam{Token: token})
}

func singleError(field, tag string, value interface{}, message string) *RequestValidationError {
	return &RequestValidationError{errors: []ValidationError{{
		field:   field,
		tag:     tag,
		value:   value,
		message: message,
	}}}
}

// errorMessageTemplates maps validation tags to message templates.
var errorMessageTemplates = map[string]string{
	"required":   "%s is required",
	"sharetoken": "%s must be 24 lowercase hex characters",
}

// errorMessageWithParam maps validation tags to templates that include param.
var errorMessageWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
}

// translateError converts a validator.FieldError to a human-readable message.
func translateError(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	if tag == "reportyear" {
		return fmt.Sprintf("%s must be between %d and %d", field, FirstReportYear, MaxReportYear())
	}

	if template, ok := errorMessageTemplates[tag]; ok {
		return fmt.Sprintf(template, field)
	}

	if template, ok := errorMessageWithParam[tag]; ok {
		return fmt.Sprintf(template, field, param)
	}

	return translateMinMax(fe, field, tag, param)
}

// translateMinMax handles min/max validation with type-specific messages.
func translateMinMax(fe validator.FieldError, field, tag, param string) string {
	isString := fe.Kind().String() == "string"

	switch tag {
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}
