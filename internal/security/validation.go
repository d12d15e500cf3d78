package security

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports a request that cannot be turned into a command
// line. It is detected before any process is spawned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Invalid builds a ValidationError for field.
func Invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

var flagNamePattern = regexp.MustCompile(`^-?[a-z0-9][a-z0-9-]*$`)
var csvListPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_.-]*(,[a-z0-9][a-z0-9_.-]*)*$`)

var validate = newValidator()

// Request types declare their rules with `validate` struct tags. On top of
// the validator/v10 built-ins the following tags are available:
//
//   - arg: no leading '-', no control characters, not blank
//   - token: arg plus no whitespace, for values rendered into command lines
//   - flagname: a lowercase flag name with an optional leading dash
//   - csvlist: comma-separated lowercase names
//   - portlist: ports or port ranges such as 80,443,8000-8100
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	must(v.RegisterValidation("arg", func(fl validator.FieldLevel) bool {
		return argumentProblem(fl.Field().String()) == ""
	}))
	must(v.RegisterValidation("token", func(fl validator.FieldLevel) bool {
		return tokenProblem(fl.Field().String()) == ""
	}))
	must(v.RegisterValidation("flagname", func(fl validator.FieldLevel) bool {
		return flagNamePattern.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("csvlist", func(fl validator.FieldLevel) bool {
		return csvListPattern.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("portlist", func(fl validator.FieldLevel) bool {
		return portListProblem(fl.Field().String()) == ""
	}))

	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Check validates req against its struct tags and returns the first
// violation as a *ValidationError named after the JSON field.
func Check(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fromFieldError(fieldErrs[0])
	}
	return fmt.Errorf("validate %T: %w", req, err)
}

func fromFieldError(fe validator.FieldError) *ValidationError {
	field, _, _ := strings.Cut(fe.Field(), "[")
	value := fe.Value()

	switch fe.Tag() {
	case "required":
		return Invalid(field, "%s is required", field)
	case "oneof":
		return Invalid(field, "unknown %s %q: must be one of %s", field, value, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		if fe.Kind() == reflect.Slice {
			return Invalid(field, "%s needs at least %s entries", field, fe.Param())
		}
		return Invalid(field, "%s must be at least %s, got: %v", field, fe.Param(), value)
	case "max":
		return Invalid(field, "%s must be at most %s, got: %v", field, fe.Param(), value)
	case "fqdn":
		return Invalid(field, "%s must be a valid domain name, got: %q", field, value)
	case "http_url":
		return Invalid(field, "%s must be an absolute http or https URL, got: %q", field, value)
	case "contains":
		return Invalid(field, "%s must contain %s", field, fe.Param())
	case "alphanum":
		return Invalid(field, "%s must be alphanumeric, got: %q", field, value)
	case "excludesall":
		return Invalid(field, "%s cannot contain any of %q: %v", field, fe.Param(), value)
	case "arg":
		return Invalid(field, "%s %s", field, argumentProblem(fmt.Sprint(value)))
	case "token":
		return Invalid(field, "%s %s", field, tokenProblem(fmt.Sprint(value)))
	case "flagname":
		return Invalid(field, "invalid flag %q in %s: use lowercase letters, digits and dashes", value, field)
	case "csvlist":
		return Invalid(field, "%s must be a comma-separated list of lowercase names, got: %q", field, value)
	case "portlist":
		return Invalid(field, "%s %s", field, portListProblem(fmt.Sprint(value)))
	default:
		return Invalid(field, "%s has an invalid value: %q", field, value)
	}
}

// argumentProblem describes why value cannot be passed as a single option
// value, or returns "" when it can.
func argumentProblem(value string) string {
	if strings.TrimSpace(value) == "" {
		return "cannot be blank"
	}
	if strings.HasPrefix(value, "-") {
		return "cannot start with '-': " + value
	}
	for _, char := range value {
		if unicode.IsControl(char) {
			return "contains a control character"
		}
	}
	return ""
}

func tokenProblem(value string) string {
	if problem := argumentProblem(value); problem != "" {
		return problem
	}
	if strings.IndexFunc(value, unicode.IsSpace) >= 0 {
		return "cannot contain whitespace: " + value
	}
	return ""
}

func portListProblem(value string) string {
	for _, part := range strings.Split(value, ",") {
		lo, hi, isRange := strings.Cut(part, "-")
		if !validPort(lo) || (isRange && !validPort(hi)) {
			return fmt.Sprintf("must list ports or port ranges between 1 and 65535, got: %q", value)
		}
		if isRange {
			a, _ := strconv.Atoi(lo)
			b, _ := strconv.Atoi(hi)
			if a > b {
				return fmt.Sprintf("has a reversed port range: %s", part)
			}
		}
	}
	return ""
}

func validPort(s string) bool {
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return false
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 1 && n <= 65535
}
