package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

// ReasonNotBoolean is the reason attached to every malformed flag variable
const ReasonNotBoolean = "must be 'true' or 'false'"

// Package-level validator used by Validate / ValidateProjectConfig.
var validate *validator.Validate

func init() {
	// Enable "required on structs" semantics and register custom validators.
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report fields by the name users actually type: the environment
	// variable for rawEnv, the YAML key for ProjectConfig.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("env"); name != "" {
			return name
		}
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterValidation("base_path", validateBasePath); err != nil {
		panic(fmt.Errorf("register validator base_path: %w", err))
	}
}

// validateBasePath implements the "base_path" tag: an absolute URL path that
// starts and ends with '/', e.g. "/" or "/study_github_agent/".
func validateBasePath(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return strings.HasPrefix(s, "/") && strings.HasSuffix(s, "/") && !strings.ContainsAny(s, " \t?#")
}

// ConfigurationError reports every malformed environment variable found
// during a single Validate call.
type ConfigurationError struct {
	Errors field.ErrorList
}

func newConfigurationError(validationErrors validator.ValidationErrors) *ConfigurationError {
	cerr := &ConfigurationError{}
	for _, fieldError := range validationErrors {
		value := fieldError.Value()
		if p, ok := value.(*string); ok && p != nil {
			value = *p
		}
		cerr.Errors = append(cerr.Errors,
			field.Invalid(field.NewPath(fieldError.Field()), value, ReasonNotBoolean))
	}
	return cerr
}

func (e *ConfigurationError) Error() string {
	messages := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		messages = append(messages, fe.Error())
	}
	return fmt.Sprintf("environment validation failed:\n  - %s", strings.Join(messages, "\n  - "))
}

// Fields returns the names of the invalid variables in report order
func (e *ConfigurationError) Fields() []string {
	names := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		names = append(names, fe.Field)
	}
	return names
}

// IsConfigurationError reports whether err is, or wraps, a *ConfigurationError
func IsConfigurationError(err error) bool {
	var cerr *ConfigurationError
	return errors.As(err, &cerr)
}

// ValidateProjectConfig runs tag-based validation on a project file.
func ValidateProjectConfig(config *ProjectConfig) error {
	if err := validate.Struct(config); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError renders go-playground/validator errors as concise, user-facing text.
func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	var errorMessages []string
	for _, fieldError := range validationErrors {
		errorMessages = append(errorMessages, formatFieldError(fieldError))
	}

	return fmt.Errorf("configuration validation failed:\n  - %s",
		strings.Join(errorMessages, "\n  - "))
}

// formatFieldError creates user-friendly error messages for field validation failures
func formatFieldError(fieldError validator.FieldError) string {
	fieldName := fieldPath(fieldError)
	tag := fieldError.Tag()
	param := fieldError.Param()
	value := fieldError.Value()

	switch tag {
	case "required":
		return fmt.Sprintf("'%s' is required", fieldName)
	case "min":
		return fmt.Sprintf("'%s' must be at least %s, got '%v'", fieldName, param, value)
	case "max":
		return fmt.Sprintf("'%s' must be at most %s, got '%v'", fieldName, param, value)
	case "oneof":
		return fmt.Sprintf("'%s' must be one of [%s], got '%v'", fieldName, param, value)

	case "base_path":
		return fmt.Sprintf("'%s' must be a URL path starting and ending with '/', got '%v'", fieldName, value)

	default:
		return fmt.Sprintf("'%s' failed validation '%s', got '%v'", fieldName, tag, value)
	}
}

// fieldPath drops the root struct name: "ProjectConfig.server.port" -> "server.port".
func fieldPath(fieldError validator.FieldError) string {
	ns := fieldError.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
