package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/truongteam/medusa-admin/internal/domain"
)

var (
	// ErrValidation wraps request validation failures.
	ErrValidation = errors.New("validation failed")

	// ErrBinding wraps malformed request bodies.
	ErrBinding = errors.New("binding failed")
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator. Errors report JSON field names.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}

			return name
		})

		_ = validate.RegisterValidation("notempty", validateNotEmpty)
		_ = validate.RegisterValidation("formfield", validateFormField)
	})

	return validate
}

// Validate checks struct tags.
func Validate(v any) error {
	if err := Validator().Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return nil
}

// Validatable is implemented by requests with rules beyond struct tags.
type Validatable interface {
	Validate() error
}

// ValidateAll checks struct tags, then the request's own rules.
func ValidateAll(v any) error {
	if err := Validate(v); err != nil {
		return err
	}

	if vv, ok := v.(Validatable); ok {
		if err := vv.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}

	return nil
}

// BindAndValidate binds the JSON body into v and validates it.
func BindAndValidate(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return ValidateAll(v)
}

// ValidationErrors extracts field messages from a validation error. Request
// level rule violations are reported under "request".
func ValidationErrors(err error) map[string]string {
	fieldErrors := make(map[string]string)

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fe := range validationErrs {
			fieldErrors[fieldPath(fe)] = validationMessage(fe)
		}

		return fieldErrors
	}

	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		fieldErrors[fieldErr.Field] = fieldErr.Message
		return fieldErrors
	}

	if err != nil {
		fieldErrors["request"] = err.Error()
	}

	return fieldErrors
}

// FieldError is a rule violation reported by Validatable requests.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// fieldPath drops the struct name: "FormEditRequest.fields[title]" becomes
// "fields[title]".
func fieldPath(fe validator.FieldError) string {
	_, rest, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}

	return rest
}

var validationMessages = map[string]string{
	"required":  "this field is required",
	"notempty":  "must not be empty",
	"uuid":      "must be a valid UUID",
	"oneof":     "must be one of: {param}",
	"formfield": "must be one of: " + strings.Join(fieldNames(), " "),
}

func validationMessage(fe validator.FieldError) string {
	tag := fe.Tag()

	if tag == "min" || tag == "max" {
		return minMaxMessage(tag, fe.Param(), fe.Kind())
	}

	if msg, ok := validationMessages[tag]; ok {
		return strings.ReplaceAll(msg, "{param}", fe.Param())
	}

	return "failed validation: " + tag
}

func minMaxMessage(tag, param string, kind reflect.Kind) string {
	var suffix string

	switch kind {
	case reflect.String:
		suffix = " characters"
	case reflect.Slice, reflect.Map:
		suffix = " items"
	}

	if tag == "min" {
		return "must be at least " + param + suffix
	}

	return "must be at most " + param + suffix
}

func validateNotEmpty(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateFormField(fl validator.FieldLevel) bool {
	_, ok := domain.ParseField(fl.Field().String())
	return ok
}

func fieldNames() []string {
	names := make([]string, len(domain.Fields))
	for i, f := range domain.Fields {
		names[i] = string(f)
	}

	return names
}
