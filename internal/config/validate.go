package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/conn-castle/toil/internal/messages"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their TOML key.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("nospace", func(fl validator.FieldLevel) bool {
		return !strings.ContainsFunc(fl.Field().String(), unicode.IsSpace)
	})
	return v
}

// Validate checks field constraints.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		msgs = append(msgs, formatFieldError(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		if strings.Contains(fe.Namespace(), "[") {
			return fmt.Sprintf(messages.ConfigFieldNoSpaceItemFmt, fieldRoot(fe))
		}
		return fmt.Sprintf(messages.ConfigFieldRequiredFmt, field)
	case "nospace":
		if strings.Contains(fe.Namespace(), "[") {
			return fmt.Sprintf(messages.ConfigFieldNoSpaceItemFmt, fieldRoot(fe))
		}
		return fmt.Sprintf(messages.ConfigFieldNoSpaceFmt, field)
	case "max":
		return fmt.Sprintf(messages.ConfigFieldMaxFmt, field, fe.Param())
	default:
		return fmt.Sprintf(messages.ConfigFieldInvalidFmt, field, fe.Tag())
	}
}

// fieldRoot strips the index from a slice element name like common_packages[2].
func fieldRoot(fe validator.FieldError) string {
	name, _, _ := strings.Cut(fe.Field(), "[")
	return name
}
