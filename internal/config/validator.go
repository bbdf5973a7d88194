package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aleister1102/httpget/internal/common"
	"github.com/aleister1102/httpget/internal/request"
	"github.com/go-playground/validator/v10"
)

// ValidateConfig performs validation on the Config structure.
func ValidateConfig(cfg *Config) error {
	validate := validator.New()

	_ = validate.RegisterValidation("shape", func(fl validator.FieldLevel) bool {
		_, err := request.ParseShape(fl.Field().String())
		return err == nil
	})

	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		level := strings.ToLower(fl.Field().String())
		switch level {
		case "", "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		format := strings.ToLower(fl.Field().String())
		switch format {
		case "", "console", "text", "json":
			return true
		default:
			return false
		}
	})

	err := validate.Struct(cfg)
	if err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			var validationErrorMessages []string
			for _, e := range errs {
				fieldName := strings.TrimPrefix(e.StructNamespace(), "Config.")
				msg := fmt.Sprintf("Validation failed for '%s': rule '%s'", fieldName, e.Tag())
				if e.Param() != "" {
					msg += fmt.Sprintf(" (expected: %s)", e.Param())
				}
				if e.Value() != nil && e.Value() != "" {
					msg += fmt.Sprintf(", actual: '%v'", e.Value())
				}
				validationErrorMessages = append(validationErrorMessages, msg)
			}
			return common.NewConfigurationError("", "", "validation failed:\n  "+strings.Join(validationErrorMessages, "\n  "))
		}
		return common.WrapError(err, "configuration validation error")
	}
	return nil
}
