package config

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

const slugMaxLength = 64

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*[a-z0-9]$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report yaml keys rather than Go field names.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
			_, err := zerolog.ParseLevel(strings.ToLower(fl.Field().String()))
			return err == nil
		})

		_ = v.RegisterValidation("catalog_path", func(fl validator.FieldLevel) bool {
			path := fl.Field().String()
			if strings.TrimSpace(path) == "" || strings.Contains(path, "\x00") {
				return false
			}
			return strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
		})

		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return IsSlug(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// IsSlug reports whether s is a lowercase, hyphen-separated identifier of at most 64
// characters, as used for component slugs and registry names.
func IsSlug(s string) bool {
	return len(s) <= slugMaxLength && slugPattern.MatchString(s)
}
