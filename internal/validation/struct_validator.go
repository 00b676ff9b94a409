package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	structOnce     sync.Once
	structValidate *validator.Validate
)

// Struct checks the validate tags of s and its nested structs.
func Struct(s any) error {
	structOnce.Do(func() {
		structValidate = validator.New(validator.WithRequiredStructEnabled())
		_ = structValidate.RegisterValidation("upper", func(fl validator.FieldLevel) bool {
			v := fl.Field().String()
			return v == strings.ToUpper(v)
		})
	})
	return structValidate.Struct(s)
}

// Describe turns validator errors into one readable line per field.
func Describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, e := range fieldErrs {
		if e.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", e.Namespace(), e.Tag(), e.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s failed %s", e.Namespace(), e.Tag()))
	}
	return strings.Join(parts, "; ")
}
