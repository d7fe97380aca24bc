// Package validate checks struct tags with go-playground/validator and maps
// failures to domain.ErrInvalidRecord.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/kailas-cloud/mentorhub/internal/domain"
)

var (
	once sync.Once
	v    *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return v
}

// Struct validates s. Field errors are joined into one message wrapping
// domain.ErrInvalidRecord.
func Struct(s any) error {
	err := get().Struct(s)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("%w: %w", domain.ErrInvalidRecord, err)
	}

	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, message(e))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidRecord, strings.Join(msgs, "; "))
}

func message(e validator.FieldError) string {
	field := e.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "url":
		return field + " must be a valid URL"
	case "oneof":
		return fmt.Sprintf("%s %q not recognized, only support %s", field, e.Value(), e.Param())
	case "gte", "gt":
		return fmt.Sprintf("%s cannot be less than %s", field, e.Param())
	case "lte", "max":
		return fmt.Sprintf("%s cannot exceed %s", field, e.Param())
	default:
		return fmt.Sprintf("%s failed %s", field, e.Tag())
	}
}
