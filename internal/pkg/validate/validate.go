package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/ougirez/forestwatch/internal/domain"
	"github.com/ougirez/forestwatch/internal/pkg/apiclient"
)

var (
	once sync.Once
	v    *validator.Validate
)

// Validator returns the shared instance with the domain validations registered.
func Validator() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("stakeholder", func(fl validator.FieldLevel) bool {
			return domain.Stakeholder(fl.Field().String()).Valid()
		})
	})
	return v
}

// Struct validates s and converts the first failure into an *apiclient.ValidationError.
func Struct(s interface{}) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &apiclient.ValidationError{
			Field:  fe.Namespace(),
			Reason: reason(fe),
		}
	}
	return &apiclient.ValidationError{Reason: err.Error()}
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s item(s)", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "gtefield":
		return fmt.Sprintf("must not be before %s", fe.Param())
	case "stakeholder":
		return fmt.Sprintf("unknown stakeholder %q", fe.Value())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
