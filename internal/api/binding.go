package api

import (
	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	"github.com/ougirez/forestwatch/internal/pkg/validate"
	"net/http"
)

type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) Validate(i interface{}) error {
	return validate.Struct(i)
}

// Binder binds like echo's default binder and validates the result.
type Binder struct {
	echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	if err := b.DefaultBinder.Bind(i, c); err != nil {
		return err
	}
	return c.Validate(i)
}

// JSONSerializer encodes responses and decodes request bodies with sonic.
type JSONSerializer struct {
	api sonic.API
}

func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{api: sonic.ConfigStd}
}

func (s *JSONSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := s.api.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (s *JSONSerializer) Deserialize(c echo.Context, i interface{}) error {
	if err := s.api.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON body: "+err.Error()).SetInternal(err)
	}
	return nil
}
