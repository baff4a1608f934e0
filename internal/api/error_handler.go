package api

import (
	"errors"
	"fmt"
	"github.com/ougirez/forestwatch/internal/domain"
	"github.com/ougirez/forestwatch/internal/pkg/constants"
	"github.com/ougirez/forestwatch/internal/pkg/logger"
	"net/http"

	"github.com/labstack/echo/v4"
)

func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	msg := err.Error()
	code := constants.CodeOf(err)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = fmt.Sprint(he.Message)
	}

	if code >= http.StatusInternalServerError {
		logger.Errorf(c.Request().Context(), "%s %s: %v", c.Request().Method, c.Path(), err)
	}

	_ = c.JSON(code, domain.ErrorResponse{
		Message: msg,
		Code:    code,
	})
}
