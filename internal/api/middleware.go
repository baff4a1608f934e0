package api

import (
	"github.com/labstack/echo/v4"
	"github.com/ougirez/forestwatch/internal/pkg/constants"
	"github.com/ougirez/forestwatch/internal/pkg/logger"
	"github.com/ougirez/forestwatch/internal/pkg/utils"
	"github.com/spf13/viper"
)

// RequestContextMiddleware tags every log line of the request with its ID.
func (svc *APIService) RequestContextMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id := ctx.Response().Header().Get(echo.HeaderXRequestID)
		req := ctx.Request()
		ctx.SetRequest(req.WithContext(logger.With(req.Context(), constants.CtxKeyRequestID, id)))

		return next(ctx)
	}
}

func (svc *APIService) AdminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(constants.CookieKeySecretToken)
		if err != nil {
			return constants.ErrMissingAuthCookie
		}

		token, err := utils.ParseAuthToken(cookie.Value)
		if err != nil {
			return err
		}

		if token.Secret != viper.GetString(constants.ViperSecretKey) {
			return constants.ErrUnauthorized
		}

		return next(ctx)
	}
}
