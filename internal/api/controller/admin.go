package controller

import (
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/ougirez/forestwatch/internal/pkg/constants"
	"github.com/ougirez/forestwatch/internal/pkg/query"
	"net/http"
)

type InvalidateCacheRequest struct {
	Resource string `json:"resource"`
}

// InvalidateCache marks one resource, or the whole cache, stale.
func (c *Controller) InvalidateCache(ctx echo.Context) error {
	var req InvalidateCacheRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, InvalidatedResponse{Invalidated: c.dashboard.Invalidate(req.Resource)})
}

type RefetchedResponse struct {
	Refetched int `json:"refetched"`
}

// PostEvent lets a client report that it regained focus or connectivity.
func (c *Controller) PostEvent(ctx echo.Context) error {
	var ev query.Event
	switch ctx.Param("event") {
	case query.EventFocus.String():
		ev = query.EventFocus
	case query.EventReconnect.String():
		ev = query.EventReconnect
	default:
		return fmt.Errorf("event %q: %w", ctx.Param("event"), constants.ErrBadRequest)
	}

	return ctx.JSON(http.StatusOK, RefetchedResponse{Refetched: c.dashboard.Notify(ctx.Request().Context(), ev)})
}
