package controller

import (
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/ougirez/forestwatch/internal/domain"
	"github.com/ougirez/forestwatch/internal/pkg/constants"
	"github.com/ougirez/forestwatch/internal/pkg/query"
	"github.com/ougirez/forestwatch/internal/service/dashboard"
	"github.com/ougirez/forestwatch/internal/service/export"
	"github.com/ougirez/forestwatch/internal/service/report"
	"net/http"
	"strconv"
	"strings"
)

type Controller struct {
	dashboard *dashboard.Service
	reports   *report.Service
	export    *export.Service
}

func NewController(dashboardService *dashboard.Service, reportService *report.Service, exportService *export.Service) *Controller {
	return &Controller{
		dashboard: dashboardService,
		reports:   reportService,
		export:    exportService,
	}
}

// StateResponse is sent instead of data when a query has nothing to show yet.
type StateResponse struct {
	State string `json:"state"`
}

func respond[T any](ctx echo.Context, res query.Result[T]) error {
	switch {
	case res.Disabled:
		return ctx.JSON(http.StatusOK, StateResponse{State: res.State.String()})
	case res.IsError():
		return res.Err
	case res.IsLoading():
		// the caller went away before the shared load finished
		if res.Err != nil {
			return res.Err
		}
		return ctx.JSON(http.StatusAccepted, StateResponse{State: res.State.String()})
	}
	return ctx.JSON(http.StatusOK, res.Data)
}

func queryCountry(ctx echo.Context) string {
	return strings.TrimSpace(ctx.QueryParam("country"))
}

func queryYear(ctx echo.Context, name string) (*domain.Year, error) {
	raw := strings.TrimSpace(ctx.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	year, err := strconv.Atoi(raw)
	if err != nil || year <= 0 {
		return nil, fmt.Errorf("%s %q: %w", name, raw, constants.ErrBadRequest)
	}
	return &year, nil
}

func queryInt(ctx echo.Context, name string, def int) (int, error) {
	raw := strings.TrimSpace(ctx.QueryParam(name))
	if raw == "" {
		return def, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s %q: %w", name, raw, constants.ErrBadRequest)
	}
	return n, nil
}
