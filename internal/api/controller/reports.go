package controller

import (
	"fmt"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/ougirez/forestwatch/internal/domain"
	"github.com/ougirez/forestwatch/internal/pkg/constants"
	"github.com/ougirez/forestwatch/internal/pkg/store"
	"net/http"
)

func (c *Controller) ListReports(ctx echo.Context) error {
	country := queryCountry(ctx)
	stakeholder := domain.Stakeholder(ctx.QueryParam("stakeholder"))

	limit, err := queryInt(ctx, "limit", 0)
	if err != nil {
		return err
	}

	opts := store.ListReportsOpts{
		Limit: uint64(limit),
	}
	if country != "" {
		opts.Country = &country
	}
	if stakeholder != "" {
		if !stakeholder.Valid() {
			return fmt.Errorf("stakeholder %q: %w", stakeholder, constants.ErrBadRequest)
		}
		opts.Stakeholder = &stakeholder
	}

	reports, err := c.reports.List(ctx.Request().Context(), opts)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, reports)
}

func (c *Controller) GetReport(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return fmt.Errorf("report id: %w", constants.ErrBadRequest)
	}

	r, err := c.reports.Get(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	if ctx.QueryParam("format") == "text" {
		return ctx.String(http.StatusOK, r.PlainText)
	}
	return ctx.JSON(http.StatusOK, r)
}
