package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/ougirez/forestwatch/internal/service/global"
)

func (c *Controller) GetGlobalLossTrend(ctx echo.Context) error {
	return respond(ctx, c.dashboard.GlobalLossTrend(ctx.Request().Context()))
}

func (c *Controller) GetGlobalDrivers(ctx echo.Context) error {
	return respond(ctx, c.dashboard.GlobalDrivers(ctx.Request().Context()))
}

func (c *Controller) GetTopTotalLoss(ctx echo.Context) error {
	n, err := queryInt(ctx, "n", global.TopN)
	if err != nil {
		return err
	}

	return respond(ctx, c.dashboard.TopByTotalLoss(ctx.Request().Context(), n))
}

func (c *Controller) GetTopPrimaryLoss(ctx echo.Context) error {
	return respond(ctx, c.dashboard.TopByPrimaryLoss(ctx.Request().Context()))
}
