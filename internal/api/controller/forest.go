package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/ougirez/forestwatch/internal/domain"
	"github.com/ougirez/forestwatch/internal/pkg/refdata"
	"net/http"
)

func (c *Controller) GetSummary(ctx echo.Context) error {
	return respond(ctx, c.dashboard.Summary(ctx.Request().Context()))
}

func (c *Controller) GetCountries(ctx echo.Context) error {
	return respond(ctx, c.dashboard.Countries(ctx.Request().Context()))
}

func (c *Controller) GetLossTrend(ctx echo.Context) error {
	return respond(ctx, c.dashboard.LossTrend(ctx.Request().Context(), queryCountry(ctx)))
}

func (c *Controller) GetPrimaryLossTrend(ctx echo.Context) error {
	return respond(ctx, c.dashboard.PrimaryLossTrend(ctx.Request().Context(), queryCountry(ctx)))
}

func (c *Controller) GetCumulativeLossTrend(ctx echo.Context) error {
	return respond(ctx, c.dashboard.CumulativeLossTrend(ctx.Request().Context(), queryCountry(ctx)))
}

func (c *Controller) GetCumulativePrimaryLoss(ctx echo.Context) error {
	return respond(ctx, c.dashboard.CumulativePrimaryLoss(ctx.Request().Context(), queryCountry(ctx)))
}

func (c *Controller) GetCumulativeDrivers(ctx echo.Context) error {
	return respond(ctx, c.dashboard.CumulativeDrivers(ctx.Request().Context(), queryCountry(ctx)))
}

func (c *Controller) GetEmissions(ctx echo.Context) error {
	return respond(ctx, c.dashboard.Emissions(ctx.Request().Context(), queryCountry(ctx)))
}

func (c *Controller) GetDrivers(ctx echo.Context) error {
	year, err := queryYear(ctx, "year")
	if err != nil {
		return err
	}

	return respond(ctx, c.dashboard.Drivers(ctx.Request().Context(), queryCountry(ctx), year))
}

func (c *Controller) GetMapData(ctx echo.Context) error {
	year, err := queryYear(ctx, "year")
	if err != nil {
		return err
	}

	return respond(ctx, c.dashboard.MapData(ctx.Request().Context(), year))
}

func (c *Controller) GetPrimaryMapData(ctx echo.Context) error {
	year, err := queryYear(ctx, "year")
	if err != nil {
		return err
	}

	var y domain.Year
	if year != nil {
		y = *year
	}
	return respond(ctx, c.dashboard.PrimaryMapData(ctx.Request().Context(), y))
}

// MapMatchResponse is what a map hover shows for one geometry.
type MapMatchResponse struct {
	Geometry  string          `json:"geometry"`
	Country   string          `json:"country"`
	Code      string          `json:"code"`
	HasData   bool            `json:"has_data"`
	Cell      *domain.MapCell `json:"cell,omitempty"`
	Formatted string          `json:"formatted"`
}

// GetMapMatch resolves a map geometry name against the map data of a year.
func (c *Controller) GetMapMatch(ctx echo.Context) error {
	geometry := ctx.QueryParam("geometry")
	year, err := queryYear(ctx, "year")
	if err != nil {
		return err
	}

	res := c.dashboard.MapData(ctx.Request().Context(), year)
	if res.IsError() || res.IsLoading() {
		return respond(ctx, res)
	}

	country := refdata.ResolveGeometryName(geometry)
	out := MapMatchResponse{
		Geometry:  geometry,
		Country:   country,
		Code:      refdata.Normalize(country).Code,
		Formatted: "No data",
	}
	if cell, ok := refdata.MatchCell(res.Data, geometry); ok {
		out.HasData = true
		out.Cell = &cell
		out.Formatted = domain.FormatHectares(cell.TreeCoverLossHa)
	}

	return ctx.JSON(http.StatusOK, out)
}
