package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/ougirez/forestwatch/internal/domain"
	"net/http"
)

func (c *Controller) GetRecommendations(ctx echo.Context) error {
	var rc domain.RecommendationContext
	if err := ctx.Bind(&rc); err != nil {
		return err
	}

	return respond(ctx, c.dashboard.Recommendations(ctx.Request().Context(), rc))
}

func (c *Controller) GetInsights(ctx echo.Context) error {
	var req domain.InsightRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	return respond(ctx, c.dashboard.Insights(ctx.Request().Context(), req))
}

func (c *Controller) GetRecommendationTemplates(ctx echo.Context) error {
	return respond(ctx, c.dashboard.RecommendationTemplates(ctx.Request().Context()))
}

type InvalidateRecommendationsRequest struct {
	Country  string `json:"country"`
	Insights bool   `json:"insights"`
}

type InvalidatedResponse struct {
	Invalidated int `json:"invalidated"`
}

// InvalidateRecommendations forces the next request for country to generate a
// new report.
func (c *Controller) InvalidateRecommendations(ctx echo.Context) error {
	var req InvalidateRecommendationsRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	n := c.dashboard.InvalidateRecommendations(req.Country)
	if req.Insights {
		n += c.dashboard.InvalidateInsights()
	}

	return ctx.JSON(http.StatusOK, InvalidatedResponse{Invalidated: n})
}
