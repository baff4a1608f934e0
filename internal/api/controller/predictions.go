package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/ougirez/forestwatch/internal/domain"
)

type PredictRequest struct {
	Country string      `json:"country" validate:"required"`
	Year    domain.Year `json:"year" validate:"required"`
}

type PredictMultiRequest struct {
	Countries []string    `json:"countries" validate:"required,min=1,dive,required"`
	Year      domain.Year `json:"year" validate:"required"`

	// Each asks for one request per country instead of a single batch call.
	Each bool `json:"each"`
}

func (c *Controller) Predict(ctx echo.Context) error {
	var req PredictRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	return respond(ctx, c.dashboard.Prediction(ctx.Request().Context(), req.Country, req.Year))
}

func (c *Controller) PredictMulti(ctx echo.Context) error {
	var req PredictMultiRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if req.Each {
		return respond(ctx, c.dashboard.MultiPredictionEach(ctx.Request().Context(), req.Countries, req.Year))
	}
	return respond(ctx, c.dashboard.MultiPrediction(ctx.Request().Context(), req.Countries, req.Year))
}
