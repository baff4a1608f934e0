package controller

import (
	"bytes"
	"fmt"
	"github.com/labstack/echo/v4"
	"net/http"
	"strings"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportCountry sends the loss, drivers and emissions series of a country as
// an Excel workbook.
func (c *Controller) ExportCountry(ctx echo.Context) error {
	country := strings.TrimSpace(ctx.Param("country"))

	var buf bytes.Buffer
	if err := c.export.Write(ctx.Request().Context(), country, &buf); err != nil {
		return err
	}

	filename := strings.ReplaceAll(country, " ", "_") + ".xlsx"
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return ctx.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}
