package api

import (
	"context"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/ougirez/forestwatch/internal/api/controller"
	"github.com/ougirez/forestwatch/internal/pkg/constants"
	"github.com/ougirez/forestwatch/internal/pkg/logger"
	"github.com/ougirez/forestwatch/internal/service/dashboard"
	"github.com/ougirez/forestwatch/internal/service/export"
	"github.com/ougirez/forestwatch/internal/service/report"
	"github.com/spf13/viper"
	"net/http"
	"strings"
)

type APIService struct {
	router *echo.Echo
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func (svc *APIService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	svc.router.ServeHTTP(w, r)
}

func NewAPIService(dashboardService *dashboard.Service, reportService *report.Service, exportService *export.Service) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.HideBanner = true
	svc.router.Logger.SetLevel(echoLogLevel(viper.GetString(constants.ViperLogLevelKey)))
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = NewJSONSerializer()
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Recover())
	svc.router.Use(middleware.RequestID())
	svc.router.Use(svc.RequestContextMiddleware)
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: viper.GetStringSlice(constants.ViperCORSOriginsKey),
		AllowMethods: []string{echo.GET, echo.POST},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(dashboardService, reportService, exportService)

	api.GET("/summary", cntrl.GetSummary)
	api.GET("/countries", cntrl.GetCountries)
	api.GET("/loss-trend", cntrl.GetLossTrend)
	api.GET("/primary-loss-trend", cntrl.GetPrimaryLossTrend)
	api.GET("/cumulative-loss-trend", cntrl.GetCumulativeLossTrend)
	api.GET("/cumulative-primary-loss", cntrl.GetCumulativePrimaryLoss)
	api.GET("/cumulative-drivers", cntrl.GetCumulativeDrivers)
	api.GET("/drivers", cntrl.GetDrivers)
	api.GET("/emissions", cntrl.GetEmissions)
	api.GET("/map-data", cntrl.GetMapData)
	api.GET("/primary-map-data", cntrl.GetPrimaryMapData)
	api.GET("/map-match", cntrl.GetMapMatch)

	api.POST("/predict", cntrl.Predict)
	api.POST("/predict/multi", cntrl.PredictMulti)

	global := api.Group("/global")
	global.GET("/loss-trend", cntrl.GetGlobalLossTrend)
	global.GET("/drivers", cntrl.GetGlobalDrivers)
	global.GET("/top-total", cntrl.GetTopTotalLoss)
	global.GET("/top-primary", cntrl.GetTopPrimaryLoss)

	recommendations := api.Group("/recommendations")
	recommendations.POST("", cntrl.GetRecommendations)
	recommendations.GET("/templates", cntrl.GetRecommendationTemplates)
	recommendations.POST("/invalidate", cntrl.InvalidateRecommendations)
	api.POST("/insights", cntrl.GetInsights)

	reports := api.Group("/reports")
	reports.GET("", cntrl.ListReports)
	reports.GET("/:id", cntrl.GetReport)

	api.GET("/export/:country", cntrl.ExportCountry)
	api.POST("/events/:event", cntrl.PostEvent)

	admin := api.Group("/admin", svc.AdminMiddleware)
	admin.POST("/cache/invalidate", cntrl.InvalidateCache)

	return svc, nil
}

func echoLogLevel(level string) log.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}
