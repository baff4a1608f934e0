// Command forestwatch serves the deforestation dashboard backend.
//
// Usage:
//
//	forestwatch -config forestwatch.yaml
//	forestwatch -admin-token 24h    # print a signed admin cookie value and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ougirez/forestwatch/internal/api"
	"github.com/ougirez/forestwatch/internal/pkg/apiclient"
	"github.com/ougirez/forestwatch/internal/pkg/config"
	"github.com/ougirez/forestwatch/internal/pkg/logger"
	"github.com/ougirez/forestwatch/internal/pkg/query"
	"github.com/ougirez/forestwatch/internal/pkg/store"
	"github.com/ougirez/forestwatch/internal/pkg/store/xpgx"
	"github.com/ougirez/forestwatch/internal/pkg/utils"
	"github.com/ougirez/forestwatch/internal/service/dashboard"
	"github.com/ougirez/forestwatch/internal/service/export"
	"github.com/ougirez/forestwatch/internal/service/forest"
	"github.com/ougirez/forestwatch/internal/service/global"
	"github.com/ougirez/forestwatch/internal/service/report"
)

func main() {
	configPath := flag.String("config", "", "path to the config file")
	adminToken := flag.Duration("admin-token", 0, "print an admin token valid for the given duration and exit")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := logger.Init(config.LogLevel()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *adminToken > 0 {
		token, err := utils.GenerateAuthToken(*adminToken)
		if err != nil {
			fmt.Fprintln(os.Stderr, "admin token:", err)
			os.Exit(1)
		}
		fmt.Println(token)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logger.Fatal(ctx, err)
	}
}

func run(ctx context.Context) error {
	client := apiclient.NewClient(config.APIURL(),
		apiclient.WithGetTimeout(config.APITimeout()),
		apiclient.WithPostTimeout(config.PostTimeout()),
	)

	var st store.Store
	if dsn := config.DBDSN(); dsn != "" {
		pool, err := xpgx.Connect(ctx, dsn)
		if err != nil {
			return fmt.Errorf("xpgx.Connect: %w", err)
		}
		defer pool.Close()
		st = store.NewStore(pool)
	} else {
		logger.Info(ctx, "db.dsn is empty, generated reports will not be archived")
	}

	cache := query.NewCache()
	cache.Start(ctx, config.CacheSweepInterval())

	forestService := forest.NewForestService(client)
	reportService := report.NewReportService(st)
	dashboardService := dashboard.NewDashboardService(
		cache,
		forestService,
		global.NewGlobalService(forestService, config.TrendCountries()),
		reportService,
	)

	svc, err := api.NewAPIService(dashboardService, reportService, export.NewExportService(forestService))
	if err != nil {
		return fmt.Errorf("api.NewAPIService: %w", err)
	}

	go svc.Serve(config.HTTPAddr())
	logger.Infof(ctx, "serving on %s, data API %s", config.HTTPAddr(), client.BaseURL())

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout())
	defer cancel()
	if err := svc.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info(context.Background(), "stopped")
	return nil
}
