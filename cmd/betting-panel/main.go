package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/radieske/torneo-panel/internal/alerts"
	"github.com/radieske/torneo-panel/internal/betting"
	"github.com/radieske/torneo-panel/internal/shared/cache"
	"github.com/radieske/torneo-panel/internal/shared/config"
	"github.com/radieske/torneo-panel/internal/shared/logger"
	"github.com/radieske/torneo-panel/internal/shared/metrics"
	"github.com/radieske/torneo-panel/internal/store"
	"github.com/radieske/torneo-panel/internal/torneo/gateway"
	"github.com/radieske/torneo-panel/internal/web/betweb"
)

func main() {
	if os.Getenv("SERVICE_NAME") == "" {
		os.Setenv("SERVICE_NAME", "betting-panel")
	}
	cfg := config.Load()
	log, _ := logger.New(cfg.ServiceName, cfg.Env)
	defer log.Sync()

	var rc gateway.ReadCache = gateway.NewMemoryCache(cfg.ReadCacheTTL)
	if cfg.RedisAddr != "" {
		rdb, err := cache.ConnectRedis(cfg.RedisAddr)
		if err != nil {
			log.Fatal("redis", zap.Error(err))
		}
		rc = gateway.NewRedisCache(rdb, cfg.ReadCacheTTL)
	}

	gw := gateway.New(cfg.TorneoBaseURL, rc, log)

	ctx := context.Background()
	if err := gw.PrimeCSRF(ctx); err != nil {
		log.Warn("csrf prime", zap.Error(err))
	}

	center := alerts.NewCenter()
	st := store.New(gw, log)
	st.Reload(ctx)
	st.StartSilentRefresh(ctx, cfg.RefreshInterval)

	widget := betting.New(gw, center, log)

	api := betweb.NewServer(log, gw, st, widget, center)
	apiSrv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: api.Router(),
	}

	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		return gw.PrimeCSRF(ctx)
	})

	log.Info("betting-panel listening",
		zap.String("addr", apiSrv.Addr),
		zap.String("upstream", cfg.TorneoBaseURL))
	if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("api", zap.Error(err))
	}
}
