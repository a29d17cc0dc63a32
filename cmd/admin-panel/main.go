package main

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/radieske/torneo-panel/internal/actions"
	"github.com/radieske/torneo-panel/internal/alerts"
	"github.com/radieske/torneo-panel/internal/forms"
	"github.com/radieske/torneo-panel/internal/shared/cache"
	"github.com/radieske/torneo-panel/internal/shared/config"
	"github.com/radieske/torneo-panel/internal/shared/logger"
	"github.com/radieske/torneo-panel/internal/shared/metrics"
	"github.com/radieske/torneo-panel/internal/store"
	"github.com/radieske/torneo-panel/internal/torneo/gateway"
	"github.com/radieske/torneo-panel/internal/web/adminweb"
)

func main() {
	cfg := config.Load()
	if cfg.ServiceName == "" {
		cfg.ServiceName = "admin-panel"
	}
	log, _ := logger.New(cfg.ServiceName, cfg.Env)
	defer log.Sync()

	// Cache de leitura: memória por padrão; Redis quando configurado
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
		// sem o token as mutações vão falhar no servidor; o painel segue de pé
		log.Warn("csrf prime", zap.Error(err))
	}

	center := alerts.NewCenter()
	st := store.New(gw, log)

	// carga inicial + refresh silencioso
	st.Reload(ctx)
	st.StartSilentRefresh(ctx, cfg.RefreshInterval)

	fc := forms.New(gw, st, center, log)
	ah := actions.New(gw, st, center, log)

	api := adminweb.NewServer(log, gw, st, fc, ah, center)
	apiSrv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: api.Router(),
	}

	// metrics/health: saudável se o servidor de torneio responde
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		return gw.PrimeCSRF(ctx)
	})

	log.Info("admin-panel listening",
		zap.String("addr", apiSrv.Addr),
		zap.String("upstream", cfg.TorneoBaseURL))
	if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("api", zap.Error(err))
	}
}
