package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Métricas do gateway de requisições contra o servidor de torneio
var (
	gatewayRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "torneo_gateway_requests_total",
		Help: "Requisições HTTP emitidas contra a API do torneio, por método e status.",
	}, []string{"method", "status"})

	gatewayDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "torneo_gateway_request_duration_seconds",
		Help:    "Duração das requisições contra a API do torneio.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	gatewayCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "torneo_gateway_read_cache_hits_total",
		Help: "Leituras servidas pelo cache de 60s sem ir à rede.",
	})
)

// ObserveRequest registra uma requisição concluída no gateway
func ObserveRequest(method, status string, elapsed time.Duration) {
	gatewayRequests.WithLabelValues(method, status).Inc()
	gatewayDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// ObserveCacheHit registra um acerto do cache de leitura
func ObserveCacheHit() {
	gatewayCacheHits.Inc()
}
