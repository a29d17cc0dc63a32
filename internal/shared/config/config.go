package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config centraliza variáveis de ambiente e parâmetros de execução dos painéis
// Inclui a URL do servidor de torneio, cache e portas
type Config struct {
	Env         string `yaml:"env"`          // "local", "dev", "prod"
	ServiceName string `yaml:"service_name"` // ex: "admin-panel", "betting-panel"

	// Servidor de torneio (mitorneo) — dono de toda a persistência e regras
	TorneoBaseURL string `yaml:"torneo_base_url"`

	// Cache de leitura do gateway; Redis é opcional (vazio = cache em memória)
	RedisAddr    string        `yaml:"redis_addr"`
	ReadCacheTTL time.Duration `yaml:"read_cache_ttl"`

	// Intervalo do refresh silencioso do espelho de dados
	RefreshInterval time.Duration `yaml:"refresh_interval"`

	// Portas do serviço atual
	HTTPPort    string `yaml:"http_port"`    // Porta pública do painel
	MetricsPort string `yaml:"metrics_port"` // Porta exclusiva para /metrics e /healthz
}

// Load carrega variáveis de ambiente e define defaults para cada painel
// Se CONFIG_PATH apontar para um YAML, os valores do arquivo têm precedência
func Load() Config {
	svc := getEnv("SERVICE_NAME", "")
	env := getEnv("ENV", "local")

	cfg := Config{
		Env:         env,
		ServiceName: svc,

		TorneoBaseURL: getEnv("TORNEO_BASE_URL", "http://localhost:8000"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),

		ReadCacheTTL:    getDuration("READ_CACHE_TTL", 60*time.Second),
		RefreshInterval: getDuration("REFRESH_INTERVAL", 30*time.Second),
	}

	// Define portas padrão para cada painel
	switch svc {
	case "betting-panel":
		cfg.HTTPPort = getEnv("HTTP_PORT_BETTING", "8091")
		cfg.MetricsPort = getEnv("METRICS_PORT_BETTING", "9091")
	default: // admin-panel
		cfg.HTTPPort = getEnv("HTTP_PORT", "8090")
		cfg.MetricsPort = getEnv("METRICS_PORT", "9090")
	}

	if path := getEnv("CONFIG_PATH", ""); path != "" {
		if err := overlayFile(&cfg, path); err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
		}
	}

	return cfg
}

// overlayFile aplica um arquivo YAML por cima dos defaults/env
func overlayFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// getEnv retorna o valor da variável de ambiente ou o default
func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

// getDuration faz parse de uma duração ("60s", "1m") com default
func getDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
