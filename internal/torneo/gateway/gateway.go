// Package gateway envolve as chamadas HTTP contra o servidor de torneio:
// cabeçalhos, token anti-forgery, cache de leitura e erros uniformes.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/torneo-panel/internal/shared/metrics"
)

const csrfCookie = "csrftoken"

// Client fala com a API do torneio. Toda mutação ecoa o cookie csrftoken
// no header X-CSRFToken, como o servidor exige.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Cache   ReadCache
	log     *zap.Logger
}

func New(base string, cache ReadCache, log *zap.Logger) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		BaseURL: strings.TrimRight(base, "/"),
		HTTP:    &http.Client{Timeout: 10 * time.Second, Jar: jar},
		Cache:   cache,
		log:     log,
	}
}

// PrimeCSRF pede o token anti-forgery pro servidor; o cookie fica no jar
func (c *Client) PrimeCSRF(ctx context.Context) error {
	return c.request(ctx, http.MethodGet, "/torneo/api/csrf-token/", nil, nil, false)
}

// csrfToken lê o cookie csrftoken do jar; vazio se a sessão não foi iniciada
func (c *Client) csrfToken() string {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return ""
	}
	for _, ck := range c.HTTP.Jar.Cookies(u) {
		if ck.Name == csrfCookie {
			return ck.Value
		}
	}
	return ""
}

// get faz uma leitura idempotente, passando pelo memo de frescor fixo
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.request(ctx, http.MethodGet, path, nil, out, true)
}

// send faz uma chamada mutante (POST/PUT/DELETE), nunca cacheada
func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	return c.request(ctx, method, path, body, out, false)
}

func (c *Client) request(ctx context.Context, method, path string, body, out any, cacheable bool) error {
	if cacheable && c.Cache != nil {
		if raw, ok := c.Cache.Get(ctx, path); ok {
			metrics.ObserveCacheHit()
			if out == nil {
				return nil
			}
			return decodeBody(raw, out)
		}
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if method != http.MethodGet && method != http.MethodHead {
		if tok := c.csrfToken(); tok != "" {
			req.Header.Set("X-CSRFToken", tok)
		}
	}

	start := time.Now()
	res, err := c.HTTP.Do(req)
	if err != nil {
		metrics.ObserveRequest(method, "transport_error", time.Since(start))
		return fmt.Errorf("torneo: %s %s: %w", method, path, err)
	}
	defer res.Body.Close()
	metrics.ObserveRequest(method, strconv.Itoa(res.StatusCode), time.Since(start))

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("torneo: read body: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		reqErr := &RequestError{
			Status:  res.StatusCode,
			Message: extractMessage(raw),
			Body:    string(raw),
		}
		c.log.Warn("torneo request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", res.StatusCode))
		return reqErr
	}

	if cacheable && c.Cache != nil {
		c.Cache.Set(ctx, path, raw)
	}
	if out == nil {
		return nil
	}
	if !isJSON(res.Header.Get("Content-Type")) {
		if s, ok := out.(*string); ok {
			*s = string(raw)
			return nil
		}
		return fmt.Errorf("torneo: %s %s: resposta não-JSON: %w", method, path, ErrRespuestaInvalida)
	}
	return decodeBody(raw, out)
}

func decodeBody(raw []byte, out any) error {
	if s, ok := out.(*string); ok {
		*s = string(raw)
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func isJSON(contentType string) bool {
	return strings.Contains(contentType, "application/json")
}
