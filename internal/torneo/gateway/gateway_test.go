package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/torneo-panel/internal/torneo/dto"
)

func rechargeFixture() dto.RecargaRequest {
	return dto.RecargaRequest{
		Monto:      50.5,
		MetodoPago: "tarjeta",
		DatosPago:  dto.DatosPago{Numero: "4111", Titular: "Ana", Expiracion: "12/27", CVV: "123"},
	}
}

func TestReadCacheServesWithinWindow(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"nombre":"Lions"}]`))
	}))
	defer srv.Close()

	mc := NewMemoryCache(60 * time.Second)
	base := time.Now()
	mc.now = func() time.Time { return base }

	c := New(srv.URL, mc, zap.NewNop())
	ctx := context.Background()

	if _, err := c.ListEquipos(ctx); err != nil {
		t.Fatalf("primeira leitura: %v", err)
	}
	if _, err := c.ListEquipos(ctx); err != nil {
		t.Fatalf("segunda leitura: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("dentro da janela: %d chamadas de rede, quero 1", got)
	}

	// janela vencida: nova chamada de rede
	base = base.Add(61 * time.Second)
	if _, err := c.ListEquipos(ctx); err != nil {
		t.Fatalf("terceira leitura: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("após a janela: %d chamadas de rede, quero 2", got)
	}
}

func TestMutationsBypassCache(t *testing.T) {
	var posts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			atomic.AddInt32(&posts, 1)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"nombre":"Lions"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, NewMemoryCache(time.Minute), zap.NewNop())
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := c.AgregarEquipo(ctx, "Lions"); err != nil {
			t.Fatalf("AgregarEquipo: %v", err)
		}
	}
	if got := atomic.LoadInt32(&posts); got != 2 {
		t.Errorf("POSTs emitidos = %d, quero 2", got)
	}
}

func TestRequestErrorCarriesServerMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"campo error", `{"error":"Falta nombre"}`, "Falta nombre"},
		{"campo message", `{"message":"sin permiso"}`, "sin permiso"},
		{"corpo cru", `algo salió mal`, "algo salió mal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := New(srv.URL, nil, zap.NewNop())
			_, err := c.ListPartidos(context.Background())
			var reqErr *RequestError
			if !errors.As(err, &reqErr) {
				t.Fatalf("quero *RequestError, veio %v", err)
			}
			if reqErr.Status != http.StatusBadRequest {
				t.Errorf("status = %d, quero 400", reqErr.Status)
			}
			if reqErr.Message != tt.want {
				t.Errorf("message = %q, quero %q", reqErr.Message, tt.want)
			}
		})
	}
}

func TestCSRFTokenEchoedOnMutations(t *testing.T) {
	var gotHeader string
	mux := http.NewServeMux()
	mux.HandleFunc("/torneo/api/csrf-token/", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "tok-123", Path: "/"})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})
	mux.HandleFunc("/torneo/api/agregar_equipo/", func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-CSRFToken")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"nombre":"Lions"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL, nil, zap.NewNop())
	ctx := context.Background()
	if err := c.PrimeCSRF(ctx); err != nil {
		t.Fatalf("PrimeCSRF: %v", err)
	}
	if _, err := c.AgregarEquipo(ctx, "Lions"); err != nil {
		t.Fatalf("AgregarEquipo: %v", err)
	}
	if gotHeader != "tok-123" {
		t.Errorf("X-CSRFToken = %q, quero tok-123", gotHeader)
	}
}

func TestRecargarSaldoRequiresNuevoSaldo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"saldo": 150.0}`)) // forma fora do contrato
	}))
	defer srv.Close()

	c := New(srv.URL, nil, zap.NewNop())
	_, err := c.RecargarSaldo(context.Background(), rechargeFixture())
	if !errors.Is(err, ErrRespuestaInvalida) {
		t.Fatalf("quero ErrRespuestaInvalida, veio %v", err)
	}
}

func TestRecargarSaldoReturnsConfirmedBalance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"nuevo_saldo": 150.5}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil, zap.NewNop())
	saldo, err := c.RecargarSaldo(context.Background(), rechargeFixture())
	if err != nil {
		t.Fatalf("RecargarSaldo: %v", err)
	}
	if saldo != 150.5 {
		t.Errorf("saldo = %v, quero 150.5", saldo)
	}
}
