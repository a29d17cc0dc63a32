package actions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"

	"github.com/radieske/torneo-panel/internal/alerts"
	"github.com/radieske/torneo-panel/internal/store"
	"github.com/radieske/torneo-panel/internal/torneo/gateway"
)

type simFixture struct {
	srv       *httptest.Server
	simulates int32
	deletes   int32
	reloads   int32
}

func newSimFixture(t *testing.T, simBody string) *simFixture {
	t.Helper()
	f := &simFixture{}
	mux := http.NewServeMux()
	list := func(body string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&f.reloads, 1)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		}
	}
	mux.HandleFunc("/torneo/api/equipos/", list(`[{"id":1,"nombre":"Lions"}]`))
	mux.HandleFunc("/torneo/api/partidos/", list(`[{"id":7,"equipo_local":"Lions","equipo_visitante":"Tigers","fecha":"2026-08-01T18:00","arbitro":"Luis Mora","simulado":false}]`))
	mux.HandleFunc("/torneo/api/jugadores/", list(`[]`))
	mux.HandleFunc("/torneo/api/arbitros/", list(`[]`))
	mux.HandleFunc("/torneo/api/partido/7/simular/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&f.simulates, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(simBody))
	})
	mux.HandleFunc("/torneo/api/partido/7/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			atomic.AddInt32(&f.deletes, 1)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func newHandler(t *testing.T, f *simFixture) (*Handler, *alerts.Center, *store.Store) {
	t.Helper()
	gw := gateway.New(f.srv.URL, nil, zap.NewNop())
	st := store.New(gw, zap.NewNop())
	st.Reload(context.Background())
	atomic.StoreInt32(&f.reloads, 0) // zera a carga inicial
	center := alerts.NewCenter()
	return New(gw, st, center, zap.NewNop()), center, st
}

func TestSimulateSuccessNotifiesAndReloads(t *testing.T) {
	f := newSimFixture(t, `{"success":true,"equipo_local":"Lions","equipo_visitante":"Tigers","goles_local":2,"goles_visitante":1,"ganador":"Lions"}`)
	h, center, _ := newHandler(t, f)

	h.Simulate(context.Background(), AutoConfirm{Accepted: true}, 7)

	if got := atomic.LoadInt32(&f.simulates); got != 1 {
		t.Fatalf("simulações emitidas = %d, quero 1", got)
	}
	if atomic.LoadInt32(&f.reloads) == 0 {
		t.Error("sucesso deveria recarregar o espelho")
	}

	got := center.Drain()
	if len(got) == 0 {
		t.Fatal("nenhum alerta publicado")
	}
	msg := got[0].Message
	if got[0].Level != alerts.Success {
		t.Errorf("nível = %s, quero success", got[0].Level)
	}
	for _, want := range []string{"2", "1", "Lions"} {
		if !strings.Contains(msg, want) {
			t.Errorf("alerta sem %q: %s", want, msg)
		}
	}
}

func TestSimulateFailureNotifiesWithoutReload(t *testing.T) {
	f := newSimFixture(t, `{"success":false,"error":"busy"}`)
	h, center, _ := newHandler(t, f)

	h.Simulate(context.Background(), AutoConfirm{Accepted: true}, 7)

	if got := atomic.LoadInt32(&f.simulates); got != 1 {
		t.Fatalf("simulações emitidas = %d, quero 1", got)
	}
	if got := atomic.LoadInt32(&f.reloads); got != 0 {
		t.Errorf("falha de aplicação não deveria recarregar (reloads=%d)", got)
	}

	got := center.Drain()
	if len(got) != 1 || got[0].Level != alerts.Error {
		t.Fatalf("quero um alerta de erro, veio %+v", got)
	}
	if !strings.Contains(got[0].Message, "busy") {
		t.Errorf("alerta sem o motivo do servidor: %s", got[0].Message)
	}
}

func TestSimulateCancelledIssuesNoCall(t *testing.T) {
	f := newSimFixture(t, `{"success":true}`)
	h, center, _ := newHandler(t, f)

	h.Simulate(context.Background(), AutoConfirm{Accepted: false}, 7)

	if got := atomic.LoadInt32(&f.simulates); got != 0 {
		t.Errorf("cancelar não deveria emitir chamada (simulates=%d)", got)
	}
	if got := center.Drain(); len(got) != 0 {
		t.Errorf("cancelar não deveria publicar alertas: %+v", got)
	}
}

func TestDeleteMatchConfirmedAndCancelled(t *testing.T) {
	f := newSimFixture(t, `{}`)
	h, _, _ := newHandler(t, f)
	ctx := context.Background()

	h.DeleteMatch(ctx, AutoConfirm{Accepted: false}, 7)
	if got := atomic.LoadInt32(&f.deletes); got != 0 {
		t.Errorf("cancelado: deletes = %d, quero 0", got)
	}

	h.DeleteMatch(ctx, AutoConfirm{Accepted: true}, 7)
	if got := atomic.LoadInt32(&f.deletes); got != 1 {
		t.Errorf("confirmado: deletes = %d, quero 1", got)
	}
}

func TestEditTeamEmptyValueWarnsWithoutCall(t *testing.T) {
	f := newSimFixture(t, `{}`)
	h, center, _ := newHandler(t, f)

	h.EditTeam(context.Background(), AutoConfirm{Accepted: true, Value: "   "}, 1)

	got := center.Drain()
	if len(got) != 1 || got[0].Level != alerts.Warning {
		t.Fatalf("quero um warning, veio %+v", got)
	}
}
