package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/radieske/torneo-panel/internal/torneo/gateway"
)

func jsonHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func failHandler(w http.ResponseWriter, r *http.Request) {
	http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
}

func TestReloadToleratesSingleFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/torneo/api/equipos/", jsonHandler(`[{"id":1,"nombre":"Lions"},{"id":2,"nombre":"Tigers"}]`))
	mux.HandleFunc("/torneo/api/partidos/", failHandler) // só os partidos caem
	mux.HandleFunc("/torneo/api/jugadores/", jsonHandler(`[{"id":7,"nombre":"Ana","apellido":"Ruiz"}]`))
	mux.HandleFunc("/torneo/api/arbitros/", jsonHandler(`[{"id":3,"nombre":"Luis","apellido":"Mora"}]`))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	gw := gateway.New(srv.URL, nil, zap.NewNop())
	st := New(gw, zap.NewNop())

	snap := st.Reload(context.Background())

	if len(snap.Equipos) != 2 {
		t.Errorf("equipos = %d, quero 2", len(snap.Equipos))
	}
	if len(snap.Jugadores) != 1 {
		t.Errorf("jugadores = %d, quero 1", len(snap.Jugadores))
	}
	if len(snap.Arbitros) != 1 {
		t.Errorf("arbitros = %d, quero 1", len(snap.Arbitros))
	}
	// a coleção que falhou fica vazia, nunca nil nem abortando o resto
	if snap.Partidos == nil || len(snap.Partidos) != 0 {
		t.Errorf("partidos = %v, quero coleção vazia", snap.Partidos)
	}
}

func TestReloadReplacesSnapshotAndNotifies(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/torneo/api/equipos/", jsonHandler(`[{"id":1,"nombre":"Lions"}]`))
	mux.HandleFunc("/torneo/api/partidos/", jsonHandler(`[]`))
	mux.HandleFunc("/torneo/api/jugadores/", jsonHandler(`[]`))
	mux.HandleFunc("/torneo/api/arbitros/", jsonHandler(`[]`))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	gw := gateway.New(srv.URL, nil, zap.NewNop())
	st := New(gw, zap.NewNop())

	var notified int
	st.Subscribe(func(s Snapshot) { notified++ })

	st.Reload(context.Background())
	st.Reload(context.Background())

	if notified != 2 {
		t.Errorf("assinante chamado %d vezes, quero 2", notified)
	}
	if got := st.Current(); len(got.Equipos) != 1 {
		t.Errorf("snapshot corrente com %d equipos, quero 1", len(got.Equipos))
	}
}
