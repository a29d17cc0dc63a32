// Package betweb é a camada web do widget de apostas: saldo, apostas,
// probabilidade/gráfico por equipo e recarga de saldo.
package betweb

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/radieske/torneo-panel/internal/alerts"
	"github.com/radieske/torneo-panel/internal/betting"
	"github.com/radieske/torneo-panel/internal/store"
	"github.com/radieske/torneo-panel/internal/torneo/gateway"
	"github.com/radieske/torneo-panel/internal/view"
)

type Server struct {
	log    *zap.Logger
	gw     *gateway.Client
	store  *store.Store
	widget *betting.Widget
	center *alerts.Center
}

func NewServer(log *zap.Logger, gw *gateway.Client, st *store.Store, wd *betting.Widget, center *alerts.Center) *Server {
	return &Server{log: log, gw: gw, store: st, widget: wd, center: center}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/", s.page)
	r.Get("/alerts", s.drainAlerts)
	r.Get("/logout", s.logout)

	r.Get("/fragments/apuestas", s.fragApuestas)
	r.Get("/fragments/saldo", s.fragSaldo)
	r.Get("/fragments/selects", s.fragSelects)
	r.Get("/fragments/probabilidad", s.fragProbabilidad)
	r.Get("/fragments/grafica", s.fragGrafica)

	r.Post("/forms/apuesta", s.formApuesta)
	r.Post("/forms/recarga", s.formRecarga)
	return r
}

func (s *Server) page(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = pageTmpl.Execute(w, nil)
}

func (s *Server) drainAlerts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.center.Drain())
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, s.gw.LogoutURL(), http.StatusFound)
}

func (s *Server) fragApuestas(w http.ResponseWriter, r *http.Request) {
	apuestas, err := s.gw.ListApuestas(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeFragment(w, betting.BetsList(apuestas))
}

func (s *Server) fragSaldo(w http.ResponseWriter, r *http.Request) {
	saldo, err := s.gw.Saldo(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeFragment(w, fmt.Sprintf("%.2f", saldo))
}

func (s *Server) fragSelects(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Current()
	selected := r.URL.Query().Get("selected")

	switch r.URL.Query().Get("kind") {
	case "equipo":
		writeFragment(w, view.TeamOptions(snap.Equipos, selected, "Seleccione equipo"))
	case "partido":
		writeFragment(w, view.MatchOptions(snap.Partidos, selected))
	default:
		http.Error(w, "kind inválido", http.StatusBadRequest)
	}
}

// fragProbabilidad responde a probabilidade de vitória do equipo, derivada
// das estatísticas do servidor
func (s *Server) fragProbabilidad(w http.ResponseWriter, r *http.Request) {
	id, ok := queryEquipoID(w, r)
	if !ok {
		return
	}
	stats, err := s.gw.EstadisticasEquipo(r.Context(), id)
	if err != nil {
		// o widget mostra N/A quando as estatísticas não vêm
		writeFragment(w, "N/A")
		return
	}
	writeFragment(w, betting.FormatProbability(stats))
}

func (s *Server) fragGrafica(w http.ResponseWriter, r *http.Request) {
	id, ok := queryEquipoID(w, r)
	if !ok {
		return
	}
	stats, err := s.gw.EstadisticasEquipo(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeFragment(w, betting.PieChart(stats))
}

func (s *Server) formApuesta(w http.ResponseWriter, r *http.Request) {
	s.widget.SubmitBet(r.Context(), betting.BetInput{
		EquipoID:  r.FormValue("equipo_id"),
		PartidoID: r.FormValue("partido_id"),
		Monto:     r.FormValue("monto"),
	})
	w.WriteHeader(http.StatusNoContent)
}

// formRecarga devolve o saldo confirmado pelo servidor quando a recarga
// passa; a página atualiza o display direto desse valor
func (s *Server) formRecarga(w http.ResponseWriter, r *http.Request) {
	nuevoSaldo, ok := s.widget.SubmitRecharge(r.Context(), betting.RechargeInput{
		Monto:      r.FormValue("monto"),
		MetodoPago: r.FormValue("metodo_pago"),
		Numero:     r.FormValue("numero"),
		Titular:    r.FormValue("titular"),
		Expiracion: r.FormValue("expiracion"),
		CVV:        r.FormValue("cvv"),
		Email:      r.FormValue("email"),
	})
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"nuevo_saldo": nuevoSaldo})
}

func queryEquipoID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.URL.Query().Get("equipo_id"), 10, 64)
	if err != nil {
		http.Error(w, "equipo_id inválido", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeFragment(w http.ResponseWriter, fragment string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(fragment))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

var pageTmpl = template.Must(template.New("betting").Parse(`<!doctype html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Apuestas del Torneo</title>
</head>
<body data-panel="betting">
<div id="alerts-container"></div>
<span id="saldo-usuario" data-fragment="/fragments/saldo"></span>
<select id="equipo-select" data-fragment="/fragments/selects?kind=equipo"></select>
<select id="partido-select" data-fragment="/fragments/selects?kind=partido"></select>
<span id="probabilidad-victoria" data-fragment="/fragments/probabilidad"></span>
<div id="grafica-estadisticas" data-fragment="/fragments/grafica"></div>
<ul id="apuestas-list" data-fragment="/fragments/apuestas"></ul>
<form id="form-apuesta" data-submit="/forms/apuesta"></form>
<form id="form-recarga" data-submit="/forms/recarga"></form>
</body>
</html>
`))
