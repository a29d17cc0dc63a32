// Package adminweb é a camada web do painel administrativo: serve o shell
// da página e os fragmentos/ações que a página consome.
package adminweb

import (
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/radieske/torneo-panel/internal/actions"
	"github.com/radieske/torneo-panel/internal/alerts"
	"github.com/radieske/torneo-panel/internal/forms"
	"github.com/radieske/torneo-panel/internal/store"
	"github.com/radieske/torneo-panel/internal/torneo/dto"
	"github.com/radieske/torneo-panel/internal/torneo/gateway"
	"github.com/radieske/torneo-panel/internal/view"
)

type Server struct {
	log    *zap.Logger
	gw     *gateway.Client
	store  *store.Store
	forms  *forms.Controller
	acts   *actions.Handler
	center *alerts.Center
	now    func() time.Time
}

func NewServer(log *zap.Logger, gw *gateway.Client, st *store.Store, fc *forms.Controller, ah *actions.Handler, center *alerts.Center) *Server {
	return &Server{log: log, gw: gw, store: st, forms: fc, acts: ah, center: center, now: time.Now}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/", s.page)
	r.Get("/alerts", s.drainAlerts)
	r.Post("/reload", s.reload)
	r.Get("/logout", s.logout)

	r.Get("/fragments/stats", s.fragStats)
	r.Get("/fragments/equipos", s.fragEquipos)
	r.Get("/fragments/partidos", s.fragPartidos)
	r.Get("/fragments/selects", s.fragSelects)

	r.Post("/forms/equipo", s.formEquipo)
	r.Post("/forms/partido", s.formPartido)
	r.Post("/forms/jugador", s.formJugador)

	r.Post("/actions/partido/{id}/simular", s.simulate)
	r.Post("/actions/equipo/{id}/editar", s.editTeam)
	r.Post("/actions/equipo/{id}/eliminar", s.deleteTeam)
	r.Post("/actions/partido/{id}/editar", s.editMatch)
	r.Post("/actions/partido/{id}/eliminar", s.deleteMatch)
	return r
}

func (s *Server) page(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = pageTmpl.Execute(w, nil)
}

func (s *Server) drainAlerts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.center.Drain())
}

func (s *Server) reload(w http.ResponseWriter, r *http.Request) {
	s.store.Reload(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, s.gw.LogoutURL(), http.StatusFound)
}

func (s *Server) fragStats(w http.ResponseWriter, r *http.Request) {
	writeFragment(w, view.Stats(s.store.Current()))
}

func (s *Server) fragEquipos(w http.ResponseWriter, r *http.Request) {
	writeFragment(w, view.TeamsList(s.store.Current().Equipos))
}

// fragPartidos aplica o filtro (all|pending|simulated) e a busca por texto
// antes de montar os cards
func (s *Server) fragPartidos(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Current()
	filtered := view.FilterMatches(snap.Partidos, view.MatchFilter(r.URL.Query().Get("filter")))

	q := r.URL.Query().Get("q")
	if q == "" {
		writeFragment(w, view.MatchesList(filtered, s.now()))
		return
	}

	// busca esconde cards em vez de re-renderizar a lista
	var b strings.Builder
	for _, p := range filtered {
		card := view.MatchesList([]dto.Partido{p}, s.now())
		if view.SearchVisible(card, q) {
			b.WriteString(card)
		} else {
			b.WriteString(`<div style="display:none">` + card + `</div>`)
		}
	}
	out := b.String()
	if out == "" {
		out = `<div class="empty-state"><p>No hay partidos programados</p></div>`
	}
	writeFragment(w, out)
}

func (s *Server) fragSelects(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Current()
	selected := r.URL.Query().Get("selected")

	switch r.URL.Query().Get("kind") {
	case "equipo-local":
		writeFragment(w, view.TeamOptions(snap.Equipos, selected, "Seleccione equipo local"))
	case "equipo-visitante":
		writeFragment(w, view.TeamOptions(snap.Equipos, selected, "Seleccione equipo visitante"))
	case "equipo":
		writeFragment(w, view.TeamOptions(snap.Equipos, selected, "Seleccione equipo"))
	case "jugador":
		writeFragment(w, view.PlayerOptions(snap.Jugadores, snap.Equipos, selected))
	case "arbitro":
		writeFragment(w, view.RefereeOptions(snap.Arbitros, selected))
	default:
		http.Error(w, "kind inválido", http.StatusBadRequest)
	}
}

func (s *Server) formEquipo(w http.ResponseWriter, r *http.Request) {
	s.forms.SubmitTeam(r.Context(), forms.TeamInput{Nombre: r.FormValue("nombre")})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) formPartido(w http.ResponseWriter, r *http.Request) {
	s.forms.SubmitMatch(r.Context(), forms.MatchInput{
		EquipoLocalID:     r.FormValue("equipo_local_id"),
		EquipoVisitanteID: r.FormValue("equipo_visitante_id"),
		ArbitroID:         r.FormValue("arbitro_id"),
		Fecha:             r.FormValue("fecha"),
	})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) formJugador(w http.ResponseWriter, r *http.Request) {
	s.forms.SubmitAssignPlayer(r.Context(), forms.AssignPlayerInput{
		JugadorID: r.FormValue("jugador_id"),
		EquipoID:  r.FormValue("equipo_id"),
		Posicion:  r.FormValue("posicion"),
	})
	w.WriteHeader(http.StatusNoContent)
}

// dialogFrom monta o diálogo já resolvido pela página: a confirmação (ou o
// valor do prompt) chega junto com a ação, nada bloqueia o servidor
func dialogFrom(r *http.Request) actions.AutoConfirm {
	return actions.AutoConfirm{
		Accepted: r.FormValue("confirmado") == "true",
		Value:    r.FormValue("valor"),
	}
}

func (s *Server) simulate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	s.acts.Simulate(r.Context(), dialogFrom(r), id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) editTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	s.acts.EditTeam(r.Context(), dialogFrom(r), id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	s.acts.DeleteTeam(r.Context(), dialogFrom(r), id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) editMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	s.acts.EditMatch(r.Context(), dialogFrom(r), id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	s.acts.DeleteMatch(r.Context(), dialogFrom(r), id)
	w.WriteHeader(http.StatusNoContent)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "id inválido", http.StatusBadRequest)
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

var pageTmpl = template.Must(template.New("admin").Parse(`<!doctype html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Panel de Administración del Torneo</title>
</head>
<body data-panel="admin">
<div id="alerts-container"></div>
<section id="stats" data-fragment="/fragments/stats"></section>
<section id="vista-equipos" data-fragment="/fragments/equipos"></section>
<section id="vista-partidos" data-fragment="/fragments/partidos"></section>
<form id="form-team" data-submit="/forms/equipo"></form>
<form id="form-match" data-submit="/forms/partido"></form>
<form id="form-player" data-submit="/forms/jugador"></form>
<a id="logout-btn" href="/logout">Cerrar sesión</a>
</body>
</html>
`))
