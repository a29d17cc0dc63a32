// Package forms valida a entrada dos formulários contra o espelho corrente
// e encaminha ao gateway. O espelho pode estar velho em relação a edições
// de outras sessões; o servidor revalida e é a autoridade final.
package forms

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/torneo-panel/internal/alerts"
	"github.com/radieske/torneo-panel/internal/store"
	"github.com/radieske/torneo-panel/internal/torneo/dto"
	"github.com/radieske/torneo-panel/internal/torneo/gateway"
)

// Controller concentra os formulários do painel administrativo
type Controller struct {
	gw    *gateway.Client
	store *store.Store
	note  alerts.Notifier
	log   *zap.Logger
	now   func() time.Time
}

func New(gw *gateway.Client, st *store.Store, note alerts.Notifier, log *zap.Logger) *Controller {
	return &Controller{gw: gw, store: st, note: note, log: log, now: time.Now}
}

// Entradas por campo semântico, desacopladas do layout da página

type TeamInput struct {
	Nombre string
}

type MatchInput struct {
	EquipoLocalID     string
	EquipoVisitanteID string
	ArbitroID         string
	Fecha             string // "YYYY-MM-DDTHH:mm"
}

type AssignPlayerInput struct {
	JugadorID string
	EquipoID  string
	Posicion  string
}

// SubmitTeam valida e cria um equipo. Nome vazio, curto ou repetido
// (sem case, contra o espelho) aborta sem chamada de rede.
func (c *Controller) SubmitTeam(ctx context.Context, in TeamInput) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		c.note.Notify(alerts.Warning, "Por favor ingrese un nombre válido")
		return
	}
	if len([]rune(nombre)) < 3 {
		c.note.Notify(alerts.Warning, "El nombre debe tener al menos 3 caracteres")
		return
	}
	for _, eq := range c.store.Current().Equipos {
		if strings.EqualFold(eq.Nombre, nombre) {
			c.note.Notify(alerts.Warning, "Ya existe un equipo con ese nombre")
			return
		}
	}

	if _, err := c.gw.AgregarEquipo(ctx, nombre); err != nil {
		c.note.Notify(alerts.Error, "Error al agregar el equipo: "+err.Error())
		return
	}
	c.note.Notify(alerts.Success, "Equipo agregado exitosamente")
	c.store.Reload(ctx)
}

// SubmitMatch valida e cria um partido: campos obrigatórios, local
// diferente de visitante e data futura.
func (c *Controller) SubmitMatch(ctx context.Context, in MatchInput) {
	local := strings.TrimSpace(in.EquipoLocalID)
	visitante := strings.TrimSpace(in.EquipoVisitanteID)
	arbitro := strings.TrimSpace(in.ArbitroID)
	fecha := strings.TrimSpace(in.Fecha)

	if local == "" || visitante == "" || arbitro == "" || fecha == "" {
		c.note.Notify(alerts.Warning, "Todos los campos son obligatorios")
		return
	}
	if local == visitante {
		c.note.Notify(alerts.Warning, "Un equipo no puede jugar contra sí mismo")
		return
	}

	localID, err1 := strconv.ParseInt(local, 10, 64)
	visitanteID, err2 := strconv.ParseInt(visitante, 10, 64)
	arbitroID, err3 := strconv.ParseInt(arbitro, 10, 64)
	if err1 != nil || err2 != nil || err3 != nil {
		c.note.Notify(alerts.Warning, "Selección inválida")
		return
	}

	when, err := time.ParseInLocation("2006-01-02T15:04", fecha, time.Local)
	if err != nil {
		c.note.Notify(alerts.Warning, "Fecha inválida")
		return
	}
	if !when.After(c.now()) {
		c.note.Notify(alerts.Warning, "La fecha del partido debe ser futura")
		return
	}

	req := dto.CrearPartidoRequest{
		EquipoLocalID:     localID,
		EquipoVisitanteID: visitanteID,
		ArbitroID:         arbitroID,
		Fecha:             fecha,
	}
	if _, err := c.gw.CrearPartido(ctx, req); err != nil {
		c.note.Notify(alerts.Error, "Error al crear el partido: "+err.Error())
		return
	}
	c.note.Notify(alerts.Success, "Partido creado exitosamente")
	c.store.Reload(ctx)
}

// SubmitAssignPlayer associa um jugador a um equipo
func (c *Controller) SubmitAssignPlayer(ctx context.Context, in AssignPlayerInput) {
	jugador := strings.TrimSpace(in.JugadorID)
	equipo := strings.TrimSpace(in.EquipoID)
	if jugador == "" || equipo == "" {
		c.note.Notify(alerts.Warning, "Por favor seleccione jugador y equipo")
		return
	}

	jugadorID, err1 := strconv.ParseInt(jugador, 10, 64)
	equipoID, err2 := strconv.ParseInt(equipo, 10, 64)
	if err1 != nil || err2 != nil {
		c.note.Notify(alerts.Warning, "Selección inválida")
		return
	}

	req := dto.AsignarJugadorRequest{
		JugadorID: jugadorID,
		EquipoID:  equipoID,
		Posicion:  strings.TrimSpace(in.Posicion),
	}
	if err := c.gw.AsignarJugador(ctx, req); err != nil {
		c.note.Notify(alerts.Error, "Error al asignar jugador: "+err.Error())
		return
	}
	c.note.Notify(alerts.Success, "Jugador asignado exitosamente")
	c.store.Reload(ctx)
}
