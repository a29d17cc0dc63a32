// Package actions implementa as ações pontuais do painel: simular,
// editar e eliminar. Cada ação confirma com o usuário, chama o gateway e
// recarrega o espelho. Nada é re-tentado: falhou, o usuário repete.
package actions

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/radieske/torneo-panel/internal/alerts"
	"github.com/radieske/torneo-panel/internal/store"
	"github.com/radieske/torneo-panel/internal/torneo/dto"
	"github.com/radieske/torneo-panel/internal/torneo/gateway"
)

type Handler struct {
	gw    *gateway.Client
	store *store.Store
	note  alerts.Notifier
	log   *zap.Logger
}

func New(gw *gateway.Client, st *store.Store, note alerts.Notifier, log *zap.Logger) *Handler {
	return &Handler{gw: gw, store: st, note: note, log: log}
}

func (h *Handler) findPartido(id int64) (dto.Partido, bool) {
	for _, p := range h.store.Current().Partidos {
		if p.ID == id {
			return p, true
		}
	}
	return dto.Partido{}, false
}

func (h *Handler) findEquipo(id int64) (dto.Equipo, bool) {
	for _, eq := range h.store.Current().Equipos {
		if eq.ID == id {
			return eq, true
		}
	}
	return dto.Equipo{}, false
}

// Simulate confirma e pede ao servidor o resultado do partido. success=false
// na resposta mostra o motivo e não recarrega; erro de transporte, idem.
func (h *Handler) Simulate(ctx context.Context, dlg Dialogs, id int64) {
	msg := "¿Desea simular este partido? Esto generará un resultado aleatorio basado en las fuerzas de los equipos."
	if p, ok := h.findPartido(id); ok && p.Simulado {
		msg = "Este partido ya tiene resultado. ¿Desea re-simularlo?"
	}
	ok, err := dlg.Confirm(ctx, msg)
	if err != nil || !ok {
		return
	}

	res, err := h.gw.SimularPartido(ctx, id)
	if err != nil {
		h.note.Notify(alerts.Error, "Error al simular el partido: "+err.Error())
		return
	}

	if !res.Success {
		reason := res.Error
		if reason == "" {
			reason = "Error desconocido"
		}
		h.note.Notify(alerts.Error, "Error en la simulación: "+reason)
		return
	}

	h.note.Notify(alerts.Success, fmt.Sprintf(
		"Partido simulado exitosamente: %s %d - %d %s. Ganador: %s",
		res.EquipoLocal, res.GolesLocal, res.GolesVisitante, res.EquipoVisitante, res.Ganador))

	if res.PorcentajeLocal != nil && res.PorcentajeVisitante != nil {
		h.note.Notify(alerts.Info, fmt.Sprintf(
			"Probabilidades: %s %.0f%% - %s %.0f%%",
			res.EquipoLocal, *res.PorcentajeLocal, res.EquipoVisitante, *res.PorcentajeVisitante))
	}

	h.store.Reload(ctx)
}

// EditTeam pede o novo nome e atualiza o equipo; cancelar aborta sem rede
func (h *Handler) EditTeam(ctx context.Context, dlg Dialogs, id int64) {
	eq, ok := h.findEquipo(id)
	if !ok {
		h.note.Notify(alerts.Error, "Equipo no encontrado")
		return
	}

	nombre, ok, err := dlg.Prompt(ctx, "Ingrese el nuevo nombre del equipo:", eq.Nombre)
	if err != nil || !ok {
		return
	}
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		h.note.Notify(alerts.Warning, "El nombre no puede estar vacío")
		return
	}

	if err := h.gw.ActualizarEquipo(ctx, id, nombre); err != nil {
		h.note.Notify(alerts.Error, "Error al actualizar el equipo: "+err.Error())
		return
	}
	h.note.Notify(alerts.Success, "Equipo actualizado exitosamente")
	h.store.Reload(ctx)
}

// DeleteTeam confirma e elimina o equipo
func (h *Handler) DeleteTeam(ctx context.Context, dlg Dialogs, id int64) {
	ok, err := dlg.Confirm(ctx, "¿Está seguro de que desea eliminar este equipo? Esta acción no se puede deshacer.")
	if err != nil || !ok {
		return
	}
	if err := h.gw.EliminarEquipo(ctx, id); err != nil {
		h.note.Notify(alerts.Error, "Error al eliminar el equipo: "+err.Error())
		return
	}
	h.note.Notify(alerts.Success, "Equipo eliminado exitosamente")
	h.store.Reload(ctx)
}

// EditMatch pede a nova data e atualiza o partido
func (h *Handler) EditMatch(ctx context.Context, dlg Dialogs, id int64) {
	p, ok := h.findPartido(id)
	if !ok {
		h.note.Notify(alerts.Error, "Partido no encontrado")
		return
	}

	fecha, ok, err := dlg.Prompt(ctx, "Ingrese la nueva fecha y hora del partido (YYYY-MM-DDTHH:mm):", p.Fecha)
	if err != nil || !ok {
		return
	}
	fecha = strings.TrimSpace(fecha)
	if fecha == "" {
		h.note.Notify(alerts.Warning, "La fecha no puede estar vacía")
		return
	}

	if err := h.gw.ActualizarPartido(ctx, id, fecha); err != nil {
		h.note.Notify(alerts.Error, "Error al actualizar el partido: "+err.Error())
		return
	}
	h.note.Notify(alerts.Success, "Partido actualizado exitosamente")
	h.store.Reload(ctx)
}

// DeleteMatch confirma e elimina o partido. O servidor pode recusar quando
// há apuestas associadas; o motivo vem no corpo do erro.
func (h *Handler) DeleteMatch(ctx context.Context, dlg Dialogs, id int64) {
	ok, err := dlg.Confirm(ctx, "¿Está seguro de que desea eliminar este partido? Esta acción no se puede deshacer.")
	if err != nil || !ok {
		return
	}
	if err := h.gw.EliminarPartido(ctx, id); err != nil {
		h.note.Notify(alerts.Error, "Error al eliminar el partido: "+err.Error())
		return
	}
	h.note.Notify(alerts.Success, "Partido eliminado exitosamente")
	h.store.Reload(ctx)
}
