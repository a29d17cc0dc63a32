// Package view projeta o snapshot do espelho em fragmentos HTML.
// Funções puras: mesmo snapshot, mesmo fragmento. Todo texto interpolado
// passa por escape.
package view

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/radieske/torneo-panel/internal/store"
	"github.com/radieske/torneo-panel/internal/torneo/dto"
)

// Stats monta os contadores de entidades do painel
func Stats(snap store.Snapshot) string {
	var b strings.Builder
	writeStat(&b, "stat-equipos", "Equipos", len(snap.Equipos))
	writeStat(&b, "stat-partidos", "Partidos", len(snap.Partidos))
	writeStat(&b, "stat-jugadores", "Jugadores", len(snap.Jugadores))
	writeStat(&b, "stat-arbitros", "Árbitros", len(snap.Arbitros))
	return b.String()
}

func writeStat(b *strings.Builder, id, label string, n int) {
	fmt.Fprintf(b, `<div class="stat" id=%q><span class="stat-value">%d</span><span class="stat-label">%s</span></div>`+"\n",
		id, n, html.EscapeString(label))
}

// TeamOptions monta as opções de um seletor de equipos: placeholder mais
// uma opção por equipo, ordenadas pelo nome exibido. A seleção anterior é
// preservada casando pelo value.
func TeamOptions(equipos []dto.Equipo, selected, placeholder string) string {
	sorted := append([]dto.Equipo(nil), equipos...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Nombre < sorted[j].Nombre })

	var b strings.Builder
	fmt.Fprintf(&b, `<option value="">%s</option>`+"\n", html.EscapeString(placeholder))
	for _, eq := range sorted {
		writeOption(&b, fmt.Sprint(eq.ID), eq.Nombre, selected)
	}
	return b.String()
}

// RefereeOptions monta as opções do seletor de árbitros
func RefereeOptions(arbitros []dto.Arbitro, selected string) string {
	sorted := append([]dto.Arbitro(nil), arbitros...)
	sort.Slice(sorted, func(i, j int) bool {
		return displayName(sorted[i].Nombre, sorted[i].Apellido) < displayName(sorted[j].Nombre, sorted[j].Apellido)
	})

	var b strings.Builder
	b.WriteString(`<option value="">Seleccione árbitro</option>` + "\n")
	for _, a := range sorted {
		writeOption(&b, fmt.Sprint(a.ID), displayName(a.Nombre, a.Apellido), selected)
	}
	return b.String()
}

// PlayerOptions monta o seletor de jugadores agrupado por equipo; quem não
// tem equipo entra no grupo "Sin equipo"
func PlayerOptions(jugadores []dto.Jugador, equipos []dto.Equipo, selected string) string {
	names := make(map[int64]string, len(equipos))
	for _, eq := range equipos {
		names[eq.ID] = eq.Nombre
	}

	groups := make(map[string][]dto.Jugador)
	for _, j := range jugadores {
		g := "Sin equipo"
		if j.EquipoID != nil {
			if n, ok := names[*j.EquipoID]; ok {
				g = n
			}
		}
		groups[g] = append(groups[g], j)
	}

	labels := make([]string, 0, len(groups))
	for g := range groups {
		labels = append(labels, g)
	}
	sort.Strings(labels)

	var b strings.Builder
	b.WriteString(`<option value="">Seleccione jugador</option>` + "\n")
	for _, g := range labels {
		fmt.Fprintf(&b, `<optgroup label=%q>`+"\n", html.EscapeString(g))
		players := groups[g]
		sort.Slice(players, func(i, j int) bool {
			return displayName(players[i].Nombre, players[i].Apellido) < displayName(players[j].Nombre, players[j].Apellido)
		})
		for _, j := range players {
			writeOption(&b, fmt.Sprint(j.ID), displayName(j.Nombre, j.Apellido), selected)
		}
		b.WriteString("</optgroup>\n")
	}
	return b.String()
}

func writeOption(b *strings.Builder, value, label, selected string) {
	sel := ""
	if value == selected && selected != "" {
		sel = " selected"
	}
	fmt.Fprintf(b, `<option value=%q%s>%s</option>`+"\n", value, sel, html.EscapeString(label))
}

func displayName(nombre, apellido string) string {
	return strings.TrimSpace(nombre + " " + apellido)
}

// TeamsList monta os cards de equipos com o elenco resumido
func TeamsList(equipos []dto.Equipo) string {
	if len(equipos) == 0 {
		return `<div class="empty-state"><p>No hay equipos registrados</p></div>`
	}
	var b strings.Builder
	for _, eq := range equipos {
		roster := "Sin jugadores asignados"
		if len(eq.Jugadores) > 0 {
			parts := make([]string, len(eq.Jugadores))
			for i, j := range eq.Jugadores {
				parts[i] = displayName(j.Nombre, j.Apellido)
			}
			roster = strings.Join(parts, ", ")
		}
		fmt.Fprintf(&b, `<div class="data-item" data-id="%d" data-kind="equipo">`+"\n", eq.ID)
		fmt.Fprintf(&b, `<div class="data-item-title">%s</div>`+"\n", html.EscapeString(eq.Nombre))
		fmt.Fprintf(&b, `<div class="data-item-subtitle">%s</div>`+"\n", html.EscapeString(roster))
		b.WriteString(actionButtons("equipo", eq.ID, false, false))
		b.WriteString("</div>\n")
	}
	return b.String()
}
