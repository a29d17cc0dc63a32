package view

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"github.com/radieske/torneo-panel/internal/torneo/dto"
)

// Status de um partido conforme o snapshot corrente
type MatchStatus string

const (
	StatusFinalizado MatchStatus = "Finalizado"
	StatusPorSimular MatchStatus = "Por simular"
	StatusProximo    MatchStatus = "Próximo"
)

// Filtros da lista de partidos
type MatchFilter string

const (
	FilterAll       MatchFilter = "all"
	FilterPending   MatchFilter = "pending"
	FilterSimulated MatchFilter = "simulated"
)

// StatusOf classifica o partido: com resultado é Finalizado; sem resultado e
// com a data no passado, Por simular; senão, Próximo
func StatusOf(p dto.Partido, now time.Time) MatchStatus {
	if p.Simulado {
		return StatusFinalizado
	}
	if f, ok := parseFecha(p.Fecha); ok && f.Before(now) {
		return StatusPorSimular
	}
	return StatusProximo
}

// FilterMatches é o predicado puro da lista: não toca o espelho, só filtra
func FilterMatches(partidos []dto.Partido, filter MatchFilter) []dto.Partido {
	if filter == FilterAll || filter == "" {
		return partidos
	}
	out := make([]dto.Partido, 0, len(partidos))
	for _, p := range partidos {
		switch filter {
		case FilterPending:
			if !p.Simulado {
				out = append(out, p)
			}
		case FilterSimulated:
			if p.Simulado {
				out = append(out, p)
			}
		}
	}
	return out
}

// MatchesList monta os cards de partidos com data formatada, árbitro,
// badge de status e resultado quando houver
func MatchesList(partidos []dto.Partido, now time.Time) string {
	if len(partidos) == 0 {
		return `<div class="empty-state"><p>No hay partidos programados</p></div>`
	}
	var b strings.Builder
	for _, p := range partidos {
		status := StatusOf(p, now)

		result := "Sin simular"
		if p.Simulado {
			gl, gv := 0, 0
			if p.GolesLocal != nil {
				gl = *p.GolesLocal
			}
			if p.GolesVisitante != nil {
				gv = *p.GolesVisitante
			}
			result = fmt.Sprintf("Resultado: %d - %d", gl, gv)
			if p.Ganador != "" {
				result += " · Ganador: " + p.Ganador
			}
		}

		fmt.Fprintf(&b, `<div class="data-item" data-id="%d" data-kind="partido">`+"\n", p.ID)
		fmt.Fprintf(&b, `<div class="data-item-title">%s vs %s</div>`+"\n",
			html.EscapeString(p.EquipoLocal), html.EscapeString(p.EquipoVisitante))
		fmt.Fprintf(&b, `<div class="data-item-subtitle">%s · Árbitro: %s</div>`+"\n",
			html.EscapeString(FormatFecha(p.Fecha)), html.EscapeString(p.Arbitro))
		fmt.Fprintf(&b, `<span class="badge badge-%s">%s</span>`+"\n", badgeClass(status), status)
		fmt.Fprintf(&b, `<div class="data-item-result">%s</div>`+"\n", html.EscapeString(result))
		b.WriteString(actionButtons("partido", p.ID, true, p.Simulado))
		b.WriteString("</div>\n")
	}
	return b.String()
}

// MatchOptions monta o seletor de partidos do widget de apostas, ordenado
// pela data programada
func MatchOptions(partidos []dto.Partido, selected string) string {
	sorted := append([]dto.Partido(nil), partidos...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Fecha < sorted[j].Fecha })

	var b strings.Builder
	b.WriteString(`<option value="">Seleccione partido</option>` + "\n")
	for _, p := range sorted {
		label := fmt.Sprintf("%s vs %s (%s)", p.EquipoLocal, p.EquipoVisitante, FormatFecha(p.Fecha))
		writeOption(&b, fmt.Sprint(p.ID), label, selected)
	}
	return b.String()
}

// SearchVisible decide a visibilidade de um item já renderizado:
// substring sem case sobre o texto exibido
func SearchVisible(itemText, query string) bool {
	q := strings.TrimSpace(strings.ToLower(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(itemText), q)
}

func badgeClass(s MatchStatus) string {
	switch s {
	case StatusFinalizado:
		return "success"
	case StatusPorSimular:
		return "warning"
	default:
		return "info"
	}
}

func actionButtons(kind string, id int64, simulable, simulado bool) string {
	var b strings.Builder
	b.WriteString(`<div class="data-item-actions">`)
	if simulable {
		label := "Simular"
		if simulado {
			label = "Re-simular"
		}
		fmt.Fprintf(&b, `<button class="btn btn-success" data-action="simulate" data-id="%d">%s</button>`, id, label)
	}
	fmt.Fprintf(&b, `<button class="btn btn-secondary" data-action="edit" data-kind=%q data-id="%d">Editar</button>`, kind, id)
	fmt.Fprintf(&b, `<button class="btn btn-danger" data-action="delete" data-kind=%q data-id="%d">Eliminar</button>`, kind, id)
	b.WriteString(`</div>`)
	return b.String()
}

// parseFecha aceita as formas de data que o servidor já devolveu
// (ISO completo, sem segundos e só data)
func parseFecha(s string) (time.Time, bool) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02",
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatFecha apresenta a data no formato do locale es-ES (dd/mm/aaaa hh:mm)
func FormatFecha(s string) string {
	t, ok := parseFecha(s)
	if !ok {
		return s
	}
	if t.Hour() == 0 && t.Minute() == 0 {
		return t.Format("02/01/2006")
	}
	return t.Format("02/01/2006 15:04")
}
