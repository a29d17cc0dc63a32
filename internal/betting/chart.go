package betting

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/radieske/torneo-panel/internal/torneo/dto"
)

// Paleta do gráfico de pizza do widget (victorias, derrotas, empates)
var pieColors = [3]string{"rgba(75,192,192,0.6)", "rgba(255,99,132,0.6)", "rgba(255,206,86,0.6)"}

type pieSlice struct {
	Label string
	Value int
	Color string
}

// PieChart desenha as estatísticas do equipo como uma pizza SVG inline.
// Sem partidos simulados, devolve o estado vazio.
func PieChart(stats dto.EstadisticasEquipo) string {
	slices := []pieSlice{
		{Label: "Victorias", Value: stats.Victorias, Color: pieColors[0]},
		{Label: "Derrotas", Value: stats.Derrotas, Color: pieColors[1]},
		{Label: "Empates", Value: stats.Empates, Color: pieColors[2]},
	}

	total := 0
	for _, s := range slices {
		total += s.Value
	}
	if total == 0 {
		return `<div class="empty-state"><p>Sin estadísticas disponibles</p></div>`
	}

	const (
		cx, cy = 100.0, 100.0
		r      = 90.0
	)

	var b strings.Builder
	b.WriteString(`<svg viewBox="0 0 200 200" class="chart-pie" role="img">` + "\n")

	angle := -math.Pi / 2 // começa no topo, como o Chart.js fazia
	for _, s := range slices {
		if s.Value == 0 {
			continue
		}
		share := float64(s.Value) / float64(total)
		if share >= 1 {
			fmt.Fprintf(&b, `<circle cx="%g" cy="%g" r="%g" fill=%q/>`+"\n", cx, cy, r, s.Color)
			break
		}
		end := angle + share*2*math.Pi
		x1, y1 := cx+r*math.Cos(angle), cy+r*math.Sin(angle)
		x2, y2 := cx+r*math.Cos(end), cy+r*math.Sin(end)
		large := 0
		if share > 0.5 {
			large = 1
		}
		fmt.Fprintf(&b, `<path d="M%.2f,%.2f A%g,%g 0 %d 1 %.2f,%.2f L%g,%g Z" fill=%q/>`+"\n",
			x1, y1, r, r, large, x2, y2, cx, cy, s.Color)
		angle = end
	}
	b.WriteString("</svg>\n")

	b.WriteString(`<ul class="chart-legend">` + "\n")
	for _, s := range slices {
		fmt.Fprintf(&b, `<li><span class="swatch" style="background:%s"></span>%s: %d</li>`+"\n",
			s.Color, s.Label, s.Value)
	}
	b.WriteString("</ul>\n")
	return b.String()
}

// BetsList monta a lista de apostas do usuário no formato do widget
func BetsList(apuestas []dto.Apuesta) string {
	if len(apuestas) == 0 {
		return `<li class="empty">Sin apuestas todavía</li>`
	}
	var b strings.Builder
	for _, a := range apuestas {
		fmt.Fprintf(&b, `<li>%s - Monto: $%.2f - Fecha: %s</li>`+"\n",
			html.EscapeString(a.Equipo), a.Monto, html.EscapeString(a.FechaApuesta))
	}
	return b.String()
}
