package view

import (
	"strings"
	"testing"
	"time"

	"github.com/radieske/torneo-panel/internal/torneo/dto"
)

func TestTeamOptionsSortedWithPlaceholder(t *testing.T) {
	equipos := []dto.Equipo{
		{ID: 3, Nombre: "Zorros"},
		{ID: 1, Nombre: "Águilas"},
		{ID: 2, Nombre: "Lions"},
	}

	out := TeamOptions(equipos, "", "Seleccione equipo")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(equipos)+1 {
		t.Fatalf("opções = %d, quero %d (placeholder + uma por equipo)", len(lines), len(equipos)+1)
	}
	if !strings.Contains(lines[0], `value=""`) || !strings.Contains(lines[0], "Seleccione equipo") {
		t.Errorf("primeira opção deveria ser o placeholder: %s", lines[0])
	}

	// ordenadas pelo nome exibido
	var prev string
	for _, line := range lines[1:] {
		name := optionLabel(t, line)
		if prev != "" && name < prev {
			t.Errorf("opções fora de ordem: %q depois de %q", name, prev)
		}
		prev = name
	}
}

func optionLabel(t *testing.T, line string) string {
	t.Helper()
	start := strings.Index(line, ">")
	end := strings.LastIndex(line, "<")
	if start < 0 || end <= start {
		t.Fatalf("opção malformada: %s", line)
	}
	return line[start+1 : end]
}

func TestTeamOptionsPreservesSelection(t *testing.T) {
	equipos := []dto.Equipo{{ID: 1, Nombre: "Lions"}, {ID: 2, Nombre: "Tigers"}}
	out := TeamOptions(equipos, "2", "Seleccione equipo")
	if !strings.Contains(out, `value="2" selected`) {
		t.Errorf("seleção anterior não preservada:\n%s", out)
	}
	if strings.Contains(out, `value="1" selected`) {
		t.Errorf("opção errada marcada como selecionada:\n%s", out)
	}
}

func TestStatusOf(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	goals := 2
	tests := []struct {
		name string
		p    dto.Partido
		want MatchStatus
	}{
		{"com resultado", dto.Partido{Simulado: true, GolesLocal: &goals, Fecha: "2026-08-01T10:00"}, StatusFinalizado},
		{"vencido sem resultado", dto.Partido{Fecha: "2026-08-27T10:00"}, StatusPorSimular},
		{"futuro", dto.Partido{Fecha: "2026-09-10T10:00"}, StatusProximo},
		{"data ilegível", dto.Partido{Fecha: "???"}, StatusProximo},
	}
	for _, tt := range tests {
		if got := StatusOf(tt.p, now); got != tt.want {
			t.Errorf("%s: StatusOf = %q, quero %q", tt.name, got, tt.want)
		}
	}
}

func TestFilterMatches(t *testing.T) {
	partidos := []dto.Partido{
		{ID: 1, Simulado: true},
		{ID: 2},
		{ID: 3, Simulado: true},
	}
	if got := FilterMatches(partidos, FilterAll); len(got) != 3 {
		t.Errorf("all = %d, quero 3", len(got))
	}
	if got := FilterMatches(partidos, FilterPending); len(got) != 1 || got[0].ID != 2 {
		t.Errorf("pending = %v, quero só o partido 2", got)
	}
	if got := FilterMatches(partidos, FilterSimulated); len(got) != 2 {
		t.Errorf("simulated = %d, quero 2", len(got))
	}
}

func TestSearchVisible(t *testing.T) {
	tests := []struct {
		text  string
		query string
		want  bool
	}{
		{"Lions vs Tigers", "lio", true},
		{"Lions vs Tigers", "TIGERS", true},
		{"Lions vs Tigers", "zorros", false},
		{"Lions vs Tigers", "  ", true}, // busca vazia mostra tudo
	}
	for _, tt := range tests {
		if got := SearchVisible(tt.text, tt.query); got != tt.want {
			t.Errorf("SearchVisible(%q, %q) = %v, quero %v", tt.text, tt.query, got, tt.want)
		}
	}
}

func TestRenderedTextIsEscaped(t *testing.T) {
	equipos := []dto.Equipo{{ID: 1, Nombre: `<script>alert("x")</script>`}}
	out := TeamsList(equipos)
	if strings.Contains(out, "<script>") {
		t.Errorf("nome de equipo não escapado:\n%s", out)
	}

	partidos := []dto.Partido{{ID: 1, EquipoLocal: "<b>A</b>", EquipoVisitante: "B", Fecha: "2026-09-01T10:00", Arbitro: "X"}}
	out = MatchesList(partidos, time.Now())
	if strings.Contains(out, "<b>A</b>") {
		t.Errorf("nome de partido não escapado:\n%s", out)
	}
}

func TestMatchesListShowsResultAndWinner(t *testing.T) {
	gl, gv := 2, 1
	partidos := []dto.Partido{{
		ID: 7, EquipoLocal: "Lions", EquipoVisitante: "Tigers",
		Fecha: "2026-08-01T18:30", Arbitro: "Luis Mora",
		Simulado: true, GolesLocal: &gl, GolesVisitante: &gv, Ganador: "Lions",
	}}
	out := MatchesList(partidos, time.Now())
	for _, want := range []string{"Resultado: 2 - 1", "Ganador: Lions", "Re-simular", "01/08/2026 18:30"} {
		if !strings.Contains(out, want) {
			t.Errorf("card sem %q:\n%s", want, out)
		}
	}
}
