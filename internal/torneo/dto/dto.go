// Package dto define os contratos de wire da API do torneio (mitorneo).
// Os nomes de campo são os do servidor, em espanhol; o cliente apenas espelha.
package dto

// JugadorRef é a forma reduzida de jogador embutida no elenco de um equipo.
type JugadorRef struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
}

type Equipo struct {
	ID        int64        `json:"id"`
	Nombre    string       `json:"nombre"`
	Jugadores []JugadorRef `json:"jugadores,omitempty"`
}

type Jugador struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Apellido    string `json:"apellido"`
	EquipoID    *int64 `json:"equipo_id,omitempty"`
	Posicion    string `json:"posicion,omitempty"`
	Goles       int    `json:"goles,omitempty"`
	Asistencias int    `json:"asistencias,omitempty"`
}

type Arbitro struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
}

// Partido vem da listagem com os nomes já resolvidos pelo servidor
type Partido struct {
	ID              int64  `json:"id"`
	EquipoLocal     string `json:"equipo_local"`
	EquipoVisitante string `json:"equipo_visitante"`
	Fecha           string `json:"fecha"` // ISO-8601, dono é o servidor
	Arbitro         string `json:"arbitro"`
	Simulado        bool   `json:"simulado"`
	GolesLocal      *int   `json:"goles_local,omitempty"`
	GolesVisitante  *int   `json:"goles_visitante,omitempty"`
	Ganador         string `json:"ganador,omitempty"`
}

type Apuesta struct {
	ID           int64   `json:"id"`
	Equipo       string  `json:"equipo"`
	PartidoID    *int64  `json:"partido_id,omitempty"`
	Monto        float64 `json:"monto"`
	FechaApuesta string  `json:"fecha_apuesta"`
}

// Simulacion é a resposta do endpoint de simulação de partido.
// success=false carrega o motivo em error.
type Simulacion struct {
	Success             bool     `json:"success"`
	EquipoLocal         string   `json:"equipo_local"`
	EquipoVisitante     string   `json:"equipo_visitante"`
	GolesLocal          int      `json:"goles_local"`
	GolesVisitante      int      `json:"goles_visitante"`
	Ganador             string   `json:"ganador"`
	PorcentajeLocal     *float64 `json:"porcentaje_local,omitempty"`
	PorcentajeVisitante *float64 `json:"porcentaje_visitante,omitempty"`
	Error               string   `json:"error,omitempty"`
}

// EstadisticasEquipo agrega o desempenho de um equipo em partidos simulados
type EstadisticasEquipo struct {
	Equipo          string  `json:"equipo"`
	PartidosJugados int     `json:"partidos_jugados"`
	Victorias       int     `json:"victorias"`
	Empates         int     `json:"empates"`
	Derrotas        int     `json:"derrotas"`
	GolesFavor      int     `json:"goles_favor"`
	GolesContra     int     `json:"goles_contra"`
	DiferenciaGoles int     `json:"diferencia_goles"`
	Puntos          int     `json:"puntos"`
	Ganancias       float64 `json:"ganancias"`
}
