package dto

type AgregarEquipoRequest struct {
	Nombre string `json:"nombre"`
}

type ActualizarEquipoRequest struct {
	Nombre string `json:"nombre"`
}

type CrearPartidoRequest struct {
	EquipoLocalID     int64  `json:"equipo_local_id"`
	EquipoVisitanteID int64  `json:"equipo_visitante_id"`
	ArbitroID         int64  `json:"arbitro_id"`
	Fecha             string `json:"fecha"` // "YYYY-MM-DDTHH:mm"
}

type ActualizarPartidoRequest struct {
	Fecha string `json:"fecha"`
}

type AsignarJugadorRequest struct {
	JugadorID int64  `json:"jugador_id"`
	EquipoID  int64  `json:"equipo_id"`
	Posicion  string `json:"posicion,omitempty"`
}

type CrearApuestaRequest struct {
	EquipoID  int64   `json:"equipo_id"`
	PartidoID int64   `json:"partido_id"`
	Monto     float64 `json:"monto"`
}

// DatosPago é repassado ao servidor como veio do formulário; a validação de
// presença é local, a de conteúdo é do servidor
type DatosPago struct {
	Numero     string `json:"numero,omitempty"`
	Titular    string `json:"titular,omitempty"`
	Expiracion string `json:"expiracion,omitempty"`
	CVV        string `json:"cvv,omitempty"`
	Email      string `json:"email,omitempty"`
}

type RecargaRequest struct {
	Monto      float64   `json:"monto"`
	MetodoPago string    `json:"metodo_pago"` // "tarjeta" | "paypal"
	DatosPago  DatosPago `json:"datos_pago"`
}
