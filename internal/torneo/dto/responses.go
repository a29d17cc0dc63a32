package dto

type SaldoResponse struct {
	Saldo float64 `json:"saldo"`
}

// RecargaResponse é o contrato canônico da recarga: o saldo atualizado vem em
// nuevo_saldo. Respostas sem o campo são tratadas como defeito do servidor.
type RecargaResponse struct {
	NuevoSaldo *float64 `json:"nuevo_saldo"`
}

type EquipoCreado struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

type PartidoCreado struct {
	ID int64 `json:"id"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
