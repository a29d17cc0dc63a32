// Package betting é o widget de apostas: aposta, recarga de saldo,
// probabilidade de vitória e gráfico de estatísticas do equipo.
package betting

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/radieske/torneo-panel/internal/alerts"
	"github.com/radieske/torneo-panel/internal/torneo/dto"
	"github.com/radieske/torneo-panel/internal/torneo/gateway"
)

// Métodos de pagamento aceitos pelo formulário de recarga
const (
	MetodoTarjeta = "tarjeta"
	MetodoPayPal  = "paypal"
)

type Widget struct {
	gw   *gateway.Client
	note alerts.Notifier
	log  *zap.Logger
}

func New(gw *gateway.Client, note alerts.Notifier, log *zap.Logger) *Widget {
	return &Widget{gw: gw, note: note, log: log}
}

type BetInput struct {
	EquipoID  string
	PartidoID string
	Monto     string
}

type RechargeInput struct {
	Monto      string
	MetodoPago string
	Numero     string
	Titular    string
	Expiracion string
	CVV        string
	Email      string
}

// SubmitBet valida e envia uma aposta. Apostas são imutáveis depois de
// aceitas; o saldo é debitado pelo servidor.
func (w *Widget) SubmitBet(ctx context.Context, in BetInput) bool {
	equipo := strings.TrimSpace(in.EquipoID)
	partido := strings.TrimSpace(in.PartidoID)

	if equipo == "" {
		w.note.Notify(alerts.Warning, "Por favor, selecciona un equipo.")
		return false
	}
	if partido == "" {
		w.note.Notify(alerts.Warning, "Por favor, selecciona un partido.")
		return false
	}
	monto, err := strconv.ParseFloat(strings.TrimSpace(in.Monto), 64)
	if err != nil || monto <= 0 {
		w.note.Notify(alerts.Warning, "Por favor, ingresa un monto válido.")
		return false
	}

	equipoID, err1 := strconv.ParseInt(equipo, 10, 64)
	partidoID, err2 := strconv.ParseInt(partido, 10, 64)
	if err1 != nil || err2 != nil {
		w.note.Notify(alerts.Warning, "Selección inválida.")
		return false
	}

	req := dto.CrearApuestaRequest{EquipoID: equipoID, PartidoID: partidoID, Monto: monto}
	if err := w.gw.CrearApuesta(ctx, req); err != nil {
		w.note.Notify(alerts.Error, "Error al realizar la apuesta: "+err.Error())
		return false
	}
	w.note.Notify(alerts.Success, "Apuesta realizada con éxito.")
	return true
}

// SubmitRecharge valida os campos do método de pagamento e envia a recarga.
// Devolve o saldo atualizado que o servidor confirmou.
func (w *Widget) SubmitRecharge(ctx context.Context, in RechargeInput) (float64, bool) {
	monto, err := strconv.ParseFloat(strings.TrimSpace(in.Monto), 64)
	if err != nil || monto <= 0 {
		w.note.Notify(alerts.Warning, "Cantidad inválida.")
		return 0, false
	}

	datos := dto.DatosPago{}
	switch in.MetodoPago {
	case MetodoTarjeta:
		numero := strings.TrimSpace(in.Numero)
		titular := strings.TrimSpace(in.Titular)
		expiracion := strings.TrimSpace(in.Expiracion)
		cvv := strings.TrimSpace(in.CVV)
		if numero == "" || titular == "" || expiracion == "" || cvv == "" {
			w.note.Notify(alerts.Warning, "Complete todos los datos de la tarjeta.")
			return 0, false
		}
		datos = dto.DatosPago{Numero: numero, Titular: titular, Expiracion: expiracion, CVV: cvv}
	case MetodoPayPal:
		email := strings.TrimSpace(in.Email)
		if email == "" {
			w.note.Notify(alerts.Warning, "Ingrese el correo de PayPal.")
			return 0, false
		}
		datos = dto.DatosPago{Email: email}
	default:
		w.note.Notify(alerts.Warning, "Seleccione un método de pago.")
		return 0, false
	}

	req := dto.RecargaRequest{Monto: monto, MetodoPago: in.MetodoPago, DatosPago: datos}
	nuevoSaldo, err := w.gw.RecargarSaldo(ctx, req)
	if err != nil {
		w.note.Notify(alerts.Error, "Error al recargar saldo: "+err.Error())
		return 0, false
	}
	w.note.Notify(alerts.Success, "Saldo recargado correctamente.")
	return nuevoSaldo, true
}

// WinProbability é a razão simples victorias/(victorias+derrotas) do
// servidor de estatísticas; sem partidos decididos não há probabilidade
func WinProbability(stats dto.EstadisticasEquipo) (float64, bool) {
	total := stats.Victorias + stats.Derrotas
	if total == 0 {
		return 0, false
	}
	return float64(stats.Victorias) / float64(total) * 100, true
}

// FormatProbability apresenta a probabilidade como o widget exibe ("61.54%")
func FormatProbability(stats dto.EstadisticasEquipo) string {
	p, ok := WinProbability(stats)
	if !ok {
		return "-"
	}
	return strconv.FormatFloat(p, 'f', 2, 64) + "%"
}
