package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/radieske/torneo-panel/internal/torneo/dto"
)

// Endpoints da API do torneio (§ wire do servidor mitorneo)
const (
	pathEquipos       = "/torneo/api/equipos/"
	pathAgregarEquipo = "/torneo/api/agregar_equipo/"
	pathPartidos      = "/torneo/api/partidos/"
	pathCrearPartido  = "/torneo/api/crear_partido/"
	pathJugadores     = "/torneo/api/jugadores/"
	pathAsignar       = "/torneo/api/asignar_jugador/"
	pathArbitros      = "/torneo/api/arbitros/"
	pathApuestas      = "/torneo/api/apuestas/"
	pathSaldo         = "/torneo/api/saldo/"
	pathRecargarSaldo = "/torneo/api/recargar_saldo/"
	pathEstadisticas  = "/torneo/api/estadisticas_equipo/"
	pathLogout        = "/torneo/logout/"
)

func pathEquipo(id int64) string  { return fmt.Sprintf("/torneo/api/equipo/%d/", id) }
func pathPartido(id int64) string { return fmt.Sprintf("/torneo/api/partido/%d/", id) }
func pathSimular(id int64) string { return fmt.Sprintf("/torneo/api/partido/%d/simular/", id) }

func (c *Client) ListEquipos(ctx context.Context) ([]dto.Equipo, error) {
	var out []dto.Equipo
	if err := c.get(ctx, pathEquipos, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AgregarEquipo(ctx context.Context, nombre string) (dto.EquipoCreado, error) {
	var out dto.EquipoCreado
	err := c.send(ctx, http.MethodPost, pathAgregarEquipo, dto.AgregarEquipoRequest{Nombre: nombre}, &out)
	return out, err
}

func (c *Client) ActualizarEquipo(ctx context.Context, id int64, nombre string) error {
	return c.send(ctx, http.MethodPut, pathEquipo(id), dto.ActualizarEquipoRequest{Nombre: nombre}, nil)
}

func (c *Client) EliminarEquipo(ctx context.Context, id int64) error {
	return c.send(ctx, http.MethodDelete, pathEquipo(id), nil, nil)
}

func (c *Client) ListPartidos(ctx context.Context) ([]dto.Partido, error) {
	var out []dto.Partido
	if err := c.get(ctx, pathPartidos, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CrearPartido(ctx context.Context, req dto.CrearPartidoRequest) (dto.PartidoCreado, error) {
	var out dto.PartidoCreado
	err := c.send(ctx, http.MethodPost, pathCrearPartido, req, &out)
	return out, err
}

func (c *Client) ActualizarPartido(ctx context.Context, id int64, fecha string) error {
	return c.send(ctx, http.MethodPut, pathPartido(id), dto.ActualizarPartidoRequest{Fecha: fecha}, nil)
}

func (c *Client) EliminarPartido(ctx context.Context, id int64) error {
	return c.send(ctx, http.MethodDelete, pathPartido(id), nil, nil)
}

// SimularPartido pede ao servidor o resultado aleatório do partido.
// success=false na resposta é falha de aplicação, não de transporte.
func (c *Client) SimularPartido(ctx context.Context, id int64) (dto.Simulacion, error) {
	var out dto.Simulacion
	err := c.send(ctx, http.MethodPost, pathSimular(id), nil, &out)
	return out, err
}

func (c *Client) ListJugadores(ctx context.Context) ([]dto.Jugador, error) {
	var out []dto.Jugador
	if err := c.get(ctx, pathJugadores, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AsignarJugador(ctx context.Context, req dto.AsignarJugadorRequest) error {
	return c.send(ctx, http.MethodPost, pathAsignar, req, nil)
}

func (c *Client) ListArbitros(ctx context.Context) ([]dto.Arbitro, error) {
	var out []dto.Arbitro
	if err := c.get(ctx, pathArbitros, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListApuestas(ctx context.Context) ([]dto.Apuesta, error) {
	var out []dto.Apuesta
	if err := c.get(ctx, pathApuestas, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CrearApuesta(ctx context.Context, req dto.CrearApuestaRequest) error {
	return c.send(ctx, http.MethodPost, pathApuestas, req, nil)
}

func (c *Client) Saldo(ctx context.Context) (float64, error) {
	var out dto.SaldoResponse
	if err := c.get(ctx, pathSaldo, &out); err != nil {
		return 0, err
	}
	return out.Saldo, nil
}

// RecargarSaldo envia a recarga e devolve o saldo atualizado. A resposta
// precisa trazer nuevo_saldo; sem o campo é defeito do servidor.
func (c *Client) RecargarSaldo(ctx context.Context, req dto.RecargaRequest) (float64, error) {
	var out dto.RecargaResponse
	if err := c.send(ctx, http.MethodPost, pathRecargarSaldo, req, &out); err != nil {
		return 0, err
	}
	if out.NuevoSaldo == nil {
		return 0, fmt.Errorf("recarga sem nuevo_saldo: %w", ErrRespuestaInvalida)
	}
	return *out.NuevoSaldo, nil
}

func (c *Client) EstadisticasEquipo(ctx context.Context, equipoID int64) (dto.EstadisticasEquipo, error) {
	var out dto.EstadisticasEquipo
	q := url.Values{"equipo_id": {fmt.Sprint(equipoID)}}
	err := c.get(ctx, pathEstadisticas+"?"+q.Encode(), &out)
	return out, err
}

// LogoutURL é a navegação de fim de sessão; o painel só redireciona pra ela
func (c *Client) LogoutURL() string { return c.BaseURL + pathLogout }
