// Package store mantém o espelho em memória dos dados do servidor de
// torneio. O snapshot é substituído por inteiro a cada reload; não há
// merge nem diff.
package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/torneo-panel/internal/torneo/dto"
	"github.com/radieske/torneo-panel/internal/torneo/gateway"
)

// Snapshot é o estado completo espelhado do servidor
type Snapshot struct {
	Equipos   []dto.Equipo
	Partidos  []dto.Partido
	Jugadores []dto.Jugador
	Arbitros  []dto.Arbitro
}

// Store guarda o snapshot corrente e avisa os assinantes após cada troca.
// Reloads concorrentes (manual x silencioso) são tolerados: cada escrita é
// uma substituição completa, então o último que terminar vence.
type Store struct {
	gw  *gateway.Client
	log *zap.Logger

	mu   sync.RWMutex
	snap Snapshot

	subMu sync.Mutex
	subs  []func(Snapshot)
}

func New(gw *gateway.Client, log *zap.Logger) *Store {
	return &Store{gw: gw, log: log}
}

// Current devolve o snapshot corrente (cópia do valor, slices compartilhadas)
func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Subscribe registra um callback disparado após cada reload
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subs = append(s.subs, fn)
}

// Reload busca as quatro coleções em paralelo e troca o snapshot de uma vez.
// A falha de uma leitura não derruba as outras: a coleção que falhou fica
// vazia até o próximo reload.
func (s *Store) Reload(ctx context.Context) Snapshot {
	var (
		wg   sync.WaitGroup
		next Snapshot
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		eq, err := s.gw.ListEquipos(ctx)
		if err != nil {
			s.log.Warn("reload equipos", zap.Error(err))
			eq = []dto.Equipo{}
		}
		next.Equipos = eq
	}()
	go func() {
		defer wg.Done()
		pa, err := s.gw.ListPartidos(ctx)
		if err != nil {
			s.log.Warn("reload partidos", zap.Error(err))
			pa = []dto.Partido{}
		}
		next.Partidos = pa
	}()
	go func() {
		defer wg.Done()
		ju, err := s.gw.ListJugadores(ctx)
		if err != nil {
			s.log.Warn("reload jugadores", zap.Error(err))
			ju = []dto.Jugador{}
		}
		next.Jugadores = ju
	}()
	go func() {
		defer wg.Done()
		ar, err := s.gw.ListArbitros(ctx)
		if err != nil {
			s.log.Warn("reload arbitros", zap.Error(err))
			ar = []dto.Arbitro{}
		}
		next.Arbitros = ar
	}()
	wg.Wait()

	s.mu.Lock()
	s.snap = next
	s.mu.Unlock()

	s.subMu.Lock()
	subs := append(([]func(Snapshot))(nil), s.subs...)
	s.subMu.Unlock()
	for _, fn := range subs {
		fn(next)
	}
	return next
}

// StartSilentRefresh dispara Reload num intervalo fixo, sem UI de loading,
// até o contexto ser cancelado
func (s *Store) StartSilentRefresh(ctx context.Context, interval time.Duration) {
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.Reload(ctx)
			}
		}
	}()
}
