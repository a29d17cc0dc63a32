// Package alerts é o feed de notificações não-bloqueante dos painéis.
// Formulários e ações publicam aqui; a camada web consome e limpa.
package alerts

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Level string

const (
	Success Level = "success"
	Error   Level = "error"
	Warning Level = "warning"
	Info    Level = "info"
)

type Alert struct {
	ID      string    `json:"id"`
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Notifier é o contrato consumido por formulários e ações
type Notifier interface {
	Notify(level Level, message string)
}

// Center acumula alertas até a UI buscá-los; lista limitada pra não
// crescer sem limite quando ninguém consome
type Center struct {
	mu   sync.Mutex
	max  int
	list []Alert
}

func NewCenter() *Center { return &Center{max: 50} }

func (c *Center) Notify(level Level, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list = append(c.list, Alert{
		ID:      uuid.New().String(),
		Level:   level,
		Message: message,
		At:      time.Now(),
	})
	if len(c.list) > c.max {
		c.list = c.list[len(c.list)-c.max:]
	}
}

// Drain devolve os alertas pendentes e esvazia o feed
func (c *Center) Drain() []Alert {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.list
	c.list = nil
	return out
}
