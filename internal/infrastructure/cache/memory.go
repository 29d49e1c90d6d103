// Package cache implementa el puerto ports.Cache en memoria de proceso.
// Para un documento único de ajustes con TTL corto no hace falta nada
// distribuido; si la app escala horizontal, la peor consecuencia es servir
// una paridad con hasta cinco minutos de antigüedad en otra instancia.
package cache

import (
	"sync"
	"time"

	"github.com/norteindustrial/norte-erp/internal/application/ports"
)

var _ ports.Cache = (*Memory)(nil)

type entry struct {
	value     any
	expiresAt time.Time
}

// Memory caché clave-valor con expiración, segura para uso concurrente.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewMemory construye la caché vacía.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]entry)}
}

// Get devuelve el valor si existe y no expiró.
func (c *Memory) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Set guarda el valor con su TTL. Un TTL no positivo equivale a no cachear.
func (c *Memory) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.entries[key] = entry{value: value, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
}

// Invalidate elimina la entrada.
func (c *Memory) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
