package ports

import "time"

// Cache caché clave-valor con expiración. Se inyecta explícito en los casos
// de uso que lo necesitan (hoy solo ajustes); nada se cachea por accidente.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any, ttl time.Duration)
	Invalidate(key string)
}
