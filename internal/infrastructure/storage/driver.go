package storage

import (
	"context"
	"fmt"

	"github.com/hendaya/pedidos-api/internal/domain/repository"
	"github.com/hendaya/pedidos-api/pkg/config"
)

// Open construye el KVStore según el driver configurado (STORAGE_DRIVER):
// file (por defecto), postgres, redis o memory.
func Open(ctx context.Context, cfg *config.Config) (repository.KVStore, error) {
	switch cfg.Storage.Driver {
	case "", "file":
		return NewFileStore(cfg.Storage.DataDir)
	case "postgres":
		pool, err := NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		return NewPostgresStore(ctx, pool)
	case "redis":
		return NewRedisStore(ctx, cfg.Redis.URL)
	case "memory":
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("driver de almacenamiento desconocido: %q", cfg.Storage.Driver)
}
