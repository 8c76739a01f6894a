package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/abhisek/navyranks/internal/config"
	"github.com/abhisek/navyranks/internal/store"
)

const redisPingTimeout = 3 * time.Second

// backend bundles the record store and, when the backend keeps one, the
// run history.
type backend struct {
	Records *store.Records
	Runs    store.RunRepo // nil unless sqlite
	close   func() error
}

func (b *backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// openBackend opens the persistence backend named by cfg.Store.Backend.
func openBackend(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*backend, error) {
	var (
		kv store.KV
		b  = &backend{}
	)

	switch cfg.Store.Backend {
	case config.BackendSQLite:
		if err := store.EnsureDir(cfg.Store.Path); err != nil {
			return nil, fmt.Errorf("prepare db dir: %w", err)
		}
		st, err := store.Open(cfg.Store.Path)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		kv = st.KV()
		b.Runs = st.RunRepo()
		b.close = st.Close

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("connect redis %s: %w", cfg.Redis.Addr, err)
		}
		rkv := store.NewRedisKV(client)
		kv = rkv
		b.close = rkv.Close

	case config.BackendMemory:
		kv = store.NewMemoryKV()

	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Store.Backend)
	}

	logger.Debug("store opened", zap.String("backend", cfg.Store.Backend))
	b.Records = store.NewRecords(kv, cfg.Store.KeyPrefix, logger)
	return b, nil
}
