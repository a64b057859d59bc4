package repo

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"vibecraft/internal/domain"
	"vibecraft/internal/infra"
	"vibecraft/internal/storage"
)

// OpenLibrary builds the blueprint repository selected by cfg.LibraryBackend.
// The returned close function releases pools and clients and is never nil.
func OpenLibrary(ctx context.Context, cfg *infra.Config, logger zerolog.Logger) (domain.BlueprintRepository, func(), error) {
	noop := func() {}
	logger = logger.With().Str("backend", cfg.LibraryBackend).Logger()

	switch cfg.LibraryBackend {
	case infra.BackendMemory:
		logger.Info().Msg("library opened")
		return NewBlueprintMemoryRepository(), noop, nil

	case infra.BackendFile:
		store, err := storage.NewFileStore(cfg.StoragePath)
		if err != nil {
			return nil, noop, err
		}
		logger.Info().Str("path", store.BasePath()).Msg("library opened")
		return NewBlueprintFileRepository(store, DefaultLibraryKey, logger), noop, nil

	case infra.BackendPostgres:
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			return nil, noop, err
		}
		logger.Info().Msg("library opened")
		return NewBlueprintRepository(infra.NewSQLRunner(pool, logger)), pool.Close, nil

	case infra.BackendRedis:
		client, err := infra.NewRedisClient(ctx, cfg, logger)
		if err != nil {
			return nil, noop, err
		}
		logger.Info().Str("key", cfg.RedisLibraryKey).Msg("library opened")
		closeFn := func() {
			if err := client.Close(); err != nil {
				logger.Warn().Err(err).Msg("close redis client")
			}
		}
		return NewBlueprintRedisRepository(client, cfg.RedisLibraryKey), closeFn, nil
	}
	return nil, noop, fmt.Errorf("%w: %q", domain.ErrUnsupportedStore, cfg.LibraryBackend)
}
