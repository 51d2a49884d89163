package bootstrap

import (
	"context"
	"log/slog"

	"restaurant-reservations/internal/infra/db"
	"restaurant-reservations/internal/infra/slot"
	"restaurant-reservations/internal/pkg/config"
	"restaurant-reservations/internal/pkg/errs"
	"restaurant-reservations/internal/usecase"

	"go.uber.org/fx"
)

const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

var SlotModule = fx.Module("slot",
	fx.Provide(
		NewSlot,
	),
)

// NewSlot connects the storage backend named by SLOT_BACKEND. Connections
// are released when the app stops.
func NewSlot(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (usecase.Slot, error) {
	ctx := context.Background()
	logger = logger.With("backend", cfg.Slot.Backend)

	switch cfg.Slot.Backend {
	case BackendFile:
		logger.Info("using file slot", "dir", cfg.Slot.Dir)
		return slot.NewFileSlot(logger, cfg.Slot.Dir), nil

	case BackendMemory:
		logger.Warn("using in-memory slot, reservations will not survive a restart")
		return slot.NewMemorySlot(logger), nil

	case BackendRedis:
		client, cleanup, err := db.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		appendCleanup(lc, cleanup)
		return slot.NewRedisSlot(logger, client), nil

	case BackendPostgres:
		pool, cleanup, err := db.Connect(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		appendCleanup(lc, cleanup)

		s := slot.NewPostgresSlot(logger, pool)
		if err := s.EnsureSchema(ctx); err != nil {
			cleanup()
			return nil, err
		}
		return s, nil

	case BackendMongo:
		collection, cleanup, err := db.ConnectMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		appendCleanup(lc, cleanup)
		return slot.NewMongoSlot(logger, collection), nil
	}

	return nil, errs.Wrapf(errs.ErrUnknownSlotKind, "slot backend %q", cfg.Slot.Backend)
}

func appendCleanup(lc fx.Lifecycle, cleanup func()) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})
}
