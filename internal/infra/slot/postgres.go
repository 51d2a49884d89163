package slot

//go:generate mockgen -source=postgres.go -destination=../../../tests/mock/slot/mock_postgres.go -package=slotmock

import (
	"context"
	"errors"
	"log/slog"

	"restaurant-reservations/internal/infra"
	"restaurant-reservations/migrations"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the part of *pgxpool.Pool the postgres slot needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	selectSlotSQL = `SELECT value FROM slots WHERE key = $1`
	upsertSlotSQL = `INSERT INTO slots (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
)

type PostgresSlot struct {
	logger *slog.Logger
	db     DBTX
}

func NewPostgresSlot(logger *slog.Logger, db DBTX) *PostgresSlot {
	return &PostgresSlot{logger: logger, db: db}
}

// EnsureSchema applies the bundled migrations; each is idempotent.
func (s *PostgresSlot) EnsureSchema(ctx context.Context) error {
	scripts, err := migrations.Ordered()
	if err != nil {
		return infra.WrapSlotErr(s.logger, infra.KindBackendFailure, "read migrations", err)
	}
	for _, script := range scripts {
		if _, err := s.db.Exec(ctx, script); err != nil {
			return infra.WrapSlotErr(s.logger, infra.KindBackendFailure, "apply migration", err)
		}
	}
	return nil
}

func (s *PostgresSlot) Load(ctx context.Context, key string) ([]byte, error) {
	var blob []byte
	err := s.db.QueryRow(ctx, selectSlotSQL, key).Scan(&blob)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, infra.WrapSlotErr(s.logger, infra.KindNotFound, "slot "+key+" is empty", nil)
	}
	if err != nil {
		return nil, infra.WrapSlotErr(s.logger, infra.KindBackendFailure, "select slot", err)
	}
	return blob, nil
}

func (s *PostgresSlot) Save(ctx context.Context, key string, blob []byte) error {
	if _, err := s.db.Exec(ctx, upsertSlotSQL, key, blob); err != nil {
		return infra.WrapSlotErr(s.logger, infra.KindBackendFailure, "upsert slot", err)
	}
	return nil
}
