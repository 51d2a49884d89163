package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/infra"
	"restaurant-reservations/internal/infra/converter"
	"restaurant-reservations/internal/pkg/clock"
	"restaurant-reservations/internal/pkg/errs"
	"restaurant-reservations/internal/pkg/metrics"

	"github.com/google/uuid"
)

const DefaultSlotKey = "restaurant-reservations"

type StoreOptions struct {
	Key     string
	Timeout time.Duration
	Metrics *metrics.Metrics
	NewID   func() uuid.UUID
}

// ReservationStore owns the canonical, insertion-ordered reservation
// collection. Every applied mutation rewrites the whole collection to the
// slot before returning. Callers only ever see snapshots.
type ReservationStore struct {
	slot    Slot
	clock   clock.Clock
	logger  *slog.Logger
	metrics *metrics.Metrics
	key     string
	timeout time.Duration
	newID   func() uuid.UUID

	mutex sync.RWMutex
	items []*reservation.Reservation
	// loaded is set once the slot has answered a Load. Until then every
	// write would overwrite the saved collection, so mutations are refused.
	loaded bool
}

var (
	_ ReservationCommands = (*ReservationStore)(nil)
	_ ReservationQueries  = (*ReservationStore)(nil)
)

func NewReservationStore(slot Slot, clk clock.Clock, logger *slog.Logger, opts StoreOptions) *ReservationStore {
	if opts.Key == "" {
		opts.Key = DefaultSlotKey
	}
	if opts.NewID == nil {
		opts.NewID = uuid.New
	}
	return &ReservationStore{
		slot:    slot,
		clock:   clk,
		logger:  logger,
		metrics: opts.Metrics,
		key:     opts.Key,
		timeout: opts.Timeout,
		newID:   opts.NewID,
		items:   []*reservation.Reservation{},
	}
}

// Load replaces the in-memory collection with the slot contents. A missing
// or undecodable slot yields an empty collection and no error. When the
// backend itself fails the store also starts empty and the returned error is
// marked errs.ErrSlotUnavailable. Mutations then retry the load first and
// are refused while the slot stays unreachable.
func (s *ReservationStore) Load(ctx context.Context) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.loadLocked(ctx)
}

func (s *ReservationStore) loadLocked(ctx context.Context) error {
	s.items = []*reservation.Reservation{}
	s.loaded = false
	defer s.recordSize()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	blob, err := s.slot.Load(ctx, s.key)
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		s.loaded = true
		s.logger.Info("reservation slot is empty, starting with no reservations", "key", s.key)
		return nil
	case err != nil:
		s.logger.Warn("reservation slot unavailable, writes are blocked until it answers", "key", s.key, "error", err)
		return errs.Mark(errs.Wrap(err, "load reservations"), errs.ErrSlotUnavailable)
	}

	s.loaded = true
	result, err := converter.DecodeCollection(blob)
	if err != nil {
		s.logger.Warn("reservation slot is corrupt, starting with no reservations", "key", s.key, "error", err)
		return nil
	}
	for _, skipped := range result.Skipped {
		s.logger.Warn("dropping unreadable reservation record", "key", s.key, "error", skipped)
	}

	s.items = result.Reservations
	s.logger.Info("reservations loaded", "key", s.key, "count", len(s.items))
	return nil
}

// ensureLoadedLocked retries the initial load before the first write.
func (s *ReservationStore) ensureLoadedLocked(ctx context.Context, op string) error {
	if s.loaded {
		return nil
	}
	if err := s.loadLocked(ctx); err != nil {
		return errs.Wrapf(err, "%s refused", op)
	}
	return nil
}

// persistLocked must be called with the write lock held so saves reach the
// slot in the same order the mutations were applied.
func (s *ReservationStore) persistLocked(ctx context.Context, op string) error {
	s.recordSize()
	if s.metrics != nil {
		s.metrics.Mutations.WithLabelValues(op).Inc()
	}

	started := time.Now()
	err := s.save(ctx)
	if s.metrics != nil {
		s.metrics.PersistDuration.Observe(time.Since(started).Seconds())
	}
	if err == nil {
		return nil
	}

	if s.metrics != nil {
		s.metrics.PersistFailures.Inc()
	}
	s.logger.Warn("reservation change applied but not persisted", "operation", op, "key", s.key, "error", err)
	return errs.Mark(errs.Wrapf(err, "persist after %s", op), errs.ErrPersistFailed)
}

func (s *ReservationStore) save(ctx context.Context) error {
	blob, err := converter.EncodeCollection(s.items)
	if err != nil {
		return err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.slot.Save(ctx, s.key, blob)
}

func (s *ReservationStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *ReservationStore) indexOf(id uuid.UUID) int {
	for i, r := range s.items {
		if r.ID() == id {
			return i
		}
	}
	return -1
}

func (s *ReservationStore) recordSize() {
	if s.metrics != nil {
		s.metrics.StoredTotal.Set(float64(len(s.items)))
	}
}
