package slot

import (
	"context"
	"log/slog"
	"sync"

	"restaurant-reservations/internal/infra"
)

// MemorySlot keeps blobs in process memory. Nothing survives a restart.
type MemorySlot struct {
	logger *slog.Logger
	blobs  map[string][]byte
	mutex  sync.RWMutex
}

func NewMemorySlot(logger *slog.Logger) *MemorySlot {
	return &MemorySlot{
		logger: logger,
		blobs:  make(map[string][]byte),
	}
}

func (s *MemorySlot) Load(_ context.Context, key string) ([]byte, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	blob, exists := s.blobs[key]
	if !exists {
		return nil, infra.WrapSlotErr(s.logger, infra.KindNotFound, "slot "+key+" is empty", nil)
	}
	return append([]byte(nil), blob...), nil
}

func (s *MemorySlot) Save(_ context.Context, key string, blob []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.blobs[key] = append([]byte(nil), blob...)
	return nil
}
