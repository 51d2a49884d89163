package slot

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"restaurant-reservations/internal/infra"
)

// FileSlot stores each key as <dir>/<key>.json. Saves go through a
// temporary file and a rename so a crash never leaves a half-written slot.
type FileSlot struct {
	logger *slog.Logger
	dir    string
}

func NewFileSlot(logger *slog.Logger, dir string) *FileSlot {
	return &FileSlot{logger: logger, dir: dir}
}

func (s *FileSlot) Load(_ context.Context, key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	blob, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, infra.WrapSlotErr(s.logger, infra.KindNotFound, "slot "+key+" is empty", nil)
	}
	if err != nil {
		return nil, infra.WrapSlotErr(s.logger, infra.KindBackendFailure, "read slot file", err)
	}
	return blob, nil
}

func (s *FileSlot) Save(ctx context.Context, key string, blob []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return infra.WrapSlotErr(s.logger, infra.KindBackendFailure, "save slot file", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return infra.WrapSlotErr(s.logger, infra.KindBackendFailure, "create slot directory", err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+key+".*.tmp")
	if err != nil {
		return infra.WrapSlotErr(s.logger, infra.KindBackendFailure, "create temporary slot file", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op once the rename succeeded
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(blob); err != nil {
		_ = tmp.Close()
		return infra.WrapSlotErr(s.logger, infra.KindBackendFailure, "write slot file", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return infra.WrapSlotErr(s.logger, infra.KindBackendFailure, "sync slot file", err)
	}
	if err := tmp.Close(); err != nil {
		return infra.WrapSlotErr(s.logger, infra.KindBackendFailure, "close slot file", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return infra.WrapSlotErr(s.logger, infra.KindBackendFailure, "replace slot file", err)
	}
	return nil
}

func (s *FileSlot) path(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", infra.WrapSlotErr(s.logger, infra.KindInvalidKey, "slot key "+key+" cannot be used as a file name", nil)
	}
	return filepath.Join(s.dir, key+".json"), nil
}
