package storage

import (
	"context"
	"errors"

	"github.com/lifeweeks/lifeweeks/internal/model"
)

var ErrNotFound = errors.New("storage: not found")

// Repository loads and saves the full timeline snapshot. Load returns
// ErrNotFound on a fresh database; the caller starts from defaults then.
// Save persists the whole snapshot transactionally, so a failed save never
// leaves half a mutation on disk.
type Repository interface {
	LoadSettings(ctx context.Context) (model.TimelineSettings, error)
	SaveSettings(ctx context.Context, s model.TimelineSettings) error
}
