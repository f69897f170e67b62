package interfaces

import (
	"context"

	"madeireira_api/internal/domain/entities"
)

// IConfigRepository abstracts the singleton cost configuration.
//
// The configuration always exists; Get never reports not-found.
type IConfigRepository interface {
	Get(ctx context.Context) (entities.Config, error)
	// Update applies fn to the stored configuration inside the
	// store's read-modify-write cycle. An error from fn aborts the
	// write.
	Update(ctx context.Context, fn func(cfg *entities.Config) error) (entities.Config, error)
}
