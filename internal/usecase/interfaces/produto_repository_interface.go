package interfaces

import (
	"context"

	"madeireira_api/internal/domain/entities"
)

// IProdutoRepository abstracts flat-file persistence for Produto.
//
// Not-found follows the zero-value convention: lookups return an
// empty Produto (ID 0) with a nil error, and Delete reports absence
// through its boolean. Errors are reserved for storage failures.
type IProdutoRepository interface {
	List(ctx context.Context) ([]entities.Produto, error)
	// Snapshot returns the product list together with the
	// configuration from the same store read, so derived values are
	// computed against a consistent document.
	Snapshot(ctx context.Context) ([]entities.Produto, entities.Config, error)
	// Create assigns the next identifier and persists the record.
	Create(ctx context.Context, p entities.Produto) (entities.Produto, error)
	// Update applies fn to the stored record inside the store's
	// read-modify-write cycle. An error from fn aborts the write and
	// is passed through to the caller.
	Update(ctx context.Context, id int64, fn func(p *entities.Produto) error) (entities.Produto, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
