package interfaces

import (
	"context"

	"madeireira_api/internal/domain/entities"
)

// IOrcamentoRepository abstracts flat-file persistence for budgets.
//
// Budgets are append-and-delete only; there is no update operation.
type IOrcamentoRepository interface {
	List(ctx context.Context) ([]entities.Orcamento, error)
	Create(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error)
	Delete(ctx context.Context, id string) (bool, error)
}
