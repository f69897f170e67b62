package repository

import (
	"context"
	"errors"

	"madeireira_api/internal/domain/entities"
	"madeireira_api/internal/infrastructure/database"
	"madeireira_api/internal/usecase/interfaces"
)

// OrcamentoFileRepository persists budgets in the shared JSON document
// store.
type OrcamentoFileRepository struct {
	store *database.FileStore
}

var _ interfaces.IOrcamentoRepository = (*OrcamentoFileRepository)(nil)

func NewOrcamentoFileRepository(store *database.FileStore) *OrcamentoFileRepository {
	return &OrcamentoFileRepository{store: store}
}

func (r *OrcamentoFileRepository) List(_ context.Context) ([]entities.Orcamento, error) {
	doc, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	return doc.Orcamentos, nil
}

func (r *OrcamentoFileRepository) Create(_ context.Context, o entities.Orcamento) (entities.Orcamento, error) {
	err := r.store.Update(func(doc *database.Documento) error {
		doc.Orcamentos = append(doc.Orcamentos, o)
		return nil
	})
	if err != nil {
		return entities.Orcamento{}, err
	}
	return o, nil
}

func (r *OrcamentoFileRepository) Delete(_ context.Context, id string) (bool, error) {
	err := r.store.Update(func(doc *database.Documento) error {
		for i := range doc.Orcamentos {
			if doc.Orcamentos[i].ID == id {
				doc.Orcamentos = append(doc.Orcamentos[:i], doc.Orcamentos[i+1:]...)
				return nil
			}
		}
		return errSkipWrite
	})
	if errors.Is(err, errSkipWrite) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
