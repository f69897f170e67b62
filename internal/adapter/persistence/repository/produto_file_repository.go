package repository

import (
	"context"
	"errors"

	"madeireira_api/internal/domain/entities"
	"madeireira_api/internal/infrastructure/database"
	"madeireira_api/internal/usecase/interfaces"
)

// errSkipWrite aborts a store Update without surfacing an error to the
// caller. Used to map not-found onto the zero-value convention while
// leaving the backing file untouched.
var errSkipWrite = errors.New("skip write")

// ProdutoFileRepository persists Produto entities in the shared JSON
// document store.
type ProdutoFileRepository struct {
	store *database.FileStore
}

var _ interfaces.IProdutoRepository = (*ProdutoFileRepository)(nil)

func NewProdutoFileRepository(store *database.FileStore) *ProdutoFileRepository {
	return &ProdutoFileRepository{store: store}
}

func (r *ProdutoFileRepository) List(_ context.Context) ([]entities.Produto, error) {
	doc, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	return doc.Produtos, nil
}

func (r *ProdutoFileRepository) Snapshot(_ context.Context) ([]entities.Produto, entities.Config, error) {
	doc, err := r.store.Load()
	if err != nil {
		return nil, entities.Config{}, err
	}
	return doc.Produtos, doc.Config, nil
}

func (r *ProdutoFileRepository) Create(_ context.Context, p entities.Produto) (entities.Produto, error) {
	err := r.store.Update(func(doc *database.Documento) error {
		p.ID = doc.ProximoProdutoID
		doc.ProximoProdutoID++
		doc.Produtos = append(doc.Produtos, p)
		return nil
	})
	if err != nil {
		return entities.Produto{}, err
	}
	return p, nil
}

func (r *ProdutoFileRepository) Update(_ context.Context, id int64, fn func(p *entities.Produto) error) (entities.Produto, error) {
	var updated entities.Produto
	err := r.store.Update(func(doc *database.Documento) error {
		for i := range doc.Produtos {
			if doc.Produtos[i].ID != id {
				continue
			}
			if err := fn(&doc.Produtos[i]); err != nil {
				return err
			}
			updated = doc.Produtos[i]
			return nil
		}
		return errSkipWrite
	})
	if errors.Is(err, errSkipWrite) {
		return entities.Produto{}, nil
	}
	if err != nil {
		return entities.Produto{}, err
	}
	return updated, nil
}

func (r *ProdutoFileRepository) Delete(_ context.Context, id int64) (bool, error) {
	err := r.store.Update(func(doc *database.Documento) error {
		for i := range doc.Produtos {
			if doc.Produtos[i].ID == id {
				doc.Produtos = append(doc.Produtos[:i], doc.Produtos[i+1:]...)
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
