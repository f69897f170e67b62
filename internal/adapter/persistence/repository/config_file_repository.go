package repository

import (
	"context"

	"madeireira_api/internal/domain/entities"
	"madeireira_api/internal/infrastructure/database"
	"madeireira_api/internal/usecase/interfaces"
)

// ConfigFileRepository reads and updates the singleton configuration
// in the shared JSON document store. The store guarantees a default
// configuration exists, so Get never reports not-found.
type ConfigFileRepository struct {
	store *database.FileStore
}

var _ interfaces.IConfigRepository = (*ConfigFileRepository)(nil)

func NewConfigFileRepository(store *database.FileStore) *ConfigFileRepository {
	return &ConfigFileRepository{store: store}
}

func (r *ConfigFileRepository) Get(_ context.Context) (entities.Config, error) {
	doc, err := r.store.Load()
	if err != nil {
		return entities.Config{}, err
	}
	return doc.Config, nil
}

func (r *ConfigFileRepository) Update(_ context.Context, fn func(cfg *entities.Config) error) (entities.Config, error) {
	var updated entities.Config
	err := r.store.Update(func(doc *database.Documento) error {
		if err := fn(&doc.Config); err != nil {
			return err
		}
		updated = doc.Config
		return nil
	})
	if err != nil {
		return entities.Config{}, err
	}
	return updated, nil
}
