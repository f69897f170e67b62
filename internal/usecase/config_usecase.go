package usecase

import (
	"context"
	"errors"

	"madeireira_api/internal/domain/entities"
	"madeireira_api/internal/usecase/interfaces"
)

var ErrInvalidConfigValue = errors.New("invalid configuration value")

// ConfigPatch is a partial configuration update. Nil means "leave
// untouched"; a supplied zero is applied where the invariants allow
// it (only MargemDesejada may legitimately be zero).
type ConfigPatch struct {
	Madeira        *float64
	Tratamento     *float64
	Coef           *float64
	Comp           *float64
	MargemDesejada *float64
}

// IConfigUseCase exposes the singleton cost configuration.
type IConfigUseCase interface {
	Get(ctx context.Context) (entities.Config, error)
	Update(ctx context.Context, patch ConfigPatch) (entities.Config, error)
}

type ConfigUseCase struct {
	repo interfaces.IConfigRepository
}

var _ IConfigUseCase = (*ConfigUseCase)(nil)

func NewConfigUseCase(repo interfaces.IConfigRepository) *ConfigUseCase {
	return &ConfigUseCase{repo: repo}
}

func (u *ConfigUseCase) Get(ctx context.Context) (entities.Config, error) {
	return u.repo.Get(ctx)
}

func (u *ConfigUseCase) Update(ctx context.Context, patch ConfigPatch) (entities.Config, error) {
	// Divisors must stay positive; reject before touching the store.
	for _, v := range []*float64{patch.Madeira, patch.Tratamento, patch.Coef, patch.Comp} {
		if v != nil && *v <= 0 {
			return entities.Config{}, ErrInvalidConfigValue
		}
	}
	if patch.MargemDesejada != nil && *patch.MargemDesejada < 0 {
		return entities.Config{}, ErrInvalidConfigValue
	}

	return u.repo.Update(ctx, func(cfg *entities.Config) error {
		if patch.Madeira != nil {
			cfg.Madeira = *patch.Madeira
		}
		if patch.Tratamento != nil {
			cfg.Tratamento = *patch.Tratamento
		}
		if patch.Coef != nil {
			cfg.Coef = *patch.Coef
		}
		if patch.Comp != nil {
			cfg.Comp = *patch.Comp
		}
		if patch.MargemDesejada != nil {
			cfg.MargemDesejada = *patch.MargemDesejada
		}
		return nil
	})
}
