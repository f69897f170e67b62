package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"madeireira_api/internal/domain/entities"
	"madeireira_api/internal/domain/pricing"
	"madeireira_api/internal/usecase/interfaces"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrInvalidProductName   = errors.New("invalid product name")
	ErrInvalidDiameter      = errors.New("diameter must be positive")
	ErrInvalidLength        = errors.New("length must be positive")
	ErrInvalidPriceRange    = errors.New("minimum price must be below maximum price")
	ErrDimensionsOutOfRange = errors.New("dimensions yield no usable pieces")
)

// ProdutoComCalculo pairs a stored product with the figures derived
// from the configuration in effect at read time.
type ProdutoComCalculo struct {
	Produto entities.Produto
	Calculo pricing.Calculo
}

// NovoProduto carries the validated fields of a creation request.
type NovoProduto struct {
	Nome        string
	Diametro    float64
	Comprimento float64
	PrecoMin    float64
	PrecoMax    float64
}

// ProdutoPatch is a partial update. Nil means "leave untouched", so a
// legitimately supplied zero is distinguishable from an absent field.
type ProdutoPatch struct {
	Nome        *string
	Diametro    *float64
	Comprimento *float64
	PrecoMin    *float64
	PrecoMax    *float64
}

// IProdutoUseCase exposes product operations.
//
// List returns every product enriched with its calculation block,
// recomputed on each call so configuration changes apply immediately.
type IProdutoUseCase interface {
	List(ctx context.Context) ([]ProdutoComCalculo, error)
	Create(ctx context.Context, novo NovoProduto) (entities.Produto, error)
	Update(ctx context.Context, id int64, patch ProdutoPatch) (entities.Produto, error)
	Delete(ctx context.Context, id int64) error
}

type ProdutoUseCase struct {
	produtos interfaces.IProdutoRepository
	config   interfaces.IConfigRepository
}

var _ IProdutoUseCase = (*ProdutoUseCase)(nil)

func NewProdutoUseCase(produtos interfaces.IProdutoRepository, config interfaces.IConfigRepository) *ProdutoUseCase {
	return &ProdutoUseCase{produtos: produtos, config: config}
}

func (u *ProdutoUseCase) List(ctx context.Context) ([]ProdutoComCalculo, error) {
	produtos, cfg, err := u.produtos.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return enrich(produtos, cfg), nil
}

func enrich(produtos []entities.Produto, cfg entities.Config) []ProdutoComCalculo {
	out := make([]ProdutoComCalculo, 0, len(produtos))
	for _, p := range produtos {
		out = append(out, ProdutoComCalculo{Produto: p, Calculo: pricing.CalcularDados(p, cfg)})
	}
	return out
}

func (u *ProdutoUseCase) Create(ctx context.Context, novo NovoProduto) (entities.Produto, error) {
	novo.Nome = strings.TrimSpace(novo.Nome)

	p := entities.Produto{
		Nome:        novo.Nome,
		Diametro:    novo.Diametro,
		Comprimento: novo.Comprimento,
		PrecoMin:    novo.PrecoMin,
		PrecoMax:    novo.PrecoMax,
	}
	if err := validateProduto(p); err != nil {
		return entities.Produto{}, err
	}

	cfg, err := u.config.Get(ctx)
	if err != nil {
		return entities.Produto{}, err
	}
	if err := validateDimensoes(p, cfg); err != nil {
		return entities.Produto{}, err
	}

	p.CriadoEm = time.Now().UTC()
	return u.produtos.Create(ctx, p)
}

func (u *ProdutoUseCase) Update(ctx context.Context, id int64, patch ProdutoPatch) (entities.Produto, error) {
	cfg, err := u.config.Get(ctx)
	if err != nil {
		return entities.Produto{}, err
	}

	updated, err := u.produtos.Update(ctx, id, func(p *entities.Produto) error {
		if patch.Nome != nil {
			p.Nome = strings.TrimSpace(*patch.Nome)
		}
		if patch.Diametro != nil {
			p.Diametro = *patch.Diametro
		}
		if patch.Comprimento != nil {
			p.Comprimento = *patch.Comprimento
		}
		if patch.PrecoMin != nil {
			p.PrecoMin = *patch.PrecoMin
		}
		if patch.PrecoMax != nil {
			p.PrecoMax = *patch.PrecoMax
		}
		if err := validateProduto(*p); err != nil {
			return err
		}
		return validateDimensoes(*p, cfg)
	})
	if err != nil {
		return entities.Produto{}, err
	}
	if updated.ID == 0 {
		return entities.Produto{}, ErrProductNotFound
	}
	return updated, nil
}

func (u *ProdutoUseCase) Delete(ctx context.Context, id int64) error {
	found, err := u.produtos.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrProductNotFound
	}
	return nil
}

func validateProduto(p entities.Produto) error {
	if p.Nome == "" {
		return ErrInvalidProductName
	}
	if p.Diametro <= 0 {
		return ErrInvalidDiameter
	}
	if p.Comprimento <= 0 {
		return ErrInvalidLength
	}
	if p.PrecoMin >= p.PrecoMax {
		return ErrInvalidPriceRange
	}
	return nil
}

// validateDimensoes rejects geometry so extreme that rounding yields
// zero usable pieces, which would make the per-piece wood cost
// non-finite downstream.
func validateDimensoes(p entities.Produto, cfg entities.Config) error {
	if c := pricing.CalcularDados(p, cfg); c.PecasPorSt < 1 {
		return ErrDimensionsOutOfRange
	}
	return nil
}
