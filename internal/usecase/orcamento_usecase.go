package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"madeireira_api/internal/domain/entities"
	"madeireira_api/internal/usecase/interfaces"
)

var (
	ErrBudgetNotFound    = errors.New("budget not found")
	ErrInvalidBudgetDate = errors.New("invalid budget date")
	ErrInvalidClient     = errors.New("invalid client")
	ErrEmptyItems        = errors.New("budget requires at least one item")
	ErrInvalidItem       = errors.New("invalid budget item")
)

// NovoOrcamento carries the fields of a budget creation request. The
// total is never taken from the client; it is derived from the items.
type NovoOrcamento struct {
	Data    string
	Cliente string
	Itens   []entities.ItemOrcamento
}

// IOrcamentoUseCase exposes budget operations. Budgets are immutable
// once created except for deletion.
type IOrcamentoUseCase interface {
	List(ctx context.Context) ([]entities.Orcamento, error)
	Create(ctx context.Context, novo NovoOrcamento) (entities.Orcamento, error)
	Delete(ctx context.Context, id string) error
}

type OrcamentoUseCase struct {
	repo interfaces.IOrcamentoRepository
}

var _ IOrcamentoUseCase = (*OrcamentoUseCase)(nil)

func NewOrcamentoUseCase(repo interfaces.IOrcamentoRepository) *OrcamentoUseCase {
	return &OrcamentoUseCase{repo: repo}
}

func (u *OrcamentoUseCase) List(ctx context.Context) ([]entities.Orcamento, error) {
	return u.repo.List(ctx)
}

func (u *OrcamentoUseCase) Create(ctx context.Context, novo NovoOrcamento) (entities.Orcamento, error) {
	data := strings.TrimSpace(novo.Data)
	cliente := strings.TrimSpace(novo.Cliente)
	if data == "" {
		return entities.Orcamento{}, ErrInvalidBudgetDate
	}
	if cliente == "" {
		return entities.Orcamento{}, ErrInvalidClient
	}
	if len(novo.Itens) == 0 {
		return entities.Orcamento{}, ErrEmptyItems
	}
	for _, it := range novo.Itens {
		if it.Qtd <= 0 || it.PrecoUnitario < 0 {
			return entities.Orcamento{}, ErrInvalidItem
		}
	}

	now := time.Now().UTC()
	o := entities.Orcamento{
		ID:       entities.NewOrcamentoID(now),
		Data:     data,
		Cliente:  cliente,
		Itens:    novo.Itens,
		Total:    entities.TotalItens(novo.Itens),
		CriadoEm: now,
	}
	return u.repo.Create(ctx, o)
}

func (u *OrcamentoUseCase) Delete(ctx context.Context, id string) error {
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrBudgetNotFound
	}
	return nil
}
