package usecase

import (
	"context"

	"madeireira_api/internal/usecase/interfaces"
)

// margemBaixaLimite is the alert threshold: products whose margin at
// the maximum price falls below this percentage are flagged.
const margemBaixaLimite = 15.0

// Analise is the portfolio view over all products. Purely derived;
// nothing here is persisted.
type Analise struct {
	MargemMediaMax     float64
	LucroMedioPorSt    float64
	AlertasMargemBaixa int
	Produtos           []ProdutoComCalculo
}

// IAnaliseUseCase folds the pricing engine across the portfolio.
type IAnaliseUseCase interface {
	Analisar(ctx context.Context) (Analise, error)
}

type AnaliseUseCase struct {
	produtos interfaces.IProdutoRepository
}

var _ IAnaliseUseCase = (*AnaliseUseCase)(nil)

func NewAnaliseUseCase(produtos interfaces.IProdutoRepository) *AnaliseUseCase {
	return &AnaliseUseCase{produtos: produtos}
}

func (u *AnaliseUseCase) Analisar(ctx context.Context) (Analise, error) {
	produtos, cfg, err := u.produtos.Snapshot(ctx)
	if err != nil {
		return Analise{}, err
	}

	enriched := enrich(produtos, cfg)
	a := Analise{Produtos: enriched}
	if len(enriched) == 0 {
		return a, nil
	}

	somaMargem := 0.0
	somaLucro := 0.0
	for _, pc := range enriched {
		somaMargem += pc.Calculo.MargemMax
		// Implied profit for a whole stacked unit sold at the top of
		// the price band, against the unit cost baseline.
		somaLucro += (pc.Produto.PrecoMax - pc.Calculo.CustoTotal) * pc.Calculo.PecasPorSt
		if pc.Calculo.MargemMax < margemBaixaLimite {
			a.AlertasMargemBaixa++
		}
	}
	n := float64(len(enriched))
	a.MargemMediaMax = somaMargem / n
	a.LucroMedioPorSt = somaLucro / n
	return a, nil
}
