package response

import (
	"time"

	"madeireira_api/internal/domain/entities"
	"madeireira_api/internal/domain/pricing"
	"madeireira_api/internal/usecase"
)

// CalculoResponse is the nested calculation block attached to a
// product on reads.
type CalculoResponse struct {
	Volume                 float64 `json:"volume"`
	PecasPorM3             float64 `json:"pecasPorM3"`
	PecasPorSt             float64 `json:"pecasPorSt"`
	CustoPorPecaMadeira    float64 `json:"custoPorPecaMadeira"`
	CustoPorPecaTratamento float64 `json:"custoPorPecaTratamento"`
	CustoTotal             float64 `json:"custoTotal"`
	Sugerido               float64 `json:"sugerido"`
	MargemMin              float64 `json:"margemMin"`
	MargemMax              float64 `json:"margemMax"`
}

type ProdutoResponse struct {
	ID          int64            `json:"id"`
	Nome        string           `json:"nome"`
	Diametro    float64          `json:"diametro"`
	Comprimento float64          `json:"comprimento"`
	PrecoMin    float64          `json:"precoMin"`
	PrecoMax    float64          `json:"precoMax"`
	CriadoEm    time.Time        `json:"criadoEm"`
	Calculo     *CalculoResponse `json:"calculo,omitempty"`
}

func fromCalculo(c pricing.Calculo) *CalculoResponse {
	return &CalculoResponse{
		Volume:                 c.Volume,
		PecasPorM3:             c.PecasPorM3,
		PecasPorSt:             c.PecasPorSt,
		CustoPorPecaMadeira:    c.CustoPorPecaMadeira,
		CustoPorPecaTratamento: c.CustoPorPecaTratamento,
		CustoTotal:             c.CustoTotal,
		Sugerido:               c.Sugerido,
		MargemMin:              c.MargemMin,
		MargemMax:              c.MargemMax,
	}
}

// FromProduto maps a bare product, without a calculation block.
func FromProduto(p entities.Produto) ProdutoResponse {
	return ProdutoResponse{
		ID:          p.ID,
		Nome:        p.Nome,
		Diametro:    p.Diametro,
		Comprimento: p.Comprimento,
		PrecoMin:    p.PrecoMin,
		PrecoMax:    p.PrecoMax,
		CriadoEm:    p.CriadoEm,
	}
}

// FromProdutoComCalculo maps a product enriched with its derived
// figures.
func FromProdutoComCalculo(pc usecase.ProdutoComCalculo) ProdutoResponse {
	res := FromProduto(pc.Produto)
	res.Calculo = fromCalculo(pc.Calculo)
	return res
}

// FromProdutosComCalculo maps the enriched list, never returning nil
// so an empty portfolio serializes as [].
func FromProdutosComCalculo(list []usecase.ProdutoComCalculo) []ProdutoResponse {
	out := make([]ProdutoResponse, 0, len(list))
	for _, pc := range list {
		out = append(out, FromProdutoComCalculo(pc))
	}
	return out
}
