package response

import "madeireira_api/internal/usecase"

// AnaliseResponse is the portfolio report: averages over every
// product's derived figures plus the enriched list itself.
type AnaliseResponse struct {
	MargemMediaMax     float64           `json:"margemMediaMax"`
	LucroMedioPorSt    float64           `json:"lucroMedioPorSt"`
	AlertasMargemBaixa int               `json:"alertasMargemBaixa"`
	Produtos           []ProdutoResponse `json:"produtos"`
}

func FromAnalise(a usecase.Analise) AnaliseResponse {
	return AnaliseResponse{
		MargemMediaMax:     a.MargemMediaMax,
		LucroMedioPorSt:    a.LucroMedioPorSt,
		AlertasMargemBaixa: a.AlertasMargemBaixa,
		Produtos:           FromProdutosComCalculo(a.Produtos),
	}
}

// MessageResponse confirms a destructive operation.
type MessageResponse struct {
	Message string `json:"message"`
}
