package request

// ItemOrcamentoRequest is one budget line. Quantity and unit price are
// validated by the use case (qtd > 0, precoUnitario >= 0).
type ItemOrcamentoRequest struct {
	ProdutoID     int64   `json:"produtoId"`
	Descricao     string  `json:"descricao"`
	Qtd           float64 `json:"qtd"`
	PrecoUnitario float64 `json:"precoUnitario"`
}

// OrcamentoCreateRequest creates a budget. The total is never part of
// the payload; it is always derived from the items server-side.
type OrcamentoCreateRequest struct {
	Data    string                 `json:"data" binding:"required"`
	Cliente string                 `json:"cliente" binding:"required"`
	Itens   []ItemOrcamentoRequest `json:"itens" binding:"required"`
}
