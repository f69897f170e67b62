package entities

import (
	"fmt"
	"time"
)

// OrcamentoIDPrefix prefixes every budget identifier. The rest of the
// identifier is the creation timestamp in unix milliseconds, which
// keeps ids unique under single-writer use and roughly chronological.
const OrcamentoIDPrefix = "ORC-"

// ItemOrcamento is one line of a budget: a quantity at a unit price,
// optionally referencing a stored product.
type ItemOrcamento struct {
	ProdutoID     int64   `json:"produtoId,omitempty"`
	Descricao     string  `json:"descricao,omitempty"`
	Qtd           float64 `json:"qtd"`
	PrecoUnitario float64 `json:"precoUnitario"`
}

// Orcamento is a client quote. It is immutable once created: the only
// permitted mutation is deletion, and Total is fixed at creation time
// as the sum of Qtd×PrecoUnitario over Itens.
type Orcamento struct {
	ID       string          `json:"id"`
	Data     string          `json:"data"`
	Cliente  string          `json:"cliente"`
	Itens    []ItemOrcamento `json:"itens"`
	Total    float64         `json:"total"`
	CriadoEm time.Time       `json:"criadoEm"`
}

// NewOrcamentoID builds the prefixed timestamp identifier for a budget
// created at t.
func NewOrcamentoID(t time.Time) string {
	return fmt.Sprintf("%s%d", OrcamentoIDPrefix, t.UnixMilli())
}

// TotalItens computes the budget total from its line items.
func TotalItens(itens []ItemOrcamento) float64 {
	total := 0.0
	for _, it := range itens {
		total += it.Qtd * it.PrecoUnitario
	}
	return total
}
