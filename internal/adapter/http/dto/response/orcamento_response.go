package response

import (
	"time"

	"madeireira_api/internal/domain/entities"
)

type ItemOrcamentoResponse struct {
	ProdutoID     int64   `json:"produtoId,omitempty"`
	Descricao     string  `json:"descricao,omitempty"`
	Qtd           float64 `json:"qtd"`
	PrecoUnitario float64 `json:"precoUnitario"`
}

type OrcamentoResponse struct {
	ID       string                  `json:"id"`
	Data     string                  `json:"data"`
	Cliente  string                  `json:"cliente"`
	Itens    []ItemOrcamentoResponse `json:"itens"`
	Total    float64                 `json:"total"`
	CriadoEm time.Time               `json:"criadoEm"`
}

func FromOrcamento(o entities.Orcamento) OrcamentoResponse {
	itens := make([]ItemOrcamentoResponse, 0, len(o.Itens))
	for _, it := range o.Itens {
		itens = append(itens, ItemOrcamentoResponse{
			ProdutoID:     it.ProdutoID,
			Descricao:     it.Descricao,
			Qtd:           it.Qtd,
			PrecoUnitario: it.PrecoUnitario,
		})
	}
	return OrcamentoResponse{
		ID:       o.ID,
		Data:     o.Data,
		Cliente:  o.Cliente,
		Itens:    itens,
		Total:    o.Total,
		CriadoEm: o.CriadoEm,
	}
}

func FromOrcamentos(list []entities.Orcamento) []OrcamentoResponse {
	out := make([]OrcamentoResponse, 0, len(list))
	for _, o := range list {
		out = append(out, FromOrcamento(o))
	}
	return out
}
