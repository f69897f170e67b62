package response

import (
	"testing"
	"time"

	"madeireira_api/internal/domain/entities"
	"madeireira_api/internal/domain/pricing"
	"madeireira_api/internal/usecase"
)

func TestFromProdutoComCalculo(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Produto{
		ID: 3, Nome: "Mourão 20cm",
		Diametro: 20, Comprimento: 2.2,
		PrecoMin: 18, PrecoMax: 28,
		CriadoEm: now,
	}
	c := pricing.CalcularDados(p, entities.DefaultConfig())

	res := FromProdutoComCalculo(usecase.ProdutoComCalculo{Produto: p, Calculo: c})
	if res.ID != 3 || res.Nome != "Mourão 20cm" || !res.CriadoEm.Equal(now) {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Calculo == nil {
		t.Fatalf("expected calculation block")
	}
	if res.Calculo.CustoTotal != c.CustoTotal || res.Calculo.PecasPorSt != c.PecasPorSt {
		t.Fatalf("calculation block differs: %+v vs %+v", res.Calculo, c)
	}
}

func TestFromProduto_NoCalculoBlock(t *testing.T) {
	res := FromProduto(entities.Produto{ID: 1, Nome: "Mourão"})
	if res.Calculo != nil {
		t.Fatalf("bare mapping should omit calculation block: %+v", res)
	}
}

func TestFromOrcamento(t *testing.T) {
	now := time.Now().UTC()
	o := entities.Orcamento{
		ID:      entities.NewOrcamentoID(now),
		Data:    "2026-09-01",
		Cliente: "Fazenda Boa Vista",
		Itens: []entities.ItemOrcamento{
			{ProdutoID: 2, Qtd: 10, PrecoUnitario: 12.5},
		},
		Total:    125,
		CriadoEm: now,
	}

	res := FromOrcamento(o)
	if res.ID != o.ID || res.Cliente != "Fazenda Boa Vista" || res.Total != 125 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if len(res.Itens) != 1 || res.Itens[0].ProdutoID != 2 || res.Itens[0].Qtd != 10 {
		t.Fatalf("unexpected items: %+v", res.Itens)
	}
}
