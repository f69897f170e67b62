package pricing

import (
	"math"

	"madeireira_api/internal/domain/entities"
)

// Calculo holds every derived figure for one product under the current
// configuration. Nothing here is ever persisted; it is recomputed on
// each read so a configuration change is reflected immediately.
type Calculo struct {
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

// ComprimentoEfetivo resolves the length used for pricing: the
// product's own length, or the configured default when unset.
func ComprimentoEfetivo(p entities.Produto, cfg entities.Config) float64 {
	if p.Comprimento > 0 {
		return p.Comprimento
	}
	return cfg.Comp
}

// CalcularDados derives volume, piece counts, unit costs, suggested
// price and margin bounds for one product.
//
// The cylinder volume uses the diameter converted from centimeters to
// meters. Piece counts are rounded to the nearest integer; the stacked
// count applies the yield coefficient to the theoretical packing.
//
// Callers must ensure diameter and length are within sane physical
// bounds: a volume large enough to round to zero pieces makes the
// per-piece wood cost non-finite, and this function does not guard
// against it.
func CalcularDados(p entities.Produto, cfg entities.Config) Calculo {
	comprimento := ComprimentoEfetivo(p, cfg)
	raio := p.Diametro / 100 / 2
	volume := math.Pi * raio * raio * comprimento

	pecasPorM3 := math.Round(1 / volume)
	pecasPorSt := math.Round(pecasPorM3 * cfg.Coef)

	custoMadeira := cfg.Madeira / pecasPorSt
	custoTratamento := volume * cfg.Tratamento
	custoTotal := custoMadeira + custoTratamento

	return Calculo{
		Volume:                 volume,
		PecasPorM3:             pecasPorM3,
		PecasPorSt:             pecasPorSt,
		CustoPorPecaMadeira:    custoMadeira,
		CustoPorPecaTratamento: custoTratamento,
		CustoTotal:             custoTotal,
		Sugerido:               custoTotal * (1 + cfg.MargemDesejada/100),
		MargemMin:              margem(p.PrecoMin, custoTotal),
		MargemMax:              margem(p.PrecoMax, custoTotal),
	}
}

func margem(preco, custo float64) float64 {
	return (preco - custo) / custo * 100
}
