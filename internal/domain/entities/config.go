package entities

// Config is the singleton cost configuration shared by every pricing
// calculation. Exactly one instance exists per store.
//
// Units:
//   - Madeira: raw wood cost per stacked unit (st).
//   - Tratamento: treatment cost per cubic meter.
//   - Coef: fraction of theoretical pieces actually usable (yield).
//   - Comp: default piece length in meters, used when a product has
//     no length of its own.
//   - MargemDesejada: desired margin in percent for price suggestion.
//
// Madeira, Tratamento, Coef and Comp are divisors or multipliers in
// the pricing engine and must stay positive.
type Config struct {
	Madeira        float64 `json:"madeira"`
	Tratamento     float64 `json:"tratamento"`
	Coef           float64 `json:"coef"`
	Comp           float64 `json:"comp"`
	MargemDesejada float64 `json:"margemDesejada"`
}

// DefaultConfig seeds a brand-new store and doubles as the first-run
// configuration.
func DefaultConfig() Config {
	return Config{
		Madeira:        135,
		Tratamento:     350,
		Coef:           0.65,
		Comp:           2.20,
		MargemDesejada: 30,
	}
}
