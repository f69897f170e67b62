package entities

import "time"

// Produto is a wood product (mourão/log class) persisted in the store.
//
// Physical model:
//   - Diametro is the log diameter in centimeters.
//   - Comprimento is the piece length in meters. A zero length means
//     "use the default length from Config" when pricing.
//
// Price band:
//   - PrecoMin < PrecoMax is enforced on every write; pricing derives
//     a margin against each bound.
//
// Nothing derived is stored on the record. Costs and margins are
// recomputed from the current Config on every read.
type Produto struct {
	ID          int64     `json:"id"`
	Nome        string    `json:"nome"`
	Diametro    float64   `json:"diametro"`
	Comprimento float64   `json:"comprimento"`
	PrecoMin    float64   `json:"precoMin"`
	PrecoMax    float64   `json:"precoMax"`
	CriadoEm    time.Time `json:"criadoEm"`
}
