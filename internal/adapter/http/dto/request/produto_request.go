package request

// ProdutoCreateRequest requires every field to be present. Pointer
// fields make presence explicit, so a legitimate zero is not confused
// with an omitted value by the binding layer.
type ProdutoCreateRequest struct {
	Nome        *string  `json:"nome" binding:"required"`
	Diametro    *float64 `json:"diametro" binding:"required"`
	Comprimento *float64 `json:"comprimento" binding:"required"`
	PrecoMin    *float64 `json:"precoMin" binding:"required"`
	PrecoMax    *float64 `json:"precoMax" binding:"required"`
}

// ProdutoUpdateRequest is a partial update: nil fields are left
// untouched and supplied fields — including zeros — are applied.
type ProdutoUpdateRequest struct {
	Nome        *string  `json:"nome"`
	Diametro    *float64 `json:"diametro"`
	Comprimento *float64 `json:"comprimento"`
	PrecoMin    *float64 `json:"precoMin"`
	PrecoMax    *float64 `json:"precoMax"`
}
