package request

// ConfigUpdateRequest is a partial update of the cost configuration.
// Nil fields are left untouched; supplied fields are applied even when
// zero, and the use case decides whether zero is legal for the field.
type ConfigUpdateRequest struct {
	Madeira        *float64 `json:"madeira"`
	Tratamento     *float64 `json:"tratamento"`
	Coef           *float64 `json:"coef"`
	Comp           *float64 `json:"comp"`
	MargemDesejada *float64 `json:"margemDesejada"`
}
