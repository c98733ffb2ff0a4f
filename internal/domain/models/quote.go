package models

// QuoteRecord is one security's latest known quote. Symbol is unique within
// a snapshot; Price carries 2-decimal display precision.
type QuoteRecord struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
}
