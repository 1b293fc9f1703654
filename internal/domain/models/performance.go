package models

// PricePoint is a single end-of-day close.
type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// PerformanceSeries is the lazily loaded price history for one issuer.
// Trailing returns are percentages and only present when upstream has them.
type PerformanceSeries struct {
	IssuerID  string       `json:"issuerId"`
	EODPrices []PricePoint `json:"eodPrices"`

	MCap        *float64 `json:"mcap,omitempty"`
	Trailing30  *float64 `json:"trailing30,omitempty"`
	Trailing90  *float64 `json:"trailing90,omitempty"`
	Trailing365 *float64 `json:"trailing365,omitempty"`
	YTD         *float64 `json:"ytd,omitempty"`
}
