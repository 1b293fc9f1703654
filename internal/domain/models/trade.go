package models

// TradePolitician is the denormalized politician snapshot embedded in a trade.
type TradePolitician struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Party    Party   `json:"party"`
	Chamber  Chamber `json:"chamber"`
	State    string  `json:"state"`
	PhotoURL string  `json:"photoUrl"`
}

// TradeIssuer is the denormalized issuer snapshot embedded in a trade.
// Ticker falls back to the "N/A" sentinel, Sector is empty when unknown.
type TradeIssuer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Ticker string `json:"ticker"`
	Sector string `json:"sector,omitempty"`
}

// Trade is a single normalized disclosure transaction.
//
// PublishedAt is minute precision ("2006-01-02 15:04"), TradedAt is a plain
// date; both stay lexicographically sortable. A trade date later than the
// publish date is accepted as-is, the feed occasionally contains them.
type Trade struct {
	ID         string          `json:"id"`
	Politician TradePolitician `json:"politician"`
	Issuer     TradeIssuer     `json:"issuer"`

	PublishedAt    string `json:"publishedAt"`
	TradedAt       string `json:"tradedAt"`
	FiledAfterDays int    `json:"filedAfterDays"`

	Owner     OwnerType `json:"owner"`
	Type      TradeType `json:"type"`
	SizeRange string    `json:"sizeRange"`
	Price     *float64  `json:"price,omitempty"`
}
