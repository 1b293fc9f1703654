package models

// Issuer is a normalized traded entity (company, fund, muni, ...).
type Issuer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Ticker string `json:"ticker"`
	Sector string `json:"sector,omitempty"`
	// Country is the upstream ISO code uppercased, empty when unknown.
	Country string `json:"country,omitempty"`

	Trades      int `json:"trades"`
	Politicians int `json:"politicians"`

	Volume    string  `json:"volume"`
	VolumeRaw float64 `json:"volumeRaw"`

	DateFirstTraded string `json:"dateFirstTraded"`
	DateLastTraded  string `json:"dateLastTraded"`
}
