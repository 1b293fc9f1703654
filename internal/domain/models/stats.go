package models

// StatsSnapshot is the always-recomputed aggregate over the current
// normalized collections. Never persisted.
type StatsSnapshot struct {
	Trades      int    `json:"trades"`
	Filings     int    `json:"filings"`
	Volume      string `json:"volume"`
	Politicians int    `json:"politicians"`
	Issuers     int    `json:"issuers"`
}
