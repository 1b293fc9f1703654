package models

// State aggregates disclosure activity by home state. Party is derived from
// the senate composition code (d_d, r_r, everything else Independent).
type State struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Capital           string `json:"capital"`
	SenateComposition string `json:"senateComposition"`
	Party             Party  `json:"party"`
	OutlineURL        string `json:"outlineUrl"`

	Trades      int `json:"trades"`
	Politicians int `json:"politicians"`
	Issuers     int `json:"issuers"`

	Volume    string  `json:"volume"`
	VolumeRaw float64 `json:"volumeRaw"`

	DateFirstTraded string `json:"dateFirstTraded,omitempty"`
	DateLastTraded  string `json:"dateLastTraded,omitempty"`
}
