package models

// Politician is the normalized view of a member of Congress. Instances are
// immutable once built; counters and the formatted volume come straight from
// the upstream stats block.
type Politician struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Party    Party   `json:"party"`
	Chamber  Chamber `json:"chamber"`
	State    string  `json:"state"`
	PhotoURL string  `json:"photoUrl"`

	Trades  int `json:"trades"`
	Filings int `json:"filings"`
	Issuers int `json:"issuers"`

	// Volume is the display form; VolumeRaw keeps the exact upstream number
	// so aggregation never has to re-parse the suffixed string.
	Volume    string  `json:"volume"`
	VolumeRaw float64 `json:"volumeRaw"`

	FirstTraded string `json:"firstTraded,omitempty"`
	LastTraded  string `json:"lastTraded"`
	YearsActive string `json:"yearsActive,omitempty"`

	DOB    string `json:"dob,omitempty"`
	Gender string `json:"gender,omitempty"`

	Traits []string `json:"traits"`
}
