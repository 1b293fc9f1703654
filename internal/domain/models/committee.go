package models

// CommitteeMember links a politician to a committee seat.
type CommitteeMember struct {
	PoliticianID string `json:"politicianId"`
	Role         string `json:"role"`
	Side         string `json:"side"`
}

// Committee aggregates disclosure activity for a congressional committee.
// Unlike politicians, committees may sit in the Joint chamber.
type Committee struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Chamber Chamber `json:"chamber"`
	LogoURL string  `json:"logoUrl"`

	Trades      int `json:"trades"`
	Politicians int `json:"politicians"`

	// Volume carries the "$" prefix in its display form.
	Volume    string  `json:"volume"`
	VolumeRaw float64 `json:"volumeRaw"`

	Members []CommitteeMember `json:"members"`

	URL            string `json:"url,omitempty"`
	DateLastTraded string `json:"dateLastTraded,omitempty"`
}
