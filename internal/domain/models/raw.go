package models

import (
	"encoding/json"
	"fmt"
)

// Raw record schemas, one per upstream JSON document. Field names follow the
// feed exactly; descriptive attributes are optional and decode to zero values
// when absent. Validation beyond shape happens in the normalizer, which is
// total over these types.

// RawPoliticianStats is the stats block shared by politician records.
type RawPoliticianStats struct {
	CountFilings    int     `json:"countFilings"`
	CountIssuers    int     `json:"countIssuers"`
	CountTrades     int     `json:"countTrades"`
	DateFirstTraded string  `json:"dateFirstTraded"`
	DateLastTraded  string  `json:"dateLastTraded"`
	Volume          float64 `json:"volume"`
}

// RawPolitician mirrors one entry of politician.full.json.
type RawPolitician struct {
	PoliticianID string             `json:"_politicianId"`
	StateID      string             `json:"_stateId"`
	Party        string             `json:"party"`
	FirstName    string             `json:"firstName"`
	LastName     string             `json:"lastName"`
	Nickname     string             `json:"nickname"`
	FullName     string             `json:"fullName"`
	Chamber      string             `json:"chamber"`
	DOB          string             `json:"dob"`
	Gender       string             `json:"gender"`
	Stats        RawPoliticianStats `json:"stats"`
}

// RawTransaction mirrors one entry of transaction.full.json. It embeds small
// denormalized issuer/politician snapshots so a trade renders even when the
// full collections are missing the referenced record.
type RawTransaction struct {
	TxID         int64    `json:"_txId"`
	PoliticianID string   `json:"_politicianId"`
	IssuerID     int64    `json:"_issuerId"`
	PubDate      string   `json:"pubDate"`
	FilingDate   string   `json:"filingDate"`
	TxDate       string   `json:"txDate"`
	TxType       string   `json:"txType"`
	Owner        string   `json:"owner"`
	Chamber      string   `json:"chamber"`
	Value        float64  `json:"value"`
	ReportingGap int      `json:"reportingGap"`
	Price        *float64 `json:"price"`
	Issuer       struct {
		IssuerName   string `json:"issuerName"`
		IssuerTicker string `json:"issuerTicker"`
	} `json:"issuer"`
	Politician struct {
		StateID   string `json:"_stateId"`
		Chamber   string `json:"chamber"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Party     string `json:"party"`
	} `json:"politician"`
}

// RawIssuerStats is the stats block on issuer records.
type RawIssuerStats struct {
	CountPoliticians int     `json:"countPoliticians"`
	CountTrades      int     `json:"countTrades"`
	DateFirstTraded  string  `json:"dateFirstTraded"`
	DateLastTraded   string  `json:"dateLastTraded"`
	Volume           float64 `json:"volume"`
}

// RawIssuer mirrors one entry of issuer.full.json.
type RawIssuer struct {
	IssuerID     int64          `json:"_issuerId"`
	StateID      string         `json:"_stateId"`
	IssuerName   string         `json:"issuerName"`
	IssuerTicker string         `json:"issuerTicker"`
	Sector       string         `json:"sector"`
	Country      string         `json:"country"`
	C2IQ         string         `json:"c2iq"`
	Stats        RawIssuerStats `json:"stats"`
}

// RawGroupStats is the stats block shared by committee and state records.
type RawGroupStats struct {
	CountIssuers     int     `json:"countIssuers"`
	CountPoliticians int     `json:"countPoliticians"`
	CountTrades      int     `json:"countTrades"`
	DateFirstTraded  string  `json:"dateFirstTraded"`
	DateLastTraded   string  `json:"dateLastTraded"`
	Volume           float64 `json:"volume"`
}

// RawCommitteeMember is a seat entry on a committee record.
type RawCommitteeMember struct {
	PoliticianID string `json:"_politicianId"`
	MemberRole   string `json:"memberRole"`
	Side         string `json:"side"`
}

// RawCommittee mirrors one entry of committee.full.json.
type RawCommittee struct {
	CommitteeID   string               `json:"_committeeId"`
	Chamber       string               `json:"chamber"`
	CommitteeName string               `json:"committeeName"`
	CommitteeURL  string               `json:"committeeUrl"`
	Members       []RawCommitteeMember `json:"members"`
	Stats         RawGroupStats        `json:"stats"`
}

// RawState mirrors one entry of state.full.json.
type RawState struct {
	StateID           string        `json:"_stateId"`
	StateName         string        `json:"stateName"`
	StateCapital      string        `json:"stateCapital"`
	SenateComposition string        `json:"senateComposition"`
	Stats             RawGroupStats `json:"stats"`
}

// RawEODPrice is one element of the eodPrices array, encoded upstream as a
// two-element tuple: ["2024-01-02", 187.15].
type RawEODPrice struct {
	Date  string
	Price float64
}

func (p *RawEODPrice) UnmarshalJSON(b []byte) error {
	var tuple [2]json.RawMessage
	if err := json.Unmarshal(b, &tuple); err != nil {
		return fmt.Errorf("eod price tuple: %w", err)
	}
	if err := json.Unmarshal(tuple[0], &p.Date); err != nil {
		return fmt.Errorf("eod price date: %w", err)
	}
	if err := json.Unmarshal(tuple[1], &p.Price); err != nil {
		return fmt.Errorf("eod price value: %w", err)
	}
	return nil
}

func (p RawEODPrice) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{p.Date, p.Price})
}

// RawIssuerPerformance mirrors one entry of issuer-performance.full.json and
// of the benchmark document special-price.full.json.
type RawIssuerPerformance struct {
	IssuerID    int64         `json:"_issuerId"`
	EODPrices   []RawEODPrice `json:"eodPrices"`
	MCap        *float64      `json:"mcap"`
	Trailing30  *float64      `json:"trailing30"`
	Trailing90  *float64      `json:"trailing90"`
	Trailing365 *float64      `json:"trailing365"`
	YTD         *float64      `json:"ytd"`
}
