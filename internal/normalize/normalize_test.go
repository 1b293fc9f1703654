package normalize

import (
	"testing"
	"time"

	"CapitolPulse/internal/classify"
	"CapitolPulse/internal/domain/models"
)

var asOf = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func TestPoliticianNormalization(t *testing.T) {
	raw := models.RawPolitician{
		PoliticianID: "P000197",
		StateID:      "ca",
		Party:        "democrat",
		FirstName:    "Nancy",
		LastName:     "Pelosi",
		Chamber:      "house",
		DOB:          "1940-03-26",
		Gender:       "F",
		Stats: models.RawPoliticianStats{
			CountFilings:    40,
			CountIssuers:    35,
			CountTrades:     250,
			DateFirstTraded: "2014-05-01",
			DateLastTraded:  "2025-04-18",
			Volume:          6_000_000,
		},
	}

	p := Politician(raw, asOf)

	if p.ID != "P000197" || p.Name != "Nancy Pelosi" {
		t.Fatalf("identity: %+v", p)
	}
	if p.Party != models.PartyDemocrat || p.Chamber != models.ChamberHouse {
		t.Fatalf("party/chamber: %+v", p)
	}
	if p.State != "CA" {
		t.Fatalf("state %q", p.State)
	}
	if p.Volume != "6.00M" || p.VolumeRaw != 6_000_000 {
		t.Fatalf("volume %q raw %v", p.Volume, p.VolumeRaw)
	}
	if p.YearsActive != "2014 – 2025" {
		t.Fatalf("years active %q", p.YearsActive)
	}
	want := []string{"high-volume", "frequent-trader", "big-positions", "tech-heavy", "senior-member"}
	if len(p.Traits) != len(want) {
		t.Fatalf("traits %v, want %v", p.Traits, want)
	}
	for i, tr := range want {
		if p.Traits[i] != tr {
			t.Fatalf("traits %v, want %v", p.Traits, want)
		}
	}
}

func TestPoliticianNicknameAndDefaults(t *testing.T) {
	raw := models.RawPolitician{
		PoliticianID: "X000001",
		FirstName:    "Robert",
		Nickname:     "Bob",
		LastName:     "Smith",
		Gender:       "nonbinary",
	}

	p := Politician(raw, asOf)

	if p.Name != "Bob Smith" {
		t.Fatalf("nickname not preferred: %q", p.Name)
	}
	if p.Party != models.PartyIndependent || p.Chamber != models.ChamberHouse {
		t.Fatalf("defaults: %+v", p)
	}
	if p.Gender != "" {
		t.Fatalf("gender should be dropped, got %q", p.Gender)
	}
	if p.YearsActive != "" {
		t.Fatalf("years active %q", p.YearsActive)
	}
}

func TestTradeNormalization(t *testing.T) {
	price := 187.15
	raw := models.RawTransaction{
		TxID:         20003561,
		PoliticianID: "P000197",
		IssuerID:     428,
		PubDate:      "2025-05-02T14:30:11Z",
		TxDate:       "2025-03-23",
		TxType:       "buy",
		Owner:        "spouse",
		Value:        120_000,
		ReportingGap: 40,
		Price:        &price,
	}
	raw.Issuer.IssuerName = "Apple Inc"
	raw.Issuer.IssuerTicker = "AAPL:US"
	raw.Politician.FirstName = "Nancy"
	raw.Politician.LastName = "Pelosi"
	raw.Politician.Party = "democrat"
	raw.Politician.Chamber = "house"
	raw.Politician.StateID = "ca"

	politicians := map[string]models.Politician{
		"P000197": {ID: "P000197", Name: "Nancy Pelosi"},
	}
	sectors := map[string]string{"428": "Information Technology"}

	tr := Trade(raw, politicians, sectors)

	if tr.ID != "20003561" {
		t.Fatalf("id %q", tr.ID)
	}
	if tr.PublishedAt != "2025-05-02 14:30" {
		t.Fatalf("publishedAt %q", tr.PublishedAt)
	}
	if tr.TradedAt != "2025-03-23" {
		t.Fatalf("tradedAt %q", tr.TradedAt)
	}
	if tr.Issuer.Sector != "Information Technology" {
		t.Fatalf("sector %q", tr.Issuer.Sector)
	}
	if tr.SizeRange != "100K-250K" {
		t.Fatalf("size range %q", tr.SizeRange)
	}
	if tr.Owner != models.OwnerSpouse || tr.Type != models.TradeBuy {
		t.Fatalf("owner/type: %+v", tr)
	}
	if tr.Price == nil || *tr.Price != 187.15 {
		t.Fatalf("price %v", tr.Price)
	}

	labels := classify.DeriveTradeLabels(tr)
	wantLabels := []classify.TradeLabelID{"small-position", "late-disclosure", "spouse-trade"}
	if len(labels) != len(wantLabels) {
		t.Fatalf("labels %v, want %v", labels, wantLabels)
	}
	for i, l := range wantLabels {
		if labels[i] != l {
			t.Fatalf("labels %v, want %v", labels, wantLabels)
		}
	}
}

func TestTradeUnknownReferences(t *testing.T) {
	raw := models.RawTransaction{
		TxID:         1,
		PoliticianID: "Z999999",
		IssuerID:     7,
		PubDate:      "2025-01-10T09:00:00Z",
		TxDate:       "2025-01-08",
		TxType:       "sell",
		Owner:        "",
		Value:        5_000,
	}
	raw.Politician.FirstName = "Jane"
	raw.Politician.LastName = "Doe"

	tr := Trade(raw, map[string]models.Politician{}, map[string]string{})

	if tr.Politician.Name != "Jane Doe" {
		t.Fatalf("embedded snapshot fallback: %q", tr.Politician.Name)
	}
	if tr.Issuer.Ticker != "N/A" {
		t.Fatalf("ticker sentinel: %q", tr.Issuer.Ticker)
	}
	if tr.Issuer.Sector != "" {
		t.Fatalf("sector should be empty, got %q", tr.Issuer.Sector)
	}
	if tr.Owner != models.OwnerUndisclosed {
		t.Fatalf("owner %q", tr.Owner)
	}
}

func TestIssuerNormalization(t *testing.T) {
	raw := models.RawIssuer{
		IssuerID:     428,
		IssuerName:   "Apple Inc",
		IssuerTicker: "AAPL:US",
		Sector:       "information-technology",
		Country:      "us",
		Stats: models.RawIssuerStats{
			CountTrades:      120,
			CountPoliticians: 14,
			Volume:           2_500_000,
		},
	}

	is := Issuer(raw)

	if is.ID != "428" || is.Sector != "Information Technology" || is.Country != "US" {
		t.Fatalf("%+v", is)
	}
	if is.Volume != "2.50M" || is.VolumeRaw != 2_500_000 {
		t.Fatalf("volume %q raw %v", is.Volume, is.VolumeRaw)
	}
}

func TestStateNormalization(t *testing.T) {
	raw := models.RawState{
		StateID:           "ca",
		StateName:         "California",
		StateCapital:      "Sacramento",
		SenateComposition: "d_d",
		Stats:             models.RawGroupStats{CountTrades: 900, Volume: 50_000_000},
	}

	st := State(raw)

	if st.Party != models.PartyDemocrat {
		t.Fatalf("party %q", st.Party)
	}
	if st.Volume != "$50.00M" {
		t.Fatalf("volume %q", st.Volume)
	}
	if st.OutlineURL != "/assets/states/ca.svg" {
		t.Fatalf("outline %q", st.OutlineURL)
	}
}
