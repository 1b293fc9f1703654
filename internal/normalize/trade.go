package normalize

import (
	"strconv"
	"strings"

	"CapitolPulse/internal/domain/models"
	"CapitolPulse/pkg/util"
)

const unknownTicker = "N/A"

// Trade maps one raw transaction. The politicians and sectors maps are built
// from the fully loaded politician and issuer collections; trade
// normalization must not run before both have completed. The embedded
// politician snapshot falls back to the record's own first/last name when the
// politician collection does not carry the id.
func Trade(raw models.RawTransaction, politicians map[string]models.Politician, sectors map[string]string) models.Trade {
	name := raw.Politician.FirstName + " " + raw.Politician.LastName
	if p, ok := politicians[raw.PoliticianID]; ok {
		name = p.Name
	}

	issuerID := strconv.FormatInt(raw.IssuerID, 10)
	ticker := raw.Issuer.IssuerTicker
	if ticker == "" {
		ticker = unknownTicker
	}

	return models.Trade{
		ID: strconv.FormatInt(raw.TxID, 10),
		Politician: models.TradePolitician{
			ID:       raw.PoliticianID,
			Name:     name,
			Party:    MapParty(raw.Politician.Party),
			Chamber:  MapChamber(raw.Politician.Chamber),
			State:    strings.ToUpper(raw.Politician.StateID),
			PhotoURL: PortraitURL(raw.PoliticianID),
		},
		Issuer: models.TradeIssuer{
			ID:     issuerID,
			Name:   raw.Issuer.IssuerName,
			Ticker: ticker,
			Sector: sectors[issuerID],
		},
		PublishedAt:    publishedDisplay(raw.PubDate),
		TradedAt:       raw.TxDate,
		FiledAfterDays: raw.ReportingGap,
		Owner:          MapOwner(raw.Owner),
		Type:           models.TradeType(raw.TxType),
		SizeRange:      SizeBucket(raw.Value),
		Price:          raw.Price,
	}
}

// publishedDisplay reduces an ISO timestamp to minute precision with a space
// separator. The result still sorts lexicographically by time. Timestamps
// the date parser rejects are truncated as-is rather than dropped.
func publishedDisplay(pubDate string) string {
	if t, ok := util.ParseDate(pubDate); ok {
		return t.Format("2006-01-02 15:04")
	}
	s := strings.Replace(pubDate, "T", " ", 1)
	if len(s) > 16 {
		s = s[:16]
	}
	return s
}
