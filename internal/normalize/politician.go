package normalize

import (
	"strings"
	"time"

	"CapitolPulse/internal/classify"
	"CapitolPulse/internal/domain/models"
)

// Politician maps one raw politician record. The display name prefers the
// nickname over the first name; trait tags are derived here because the
// entity is immutable afterwards.
func Politician(raw models.RawPolitician, asOf time.Time) models.Politician {
	name := raw.FirstName + " " + raw.LastName
	if raw.Nickname != "" {
		name = raw.Nickname + " " + raw.LastName
	}

	var gender string
	if raw.Gender == "M" || raw.Gender == "F" {
		gender = raw.Gender
	}

	derived := classify.DeriveTraits(raw.Stats, asOf)
	traits := make([]string, len(derived))
	for i, t := range derived {
		traits[i] = string(t)
	}

	return models.Politician{
		ID:          raw.PoliticianID,
		Name:        name,
		Party:       MapParty(raw.Party),
		Chamber:     MapChamber(raw.Chamber),
		State:       strings.ToUpper(raw.StateID),
		PhotoURL:    PortraitURL(raw.PoliticianID),
		Trades:      raw.Stats.CountTrades,
		Filings:     raw.Stats.CountFilings,
		Issuers:     raw.Stats.CountIssuers,
		Volume:      FormatVolume(raw.Stats.Volume),
		VolumeRaw:   raw.Stats.Volume,
		FirstTraded: raw.Stats.DateFirstTraded,
		LastTraded:  raw.Stats.DateLastTraded,
		YearsActive: YearsActive(raw.Stats.DateFirstTraded, raw.Stats.DateLastTraded),
		DOB:         raw.DOB,
		Gender:      gender,
		Traits:      traits,
	}
}
