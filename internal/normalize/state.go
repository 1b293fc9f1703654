package normalize

import (
	"CapitolPulse/internal/domain/models"
)

// DeriveStateParty maps a senate composition code to the dominant party.
// Split or unknown compositions are Independent.
func DeriveStateParty(composition string) models.Party {
	switch composition {
	case "d_d":
		return models.PartyDemocrat
	case "r_r":
		return models.PartyRepublican
	default:
		return models.PartyIndependent
	}
}

// State maps one raw state record. Like committees, the volume display form
// carries the "$" prefix.
func State(raw models.RawState) models.State {
	return models.State{
		ID:                raw.StateID,
		Name:              raw.StateName,
		Capital:           raw.StateCapital,
		SenateComposition: raw.SenateComposition,
		Party:             DeriveStateParty(raw.SenateComposition),
		OutlineURL:        "/assets/states/" + raw.StateID + ".svg",
		Trades:            raw.Stats.CountTrades,
		Politicians:       raw.Stats.CountPoliticians,
		Issuers:           raw.Stats.CountIssuers,
		Volume:            "$" + FormatVolume(raw.Stats.Volume),
		VolumeRaw:         raw.Stats.Volume,
		DateFirstTraded:   raw.Stats.DateFirstTraded,
		DateLastTraded:    raw.Stats.DateLastTraded,
	}
}
