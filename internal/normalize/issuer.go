package normalize

import (
	"strconv"
	"strings"

	"CapitolPulse/internal/domain/models"
)

// Issuer maps one raw issuer record. Sector and country are optional; the
// ticker falls back to the "N/A" sentinel.
func Issuer(raw models.RawIssuer) models.Issuer {
	ticker := raw.IssuerTicker
	if ticker == "" {
		ticker = unknownTicker
	}

	var sector string
	if raw.Sector != "" {
		sector = FormatSector(raw.Sector)
	}

	return models.Issuer{
		ID:              strconv.FormatInt(raw.IssuerID, 10),
		Name:            raw.IssuerName,
		Ticker:          ticker,
		Sector:          sector,
		Country:         strings.ToUpper(raw.Country),
		Trades:          raw.Stats.CountTrades,
		Politicians:     raw.Stats.CountPoliticians,
		Volume:          FormatVolume(raw.Stats.Volume),
		VolumeRaw:       raw.Stats.Volume,
		DateFirstTraded: raw.Stats.DateFirstTraded,
		DateLastTraded:  raw.Stats.DateLastTraded,
	}
}
