// Package aggregate computes summary statistics over normalized collections.
package aggregate

import (
	"CapitolPulse/internal/domain/models"
	"CapitolPulse/internal/normalize"
)

// Compute builds a stats snapshot from the current collections. Trade and
// filing counts are straight sums. The volume total is summed from the raw
// numerics the normalizer retained, then formatted once here; the older
// re-parse of the suffixed display strings lives on only as
// normalize.ParseVolume for callers that hold nothing else.
func Compute(politicians []models.Politician, trades []models.Trade, issuers []models.Issuer) models.StatsSnapshot {
	var totalVolume float64
	var totalFilings int
	for _, p := range politicians {
		totalVolume += p.VolumeRaw
		totalFilings += p.Filings
	}

	return models.StatsSnapshot{
		Trades:      len(trades),
		Filings:     totalFilings,
		Volume:      "$" + normalize.FormatVolume(totalVolume),
		Politicians: len(politicians),
		Issuers:     len(issuers),
	}
}
