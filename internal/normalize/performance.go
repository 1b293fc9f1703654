package normalize

import (
	"strconv"

	"CapitolPulse/internal/domain/models"
)

// Performance maps one raw issuer performance record. Price pairs keep their
// upstream order; trailing returns pass through only when present.
func Performance(raw models.RawIssuerPerformance) models.PerformanceSeries {
	prices := make([]models.PricePoint, len(raw.EODPrices))
	for i, p := range raw.EODPrices {
		prices[i] = models.PricePoint{Date: p.Date, Price: p.Price}
	}

	return models.PerformanceSeries{
		IssuerID:    strconv.FormatInt(raw.IssuerID, 10),
		EODPrices:   prices,
		MCap:        raw.MCap,
		Trailing30:  raw.Trailing30,
		Trailing90:  raw.Trailing90,
		Trailing365: raw.Trailing365,
		YTD:         raw.YTD,
	}
}
