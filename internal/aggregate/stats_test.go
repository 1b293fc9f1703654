package aggregate

import (
	"testing"

	"CapitolPulse/internal/domain/models"
)

func TestCompute(t *testing.T) {
	politicians := []models.Politician{
		{ID: "a", Filings: 10, VolumeRaw: 1_500_000},
		{ID: "b", Filings: 4, VolumeRaw: 500_000},
	}
	trades := make([]models.Trade, 7)
	issuers := []models.Issuer{{ID: "1"}, {ID: "2"}, {ID: "3"}}

	got := Compute(politicians, trades, issuers)

	if got.Trades != 7 || got.Filings != 14 || got.Politicians != 2 || got.Issuers != 3 {
		t.Fatalf("counts: %+v", got)
	}
	if got.Volume != "$2.00M" {
		t.Fatalf("volume %q", got.Volume)
	}
}

func TestComputeEmpty(t *testing.T) {
	got := Compute(nil, nil, nil)
	if got.Trades != 0 || got.Filings != 0 || got.Politicians != 0 || got.Issuers != 0 {
		t.Fatalf("%+v", got)
	}
	if got.Volume != "$0" {
		t.Fatalf("volume %q", got.Volume)
	}
}
