package classify

import (
	"testing"
	"time"

	"CapitolPulse/internal/domain/models"
)

var asOf = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func hasTrait(traits []TraitID, id TraitID) bool {
	for _, t := range traits {
		if t == id {
			return true
		}
	}
	return false
}

func TestDeriveTraitsActiveSenior(t *testing.T) {
	stats := models.RawPoliticianStats{
		CountTrades:     250,
		CountFilings:    40,
		CountIssuers:    35,
		Volume:          6_000_000,
		DateFirstTraded: "2014-05-01",
	}

	traits := DeriveTraits(stats, asOf)

	for _, want := range []TraitID{"high-volume", "frequent-trader", "big-positions", "tech-heavy", "senior-member"} {
		if !hasTrait(traits, want) {
			t.Fatalf("missing %q in %v", want, traits)
		}
	}
	if hasTrait(traits, "freshman") || hasTrait(traits, "timely-filer") {
		t.Fatalf("unexpected traits in %v", traits)
	}
}

func TestDeriveTraitsFreshmanTimely(t *testing.T) {
	stats := models.RawPoliticianStats{
		CountTrades:     10,
		CountFilings:    8,
		CountIssuers:    4,
		Volume:          80_000,
		DateFirstTraded: "2024-02-01",
	}

	traits := DeriveTraits(stats, asOf)

	if !hasTrait(traits, "freshman") {
		t.Fatalf("missing freshman in %v", traits)
	}
	if !hasTrait(traits, "timely-filer") {
		t.Fatalf("missing timely-filer in %v", traits)
	}
	if hasTrait(traits, "high-volume") || hasTrait(traits, "senior-member") {
		t.Fatalf("unexpected traits in %v", traits)
	}
}

func TestDeriveTraitsThresholds(t *testing.T) {
	// Exactly at each boundary.
	stats := models.RawPoliticianStats{
		CountTrades:  200,
		CountFilings: 100,
		CountIssuers: 30,
		Volume:       5_000_000,
	}
	traits := DeriveTraits(stats, asOf)
	if !hasTrait(traits, "high-volume") || !hasTrait(traits, "big-positions") || !hasTrait(traits, "tech-heavy") {
		t.Fatalf("boundary values should fire: %v", traits)
	}
	// 200/100 = 2.0: below the frequent-trader ratio, at the timely ceiling.
	if hasTrait(traits, "frequent-trader") || hasTrait(traits, "timely-filer") {
		t.Fatalf("ratio boundaries: %v", traits)
	}
}

func TestDeriveTraitsZeroFilings(t *testing.T) {
	traits := DeriveTraits(models.RawPoliticianStats{CountTrades: 500}, asOf)
	if hasTrait(traits, "frequent-trader") || hasTrait(traits, "timely-filer") {
		t.Fatalf("filer rules need filings: %v", traits)
	}
	if !hasTrait(traits, "high-volume") {
		t.Fatalf("missing high-volume: %v", traits)
	}
}

func TestDeriveTraitsNoFirstTradeDate(t *testing.T) {
	traits := DeriveTraits(models.RawPoliticianStats{CountTrades: 1, CountFilings: 0}, asOf)
	if hasTrait(traits, "freshman") || hasTrait(traits, "senior-member") {
		t.Fatalf("seniority needs a first-trade date: %v", traits)
	}
}

func TestTraitCatalog(t *testing.T) {
	all := AllTraits()
	if len(all) != len(traitOrder) {
		t.Fatalf("catalog size %d, order %d", len(all), len(traitOrder))
	}
	for _, tr := range all {
		if tr.ID == "" || tr.Label == "" || tr.Category == "" {
			t.Fatalf("incomplete entry %+v", tr)
		}
		if _, ok := TraitCategoryInfoFor(tr.Category); !ok {
			t.Fatalf("unknown category %q on %q", tr.Category, tr.ID)
		}
	}

	grouped := TraitsGroupedByCategory()
	total := 0
	for _, ts := range grouped {
		total += len(ts)
	}
	if total != len(all) {
		t.Fatalf("grouping lost entries: %d != %d", total, len(all))
	}
}
