package normalize

import (
	"testing"

	"CapitolPulse/internal/domain/models"
)

func TestMapParty(t *testing.T) {
	cases := []struct {
		in   string
		want models.Party
	}{
		{"democrat", models.PartyDemocrat},
		{"Democrat", models.PartyDemocrat},
		{"REPUBLICAN", models.PartyRepublican},
		{"libertarian", models.PartyIndependent},
		{"", models.PartyIndependent},
	}
	for _, c := range cases {
		if got := MapParty(c.in); got != c.want {
			t.Fatalf("MapParty(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMapChamber(t *testing.T) {
	if got := MapChamber("senate"); got != models.ChamberSenate {
		t.Fatalf("got %q", got)
	}
	if got := MapChamber("house"); got != models.ChamberHouse {
		t.Fatalf("got %q", got)
	}
	if got := MapChamber("unknown"); got != models.ChamberHouse {
		t.Fatalf("unrecognized chamber should be House, got %q", got)
	}
	if got := MapCommitteeChamber("joint"); got != models.ChamberJoint {
		t.Fatalf("got %q", got)
	}
	if got := MapCommitteeChamber(""); got != models.ChamberJoint {
		t.Fatalf("empty committee chamber should be Joint, got %q", got)
	}
}

func TestMapOwner(t *testing.T) {
	if got := MapOwner("Spouse"); got != models.OwnerSpouse {
		t.Fatalf("got %q", got)
	}
	if got := MapOwner("self"); got != models.OwnerSelf {
		t.Fatalf("got %q", got)
	}
	if got := MapOwner(""); got != models.OwnerUndisclosed {
		t.Fatalf("got %q", got)
	}
	if got := MapOwner("trust"); got != models.OwnerUndisclosed {
		t.Fatalf("got %q", got)
	}
}

func TestFormatVolume(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{2_500_000_000, "2.50B"},
		{1_000_000_000, "1.00B"},
		{2_500_000, "2.50M"},
		{1_000_000, "1.00M"},
		{999_999, "1000K"},
		{15_000, "15K"},
		{1_000, "1K"},
		{999, "999"},
		{0, "0"},
	}
	for _, c := range cases {
		if got := FormatVolume(c.in); got != c.want {
			t.Fatalf("FormatVolume(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseVolumeRoundTrip(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"2.50M", 2_500_000},
		{"$2.50M", 2_500_000},
		{"1.00B", 1_000_000_000},
		{"15K", 15_000},
		{"999", 999},
		{"garbage", 0},
		{"", 0},
	}
	for _, c := range cases {
		if got := ParseVolume(c.in); got != c.want {
			t.Fatalf("ParseVolume(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestSizeBucketBoundaries(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{0, "$1-1K"},
		{1_000, "$1-1K"},
		{1_001, "1K-15K"},
		{15_000, "1K-15K"},
		{15_001, "15K-50K"},
		{50_000, "15K-50K"},
		{100_000, "50K-100K"},
		{120_000, "100K-250K"},
		{250_000, "100K-250K"},
		{500_000, "250K-500K"},
		{1_000_000, "500K-1M"},
		{1_000_001, "1M+"},
	}
	for _, c := range cases {
		if got := SizeBucket(c.value); got != c.want {
			t.Fatalf("SizeBucket(%v) = %q, want %q", c.value, got, c.want)
		}
	}
}

func TestYearsActive(t *testing.T) {
	if got := YearsActive("2019-03-01", "2024-11-20"); got != "2019 – 2024" {
		t.Fatalf("got %q", got)
	}
	if got := YearsActive("2024-01-01", "2024-06-01"); got != "2024" {
		t.Fatalf("single year, got %q", got)
	}
	if got := YearsActive("", "2024-06-01"); got != "2024" {
		t.Fatalf("missing first, got %q", got)
	}
	if got := YearsActive("2019-03-01", ""); got != "2019" {
		t.Fatalf("missing last, got %q", got)
	}
	if got := YearsActive("", ""); got != "" {
		t.Fatalf("both missing, got %q", got)
	}
}

func TestFormatSector(t *testing.T) {
	if got := FormatSector("information-technology"); got != "Information Technology" {
		t.Fatalf("got %q", got)
	}
	if got := FormatSector("energy"); got != "Energy" {
		t.Fatalf("got %q", got)
	}
}

func TestPortraitURL(t *testing.T) {
	want := "https://www.capitoltrades.com/assets/politicians/p000197.jpg"
	if got := PortraitURL("P000197"); got != want {
		t.Fatalf("got %q", got)
	}
}
