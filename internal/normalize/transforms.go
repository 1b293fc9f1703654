// Package normalize maps raw feed records into the canonical domain model.
// Every transform in this package is total: malformed or missing optional
// fields degrade to documented defaults, never to an error.
package normalize

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"CapitolPulse/internal/domain/models"
)

const portraitCDN = "https://www.capitoltrades.com/assets/politicians"

// MapParty maps a raw party string case-insensitively. Unrecognized values,
// including the empty string, are Independent.
func MapParty(party string) models.Party {
	switch strings.ToLower(party) {
	case "democrat":
		return models.PartyDemocrat
	case "republican":
		return models.PartyRepublican
	default:
		return models.PartyIndependent
	}
}

// MapChamber maps a raw chamber string. Everything that is not senate is
// House; the feed only carries the two values for politicians.
func MapChamber(chamber string) models.Chamber {
	if strings.ToLower(chamber) == "senate" {
		return models.ChamberSenate
	}
	return models.ChamberHouse
}

// MapCommitteeChamber is the three-valued variant used for committees.
func MapCommitteeChamber(chamber string) models.Chamber {
	switch strings.ToLower(chamber) {
	case "senate":
		return models.ChamberSenate
	case "house":
		return models.ChamberHouse
	default:
		return models.ChamberJoint
	}
}

// MapOwner maps a raw owner string case-insensitively, defaulting to
// Undisclosed.
func MapOwner(owner string) models.OwnerType {
	switch strings.ToLower(owner) {
	case "self":
		return models.OwnerSelf
	case "joint":
		return models.OwnerJoint
	case "spouse":
		return models.OwnerSpouse
	case "dependent":
		return models.OwnerDependent
	default:
		return models.OwnerUndisclosed
	}
}

// FormatVolume renders a raw magnitude with a B/M/K suffix: two decimals at
// billions and millions, none at thousands, the plain integer below that.
func FormatVolume(volume float64) string {
	switch {
	case volume >= 1_000_000_000:
		return fmt.Sprintf("%.2fB", volume/1_000_000_000)
	case volume >= 1_000_000:
		return fmt.Sprintf("%.2fM", volume/1_000_000)
	case volume >= 1_000:
		return fmt.Sprintf("%.0fK", volume/1_000)
	default:
		return strconv.FormatFloat(volume, 'f', -1, 64)
	}
}

// ParseVolume is the exact inverse of FormatVolume at its printed precision.
// A leading "$" is tolerated. Unparseable input yields 0.
func ParseVolume(s string) float64 {
	s = strings.TrimPrefix(s, "$")
	mult := 1.0
	switch {
	case strings.HasSuffix(s, "B"):
		mult, s = 1_000_000_000, strings.TrimSuffix(s, "B")
	case strings.HasSuffix(s, "M"):
		mult, s = 1_000_000, strings.TrimSuffix(s, "M")
	case strings.HasSuffix(s, "K"):
		mult, s = 1_000, strings.TrimSuffix(s, "K")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v * mult
}

// SizeRanges are the fixed trade size buckets, smallest first.
var SizeRanges = []string{
	"$1-1K", "1K-15K", "15K-50K", "50K-100K",
	"100K-250K", "250K-500K", "500K-1M", "1M+",
}

// SizeBucket maps a raw trade value to one of SizeRanges. Upper thresholds
// are inclusive: 15000 maps to 15K-50K.
func SizeBucket(value float64) string {
	switch {
	case value <= 1_000:
		return "$1-1K"
	case value <= 15_000:
		return "1K-15K"
	case value <= 50_000:
		return "15K-50K"
	case value <= 100_000:
		return "50K-100K"
	case value <= 250_000:
		return "100K-250K"
	case value <= 500_000:
		return "250K-500K"
	case value <= 1_000_000:
		return "500K-1M"
	default:
		return "1M+"
	}
}

// YearsActive renders the calendar-year span of the first/last traded dates.
// A single year when they match, an empty string when both are missing.
func YearsActive(firstTraded, lastTraded string) string {
	first, okFirst := yearOf(firstTraded)
	last, okLast := yearOf(lastTraded)
	switch {
	case okFirst && okLast:
		if first == last {
			return strconv.Itoa(first)
		}
		return fmt.Sprintf("%d – %d", first, last)
	case okFirst:
		return strconv.Itoa(first)
	case okLast:
		return strconv.Itoa(last)
	default:
		return ""
	}
}

func yearOf(date string) (int, bool) {
	if len(date) < 4 {
		return 0, false
	}
	y, err := strconv.Atoi(date[:4])
	if err != nil || y == 0 {
		return 0, false
	}
	return y, true
}

// FormatSector turns a kebab-case sector token into its display form:
// each hyphen-separated word title-cased and joined with spaces.
func FormatSector(sector string) string {
	caser := cases.Title(language.English)
	words := strings.Split(sector, "-")
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}

// PortraitURL resolves the CDN portrait reference for a politician id.
func PortraitURL(politicianID string) string {
	return portraitCDN + "/" + strings.ToLower(politicianID) + ".jpg"
}
