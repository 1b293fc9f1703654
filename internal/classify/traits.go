// Package classify derives behavioral trait tags for politicians and
// contextual labels for trades. Both rule sets are pure functions of entity
// state; the catalogs are static.
package classify

import (
	"strconv"
	"time"

	"CapitolPulse/internal/domain/models"
)

// TraitID identifies a politician trait in the catalog.
type TraitID string

// TraitCategory groups traits for display.
type TraitCategory string

const (
	CategoryTradingBehavior    TraitCategory = "trading-behavior"
	CategoryCommitteeInfluence TraitCategory = "committee-influence"
	CategoryDisclosurePatterns TraitCategory = "disclosure-patterns"
	CategoryInvestmentFocus    TraitCategory = "investment-focus"
	CategoryPoliticalPosition  TraitCategory = "political-position"
	CategoryBackground         TraitCategory = "background"
	CategoryTradingPatterns    TraitCategory = "trading-patterns"
)

// Trait is a static catalog entry.
type Trait struct {
	ID          TraitID       `json:"id"`
	Label       string        `json:"label"`
	Description string        `json:"description"`
	Category    TraitCategory `json:"category"`
	Color       string        `json:"color"`
}

// TraitCategoryInfo describes one catalog category.
type TraitCategoryInfo struct {
	ID    TraitCategory `json:"id"`
	Label string        `json:"label"`
	Color string        `json:"color"`
}

// TraitCategories lists catalog categories in display order.
var TraitCategories = []TraitCategoryInfo{
	{ID: CategoryTradingBehavior, Label: "Trading Behavior", Color: "#f59e0b"},
	{ID: CategoryCommitteeInfluence, Label: "Committee Influence", Color: "#8b5cf6"},
	{ID: CategoryDisclosurePatterns, Label: "Disclosure Patterns", Color: "#ec4899"},
	{ID: CategoryInvestmentFocus, Label: "Investment Focus", Color: "#06b6d4"},
	{ID: CategoryPoliticalPosition, Label: "Political Position", Color: "#10b981"},
	{ID: CategoryBackground, Label: "Background", Color: "#6366f1"},
	{ID: CategoryTradingPatterns, Label: "Trading Patterns", Color: "#f97316"},
}

// traitOrder fixes catalog iteration order.
var traitOrder = []TraitID{
	"high-volume", "frequent-trader", "big-positions", "options-active", "day-trader",
	"finance-oversight", "tech-oversight", "defense-access", "energy-access", "healthcare-access",
	"late-filer", "timely-filer", "amendment-heavy", "spouse-trades",
	"tech-heavy", "defense-stocks", "pharma-focus", "energy-sector", "financials",
	"committee-chair", "ranking-member", "party-leadership", "freshman", "senior-member",
	"business-executive", "legal-background", "military-veteran",
	"pre-vote-trades", "contrarian", "index-follower",
}

var traitCatalog = map[TraitID]Trait{
	"high-volume":     {ID: "high-volume", Label: "High Volume", Description: "Exceptionally high number of trades", Category: CategoryTradingBehavior, Color: "#f59e0b"},
	"frequent-trader": {ID: "frequent-trader", Label: "Frequent Trader", Description: "Trades more often than peers", Category: CategoryTradingBehavior, Color: "#f59e0b"},
	"big-positions":   {ID: "big-positions", Label: "Big Positions", Description: "Takes large individual positions", Category: CategoryTradingBehavior, Color: "#f59e0b"},
	"options-active":  {ID: "options-active", Label: "Options Active", Description: "Actively trades options/derivatives", Category: CategoryTradingBehavior, Color: "#f59e0b"},
	"day-trader":      {ID: "day-trader", Label: "Day Trader", Description: "Multiple trades on same securities", Category: CategoryTradingBehavior, Color: "#f59e0b"},

	"finance-oversight": {ID: "finance-oversight", Label: "Finance Oversight", Description: "Serves on financial services committee", Category: CategoryCommitteeInfluence, Color: "#8b5cf6"},
	"tech-oversight":    {ID: "tech-oversight", Label: "Tech Oversight", Description: "Serves on tech/commerce committee", Category: CategoryCommitteeInfluence, Color: "#8b5cf6"},
	"defense-access":    {ID: "defense-access", Label: "Defense Access", Description: "Armed services or intelligence committee", Category: CategoryCommitteeInfluence, Color: "#8b5cf6"},
	"energy-access":     {ID: "energy-access", Label: "Energy Access", Description: "Energy & natural resources committee", Category: CategoryCommitteeInfluence, Color: "#8b5cf6"},
	"healthcare-access": {ID: "healthcare-access", Label: "Healthcare Access", Description: "Health committee or subcommittee", Category: CategoryCommitteeInfluence, Color: "#8b5cf6"},

	"late-filer":      {ID: "late-filer", Label: "Late Filer", Description: "Frequently files after deadline", Category: CategoryDisclosurePatterns, Color: "#ec4899"},
	"timely-filer":    {ID: "timely-filer", Label: "Timely Filer", Description: "Consistently files on time", Category: CategoryDisclosurePatterns, Color: "#ec4899"},
	"amendment-heavy": {ID: "amendment-heavy", Label: "Amendment Heavy", Description: "Frequently amends past filings", Category: CategoryDisclosurePatterns, Color: "#ec4899"},
	"spouse-trades":   {ID: "spouse-trades", Label: "Spouse Trades", Description: "Significant spousal trading activity", Category: CategoryDisclosurePatterns, Color: "#ec4899"},

	// tech-heavy currently fires on issuer diversity, not sector weight; the
	// name is a known defect kept for downstream compatibility.
	"tech-heavy":     {ID: "tech-heavy", Label: "Tech Heavy", Description: "Portfolio concentrated in technology", Category: CategoryInvestmentFocus, Color: "#06b6d4"},
	"defense-stocks": {ID: "defense-stocks", Label: "Defense Stocks", Description: "Significant defense holdings", Category: CategoryInvestmentFocus, Color: "#06b6d4"},
	"pharma-focus":   {ID: "pharma-focus", Label: "Pharma Focus", Description: "Healthcare/pharmaceutical focus", Category: CategoryInvestmentFocus, Color: "#06b6d4"},
	"energy-sector":  {ID: "energy-sector", Label: "Energy Sector", Description: "Oil, gas, renewables focus", Category: CategoryInvestmentFocus, Color: "#06b6d4"},
	"financials":     {ID: "financials", Label: "Financials", Description: "Banks, insurance, fintech focus", Category: CategoryInvestmentFocus, Color: "#06b6d4"},

	"committee-chair":  {ID: "committee-chair", Label: "Committee Chair", Description: "Chairs a committee", Category: CategoryPoliticalPosition, Color: "#10b981"},
	"ranking-member":   {ID: "ranking-member", Label: "Ranking Member", Description: "Ranking minority member", Category: CategoryPoliticalPosition, Color: "#10b981"},
	"party-leadership": {ID: "party-leadership", Label: "Party Leadership", Description: "Holds party leadership role", Category: CategoryPoliticalPosition, Color: "#10b981"},
	"freshman":         {ID: "freshman", Label: "Freshman", Description: "First term in current chamber", Category: CategoryPoliticalPosition, Color: "#10b981"},
	"senior-member":    {ID: "senior-member", Label: "Senior Member", Description: "10+ years in Congress", Category: CategoryPoliticalPosition, Color: "#10b981"},

	"business-executive": {ID: "business-executive", Label: "Business Executive", Description: "Former corporate executive", Category: CategoryBackground, Color: "#6366f1"},
	"legal-background":   {ID: "legal-background", Label: "Legal Background", Description: "Attorney or legal career", Category: CategoryBackground, Color: "#6366f1"},
	"military-veteran":   {ID: "military-veteran", Label: "Military Veteran", Description: "Former military service", Category: CategoryBackground, Color: "#6366f1"},

	"pre-vote-trades": {ID: "pre-vote-trades", Label: "Pre-Vote Trades", Description: "Trades before relevant legislation", Category: CategoryTradingPatterns, Color: "#f97316"},
	"contrarian":      {ID: "contrarian", Label: "Contrarian", Description: "Trades against market sentiment", Category: CategoryTradingPatterns, Color: "#f97316"},
	"index-follower":  {ID: "index-follower", Label: "Index Follower", Description: "Primarily passive/index investments", Category: CategoryTradingPatterns, Color: "#f97316"},
}

// Trait tag thresholds.
const (
	highVolumeMinTrades   = 200
	frequentTraderRatio   = 3.0
	bigPositionsMinVolume = 5_000_000
	diverseMinIssuers     = 30
	seniorMinYears        = 10
	freshmanMaxYears      = 2
	timelyFilerMaxRatio   = 2.0
)

// DeriveTraits evaluates the trait rules over one politician's stats block.
// Rules fire independently; the result may be empty. Seniority is judged
// against asOf so tests can pin the clock.
func DeriveTraits(stats models.RawPoliticianStats, asOf time.Time) []TraitID {
	var traits []TraitID

	if stats.CountTrades >= highVolumeMinTrades {
		traits = append(traits, "high-volume")
	}
	if stats.CountFilings > 0 && float64(stats.CountTrades)/float64(stats.CountFilings) >= frequentTraderRatio {
		traits = append(traits, "frequent-trader")
	}
	if stats.Volume >= bigPositionsMinVolume {
		traits = append(traits, "big-positions")
	}

	// Issuer diversity proxy; see the tech-heavy catalog note.
	if stats.CountIssuers >= diverseMinIssuers {
		traits = append(traits, "tech-heavy")
	}

	if firstYear, ok := yearOf(stats.DateFirstTraded); ok {
		yearsActive := asOf.Year() - firstYear
		if yearsActive >= seniorMinYears {
			traits = append(traits, "senior-member")
		} else if yearsActive <= freshmanMaxYears {
			traits = append(traits, "freshman")
		}
	}

	if stats.CountFilings > 0 && float64(stats.CountTrades)/float64(stats.CountFilings) < timelyFilerMaxRatio {
		traits = append(traits, "timely-filer")
	}

	return traits
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

// GetTrait looks up a catalog entry by id.
func GetTrait(id TraitID) (Trait, bool) {
	t, ok := traitCatalog[id]
	return t, ok
}

// AllTraits returns the catalog in fixed order.
func AllTraits() []Trait {
	out := make([]Trait, 0, len(traitOrder))
	for _, id := range traitOrder {
		out = append(out, traitCatalog[id])
	}
	return out
}

// TraitsByCategory filters the catalog by category, preserving order.
func TraitsByCategory(category TraitCategory) []Trait {
	var out []Trait
	for _, id := range traitOrder {
		if t := traitCatalog[id]; t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// TraitCategoryInfoFor resolves category metadata.
func TraitCategoryInfoFor(category TraitCategory) (TraitCategoryInfo, bool) {
	for _, c := range TraitCategories {
		if c.ID == category {
			return c, true
		}
	}
	return TraitCategoryInfo{}, false
}

// TraitsGroupedByCategory returns the catalog grouped per category in
// category display order.
func TraitsGroupedByCategory() map[TraitCategory][]Trait {
	grouped := make(map[TraitCategory][]Trait, len(TraitCategories))
	for _, c := range TraitCategories {
		grouped[c.ID] = TraitsByCategory(c.ID)
	}
	return grouped
}
