package classify

import "CapitolPulse/internal/domain/models"

// TradeLabelID identifies a trade label in the catalog.
type TradeLabelID string

// TradeLabelCategory groups trade labels for display.
type TradeLabelCategory string

const (
	LabelCategorySize       TradeLabelCategory = "size"
	LabelCategoryTiming     TradeLabelCategory = "timing"
	LabelCategoryDisclosure TradeLabelCategory = "disclosure"
	LabelCategoryContext    TradeLabelCategory = "context"
	LabelCategoryOwnership  TradeLabelCategory = "ownership"
)

// TradeLabel is a static catalog entry.
type TradeLabel struct {
	ID          TradeLabelID       `json:"id"`
	Label       string             `json:"label"`
	Description string             `json:"description"`
	Category    TradeLabelCategory `json:"category"`
	Color       string             `json:"color"`
}

// TradeLabelCategoryInfo describes one label category.
type TradeLabelCategoryInfo struct {
	ID    TradeLabelCategory `json:"id"`
	Label string             `json:"label"`
	Color string             `json:"color"`
}

// TradeLabelCategories lists label categories in display order.
var TradeLabelCategories = []TradeLabelCategoryInfo{
	{ID: LabelCategorySize, Label: "Trade Size", Color: "#10b981"},
	{ID: LabelCategoryTiming, Label: "Timing", Color: "#8b5cf6"},
	{ID: LabelCategoryDisclosure, Label: "Disclosure", Color: "#f59e0b"},
	{ID: LabelCategoryContext, Label: "Context", Color: "#06b6d4"},
	{ID: LabelCategoryOwnership, Label: "Ownership", Color: "#ec4899"},
}

var tradeLabelOrder = []TradeLabelID{
	"whale-trade", "large-position", "small-position", "micro-trade",
	"quick-flip", "long-hold", "pre-earnings", "post-earnings", "market-hours",
	"late-disclosure", "very-late", "timely", "same-day",
	"sector-relevant", "committee-related", "legislation-adjacent", "contrarian-move", "momentum-trade",
	"spouse-trade", "dependent-trade", "joint-account",
}

var tradeLabelCatalog = map[TradeLabelID]TradeLabel{
	"whale-trade":    {ID: "whale-trade", Label: "Whale Trade", Description: "Trade exceeds $1M in value", Category: LabelCategorySize, Color: "#10b981"},
	"large-position": {ID: "large-position", Label: "Large Position", Description: "Trade between $250K-$1M", Category: LabelCategorySize, Color: "#10b981"},
	"small-position": {ID: "small-position", Label: "Small Position", Description: "Trade between $15K-$50K", Category: LabelCategorySize, Color: "#10b981"},
	"micro-trade":    {ID: "micro-trade", Label: "Micro Trade", Description: "Trade under $15K", Category: LabelCategorySize, Color: "#10b981"},

	"quick-flip":    {ID: "quick-flip", Label: "Quick Flip", Description: "Sold within 30 days of purchase", Category: LabelCategoryTiming, Color: "#8b5cf6"},
	"long-hold":     {ID: "long-hold", Label: "Long Hold", Description: "Position held over 1 year", Category: LabelCategoryTiming, Color: "#8b5cf6"},
	"pre-earnings":  {ID: "pre-earnings", Label: "Pre-Earnings", Description: "Traded within 14 days before earnings", Category: LabelCategoryTiming, Color: "#8b5cf6"},
	"post-earnings": {ID: "post-earnings", Label: "Post-Earnings", Description: "Traded within 7 days after earnings", Category: LabelCategoryTiming, Color: "#8b5cf6"},
	"market-hours":  {ID: "market-hours", Label: "Market Hours", Description: "Executed during regular trading hours", Category: LabelCategoryTiming, Color: "#8b5cf6"},

	"late-disclosure": {ID: "late-disclosure", Label: "Late Disclosure", Description: "Filed 30-45 days after trade", Category: LabelCategoryDisclosure, Color: "#f59e0b"},
	"very-late":       {ID: "very-late", Label: "Very Late", Description: "Filed more than 45 days after trade", Category: LabelCategoryDisclosure, Color: "#ef4444"},
	"timely":          {ID: "timely", Label: "Timely", Description: "Filed within required 30-day window", Category: LabelCategoryDisclosure, Color: "#10b981"},
	"same-day":        {ID: "same-day", Label: "Same Day", Description: "Filed on the same day as trade", Category: LabelCategoryDisclosure, Color: "#06b6d4"},

	"sector-relevant":      {ID: "sector-relevant", Label: "Sector Relevant", Description: "Stock sector aligns with politician's committee", Category: LabelCategoryContext, Color: "#06b6d4"},
	"committee-related":    {ID: "committee-related", Label: "Committee Related", Description: "Issuer falls under committee oversight", Category: LabelCategoryContext, Color: "#06b6d4"},
	"legislation-adjacent": {ID: "legislation-adjacent", Label: "Legislation Adjacent", Description: "Trade near relevant bill vote", Category: LabelCategoryContext, Color: "#f97316"},
	"contrarian-move":      {ID: "contrarian-move", Label: "Contrarian", Description: "Trade against recent market trend", Category: LabelCategoryContext, Color: "#06b6d4"},
	"momentum-trade":       {ID: "momentum-trade", Label: "Momentum", Description: "Trade follows market momentum", Category: LabelCategoryContext, Color: "#06b6d4"},

	"spouse-trade":    {ID: "spouse-trade", Label: "Spouse Trade", Description: "Trade executed by spouse", Category: LabelCategoryOwnership, Color: "#ec4899"},
	"dependent-trade": {ID: "dependent-trade", Label: "Dependent Trade", Description: "Trade executed by dependent", Category: LabelCategoryOwnership, Color: "#ec4899"},
	"joint-account":   {ID: "joint-account", Label: "Joint Account", Description: "Trade from joint account", Category: LabelCategoryOwnership, Color: "#ec4899"},
}

// Disclosure timing boundaries in days. The four buckets are exhaustive and
// non-overlapping, so exactly one disclosure label fires per trade.
const (
	timelyMaxDays = 30
	lateMaxDays   = 45
)

// DeriveTradeLabels evaluates the label rules per category. All applicable
// labels attach; Self and Undisclosed ownership draw no ownership label.
func DeriveTradeLabels(trade models.Trade) []TradeLabelID {
	var labels []TradeLabelID

	switch trade.SizeRange {
	case "1M+":
		labels = append(labels, "whale-trade")
	case "250K-500K", "500K-1M":
		labels = append(labels, "large-position")
	case "15K-50K", "50K-100K", "100K-250K":
		labels = append(labels, "small-position")
	case "$1-1K", "1K-15K":
		labels = append(labels, "micro-trade")
	}

	switch {
	case trade.FiledAfterDays == 0:
		labels = append(labels, "same-day")
	case trade.FiledAfterDays <= timelyMaxDays:
		labels = append(labels, "timely")
	case trade.FiledAfterDays <= lateMaxDays:
		labels = append(labels, "late-disclosure")
	default:
		labels = append(labels, "very-late")
	}

	switch trade.Owner {
	case models.OwnerSpouse:
		labels = append(labels, "spouse-trade")
	case models.OwnerDependent:
		labels = append(labels, "dependent-trade")
	case models.OwnerJoint:
		labels = append(labels, "joint-account")
	}

	return labels
}

// GetTradeLabel looks up a catalog entry by id.
func GetTradeLabel(id TradeLabelID) (TradeLabel, bool) {
	l, ok := tradeLabelCatalog[id]
	return l, ok
}

// AllTradeLabels returns the catalog in fixed order.
func AllTradeLabels() []TradeLabel {
	out := make([]TradeLabel, 0, len(tradeLabelOrder))
	for _, id := range tradeLabelOrder {
		out = append(out, tradeLabelCatalog[id])
	}
	return out
}

// TradeLabelsByCategory filters the catalog by category, preserving order.
func TradeLabelsByCategory(category TradeLabelCategory) []TradeLabel {
	var out []TradeLabel
	for _, id := range tradeLabelOrder {
		if l := tradeLabelCatalog[id]; l.Category == category {
			out = append(out, l)
		}
	}
	return out
}

// TradeLabelCategoryInfoFor resolves category metadata.
func TradeLabelCategoryInfoFor(category TradeLabelCategory) (TradeLabelCategoryInfo, bool) {
	for _, c := range TradeLabelCategories {
		if c.ID == category {
			return c, true
		}
	}
	return TradeLabelCategoryInfo{}, false
}

// TradeLabelsGroupedByCategory returns the catalog grouped per category.
func TradeLabelsGroupedByCategory() map[TradeLabelCategory][]TradeLabel {
	grouped := make(map[TradeLabelCategory][]TradeLabel, len(TradeLabelCategories))
	for _, c := range TradeLabelCategories {
		grouped[c.ID] = TradeLabelsByCategory(c.ID)
	}
	return grouped
}
