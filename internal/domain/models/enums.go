package models

// Party is the canonical party affiliation. Anything the upstream feed
// reports outside democrat/republican collapses to Independent.
type Party string

const (
	PartyDemocrat    Party = "Democrat"
	PartyRepublican  Party = "Republican"
	PartyIndependent Party = "Independent"
)

// Chamber is the congressional chamber. Joint only occurs on committees.
type Chamber string

const (
	ChamberHouse  Chamber = "House"
	ChamberSenate Chamber = "Senate"
	ChamberJoint  Chamber = "Joint"
)

// OwnerType describes who executed a disclosed trade.
type OwnerType string

const (
	OwnerSelf        OwnerType = "Self"
	OwnerJoint       OwnerType = "Joint"
	OwnerSpouse      OwnerType = "Spouse"
	OwnerDependent   OwnerType = "Dependent"
	OwnerUndisclosed OwnerType = "Undisclosed"
)

// TradeType is the trade direction as reported in the filing.
type TradeType string

const (
	TradeBuy  TradeType = "buy"
	TradeSell TradeType = "sell"
)
