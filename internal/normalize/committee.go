package normalize

import (
	"CapitolPulse/internal/domain/models"
)

// committeeLogos maps committee ids to logo asset names.
var committeeLogos = map[string]string{
	// House
	"hlig": "intelligence",
	"hsag": "agriculture",
	"hsap": "appropriations",
	"hsas": "armed-services",
	"hsba": "financial-services",
	"hsbu": "budget",
	"hscn": "climate-crisis",
	"hsed": "education-labor",
	"hsfa": "foreign-affairs",
	"hsfd": "weaponized-gov",
	"hsgo": "oversight-reform",
	"hsha": "house-administration",
	"hshm": "homeland-security",
	"hsif": "energy-commerce",
	"hsii": "natural-resources",
	"hsju": "judiciary",
	"hsmh": "modernization-congress",
	"hspw": "transportation",
	"hsru": "rules",
	"hssm": "small-business",
	"hsso": "ethics",
	"hssy": "science-space",
	"hsvc": "corona",
	"hsvr": "veterans-affairs",
	"hswm": "ways-means",
	"hszs": "strategy-us-ccp",
	// Senate
	"scnc": "narcotics",
	"slet": "ethics",
	"slia": "indian-affairs",
	"slin": "intelligence",
	"spag": "aging",
	"ssaf": "agriculture-nutrition",
	"ssap": "appropriations",
	"ssas": "armed-services",
	"ssbk": "banking",
	"ssbu": "budget",
	"sscm": "science-space",
	"sseg": "energy-resources",
	"ssev": "environment",
	"ssfi": "ways-means",
	"ssfr": "foreign-affairs",
	"ssga": "homeland-security",
	"sshr": "health",
	"ssju": "judiciary",
	"ssra": "rules",
	"sssb": "small-business",
	"ssva": "veterans-affairs",
	// Joint committees reuse generic icons
	"jcse": "ethics",
	"jsec": "budget",
	"jslc": "house-administration",
	"jspr": "house-administration",
	"jstx": "ways-means",
}

// Committee maps one raw committee record. Committee volume keeps the "$"
// prefix in its display form; unknown ids fall back to the ethics logo.
func Committee(raw models.RawCommittee) models.Committee {
	logo, ok := committeeLogos[raw.CommitteeID]
	if !ok {
		logo = "ethics"
	}

	members := make([]models.CommitteeMember, len(raw.Members))
	for i, m := range raw.Members {
		members[i] = models.CommitteeMember{
			PoliticianID: m.PoliticianID,
			Role:         m.MemberRole,
			Side:         m.Side,
		}
	}

	return models.Committee{
		ID:             raw.CommitteeID,
		Name:           raw.CommitteeName,
		Chamber:        MapCommitteeChamber(raw.Chamber),
		LogoURL:        "/assets/committees/" + logo + ".svg",
		Trades:         raw.Stats.CountTrades,
		Politicians:    raw.Stats.CountPoliticians,
		Volume:         "$" + FormatVolume(raw.Stats.Volume),
		VolumeRaw:      raw.Stats.Volume,
		Members:        members,
		URL:            raw.CommitteeURL,
		DateLastTraded: raw.Stats.DateLastTraded,
	}
}
