package dataset

import (
	"sort"
	"strings"

	"CapitolPulse/internal/aggregate"
	"CapitolPulse/internal/domain/models"
)

// Politicians returns all politicians with at least one trade, most recently
// traded first. Callers must not mutate the returned slice.
func (s *Store) Politicians() []models.Politician { return s.politicians }

// PoliticianByID looks a politician up by id.
func (s *Store) PoliticianByID(id string) (models.Politician, bool) {
	for _, p := range s.politicians {
		if p.ID == id {
			return p, true
		}
	}
	return models.Politician{}, false
}

// Trades returns all trades, newest published first.
func (s *Store) Trades() []models.Trade { return s.trades }

// TradesForPolitician returns the trades of one politician, keeping the
// snapshot order.
func (s *Store) TradesForPolitician(id string) []models.Trade {
	var out []models.Trade
	for _, t := range s.trades {
		if t.Politician.ID == id {
			out = append(out, t)
		}
	}
	return out
}

// TradesForIssuer returns the trades in one issuer, keeping the snapshot
// order.
func (s *Store) TradesForIssuer(id string) []models.Trade {
	var out []models.Trade
	for _, t := range s.trades {
		if t.Issuer.ID == id {
			out = append(out, t)
		}
	}
	return out
}

// TradeFilter narrows the trade collection. Zero-valued fields do not
// filter. From and To are ISO dates compared against the trade date, both
// bounds inclusive.
type TradeFilter struct {
	PoliticianID string
	IssuerID     string
	Sector       string
	From         string
	To           string
}

// FilterTrades returns the trades matching every set field of f, keeping
// the snapshot order.
func (s *Store) FilterTrades(f TradeFilter) []models.Trade {
	var out []models.Trade
	for _, t := range s.trades {
		if f.PoliticianID != "" && t.Politician.ID != f.PoliticianID {
			continue
		}
		if f.IssuerID != "" && t.Issuer.ID != f.IssuerID {
			continue
		}
		if f.Sector != "" && t.Issuer.Sector != f.Sector {
			continue
		}
		if f.From != "" && t.TradedAt < f.From {
			continue
		}
		if f.To != "" && t.TradedAt > f.To {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Issuers returns all issuers with at least one trade, most traded first.
func (s *Store) Issuers() []models.Issuer { return s.issuers }

// IssuerByID looks an issuer up by id.
func (s *Store) IssuerByID(id string) (models.Issuer, bool) {
	for _, is := range s.issuers {
		if is.ID == id {
			return is, true
		}
	}
	return models.Issuer{}, false
}

// Sectors returns the distinct formatted sector names across all issuers,
// alphabetically.
func (s *Store) Sectors() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, is := range s.issuers {
		if is.Sector == "" {
			continue
		}
		if _, ok := seen[is.Sector]; ok {
			continue
		}
		seen[is.Sector] = struct{}{}
		out = append(out, is.Sector)
	}
	sort.Strings(out)
	return out
}

// Committees returns all committees with at least one trade, most traded
// first.
func (s *Store) Committees() []models.Committee { return s.committees }

// CommitteesByChamber returns the committees of one chamber, keeping the
// snapshot order.
func (s *Store) CommitteesByChamber(chamber models.Chamber) []models.Committee {
	var out []models.Committee
	for _, c := range s.committees {
		if c.Chamber == chamber {
			out = append(out, c)
		}
	}
	return out
}

// CommitteeByID looks a committee up by id.
func (s *Store) CommitteeByID(id string) (models.Committee, bool) {
	for _, c := range s.committees {
		if c.ID == id {
			return c, true
		}
	}
	return models.Committee{}, false
}

// States returns all states alphabetically by name.
func (s *Store) States() []models.State { return s.states }

// StateByID looks a state up by its two-letter id, case-insensitively.
func (s *Store) StateByID(id string) (models.State, bool) {
	id = strings.ToLower(id)
	for _, st := range s.states {
		if st.ID == id {
			return st, true
		}
	}
	return models.State{}, false
}

// StatesSortedByTrades returns a copy of the states ordered by trade count
// descending.
func (s *Store) StatesSortedByTrades() []models.State {
	return sortedCopy(s.states, func(a, b models.State) bool { return a.Trades > b.Trades })
}

// StatesSortedByPoliticians returns a copy of the states ordered by
// politician count descending.
func (s *Store) StatesSortedByPoliticians() []models.State {
	return sortedCopy(s.states, func(a, b models.State) bool { return a.Politicians > b.Politicians })
}

// Stats computes the dataset-wide totals from the snapshot.
func (s *Store) Stats() models.StatsSnapshot {
	return aggregate.Compute(s.politicians, s.trades, s.issuers)
}
