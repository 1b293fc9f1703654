// Package dataset holds the normalized snapshot and the read accessors over
// it. The snapshot is written exactly once by Load and never mutated after;
// accessors either see the complete snapshot or report not-ready.
package dataset

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"CapitolPulse/internal/domain/models"
	"CapitolPulse/internal/loader"
	"CapitolPulse/internal/normalize"
)

// Metrics records collection sizes after a load. May be nil.
type Metrics interface {
	RecordDatasetSize(collection string, n int)
}

// Store is the in-memory snapshot of all primary collections.
type Store struct {
	loader  *loader.Loader
	metrics Metrics
	now     func() time.Time

	// Guarded by ready: written once under Load, read-only afterwards.
	ready       chan struct{}
	politicians []models.Politician
	trades      []models.Trade
	issuers     []models.Issuer
	committees  []models.Committee
	states      []models.State
}

// New creates an empty store. Load must complete before accessors return
// data.
func New(l *loader.Loader, metrics Metrics) *Store {
	return &Store{
		loader:  l,
		metrics: metrics,
		now:     time.Now,
		ready:   make(chan struct{}),
	}
}

// Load fetches all primary resources concurrently and builds the snapshot.
// Trade normalization needs the politician and issuer collections, so it
// only runs after every fetch has completed. The snapshot is all-or-nothing:
// on any failure the store stays not-ready and Load may be called again.
func (s *Store) Load(ctx context.Context) error {
	var (
		rawPoliticians []models.RawPolitician
		rawTx          []models.RawTransaction
		rawIssuers     []models.RawIssuer
		rawCommittees  []models.RawCommittee
		rawStates      []models.RawState
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { rawPoliticians, err = s.loader.Politicians(gctx); return })
	g.Go(func() (err error) { rawTx, err = s.loader.Transactions(gctx); return })
	g.Go(func() (err error) { rawIssuers, err = s.loader.Issuers(gctx); return })
	g.Go(func() (err error) { rawCommittees, err = s.loader.Committees(gctx); return })
	g.Go(func() (err error) { rawStates, err = s.loader.States(gctx); return })
	if err := g.Wait(); err != nil {
		return err
	}

	asOf := s.now()

	// The lookup maps are built from the unfiltered collections: a trade may
	// reference a politician that the trades>0 filter would drop.
	politicianByID := make(map[string]models.Politician, len(rawPoliticians))
	var politicians []models.Politician
	for _, raw := range rawPoliticians {
		p := normalize.Politician(raw, asOf)
		politicianByID[p.ID] = p
		if p.Trades > 0 {
			politicians = append(politicians, p)
		}
	}
	sort.SliceStable(politicians, func(i, j int) bool {
		return politicians[i].LastTraded > politicians[j].LastTraded
	})

	sectorByIssuer := make(map[string]string)
	var issuers []models.Issuer
	for _, raw := range rawIssuers {
		is := normalize.Issuer(raw)
		if is.Sector != "" {
			sectorByIssuer[is.ID] = is.Sector
		}
		if is.Trades > 0 {
			issuers = append(issuers, is)
		}
	}
	sort.SliceStable(issuers, func(i, j int) bool {
		return issuers[i].Trades > issuers[j].Trades
	})

	trades := make([]models.Trade, len(rawTx))
	for i, raw := range rawTx {
		trades[i] = normalize.Trade(raw, politicianByID, sectorByIssuer)
	}
	sort.SliceStable(trades, func(i, j int) bool {
		return trades[i].PublishedAt > trades[j].PublishedAt
	})

	var committees []models.Committee
	for _, raw := range rawCommittees {
		c := normalize.Committee(raw)
		if c.Trades > 0 {
			committees = append(committees, c)
		}
	}
	sort.SliceStable(committees, func(i, j int) bool {
		return committees[i].Trades > committees[j].Trades
	})

	states := make([]models.State, len(rawStates))
	for i, raw := range rawStates {
		states[i] = normalize.State(raw)
	}
	sort.SliceStable(states, func(i, j int) bool {
		return states[i].Name < states[j].Name
	})

	s.politicians = politicians
	s.trades = trades
	s.issuers = issuers
	s.committees = committees
	s.states = states
	close(s.ready)

	if s.metrics != nil {
		s.metrics.RecordDatasetSize("politicians", len(politicians))
		s.metrics.RecordDatasetSize("trades", len(trades))
		s.metrics.RecordDatasetSize("issuers", len(issuers))
		s.metrics.RecordDatasetSize("committees", len(committees))
		s.metrics.RecordDatasetSize("states", len(states))
	}
	return nil
}

// Ready reports whether the snapshot has been built.
func (s *Store) Ready() bool {
	select {
	case <-s.ready:
		return true
	default:
		return false
	}
}

// WaitReady blocks until the snapshot is built or ctx is done.
func (s *Store) WaitReady(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
