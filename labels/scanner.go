package labels

import (
	"context"
	"fmt"

	"github.com/dylan/commitlabels/logging"
	"github.com/rs/zerolog"
)

// BatchSize is the number of entries processed between yields.
const BatchSize = 20

// Strategy discovers candidate entries on a host surface. Strategies are
// tried in order and the first non-empty result wins.
type Strategy struct {
	Name string
	Find func() ([]Entry, error)
}

// ScanStats summarizes one scan.
type ScanStats struct {
	Strategy   string
	Discovered int
	Labeled    int
	Skipped    int
	Failed     int
	Batches    int
}

// Scanner runs the renderer across the entries of a host surface.
type Scanner struct {
	renderer   *Renderer
	theme      func() Theme
	strategies []Strategy
	batchSize  int
	log        zerolog.Logger
}

// NewScanner returns a scanner. theme is read at the start of every batch.
func NewScanner(r *Renderer, theme func() Theme, strategies ...Strategy) *Scanner {
	return &Scanner{
		renderer:   r,
		theme:      theme,
		strategies: strategies,
		batchSize:  BatchSize,
		log:        logging.Component("scanner"),
	}
}

// SetStrategies replaces the discovery strategies.
func (s *Scanner) SetStrategies(strategies ...Strategy) {
	s.strategies = strategies
}

// Begin discovers entries and returns a scan positioned at the first batch.
// A scan with no entries is already done.
func (s *Scanner) Begin() *Scan {
	sc := &Scan{scanner: s}
	for _, st := range s.strategies {
		entries, err := st.Find()
		if err != nil {
			s.log.Warn().Err(err).Str("strategy", st.Name).Msg("discovery failed")
			continue
		}
		if len(entries) > 0 {
			sc.entries = entries
			sc.stats.Strategy = st.Name
			break
		}
	}
	sc.stats.Discovered = len(sc.entries)
	if len(sc.entries) == 0 {
		s.log.Debug().Msg("no entries discovered")
	}
	return sc
}

// Run performs a whole scan, calling yield between batches. It stops early
// only when ctx is canceled.
func (s *Scanner) Run(ctx context.Context, yield func(ScanStats)) (ScanStats, error) {
	sc := s.Begin()
	for sc.Step() {
		if yield != nil {
			yield(sc.Stats())
		}
		if err := ctx.Err(); err != nil {
			return sc.Stats(), err
		}
	}
	return sc.Stats(), nil
}

// Scan is one in-progress pass over discovered entries.
type Scan struct {
	scanner *Scanner
	entries []Entry
	next    int
	live    map[string]struct{}
	stats   ScanStats
}

// Done reports whether every entry has been processed.
func (sc *Scan) Done() bool {
	return sc.next >= len(sc.entries)
}

// Stats returns the counters so far.
func (sc *Scan) Stats() ScanStats {
	return sc.stats
}

// Step processes one batch and reports whether entries remain. When the last
// batch completes, bindings for entries no longer on the surface are pruned.
func (sc *Scan) Step() bool {
	if sc.Done() {
		return false
	}
	if sc.live == nil {
		sc.live = make(map[string]struct{}, len(sc.entries))
	}

	theme := sc.scanner.theme()
	end := min(sc.next+sc.scanner.batchSize, len(sc.entries))
	for _, e := range sc.entries[sc.next:end] {
		rendered, err := sc.process(e, theme)
		switch {
		case err != nil:
			sc.stats.Failed++
			sc.scanner.log.Warn().Err(err).Msg("entry failed")
		case rendered:
			sc.stats.Labeled++
		default:
			sc.stats.Skipped++
		}
	}
	sc.next = end
	sc.stats.Batches++

	if sc.Done() {
		pruned := sc.scanner.renderer.Prune(sc.live)
		sc.scanner.log.Debug().
			Str("strategy", sc.stats.Strategy).
			Int("discovered", sc.stats.Discovered).
			Int("labeled", sc.stats.Labeled).
			Int("failed", sc.stats.Failed).
			Int("pruned", pruned).
			Msg("scan complete")
		return false
	}
	return true
}

func (sc *Scan) process(e Entry, theme Theme) (rendered bool, err error) {
	key := "?"
	defer func() {
		if r := recover(); r != nil {
			err = &EntryError{Key: key, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	key = e.Key()
	sc.live[key] = struct{}{}

	p, ok := Parse(e.Title(), sc.scanner.renderer.Registry())
	if !ok {
		return false, nil
	}
	rendered, err = sc.scanner.renderer.Render(e, p, theme)
	if err != nil {
		return false, &EntryError{Key: key, Err: err}
	}
	return rendered, nil
}
