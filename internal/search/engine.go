package search

import (
	"sort"
	"strings"
)

// Record is the engine's view of one candidate: the text fields relevance is
// computed from. Callers keep their own richer record type and map results
// back through Result.Index.
type Record struct {
	Title    string
	Channel  string
	Keywords []string
	Category string
}

// Result is one ranked candidate. Index is the position of the record in the
// slice the engine was built from (load order). Score is undefined for the
// unscored modes (empty query, keyword filter, category filter).
type Result struct {
	Index int
	Score float64
}

// ----------------------------------------------------------------------------
// Options

type Option func(*config)

type config struct {
	threshold  float64
	maxResults int
	bonus      BonusConfig
}

func defaultConfig() config {
	return config{
		threshold:  DefaultThreshold,
		maxResults: 100,
		bonus:      DefaultBonusConfig(),
	}
}

// WithThreshold overrides the acceptance threshold. Values outside (0,1] are
// ignored.
func WithThreshold(t float64) Option {
	return func(c *config) {
		if t > 0 && t <= 1 {
			c.threshold = t
		}
	}
}

// WithRecallProfile lowers the acceptance threshold for broader recall.
func WithRecallProfile() Option {
	return func(c *config) { c.threshold = RecallThreshold }
}

// WithMaxResults caps the number of results returned per evaluation. The cap
// bounds pipeline cost on large corpora; it is not a relevance decision.
// n <= 0 disables the cap.
func WithMaxResults(n int) Option {
	return func(c *config) { c.maxResults = n }
}

// WithBonus replaces the additive-bonus vocabulary.
func WithBonus(b BonusConfig) Option {
	return func(c *config) { c.bonus = b }
}

// ----------------------------------------------------------------------------
// Implementation

// doc holds the precomputed normalized fields for one record.
type doc struct {
	title    string
	channel  string
	keywords []string
	category string
}

// Engine scores and filters a fixed record collection. It is immutable after
// construction and safe for concurrent use; each evaluation is synchronous
// and stateless. A reload builds a new Engine over the new snapshot — callers
// that care about superseded evaluations under rapid input are expected to
// debounce or cancel at their layer, not here.
type Engine struct {
	cfg  config
	docs []doc
}

// New builds an Engine over records, normalizing every field once up front so
// per-query work is pure comparison.
func New(records []Record, opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	docs := make([]doc, len(records))
	for i, r := range records {
		kws := make([]string, 0, len(r.Keywords))
		for _, k := range r.Keywords {
			if n := Normalize(k); n != "" {
				kws = append(kws, n)
			}
		}
		docs[i] = doc{
			title:    Normalize(r.Title),
			channel:  Normalize(r.Channel),
			keywords: kws,
			category: r.Category,
		}
	}
	return &Engine{cfg: cfg, docs: docs}
}

// Len returns the number of records the engine was built over.
func (e *Engine) Len() int { return len(e.docs) }

// Search evaluates a free-text fuzzy query.
//
// An empty or whitespace-only query returns the full collection (or a capped
// prefix when a cap is configured) in load order with undefined scores; it is
// never an error. A query containing a blocklisted term returns nil before
// the scorer is ever invoked. Otherwise every candidate is scored, rejects
// are dropped, and survivors are sorted by descending score with ties kept in
// load order (stable sort, reproducible output).
func (e *Engine) Search(query string) []Result {
	if strings.TrimSpace(query) == "" {
		return e.all()
	}
	if IsBlocked(query) {
		return nil
	}

	q := Normalize(query)
	if q == "" {
		return e.all()
	}

	out := make([]Result, 0, min(len(e.docs), 16))
	for i := range e.docs {
		s, ok := e.score(q, &e.docs[i])
		if !ok || s <= e.cfg.threshold {
			continue
		}
		out = append(out, Result{Index: i, Score: s})
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Score > out[b].Score
	})
	return e.cap(out)
}

// FilterKeyword returns records whose keyword set contains value
// (case-insensitive containment), in load order, bypassing the scorer.
func (e *Engine) FilterKeyword(value string) []Result {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return e.all()
	}
	out := make([]Result, 0, 16)
	for i := range e.docs {
		for _, k := range e.docs[i].keywords {
			if strings.Contains(k, v) {
				out = append(out, Result{Index: i})
				break
			}
		}
	}
	return e.cap(out)
}

// FilterCategory returns records whose classification tag equals value
// exactly (case-insensitive), in load order, bypassing the scorer.
func (e *Engine) FilterCategory(value string) []Result {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return e.all()
	}
	out := make([]Result, 0, 16)
	for i := range e.docs {
		if strings.ToLower(e.docs[i].category) == v {
			out = append(out, Result{Index: i})
		}
	}
	return e.cap(out)
}

func (e *Engine) all() []Result {
	n := len(e.docs)
	if e.cfg.maxResults > 0 && n > e.cfg.maxResults {
		n = e.cfg.maxResults
	}
	out := make([]Result, n)
	for i := 0; i < n; i++ {
		out[i] = Result{Index: i}
	}
	return out
}

func (e *Engine) cap(rs []Result) []Result {
	if e.cfg.maxResults > 0 && len(rs) > e.cfg.maxResults {
		return rs[:e.cfg.maxResults]
	}
	return rs
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
