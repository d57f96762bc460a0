// Package services – SearchService
//
// This file implements SearchService, the application-level component that
// owns the dataset lifecycle and query evaluation. It loads the CSV source,
// applies best-effort emotion enrichment, swaps the snapshot atomically, and
// evaluates queries against the engine of the current snapshot.
//
// Observability: public methods are OpenTelemetry-instrumented; spans carry
// query mode, result counts, and dataset generation.
package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/sunidhi090894/kidsvids-backend/internal/domain"
	"github.com/sunidhi090894/kidsvids-backend/internal/enrich"
	"github.com/sunidhi090894/kidsvids-backend/internal/ingest"
	"github.com/sunidhi090894/kidsvids-backend/internal/search"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Mode selects how a query evaluation filters the dataset. Mode selection is
// an external input; the pipeline never infers it.
type Mode string

const (
	ModeFuzzy    Mode = "fuzzy"
	ModeKeyword  Mode = "keyword"
	ModeCategory Mode = "category"
)

// ParseMode maps a request string onto a Mode. Empty input defaults to fuzzy.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeFuzzy:
		return ModeFuzzy, nil
	case ModeKeyword:
		return ModeKeyword, nil
	case ModeCategory:
		return ModeCategory, nil
	default:
		return "", ErrUnknownMode
	}
}

// ScoredVideo pairs a record with its relevance score. Score is nil for
// unscored evaluations (empty query, keyword filter, category filter).
type ScoredVideo struct {
	domain.Video
	Score *float64 `json:"score,omitempty"`
}

// SearchService coordinates dataset loading and query evaluation.
//
// Every evaluation is synchronous and stateless; concurrent callers each read
// one immutable snapshot for the duration of their scan, so a reload can
// never be observed mid-query. Callers that issue queries per keystroke are
// expected to debounce or cancel superseded evaluations themselves.
type SearchService struct {
	// Store holds the current dataset snapshot.
	Store *ingest.Store
	// DataPath is the CSV source consumed by Reload.
	DataPath string

	// Engine tuning, applied to each snapshot's engine at build time.
	Threshold     float64
	RecallProfile bool
	MaxResults    int
	Bonus         *search.BonusConfig

	// Emotion is the optional enrichment collaborator; nil disables it.
	Emotion enrich.EmotionClassifier
}

// ReloadReport summarizes one successful dataset load.
type ReloadReport struct {
	Generation uint64 `json:"generation"`
	Records    int    `json:"records"`
	Skipped    int    `json:"skipped_rows"`
	Enriched   bool   `json:"enriched"`
}

// Reload loads the CSV source, enriches records, and atomically replaces the
// current snapshot. On any load error the previous snapshot stays intact and
// a distinguishable reason is returned (ingest.ErrSourceMissing,
// ErrSourceMalformed, ErrSourceEmpty). Enrichment failure is a soft warning,
// never a load failure. The context bounds the whole load.
func (s *SearchService) Reload(ctx context.Context) (*ReloadReport, error) {
	tr := otel.Tracer("services/SearchService")
	ctx, span := tr.Start(ctx, "Reload")
	defer span.End()

	ds, err := ingest.LoadFile(ctx, s.DataPath)
	if err != nil {
		reloadsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}

	enriched := s.enrich(ctx, ds.Videos)

	snap := s.Store.Replace(ds.Videos, s.buildEngine(ds.Videos), ds.Skipped)
	datasetRecords.Set(float64(len(snap.Videos)))
	reloadsTotal.WithLabelValues("success").Inc()

	span.SetAttributes(
		attribute.Int("dataset.records", len(snap.Videos)),
		attribute.Int("dataset.skipped", snap.Skipped),
		attribute.Bool("dataset.enriched", enriched),
	)
	return &ReloadReport{
		Generation: snap.Generation,
		Records:    len(snap.Videos),
		Skipped:    snap.Skipped,
		Enriched:   enriched,
	}, nil
}

// enrich asks the external classifier for one emotion label per record and
// applies them in order. Any failure leaves every record without a label and
// reports false; it must never surface to the caller as an error.
func (s *SearchService) enrich(ctx context.Context, videos []domain.Video) bool {
	if s.Emotion == nil || len(videos) == 0 {
		return false
	}
	texts := make([]string, len(videos))
	for i, v := range videos {
		texts[i] = strings.TrimSpace(v.Title + " " + v.Description)
	}
	labels, err := s.Emotion.Labels(ctx, texts)
	if err != nil {
		log.Warn().Err(err).Msg("emotion enrichment skipped")
		return false
	}
	for i := range videos {
		videos[i].EmotionLabel = labels[i]
	}
	return true
}

func (s *SearchService) buildEngine(videos []domain.Video) *search.Engine {
	records := make([]search.Record, len(videos))
	for i, v := range videos {
		records[i] = search.Record{
			Title:    v.Title,
			Channel:  v.Channel,
			Keywords: v.Keywords,
			Category: v.Category,
		}
	}
	opts := []search.Option{search.WithMaxResults(s.MaxResults)}
	if s.RecallProfile {
		opts = append(opts, search.WithRecallProfile())
	} else if s.Threshold > 0 {
		opts = append(opts, search.WithThreshold(s.Threshold))
	}
	if s.Bonus != nil {
		opts = append(opts, search.WithBonus(*s.Bonus))
	}
	return search.New(records, opts...)
}

// Search evaluates one query against the current snapshot. Query input is
// never an error: empty and whitespace-only queries return the (capped)
// collection in load order, blocklisted queries return an empty set, and an
// unloaded dataset yields empty results. The returned generation identifies
// the snapshot the evaluation ran against.
func (s *SearchService) Search(ctx context.Context, query string, mode Mode, filter string) ([]ScoredVideo, uint64, error) {
	tr := otel.Tracer("services/SearchService")
	_, span := tr.Start(ctx, "Search",
		trace.WithAttributes(
			attribute.String("search.mode", string(mode)),
		),
	)
	defer span.End()

	snap := s.Store.Current()
	if snap == nil {
		searchesTotal.WithLabelValues(string(mode)).Inc()
		return []ScoredVideo{}, 0, nil
	}

	var (
		results []search.Result
		scored  bool
	)
	switch mode {
	case ModeKeyword:
		results = snap.Engine.FilterKeyword(filter)
	case ModeCategory:
		results = snap.Engine.FilterCategory(filter)
	case ModeFuzzy:
		results = snap.Engine.Search(query)
		scored = strings.TrimSpace(query) != ""
	default:
		return nil, 0, ErrUnknownMode
	}

	out := make([]ScoredVideo, len(results))
	for i, r := range results {
		out[i] = ScoredVideo{Video: snap.Videos[r.Index]}
		if scored {
			sc := r.Score
			out[i].Score = &sc
		}
	}

	searchesTotal.WithLabelValues(string(mode)).Inc()
	searchResults.Observe(float64(len(out)))
	span.SetAttributes(
		attribute.Int("search.results", len(out)),
		attribute.Int64("dataset.generation", int64(snap.Generation)),
	)
	return out, snap.Generation, nil
}

// Get returns the record with the given 1-based ID from the current snapshot.
func (s *SearchService) Get(id int) (*domain.Video, error) {
	snap := s.Store.Current()
	if snap == nil {
		return nil, ErrNoDataset
	}
	if id < 1 || id > len(snap.Videos) {
		return nil, ErrVideoNotFound
	}
	v := snap.Videos[id-1]
	return &v, nil
}

// Keywords returns the distinct keyword tags of the current snapshot in
// first-seen order, for the tag cloud the UI renders.
func (s *SearchService) Keywords() []string {
	snap := s.Store.Current()
	if snap == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, v := range snap.Videos {
		for _, k := range v.Keywords {
			key := strings.ToLower(k)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, k)
		}
	}
	return out
}
