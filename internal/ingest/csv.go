// Package ingest loads the video dataset from a delimited text source into
// enriched in-memory records. Parsing resolves loosely-named source columns
// through an explicit alias table, recovers from malformed rows locally, and
// applies the classifier rules once per record.
package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/sunidhi090894/kidsvids-backend/internal/domain"
	"github.com/sunidhi090894/kidsvids-backend/internal/search"
)

// Load error taxonomy. A failed load is fatal to that attempt only; callers
// keep serving the previously loaded snapshot.
var (
	// ErrSourceMissing indicates the dataset file does not exist or cannot
	// be opened.
	ErrSourceMissing = errors.New("dataset source missing or unreadable")

	// ErrSourceMalformed indicates the source has no header row or no data
	// rows at all.
	ErrSourceMalformed = errors.New("dataset source malformed or too short")

	// ErrSourceEmpty indicates parsing finished but produced zero valid
	// records.
	ErrSourceEmpty = errors.New("dataset source empty after parsing")
)

// maxRows caps how many data rows are ingested per load.
const maxRows = 500

// fieldAliases maps each canonical field to the source column names accepted
// for it, in priority order: the first alias present in the header wins.
// Header matching is case-insensitive. Columns matching no canonical field
// are preserved verbatim in Video.Extra but never interpreted.
var fieldAliases = map[string][]string{
	"title":       {"title", "name"},
	"url":         {"url", "videourl", "link"},
	"thumbnail":   {"thumbnail", "image"},
	"duration":    {"duration", "length"},
	"views":       {"viewcount", "views"},
	"likes":       {"likes", "likecount"},
	"channel":     {"channelname", "channel", "creator"},
	"channelUrl":  {"channelurl"},
	"subscribers": {"numberofsubscribers", "subscribers"},
	"date":        {"date", "publishedat"},
	"keywords":    {"keywords", "tags"},
	"description": {"description", "summary"},
}

// fieldDefaults supplies the value substituted when every alias for a field
// is absent or blank.
var fieldDefaults = map[string]string{
	"title":       "",
	"url":         "",
	"thumbnail":   "",
	"duration":    "0:00",
	"views":       "0",
	"likes":       "0",
	"channel":     "Unknown Channel",
	"channelUrl":  "",
	"subscribers": "0",
	"date":        "",
	"keywords":    "",
	"description": "",
}

// Dataset is the outcome of one successful load: the enriched records plus
// the number of malformed rows that were skipped along the way.
type Dataset struct {
	Videos  []domain.Video
	Skipped int
}

// LoadFile reads and parses the CSV at path. The context is honored between
// rows so a slow or stuck load can be cancelled.
func LoadFile(ctx context.Context, path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrSourceMissing
	}
	defer f.Close()
	return Parse(ctx, f)
}

// Parse consumes CSV text from r and builds enriched records. A malformed row
// is skipped and counted, never fatal; the load fails only when the source
// has no usable header/rows or when zero valid records result.
func Parse(ctx context.Context, r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, ErrSourceMalformed
	}
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.ToLower(strings.TrimSpace(h))
	}
	// Resolve each canonical field to a column index once, up front.
	fieldIdx := resolveAliases(cols)
	known := make(map[int]bool, len(fieldIdx))
	for _, i := range fieldIdx {
		known[i] = true
	}

	ds := &Dataset{}
	sawRow := false
	for len(ds.Videos) < maxRows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			sawRow = true
			ds.Skipped++
			continue
		}
		sawRow = true
		if blankRow(row) {
			ds.Skipped++
			continue
		}
		v := buildVideo(len(ds.Videos)+1, row, cols, fieldIdx, known)
		ds.Videos = append(ds.Videos, v)
	}

	if !sawRow {
		return nil, ErrSourceMalformed
	}
	if len(ds.Videos) == 0 {
		return nil, ErrSourceEmpty
	}
	return ds, nil
}

// resolveAliases maps canonical field names to header column indexes.
func resolveAliases(cols []string) map[string]int {
	pos := make(map[string]int, len(cols))
	for i, c := range cols {
		if _, ok := pos[c]; !ok {
			pos[c] = i
		}
	}
	out := make(map[string]int, len(fieldAliases))
	for field, aliases := range fieldAliases {
		for _, a := range aliases {
			if i, ok := pos[a]; ok {
				out[field] = i
				break
			}
		}
	}
	return out
}

// buildVideo assembles one enriched record from a row. id is 1-based
// ingestion order and stays stable for the lifetime of the loaded dataset.
func buildVideo(id int, row, cols []string, fieldIdx map[string]int, known map[int]bool) domain.Video {
	get := func(field string) string {
		if i, ok := fieldIdx[field]; ok && i < len(row) {
			if s := strings.TrimSpace(row[i]); s != "" {
				return s
			}
		}
		return fieldDefaults[field]
	}

	title := get("title")
	description := get("description")
	duration := get("duration")

	keywords := splitKeywords(get("keywords"))
	if len(keywords) == 0 {
		keywords = search.ExtractKeywords(title)
	}

	cls := search.Classify(title, description, keywords)

	var extra map[string]string
	for i, c := range cols {
		if known[i] || i >= len(row) {
			continue
		}
		if s := strings.TrimSpace(row[i]); s != "" {
			if extra == nil {
				extra = make(map[string]string)
			}
			extra[c] = s
		}
	}

	return domain.Video{
		ID:              id,
		Title:           title,
		Description:     description,
		Channel:         get("channel"),
		ChannelURL:      get("channelUrl"),
		URL:             get("url"),
		Thumbnail:       get("thumbnail"),
		Duration:        duration,
		DurationSeconds: search.ParseDurationSeconds(duration),
		Views:           get("views"),
		Likes:           get("likes"),
		Subscribers:     get("subscribers"),
		Date:            get("date"),
		Keywords:        keywords,
		Category:        cls.Category,
		AgeGroup:        cls.AgeGroup,
		Difficulty:      cls.Difficulty,
		Extra:           extra,
	}
}

// splitKeywords splits a comma-separated keyword cell, trimming blanks.
func splitKeywords(cell string) []string {
	if cell == "" {
		return nil
	}
	parts := strings.Split(cell, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
