package search

import "strings"

// Relevance thresholds. A candidate must beat the threshold to appear in
// results; the recall profile trades precision for broader matches.
const (
	DefaultThreshold = 0.3
	RecallThreshold  = 0.25

	titleSubstringScore   = 0.9
	channelSubstringScore = 0.7
	keywordContainsScore  = 0.8
)

// BonusConfig is the additive-bonus vocabulary applied on top of the base
// similarity score. The exact vocabulary is configuration, not contract:
// deployments tune it to their corpus. Bonuses are additive and deliberately
// uncapped; ranking only needs a consistent ordering, not a bounded scale.
type BonusConfig struct {
	// CategoryBonus is granted when the query itself resolves to a known
	// topical category and the record carries the same tag.
	CategoryBonus float64
	// KeywordBonus is granted per specialized term present in both the query
	// and the record's keyword set.
	KeywordBonus float64
	// KeywordTerms is the specialized vocabulary checked for KeywordBonus.
	KeywordTerms []string
}

// DefaultBonusConfig mirrors the therapeutic deployment profile.
func DefaultBonusConfig() BonusConfig {
	return BonusConfig{
		CategoryBonus: 0.3,
		KeywordBonus:  0.2,
		KeywordTerms: []string{
			"calming", "soothing", "relaxing", "mindfulness", "meditation",
			"focus", "attention", "therapy", "therapeutic", "sensory",
		},
	}
}

// score computes the relevance of d for the normalized query q, in priority
// order: cheap substring checks first, then similarity, then bonuses. The
// boolean is false when the candidate is rejected outright (title similarity
// below MinRelevance with no substring qualification), which skips the
// remaining work.
func (e *Engine) score(q string, d *doc) (float64, bool) {
	var base float64
	switch {
	case strings.Contains(d.title, q):
		base = titleSubstringScore
	case strings.Contains(d.channel, q):
		base = channelSubstringScore
	default:
		sim := Similarity(q, d.title)
		if sim < minRelevance {
			return 0, false
		}
		base = sim
	}

	if s := Similarity(q, d.channel); s > base {
		base = s
	}
	for _, k := range d.keywords {
		if s := Similarity(q, k); s > base {
			base = s
		}
		// Containment either way guarantees a floor of 0.8; fuzzy
		// similarity can still exceed it.
		if base < keywordContainsScore &&
			(strings.Contains(k, q) || strings.Contains(q, k)) {
			base = keywordContainsScore
		}
	}

	return base + e.bonus(q, d), true
}

// minRelevance rejects candidates whose title similarity is hopeless before
// any further field comparisons are made.
const minRelevance = 0.3

// bonus applies the configured additive bonuses for q against d.
func (e *Engine) bonus(q string, d *doc) float64 {
	var b float64
	if e.cfg.bonus.CategoryBonus > 0 && d.category != CategoryGeneral {
		if ClassifyCategory(q) == d.category {
			b += e.cfg.bonus.CategoryBonus
		}
	}
	if e.cfg.bonus.KeywordBonus > 0 {
		for _, term := range e.cfg.bonus.KeywordTerms {
			if !strings.Contains(q, term) {
				continue
			}
			for _, k := range d.keywords {
				if strings.Contains(k, term) {
					b += e.cfg.bonus.KeywordBonus
					break
				}
			}
		}
	}
	return b
}
