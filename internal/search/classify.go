package search

import (
	"regexp"
	"strings"
)

// Classification labels form a closed, rule-derived vocabulary.
const (
	CategoryCognitive  = "cognitive and development"
	CategoryBehavioral = "behavioral and emotional"
	CategoryGeneral    = "general"

	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"

	AgeGroupDefault = "5-12"
)

// categoryRule pairs a label with the substring terms that select it.
// Rules are evaluated top-to-bottom, first match wins, so priority order is
// explicit data rather than control flow. A title can match several groups;
// only the first counts.
type categoryRule struct {
	label string
	terms []string
}

var categoryRules = []categoryRule{
	{
		label: CategoryCognitive,
		terms: []string{
			"learning", "alphabet", "numbers", "phonics", "attention",
			"educational", "abc", "counting", "math", "reading",
			"cognitive", "development", "concentration", "focus", "memory",
		},
	},
	{
		label: CategoryBehavioral,
		terms: []string{
			"calming", "aggression", "emotional", "hyperactivity", "relaxing",
			"soothing", "anxiety", "stress", "mindfulness", "meditation",
			"behavioral", "social", "empathy", "feelings", "mood",
		},
	},
}

// ageRule pairs a compiled pattern with its age-range label. First match wins.
type ageRule struct {
	pattern *regexp.Regexp
	label   string
}

var ageRules = []ageRule{
	{regexp.MustCompile(`baby|babies|toddler|nursery|preschool|lullab`), "2-5"},
	{regexp.MustCompile(`kindergarten|phonics|alphabet|\babc\b|counting|rhyme`), "5-8"},
	{regexp.MustCompile(`science|experiment|history|multiplication|grammar`), "8-12"},
	{regexp.MustCompile(`teen|advanced|exam|algebra`), "12+"},
}

var (
	intermediateTerms = []string{
		"advanced", "intermediate", "expert", "challenge", "complex", "mastery",
	}
	beginnerTerms = []string{
		"beginner", "basic", "easy", "simple", "intro", "first steps", "starter",
	}
)

// blocklist holds fear- and aggression-associated terms. A free-text query
// containing any of them forces an empty result set; this is a query-time
// gate, not a record property, and takes precedence over all scoring.
var blocklist = []string{
	"scary", "horror", "violent", "violence", "fight", "fighting",
	"gun", "weapon", "blood", "kill", "monster", "creepy", "nightmare",
	"attack", "rage",
}

// Classification is the set of labels derived for one record. Every field is
// a pure function of the record's own text, so re-running classification on
// the same input yields identical output.
type Classification struct {
	Category   string
	AgeGroup   string
	Difficulty string
}

// Classify runs all taggers over the record text. Keywords participate in
// matching alongside title and description.
func Classify(title, description string, keywords []string) Classification {
	text := combinedText(title, description, keywords)
	return Classification{
		Category:   ClassifyCategory(text),
		AgeGroup:   ClassifyAgeGroup(text),
		Difficulty: ClassifyDifficulty(text),
	}
}

// ClassifyCategory resolves the topical category of the combined lower-cased
// text. Cognitive/attention terms are checked before behavioral/emotional
// terms; order is significant and must be preserved.
func ClassifyCategory(text string) string {
	text = strings.ToLower(text)
	for _, r := range categoryRules {
		if containsAny(text, r.terms) {
			return r.label
		}
	}
	return CategoryGeneral
}

// ClassifyAgeGroup resolves the target age range of the combined text,
// defaulting to a middle-of-road range when no pattern matches.
func ClassifyAgeGroup(text string) string {
	text = strings.ToLower(text)
	for _, r := range ageRules {
		if r.pattern.MatchString(text) {
			return r.label
		}
	}
	return AgeGroupDefault
}

// ClassifyDifficulty tests advanced/intermediate vocabulary before beginner
// vocabulary and defaults to beginner.
func ClassifyDifficulty(text string) string {
	text = strings.ToLower(text)
	if containsAny(text, intermediateTerms) {
		return DifficultyIntermediate
	}
	if containsAny(text, beginnerTerms) {
		return DifficultyBeginner
	}
	return DifficultyBeginner
}

// IsBlocked reports whether the query contains a blocklisted term.
func IsBlocked(query string) bool {
	return containsAny(strings.ToLower(query), blocklist)
}

// ParseDurationSeconds converts an "H:MM:SS" or "M:SS" display string to
// seconds. Malformed or negative components yield 0.
func ParseDurationSeconds(display string) int {
	parts := strings.Split(strings.TrimSpace(display), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0
	}
	total := 0
	for _, p := range parts {
		n := leadingDigits(strings.TrimSpace(p))
		if n < 0 {
			return 0
		}
		total = total*60 + int(n)
	}
	return total
}

// ParseCount coerces a display quantity ("2,500", "12K subscribers") to a
// number by reading its leading digits, skipping grouping commas. Anything
// unparseable is 0; suffixes like "K"/"M" are display concerns and ignored.
func ParseCount(display string) int64 {
	s := strings.TrimSpace(display)
	var n int64 = -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ',' && n >= 0 {
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		if n < 0 {
			n = 0
		}
		n = n*10 + int64(c-'0')
	}
	if n < 0 {
		return 0
	}
	return n
}

func combinedText(title, description string, keywords []string) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteByte(' ')
	b.WriteString(description)
	for _, k := range keywords {
		b.WriteByte(' ')
		b.WriteString(k)
	}
	return b.String()
}

func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}

func leadingDigits(s string) int64 {
	var n int64 = -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		if n < 0 {
			n = 0
		}
		n = n*10 + int64(c-'0')
	}
	return n
}
