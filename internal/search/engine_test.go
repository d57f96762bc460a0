package search

import (
	"strings"
	"testing"
)

// ---------- fixture ----------

func testRecords() []Record {
	return []Record{
		{Title: "ABC Song for Kids", Channel: "Kids TV", Keywords: []string{"abc", "song", "kids"}, Category: CategoryCognitive},
		{Title: "Alphabet Song", Channel: "Learning Land", Keywords: []string{"alphabet", "song"}, Category: CategoryCognitive},
		{Title: "Calming Music for Sleep", Channel: "Dream Sounds", Keywords: []string{"calming", "music", "sleep"}, Category: CategoryBehavioral},
		{Title: "Counting 1 to 10", Channel: "Numbers Fun", Keywords: []string{"counting", "numbers"}, Category: CategoryCognitive},
		{Title: "Dinosaur Adventure", Channel: "Dino World", Keywords: []string{"dinosaur", "adventure"}, Category: CategoryGeneral},
		{Title: "Mindfulness for Children", Channel: "Calm Kids", Keywords: []string{"mindfulness", "meditation"}, Category: CategoryBehavioral},
		{Title: "Colors and Shapes", Channel: "Learning Land", Keywords: []string{"colors", "shapes"}, Category: CategoryCognitive},
		{Title: "Animal Sounds", Channel: "Nature Kids", Keywords: []string{"animals", "sounds"}, Category: CategoryGeneral},
		{Title: "Phonics Practice", Channel: "Reading Club", Keywords: []string{"phonics", "reading"}, Category: CategoryCognitive},
		{Title: "Soothing Lullabies", Channel: "Dream Sounds", Keywords: []string{"lullaby", "soothing"}, Category: CategoryBehavioral},
	}
}

func indexOf(t *testing.T, results []Result, idx int) int {
	t.Helper()
	for pos, r := range results {
		if r.Index == idx {
			return pos
		}
	}
	return -1
}

// ---------- options ----------

func TestOptionsAndDefaults(t *testing.T) {
	def := defaultConfig()
	if def.threshold != DefaultThreshold || def.maxResults != 100 {
		t.Fatalf("defaultConfig unexpected: %#v", def)
	}

	cfg := def
	WithThreshold(0.5)(&cfg)
	if cfg.threshold != 0.5 {
		t.Fatalf("WithThreshold failed: %v", cfg.threshold)
	}
	WithThreshold(0)(&cfg) // no-op
	WithThreshold(1.5)(&cfg)
	if cfg.threshold != 0.5 {
		t.Fatalf("out-of-range thresholds should be ignored: %v", cfg.threshold)
	}

	WithRecallProfile()(&cfg)
	if cfg.threshold != RecallThreshold {
		t.Fatalf("WithRecallProfile failed: %v", cfg.threshold)
	}

	WithMaxResults(3)(&cfg)
	if cfg.maxResults != 3 {
		t.Fatalf("WithMaxResults failed: %d", cfg.maxResults)
	}

	WithBonus(BonusConfig{CategoryBonus: 0.1})(&cfg)
	if cfg.bonus.CategoryBonus != 0.1 || cfg.bonus.KeywordBonus != 0 {
		t.Fatalf("WithBonus failed: %#v", cfg.bonus)
	}
}

// ---------- Search ----------

func TestSearch_ExactSubstringRanksFirst(t *testing.T) {
	e := New(testRecords())
	res := e.Search("abc song")
	if len(res) == 0 {
		t.Fatal("expected results for exact substring query")
	}
	if res[0].Index != 0 {
		t.Fatalf("expected 'ABC Song for Kids' first, got index %d", res[0].Index)
	}
	if res[0].Score < 0.9 {
		t.Fatalf("substring match score = %v, want >= 0.9", res[0].Score)
	}
}

func TestSearch_TypoToleratedViaKeywords(t *testing.T) {
	e := New(testRecords())
	res := e.Search("albhabet")
	if indexOf(t, res, 1) == -1 {
		t.Fatalf("typo query should still find 'Alphabet Song', got %v", res)
	}
}

func TestSearch_IrrelevantExcluded(t *testing.T) {
	e := New(testRecords())
	if res := e.Search("zzz"); len(res) != 0 {
		t.Fatalf("expected no results for unrelated query, got %v", res)
	}
}

func TestSearch_EmptyQueryReturnsAllInLoadOrder(t *testing.T) {
	e := New(testRecords())
	for _, q := range []string{"", "   ", "\t"} {
		res := e.Search(q)
		if len(res) != len(testRecords()) {
			t.Fatalf("Search(%q) returned %d results, want %d", q, len(res), len(testRecords()))
		}
		for i, r := range res {
			if r.Index != i {
				t.Fatalf("Search(%q) result %d has index %d, want load order", q, i, r.Index)
			}
		}
	}
}

func TestSearch_BlocklistedQueryReturnsNothing(t *testing.T) {
	e := New(testRecords())
	for _, q := range []string{"scary monster", "horror", "violent fight"} {
		if res := e.Search(q); len(res) != 0 {
			t.Fatalf("blocklisted query %q returned %v", q, res)
		}
	}
}

func TestSearch_ScoresSortedDescending(t *testing.T) {
	e := New(testRecords())
	res := e.Search("song")
	for i := 1; i < len(res); i++ {
		if res[i].Score > res[i-1].Score {
			t.Fatalf("results not sorted: %v", res)
		}
	}
}

func TestSearch_MaxResultsCap(t *testing.T) {
	e := New(testRecords(), WithMaxResults(2))
	if res := e.Search(""); len(res) != 2 {
		t.Fatalf("capped empty-query search returned %d, want 2", len(res))
	}
	if res := e.Search("song"); len(res) > 2 {
		t.Fatalf("capped search returned %d, want <= 2", len(res))
	}
}

func TestSearch_RecallProfileBroadens(t *testing.T) {
	recs := testRecords()
	strict := New(recs)
	broad := New(recs, WithRecallProfile())
	q := "alphabet"
	if got, want := len(broad.Search(q)), len(strict.Search(q)); got < want {
		t.Fatalf("recall profile returned fewer results (%d) than default (%d)", got, want)
	}
}

func TestSearch_CategoryBonusBoostsMatchingRecords(t *testing.T) {
	recs := []Record{
		{Title: "Calming Music", Channel: "A", Keywords: []string{"calming"}, Category: CategoryBehavioral},
		{Title: "Calming Music", Channel: "A", Keywords: []string{"calming"}, Category: CategoryGeneral},
	}
	withBonus := New(recs)
	res := withBonus.Search("calming music")
	if len(res) != 2 {
		t.Fatalf("expected both records, got %v", res)
	}
	if res[0].Index != 0 || res[0].Score <= res[1].Score {
		t.Fatalf("category-matched record should outrank the general one: %v", res)
	}

	noBonus := New(recs, WithBonus(BonusConfig{}))
	res = noBonus.Search("calming music")
	if len(res) != 2 || res[0].Score != res[1].Score {
		t.Fatalf("without bonuses identical text should tie: %v", res)
	}
}

// ---------- Filters ----------

func TestFilterKeyword(t *testing.T) {
	e := New(testRecords())

	res := e.FilterKeyword("song")
	if len(res) != 2 || res[0].Index != 0 || res[1].Index != 1 {
		t.Fatalf("FilterKeyword(song) = %v, want records 0 and 1 in load order", res)
	}

	// case-insensitive
	if res := e.FilterKeyword("SONG"); len(res) != 2 {
		t.Fatalf("FilterKeyword should be case-insensitive, got %v", res)
	}

	if res := e.FilterKeyword("nonexistent"); len(res) != 0 {
		t.Fatalf("unknown keyword should match nothing, got %v", res)
	}

	// empty filter returns everything
	if res := e.FilterKeyword(""); len(res) != len(testRecords()) {
		t.Fatalf("empty keyword filter returned %d results", len(res))
	}
}

func TestFilterCategory(t *testing.T) {
	e := New(testRecords())

	res := e.FilterCategory(CategoryBehavioral)
	want := []int{2, 5, 9}
	if len(res) != len(want) {
		t.Fatalf("FilterCategory = %v, want indices %v", res, want)
	}
	for i, r := range res {
		if r.Index != want[i] {
			t.Fatalf("FilterCategory = %v, want indices %v", res, want)
		}
	}

	// exact match only: a prefix is not a category
	if res := e.FilterCategory("behavioral"); len(res) != 0 {
		t.Fatalf("partial category value should match nothing, got %v", res)
	}

	// case-insensitive equality
	if res := e.FilterCategory(strings.ToUpper(CategoryCognitive)); len(res) != 5 {
		t.Fatalf("case-insensitive category match failed: %v", res)
	}
}

func TestEngineLen(t *testing.T) {
	if got := New(testRecords()).Len(); got != 10 {
		t.Fatalf("Len = %d, want 10", got)
	}
}
