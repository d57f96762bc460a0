package ingest

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/sunidhi090894/kidsvids-backend/internal/search"
)

func parseString(t *testing.T, csvText string) (*Dataset, error) {
	t.Helper()
	return Parse(context.Background(), strings.NewReader(csvText))
}

func TestParse_CanonicalHeaders(t *testing.T) {
	ds, err := parseString(t, strings.Join([]string{
		"title,url,thumbnail,duration,viewCount,likes,channelName,channelUrl,numberOfSubscribers,date,keywords,description",
		`ABC Song for Kids,https://v/1,https://t/1,3:25,"2,500,000",1200,Kids TV,https://c/1,50000,2024-01-01,"abc, song, kids",Sing along`,
	}, "\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(ds.Videos) != 1 || ds.Skipped != 0 {
		t.Fatalf("unexpected dataset: %d videos, %d skipped", len(ds.Videos), ds.Skipped)
	}

	v := ds.Videos[0]
	if v.ID != 1 {
		t.Errorf("ID = %d, want 1", v.ID)
	}
	if v.Title != "ABC Song for Kids" || v.Channel != "Kids TV" {
		t.Errorf("title/channel mismatch: %q / %q", v.Title, v.Channel)
	}
	if v.Duration != "3:25" || v.DurationSeconds != 205 {
		t.Errorf("duration = %q (%d s)", v.Duration, v.DurationSeconds)
	}
	if !reflect.DeepEqual(v.Keywords, []string{"abc", "song", "kids"}) {
		t.Errorf("keywords = %v", v.Keywords)
	}
	if v.Category != search.CategoryCognitive {
		t.Errorf("category = %q, want %q", v.Category, search.CategoryCognitive)
	}
	if v.AgeGroup != "5-8" {
		t.Errorf("age group = %q, want 5-8", v.AgeGroup)
	}
}

func TestParse_AliasHeaders(t *testing.T) {
	ds, err := parseString(t, strings.Join([]string{
		"Name,Link,Creator,Tags,Summary",
		"Calming Music,https://v/2,Dream Sounds,calming,Relax and sleep",
	}, "\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	v := ds.Videos[0]
	if v.Title != "Calming Music" {
		t.Errorf("Name alias not resolved: %q", v.Title)
	}
	if v.URL != "https://v/2" {
		t.Errorf("Link alias not resolved: %q", v.URL)
	}
	if v.Channel != "Dream Sounds" {
		t.Errorf("Creator alias not resolved: %q", v.Channel)
	}
	if !reflect.DeepEqual(v.Keywords, []string{"calming"}) {
		t.Errorf("Tags alias not resolved: %v", v.Keywords)
	}
	if v.Description != "Relax and sleep" {
		t.Errorf("Summary alias not resolved: %q", v.Description)
	}
}

func TestParse_DefaultsForMissingColumns(t *testing.T) {
	ds, err := parseString(t, "title\nLonely Title")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	v := ds.Videos[0]
	if v.Channel != "Unknown Channel" {
		t.Errorf("channel default = %q", v.Channel)
	}
	if v.Duration != "0:00" || v.Views != "0" || v.Likes != "0" || v.Subscribers != "0" {
		t.Errorf("numeric defaults not applied: %+v", v)
	}
}

func TestParse_KeywordsFallBackToTitle(t *testing.T) {
	ds, err := parseString(t, "title,keywords\nThe Alphabet Learning Adventure,\n")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	want := []string{"alphabet", "learning", "adventure"}
	if !reflect.DeepEqual(ds.Videos[0].Keywords, want) {
		t.Errorf("keywords = %v, want %v (derived from title)", ds.Videos[0].Keywords, want)
	}
}

func TestParse_UnknownColumnsKeptAsExtra(t *testing.T) {
	ds, err := parseString(t, "title,mood,keywords\nSome Video,happy,song\n")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got := ds.Videos[0].Extra["mood"]; got != "happy" {
		t.Errorf("Extra[mood] = %q, want happy", got)
	}
}

func TestParse_SkipsBlankAndMalformedRows(t *testing.T) {
	ds, err := parseString(t, strings.Join([]string{
		"title,channelName",
		"Good One,Kids TV",
		",  ",
		`bad "quote,Kids TV`,
		"Good Two,Kids TV",
	}, "\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(ds.Videos) != 2 {
		t.Fatalf("got %d videos, want 2", len(ds.Videos))
	}
	if ds.Skipped == 0 {
		t.Fatal("expected skipped rows to be counted")
	}
	if ds.Videos[0].Title != "Good One" || ds.Videos[1].Title != "Good Two" {
		t.Fatalf("wrong rows survived: %+v", ds.Videos)
	}
}

func TestParse_RowCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("title\n")
	for i := 0; i < maxRows+10; i++ {
		fmt.Fprintf(&b, "Video %d\n", i)
	}
	ds, err := parseString(t, b.String())
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(ds.Videos) != maxRows {
		t.Fatalf("got %d videos, want cap of %d", len(ds.Videos), maxRows)
	}
}

func TestParse_ErrorTaxonomy(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty input", "", ErrSourceMalformed},
		{"header only", "title,channelName\n", ErrSourceMalformed},
		{"only blank rows", "title,channelName\n,\n , \n", ErrSourceEmpty},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := parseString(t, c.in)
			if !errors.Is(err, c.want) {
				t.Fatalf("Parse() error = %v, want %v", err, c.want)
			}
		})
	}
}

func TestParse_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Parse(ctx, strings.NewReader("title\nSome Video\n"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Parse() error = %v, want context.Canceled", err)
	}
}

func TestLoadFile(t *testing.T) {
	_, err := LoadFile(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, ErrSourceMissing) {
		t.Fatalf("missing file error = %v, want ErrSourceMissing", err)
	}
}
