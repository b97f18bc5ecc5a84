package countries

import (
	"testing"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func TestChoicesFeaturedFirst(t *testing.T) {
	l := Build(language.English, language.Portuguese)
	choices := l.Choices(language.English)
	if len(choices) < 100 {
		t.Fatalf("got %d choices, expected the whole world", len(choices))
	}
	for i, code := range Featured {
		if choices[i].Code != code {
			t.Errorf("choice %d = %s, want %s", i, choices[i].Code, code)
		}
	}
	if choices[0].Name != "Brazil" {
		t.Errorf("BR name = %q", choices[0].Name)
	}
	if pt := l.Choices(language.Portuguese); pt[0].Name != "Brasil" {
		t.Errorf("BR pt name = %q", pt[0].Name)
	}
}

func TestChoicesSortedAfterFeatured(t *testing.T) {
	l := Build(language.English)
	choices := l.Choices(language.English)[len(Featured):]
	col := collate.New(language.English)
	seen := map[string]bool{}
	for i, c := range choices {
		if seen[c.Code] {
			t.Errorf("duplicate code %s", c.Code)
		}
		seen[c.Code] = true
		for _, f := range Featured {
			if c.Code == f {
				t.Errorf("featured %s listed twice", f)
			}
		}
		if i > 0 && col.CompareString(choices[i-1].Name, c.Name) > 0 {
			t.Errorf("%q listed before %q", choices[i-1].Name, c.Name)
		}
	}
}

func TestChoicesFallback(t *testing.T) {
	l := Build(language.English)
	got := l.Choices(language.Japanese)
	if len(got) == 0 {
		t.Fatal("no fallback choices")
	}
	if got[0].Name != "Brazil" {
		t.Errorf("fallback choices start with %+v", got[0])
	}
}
