// Package countries builds the country choices of the survey form.
package countries

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Featured countries are listed first, in this order.
var Featured = []string{"BR", "US", "PT"}

type Choice struct {
	Code string
	Name string
}

// List holds the choices per supported language. It is read only once
// built.
type List struct {
	fallback language.Tag
	choices  map[language.Tag][]Choice
}

// Build localizes the choices for every tag. The first tag is used for
// languages that were not built.
func Build(tags ...language.Tag) *List {
	l := &List{choices: make(map[language.Tag][]Choice, len(tags))}
	if len(tags) > 0 {
		l.fallback = tags[0]
	}
	regions := allCountries()
	for _, tag := range tags {
		l.choices[tag] = localize(tag, regions)
	}
	return l
}

// Choices returns the featured countries followed by the others sorted
// by their localized name.
func (l *List) Choices(tag language.Tag) []Choice {
	if c, ok := l.choices[tag]; ok {
		return c
	}
	return l.choices[l.fallback]
}

func allCountries() []language.Region {
	seen := map[string]bool{}
	var regions []language.Region
	for a := 'A'; a <= 'Z'; a++ {
		for b := 'A'; b <= 'Z'; b++ {
			r, err := language.ParseRegion(string([]rune{a, b}))
			if err != nil || !r.IsCountry() || seen[r.String()] {
				continue
			}
			seen[r.String()] = true
			regions = append(regions, r)
		}
	}
	return regions
}

func localize(tag language.Tag, regions []language.Region) []Choice {
	namer := display.Regions(tag)
	featured := map[string]bool{}
	for _, code := range Featured {
		featured[code] = true
	}

	head := make([]Choice, 0, len(Featured))
	for _, code := range Featured {
		r := language.MustParseRegion(code)
		head = append(head, Choice{Code: code, Name: namer.Name(r)})
	}

	var rest []Choice
	for _, r := range regions {
		if featured[r.String()] {
			continue
		}
		name := namer.Name(r)
		if name == "" {
			continue
		}
		rest = append(rest, Choice{Code: r.String(), Name: name})
	}

	col := collate.New(tag)
	sort.SliceStable(rest, func(i, j int) bool {
		return col.CompareString(rest[i].Name, rest[j].Name) < 0
	})
	return append(head, rest...)
}
