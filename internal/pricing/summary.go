package pricing

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	Timeline = "14 days"

	// addonMark prefixes add-on lines in a flattened feature list.
	addonMark = "✓ "
)

// AddonLine is a selected add-on inside a summary.
type AddonLine struct {
	Name     string   `json:"name"`
	Cost     Money    `json:"cost"`
	Features []string `json:"features"`
}

// Summary is the full pricing breakdown for one option set.
type Summary struct {
	ProjectType  string      `json:"project_type"`
	BaseCost     Money       `json:"base_cost"`
	TotalCost    Money       `json:"total_cost"`
	Features     []string    `json:"features"`
	Addons       []AddonLine `json:"addons"`
	Timeline     string      `json:"estimated_timeline"`
	SupportLevel string      `json:"support_level"`
}

// GenerateSummary composes base price, add-ons, features, timeline and
// support level for the given options. Domain lines always precede database
// lines regardless of how the options were supplied.
func GenerateSummary(t ProjectType, includeDomain, includeDatabase bool) Summary {
	t = resolve(t)

	s := Summary{
		ProjectType:  Label(t),
		BaseCost:     BasePrice(t),
		TotalCost:    CalculateCost(t, includeDomain, includeDatabase),
		Features:     Features(t),
		Addons:       []AddonLine{},
		Timeline:     Timeline,
		SupportLevel: SupportLevel(t),
	}

	selected := []struct {
		key AddonKey
		on  bool
	}{
		{AddonDomain, includeDomain},
		{AddonDatabase, includeDatabase},
	}
	for _, sel := range selected {
		if !sel.on {
			continue
		}
		a := addons[sel.key]
		s.Addons = append(s.Addons, AddonLine{
			Name:     a.Name,
			Cost:     a.Price,
			Features: append([]string(nil), a.Features...),
		})
		for _, f := range a.Features {
			s.Features = append(s.Features, addonMark+f)
		}
	}

	return s
}

// Label returns the title-cased display name of a project type.
func Label(t ProjectType) string {
	// cases.Caser keeps state, so one per call.
	return cases.Title(language.English).String(string(t))
}

// Plan describes one project type for the public price list.
type Plan struct {
	ProjectType  ProjectType `json:"project_type"`
	Label        string      `json:"label"`
	BasePrice    Money       `json:"base_price"`
	Features     []string    `json:"features"`
	SupportLevel string      `json:"support_level"`
}

// Catalog is the public price list: every plan plus every add-on.
type Catalog struct {
	Plans    []Plan             `json:"plans"`
	Addons   map[AddonKey]Addon `json:"addons"`
	Timeline string             `json:"estimated_timeline"`
}

// PriceCatalog builds the public price list.
func PriceCatalog() Catalog {
	c := Catalog{
		Addons:   AddonCatalog(),
		Timeline: Timeline,
	}
	for _, t := range ProjectTypes() {
		c.Plans = append(c.Plans, Plan{
			ProjectType:  t,
			Label:        Label(t),
			BasePrice:    BasePrice(t),
			Features:     Features(t),
			SupportLevel: SupportLevel(t),
		})
	}
	return c
}
