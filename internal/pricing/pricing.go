// Package pricing computes project quotes from the small set of options a
// visitor can pick on the site. Everything here is pure and deterministic.
package pricing

// ProjectType is the website package a visitor asks about.
type ProjectType string

const (
	Basic    ProjectType = "basic"    // up to 3 pages
	Standard ProjectType = "standard" // 3+ pages
)

// AddonKey identifies an optional priced bundle.
type AddonKey string

const (
	AddonDomain   AddonKey = "domain"
	AddonDatabase AddonKey = "database"
)

const (
	DomainPrice   Money = 1999
	DatabasePrice Money = 2999
)

// Addon is an optional feature bundle with a fixed price.
type Addon struct {
	Name     string   `json:"name"`
	Price    Money    `json:"price"`
	Features []string `json:"features"`
}

var basePrices = map[ProjectType]Money{
	Basic:    Dollars(49, 99),
	Standard: Dollars(69, 99),
}

var projectFeatures = map[ProjectType][]string{
	Basic: {
		"Up to 3 pages",
		"Responsive design",
		"Basic contact form",
		"SEO optimization",
		"Mobile-friendly",
		"2-week delivery",
		"Basic support",
	},
	Standard: {
		"3+ pages (unlimited)",
		"Advanced responsive design",
		"Multiple contact forms",
		"Advanced SEO optimization",
		"Performance optimization",
		"Social media integration",
		"2-week delivery",
		"Priority support",
	},
}

var addons = map[AddonKey]Addon{
	AddonDomain: {
		Name:  "Domain Setup",
		Price: DomainPrice,
		Features: []string{
			"Domain registration",
			"DNS configuration",
			"SSL certificate setup",
			"Email forwarding setup",
		},
	},
	AddonDatabase: {
		Name:  "Database Setup",
		Price: DatabasePrice,
		Features: []string{
			"User registration system",
			"Email & name storage",
			"Basic user profiles",
			"Data backup included",
		},
	},
}

// ProjectTypes lists the recognized project types in display order.
func ProjectTypes() []ProjectType {
	return []ProjectType{Basic, Standard}
}

// IsValidProjectType reports whether projectType is one of the recognized
// tokens. The match is exact and case-sensitive.
func IsValidProjectType(projectType string) bool {
	_, ok := basePrices[ProjectType(projectType)]
	return ok
}

// resolve maps unrecognized project types to Basic. Callers validate with
// IsValidProjectType first; pricing itself never fails.
func resolve(t ProjectType) ProjectType {
	if _, ok := basePrices[t]; ok {
		return t
	}
	return Basic
}

// BasePrice returns the base price of a project type, falling back to the
// Basic price for unrecognized types.
func BasePrice(t ProjectType) Money {
	return basePrices[resolve(t)]
}

// CalculateCost returns the total price for the selected options.
func CalculateCost(t ProjectType, includeDomain, includeDatabase bool) Money {
	total := BasePrice(t)
	if includeDomain {
		total += DomainPrice
	}
	if includeDatabase {
		total += DatabasePrice
	}
	return total
}

// Features returns the base feature list of a project type. Unrecognized
// types get the Basic list. The returned slice is a copy.
func Features(t ProjectType) []string {
	return append([]string(nil), projectFeatures[resolve(t)]...)
}

// AddonCatalog returns the add-on bundles keyed by add-on. The returned map
// and its feature slices are copies.
func AddonCatalog() map[AddonKey]Addon {
	out := make(map[AddonKey]Addon, len(addons))
	for k, a := range addons {
		a.Features = append([]string(nil), a.Features...)
		out[k] = a
	}
	return out
}

// SupportLevel returns the support tier bundled with a project type.
func SupportLevel(t ProjectType) string {
	if resolve(t) == Basic {
		return "Basic"
	}
	return "Priority"
}
