package enrich

import "strings"

// brandDomains maps title substrings to brand domains. Checked
// case-insensitively against new task titles for Food and Shopping
// tasks before any network call is considered.
var brandDomains = map[string]string{
	"starbucks":   "starbucks.com",
	"chipotle":    "chipotle.com",
	"chick-fil-a": "chick-fil-a.com",
	"chick fil a": "chick-fil-a.com",
	"mcdonald":    "mcdonalds.com",
	"dunkin":      "dunkindonuts.com",
	"subway":      "subway.com",
	"domino":      "dominos.com",
	"taco bell":   "tacobell.com",
	"wendy":       "wendys.com",
	"panera":      "panerabread.com",
	"jersey mike": "jerseymikes.com",
	"whole foods": "wholefoodsmarket.com",
	"trader joe":  "traderjoes.com",
	"target":      "target.com",
	"walmart":     "walmart.com",
	"costco":      "costco.com",
	"amazon":      "amazon.com",
	"ikea":        "ikea.com",
	"home depot":  "homedepot.com",
}

const logoBaseURL = "https://logo.clearbit.com/"

// LogoURL builds the logo image URL for a brand domain.
func LogoURL(domain string) string {
	return logoBaseURL + domain
}

// BrandDomain checks the static heuristic table against a task title.
// Returns ("", false) when no entry matches.
func BrandDomain(title string) (string, bool) {
	lower := strings.ToLower(title)
	for needle, domain := range brandDomains {
		if strings.Contains(lower, needle) {
			return domain, true
		}
	}
	return "", false
}
