// Package categorizer maps native source category labels onto the canonical
// category set using ordered substring containment rules.
package categorizer

import "strings"

// Canonical category labels. Sources with a mapping table always resolve to
// one of these; passthrough sources keep their native labels.
const (
	CategoryDining        = "餐饮"
	CategoryShopping      = "购物"
	CategoryTransport     = "交通"
	CategoryEntertainment = "娱乐"
	CategoryMedical       = "医疗"
	CategoryEducation     = "教育"
	CategoryHousing       = "住房"
	CategoryGift          = "人情"
	CategorySalary        = "工资"
	CategoryInvestment    = "理财"

	// Fallback is the canonical label for anything that cannot be mapped.
	Fallback = "Other"
)

// Rule maps a native label fragment to a canonical category. Rules are
// evaluated in order; the first containment match wins, which matters for
// compound native labels that contain several possible keys.
type Rule struct {
	Match     string
	Canonical string
}

// Map resolves a native category string to a canonical label.
//
// Passthrough sources keep the trimmed native label as-is (an empty label
// still falls back). Mapped sources search the rule table by substring
// containment; no match yields Fallback, as does the complete absence of a
// category column.
func Map(native string, rules []Rule, passthrough bool) string {
	native = strings.TrimSpace(native)
	if native == "" {
		return Fallback
	}

	if passthrough {
		return native
	}

	for _, rule := range rules {
		if strings.Contains(native, rule.Match) {
			return rule.Canonical
		}
	}

	return Fallback
}
