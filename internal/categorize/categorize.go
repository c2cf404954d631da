// Package categorize assigns a category to a free-text expense
// description by keyword matching. No ML, no probabilities: every
// classification is deterministic and explainable from the keyword
// table.
package categorize

import (
	"regexp"
	"sort"
	"strings"

	"github.com/arushshukla/budget-book/internal/models"
)

// rule is one compiled keyword. The pattern matches the keyword as a
// whole word or phrase, never as part of a longer word.
type rule struct {
	keyword  string
	pattern  *regexp.Regexp
	category models.Category
}

// Categorizer matches descriptions against a keyword table. Longer
// keywords are tried first, so a phrase like "bus fare" wins over its
// parts "bus" and "fare".
type Categorizer struct {
	rules []rule
}

// New compiles a categorizer from a keyword table. Keywords are matched
// case-insensitively against whole words, so "pen" does not match
// inside "spend". Keywords that cannot be compiled are skipped.
func New(keywords map[string]models.Category) *Categorizer {
	rules := make([]rule, 0, len(keywords))

	for keyword, category := range keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}

		// QuoteMeta keeps keywords with special characters, like
		// "t-shirt", from producing a malformed pattern.
		pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
		if err != nil {
			continue
		}

		rules = append(rules, rule{
			keyword:  keyword,
			pattern:  pattern,
			category: category,
		})
	}

	// Longest keyword first. Ties break alphabetically so that the
	// match order is deterministic.
	sort.Slice(rules, func(i, j int) bool {
		if len(rules[i].keyword) != len(rules[j].keyword) {
			return len(rules[i].keyword) > len(rules[j].keyword)
		}

		return rules[i].keyword < rules[j].keyword
	})

	return &Categorizer{rules: rules}
}

// Classify returns the category of the first matching keyword, or
// CategoryOther when nothing matches.
func (c *Categorizer) Classify(item string) models.Category {
	item = strings.ToLower(item)

	for _, rule := range c.rules {
		if rule.pattern.MatchString(item) {
			return rule.category
		}
	}

	return models.CategoryOther
}
