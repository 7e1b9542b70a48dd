package clip

import (
	"strings"

	"github.com/fwojciec/webclip"
)

// MergeTags returns the union of base, articleTags and the comma-separated
// keywords. Each distinct tag appears once, at its first position.
// Blank entries are dropped; keyword tokens are trimmed.
func MergeTags(base, articleTags []string, keywords string) []string {
	seen := make(map[string]bool)
	tags := []string{}
	add := func(tag string) {
		if strings.TrimSpace(tag) == "" || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	for _, t := range base {
		add(t)
	}
	for _, t := range articleTags {
		add(t)
	}
	for _, t := range webclip.SplitTags(keywords) {
		add(t)
	}
	return tags
}

// ResolveTitle picks the first non-blank of the extracted title and the
// document title, falling back to webclip.DefaultTitle.
func ResolveTitle(extracted, document string) string {
	for _, t := range []string{extracted, document} {
		if t = strings.TrimSpace(t); t != "" {
			return t
		}
	}
	return webclip.DefaultTitle
}
