package htmlutil

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

var (
	scriptRegex     = regexp.MustCompile(`(?si)<script[^>]*>.*?</script>`)
	styleRegex      = regexp.MustCompile(`(?si)<style[^>]*>.*?</style>`)
	tagRegex        = regexp.MustCompile(`<[^>]+>`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// StripTags removes scripts, styles and markup from an HTML fragment,
// decodes entities and collapses whitespace, leaving the visible text.
func StripTags(fragment string) string {
	if fragment == "" {
		return ""
	}
	fragment = scriptRegex.ReplaceAllString(fragment, "")
	fragment = styleRegex.ReplaceAllString(fragment, "")
	fragment = tagRegex.ReplaceAllString(fragment, " ")
	fragment = html.UnescapeString(fragment)
	fragment = whitespaceRegex.ReplaceAllString(fragment, " ")
	return strings.TrimSpace(fragment)
}

// CleanText decodes entities and collapses whitespace without touching markup.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = html.UnescapeString(text)
	text = whitespaceRegex.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// HiddenInputValue extracts the value of a hidden <input name=...> via the
// name-before-value attribute order. Returns "" when the field is absent.
func HiddenInputValue(fragment, name string) string {
	pattern := fmt.Sprintf(`name="%s"[^>]*value="([^"]*)"`, regexp.QuoteMeta(name))
	match := regexp.MustCompile(pattern).FindStringSubmatch(fragment)
	if match == nil {
		return ""
	}
	return match[1]
}
