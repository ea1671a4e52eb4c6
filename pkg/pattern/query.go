package pattern

import (
	"net/url"
	"strings"
)

const schemeExpr = `(https|http)://`

// QueryItems returns the decoded query parameters of an http or https URL.
// When a key repeats, the last value wins; pairs that fail to decode are
// skipped. It returns false when the input has no http(s) scheme.
// The host is not inspected, so non-ASCII domains work.
func QueryItems(rawURL string) (map[string]string, bool) {
	schemes := Matches(rawURL, schemeExpr)
	if len(schemes) == 0 {
		return nil, false
	}

	rest := strings.ReplaceAll(rawURL, schemes[0], "")
	rest, _, _ = strings.Cut(rest, "#")
	_, query, _ := strings.Cut(rest, "?")

	values, _ := url.ParseQuery(query)
	items := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			items[k] = v[len(v)-1]
		}
	}
	return items, true
}
