package cache

import (
	"net/url"
	"sort"
	"strings"
)

// Key builds the normalized request signature for a path and its query
// parameters. Parameter order in the request must not matter, so keys and
// repeated values are sorted before joining. Names and values are escaped
// so a value containing '&' or '=' cannot collide with a different request.
func Key(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(path)
	b.WriteByte('?')
	for i, name := range names {
		values := append([]string(nil), params[name]...)
		sort.Strings(values)
		for j, value := range values {
			if i > 0 || j > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(name))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(value))
		}
	}
	return b.String()
}
