package docset

import (
	"fmt"
	"sort"
	"strings"
)

// Diff returns the entries whose names occur in baseline but nowhere in
// candidate, sorted by name. Kinds and paths are ignored when comparing.
//
// A name may have several baseline rows; only the first one in baseline
// order is reported. Callers that need stable output must pass baseline
// in a stable order, e.g. store row order.
func Diff(baseline, candidate []*Entry) []*Entry {
	present := make(map[string]struct{}, len(candidate))
	for _, e := range candidate {
		present[e.Name] = struct{}{}
	}

	first := make(map[string]*Entry)
	var missing []*Entry
	for _, e := range baseline {
		if _, ok := present[e.Name]; ok {
			continue
		}
		if _, ok := first[e.Name]; ok {
			continue
		}
		first[e.Name] = e
		missing = append(missing, e)
	}

	sort.SliceStable(missing, func(i, j int) bool {
		return missing[i].Name < missing[j].Name
	})
	return missing
}

// FormatMissing renders a missing entry as one report line:
//
//	missing: Foo.bar         -> (Value, 'foo.html#VALbar')
func FormatMissing(e *Entry) string {
	return fmt.Sprintf("missing: %-15s -> (%s, %s)", e.Name, e.Kind, quote(e.Path))
}

// quote wraps s in single quotes, switching to double quotes when s
// contains a single quote but no double quote.
func quote(s string) string {
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}
