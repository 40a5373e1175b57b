package ipallow

import (
	"fmt"
	"regexp"
	"strings"
)

// Allowlist holds the compiled allowlist entries. Entries are immutable
// after construction, so concurrent Match calls need no synchronization.
type Allowlist struct {
	exact    map[string]struct{}
	patterns []*regexp.Regexp
}

// New compiles the configured entries into an Allowlist. Wildcard entries
// are turned into anchored regular expressions with literal dots escaped
// and "*" matching any digit sequence in that position.
func New(entries []string) (*Allowlist, error) {
	al := &Allowlist{exact: make(map[string]struct{}, len(entries))}

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		if !strings.Contains(entry, "*") {
			al.exact[entry] = struct{}{}
			continue
		}

		expr := "^" + strings.ReplaceAll(regexp.QuoteMeta(entry), `\*`, `\d+`) + "$"
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("ipallow: invalid entry %q: %w", entry, err)
		}
		al.patterns = append(al.patterns, re)
	}

	return al, nil
}

// Empty reports whether the allowlist has no entries. An empty allowlist
// admits every caller.
func (al *Allowlist) Empty() bool {
	return len(al.exact) == 0 && len(al.patterns) == 0
}

// Match reports whether the given IP is admitted by the allowlist.
func (al *Allowlist) Match(ip string) bool {
	if al.Empty() {
		return true
	}

	if _, ok := al.exact[ip]; ok {
		return true
	}

	for _, re := range al.patterns {
		if re.MatchString(ip) {
			return true
		}
	}

	return false
}
