package portfolio

import (
	"maps"
	"slices"
	"strings"
)

// ResolveNames maps a mixed list of exact symbols, exact full names, or
// short name prefixes to currently held symbols, case-insensitively.
//
// Exact symbol matches win and consume their input. Remaining inputs are
// trimmed to their first 3 characters and matched as prefixes of the held
// full names; a prefix shared by several names resolves to every one of
// them. Inputs matching nothing are dropped.
func (r *Registry) ResolveNames(names []string) []string {
	lowered := make([]string, 0, len(names))
	for _, n := range names {
		lowered = append(lowered, strings.ToLower(strings.TrimSpace(n)))
	}

	var resolved []string
	seen := make(map[string]bool)
	remaining := lowered[:0]
	for _, input := range lowered {
		symbol, ok := r.exactSymbol(input)
		if ok && !seen[symbol] {
			resolved = append(resolved, symbol)
			seen[symbol] = true
			continue
		}
		remaining = append(remaining, input)
	}

	for _, input := range remaining {
		prefix := input
		if len(prefix) > 3 {
			prefix = prefix[:3]
		}
		if prefix == "" {
			continue
		}
		for _, name := range slices.Sorted(maps.Keys(r.symbolByName)) {
			if !strings.HasPrefix(strings.ToLower(name), prefix) {
				continue
			}
			symbol := r.symbolByName[name]
			if !seen[symbol] {
				resolved = append(resolved, symbol)
				seen[symbol] = true
			}
		}
	}
	return resolved
}

// exactSymbol finds the held symbol equal to the lowercased input.
func (r *Registry) exactSymbol(lowered string) (string, bool) {
	for symbol := range r.classBySymbol {
		if strings.ToLower(symbol) == lowered {
			return symbol, true
		}
	}
	return "", false
}
