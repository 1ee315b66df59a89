package usecase

import (
	"sort"
	"strings"
)

// Round names beyond the numbered ones ("Bonus", "Blitz") sort after every
// numbered round, keeping the order they were first seen in.
const roundOrdinalSentinel = 999

// roundSortKey extracts the first digit run from a round name as its display
// ordinal. "Round 10" sorts after "Round 2"; names without digits get the
// sentinel.
func roundSortKey(name string) int {
	start := -1
	for i := 0; i < len(name); i++ {
		if name[i] >= '0' && name[i] <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 {
		return roundOrdinalSentinel
	}

	end := start
	for end < len(name) && name[end] >= '0' && name[end] <= '9' {
		end++
	}

	ordinal := 0
	for _, c := range name[start:end] {
		digit := int(c - '0')
		ordinal = ordinal*10 + digit
		if ordinal >= roundOrdinalSentinel {
			return roundOrdinalSentinel
		}
	}
	return ordinal
}

// orderRoundNames sorts round names into natural display order. The sort is
// stable, so names sharing a key (all sentinel names in particular) keep
// their encounter order.
func orderRoundNames(names []string) []string {
	out := append([]string(nil), names...)
	sort.SliceStable(out, func(i, j int) bool {
		return roundSortKey(out[i]) < roundSortKey(out[j])
	})
	return out
}

// collectRoundNames gathers distinct round names in encounter order.
func collectRoundNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
