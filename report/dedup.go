package report

import (
	"sort"
	"strings"
)

// dedupKey identifies an index by table plus its sorted column set, so the
// same recommendation reached from different queries collapses to one.
func dedupKey(a Advice) string {
	cols := append([]string(nil), a.Recommendation.Columns...)
	sort.Strings(cols)
	key := a.Table + "|" + strings.Join(cols, ",")
	if a.Recommendation.IsFunctional {
		key += "|" + strings.ToLower(a.Recommendation.FunctionalExpression)
	}
	return key
}

// Deduplicate collapses advices that describe the same index. The first
// occurrence wins; later duplicates contribute their reason when it adds
// anything new.
func Deduplicate(advices []Advice) []Advice {
	byKey := map[string]int{}
	var out []Advice

	for _, a := range advices {
		key := dedupKey(a)
		if i, ok := byKey[key]; ok {
			kept := &out[i].Recommendation
			extra := a.Recommendation.Reason
			if extra != "" && !strings.Contains(kept.Reason, extra) {
				kept.Reason += "; also: " + extra
			}
			continue
		}
		byKey[key] = len(out)
		out = append(out, a)
	}

	return out
}
