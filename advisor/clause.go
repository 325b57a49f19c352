package advisor

import "strings"

// Boundary keyword sets used to bound each clause. The ON set deliberately
// omits "on" so table+alias tokens before an ON clause survive when parsing
// join targets.
var (
	whereBoundaries = []string{"order by", "group by", "having", "limit", "offset", "union"}
	onBoundaries    = []string{"where", "order by", "group by", "having", "limit", "inner join", "left join", "right join", "join"}
	fromBoundaries  = []string{"where", "order by", "group by", "having", "limit"}
	joinBoundaries  = []string{"where", "order by", "group by", "inner join", "left join", "right join", "join"}
	orderBoundaries = []string{"group by", "order by", "limit", "offset", "union"}
)

// clauseEnd returns the offset of the earliest case-insensitive occurrence
// of any boundary keyword in text, or len(text) when none occurs.
func clauseEnd(text string, boundaries []string) int {
	lower := strings.ToLower(text)
	end := len(text)
	for _, kw := range boundaries {
		if i := strings.Index(lower, kw); i >= 0 && i < end {
			end = i
		}
	}
	return end
}

// clauseAfter locates the keyword case-insensitively and returns the clause
// body following it, bounded by the given boundary set. Empty string when
// the keyword is absent.
func clauseAfter(sql, keyword string, boundaries []string) string {
	lower := strings.ToLower(sql)
	i := strings.Index(lower, keyword)
	if i < 0 {
		return ""
	}
	rest := sql[i+len(keyword):]
	return rest[:clauseEnd(rest, boundaries)]
}

// whereBody returns the WHERE clause body of sql, or "".
func whereBody(sql string) string {
	return clauseAfter(sql, "where", whereBoundaries)
}

// orderByBody returns the ORDER BY clause body of sql, or "".
func orderByBody(sql string) string {
	return clauseAfter(sql, "order by", orderBoundaries)
}
