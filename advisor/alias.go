package advisor

import "strings"

// AliasMap maps a query-local alias (or a table's own name) to the
// canonical table name. Lookups of unknown names fall back to identity.
type AliasMap map[string]string

// Resolve returns the canonical table for name, or name itself when the
// map has no entry for it.
func (m AliasMap) Resolve(name string) string {
	if table, ok := m[name]; ok {
		return table
	}
	return name
}

// maxSubqueryDepth caps alias-resolution recursion into nested subqueries.
// Levels deeper than this are skipped instead of growing the stack.
const maxSubqueryDepth = 16

// ResolveAliases builds the alias map for a query, including every alias
// declared inside subqueries. Merging is deliberately unscoped: an alias
// declared anywhere becomes globally visible. Bracket literals such as
// [Self] are kept verbatim as table names.
func ResolveAliases(sql string) AliasMap {
	m := AliasMap{}
	collectAliases(sql, m, 0)
	return m
}

func collectAliases(sql string, m AliasMap, depth int) {
	if depth > maxSubqueryDepth {
		return
	}

	stripped, subs := PartitionSubqueries(sql)
	lower := strings.ToLower(stripped)

	// FROM clause: a single table reference.
	if i := strings.Index(lower, "from"); i >= 0 {
		ref := stripped[i+len("from"):]
		addTableRef(ref[:clauseEnd(ref, fromBoundaries)], m)
	}

	// Every join keyword, every occurrence. Scanning "join" re-visits the
	// qualified variants; the duplicate parses produce identical entries.
	for _, kw := range []string{"inner join", "left join", "right join", "join"} {
		from := 0
		for {
			i := strings.Index(lower[from:], kw)
			if i < 0 {
				break
			}
			pos := from + i + len(kw)
			target := stripped[pos:]
			addTableRef(target[:clauseEnd(target, joinBoundaries)], m)
			from = pos
		}
	}

	for _, sub := range subs {
		collectAliases(sub, m, depth+1)
	}
}

// addTableRef parses one "table [AS] alias" reference and records it.
// Malformed references add nothing.
func addTableRef(ref string, m AliasMap) {
	tokens := strings.Fields(ref)
	if len(tokens) == 0 {
		return
	}
	table := tokens[0]

	if len(tokens) >= 3 && strings.EqualFold(tokens[1], "as") {
		m[tokens[2]] = table
		return
	}
	if len(tokens) >= 2 {
		next := strings.ToUpper(tokens[1])
		if next != "ON" && next != "WHERE" && tokens[1] != "," {
			m[tokens[1]] = table
			return
		}
	}
	m[table] = table
}
