package advisor

import "strings"

// qualifiedRef is one table.column mention with its end offset in the
// scanned text, so callers can inspect what follows it.
type qualifiedRef struct {
	tableRef string
	column   string
	end      int
}

// RecommendForJoin aggregates the ON, WHERE and ORDER BY columns of a
// multi-table query into one recommendation per touched table. Table
// references are resolved to canonical names through the alias map, and
// each table's column list keeps first-append order (ON, WHERE, ORDER BY).
func RecommendForJoin(sql string, aliases AliasMap) []TableIndexRecommendation {
	lower := strings.ToLower(sql)
	hasOrderBy := strings.Contains(lower, "order by")
	hasOnClause := strings.Contains(lower, " on ")

	buckets := map[string]*TableIndexRecommendation{}
	var order []string

	add := func(ref qualifiedRef, reason string) {
		table := aliases.Resolve(ref.tableRef)
		b, ok := buckets[table]
		if !ok {
			b = &TableIndexRecommendation{TableName: table, Reason: reason}
			buckets[table] = b
			order = append(order, table)
		}
		b.Columns = append(b.Columns, ref.column)
	}

	// ON conditions. Both sides of each equality are collected since either
	// may deserve an index.
	onReason := "ON/WHERE in JOIN query"
	if hasOrderBy {
		onReason = "ON/WHERE/ORDER BY in JOIN query"
	}
	from := 0
	for {
		i := strings.Index(lower[from:], " on ")
		if i < 0 {
			break
		}
		pos := from + i + len(" on ")
		cond := sql[pos:]
		cond = cond[:clauseEnd(cond, onBoundaries)]
		for _, ref := range scanQualifiedRefs(cond) {
			add(ref, onReason)
		}
		from = pos
	}

	// WHERE conditions: qualified columns directly before a comparison.
	whereReason := "WHERE condition in JOIN query"
	if hasOrderBy {
		whereReason = "ON/WHERE/ORDER BY in JOIN query"
	} else if hasOnClause {
		whereReason = "ON/WHERE in JOIN query"
	}
	where := whereBody(sql)
	for _, ref := range scanQualifiedRefs(where) {
		if followedByComparison(where, ref.end) {
			add(ref, whereReason)
		}
	}

	// ORDER BY: comparison-qualified or bare references both count.
	for _, ref := range scanQualifiedRefs(orderByBody(sql)) {
		add(ref, "ON/WHERE/ORDER BY in JOIN query")
	}

	recs := make([]TableIndexRecommendation, 0, len(order))
	for _, table := range order {
		b := buckets[table]
		b.Columns = dedupStrings(b.Columns)
		recs = append(recs, *b)
	}
	return recs
}

// scanQualifiedRefs finds every word.word pair in text.
func scanQualifiedRefs(text string) []qualifiedRef {
	var refs []qualifiedRef
	for i := 0; i < len(text); i++ {
		if !isIdentStart(text[i]) {
			continue
		}
		if i > 0 && (isIdentChar(text[i-1]) || text[i-1] == '.') {
			continue
		}
		j := i
		for j < len(text) && isIdentChar(text[j]) {
			j++
		}
		if j >= len(text) || text[j] != '.' || j+1 >= len(text) || !isIdentStart(text[j+1]) {
			i = j
			continue
		}
		k := j + 1
		for k < len(text) && isIdentChar(text[k]) {
			k++
		}
		refs = append(refs, qualifiedRef{
			tableRef: text[i:j],
			column:   text[j+1 : k],
			end:      k,
		})
		i = k
	}
	return refs
}

// followedByComparison reports whether the text after offset end starts
// with =, >, < (optionally space-separated) or an IN/LIKE keyword.
func followedByComparison(text string, end int) bool {
	rest := text[end:]
	trimmed := strings.TrimLeft(rest, " ")
	if strings.HasPrefix(trimmed, "=") || strings.HasPrefix(trimmed, ">") || strings.HasPrefix(trimmed, "<") {
		return true
	}
	lower := strings.ToLower(rest)
	return strings.HasPrefix(lower, " in ") || strings.HasPrefix(lower, " in(") ||
		strings.HasPrefix(lower, " like ")
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// dedupStrings removes duplicates preserving first-seen order.
func dedupStrings(in []string) []string {
	seen := map[string]bool{}
	out := in[:0]
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
