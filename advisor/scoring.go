package advisor

import (
	"fmt"
	"strconv"
	"strings"
)

// hasRangeOperator reports whether the query carries any range comparison.
func hasRangeOperator(sql string) bool {
	return strings.Contains(sql, ">") || strings.Contains(sql, "<")
}

func hasLikeOperator(sql string) bool {
	return strings.Contains(strings.ToLower(sql), " like ")
}

// EffectivenessScore rates an index 0..110 from query features. The score
// is presentational; the formula is the contract.
func EffectivenessScore(sql string, complexity QueryComplexity, isUnique bool, columnCount int) int {
	score := 100
	if complexity.HasOr {
		score -= 20
	}
	if hasLikeOperator(sql) {
		score -= 10
	}
	if hasRangeOperator(sql) {
		score -= 5
	}
	if isUnique {
		score += 10
	}
	if columnCount > 1 {
		score += 5
	}
	if score > 110 {
		score = 110
	}
	return score
}

// PerformanceGain formats the estimated speedup range for an index.
func PerformanceGain(sql string, optimized []string, complexity QueryComplexity, isUnique, isPartial bool) string {
	if len(optimized) == 1 && optimized[0] == "id" {
		return "95-99%"
	}

	gain := 80
	if isUnique {
		gain += 15
	}
	if len(optimized) > 1 {
		gain += 5
	}
	if hasLikeOperator(sql) {
		gain -= 15
	}
	if complexity.HasOr {
		gain -= 25
	}
	if hasRangeOperator(sql) {
		gain -= 5
	}
	if isPartial {
		gain += 10
	}
	if gain < 20 {
		gain = 20
	}
	if gain > 99 {
		gain = 99
	}
	return fmt.Sprintf("%d-%d%%", gain, gain+10)
}

// EstimatedIndexSize approximates on-disk size growth per key column.
func EstimatedIndexSize(columnCount int) int {
	factor := 2.0
	switch columnCount {
	case 1:
		factor = 1.0
	case 2:
		factor = 1.5
	case 3:
		factor = 1.8
	}
	return int(100 * factor)
}

var timestampNames = []string{"created_at", "updated_at", "timestamp"}

func mentionsTimestamp(sql string, columns []string) bool {
	lower := strings.ToLower(sql)
	for _, name := range timestampNames {
		if strings.Contains(lower, name) {
			return true
		}
	}
	for _, col := range columns {
		lc := strings.ToLower(col)
		for _, name := range timestampNames {
			if strings.Contains(lc, name) {
				return true
			}
		}
	}
	return false
}

// DatabaseHints emits PostgreSQL-flavored tuning notes for the chosen key
// columns.
func DatabaseHints(sql string, columns []string) []string {
	var hints []string
	lower := strings.ToLower(sql)

	if mentionsTimestamp(sql, columns) {
		hints = append(hints, "Timestamp column detected: a BRIN index is much smaller than B-tree for append-only time-series tables")
	}
	if strings.Contains(lower, " like ") || strings.Contains(lower, "similar") || strings.Contains(lower, "regexp") {
		hints = append(hints, "Pattern matching detected: consider a pg_trgm GIN/GiST index to accelerate LIKE/regex searches")
	}
	for _, col := range columns {
		lc := strings.ToLower(col)
		if strings.Contains(lc, "json") || strings.Contains(lc, "array") || strings.Contains(lc, "data") {
			hints = append(hints, fmt.Sprintf("Column %s looks like a container type: a GIN index supports containment operators", col))
			break
		}
	}
	if len(columns) > 4 {
		hints = append(hints, fmt.Sprintf("Index spans %d columns; wide indexes slow writes and rarely pay off past the first few keys", len(columns)))
	}
	return hints
}

// AlternativeStrategies suggests non-composite designs worth comparing.
func AlternativeStrategies(sql string, columns []string, cardinalities []Cardinality, isPartial bool) []string {
	var alts []string
	lower := strings.ToLower(sql)

	if len(columns) > 3 {
		alts = append(alts, "Several single-column indexes combined by bitmap AND may beat one wide composite index")
	}
	if mentionsTimestamp(sql, columns) {
		alts = append(alts, "BRIN index on the timestamp column for large, naturally ordered tables")
	}
	if len(columns) == 1 && len(cardinalities) == 1 &&
		cardinalities[0] == CardinalityVeryHigh &&
		(strings.Contains(lower, strings.ToLower(columns[0])+" =") || strings.Contains(lower, strings.ToLower(columns[0])+"=")) &&
		!strings.Contains(lower, "order by") && !hasRangeOperator(sql) {
		alts = append(alts, "Hash index: equality-only lookups on a high-cardinality column skip B-tree ordering overhead")
	}
	if isPartial {
		alts = append(alts, "Partial index only serves queries repeating its WHERE predicate; keep a full index if other filters are common")
	}
	return alts
}

// ExecutionPlanHints narrates how the planner is expected to use the index.
func ExecutionPlanHints(sql string, columns []string, complexity QueryComplexity) []string {
	var hints []string
	lower := strings.ToLower(sql)

	if len(columns) == 1 {
		hints = append(hints, fmt.Sprintf("Single-column index on %s enables a direct index scan", columns[0]))
	} else {
		hints = append(hints, fmt.Sprintf("Composite index over %d columns; leftmost-prefix filters can use an index scan", len(columns)))
	}

	if strings.Contains(lower, " join ") {
		kind := "inner"
		switch {
		case strings.Contains(lower, "left join"):
			kind = "left"
		case strings.Contains(lower, "right join"):
			kind = "right"
		}
		hints = append(hints, fmt.Sprintf("Query contains a %s join; indexed join keys allow nested-loop or merge join plans", kind))
	}

	if strings.Contains(lower, "order by") && len(columns) > 0 {
		last := strings.ToLower(columns[len(columns)-1])
		if strings.Contains(strings.ToLower(orderByBody(sql)), last) {
			hints = append(hints, "ORDER BY is satisfied by index order; no separate sort step")
		} else {
			hints = append(hints, "ORDER BY target is not the trailing key column; expect an extra sort step")
		}
	}

	if strings.Contains(lower, "group by") {
		hints = append(hints, "GROUP BY present; a matching index can feed a pre-sorted GroupAggregate")
	}

	if hasAggregateFunction(lower) {
		hints = append(hints, "Aggregate functions detected in the select list")
		if !strings.Contains(lower, "group by") {
			hints = append(hints, "Without GROUP BY, a covering index can answer the aggregate via an index-only scan")
		}
	}

	if complexity.HasOr {
		hints = append(hints, "OR conditions usually force bitmap scans or full scans; the index may only cover one branch")
	}
	if complexity.HasSubquery {
		hints = append(hints, "Subquery detected; inner and outer queries are planned separately and may each need indexes")
	}
	if strings.Contains(lower, " limit ") {
		hints = append(hints, "LIMIT allows early termination once enough index entries are read")
	}
	if hasRangeOperator(sql) {
		hints = append(hints, "Range predicate scans a contiguous index interval; keys after the range column cannot narrow it")
	}
	if len(columns) > 0 && strings.ToLower(columns[0]) == "id" {
		hints = append(hints, "Leading id column: effectively a primary-key lookup")
	}

	return hints
}

func hasAggregateFunction(lower string) bool {
	for _, fn := range []string{"count(", "sum(", "avg(", "min(", "max("} {
		if strings.Contains(lower, fn) {
			return true
		}
	}
	return false
}

func cardinalityIcon(c Cardinality) string {
	switch c {
	case CardinalityVeryHigh:
		return "█████"
	case CardinalityHigh:
		return "████░"
	case CardinalityMediumHigh:
		return "███░░"
	case CardinalityMedium:
		return "██░░░"
	case CardinalityMediumLow:
		return "█▌░░░"
	case CardinalityLow:
		return "█░░░░"
	case CardinalityVeryLow:
		return "▌░░░░"
	}
	return "██░░░"
}

// VisualRepresentation renders a deterministic text block describing the
// expected plan, the index layout and its performance profile.
func VisualRepresentation(sql string, columns []string, cardinalities []Cardinality, complexity QueryComplexity) string {
	var b strings.Builder
	lower := strings.ToLower(sql)

	b.WriteString("Query Execution Plan\n")
	b.WriteString("====================\n")
	if len(columns) == 1 {
		fmt.Fprintf(&b, "Index Scan using index on (%s)\n", columns[0])
	} else {
		fmt.Fprintf(&b, "Index Scan using composite index on (%s)\n", strings.Join(columns, ", "))
	}
	if strings.Contains(lower, " join ") {
		b.WriteString("  -> Join: indexed keys enable nested-loop/merge join\n")
	}
	if complexity.HasOr {
		b.WriteString("  -> BitmapOr: OR branches evaluated separately\n")
	}
	if complexity.HasSubquery {
		b.WriteString("  -> SubPlan: subquery planned independently\n")
	}
	if strings.Contains(lower, " limit ") {
		b.WriteString("  -> Limit: scan stops early\n")
	}

	b.WriteString("\nIndex Structure\n")
	b.WriteString("===============\n")
	for i, col := range columns {
		icon := cardinalityIcon(CardinalityMedium)
		label := CardinalityMedium
		if i < len(cardinalities) {
			icon = cardinalityIcon(cardinalities[i])
			label = cardinalities[i]
		}
		fmt.Fprintf(&b, "  %d. %-20s %s %s\n", i+1, col, icon, label)
	}

	b.WriteString("\nExecution Path\n")
	b.WriteString("==============\n")
	b.WriteString("  B-tree root -> ")
	if hasRangeOperator(sql) {
		b.WriteString("range descent -> leaf interval scan -> heap fetch\n")
	} else {
		b.WriteString("equality descent -> leaf match -> heap fetch\n")
	}
	if strings.Contains(lower, "order by") {
		b.WriteString("  Output order follows index key order\n")
	}

	b.WriteString("\nPerformance Characteristics\n")
	b.WriteString("===========================\n")
	fmt.Fprintf(&b, "  Key columns: %d\n", len(columns))
	if complexity.HasOr {
		b.WriteString("  OR conditions reduce effectiveness\n")
	}
	if hasLikeOperator(sql) {
		b.WriteString("  LIKE pattern limits prefix usage\n")
	}
	if strings.Contains(lower, "group by") {
		b.WriteString("  GROUP BY may use pre-sorted input\n")
	}

	return b.String()
}

// EstimatedQueryCost buckets a heuristic planner cost relative to a full
// scan, e.g. "Low (34 vs full scan)".
func EstimatedQueryCost(sql string, columns []string, cardinalities []Cardinality, complexity QueryComplexity) string {
	lower := strings.ToLower(sql)
	cost := baseAccessCost(lower, columns)

	if complexity.HasOr {
		cost *= 1.5
	}
	if complexity.HasSubquery {
		cost *= 1.3
	}
	if strings.Contains(lower, "order by") && len(columns) > 0 {
		last := strings.ToLower(columns[len(columns)-1])
		if !strings.Contains(strings.ToLower(orderByBody(sql)), last) {
			cost *= 1.2
		}
	}
	if strings.Contains(lower, "group by") {
		cost *= 1.1
	}
	if strings.Contains(lower, " join ") {
		cost *= 1.2
	}
	if n, ok := limitValue(lower); ok {
		if n <= 100 {
			cost *= 0.3
		} else if n <= 1000 {
			cost *= 0.6
		}
	}
	for _, c := range cardinalities {
		if c == CardinalityVeryHigh {
			cost *= 0.9
			break
		}
	}
	for _, c := range cardinalities {
		if c == CardinalityLow || c == CardinalityVeryLow {
			cost *= 1.2
			break
		}
	}

	label := "High"
	switch {
	case cost < 20:
		label = "Very Low"
	case cost < 50:
		label = "Low"
	case cost < 80:
		label = "Medium"
	case cost < 100:
		label = "Moderate"
	}
	return fmt.Sprintf("%s (%.0f vs full scan)", label, cost)
}

// baseAccessCost picks a starting cost from the access pattern, checked
// most-selective first.
func baseAccessCost(lower string, columns []string) float64 {
	equality := func(col string) bool {
		lc := strings.ToLower(col)
		return strings.Contains(lower, lc+" =") || strings.Contains(lower, lc+"=")
	}
	rangeCond := func(col string) bool {
		lc := strings.ToLower(col)
		return strings.Contains(lower, lc+" >") || strings.Contains(lower, lc+">") ||
			strings.Contains(lower, lc+" <") || strings.Contains(lower, lc+"<")
	}
	inCond := func(col string) bool {
		lc := strings.ToLower(col)
		return strings.Contains(lower, lc+" in (") || strings.Contains(lower, lc+" in(")
	}

	rangeCount := 0
	for _, col := range columns {
		if rangeCond(col) {
			rangeCount++
		}
	}

	switch {
	case len(columns) == 1 && strings.ToLower(columns[0]) == "id" && equality(columns[0]):
		return 5
	case len(columns) == 1 && equality(columns[0]) && isUniqueColumnName(columns[0]):
		return 10
	case len(columns) == 1 && equality(columns[0]):
		return 20
	case len(columns) == 1 && rangeCond(columns[0]):
		return 40
	case rangeCount >= 2:
		return 60
	case anyColumn(columns, inCond):
		return 30
	case strings.Contains(lower, " like "):
		if strings.Contains(lower, "like '%") {
			return 80
		}
		return 50
	case len(columns) > 1:
		return 35
	}
	return 100
}

func anyColumn(columns []string, pred func(string) bool) bool {
	for _, col := range columns {
		if pred(col) {
			return true
		}
	}
	return false
}

// isUniqueColumnName mirrors the is_unique naming rule used in synthesis.
func isUniqueColumnName(col string) bool {
	lc := strings.ToLower(col)
	return lc == "id" || strings.HasSuffix(lc, "_id") || strings.Contains(lc, "id")
}

// limitValue parses the row count after a LIMIT keyword.
func limitValue(lower string) (int, bool) {
	i := strings.Index(lower, " limit ")
	if i < 0 {
		return 0, false
	}
	rest := strings.TrimLeft(lower[i+len(" limit "):], " ")
	j := 0
	for j < len(rest) && rest[j] >= '0' && rest[j] <= '9' {
		j++
	}
	if j == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(rest[:j])
	if err != nil {
		return 0, false
	}
	return n, true
}
