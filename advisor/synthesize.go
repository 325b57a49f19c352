package advisor

import (
	"fmt"
	"strings"
)

// strategyKind tags the mutually exclusive synthesis branches.
type strategyKind int

const (
	strategyNone strategyKind = iota
	strategyFunctional
	strategyOrFanout
	strategyComposite
)

// indexPlan is the resolved synthesis decision for one query.
type indexPlan struct {
	kind       strategyKind
	expression string   // functional only
	column     string   // functional only
	columns    []string // extraction order
	optimized  []string // composite key order
}

// planIndexStrategy decides which of the three synthesis branches applies.
// Exactly one branch is chosen; callers never chain early returns.
func planIndexStrategy(sql string, knownColumns []string, complexity QueryComplexity) indexPlan {
	if expr, col, ok := DetectFunctionalIndex(sql, knownColumns); ok {
		return indexPlan{kind: strategyFunctional, expression: expr, column: col}
	}

	columns := ExtractIndexColumns(sql, knownColumns)
	if len(columns) == 0 {
		return indexPlan{kind: strategyNone}
	}

	if complexity.HasOr && len(columns) >= 2 {
		return indexPlan{kind: strategyOrFanout, columns: columns}
	}

	return indexPlan{
		kind:      strategyComposite,
		columns:   columns,
		optimized: OptimizeColumnOrder(columns, sql),
	}
}

// RecommendForSingleTable analyzes one query against a known column list
// and produces index recommendations: one functional recommendation, one
// single-column recommendation per OR branch, or one composite
// recommendation. An empty slice means nothing matched.
func RecommendForSingleTable(sql string, knownColumns []string) []IndexRecommendation {
	complexity := AnalyzeComplexity(sql)

	switch plan := planIndexStrategy(sql, knownColumns, complexity); plan.kind {
	case strategyFunctional:
		return []IndexRecommendation{functionalRecommendation(sql, plan, complexity)}
	case strategyOrFanout:
		return orFanoutRecommendations(sql, plan, complexity)
	case strategyComposite:
		return []IndexRecommendation{compositeRecommendation(sql, plan, knownColumns, complexity)}
	default:
		return nil
	}
}

func functionalRecommendation(sql string, plan indexPlan, complexity QueryComplexity) IndexRecommendation {
	fn := plan.expression
	if i := strings.Index(fn, "("); i >= 0 {
		fn = fn[:i]
	}
	columns := []string{plan.column}
	cards := EstimateCardinalities(columns)

	return IndexRecommendation{
		IndexName:                fmt.Sprintf("idx_%s_%s", plan.column, strings.ToLower(fn)),
		Columns:                  columns,
		IndexType:                "B-tree",
		IsFunctional:             true,
		FunctionalExpression:     plan.expression,
		Reason:                   fmt.Sprintf("Expression %s used in WHERE clause", plan.expression),
		EffectivenessScore:       EffectivenessScore(sql, complexity, false, 1),
		EstimatedPerformanceGain: "90-95%",
		EstimatedSizeBytes:       EstimatedIndexSize(1),
		ColumnCardinality:        cards,
		DatabaseHints:            DatabaseHints(sql, columns),
		ExecutionPlanHints:       ExecutionPlanHints(sql, columns, complexity),
		VisualRepresentation:     VisualRepresentation(sql, columns, cards, complexity),
		EstimatedQueryCost:       EstimatedQueryCost(sql, columns, cards, complexity),
	}
}

// orFanoutRecommendations emits one single-column index per original
// column. OR branches cannot share a composite index, but the planner can
// merge separate indexes with a bitmap AND/OR.
func orFanoutRecommendations(sql string, plan indexPlan, complexity QueryComplexity) []IndexRecommendation {
	recommendIntersection := len(plan.columns) > 2 || hasRangeOperator(sql)
	if !recommendIntersection {
		for _, col := range plan.columns {
			c := EstimateCardinality(col)
			if c == CardinalityHigh || c == CardinalityVeryHigh {
				recommendIntersection = true
				break
			}
		}
	}

	gain := "40-60%"
	if recommendIntersection {
		gain = "60-75% (with merge)"
	}

	recs := make([]IndexRecommendation, 0, len(plan.columns))
	for _, col := range plan.columns {
		columns := []string{col}
		cards := EstimateCardinalities(columns)
		alts := []string{"Bitmap OR merges the per-column indexes at query time"}
		if recommendIntersection {
			alts = append(alts, "Index intersection: the planner combines these indexes with bitmap AND/OR")
		}

		recs = append(recs, IndexRecommendation{
			IndexName:                fmt.Sprintf("idx_%s_separate", col),
			Columns:                  columns,
			IndexType:                "B-tree",
			Reason:                   fmt.Sprintf("Separate index for OR condition on %s", col),
			EffectivenessScore:       60,
			EstimatedPerformanceGain: gain,
			EstimatedSizeBytes:       EstimatedIndexSize(1),
			ColumnCardinality:        cards,
			DatabaseHints:            DatabaseHints(sql, columns),
			AlternativeStrategies:    alts,
			ExecutionPlanHints:       ExecutionPlanHints(sql, columns, complexity),
			VisualRepresentation:     VisualRepresentation(sql, columns, cards, complexity),
			EstimatedQueryCost:       EstimatedQueryCost(sql, columns, cards, complexity),
		})
	}
	return recs
}

func compositeRecommendation(sql string, plan indexPlan, knownColumns []string, complexity QueryComplexity) IndexRecommendation {
	optimized := plan.optimized
	cards := EstimateCardinalities(optimized)
	lower := strings.ToLower(sql)

	isUnique := isUniqueColumnName(optimized[0])
	partialCondition, isPartial := DetectPartialIndex(sql)

	indexType := "B-tree"
	if !hasRangeOperator(sql) && !strings.Contains(lower, "order by") {
		if len(optimized) == 1 && !strings.Contains(lower, " like ") {
			indexType = "Hash"
		}
	}

	rec := IndexRecommendation{
		IndexName:                "idx_" + strings.Join(optimized, "_"),
		Columns:                  optimized,
		IsUnique:                 isUnique,
		IsPartial:                isPartial,
		PartialCondition:         partialCondition,
		IncludeColumns:           DetectIncludeColumns(sql, knownColumns, optimized),
		IndexType:                indexType,
		Reason:                   compositeReason(optimized, complexity),
		EffectivenessScore:       EffectivenessScore(sql, complexity, isUnique, len(optimized)),
		EstimatedPerformanceGain: PerformanceGain(sql, optimized, complexity, isUnique, isPartial),
		EstimatedSizeBytes:       EstimatedIndexSize(len(optimized)),
		ColumnCardinality:        cards,
		DatabaseHints:            DatabaseHints(sql, optimized),
		AlternativeStrategies:    AlternativeStrategies(sql, optimized, cards, isPartial),
		ExecutionPlanHints:       ExecutionPlanHints(sql, optimized, complexity),
		VisualRepresentation:     VisualRepresentation(sql, optimized, cards, complexity),
		EstimatedQueryCost:       EstimatedQueryCost(sql, optimized, cards, complexity),
	}
	return rec
}

// compositeReason narrates the key order: leading column filters, middle
// columns chain with AND, the trailing column serves ORDER BY.
func compositeReason(optimized []string, complexity QueryComplexity) string {
	var parts []string
	if len(optimized) == 1 {
		parts = append(parts, "Single column index: "+optimized[0])
	} else {
		for i, col := range optimized {
			switch {
			case i == 0:
				parts = append(parts, "WHERE on "+col)
			case i == len(optimized)-1:
				parts = append(parts, "ORDER BY "+col)
			default:
				parts = append(parts, "AND "+col)
			}
		}
	}
	reason := strings.Join(parts, ", ")
	if complexity.HasOr {
		reason += " (Note: OR conditions reduce effectiveness)"
	}
	return reason
}
