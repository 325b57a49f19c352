package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/indexo-dev/indexo/advisor"
)

// Advice pairs a recommendation with the table it belongs to and the query
// that produced it.
type Advice struct {
	Table          string
	Query          string
	Recommendation advisor.IndexRecommendation
}

// FromJoin converts a JOIN-path table recommendation into an Advice so the
// two paths share one reporting pipeline.
func FromJoin(query string, rec advisor.TableIndexRecommendation) Advice {
	return Advice{
		Table: rec.TableName,
		Query: query,
		Recommendation: advisor.IndexRecommendation{
			IndexName:         fmt.Sprintf("idx_%s_%s", rec.TableName, strings.Join(rec.Columns, "_")),
			Columns:           rec.Columns,
			IndexType:         "B-tree",
			Reason:            rec.Reason,
			ColumnCardinality: advisor.EstimateCardinalities(rec.Columns),
		},
	}
}

// CreateIndexSQL renders one CREATE INDEX statement for an advice.
func CreateIndexSQL(a Advice) (string, error) {
	rec := a.Recommendation
	if a.Table == "" {
		return "", fmt.Errorf("advice has no table name")
	}
	if len(rec.Columns) == 0 && !rec.IsFunctional {
		return "", fmt.Errorf("advice for %q has no columns", a.Table)
	}

	stmt := "CREATE"
	if rec.IsUnique {
		stmt += " UNIQUE"
	}

	stmt += " INDEX"
	if rec.IndexName != "" {
		stmt += fmt.Sprintf(` "%s"`, rec.IndexName)
	}

	stmt += fmt.Sprintf(` ON "%s"`, a.Table)

	if strings.EqualFold(rec.IndexType, "hash") {
		stmt += " USING hash"
	}

	if rec.IsFunctional && rec.FunctionalExpression != "" {
		stmt += fmt.Sprintf(" ((%s))", rec.FunctionalExpression)
	} else {
		quoted := make([]string, len(rec.Columns))
		for i, col := range rec.Columns {
			quoted[i] = fmt.Sprintf(`"%s"`, col)
		}
		stmt += " (" + strings.Join(quoted, ", ") + ")"
	}

	if len(rec.IncludeColumns) > 0 {
		quoted := make([]string, len(rec.IncludeColumns))
		for i, col := range rec.IncludeColumns {
			quoted[i] = fmt.Sprintf(`"%s"`, col)
		}
		stmt += " INCLUDE (" + strings.Join(quoted, ", ") + ")"
	}

	if rec.IsPartial && rec.PartialCondition != "" {
		stmt += " WHERE " + rec.PartialCondition
	}

	return stmt + ";", nil
}

// DropIndexSQL renders the rollback statement for an advice.
func DropIndexSQL(a Advice) string {
	return fmt.Sprintf(`DROP INDEX IF EXISTS "%s";`, a.Recommendation.IndexName)
}

// GenerateSQL converts advices into CREATE INDEX statements.
func GenerateSQL(advices []Advice) ([]string, error) {
	var sqlStatements []string
	for _, a := range advices {
		stmt, err := CreateIndexSQL(a)
		if err != nil {
			return nil, fmt.Errorf("generate CREATE INDEX: %v", err)
		}
		sqlStatements = append(sqlStatements, stmt)
	}
	return sqlStatements, nil
}

// GenerateRollbackSQL converts advices into DROP INDEX statements, in
// reverse order.
func GenerateRollbackSQL(advices []Advice) []string {
	var sqlStatements []string
	for i := len(advices) - 1; i >= 0; i-- {
		sqlStatements = append(sqlStatements, DropIndexSQL(advices[i]))
	}
	return sqlStatements
}

// WriteReportFile saves the statements into a timestamped .sql file with
// apply/rollback sections and returns the filename.
func WriteReportFile(dir string, sqlStatements, rollbackStatements []string) (string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating reports folder: %v", err)
		}
	}

	timestamp := time.Now().Format("20060102150405")
	filename := fmt.Sprintf("%s/%s_indexes.sql", dir, timestamp)

	content := "-- Index report: " + timestamp + "\n"
	content += "-- Description: Auto-generated index recommendations\n\n"

	content += "-- Apply\n"
	content += "-- =====\n"
	for _, stmt := range sqlStatements {
		content += stmt + "\n"
	}

	content += "\n-- Rollback\n"
	content += "-- ========\n"
	for _, stmt := range rollbackStatements {
		content += stmt + "\n"
	}

	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing report file: %v", err)
	}

	return filename, nil
}
