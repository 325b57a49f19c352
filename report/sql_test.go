package report

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indexo-dev/indexo/advisor"
)

func TestCreateIndexSQLBasic(t *testing.T) {
	a := Advice{
		Table: "users",
		Recommendation: advisor.IndexRecommendation{
			IndexName: "idx_email",
			Columns:   []string{"email"},
			IndexType: "B-tree",
		},
	}

	stmt, err := CreateIndexSQL(a)
	require.NoError(t, err)
	assert.Equal(t, `CREATE INDEX "idx_email" ON "users" ("email");`, stmt)
}

func TestCreateIndexSQLUniqueHash(t *testing.T) {
	a := Advice{
		Table: "users",
		Recommendation: advisor.IndexRecommendation{
			IndexName: "idx_id",
			Columns:   []string{"id"},
			IsUnique:  true,
			IndexType: "Hash",
		},
	}

	stmt, err := CreateIndexSQL(a)
	require.NoError(t, err)
	assert.Equal(t, `CREATE UNIQUE INDEX "idx_id" ON "users" USING hash ("id");`, stmt)
}

func TestCreateIndexSQLFunctional(t *testing.T) {
	a := Advice{
		Table: "users",
		Recommendation: advisor.IndexRecommendation{
			IndexName:            "idx_email_lower",
			Columns:              []string{"email"},
			IsFunctional:         true,
			FunctionalExpression: "LOWER(email)",
			IndexType:            "B-tree",
		},
	}

	stmt, err := CreateIndexSQL(a)
	require.NoError(t, err)
	assert.Equal(t, `CREATE INDEX "idx_email_lower" ON "users" ((LOWER(email)));`, stmt)
}

func TestCreateIndexSQLPartialWithInclude(t *testing.T) {
	a := Advice{
		Table: "accounts",
		Recommendation: advisor.IndexRecommendation{
			IndexName:        "idx_email",
			Columns:          []string{"email"},
			IsPartial:        true,
			PartialCondition: "deleted_at IS NULL",
			IncludeColumns:   []string{"name", "id"},
			IndexType:        "B-tree",
		},
	}

	stmt, err := CreateIndexSQL(a)
	require.NoError(t, err)
	assert.Equal(t, `CREATE INDEX "idx_email" ON "accounts" ("email") INCLUDE ("name", "id") WHERE deleted_at IS NULL;`, stmt)
}

func TestCreateIndexSQLErrors(t *testing.T) {
	_, err := CreateIndexSQL(Advice{})
	assert.Error(t, err)

	_, err = CreateIndexSQL(Advice{Table: "users"})
	assert.Error(t, err)
}

func TestFromJoin(t *testing.T) {
	rec := advisor.TableIndexRecommendation{
		TableName: "orders",
		Columns:   []string{"user_id", "created_at"},
		Reason:    "ON/WHERE/ORDER BY in JOIN query",
	}

	a := FromJoin("SELECT ...", rec)
	assert.Equal(t, "orders", a.Table)
	assert.Equal(t, "idx_orders_user_id_created_at", a.Recommendation.IndexName)
	assert.Equal(t, rec.Columns, a.Recommendation.Columns)
	assert.Equal(t, rec.Reason, a.Recommendation.Reason)
	assert.Len(t, a.Recommendation.ColumnCardinality, 2)
}

func TestGenerateRollbackSQLReversesOrder(t *testing.T) {
	advices := []Advice{
		{Table: "a", Recommendation: advisor.IndexRecommendation{IndexName: "idx_a", Columns: []string{"x"}}},
		{Table: "b", Recommendation: advisor.IndexRecommendation{IndexName: "idx_b", Columns: []string{"y"}}},
	}

	rollback := GenerateRollbackSQL(advices)
	require.Len(t, rollback, 2)
	assert.Equal(t, `DROP INDEX IF EXISTS "idx_b";`, rollback[0])
	assert.Equal(t, `DROP INDEX IF EXISTS "idx_a";`, rollback[1])
}

func TestWriteReportFile(t *testing.T) {
	dir := t.TempDir()

	filename, err := WriteReportFile(dir, []string{`CREATE INDEX "i" ON "t" ("c");`}, []string{`DROP INDEX IF EXISTS "i";`})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, "_indexes.sql"))

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	text := string(content)
	assert.Contains(t, text, "-- Apply")
	assert.Contains(t, text, "-- Rollback")
	assert.Contains(t, text, `CREATE INDEX "i" ON "t" ("c");`)
	assert.Contains(t, text, `DROP INDEX IF EXISTS "i";`)
}
