package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/indexo-dev/indexo/advisor"
)

func TestRenderMarkdown(t *testing.T) {
	advices := []Advice{
		{Table: "users", Recommendation: advisor.IndexRecommendation{
			IndexName:                "idx_email",
			Columns:                  []string{"email"},
			IndexType:                "B-tree",
			Reason:                   "WHERE condition",
			EffectivenessScore:       100,
			EstimatedPerformanceGain: "80-90%",
		}},
		{Table: "orders", Recommendation: advisor.IndexRecommendation{
			IndexName: "idx_orders_user_id",
			Columns:   []string{"user_id"},
		}},
	}

	out := RenderMarkdown(advices)
	assert.Contains(t, out, "## users")
	assert.Contains(t, out, "## orders")
	assert.Contains(t, out, "### `idx_email`")
	assert.Contains(t, out, "- Effectiveness: 100/110")
	assert.Contains(t, out, `CREATE INDEX "idx_email" ON "users" ("email");`)
}

func TestRenderMarkdownEmpty(t *testing.T) {
	assert.Contains(t, RenderMarkdown(nil), "No recommendations.")
}
