package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhereBody(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want string
	}{
		{
			name: "bounded by order by",
			sql:  "SELECT * FROM t WHERE a = $1 ORDER BY b",
			want: " a = $1 ",
		},
		{
			name: "bounded by limit",
			sql:  "SELECT * FROM t WHERE a = $1 LIMIT 10",
			want: " a = $1 ",
		},
		{
			name: "runs to end of query",
			sql:  "SELECT * FROM t WHERE a = $1 AND b = $2",
			want: " a = $1 AND b = $2",
		},
		{
			name: "absent",
			sql:  "SELECT * FROM t",
			want: "",
		},
		{
			name: "case insensitive",
			sql:  "select * from t where a = $1 order by b",
			want: " a = $1 ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, whereBody(tt.sql))
		})
	}
}

func TestOrderByBody(t *testing.T) {
	assert.Equal(t, " created_at DESC", orderByBody("SELECT * FROM t ORDER BY created_at DESC"))
	assert.Equal(t, " created_at ", orderByBody("SELECT * FROM t ORDER BY created_at LIMIT 5"))
	assert.Equal(t, "", orderByBody("SELECT * FROM t"))
}

func TestClauseEnd(t *testing.T) {
	assert.Equal(t, len("abc"), clauseEnd("abc", whereBoundaries))
	assert.Equal(t, 5, clauseEnd("a = 1order by x", whereBoundaries))
}
