package sync

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRecordValue(t *testing.T) {
	logger := zap.NewNop()

	tests := []struct {
		name string
		rec  Record
		spec FieldSpec
		want any
	}{
		{
			name: "missing field uses default",
			rec:  Record{},
			spec: FieldSpec{Name: "title", Default: "", Type: FieldText},
			want: "",
		},
		{
			name: "nil value uses default",
			rec:  Record{"compare_at_price": nil},
			spec: FieldSpec{Name: "compare_at_price", Type: FieldFloat},
			want: nil,
		},
		{
			name: "empty string uses default",
			rec:  Record{"price": ""},
			spec: FieldSpec{Name: "price", Default: 0.0, Type: FieldFloat},
			want: 0.0,
		},
		{
			name: "unconvertible value uses default",
			rec:  Record{"price": "not-a-number"},
			spec: FieldSpec{Name: "price", Default: 0.0, Type: FieldFloat},
			want: 0.0,
		},
		{
			name: "string price converts",
			rec:  Record{"price": "19.99"},
			spec: FieldSpec{Name: "price", Default: 0.0, Type: FieldFloat},
			want: 19.99,
		},
		{
			name: "decimal string converts to int",
			rec:  Record{"position": "42.0"},
			spec: FieldSpec{Name: "position", Default: int64(0), Type: FieldInt},
			want: int64(42),
		},
		{
			name: "json number converts to int",
			rec:  Record{"id": float64(12345)},
			spec: FieldSpec{Name: "id", Type: FieldInt},
			want: int64(12345),
		},
		{
			name: "bool passes through",
			rec:  Record{"taxable": true},
			spec: FieldSpec{Name: "taxable", Default: false, Type: FieldBool},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rec.Value(tt.spec, logger))
		})
	}
}

func TestInsertSQL(t *testing.T) {
	sql := productSpec.insertSQL()

	assert.True(t, strings.HasPrefix(sql, "INSERT OR REPLACE INTO shopify_products ("))
	assert.Contains(t, sql, "raw_data")
	// One placeholder per declared field plus raw_data.
	assert.Equal(t, len(productSpec.fields)+1, strings.Count(sql, "?"))
}
