// Package sync implements the Shopify data synchronization pipeline:
// paginated fetching, schema-driven upserts into the local snapshot
// tables, and the single-row status ledger.
package sync

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"go.uber.org/zap"
)

type FieldType int

const (
	FieldText FieldType = iota
	FieldInt
	FieldFloat
	FieldBool
)

// FieldSpec declares one typed column extracted from a raw API record.
// Missing, empty, or unconvertible values fall back to Default.
type FieldSpec struct {
	Name    string
	Default any
	Type    FieldType
}

// Record is one loosely-typed record as decoded from the API response.
type Record map[string]any

// Value reads the field described by spec, coercing it to the expected
// type. Conversion failures are never fatal for the record: they are
// logged and the declared default is used instead.
func (r Record) Value(spec FieldSpec, logger *zap.Logger) any {
	raw, ok := r[spec.Name]
	if !ok || raw == nil {
		return spec.Default
	}
	if s, isStr := raw.(string); isStr && s == "" {
		return spec.Default
	}

	value, err := coerce(raw, spec.Type)
	if err != nil {
		logger.Warn("could not convert field, using default",
			zap.String("field", spec.Name),
			zap.Any("value", raw),
			zap.Error(err))
		return spec.Default
	}
	return value
}

func coerce(raw any, t FieldType) (any, error) {
	switch t {
	case FieldInt:
		// Numeric strings like "42.0" arrive occasionally; go through
		// float first the way the API's own clients do.
		if s, ok := raw.(string); ok {
			f, err := cast.ToFloat64E(s)
			if err != nil {
				return nil, err
			}
			return int64(f), nil
		}
		return cast.ToInt64E(raw)
	case FieldFloat:
		return cast.ToFloat64E(raw)
	case FieldBool:
		return cast.ToBoolE(raw)
	case FieldText:
		return cast.ToStringE(raw)
	default:
		return nil, fmt.Errorf("unknown field type %d", t)
	}
}

// tableSpec couples a snapshot table with its ordered field schema. The
// generated statement always appends raw_data as the final column.
type tableSpec struct {
	table  string
	fields []FieldSpec
}

func (t tableSpec) insertSQL() string {
	cols := make([]string, 0, len(t.fields)+1)
	for _, f := range t.fields {
		cols = append(cols, f.Name)
	}
	cols = append(cols, "raw_data")

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	return fmt.Sprintf("INSERT OR REPLACE INTO %s (%s) VALUES (%s)",
		t.table, strings.Join(cols, ", "), placeholders)
}

var productSpec = tableSpec{
	table: "shopify_products",
	fields: []FieldSpec{
		{Name: "id", Type: FieldInt},
		{Name: "title", Default: "", Type: FieldText},
		{Name: "body_html", Default: "", Type: FieldText},
		{Name: "vendor", Default: "", Type: FieldText},
		{Name: "product_type", Default: "", Type: FieldText},
		{Name: "handle", Default: "", Type: FieldText},
		{Name: "status", Default: "", Type: FieldText},
		{Name: "tags", Default: "", Type: FieldText},
		{Name: "created_at", Default: "", Type: FieldText},
		{Name: "updated_at", Default: "", Type: FieldText},
		{Name: "published_at", Default: "", Type: FieldText},
	},
}

var variantSpec = tableSpec{
	table: "shopify_variants",
	fields: []FieldSpec{
		{Name: "id", Type: FieldInt},
		{Name: "product_id", Type: FieldInt},
		{Name: "title", Default: "", Type: FieldText},
		{Name: "price", Default: 0.0, Type: FieldFloat},
		{Name: "sku", Default: "", Type: FieldText},
		{Name: "position", Default: int64(0), Type: FieldInt},
		{Name: "inventory_policy", Default: "", Type: FieldText},
		{Name: "compare_at_price", Type: FieldFloat},
		{Name: "inventory_management", Default: "", Type: FieldText},
		{Name: "option1", Default: "", Type: FieldText},
		{Name: "option2", Default: "", Type: FieldText},
		{Name: "option3", Default: "", Type: FieldText},
		{Name: "created_at", Default: "", Type: FieldText},
		{Name: "updated_at", Default: "", Type: FieldText},
		{Name: "taxable", Default: false, Type: FieldBool},
		{Name: "barcode", Default: "", Type: FieldText},
		{Name: "inventory_item_id", Type: FieldInt},
	},
}

var orderSpec = tableSpec{
	table: "shopify_orders",
	fields: []FieldSpec{
		{Name: "id", Type: FieldInt},
		{Name: "email", Default: "", Type: FieldText},
		{Name: "created_at", Default: "", Type: FieldText},
		{Name: "updated_at", Default: "", Type: FieldText},
		{Name: "number", Default: int64(0), Type: FieldInt},
		{Name: "total_price", Default: 0.0, Type: FieldFloat},
		{Name: "subtotal_price", Default: 0.0, Type: FieldFloat},
		{Name: "total_tax", Default: 0.0, Type: FieldFloat},
		{Name: "currency", Default: "", Type: FieldText},
		{Name: "financial_status", Default: "", Type: FieldText},
		{Name: "fulfillment_status", Default: "", Type: FieldText},
		{Name: "processed_at", Default: "", Type: FieldText},
	},
}

var lineItemSpec = tableSpec{
	table: "shopify_order_line_items",
	fields: []FieldSpec{
		{Name: "id", Type: FieldInt},
		{Name: "order_id", Type: FieldInt},
		{Name: "variant_id", Type: FieldInt},
		{Name: "product_id", Type: FieldInt},
		{Name: "title", Default: "", Type: FieldText},
		{Name: "variant_title", Default: "", Type: FieldText},
		{Name: "sku", Default: "", Type: FieldText},
		{Name: "quantity", Default: int64(0), Type: FieldInt},
		{Name: "price", Default: 0.0, Type: FieldFloat},
		{Name: "total_discount", Default: 0.0, Type: FieldFloat},
		{Name: "created_at", Default: "", Type: FieldText},
	},
}
