package sync

import (
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Upserter converts raw API records into typed rows and writes them with
// replace-on-conflict semantics keyed by the external id. Re-running a
// sync over an unchanged record yields identical stored state.
type Upserter struct {
	logger *zap.Logger
}

func NewUpserter(logger *zap.Logger) *Upserter {
	return &Upserter{logger: logger}
}

// upsert writes one record. overrides wins over the record's own fields;
// it carries values inherited from the parent record (a variant's
// product_id, a line item's order_id and created_at).
func (u *Upserter) upsert(tx *sqlx.Tx, spec tableSpec, rec Record, overrides map[string]any) error {
	args := make([]any, 0, len(spec.fields)+1)
	for _, f := range spec.fields {
		if v, ok := overrides[f.Name]; ok {
			args = append(args, v)
			continue
		}
		args = append(args, rec.Value(f, u.logger))
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to serialize raw record: %w", err)
	}
	args = append(args, string(raw))

	if _, err := tx.Exec(spec.insertSQL(), args...); err != nil {
		return fmt.Errorf("failed to upsert into %s: %w", spec.table, err)
	}
	return nil
}

// UpsertProduct writes one product row and returns its external id so the
// caller can attach the product's variants.
func (u *Upserter) UpsertProduct(tx *sqlx.Tx, rec Record) (any, error) {
	if err := u.upsert(tx, productSpec, rec, nil); err != nil {
		return nil, err
	}
	return rec.Value(productSpec.fields[0], u.logger), nil
}

// UpsertVariant writes one variant row under the given product id. The
// product row is always written first within the same product record, so
// the foreign key target exists at write time.
func (u *Upserter) UpsertVariant(tx *sqlx.Tx, rec Record, productID any) error {
	return u.upsert(tx, variantSpec, rec, map[string]any{"product_id": productID})
}

// UpsertOrder writes one order row and returns its external id and
// created_at, both inherited by the order's line items.
func (u *Upserter) UpsertOrder(tx *sqlx.Tx, rec Record) (any, any, error) {
	if err := u.upsert(tx, orderSpec, rec, nil); err != nil {
		return nil, nil, err
	}
	id := rec.Value(orderSpec.fields[0], u.logger)
	createdAt := rec.Value(FieldSpec{Name: "created_at", Default: "", Type: FieldText}, u.logger)
	return id, createdAt, nil
}

// UpsertLineItem writes one line item row under the given order.
func (u *Upserter) UpsertLineItem(tx *sqlx.Tx, rec Record, orderID, orderCreatedAt any) error {
	return u.upsert(tx, lineItemSpec, rec, map[string]any{
		"order_id":   orderID,
		"created_at": orderCreatedAt,
	})
}
