package hbasemap

import (
	"context"
	"fmt"

	"github.com/challenai/hbasemap/codec"
)

// IdentifierField is the pseudo-field that reads and writes the row key
// rather than a column.
const IdentifierField = "id"

// Row is a client-side view of one row: a row key and a set of column
// values keyed by "family:qualifier". Unqualified names are qualified with
// the row's default family when they are set or read.
//
// A Row carries no persistence state. Save and Delete act on the store only;
// the in-memory values are left untouched.
type Row struct {
	table        *Table
	key          string
	family       string
	timestamp    int64
	hasTimestamp bool
	data         map[string]codec.Value
}

// NewRow returns an empty row. table may be nil, in which case Save and
// Delete fail with ErrNoOwningTable.
func NewRow(table *Table, key, family string) *Row {
	return &Row{
		table:  table,
		key:    key,
		family: family,
		data:   map[string]codec.Value{},
	}
}

func (r *Row) Table() *Table         { return r.table }
func (r *Row) SetTable(table *Table) { r.table = table }

// ID returns the row key.
func (r *Row) ID() string { return r.key }

// SetID sets the row key.
func (r *Row) SetID(key string) { r.key = key }

// Family is the default column family for unqualified names.
func (r *Row) Family() string { return r.family }

// SetFamily changes the default family. Columns already set keep the
// family they were qualified with.
func (r *Row) SetFamily(family string) { r.family = family }

// Timestamp returns the write timestamp, if one is set.
func (r *Row) Timestamp() (int64, bool) { return r.timestamp, r.hasTimestamp }

func (r *Row) SetTimestamp(ts int64) {
	r.timestamp = ts
	r.hasTimestamp = true
}

// ClearTimestamp lets the store pick the write time again.
func (r *Row) ClearTimestamp() {
	r.timestamp = 0
	r.hasTimestamp = false
}

// Set converts v with codec.ValueOf and stores it under name, replacing any
// previous value of that column.
func (r *Row) Set(name string, v interface{}) error {
	val, err := codec.ValueOf(v)
	if err != nil {
		return fmt.Errorf("field %s: %w", name, err)
	}
	return r.SetValue(name, val)
}

// SetValue stores v under name.
func (r *Row) SetValue(name string, v codec.Value) error {
	if name == IdentifierField {
		key, ok := v.AsText()
		if !ok {
			return newError(ErrUnsupportedType, "field %s must be text, got %s", name, v.Kind())
		}
		r.key = key
		return nil
	}
	column, err := ResolveColumn(name, r.family)
	if err != nil {
		return err
	}
	r.data[column] = v
	return nil
}

// Get returns the value stored under name, or Null if it was never set.
func (r *Row) Get(name string) (codec.Value, error) {
	if name == IdentifierField {
		return codec.Text(r.key), nil
	}
	column, err := ResolveColumn(name, r.family)
	if err != nil {
		return codec.Null(), err
	}
	return r.data[column], nil
}

// Unset drops name from the row.
func (r *Row) Unset(name string) error {
	column, err := ResolveColumn(name, r.family)
	if err != nil {
		return err
	}
	delete(r.data, column)
	return nil
}

// Columns returns the qualified keys currently set.
func (r *Row) Columns() []string {
	columns := make([]string, 0, len(r.data))
	for k := range r.data {
		columns = append(columns, k)
	}
	return columns
}

// Attributes maps qualifiers, family stripped, to their values. When two
// families share a qualifier, which one wins is unspecified.
func (r *Row) Attributes() map[string]codec.Value {
	attrs := make(map[string]codec.Value, len(r.data))
	for column, v := range r.data {
		_, qualifier := SplitColumn(column)
		attrs[qualifier] = v
	}
	return attrs
}

// EncodedData maps each qualified column to its stored bytes. Null values
// map to nil.
func (r *Row) EncodedData() (map[string][]byte, error) {
	encoded := make(map[string][]byte, len(r.data))
	for column, v := range r.data {
		b, err := codec.Encode(v)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", column, err)
		}
		encoded[column] = b
	}
	return encoded, nil
}

// Save writes every set column through the owning table. The row key is not
// checked; an empty key is sent as is.
func (r *Row) Save(ctx context.Context) error {
	if r.table == nil {
		return newError(ErrNoOwningTable, "save %q", r.key)
	}
	data, err := r.EncodedData()
	if err != nil {
		return err
	}
	if r.hasTimestamp {
		return r.table.PutAt(ctx, r.key, data, r.timestamp)
	}
	return r.table.Put(ctx, r.key, data)
}

// Delete removes the row from the store through the owning table.
func (r *Row) Delete(ctx context.Context) error {
	if r.table == nil {
		return newError(ErrNoOwningTable, "delete %q", r.key)
	}
	return r.table.Delete(ctx, r.key)
}
