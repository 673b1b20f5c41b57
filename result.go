package hbasemap

import (
	"sort"

	"github.com/challenai/hbasemap/codec"
	"github.com/challenai/hbasemap/thrift/hbase"
)

// Result is one row read from the store. Stored bytes carry no type, so
// values are decoded on access with the kind the caller asks for.
type Result struct {
	Key   string
	Cells map[string]Cell
	// Family qualifies unqualified names passed to the accessors.
	Family string
}

func newResult(r *hbase.TRowResult, family string) *Result {
	res := &Result{
		Key:    string(r.Row),
		Cells:  make(map[string]Cell, len(r.Columns)+len(r.SortedColumns)),
		Family: family,
	}
	for column, cell := range r.Columns {
		if cell != nil {
			res.Cells[column] = Cell{Value: cell.Value, Timestamp: cell.Timestamp}
		}
	}
	for _, c := range r.SortedColumns {
		if c != nil && c.Cell != nil {
			res.Cells[string(c.ColumnName)] = Cell{Value: c.Cell.Value, Timestamp: c.Cell.Timestamp}
		}
	}
	return res
}

// WithFamily returns a copy of r resolving unqualified names in family.
func (r *Result) WithFamily(family string) *Result {
	out := *r
	out.Family = family
	return &out
}

// Columns returns the qualified column keys, sorted.
func (r *Result) Columns() []string {
	columns := make([]string, 0, len(r.Cells))
	for k := range r.Cells {
		columns = append(columns, k)
	}
	sort.Strings(columns)
	return columns
}

// Cell returns the raw cell stored under name.
func (r *Result) Cell(name string) (Cell, bool, error) {
	column, err := ResolveColumn(name, r.Family)
	if err != nil {
		return Cell{}, false, err
	}
	c, ok := r.Cells[column]
	return c, ok, nil
}

// Value decodes name as kind. A missing column is Null.
func (r *Result) Value(name string, kind codec.Kind) (codec.Value, error) {
	c, ok, err := r.Cell(name)
	if err != nil || !ok {
		return codec.Null(), err
	}
	v, err := codec.Decode(kind, c.Value)
	if err != nil {
		return codec.Null(), newError(err, "column %s", name)
	}
	return v, nil
}

// Text returns name as a string; a missing column is "".
func (r *Result) Text(name string) (string, error) {
	v, err := r.Value(name, codec.KindText)
	s, _ := v.AsText()
	return s, err
}

// Int64 returns name as an integer; a missing column is 0.
func (r *Result) Int64(name string) (int64, error) {
	v, err := r.Value(name, codec.KindInt64)
	n, _ := v.AsInt64()
	return n, err
}

// Bool returns name as a boolean; a missing column is false.
func (r *Result) Bool(name string) (bool, error) {
	v, err := r.Value(name, codec.KindBool)
	b, _ := v.AsBool()
	return b, err
}

// ToRow decodes r into a Row of table that can be modified and saved.
// kinds gives the kind of each column by qualified key or bare qualifier;
// columns not listed decode as text.
func (r *Result) ToRow(table *Table, kinds map[string]codec.Kind) (*Row, error) {
	row := NewRow(table, r.Key, r.Family)
	for column, c := range r.Cells {
		_, qualifier := SplitColumn(column)
		kind, ok := kinds[column]
		if !ok {
			if kind, ok = kinds[qualifier]; !ok {
				kind = codec.KindText
			}
		}
		v, err := codec.Decode(kind, c.Value)
		if err != nil {
			return nil, newError(err, "column %s", column)
		}
		row.data[column] = v
	}
	return row, nil
}
