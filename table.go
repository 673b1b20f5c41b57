package hbasemap

import (
	"context"
	"sort"

	"github.com/challenai/hbasemap/thrift/hbase"
)

// ScanBatchSize is the default number of rows fetched per scanner round trip.
const ScanBatchSize int32 = 1 << 6

// Table is a handle on one physical table. It holds no state from the store;
// every call is a round trip.
type Table struct {
	name string
	conn *Connection
}

// Name is the physical, already prefixed, table name.
func (t *Table) Name() string {
	return t.name
}

func (t *Table) Connection() *Connection {
	return t.conn
}

// NewRow returns an empty row of t. Unqualified field names are placed in
// family.
func (t *Table) NewRow(key, family string) *Row {
	return NewRow(t, key, family)
}

// NewRowWith returns a row of t with fields already set.
func (t *Table) NewRowWith(key, family string, fields map[string]interface{}) (*Row, error) {
	r := NewRow(t, key, family)
	// sorted so a failing field is reported deterministically
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := r.Set(name, fields[name]); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Put writes columns of one row in a single mutation, timestamped by the
// store. A nil value deletes that column.
func (t *Table) Put(ctx context.Context, rowKey string, columns map[string][]byte) error {
	if err := t.conn.client.MutateRow(ctx, []byte(t.name), []byte(rowKey), mutations(columns), nil); err != nil {
		return t.conn.remote("mutateRow", t.name, err)
	}
	return nil
}

// PutAt is Put with an explicit timestamp.
func (t *Table) PutAt(ctx context.Context, rowKey string, columns map[string][]byte, timestamp int64) error {
	if err := t.conn.client.MutateRowTs(ctx, []byte(t.name), []byte(rowKey), mutations(columns), timestamp, nil); err != nil {
		return t.conn.remote("mutateRowTs", t.name, err)
	}
	return nil
}

func mutations(columns map[string][]byte) []*hbase.Mutation {
	keys := make([]string, 0, len(columns))
	for k := range columns {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	muts := make([]*hbase.Mutation, 0, len(keys))
	for _, k := range keys {
		m := hbase.NewMutation()
		m.Column = []byte(k)
		if v := columns[k]; v == nil {
			m.IsDelete = true
		} else {
			m.Value = v
		}
		muts = append(muts, m)
	}
	return muts
}

// Delete removes every column of the row.
func (t *Table) Delete(ctx context.Context, rowKey string) error {
	if err := t.conn.client.DeleteAllRow(ctx, []byte(t.name), []byte(rowKey), nil); err != nil {
		return t.conn.remote("deleteAllRow", t.name, err)
	}
	return nil
}

// Get fetches one row, optionally restricted to columns ("family" or
// "family:qualifier"). It returns ErrRowNotFound for a missing row.
func (t *Table) Get(ctx context.Context, rowKey string, columns ...string) (*Result, error) {
	var (
		rows []*hbase.TRowResult
		err  error
	)
	if len(columns) == 0 {
		rows, err = t.conn.client.GetRow(ctx, []byte(t.name), []byte(rowKey), nil)
	} else {
		rows, err = t.conn.client.GetRowWithColumns(ctx, []byte(t.name), []byte(rowKey), toBytes(columns), nil)
	}
	if err != nil {
		return nil, t.conn.remote("getRow", t.name, err)
	}
	if len(rows) == 0 {
		return nil, newError(ErrRowNotFound, "%s/%s", t.name, rowKey)
	}
	return newResult(rows[0], ""), nil
}

// Scan reads the rows in [StartRow, StopRow) in batches and always closes
// the server-side scanner.
func (t *Table) Scan(ctx context.Context, opts ScanOptions) (results []*Result, err error) {
	batch := opts.BatchSize
	if batch <= 0 {
		batch = ScanBatchSize
	}
	id, err := t.openScanner(ctx, opts, batch)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := t.conn.client.ScannerClose(ctx, id); cerr != nil && err == nil {
			err = t.conn.remote("scannerClose", t.name, cerr)
		}
	}()

	for {
		size := batch
		if opts.Limit > 0 {
			rem := opts.Limit - len(results)
			if rem > int(batch) {
				rem = int(batch)
			}
			size = getQuerySize(batch, int32(rem))
			if size == 0 {
				break
			}
		}
		rows, err := t.conn.client.ScannerGetList(ctx, id, size)
		if err != nil {
			return nil, t.conn.remote("scannerGetList", t.name, err)
		}
		if len(rows) == 0 {
			break
		}
		for _, row := range rows {
			results = append(results, newResult(row, opts.Family))
		}
	}
	return results, nil
}

// openScanner opens the server-side scanner. Filtered scans go through
// scannerOpenWithScan.
func (t *Table) openScanner(ctx context.Context, opts ScanOptions, batch int32) (hbase.ScannerID, error) {
	if opts.Filter == "" {
		id, err := t.conn.client.ScannerOpenWithStop(ctx, []byte(t.name), []byte(opts.StartRow), []byte(opts.StopRow), toBytes(opts.Columns), nil)
		if err != nil {
			return 0, t.conn.remote("scannerOpenWithStop", t.name, err)
		}
		return id, nil
	}
	scan := &hbase.TScan{
		StartRow:     []byte(opts.StartRow),
		StopRow:      []byte(opts.StopRow),
		Columns:      toBytes(opts.Columns),
		Caching:      batch,
		FilterString: []byte(opts.Filter),
	}
	id, err := t.conn.client.ScannerOpenWithScan(ctx, []byte(t.name), scan, nil)
	if err != nil {
		return 0, t.conn.remote("scannerOpenWithScan", t.name, err)
	}
	return id, nil
}

func getQuerySize(batchSz, diff int32) int32 {
	if diff <= 0 {
		return 0
	}
	if batchSz < diff {
		return batchSz
	}
	return diff
}

func toBytes(ss []string) [][]byte {
	if len(ss) == 0 {
		return nil
	}
	out := make([][]byte, 0, len(ss))
	for _, s := range ss {
		out = append(out, []byte(s))
	}
	return out
}
