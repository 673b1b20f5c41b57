// Package hbase is a client stub for the HBase Thrift (v1) gateway service.
// It covers the table administration, mutation, get and scanner calls of the
// Hbase service and speaks any thrift.TProtocol the caller supplies.
package hbase

import (
	"context"
	"fmt"

	"github.com/apache/thrift/lib/go/thrift"
)

// ScannerID identifies an open server-side scanner.
type ScannerID = int32

// TCell holds a value and the timestamp it was written at.
type TCell struct {
	Value     []byte
	Timestamp int64
}

func (c *TCell) Write(ctx context.Context, p thrift.TProtocol) error {
	return writeStruct(ctx, p, "TCell",
		binaryField("value", 1, c.Value),
		i64Field("timestamp", 2, c.Timestamp),
	)
}

func (c *TCell) Read(ctx context.Context, p thrift.TProtocol) error {
	return readStruct(ctx, p, func(id int16, typ thrift.TType) (bool, error) {
		var err error
		switch {
		case id == 1 && typ == thrift.STRING:
			c.Value, err = p.ReadBinary(ctx)
		case id == 2 && typ == thrift.I64:
			c.Timestamp, err = p.ReadI64(ctx)
		default:
			return false, nil
		}
		return true, err
	})
}

// TColumn is a column name paired with its cell, used by sorted results.
type TColumn struct {
	ColumnName []byte
	Cell       *TCell
}

func (c *TColumn) Write(ctx context.Context, p thrift.TProtocol) error {
	cell := c.Cell
	return writeStruct(ctx, p, "TColumn",
		binaryField("columnName", 1, c.ColumnName),
		structField("cell", 2, cell, cell == nil),
	)
}

func (c *TColumn) Read(ctx context.Context, p thrift.TProtocol) error {
	return readStruct(ctx, p, func(id int16, typ thrift.TType) (bool, error) {
		var err error
		switch {
		case id == 1 && typ == thrift.STRING:
			c.ColumnName, err = p.ReadBinary(ctx)
		case id == 2 && typ == thrift.STRUCT:
			c.Cell = &TCell{}
			err = c.Cell.Read(ctx, p)
		default:
			return false, nil
		}
		return true, err
	})
}

// TRowResult is one row returned by get and scanner calls. Columns is keyed
// by "family:qualifier".
type TRowResult struct {
	Row           []byte
	Columns       map[string]*TCell
	SortedColumns []*TColumn
}

func (r *TRowResult) Write(ctx context.Context, p thrift.TProtocol) error {
	sorted := make([]thrift.TStruct, 0, len(r.SortedColumns))
	for _, c := range r.SortedColumns {
		sorted = append(sorted, c)
	}
	columns := field{name: "columns", typ: thrift.MAP, id: 2, skip: r.Columns == nil,
		write: func(ctx context.Context, p thrift.TProtocol) error {
			if err := p.WriteMapBegin(ctx, thrift.STRING, thrift.STRUCT, len(r.Columns)); err != nil {
				return thrift.PrependError("error writing map begin: ", err)
			}
			for k, v := range r.Columns {
				if err := p.WriteString(ctx, k); err != nil {
					return err
				}
				if err := v.Write(ctx, p); err != nil {
					return err
				}
			}
			return p.WriteMapEnd(ctx)
		}}
	sortedColumns := structListField("sortedColumns", 3, sorted)
	sortedColumns.skip = r.SortedColumns == nil
	return writeStruct(ctx, p, "TRowResult", binaryField("row", 1, r.Row), columns, sortedColumns)
}

func (r *TRowResult) Read(ctx context.Context, p thrift.TProtocol) error {
	return readStruct(ctx, p, func(id int16, typ thrift.TType) (bool, error) {
		switch {
		case id == 1 && typ == thrift.STRING:
			var err error
			r.Row, err = p.ReadBinary(ctx)
			return true, err
		case id == 2 && typ == thrift.MAP:
			return true, r.readColumns(ctx, p)
		case id == 3 && typ == thrift.LIST:
			return true, r.readSortedColumns(ctx, p)
		}
		return false, nil
	})
}

func (r *TRowResult) readColumns(ctx context.Context, p thrift.TProtocol) error {
	_, _, size, err := p.ReadMapBegin(ctx)
	if err != nil {
		return thrift.PrependError("error reading map begin: ", err)
	}
	r.Columns = make(map[string]*TCell, size)
	for i := 0; i < size; i++ {
		k, err := p.ReadString(ctx)
		if err != nil {
			return thrift.PrependError("error reading map key: ", err)
		}
		cell := &TCell{}
		if err := cell.Read(ctx, p); err != nil {
			return err
		}
		r.Columns[k] = cell
	}
	return p.ReadMapEnd(ctx)
}

func (r *TRowResult) readSortedColumns(ctx context.Context, p thrift.TProtocol) error {
	_, size, err := p.ReadListBegin(ctx)
	if err != nil {
		return thrift.PrependError("error reading list begin: ", err)
	}
	r.SortedColumns = make([]*TColumn, 0, size)
	for i := 0; i < size; i++ {
		c := &TColumn{}
		if err := c.Read(ctx, p); err != nil {
			return err
		}
		r.SortedColumns = append(r.SortedColumns, c)
	}
	return p.ReadListEnd(ctx)
}

// ColumnDescriptor describes a column family at table creation time. Name
// must end with ':'.
type ColumnDescriptor struct {
	Name                  []byte
	MaxVersions           int32
	Compression           string
	InMemory              bool
	BloomFilterType       string
	BloomFilterVectorSize int32
	BloomFilterNbHashes   int32
	BlockCacheEnabled     bool
	TimeToLive            int32
}

// NewColumnDescriptor returns a descriptor carrying the service defaults.
func NewColumnDescriptor() *ColumnDescriptor {
	return &ColumnDescriptor{
		MaxVersions:     3,
		Compression:     "NONE",
		BloomFilterType: "NONE",
		TimeToLive:      0x7fffffff,
	}
}

func (d *ColumnDescriptor) Write(ctx context.Context, p thrift.TProtocol) error {
	return writeStruct(ctx, p, "ColumnDescriptor",
		binaryField("name", 1, d.Name),
		i32Field("maxVersions", 2, d.MaxVersions),
		stringField("compression", 3, d.Compression),
		boolField("inMemory", 4, d.InMemory),
		stringField("bloomFilterType", 5, d.BloomFilterType),
		i32Field("bloomFilterVectorSize", 6, d.BloomFilterVectorSize),
		i32Field("bloomFilterNbHashes", 7, d.BloomFilterNbHashes),
		boolField("blockCacheEnabled", 8, d.BlockCacheEnabled),
		i32Field("timeToLive", 9, d.TimeToLive),
	)
}

func (d *ColumnDescriptor) Read(ctx context.Context, p thrift.TProtocol) error {
	return readStruct(ctx, p, func(id int16, typ thrift.TType) (bool, error) {
		var err error
		switch {
		case id == 1 && typ == thrift.STRING:
			d.Name, err = p.ReadBinary(ctx)
		case id == 2 && typ == thrift.I32:
			d.MaxVersions, err = p.ReadI32(ctx)
		case id == 3 && typ == thrift.STRING:
			d.Compression, err = p.ReadString(ctx)
		case id == 4 && typ == thrift.BOOL:
			d.InMemory, err = p.ReadBool(ctx)
		case id == 5 && typ == thrift.STRING:
			d.BloomFilterType, err = p.ReadString(ctx)
		case id == 6 && typ == thrift.I32:
			d.BloomFilterVectorSize, err = p.ReadI32(ctx)
		case id == 7 && typ == thrift.I32:
			d.BloomFilterNbHashes, err = p.ReadI32(ctx)
		case id == 8 && typ == thrift.BOOL:
			d.BlockCacheEnabled, err = p.ReadBool(ctx)
		case id == 9 && typ == thrift.I32:
			d.TimeToLive, err = p.ReadI32(ctx)
		default:
			return false, nil
		}
		return true, err
	})
}

// Mutation sets or deletes one column of a row.
type Mutation struct {
	IsDelete   bool
	Column     []byte
	Value      []byte
	WriteToWAL bool
}

// NewMutation returns a put mutation that is written to the WAL.
func NewMutation() *Mutation {
	return &Mutation{WriteToWAL: true}
}

func (m *Mutation) Write(ctx context.Context, p thrift.TProtocol) error {
	return writeStruct(ctx, p, "Mutation",
		boolField("isDelete", 1, m.IsDelete),
		binaryField("column", 2, m.Column),
		binaryField("value", 3, m.Value),
		boolField("writeToWAL", 4, m.WriteToWAL),
	)
}

func (m *Mutation) Read(ctx context.Context, p thrift.TProtocol) error {
	return readStruct(ctx, p, func(id int16, typ thrift.TType) (bool, error) {
		var err error
		switch {
		case id == 1 && typ == thrift.BOOL:
			m.IsDelete, err = p.ReadBool(ctx)
		case id == 2 && typ == thrift.STRING:
			m.Column, err = p.ReadBinary(ctx)
		case id == 3 && typ == thrift.STRING:
			m.Value, err = p.ReadBinary(ctx)
		case id == 4 && typ == thrift.BOOL:
			m.WriteToWAL, err = p.ReadBool(ctx)
		default:
			return false, nil
		}
		return true, err
	})
}

// TScan configures a scanner opened with scannerOpenWithScan. Nil and zero
// fields are not sent.
type TScan struct {
	StartRow     []byte
	StopRow      []byte
	Columns      [][]byte
	Caching      int32
	FilterString []byte
}

func (s *TScan) Write(ctx context.Context, p thrift.TProtocol) error {
	start := binaryField("startRow", 1, s.StartRow)
	start.skip = s.StartRow == nil
	stop := binaryField("stopRow", 2, s.StopRow)
	stop.skip = s.StopRow == nil
	columns := binaryListField("columns", 4, s.Columns)
	columns.skip = s.Columns == nil
	caching := i32Field("caching", 5, s.Caching)
	caching.skip = s.Caching == 0
	filter := binaryField("filterString", 6, s.FilterString)
	filter.skip = s.FilterString == nil
	return writeStruct(ctx, p, "TScan", start, stop, columns, caching, filter)
}

func (s *TScan) Read(ctx context.Context, p thrift.TProtocol) error {
	return readStruct(ctx, p, func(id int16, typ thrift.TType) (bool, error) {
		var err error
		switch {
		case id == 1 && typ == thrift.STRING:
			s.StartRow, err = p.ReadBinary(ctx)
		case id == 2 && typ == thrift.STRING:
			s.StopRow, err = p.ReadBinary(ctx)
		case id == 4 && typ == thrift.LIST:
			s.Columns, err = readBinaryList(ctx, p)
		case id == 5 && typ == thrift.I32:
			s.Caching, err = p.ReadI32(ctx)
		case id == 6 && typ == thrift.STRING:
			s.FilterString, err = p.ReadBinary(ctx)
		default:
			return false, nil
		}
		return true, err
	})
}

// IOError is raised by the gateway for any failure talking to HBase.
type IOError struct {
	Message string
}

// IllegalArgument is raised for malformed arguments such as an unknown family.
type IllegalArgument struct {
	Message string
}

// AlreadyExists is raised by createTable when the table exists.
type AlreadyExists struct {
	Message string
}

func (e *IOError) Error() string         { return fmt.Sprintf("IOError(%+v)", *e) }
func (e *IllegalArgument) Error() string { return fmt.Sprintf("IllegalArgument(%+v)", *e) }
func (e *AlreadyExists) Error() string   { return fmt.Sprintf("AlreadyExists(%+v)", *e) }

func (e *IOError) Write(ctx context.Context, p thrift.TProtocol) error {
	return writeStruct(ctx, p, "IOError", stringField("message", 1, e.Message))
}

func (e *IOError) Read(ctx context.Context, p thrift.TProtocol) error {
	return readMessage(ctx, p, &e.Message)
}

func (e *IllegalArgument) Write(ctx context.Context, p thrift.TProtocol) error {
	return writeStruct(ctx, p, "IllegalArgument", stringField("message", 1, e.Message))
}

func (e *IllegalArgument) Read(ctx context.Context, p thrift.TProtocol) error {
	return readMessage(ctx, p, &e.Message)
}

func (e *AlreadyExists) Write(ctx context.Context, p thrift.TProtocol) error {
	return writeStruct(ctx, p, "AlreadyExists", stringField("message", 1, e.Message))
}

func (e *AlreadyExists) Read(ctx context.Context, p thrift.TProtocol) error {
	return readMessage(ctx, p, &e.Message)
}

func readMessage(ctx context.Context, p thrift.TProtocol, msg *string) error {
	return readStruct(ctx, p, func(id int16, typ thrift.TType) (bool, error) {
		if id != 1 || typ != thrift.STRING {
			return false, nil
		}
		var err error
		*msg, err = p.ReadString(ctx)
		return true, err
	})
}
