package hbase

import (
	"context"

	"github.com/apache/thrift/lib/go/thrift"
)

// Hbase is the subset of the gateway service this package implements.
type Hbase interface {
	GetTableNames(ctx context.Context) ([][]byte, error)
	CreateTable(ctx context.Context, tableName []byte, columnFamilies []*ColumnDescriptor) error
	DeleteTable(ctx context.Context, tableName []byte) error
	EnableTable(ctx context.Context, tableName []byte) error
	DisableTable(ctx context.Context, tableName []byte) error
	IsTableEnabled(ctx context.Context, tableName []byte) (bool, error)
	GetRow(ctx context.Context, tableName, row []byte, attributes map[string][]byte) ([]*TRowResult, error)
	GetRowWithColumns(ctx context.Context, tableName, row []byte, columns [][]byte, attributes map[string][]byte) ([]*TRowResult, error)
	MutateRow(ctx context.Context, tableName, row []byte, mutations []*Mutation, attributes map[string][]byte) error
	MutateRowTs(ctx context.Context, tableName, row []byte, mutations []*Mutation, timestamp int64, attributes map[string][]byte) error
	DeleteAllRow(ctx context.Context, tableName, row []byte, attributes map[string][]byte) error
	ScannerOpenWithStop(ctx context.Context, tableName, startRow, stopRow []byte, columns [][]byte, attributes map[string][]byte) (ScannerID, error)
	ScannerOpenWithScan(ctx context.Context, tableName []byte, scan *TScan, attributes map[string][]byte) (ScannerID, error)
	ScannerGetList(ctx context.Context, id ScannerID, nbRows int32) ([]*TRowResult, error)
	ScannerClose(ctx context.Context, id ScannerID) error
}

// HbaseClient issues Hbase service calls over a thrift.TClient.
type HbaseClient struct {
	c    thrift.TClient
	meta thrift.ResponseMeta
}

var _ Hbase = (*HbaseClient)(nil)

func NewHbaseClientFactory(t thrift.TTransport, f thrift.TProtocolFactory) *HbaseClient {
	return &HbaseClient{c: thrift.NewTStandardClient(f.GetProtocol(t), f.GetProtocol(t))}
}

func NewHbaseClientProtocol(t thrift.TTransport, iprot thrift.TProtocol, oprot thrift.TProtocol) *HbaseClient {
	return &HbaseClient{c: thrift.NewTStandardClient(iprot, oprot)}
}

func NewHbaseClient(c thrift.TClient) *HbaseClient {
	return &HbaseClient{c: c}
}

func (p *HbaseClient) Client_() thrift.TClient {
	return p.c
}

func (p *HbaseClient) LastResponseMeta_() thrift.ResponseMeta {
	return p.meta
}

func (p *HbaseClient) call(ctx context.Context, method string, result thrift.TStruct, fields ...field) error {
	meta, err := p.c.Call(ctx, method, &callArgs{name: method + "_args", fields: fields}, result)
	p.meta = meta
	return err
}

func (p *HbaseClient) GetTableNames(ctx context.Context) ([][]byte, error) {
	var r binaryListResult
	if err := p.call(ctx, "getTableNames", &r); err != nil {
		return nil, err
	}
	if err := r.err(); err != nil {
		return nil, err
	}
	return r.Success, nil
}

func (p *HbaseClient) CreateTable(ctx context.Context, tableName []byte, columnFamilies []*ColumnDescriptor) error {
	families := make([]thrift.TStruct, 0, len(columnFamilies))
	for _, d := range columnFamilies {
		families = append(families, d)
	}
	var r voidResult
	if err := p.call(ctx, "createTable", &r,
		binaryField("tableName", 1, tableName),
		structListField("columnFamilies", 2, families),
	); err != nil {
		return err
	}
	return r.err()
}

func (p *HbaseClient) DeleteTable(ctx context.Context, tableName []byte) error {
	return p.tableCall(ctx, "deleteTable", tableName)
}

func (p *HbaseClient) EnableTable(ctx context.Context, tableName []byte) error {
	return p.tableCall(ctx, "enableTable", tableName)
}

func (p *HbaseClient) DisableTable(ctx context.Context, tableName []byte) error {
	return p.tableCall(ctx, "disableTable", tableName)
}

func (p *HbaseClient) tableCall(ctx context.Context, method string, tableName []byte) error {
	var r voidResult
	if err := p.call(ctx, method, &r, binaryField("tableName", 1, tableName)); err != nil {
		return err
	}
	return r.err()
}

func (p *HbaseClient) IsTableEnabled(ctx context.Context, tableName []byte) (bool, error) {
	var r boolResult
	if err := p.call(ctx, "isTableEnabled", &r, binaryField("tableName", 1, tableName)); err != nil {
		return false, err
	}
	if err := r.err(); err != nil {
		return false, err
	}
	if r.Success == nil {
		return false, thrift.NewTApplicationException(thrift.MISSING_RESULT, "isTableEnabled failed: unknown result")
	}
	return *r.Success, nil
}

func (p *HbaseClient) GetRow(ctx context.Context, tableName, row []byte, attributes map[string][]byte) ([]*TRowResult, error) {
	var r rowResultsResult
	if err := p.call(ctx, "getRow", &r,
		binaryField("tableName", 1, tableName),
		binaryField("row", 2, row),
		attributesField("attributes", 3, attributes),
	); err != nil {
		return nil, err
	}
	if err := r.err(); err != nil {
		return nil, err
	}
	return r.Success, nil
}

func (p *HbaseClient) GetRowWithColumns(ctx context.Context, tableName, row []byte, columns [][]byte, attributes map[string][]byte) ([]*TRowResult, error) {
	var r rowResultsResult
	if err := p.call(ctx, "getRowWithColumns", &r,
		binaryField("tableName", 1, tableName),
		binaryField("row", 2, row),
		binaryListField("columns", 3, columns),
		attributesField("attributes", 4, attributes),
	); err != nil {
		return nil, err
	}
	if err := r.err(); err != nil {
		return nil, err
	}
	return r.Success, nil
}

func (p *HbaseClient) MutateRow(ctx context.Context, tableName, row []byte, mutations []*Mutation, attributes map[string][]byte) error {
	var r voidResult
	if err := p.call(ctx, "mutateRow", &r,
		binaryField("tableName", 1, tableName),
		binaryField("row", 2, row),
		structListField("mutations", 3, mutationStructs(mutations)),
		attributesField("attributes", 4, attributes),
	); err != nil {
		return err
	}
	return r.err()
}

func (p *HbaseClient) MutateRowTs(ctx context.Context, tableName, row []byte, mutations []*Mutation, timestamp int64, attributes map[string][]byte) error {
	var r voidResult
	if err := p.call(ctx, "mutateRowTs", &r,
		binaryField("tableName", 1, tableName),
		binaryField("row", 2, row),
		structListField("mutations", 3, mutationStructs(mutations)),
		i64Field("timestamp", 4, timestamp),
		attributesField("attributes", 5, attributes),
	); err != nil {
		return err
	}
	return r.err()
}

func (p *HbaseClient) DeleteAllRow(ctx context.Context, tableName, row []byte, attributes map[string][]byte) error {
	var r voidResult
	if err := p.call(ctx, "deleteAllRow", &r,
		binaryField("tableName", 1, tableName),
		binaryField("row", 2, row),
		attributesField("attributes", 3, attributes),
	); err != nil {
		return err
	}
	return r.err()
}

func (p *HbaseClient) ScannerOpenWithStop(ctx context.Context, tableName, startRow, stopRow []byte, columns [][]byte, attributes map[string][]byte) (ScannerID, error) {
	var r scannerIDResult
	if err := p.call(ctx, "scannerOpenWithStop", &r,
		binaryField("tableName", 1, tableName),
		binaryField("startRow", 2, startRow),
		binaryField("stopRow", 3, stopRow),
		binaryListField("columns", 4, columns),
		attributesField("attributes", 5, attributes),
	); err != nil {
		return 0, err
	}
	if err := r.err(); err != nil {
		return 0, err
	}
	if r.Success == nil {
		return 0, thrift.NewTApplicationException(thrift.MISSING_RESULT, "scannerOpenWithStop failed: unknown result")
	}
	return *r.Success, nil
}

func (p *HbaseClient) ScannerOpenWithScan(ctx context.Context, tableName []byte, scan *TScan, attributes map[string][]byte) (ScannerID, error) {
	var r scannerIDResult
	if err := p.call(ctx, "scannerOpenWithScan", &r,
		binaryField("tableName", 1, tableName),
		structField("scan", 2, scan, scan == nil),
		attributesField("attributes", 3, attributes),
	); err != nil {
		return 0, err
	}
	if err := r.err(); err != nil {
		return 0, err
	}
	if r.Success == nil {
		return 0, thrift.NewTApplicationException(thrift.MISSING_RESULT, "scannerOpenWithScan failed: unknown result")
	}
	return *r.Success, nil
}

func (p *HbaseClient) ScannerGetList(ctx context.Context, id ScannerID, nbRows int32) ([]*TRowResult, error) {
	var r rowResultsResult
	if err := p.call(ctx, "scannerGetList", &r,
		i32Field("id", 1, id),
		i32Field("nbRows", 2, nbRows),
	); err != nil {
		return nil, err
	}
	if err := r.err(); err != nil {
		return nil, err
	}
	return r.Success, nil
}

func (p *HbaseClient) ScannerClose(ctx context.Context, id ScannerID) error {
	var r voidResult
	if err := p.call(ctx, "scannerClose", &r, i32Field("id", 1, id)); err != nil {
		return err
	}
	return r.err()
}

func mutationStructs(mutations []*Mutation) []thrift.TStruct {
	out := make([]thrift.TStruct, 0, len(mutations))
	for _, m := range mutations {
		out = append(out, m)
	}
	return out
}

// callArgs is the argument struct of a single call. It is only ever written
// by the client; reading skips every field.
type callArgs struct {
	name   string
	fields []field
}

func (a *callArgs) Write(ctx context.Context, p thrift.TProtocol) error {
	return writeStruct(ctx, p, a.name, a.fields...)
}

func (a *callArgs) Read(ctx context.Context, p thrift.TProtocol) error {
	return readStruct(ctx, p, nil)
}

// exceptions are the declared throws shared by every Hbase call: field 1 is
// always IOError, 2 IllegalArgument and 3 AlreadyExists.
type exceptions struct {
	IO    *IOError
	IA    *IllegalArgument
	Exist *AlreadyExists
}

func (e *exceptions) readException(ctx context.Context, p thrift.TProtocol, id int16, typ thrift.TType) (bool, error) {
	if typ != thrift.STRUCT {
		return false, nil
	}
	switch id {
	case 1:
		e.IO = &IOError{}
		return true, e.IO.Read(ctx, p)
	case 2:
		e.IA = &IllegalArgument{}
		return true, e.IA.Read(ctx, p)
	case 3:
		e.Exist = &AlreadyExists{}
		return true, e.Exist.Read(ctx, p)
	}
	return false, nil
}

func (e *exceptions) fields() []field {
	return []field{
		structField("io", 1, e.IO, e.IO == nil),
		structField("ia", 2, e.IA, e.IA == nil),
		structField("exist", 3, e.Exist, e.Exist == nil),
	}
}

func (e *exceptions) err() error {
	switch {
	case e.IO != nil:
		return e.IO
	case e.IA != nil:
		return e.IA
	case e.Exist != nil:
		return e.Exist
	}
	return nil
}

type voidResult struct {
	exceptions
}

func (r *voidResult) Read(ctx context.Context, p thrift.TProtocol) error {
	return readStruct(ctx, p, func(id int16, typ thrift.TType) (bool, error) {
		return r.readException(ctx, p, id, typ)
	})
}

func (r *voidResult) Write(ctx context.Context, p thrift.TProtocol) error {
	return writeStruct(ctx, p, "result", r.fields()...)
}

type boolResult struct {
	Success *bool
	exceptions
}

func (r *boolResult) Read(ctx context.Context, p thrift.TProtocol) error {
	return readStruct(ctx, p, func(id int16, typ thrift.TType) (bool, error) {
		if id == 0 && typ == thrift.BOOL {
			v, err := p.ReadBool(ctx)
			r.Success = &v
			return true, err
		}
		return r.readException(ctx, p, id, typ)
	})
}

func (r *boolResult) Write(ctx context.Context, p thrift.TProtocol) error {
	success := boolField("success", 0, r.Success != nil && *r.Success)
	success.skip = r.Success == nil
	return writeStruct(ctx, p, "result", append([]field{success}, r.fields()...)...)
}

type scannerIDResult struct {
	Success *ScannerID
	exceptions
}

func (r *scannerIDResult) Read(ctx context.Context, p thrift.TProtocol) error {
	return readStruct(ctx, p, func(id int16, typ thrift.TType) (bool, error) {
		if id == 0 && typ == thrift.I32 {
			v, err := p.ReadI32(ctx)
			r.Success = &v
			return true, err
		}
		return r.readException(ctx, p, id, typ)
	})
}

func (r *scannerIDResult) Write(ctx context.Context, p thrift.TProtocol) error {
	var id ScannerID
	if r.Success != nil {
		id = *r.Success
	}
	success := i32Field("success", 0, id)
	success.skip = r.Success == nil
	return writeStruct(ctx, p, "result", append([]field{success}, r.fields()...)...)
}

type binaryListResult struct {
	Success [][]byte
	exceptions
}

func (r *binaryListResult) Read(ctx context.Context, p thrift.TProtocol) error {
	return readStruct(ctx, p, func(id int16, typ thrift.TType) (bool, error) {
		if id == 0 && typ == thrift.LIST {
			var err error
			r.Success, err = readBinaryList(ctx, p)
			return true, err
		}
		return r.readException(ctx, p, id, typ)
	})
}

func (r *binaryListResult) Write(ctx context.Context, p thrift.TProtocol) error {
	success := binaryListField("success", 0, r.Success)
	success.skip = r.Success == nil
	return writeStruct(ctx, p, "result", append([]field{success}, r.fields()...)...)
}

type rowResultsResult struct {
	Success []*TRowResult
	exceptions
}

func (r *rowResultsResult) Read(ctx context.Context, p thrift.TProtocol) error {
	return readStruct(ctx, p, func(id int16, typ thrift.TType) (bool, error) {
		if id == 0 && typ == thrift.LIST {
			var err error
			r.Success, err = readRowResults(ctx, p)
			return true, err
		}
		return r.readException(ctx, p, id, typ)
	})
}

func (r *rowResultsResult) Write(ctx context.Context, p thrift.TProtocol) error {
	rows := make([]thrift.TStruct, 0, len(r.Success))
	for _, row := range r.Success {
		rows = append(rows, row)
	}
	success := structListField("success", 0, rows)
	success.skip = r.Success == nil
	return writeStruct(ctx, p, "result", append([]field{success}, r.fields()...)...)
}
