package hbase

import (
	"context"
	"fmt"

	"github.com/apache/thrift/lib/go/thrift"
)

// field is one entry of a struct being written to the wire.
type field struct {
	name  string
	typ   thrift.TType
	id    int16
	skip  bool
	write func(ctx context.Context, p thrift.TProtocol) error
}

func writeStruct(ctx context.Context, p thrift.TProtocol, name string, fields ...field) error {
	if err := p.WriteStructBegin(ctx, name); err != nil {
		return thrift.PrependError(fmt.Sprintf("%s write struct begin error: ", name), err)
	}
	for _, f := range fields {
		if f.skip {
			continue
		}
		if err := p.WriteFieldBegin(ctx, f.name, f.typ, f.id); err != nil {
			return thrift.PrependError(fmt.Sprintf("write field begin error %d:%s: ", f.id, f.name), err)
		}
		if err := f.write(ctx, p); err != nil {
			return thrift.PrependError(fmt.Sprintf("%s.%s (%d) field write error: ", name, f.name, f.id), err)
		}
		if err := p.WriteFieldEnd(ctx); err != nil {
			return thrift.PrependError(fmt.Sprintf("write field end error %d:%s: ", f.id, f.name), err)
		}
	}
	if err := p.WriteFieldStop(ctx); err != nil {
		return thrift.PrependError("write field stop error: ", err)
	}
	if err := p.WriteStructEnd(ctx); err != nil {
		return thrift.PrependError("write struct stop error: ", err)
	}
	return nil
}

// readStruct walks the fields of a struct on the wire and hands each one to
// fn. Fields fn does not claim are skipped.
func readStruct(ctx context.Context, p thrift.TProtocol, fn func(id int16, typ thrift.TType) (bool, error)) error {
	if _, err := p.ReadStructBegin(ctx); err != nil {
		return thrift.PrependError("read struct begin error: ", err)
	}
	for {
		_, typ, id, err := p.ReadFieldBegin(ctx)
		if err != nil {
			return thrift.PrependError(fmt.Sprintf("field %d read error: ", id), err)
		}
		if typ == thrift.STOP {
			break
		}
		handled := false
		if fn != nil {
			if handled, err = fn(id, typ); err != nil {
				return err
			}
		}
		if !handled {
			if err := p.Skip(ctx, typ); err != nil {
				return err
			}
		}
		if err := p.ReadFieldEnd(ctx); err != nil {
			return err
		}
	}
	if err := p.ReadStructEnd(ctx); err != nil {
		return thrift.PrependError("read struct end error: ", err)
	}
	return nil
}

func binaryField(name string, id int16, b []byte) field {
	return field{name: name, typ: thrift.STRING, id: id, write: func(ctx context.Context, p thrift.TProtocol) error {
		return p.WriteBinary(ctx, b)
	}}
}

func stringField(name string, id int16, s string) field {
	return field{name: name, typ: thrift.STRING, id: id, write: func(ctx context.Context, p thrift.TProtocol) error {
		return p.WriteString(ctx, s)
	}}
}

func boolField(name string, id int16, b bool) field {
	return field{name: name, typ: thrift.BOOL, id: id, write: func(ctx context.Context, p thrift.TProtocol) error {
		return p.WriteBool(ctx, b)
	}}
}

func i32Field(name string, id int16, n int32) field {
	return field{name: name, typ: thrift.I32, id: id, write: func(ctx context.Context, p thrift.TProtocol) error {
		return p.WriteI32(ctx, n)
	}}
}

func i64Field(name string, id int16, n int64) field {
	return field{name: name, typ: thrift.I64, id: id, write: func(ctx context.Context, p thrift.TProtocol) error {
		return p.WriteI64(ctx, n)
	}}
}

// structField writes s; callers pass skip for absent optional structs.
func structField(name string, id int16, s thrift.TStruct, skip bool) field {
	return field{name: name, typ: thrift.STRUCT, id: id, skip: skip, write: func(ctx context.Context, p thrift.TProtocol) error {
		return s.Write(ctx, p)
	}}
}

func binaryListField(name string, id int16, list [][]byte) field {
	return field{name: name, typ: thrift.LIST, id: id, write: func(ctx context.Context, p thrift.TProtocol) error {
		if err := p.WriteListBegin(ctx, thrift.STRING, len(list)); err != nil {
			return thrift.PrependError("error writing list begin: ", err)
		}
		for _, b := range list {
			if err := p.WriteBinary(ctx, b); err != nil {
				return err
			}
		}
		return p.WriteListEnd(ctx)
	}}
}

func structListField(name string, id int16, list []thrift.TStruct) field {
	return field{name: name, typ: thrift.LIST, id: id, write: func(ctx context.Context, p thrift.TProtocol) error {
		if err := p.WriteListBegin(ctx, thrift.STRUCT, len(list)); err != nil {
			return thrift.PrependError("error writing list begin: ", err)
		}
		for _, s := range list {
			if err := s.Write(ctx, p); err != nil {
				return err
			}
		}
		return p.WriteListEnd(ctx)
	}}
}

// attributesField writes the map<Text, Text> attributes argument most
// mutation and read calls carry.
func attributesField(name string, id int16, attrs map[string][]byte) field {
	return field{name: name, typ: thrift.MAP, id: id, write: func(ctx context.Context, p thrift.TProtocol) error {
		if err := p.WriteMapBegin(ctx, thrift.STRING, thrift.STRING, len(attrs)); err != nil {
			return thrift.PrependError("error writing map begin: ", err)
		}
		for k, v := range attrs {
			if err := p.WriteString(ctx, k); err != nil {
				return err
			}
			if err := p.WriteBinary(ctx, v); err != nil {
				return err
			}
		}
		return p.WriteMapEnd(ctx)
	}}
}

func readBinaryList(ctx context.Context, p thrift.TProtocol) ([][]byte, error) {
	_, size, err := p.ReadListBegin(ctx)
	if err != nil {
		return nil, thrift.PrependError("error reading list begin: ", err)
	}
	list := make([][]byte, 0, size)
	for i := 0; i < size; i++ {
		b, err := p.ReadBinary(ctx)
		if err != nil {
			return nil, thrift.PrependError(fmt.Sprintf("error reading list element %d: ", i), err)
		}
		list = append(list, b)
	}
	if err := p.ReadListEnd(ctx); err != nil {
		return nil, thrift.PrependError("error reading list end: ", err)
	}
	return list, nil
}

func readRowResults(ctx context.Context, p thrift.TProtocol) ([]*TRowResult, error) {
	_, size, err := p.ReadListBegin(ctx)
	if err != nil {
		return nil, thrift.PrependError("error reading list begin: ", err)
	}
	list := make([]*TRowResult, 0, size)
	for i := 0; i < size; i++ {
		r := &TRowResult{}
		if err := r.Read(ctx, p); err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	if err := p.ReadListEnd(ctx); err != nil {
		return nil, thrift.PrependError("error reading list end: ", err)
	}
	return list, nil
}
