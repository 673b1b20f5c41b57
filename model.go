package hbasemap

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/challenai/hbasemap/codec"
)

const (
	HBaseTagHint string = "hbase"
	ModelName    string = "Model"
)

// schema used to store struct field and column mapping information
type schema struct {
	fields []schemaField
	// model is the index of the embedded Model, or -1.
	model int
}

type schemaField struct {
	index  int
	column string
	kind   codec.Kind
}

var schemas sync.Map // reflect.Type -> *schema

// parse imported model so that we don't need to parse all the model fields everytime.
//
// A field tagged `hbase:"family,qualifier"` maps to family:qualifier, one
// tagged `hbase:"qualifier"` to the row's default family. Untagged fields
// and fields tagged "-" are ignored.
func registerModel(t reflect.Type) (*schema, error) {
	if s, ok := schemas.Load(t); ok {
		return s.(*schema), nil
	}
	schm := &schema{model: -1}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Name == ModelName && f.Anonymous && f.Type == reflect.TypeOf(Model{}) {
			schm.model = i
			continue
		}
		tag, ok := f.Tag.Lookup(HBaseTagHint)
		if !ok || tag == "-" || !f.IsExported() {
			continue
		}
		kind, err := fieldKind(f.Type)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t.Name(), f.Name, err)
		}
		parts := strings.SplitN(tag, ",", 2)
		column := parts[0]
		if len(parts) == 2 {
			column = parts[0] + familySeparator + parts[1]
		}
		if column == "" {
			return nil, newError(ErrValidation, "%s.%s has an empty hbase tag", t.Name(), f.Name)
		}
		schm.fields = append(schm.fields, schemaField{index: i, column: column, kind: kind})
	}
	s, _ := schemas.LoadOrStore(t, schm)
	return s.(*schema), nil
}

func fieldKind(t reflect.Type) (codec.Kind, error) {
	switch t.Kind() {
	case reflect.String:
		return codec.KindText, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return codec.KindInt64, nil
	case reflect.Bool:
		return codec.KindBool, nil
	}
	return codec.KindNull, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
}

func structValue(v interface{}, settable bool) (reflect.Value, error) {
	if v == nil {
		return reflect.Value{}, newError(ErrValidation, "can't use nil as a model")
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return reflect.Value{}, newError(ErrValidation, "can't use a nil pointer as a model")
		}
		rv = rv.Elem()
	} else if settable {
		return reflect.Value{}, newError(ErrValidation, "model must be a pointer to a struct, got %T", v)
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, newError(ErrValidation, "model must be a struct, got %T", v)
	}
	return rv, nil
}

// Marshal sets one column per tagged field of v, a struct or pointer to
// struct. A non-empty embedded Model.Rowkey becomes the row key.
func (r *Row) Marshal(v interface{}) error {
	rv, err := structValue(v, false)
	if err != nil {
		return err
	}
	schm, err := registerModel(rv.Type())
	if err != nil {
		return err
	}
	if schm.model >= 0 {
		if key := rv.Field(schm.model).Interface().(Model).Rowkey; key != "" {
			r.key = key
		}
	}
	for _, f := range schm.fields {
		field := rv.Field(f.index)
		var val codec.Value
		switch f.kind {
		case codec.KindText:
			val = codec.Text(field.String())
		case codec.KindBool:
			val = codec.Bool(field.Bool())
		case codec.KindInt64:
			if field.Kind() >= reflect.Uint8 && field.Kind() <= reflect.Uint32 {
				val = codec.Int64(int64(field.Uint()))
			} else {
				val = codec.Int64(field.Int())
			}
		}
		if err := r.SetValue(f.column, val); err != nil {
			return err
		}
	}
	return nil
}

// Unmarshal fills the tagged fields of v, a pointer to struct, from r.
// Fields whose column is absent keep their value.
func (r *Result) Unmarshal(v interface{}) error {
	rv, err := structValue(v, true)
	if err != nil {
		return err
	}
	schm, err := registerModel(rv.Type())
	if err != nil {
		return err
	}
	if schm.model >= 0 {
		rv.Field(schm.model).Set(reflect.ValueOf(Model{Rowkey: r.Key}))
	}
	for _, f := range schm.fields {
		val, err := r.Value(f.column, f.kind)
		if err != nil {
			return err
		}
		if val.IsNull() {
			continue
		}
		field := rv.Field(f.index)
		switch f.kind {
		case codec.KindText:
			s, _ := val.AsText()
			field.SetString(s)
		case codec.KindBool:
			b, _ := val.AsBool()
			field.SetBool(b)
		case codec.KindInt64:
			n, _ := val.AsInt64()
			if err := setInt(field, n); err != nil {
				return fmt.Errorf("column %s: %w", f.column, err)
			}
		}
	}
	return nil
}

func setInt(field reflect.Value, n int64) error {
	if field.Kind() >= reflect.Uint8 && field.Kind() <= reflect.Uint32 {
		if n < 0 || field.OverflowUint(uint64(n)) {
			return errors.New("value overflows " + field.Type().String())
		}
		field.SetUint(uint64(n))
		return nil
	}
	if field.OverflowInt(n) {
		return errors.New("value overflows " + field.Type().String())
	}
	field.SetInt(n)
	return nil
}
