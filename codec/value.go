package codec

import (
	"fmt"
	"strconv"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindText
	KindInt64
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindText:
		return "text"
	case KindInt64:
		return "int64"
	case KindBool:
		return "bool"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a cell value: exactly one of text, 64-bit integer, boolean or
// null. The zero Value is Null.
type Value struct {
	kind Kind
	text string
	num  int64
	flag bool
}

func Text(s string) Value { return Value{kind: KindText, text: s} }
func Int64(n int64) Value { return Value{kind: KindInt64, num: n} }
func Bool(b bool) Value   { return Value{kind: KindBool, flag: b} }
func Null() Value         { return Value{} }

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsText returns the string held by a Text value.
func (v Value) AsText() (string, bool) { return v.text, v.kind == KindText }

// AsInt64 returns the integer held by an Int64 value.
func (v Value) AsInt64() (int64, bool) { return v.num, v.kind == KindInt64 }

// AsBool returns the boolean held by a Bool value.
func (v Value) AsBool() (bool, bool) { return v.flag, v.kind == KindBool }

// Interface returns the Go value held: string, int64, bool or nil.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindText:
		return v.text
	case KindInt64:
		return v.num
	case KindBool:
		return v.flag
	}
	return nil
}

func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindInt64:
		return strconv.FormatInt(v.num, 10)
	case KindBool:
		return strconv.FormatBool(v.flag)
	}
	return "<nil>"
}

// ValueOf converts a Go value into a Value. Strings and byte slices become
// Text, signed integers and unsigned integers up to 32 bits become
// Int64, bools become Bool and nil becomes Null. Anything else fails with
// ErrUnsupportedType.
func ValueOf(x interface{}) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case string:
		return Text(t), nil
	case []byte:
		return Text(string(t)), nil
	case bool:
		return Bool(t), nil
	case int:
		return Int64(int64(t)), nil
	case int8:
		return Int64(int64(t)), nil
	case int16:
		return Int64(int64(t)), nil
	case int32:
		return Int64(int64(t)), nil
	case int64:
		return Int64(t), nil
	case uint8:
		return Int64(int64(t)), nil
	case uint16:
		return Int64(int64(t)), nil
	case uint32:
		return Int64(int64(t)), nil
	}
	return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedType, x)
}
