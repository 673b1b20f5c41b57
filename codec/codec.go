// Package codec converts the scalar values a row can hold to and from the
// bytes stored in a cell.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedType is returned for values outside Text, Int64, Bool and Null.
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrMalformed is returned when stored bytes cannot be decoded as the requested kind.
	ErrMalformed = errors.New("malformed value")
)

// Codec encodes and decodes the individual scalar kinds.
type Codec interface {
	EncodeInt(int64) []byte
	DecodeInt([]byte) (int64, error)
	EncodeBool(bool) []byte
	DecodeBool([]byte) (bool, error)
	EncodeString(string) []byte
	DecodeString([]byte) (string, error)
}

// DefaultCodec stores integers as 8 big-endian bytes, booleans as the text
// "true"/"false" and strings as their raw bytes.
type DefaultCodec struct{}

var _ Codec = (*DefaultCodec)(nil)

func (*DefaultCodec) EncodeInt(n int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(n))
	return b
}

func (*DefaultCodec) DecodeInt(b []byte) (int64, error) {
	if len(b) != 8 {
		return 0, fmt.Errorf("%w: int64 needs 8 bytes, got %d", ErrMalformed, len(b))
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

func (*DefaultCodec) EncodeBool(b bool) []byte {
	if b {
		return []byte("true")
	}
	return []byte("false")
}

func (*DefaultCodec) DecodeBool(b []byte) (bool, error) {
	switch string(b) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: invalid bool encoding %q", ErrMalformed, b)
}

func (*DefaultCodec) EncodeString(s string) []byte {
	return []byte(s)
}

func (*DefaultCodec) DecodeString(b []byte) (string, error) {
	return string(b), nil
}

var std = &DefaultCodec{}

// Encode returns the stored form of v. Null encodes to nil; callers decide
// whether a nil value is transmitted at all.
func Encode(v Value) ([]byte, error) {
	switch v.kind {
	case KindNull:
		return nil, nil
	case KindText:
		return std.EncodeString(v.text), nil
	case KindInt64:
		return std.EncodeInt(v.num), nil
	case KindBool:
		return std.EncodeBool(v.flag), nil
	}
	return nil, fmt.Errorf("%w: kind %d", ErrUnsupportedType, v.kind)
}

// Decode is the inverse of Encode for the given kind. A nil slice decodes
// to Null regardless of kind.
func Decode(kind Kind, b []byte) (Value, error) {
	if b == nil {
		return Null(), nil
	}
	switch kind {
	case KindNull:
		return Null(), nil
	case KindText:
		s, err := std.DecodeString(b)
		return Text(s), err
	case KindInt64:
		n, err := std.DecodeInt(b)
		if err != nil {
			return Value{}, err
		}
		return Int64(n), nil
	case KindBool:
		f, err := std.DecodeBool(b)
		if err != nil {
			return Value{}, err
		}
		return Bool(f), nil
	}
	return Value{}, fmt.Errorf("%w: kind %d", ErrUnsupportedType, kind)
}
