package codec

import (
	"bytes"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := map[string]struct {
		value    Value
		expected []byte
	}{
		"text":       {value: Text("Alice"), expected: []byte("Alice")},
		"utf8 text":  {value: Text("héllo"), expected: []byte("héllo")},
		"empty text": {value: Text(""), expected: []byte{}},
		"int64":      {value: Int64(30), expected: []byte{0, 0, 0, 0, 0, 0, 0, 30}},
		"negative":   {value: Int64(-1), expected: []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		"true":       {value: Bool(true), expected: []byte("true")},
		"false":      {value: Bool(false), expected: []byte("false")},
		"null":       {value: Null(), expected: nil},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Encode(tc.value)
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)
		})
	}
}

func TestInt64RoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 30, math.MinInt64, math.MaxInt64} {
		b, err := Encode(Int64(n))
		require.NoError(t, err)
		require.Len(t, b, 8)

		v, err := Decode(KindInt64, b)
		require.NoError(t, err)
		got, ok := v.AsInt64()
		require.True(t, ok)
		require.Equal(t, n, got)
	}
}

func TestInt64SortsForNonNegative(t *testing.T) {
	a, _ := Encode(Int64(255))
	b, _ := Encode(Int64(256))
	c, _ := Encode(Int64(math.MaxInt64))
	require.Equal(t, -1, bytes.Compare(a, b))
	require.Equal(t, -1, bytes.Compare(b, c))
}

func TestDecode(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		v, err := Decode(KindText, []byte("Alice"))
		require.NoError(t, err)
		require.Equal(t, Text("Alice"), v)
	})

	t.Run("bool", func(t *testing.T) {
		v, err := Decode(KindBool, []byte("false"))
		require.NoError(t, err)
		require.Equal(t, Bool(false), v)
	})

	t.Run("nil is null", func(t *testing.T) {
		v, err := Decode(KindInt64, nil)
		require.NoError(t, err)
		require.True(t, v.IsNull())
	})

	t.Run("short int", func(t *testing.T) {
		_, err := Decode(KindInt64, []byte{1, 2})
		require.True(t, errors.Is(err, ErrMalformed))
	})

	t.Run("bad bool", func(t *testing.T) {
		_, err := Decode(KindBool, []byte{1})
		require.True(t, errors.Is(err, ErrMalformed))
	})
}

func TestValueOf(t *testing.T) {
	tests := map[string]struct {
		in       interface{}
		expected Value
		err      error
	}{
		"string":  {in: "x", expected: Text("x")},
		"bytes":   {in: []byte("x"), expected: Text("x")},
		"int":     {in: 30, expected: Int64(30)},
		"int32":   {in: int32(-7), expected: Int64(-7)},
		"uint16":  {in: uint16(9), expected: Int64(9)},
		"bool":    {in: true, expected: Bool(true)},
		"nil":     {in: nil, expected: Null()},
		"value":   {in: Int64(1), expected: Int64(1)},
		"float":   {in: 1.5, err: ErrUnsupportedType},
		"uint64":  {in: uint64(1), err: ErrUnsupportedType},
		"time":    {in: time.Time{}, err: ErrUnsupportedType},
		"map":     {in: map[string]string{}, err: ErrUnsupportedType},
		"pointer": {in: new(int), err: ErrUnsupportedType},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ValueOf(tc.in)
			if tc.err != nil {
				require.True(t, errors.Is(err, tc.err))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)
		})
	}
}

func TestValue_Accessors(t *testing.T) {
	v := Text("a")
	s, ok := v.AsText()
	require.True(t, ok)
	require.Equal(t, "a", s)
	_, ok = v.AsInt64()
	require.False(t, ok)

	require.Equal(t, KindNull, Value{}.Kind())
	require.Equal(t, "30", Int64(30).String())
	require.Equal(t, int64(30), Int64(30).Interface())
	require.Nil(t, Null().Interface())
	require.Equal(t, "bool", KindBool.String())
}
