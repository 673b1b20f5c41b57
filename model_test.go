package hbasemap

import (
	"errors"
	"testing"

	"github.com/challenai/hbasemap/codec"
	"github.com/stretchr/testify/require"
)

type user struct {
	Model
	Name    string `hbase:"name"`
	Age     int32  `hbase:"cf,age"`
	Visits  uint16 `hbase:"stats,visits"`
	Active  bool   `hbase:"active"`
	Ignored string
	Skipped string `hbase:"-"`
}

func TestRow_Marshal(t *testing.T) {
	r := NewRow(nil, "", "cf")
	err := r.Marshal(user{Model: Model{Rowkey: "u1"}, Name: "Alice", Age: 30, Visits: 4, Active: true, Ignored: "x"})
	require.NoError(t, err)

	require.Equal(t, "u1", r.ID())
	data, err := r.EncodedData()
	require.NoError(t, err)
	require.Equal(t, map[string][]byte{
		"cf:name":      []byte("Alice"),
		"cf:age":       {0, 0, 0, 0, 0, 0, 0, 30},
		"stats:visits": {0, 0, 0, 0, 0, 0, 0, 4},
		"cf:active":    []byte("true"),
	}, data)
}

func TestResult_Unmarshal(t *testing.T) {
	age, _ := codec.Encode(codec.Int64(30))
	visits, _ := codec.Encode(codec.Int64(4))
	res := newResult(rowResult("u1", map[string][]byte{
		"cf:name":      []byte("Alice"),
		"cf:age":       age,
		"stats:visits": visits,
	}), "cf")

	u := user{Active: true}
	require.NoError(t, res.Unmarshal(&u))
	require.Equal(t, user{Model: Model{Rowkey: "u1"}, Name: "Alice", Age: 30, Visits: 4, Active: true}, u)
}

func TestResult_UnmarshalOverflow(t *testing.T) {
	big, _ := codec.Encode(codec.Int64(1 << 40))
	res := newResult(rowResult("u1", map[string][]byte{"cf:age": big}), "cf")
	require.Error(t, res.Unmarshal(&user{}))
}

func TestModelErrors(t *testing.T) {
	type withFloat struct {
		Score float64 `hbase:"score"`
	}
	res := newResult(rowResult("u1", nil), "cf")

	require.True(t, errors.Is(NewRow(nil, "", "cf").Marshal(withFloat{}), ErrUnsupportedType))
	require.True(t, errors.Is(NewRow(nil, "", "cf").Marshal(nil), ErrValidation))
	require.True(t, errors.Is(NewRow(nil, "", "cf").Marshal(42), ErrValidation))
	require.True(t, errors.Is(res.Unmarshal(user{}), ErrValidation))
	require.True(t, errors.Is(res.Unmarshal((*user)(nil)), ErrValidation))
	require.True(t, errors.Is(NewRow(nil, "", "").Marshal(user{Name: "x"}), ErrMissingColumnFamily))
}
