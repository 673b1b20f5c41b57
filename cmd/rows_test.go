package cmd

import (
	"bytes"
	"testing"

	"github.com/challenai/hbasemap"
	"github.com/challenai/hbasemap/codec"
	"github.com/stretchr/testify/require"
)

func TestParseFamilies(t *testing.T) {
	tests := map[string]struct {
		specs []string
		want  hbasemap.Families
		err   bool
	}{
		"plain": {
			specs: []string{"info"},
			want:  hbasemap.Families{"info": nil},
		},
		"options": {
			specs: []string{"hist,max_versions=10,compression=GZ,in_memory=true"},
			want: hbasemap.Families{"hist": hbasemap.FamilyOptions{
				"max_versions": int32(10),
				"compression":  "GZ",
				"in_memory":    true,
			}},
		},
		"several": {
			specs: []string{"a", "b,time_to_live=60"},
			want:  hbasemap.Families{"a": nil, "b": hbasemap.FamilyOptions{"time_to_live": int32(60)}},
		},
		"none":           {err: true},
		"empty name":     {specs: []string{",max_versions=1"}, err: true},
		"duplicate":      {specs: []string{"a", "a"}, err: true},
		"bad option":     {specs: []string{"a,max_versions"}, err: true},
		"empty opt name": {specs: []string{"a,=1"}, err: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := parseFamilies(tc.specs)
			if tc.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestTypedValuesApply(t *testing.T) {
	tv := typedValues{
		text:  []string{"name=Alice", "note=a=b"},
		ints:  []string{"age=30"},
		bools: []string{"meta:active=true"},
		nulls: []string{"old"},
	}
	row := hbasemap.NewRow(nil, "alice", "info")
	require.NoError(t, tv.apply(row))

	for column, want := range map[string]codec.Value{
		"info:name":   codec.Text("Alice"),
		"info:note":   codec.Text("a=b"),
		"info:age":    codec.Int64(30),
		"meta:active": codec.Bool(true),
		"info:old":    codec.Null(),
	} {
		got, err := row.Get(column)
		require.NoError(t, err)
		require.Equal(t, want, got, column)
	}
	require.Len(t, row.Columns(), 5)
}

func TestTypedValuesApplyErrors(t *testing.T) {
	tests := map[string]typedValues{
		"no equals":   {text: []string{"name"}},
		"bad int":     {ints: []string{"age=thirty"}},
		"bad bool":    {bools: []string{"active=yes"}},
		"no family":   {text: []string{"name=x"}},
		"empty name":  {ints: []string{"=1"}},
		"null no fam": {nulls: []string{"old"}},
	}
	for name, tv := range tests {
		t.Run(name, func(t *testing.T) {
			family := "info"
			if name == "no family" || name == "null no fam" {
				family = ""
			}
			require.Error(t, tv.apply(hbasemap.NewRow(nil, "k", family)))
		})
	}
}

func TestPrintResult(t *testing.T) {
	age, err := codec.Encode(codec.Int64(30))
	require.NoError(t, err)
	res := &hbasemap.Result{
		Key: "alice",
		Cells: map[string]hbasemap.Cell{
			"info:name":   {Value: []byte("Alice"), Timestamp: 7},
			"info:age":    {Value: age, Timestamp: 7},
			"info:active": {Value: []byte("true"), Timestamp: 8},
		},
	}
	dec := decoding{family: "info", ints: []string{"age"}, bools: []string{"info:active"}}
	kinds, err := dec.kinds()
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, printResult(&out, res, kinds))
	require.Equal(t, "alice info:active=true @8\nalice info:age=30 @7\nalice info:name=\"Alice\" @7\n", out.String())
}

func TestPrintResultDecodeError(t *testing.T) {
	res := &hbasemap.Result{
		Key:   "alice",
		Cells: map[string]hbasemap.Cell{"info:age": {Value: []byte("30")}},
	}
	var out bytes.Buffer
	err := printResult(&out, res, map[string]codec.Kind{"info:age": codec.KindInt64})
	require.ErrorIs(t, err, codec.ErrMalformed)
}
