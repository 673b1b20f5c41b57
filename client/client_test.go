package client

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestKind_Valid(t *testing.T) {
	require.True(t, Buffered.Valid())
	require.True(t, Framed.Valid())
	require.True(t, HTTP.Valid())
	require.False(t, Kind("gzip").Valid())
	require.False(t, Kind("").Valid())
}

func TestNew(t *testing.T) {
	tests := map[string]struct {
		kind    Kind
		wantErr bool
	}{
		"buffered": {kind: Buffered},
		"framed":   {kind: Framed},
		"http":     {kind: HTTP},
		"unknown":  {kind: Kind("gzip"), wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			trans, c, err := New(&Options{Host: "localhost", Port: 9090, Timeout: time.Second, Kind: tc.kind})
			if tc.wantErr {
				require.Error(t, err)
				require.Nil(t, trans)
				require.Nil(t, c)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, c)
			if tc.kind != HTTP {
				require.False(t, trans.IsOpen())
			}
		})
	}
}

func TestOptions_Address(t *testing.T) {
	o := &Options{Host: "::1", Port: 9090}
	require.Equal(t, "[::1]:9090", o.Address())
}

func TestRoundTripper(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}))
	defer srv.Close()

	c := http.Client{Transport: &RoundTripper{Headers: []Header{{Key: "X-Auth", Value: "secret"}}}}
	resp, err := c.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, "secret", got.Get("X-Auth"))
}
