package hbasemap

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/apache/thrift/lib/go/thrift"
	"github.com/challenai/hbasemap/client"
	"github.com/challenai/hbasemap/logger"
	"github.com/challenai/hbasemap/thrift/hbase"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeTransport struct {
	*thrift.TMemoryBuffer
	open    bool
	opens   int
	closes  int
	openErr error
}

func (f *fakeTransport) Open() error {
	f.opens++
	if f.openErr != nil {
		return f.openErr
	}
	f.open = true
	return nil
}

func (f *fakeTransport) IsOpen() bool { return f.open }

func (f *fakeTransport) Close() error {
	f.closes++
	f.open = false
	return nil
}

func newTestConnection(t *testing.T, cfg *Config) (*Connection, *MockrpcClient, *fakeTransport) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := NewMockrpcClient(ctrl)

	c, err := newConnection(cfg)
	require.NoError(t, err)
	ft := &fakeTransport{TMemoryBuffer: thrift.NewTMemoryBuffer()}
	c.transport = ft
	c.client = m
	return c, m, ft
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := New(nil)
		require.NoError(t, err)
		require.False(t, c.IsOpen())

		cfg := c.Config()
		require.Equal(t, "localhost", cfg.Host)
		require.Equal(t, 9090, cfg.Port)
		require.Equal(t, 5*time.Second, cfg.Timeout)
		require.False(t, cfg.AutoConnect)
		require.Equal(t, "", cfg.TablePrefix)
		require.Equal(t, "_", cfg.TablePrefixSeparator)
		require.Equal(t, client.Buffered, cfg.Transport)
	})

	t.Run("framed", func(t *testing.T) {
		c, err := New(&Config{Transport: client.Framed})
		require.NoError(t, err)
		require.Equal(t, client.Framed, c.Config().Transport)
	})

	t.Run("unknown transport", func(t *testing.T) {
		c, err := New(&Config{Transport: client.Kind("gzip")})
		require.Nil(t, c)
		require.True(t, errors.Is(err, ErrConfiguration))
		require.Contains(t, err.Error(), "gzip")
	})

	t.Run("several problems", func(t *testing.T) {
		_, err := New(&Config{Transport: client.Kind("gzip"), Port: 70000, Timeout: -time.Second})
		require.True(t, errors.Is(err, ErrConfiguration))
		require.Contains(t, err.Error(), "port 70000")
		require.Contains(t, err.Error(), "timeout")
	})

	t.Run("auto connect failure", func(t *testing.T) {
		_, err := Dial(&Config{Host: "127.0.0.1", Port: 1, Timeout: 200 * time.Millisecond})
		var remoteErr *RemoteError
		require.True(t, errors.As(err, &remoteErr))
		require.Equal(t, "open", remoteErr.Op)
	})
}

func TestConnection_OpenClose(t *testing.T) {
	c, _, ft := newTestConnection(t, nil)

	require.False(t, c.IsOpen())
	require.NoError(t, c.Close())
	require.Equal(t, 0, ft.closes)

	require.NoError(t, c.Open())
	require.NoError(t, c.Open())
	require.True(t, c.IsOpen())
	require.Equal(t, 1, ft.opens)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	require.False(t, c.IsOpen())
	require.Equal(t, 1, ft.closes)
}

// thriftGateway answers every call over HTTP with a getTableNames reply
// listing names, and counts the calls it served.
func thriftGateway(t *testing.T, names ...string) (host string, port int, calls *int32) {
	t.Helper()
	calls = new(int32)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		in := thrift.NewTBinaryProtocol(thrift.NewStreamTransportR(r.Body), false, true)
		method, _, seqID, err := in.ReadMessageBegin(ctx)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		atomic.AddInt32(calls, 1)

		buf := thrift.NewTMemoryBuffer()
		out := thrift.NewTBinaryProtocol(buf, false, true)
		_ = out.WriteMessageBegin(ctx, method, thrift.REPLY, seqID)
		_ = out.WriteStructBegin(ctx, "result")
		_ = out.WriteFieldBegin(ctx, "success", thrift.LIST, 0)
		_ = out.WriteListBegin(ctx, thrift.STRING, len(names))
		for _, n := range names {
			_ = out.WriteBinary(ctx, []byte(n))
		}
		_ = out.WriteListEnd(ctx)
		_ = out.WriteFieldEnd(ctx)
		_ = out.WriteFieldStop(ctx)
		_ = out.WriteStructEnd(ctx)
		_ = out.WriteMessageEnd(ctx)
		_ = out.Flush(ctx)
		_, _ = w.Write(buf.Bytes())
	}))
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	host, p, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)
	port, err = strconv.Atoi(p)
	require.NoError(t, err)
	return host, port, calls
}

func TestConnection_ReopenHTTP(t *testing.T) {
	ctx := context.Background()
	host, port, calls := thriftGateway(t, "users")

	c, err := New(&Config{Host: host, Port: port, Transport: client.HTTP})
	require.NoError(t, err)
	require.False(t, c.IsOpen())

	for i := 0; i < 2; i++ {
		require.NoError(t, c.Open())
		require.True(t, c.IsOpen())

		names, err := c.PhysicalTables(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"users"}, names)

		require.NoError(t, c.Close())
		require.False(t, c.IsOpen())
	}
	require.Equal(t, int32(2), atomic.LoadInt32(calls))
}

func TestConnection_OpenError(t *testing.T) {
	var buf bytes.Buffer
	c, _, ft := newTestConnection(t, &Config{Logger: logger.NewWriterLogger(&buf)})
	ft.openErr = errors.New("connection refused")

	err := c.Open()
	var remoteErr *RemoteError
	require.True(t, errors.As(err, &remoteErr))
	require.Equal(t, ft.openErr, remoteErr.Err)
	require.False(t, c.IsOpen())
	require.Contains(t, buf.String(), "connection refused")
}

func TestConnection_Table(t *testing.T) {
	c, _, _ := newTestConnection(t, &Config{TablePrefix: "app"})

	require.Equal(t, "app_users", c.Table("users").Name())
	require.Equal(t, "app_users", c.Table("app_users").Name())
	require.Equal(t, "users", c.UnprefixedTable("users").Name())
	require.Same(t, c, c.Table("users").Connection())

	plain, _, _ := newTestConnection(t, nil)
	require.Equal(t, "users", plain.Table("users").Name())
}

func TestConnection_Tables(t *testing.T) {
	ctx := context.Background()
	stored := [][]byte{[]byte("app_users"), []byte("app_orders"), []byte("other")}

	t.Run("prefix", func(t *testing.T) {
		c, m, _ := newTestConnection(t, &Config{TablePrefix: "app", TablePrefixSeparator: "_"})
		m.EXPECT().GetTableNames(gomock.Any()).Return(stored, nil)

		names, err := c.Tables(ctx)
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"users", "orders"}, names)
	})

	t.Run("no prefix", func(t *testing.T) {
		c, m, _ := newTestConnection(t, nil)
		m.EXPECT().GetTableNames(gomock.Any()).Return(stored, nil)

		names, err := c.Tables(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"app_orders", "app_users", "other"}, names)
	})

	t.Run("physical", func(t *testing.T) {
		c, m, _ := newTestConnection(t, &Config{TablePrefix: "app"})
		m.EXPECT().GetTableNames(gomock.Any()).Return(stored, nil)

		names, err := c.PhysicalTables(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"app_orders", "app_users", "other"}, names)
	})

	t.Run("remote error", func(t *testing.T) {
		c, m, _ := newTestConnection(t, nil)
		ioErr := &hbase.IOError{Message: "master down"}
		m.EXPECT().GetTableNames(gomock.Any()).Return(nil, ioErr)

		_, err := c.Tables(ctx)
		var got *hbase.IOError
		require.True(t, errors.As(err, &got))
		require.Same(t, ioErr, got)
	})
}

func TestConnection_CreateTable(t *testing.T) {
	ctx := context.Background()

	tests := map[string]struct {
		families  Families
		expectErr error
		expected  []*hbase.ColumnDescriptor
	}{
		"no families": {
			families:  Families{},
			expectErr: ErrValidation,
		},
		"nil families": {
			families:  nil,
			expectErr: ErrValidation,
		},
		"unknown option": {
			families:  Families{"cf": {"block_size": 10}},
			expectErr: ErrValidation,
		},
		"wrong option type": {
			families:  Families{"cf": {"max_versions": "three"}},
			expectErr: ErrValidation,
		},
		"single family": {
			families: Families{"cf": {}},
			expected: []*hbase.ColumnDescriptor{descriptor("cf:", nil)},
		},
		"options translated": {
			families: Families{
				"meta:": nil,
				"data":  {"max_versions": 1, "in_memory": true, "compression": "GZ", "timeToLive": int64(60)},
			},
			expected: []*hbase.ColumnDescriptor{
				descriptor("data:", func(d *hbase.ColumnDescriptor) {
					d.MaxVersions = 1
					d.InMemory = true
					d.Compression = "GZ"
					d.TimeToLive = 60
				}),
				descriptor("meta:", nil),
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c, m, _ := newTestConnection(t, &Config{TablePrefix: "app"})
			if tc.expected != nil {
				m.EXPECT().CreateTable(gomock.Any(), []byte("app_logs"), tc.expected).Return(nil)
			}

			table, err := c.CreateTable(ctx, "logs", tc.families)
			if tc.expectErr != nil {
				require.True(t, errors.Is(err, tc.expectErr))
				require.Nil(t, table)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "app_logs", table.Name())
		})
	}
}

func TestConnection_CreateTableRemoteError(t *testing.T) {
	c, m, _ := newTestConnection(t, nil)
	m.EXPECT().CreateTable(gomock.Any(), []byte("logs"), gomock.Any()).Return(&hbase.AlreadyExists{Message: "logs"})

	_, err := c.CreateTable(context.Background(), "logs", Families{"cf": nil})
	var exists *hbase.AlreadyExists
	require.True(t, errors.As(err, &exists))
	var remoteErr *RemoteError
	require.True(t, errors.As(err, &remoteErr))
	require.Equal(t, "createTable", remoteErr.Op)
	require.Equal(t, "logs", remoteErr.Table)
}

func descriptor(name string, fn func(d *hbase.ColumnDescriptor)) *hbase.ColumnDescriptor {
	d := hbase.NewColumnDescriptor()
	d.Name = []byte(name)
	if fn != nil {
		fn(d)
	}
	return d
}

func TestConnection_DeleteTable(t *testing.T) {
	ctx := context.Background()
	name := []byte("app_logs")

	tests := map[string]struct {
		disable   bool
		mockSetup func(m *MockrpcClient)
	}{
		"without disable": {
			mockSetup: func(m *MockrpcClient) {
				m.EXPECT().DeleteTable(gomock.Any(), name).Return(nil)
			},
		},
		"disable enabled table": {
			disable: true,
			mockSetup: func(m *MockrpcClient) {
				gomock.InOrder(
					m.EXPECT().IsTableEnabled(gomock.Any(), name).Return(true, nil),
					m.EXPECT().DisableTable(gomock.Any(), name).Return(nil),
					m.EXPECT().DeleteTable(gomock.Any(), name).Return(nil),
				)
			},
		},
		"disable already disabled table": {
			disable: true,
			mockSetup: func(m *MockrpcClient) {
				m.EXPECT().IsTableEnabled(gomock.Any(), name).Return(false, nil)
				m.EXPECT().DeleteTable(gomock.Any(), name).Return(nil)
			},
		},
	}

	for tname, tc := range tests {
		t.Run(tname, func(t *testing.T) {
			c, m, _ := newTestConnection(t, &Config{TablePrefix: "app"})
			tc.mockSetup(m)
			require.NoError(t, c.DeleteTable(ctx, "logs", tc.disable))
		})
	}
}

func TestConnection_EnableDisable(t *testing.T) {
	ctx := context.Background()
	c, m, _ := newTestConnection(t, &Config{TablePrefix: "app", TablePrefixSeparator: "."})
	name := []byte("app.logs")

	m.EXPECT().EnableTable(gomock.Any(), name).Return(nil)
	m.EXPECT().DisableTable(gomock.Any(), name).Return(nil)
	m.EXPECT().IsTableEnabled(gomock.Any(), name).Return(true, nil)

	require.NoError(t, c.EnableTable(ctx, "logs"))
	require.NoError(t, c.DisableTable(ctx, "app.logs"))
	enabled, err := c.IsTableEnabled(ctx, "logs")
	require.NoError(t, err)
	require.True(t, enabled)
}
