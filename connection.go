package hbasemap

import (
	"context"
	"sort"

	"github.com/apache/thrift/lib/go/thrift"
	"github.com/challenai/hbasemap/client"
	"github.com/challenai/hbasemap/logger"
	"github.com/challenai/hbasemap/thrift/hbase"
)

//go:generate mockgen -destination=connection_mock.go -package=hbasemap -source=connection.go

type rpcClient interface {
	GetTableNames(ctx context.Context) ([][]byte, error)
	CreateTable(ctx context.Context, tableName []byte, columnFamilies []*hbase.ColumnDescriptor) error
	DeleteTable(ctx context.Context, tableName []byte) error
	EnableTable(ctx context.Context, tableName []byte) error
	DisableTable(ctx context.Context, tableName []byte) error
	IsTableEnabled(ctx context.Context, tableName []byte) (bool, error)
	GetRow(ctx context.Context, tableName, row []byte, attributes map[string][]byte) ([]*hbase.TRowResult, error)
	GetRowWithColumns(ctx context.Context, tableName, row []byte, columns [][]byte, attributes map[string][]byte) ([]*hbase.TRowResult, error)
	MutateRow(ctx context.Context, tableName, row []byte, mutations []*hbase.Mutation, attributes map[string][]byte) error
	MutateRowTs(ctx context.Context, tableName, row []byte, mutations []*hbase.Mutation, timestamp int64, attributes map[string][]byte) error
	DeleteAllRow(ctx context.Context, tableName, row []byte, attributes map[string][]byte) error
	ScannerOpenWithStop(ctx context.Context, tableName, startRow, stopRow []byte, columns [][]byte, attributes map[string][]byte) (hbase.ScannerID, error)
	ScannerOpenWithScan(ctx context.Context, tableName []byte, scan *hbase.TScan, attributes map[string][]byte) (hbase.ScannerID, error)
	ScannerGetList(ctx context.Context, id hbase.ScannerID, nbRows int32) ([]*hbase.TRowResult, error)
	ScannerClose(ctx context.Context, id hbase.ScannerID) error
}

// Connection owns the transport to one HBase Thrift gateway. It is not safe
// for concurrent use; give each goroutine its own Connection or serialize
// calls.
type Connection struct {
	cfg       Config
	names     tableNamer
	log       logger.Logger
	transport thrift.TTransport
	client    rpcClient
	open      bool
	// stale is set by Close; the next Open rebuilds the transport.
	stale bool
}

// New validates cfg and builds the transport. The transport is opened here
// only when cfg.AutoConnect is set; otherwise call Open.
func New(cfg *Config) (*Connection, error) {
	c, err := newConnection(cfg)
	if err != nil {
		return nil, err
	}
	if err := c.refreshClient(); err != nil {
		return nil, err
	}
	if c.cfg.AutoConnect {
		if err := c.Open(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func newConnection(cfg *Config) (*Connection, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	resolved := cfg.withDefaults()
	if err := resolved.validate(); err != nil {
		return nil, err
	}
	return &Connection{
		cfg: resolved,
		names: tableNamer{
			prefix:    resolved.TablePrefix,
			separator: resolved.TablePrefixSeparator,
		},
		log: resolved.Logger,
	}, nil
}

// refreshClient rebuilds the transport and the client bound to it.
func (c *Connection) refreshClient() error {
	trans, hb, err := client.New(c.cfg.clientOptions())
	if err != nil {
		return newError(ErrConfiguration, "%v", err)
	}
	c.transport = trans
	c.client = hb
	return nil
}

// Config returns the effective configuration.
func (c *Connection) Config() Config {
	return c.cfg
}

// Open opens the transport. It is a no-op on an open Connection. Reopening a
// closed Connection rebuilds the transport and the client bound to it.
func (c *Connection) Open() error {
	if c.IsOpen() {
		return nil
	}
	if c.stale {
		if err := c.refreshClient(); err != nil {
			return err
		}
		c.stale = false
	}
	if err := c.transport.Open(); err != nil {
		c.log.Warnf("failed to connect to %s: %v", c.cfg.clientOptions().Address(), err)
		return &RemoteError{Op: "open", Err: err}
	}
	c.open = true
	c.log.Infof("connected to %s over %s transport", c.cfg.clientOptions().Address(), c.cfg.Transport)
	return nil
}

// IsOpen reports whether Open succeeded and the transport is still open.
func (c *Connection) IsOpen() bool {
	return c.open && c.transport != nil && c.transport.IsOpen()
}

// Close closes the transport. It is a no-op on a closed Connection.
func (c *Connection) Close() error {
	if !c.open {
		return nil
	}
	c.open = false
	c.stale = true
	if err := c.transport.Close(); err != nil {
		return &RemoteError{Op: "close", Err: err}
	}
	c.log.Debugf("closed connection to %s", c.cfg.clientOptions().Address())
	return nil
}

// Table returns a handle on the table called name, with the table prefix
// applied.
func (c *Connection) Table(name string) *Table {
	return &Table{name: c.names.qualify(name), conn: c}
}

// UnprefixedTable returns a handle on name exactly as given.
func (c *Connection) UnprefixedTable(name string) *Table {
	return &Table{name: name, conn: c}
}

// Tables lists the logical names of the tables under the configured prefix.
// Tables outside the prefix are left out. Without a prefix every table is
// listed.
func (c *Connection) Tables(ctx context.Context) ([]string, error) {
	physical, err := c.PhysicalTables(ctx)
	if err != nil {
		return nil, err
	}
	return c.names.logical(physical), nil
}

// PhysicalTables lists every table name in the store, unfiltered.
func (c *Connection) PhysicalTables(ctx context.Context) ([]string, error) {
	raw, err := c.client.GetTableNames(ctx)
	if err != nil {
		return nil, c.remote("getTableNames", "", err)
	}
	names := make([]string, 0, len(raw))
	for _, n := range raw {
		names = append(names, string(n))
	}
	sort.Strings(names)
	return names, nil
}

// CreateTable creates the table called name with one column family per
// entry of families and returns a handle on it.
func (c *Connection) CreateTable(ctx context.Context, name string, families Families) (*Table, error) {
	name = c.names.qualify(name)
	descriptors, err := columnDescriptors(families)
	if err != nil {
		return nil, newError(ErrValidation, "can't create table %s: %v", name, err)
	}
	if err := c.client.CreateTable(ctx, []byte(name), descriptors); err != nil {
		return nil, c.remote("createTable", name, err)
	}
	c.log.Infof("created table %s with %d column families", name, len(descriptors))
	return &Table{name: name, conn: c}, nil
}

// DeleteTable drops the table called name. With disable set, an enabled
// table is disabled first, as the store refuses to drop enabled tables.
func (c *Connection) DeleteTable(ctx context.Context, name string, disable bool) error {
	name = c.names.qualify(name)
	if disable {
		enabled, err := c.IsTableEnabled(ctx, name)
		if err != nil {
			return err
		}
		if enabled {
			if err := c.DisableTable(ctx, name); err != nil {
				return err
			}
		}
	}
	if err := c.client.DeleteTable(ctx, []byte(name)); err != nil {
		return c.remote("deleteTable", name, err)
	}
	c.log.Infof("deleted table %s", name)
	return nil
}

func (c *Connection) EnableTable(ctx context.Context, name string) error {
	name = c.names.qualify(name)
	if err := c.client.EnableTable(ctx, []byte(name)); err != nil {
		return c.remote("enableTable", name, err)
	}
	c.log.Infof("enabled table %s", name)
	return nil
}

func (c *Connection) DisableTable(ctx context.Context, name string) error {
	name = c.names.qualify(name)
	if err := c.client.DisableTable(ctx, []byte(name)); err != nil {
		return c.remote("disableTable", name, err)
	}
	c.log.Infof("disabled table %s", name)
	return nil
}

func (c *Connection) IsTableEnabled(ctx context.Context, name string) (bool, error) {
	name = c.names.qualify(name)
	enabled, err := c.client.IsTableEnabled(ctx, []byte(name))
	if err != nil {
		return false, c.remote("isTableEnabled", name, err)
	}
	return enabled, nil
}

func (c *Connection) remote(op, table string, err error) error {
	c.log.Warnf("%s %s failed: %v", op, table, err)
	return &RemoteError{Op: op, Table: table, Err: err}
}
