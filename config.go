package hbasemap

import (
	"errors"
	"os"
	"sort"
	"time"

	"github.com/challenai/hbasemap/client"
	"github.com/challenai/hbasemap/logger"
	"github.com/pelletier/go-toml"
	pkgerrors "github.com/pkg/errors"
)

const (
	DefaultHost                 = "localhost"
	DefaultPort                 = 9090
	DefaultTimeout              = 5 * time.Second
	DefaultTablePrefixSeparator = "_"
	DefaultTransport            = client.Buffered
)

// Config configures a Connection. Zero fields take the defaults above.
type Config struct {
	Host    string
	Port    int
	Timeout time.Duration
	// AutoConnect opens the transport inside New.
	AutoConnect bool
	// TablePrefix, when set, namespaces every table name as
	// TablePrefix + TablePrefixSeparator + name.
	TablePrefix string
	// TablePrefixSeparator defaults to "_" when empty; a prefix always has
	// a non-empty separator.
	TablePrefixSeparator string
	Transport            client.Kind
	// Headers are sent with every request of the http transport.
	Headers []client.Header
	Logger  logger.Logger
}

// DefaultConfig returns a Config with every default filled in.
func DefaultConfig() *Config {
	return &Config{
		Host:                 DefaultHost,
		Port:                 DefaultPort,
		Timeout:              DefaultTimeout,
		TablePrefixSeparator: DefaultTablePrefixSeparator,
		Transport:            DefaultTransport,
	}
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.Host == "" {
		out.Host = DefaultHost
	}
	if out.Port == 0 {
		out.Port = DefaultPort
	}
	if out.Timeout == 0 {
		out.Timeout = DefaultTimeout
	}
	if out.TablePrefixSeparator == "" {
		out.TablePrefixSeparator = DefaultTablePrefixSeparator
	}
	if out.Transport == "" {
		out.Transport = DefaultTransport
	}
	if out.Logger == nil {
		out.Logger = logger.Nop()
	}
	return out
}

func (c *Config) validate() error {
	var errGrp []error
	if !c.Transport.Valid() {
		errGrp = append(errGrp, newError(ErrConfiguration, "transport must be one of %s, %s, %s, got %q",
			client.Buffered, client.Framed, client.HTTP, c.Transport))
	}
	if c.Port < 1 || c.Port > 65535 {
		errGrp = append(errGrp, newError(ErrConfiguration, "port %d out of range", c.Port))
	}
	if c.Timeout < 0 {
		errGrp = append(errGrp, newError(ErrConfiguration, "timeout must not be negative"))
	}
	return errors.Join(errGrp...)
}

func (c *Config) clientOptions() *client.Options {
	return &client.Options{
		Host:    c.Host,
		Port:    c.Port,
		Timeout: c.Timeout,
		Kind:    c.Transport,
		Headers: c.Headers,
	}
}

// fileConfig is the on-disk TOML layout. Timeout is in seconds.
type fileConfig struct {
	Host                 string            `toml:"host"`
	Port                 int               `toml:"port"`
	Timeout              int               `toml:"timeout"`
	AutoConnect          bool              `toml:"auto_connect"`
	TablePrefix          string            `toml:"table_prefix"`
	TablePrefixSeparator string            `toml:"table_prefix_separator"`
	Transport            string            `toml:"transport"`
	Headers              map[string]string `toml:"headers"`
}

// LoadConfig reads a Config from a TOML file. Keys missing from the file
// keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "read config")
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, pkgerrors.Wrapf(err, "parse config %s", path)
	}

	cfg := &Config{
		Host:                 fc.Host,
		Port:                 fc.Port,
		Timeout:              time.Duration(fc.Timeout) * time.Second,
		AutoConnect:          fc.AutoConnect,
		TablePrefix:          fc.TablePrefix,
		TablePrefixSeparator: fc.TablePrefixSeparator,
		Transport:            client.Kind(fc.Transport),
	}
	keys := make([]string, 0, len(fc.Headers))
	for k := range fc.Headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		cfg.Headers = append(cfg.Headers, client.Header{Key: k, Value: fc.Headers[k]})
	}
	return cfg, nil
}
