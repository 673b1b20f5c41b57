package cmd

import (
	"context"
	"io"
	"time"

	"github.com/challenai/hbasemap"
	"github.com/challenai/hbasemap/client"
	"github.com/challenai/hbasemap/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// connFlags are the connection settings shared by every subcommand. Flags
// given explicitly override the --config file.
type connFlags struct {
	config    string
	host      string
	port      int
	timeout   time.Duration
	prefix    string
	separator string
	transport string
	verbose   bool
}

func (f *connFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.config, "config", "c", "", "TOML configuration file to read from.")
	fs.StringVar(&f.host, "host", hbasemap.DefaultHost, "Thrift gateway host.")
	fs.IntVar(&f.port, "port", hbasemap.DefaultPort, "Thrift gateway port.")
	fs.DurationVar(&f.timeout, "timeout", hbasemap.DefaultTimeout, "Connect and socket timeout.")
	fs.StringVar(&f.prefix, "table-prefix", "", "Namespace prefix applied to table names.")
	fs.StringVar(&f.separator, "table-prefix-separator", hbasemap.DefaultTablePrefixSeparator, "Separator between prefix and table name.")
	fs.StringVar(&f.transport, "transport", string(hbasemap.DefaultTransport), "Transport: buffered, framed or http.")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Log connection activity to stderr.")
}

// resolve builds the Config from the --config file, if any, and the flags
// set on the command line.
func (f *connFlags) resolve(fs *pflag.FlagSet, stderr io.Writer) (*hbasemap.Config, error) {
	cfg := hbasemap.DefaultConfig()
	if f.config != "" {
		loaded, err := hbasemap.LoadConfig(f.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if fs.Changed("host") || cfg.Host == "" {
		cfg.Host = f.host
	}
	if fs.Changed("port") || cfg.Port == 0 {
		cfg.Port = f.port
	}
	if fs.Changed("timeout") || cfg.Timeout == 0 {
		cfg.Timeout = f.timeout
	}
	if fs.Changed("table-prefix") {
		cfg.TablePrefix = f.prefix
	}
	if fs.Changed("table-prefix-separator") || cfg.TablePrefixSeparator == "" {
		cfg.TablePrefixSeparator = f.separator
	}
	if fs.Changed("transport") || cfg.Transport == "" {
		cfg.Transport = client.Kind(f.transport)
	}
	if f.verbose {
		cfg.Logger = logger.NewZerolog(zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger())
	}
	return cfg, nil
}

// NewRootCommand returns the hbasectl command tree.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	flags := &connFlags{}
	rc := &cobra.Command{
		Use:   "hbasectl",
		Short: "hbasectl administers HBase tables and rows through the Thrift gateway.",
		Long: `hbasectl administers HBase tables and rows through the Thrift gateway.

Table names are namespaced with --table-prefix when one is configured;
column values are typed with --text, --int and --bool on writes.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags.register(rc.PersistentFlags())

	// dial connects with the flags of the running command.
	dial := func(cmd *cobra.Command) (*hbasemap.Connection, error) {
		cfg, err := flags.resolve(cmd.Flags(), stderr)
		if err != nil {
			return nil, err
		}
		return hbasemap.Dial(cfg)
	}

	rc.AddCommand(newTablesCommand(dial, stdout))
	rc.AddCommand(newCreateCommand(dial, stdout))
	rc.AddCommand(newDeleteCommand(dial, stdout))
	rc.AddCommand(newEnableCommand(dial, stdout))
	rc.AddCommand(newDisableCommand(dial, stdout))
	rc.AddCommand(newPutCommand(dial, stdout))
	rc.AddCommand(newGetCommand(dial, stdout))
	rc.AddCommand(newScanCommand(dial, stdout))
	rc.AddCommand(newDeleteRowCommand(dial, stdout))

	rc.SetIn(stdin)
	rc.SetOut(stdout)
	rc.SetErr(stderr)
	return rc
}

type dialFunc func(cmd *cobra.Command) (*hbasemap.Connection, error)

// withConnection runs fn on a fresh connection and closes it afterwards.
func withConnection(cmd *cobra.Command, dial dialFunc, fn func(ctx context.Context, c *hbasemap.Connection) error) error {
	c, err := dial(cmd)
	if err != nil {
		return err
	}
	defer c.Close()
	return fn(cmd.Context(), c)
}
