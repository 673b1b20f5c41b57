package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/challenai/hbasemap"
	"github.com/challenai/hbasemap/codec"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// typedValues collects name=value pairs from the --text, --int, --bool and
// --null flags of put.
type typedValues struct {
	text  []string
	ints  []string
	bools []string
	nulls []string
}

func (tv *typedValues) register(fs *pflag.FlagSet) {
	fs.StringArrayVar(&tv.text, "text", nil, "Text column, as name=value. Repeatable.")
	fs.StringArrayVar(&tv.ints, "int", nil, "64-bit integer column, as name=value. Repeatable.")
	fs.StringArrayVar(&tv.bools, "bool", nil, "Boolean column, as name=true|false. Repeatable.")
	fs.StringArrayVar(&tv.nulls, "null", nil, "Column to delete. Repeatable.")
}

// apply sets every collected value on row.
func (tv *typedValues) apply(row *hbasemap.Row) error {
	for _, kv := range tv.text {
		name, v, err := splitAssignment(kv)
		if err != nil {
			return err
		}
		if err := row.SetValue(name, codec.Text(v)); err != nil {
			return err
		}
	}
	for _, kv := range tv.ints {
		name, v, err := splitAssignment(kv)
		if err != nil {
			return err
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "--int %s", name)
		}
		if err := row.SetValue(name, codec.Int64(n)); err != nil {
			return err
		}
	}
	for _, kv := range tv.bools {
		name, v, err := splitAssignment(kv)
		if err != nil {
			return err
		}
		b, err := codec.Decode(codec.KindBool, []byte(v))
		if err != nil {
			return errors.Wrapf(err, "--bool %s", name)
		}
		if err := row.SetValue(name, b); err != nil {
			return err
		}
	}
	for _, name := range tv.nulls {
		if err := row.SetValue(name, codec.Null()); err != nil {
			return err
		}
	}
	return nil
}

func (tv *typedValues) empty() bool {
	return len(tv.text)+len(tv.ints)+len(tv.bools)+len(tv.nulls) == 0
}

func splitAssignment(kv string) (string, string, error) {
	name, v, ok := strings.Cut(kv, "=")
	if !ok || name == "" {
		return "", "", errors.Errorf("%q is not name=value", kv)
	}
	return name, v, nil
}

func newPutCommand(dial dialFunc, stdout io.Writer) *cobra.Command {
	var (
		family    string
		timestamp int64
		values    typedValues
	)
	pc := &cobra.Command{
		Use:   "put <table> <row>",
		Short: "Write columns of a row.",
		Long: `Write columns of a row.

Unqualified column names are placed in --family:

    hbasectl put users alice --family info --text name=Alice --int age=30 --bool active=true
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if values.empty() {
				return errors.New("nothing to write")
			}
			return withConnection(cmd, dial, func(ctx context.Context, c *hbasemap.Connection) error {
				row := c.Table(args[0]).NewRow(args[1], family)
				if cmd.Flags().Changed("timestamp") {
					row.SetTimestamp(timestamp)
				}
				if err := values.apply(row); err != nil {
					return err
				}
				if err := row.Save(ctx); err != nil {
					return err
				}
				fmt.Fprintf(stdout, "saved %s/%s\n", row.Table().Name(), row.ID())
				return nil
			})
		},
	}
	pc.Flags().StringVarP(&family, "family", "f", "", "Family for unqualified column names.")
	pc.Flags().Int64Var(&timestamp, "timestamp", 0, "Explicit cell timestamp.")
	values.register(pc.Flags())
	return pc
}

func newDeleteRowCommand(dial dialFunc, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-row <table> <row>",
		Short: "Delete every column of a row.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConnection(cmd, dial, func(ctx context.Context, c *hbasemap.Connection) error {
				t := c.Table(args[0])
				if err := t.Delete(ctx, args[1]); err != nil {
					return err
				}
				fmt.Fprintf(stdout, "deleted %s/%s\n", t.Name(), args[1])
				return nil
			})
		},
	}
}

// decoding maps columns to the kind they are printed as; other columns are
// printed as quoted text.
type decoding struct {
	family string
	ints   []string
	bools  []string
}

func (d *decoding) register(fs *pflag.FlagSet) {
	fs.StringVarP(&d.family, "family", "f", "", "Family for unqualified column names.")
	fs.StringSliceVar(&d.ints, "int", nil, "Columns to print as 64-bit integers.")
	fs.StringSliceVar(&d.bools, "bool", nil, "Columns to print as booleans.")
}

func (d *decoding) kinds() (map[string]codec.Kind, error) {
	kinds := make(map[string]codec.Kind, len(d.ints)+len(d.bools))
	for _, set := range []struct {
		names []string
		kind  codec.Kind
	}{{d.ints, codec.KindInt64}, {d.bools, codec.KindBool}} {
		for _, name := range set.names {
			column, err := hbasemap.ResolveColumn(name, d.family)
			if err != nil {
				return nil, err
			}
			kinds[column] = set.kind
		}
	}
	return kinds, nil
}

// printResult writes one "row column=value @timestamp" line per cell.
func printResult(w io.Writer, res *hbasemap.Result, kinds map[string]codec.Kind) error {
	for _, column := range res.Columns() {
		cell := res.Cells[column]
		kind, ok := kinds[column]
		if !ok {
			fmt.Fprintf(w, "%s %s=%q @%d\n", res.Key, column, cell.Value, cell.Timestamp)
			continue
		}
		v, err := codec.Decode(kind, cell.Value)
		if err != nil {
			return errors.Wrapf(err, "row %s column %s", res.Key, column)
		}
		fmt.Fprintf(w, "%s %s=%s @%d\n", res.Key, column, v, cell.Timestamp)
	}
	return nil
}

func newGetCommand(dial dialFunc, stdout io.Writer) *cobra.Command {
	var dec decoding
	gc := &cobra.Command{
		Use:   "get <table> <row> [column...]",
		Short: "Read a row.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := dec.kinds()
			if err != nil {
				return err
			}
			columns := make([]string, 0, len(args)-2)
			for _, name := range args[2:] {
				column, err := hbasemap.ResolveColumn(name, dec.family)
				if err != nil {
					return err
				}
				columns = append(columns, column)
			}
			return withConnection(cmd, dial, func(ctx context.Context, c *hbasemap.Connection) error {
				res, err := c.Table(args[0]).Get(ctx, args[1], columns...)
				if err != nil {
					return err
				}
				return printResult(stdout, res, kinds)
			})
		},
	}
	dec.register(gc.Flags())
	return gc
}

func newScanCommand(dial dialFunc, stdout io.Writer) *cobra.Command {
	var (
		dec     decoding
		opts    hbasemap.ScanOptions
		columns []string
	)
	sc := &cobra.Command{
		Use:   "scan <table>",
		Short: "Read a range of rows.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := dec.kinds()
			if err != nil {
				return err
			}
			opts.Family = dec.family
			opts.Columns = opts.Columns[:0]
			for _, name := range columns {
				// A bare name without --family selects a whole family.
				if !strings.Contains(name, ":") && dec.family == "" {
					opts.Columns = append(opts.Columns, name+":")
					continue
				}
				column, err := hbasemap.ResolveColumn(name, dec.family)
				if err != nil {
					return err
				}
				opts.Columns = append(opts.Columns, column)
			}
			return withConnection(cmd, dial, func(ctx context.Context, c *hbasemap.Connection) error {
				results, err := c.Table(args[0]).Scan(ctx, opts)
				if err != nil {
					return err
				}
				for _, res := range results {
					if err := printResult(stdout, res, kinds); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	dec.register(sc.Flags())
	sc.Flags().StringVar(&opts.StartRow, "start", "", "First row key, inclusive.")
	sc.Flags().StringVar(&opts.StopRow, "stop", "", "Last row key, exclusive.")
	sc.Flags().IntVar(&opts.Limit, "limit", 0, "Maximum number of rows; 0 is unlimited.")
	sc.Flags().Int32Var(&opts.BatchSize, "batch", hbasemap.ScanBatchSize, "Rows fetched per round trip.")
	sc.Flags().StringSliceVar(&columns, "column", nil, "Columns or families to read.")
	sc.Flags().StringVar(&opts.Filter, "filter", "", "Server-side filter, e.g. \"PrefixFilter('user-')\".")
	return sc
}
