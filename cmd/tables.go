package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/challenai/hbasemap"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newTablesCommand(dial dialFunc, stdout io.Writer) *cobra.Command {
	var physical bool
	tc := &cobra.Command{
		Use:   "tables",
		Short: "List tables.",
		Long:  "List the tables under the configured prefix, or every table with --physical.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConnection(cmd, dial, func(ctx context.Context, c *hbasemap.Connection) error {
				var (
					names []string
					err   error
				)
				if physical {
					names, err = c.PhysicalTables(ctx)
				} else {
					names, err = c.Tables(ctx)
				}
				if err != nil {
					return err
				}
				for _, n := range names {
					fmt.Fprintln(stdout, n)
				}
				return nil
			})
		},
	}
	tc.Flags().BoolVar(&physical, "physical", false, "List stored names of all tables, unprefixed.")
	return tc
}

func newCreateCommand(dial dialFunc, stdout io.Writer) *cobra.Command {
	var families []string
	cc := &cobra.Command{
		Use:   "create <table>",
		Short: "Create a table.",
		Long: `Create a table with one or more column families.

Each --family is a family name optionally followed by comma separated
options, for example:

    hbasectl create users --family info --family hist,max_versions=10,compression=GZ
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fams, err := parseFamilies(families)
			if err != nil {
				return err
			}
			return withConnection(cmd, dial, func(ctx context.Context, c *hbasemap.Connection) error {
				t, err := c.CreateTable(ctx, args[0], fams)
				if err != nil {
					return err
				}
				fmt.Fprintf(stdout, "created %s\n", t.Name())
				return nil
			})
		},
	}
	cc.Flags().StringArrayVarP(&families, "family", "f", nil, "Column family, as name[,option=value...]. Repeatable.")
	return cc
}

func newDeleteCommand(dial dialFunc, stdout io.Writer) *cobra.Command {
	var disable bool
	dc := &cobra.Command{
		Use:   "delete <table>",
		Short: "Delete a table.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConnection(cmd, dial, func(ctx context.Context, c *hbasemap.Connection) error {
				if err := c.DeleteTable(ctx, args[0], disable); err != nil {
					return err
				}
				fmt.Fprintf(stdout, "deleted %s\n", c.Table(args[0]).Name())
				return nil
			})
		},
	}
	dc.Flags().BoolVar(&disable, "disable", false, "Disable the table first if it is enabled.")
	return dc
}

func newEnableCommand(dial dialFunc, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "enable <table>",
		Short: "Enable a table.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConnection(cmd, dial, func(ctx context.Context, c *hbasemap.Connection) error {
				if err := c.EnableTable(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(stdout, "enabled %s\n", c.Table(args[0]).Name())
				return nil
			})
		},
	}
}

func newDisableCommand(dial dialFunc, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "disable <table>",
		Short: "Disable a table.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConnection(cmd, dial, func(ctx context.Context, c *hbasemap.Connection) error {
				if err := c.DisableTable(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(stdout, "disabled %s\n", c.Table(args[0]).Name())
				return nil
			})
		},
	}
}

// parseFamilies turns "name[,key=value...]" flag values into Families.
// Values that parse as integers or booleans are passed as such.
func parseFamilies(specs []string) (hbasemap.Families, error) {
	if len(specs) == 0 {
		return nil, errors.New("at least one --family is required")
	}
	fams := make(hbasemap.Families, len(specs))
	for _, spec := range specs {
		parts := strings.Split(spec, ",")
		name := strings.TrimSpace(parts[0])
		if name == "" {
			return nil, errors.Errorf("family %q has no name", spec)
		}
		if _, ok := fams[name]; ok {
			return nil, errors.Errorf("family %s given twice", name)
		}
		var opts hbasemap.FamilyOptions
		for _, kv := range parts[1:] {
			k, v, ok := strings.Cut(kv, "=")
			if !ok || k == "" {
				return nil, errors.Errorf("family %s: option %q is not key=value", name, kv)
			}
			if opts == nil {
				opts = hbasemap.FamilyOptions{}
			}
			opts[strings.TrimSpace(k)] = optionValue(strings.TrimSpace(v))
		}
		fams[name] = opts
	}
	return fams, nil
}

func optionValue(s string) interface{} {
	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		return int32(n)
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}
