package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/golang-fips/openssl-conditional/conditional"
)

// NewFlagsCommand creates the flags command.
func NewFlagsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "flags",
		Short: "List capability flag names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := writer{format: rootOpts.Format, w: cmd.OutOrStdout()}
			names := conditional.Names()
			if ok, err := out.structured(names); ok {
				return err
			}
			out.lines(names)
			return nil
		},
	}
}

// NewSymbolsCommand creates the symbols command.
func NewSymbolsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "symbols <flag>",
		Short: "List the symbols gated by a capability flag",
		Example: `  opensslcond symbols Cryptography_HAS_PSK
  opensslcond symbols --format json Cryptography_HAS_FIPS`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			syms, err := conditional.Symbols(args[0])
			if errors.Is(err, conditional.ErrUnknownFlag) {
				return WrapExitError(ExitCommandError, "symbols", err)
			}
			if err != nil {
				return err
			}
			out := writer{format: rootOpts.Format, w: cmd.OutOrStdout()}
			if ok, err := out.structured(syms); ok {
				return err
			}
			out.lines(syms)
			return nil
		},
	}
}

// NewDumpCommand creates the dump command.
func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the whole flag to symbols table",
		Long: `Print the whole conditional table, in table order.

The JSON and YAML forms are a single object mapping each flag to its symbols,
the form consumed by binding loaders.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := writer{format: rootOpts.Format, w: cmd.OutOrStdout()}
			tbl := conditional.All()
			if ok, err := out.structured(tbl); ok {
				return err
			}
			for _, e := range tbl {
				fmt.Fprintf(out.w, "%s: %s\n", e.Name, strings.Join(e.Symbols, " "))
			}
			return nil
		},
	}
}
