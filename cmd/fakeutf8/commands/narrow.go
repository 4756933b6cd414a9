package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func narrowCmd(o *options) *cobra.Command {
	var units bool

	cmd := &cobra.Command{
		Use:   "narrow [carrier]",
		Short: "Decode a carrier given as hex or as byte units",
		Long: `Decode a carrier given as hex or as byte units.

The carrier is read as a unit list (decimal or 0x-prefixed, separated by
commas or spaces) when --units is set, when it contains a comma or when any
field starts with 0x. Otherwise hex digits forming whole bytes are read as hex,
and anything else that is all decimal is read as a unit list.`,
		Example: `  fakeutf8 narrow 'c2 b7'
  fakeutf8 narrow '0xc2 0xb7'
  fakeutf8 narrow 102,111,111,194,183,98,97,114
  fakeutf8 narrow 128
  fakeutf8 narrow --units '194 183'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			c, err := parseCarrier(text, units)
			if err != nil {
				return err
			}
			s, err := o.tc.Narrow(c)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&units, "units", false, "input is a decimal or 0x unit list")
	return cmd
}
