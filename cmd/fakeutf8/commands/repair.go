package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wippyai/fakeutf8/transcoder"
)

func repairCmd(o *options) *cobra.Command {
	var units bool

	cmd := &cobra.Command{
		Use:   "repair [text]",
		Short: "Restore text whose UTF-8 bytes were widened into characters",
		Example: `  fakeutf8 repair 'fooÂ·bar'
  fakeutf8 repair --units 0xD8,0xAC,0xD9,0x85,0xD9,0x84`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			if !units {
				s, err := o.tc.RepairString(text)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
				return nil
			}

			list, err := parseUnits(text)
			if err != nil {
				return err
			}
			s, err := o.tc.Repair(transcoder.Corrupted(list))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&units, "units", false, "input is a comma-separated unit list")
	return cmd
}
