package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func widenCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "widen [text]",
		Short: "Print the UTF-8 carrier of text",
		Example: `  fakeutf8 widen 'foo·bar'
  fakeutf8 widen -f latin1 'foo·bar'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			c := o.tc.WidenString(text)
			fmt.Fprintln(cmd.OutOrStdout(), formatCarrier(c, o.format))
			return nil
		},
	}
}
