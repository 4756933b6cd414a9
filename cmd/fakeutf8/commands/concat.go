package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/fakeutf8/guest"
	"github.com/wippyai/fakeutf8/transcoder"
)

func concatCmd(o *options) *cobra.Command {
	var (
		layout string
		pages  uint32
	)

	cmd := &cobra.Command{
		Use:   "concat <a> <b>",
		Short: "Join two strings inside a byte-blind wasm guest",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := guest.ParseLayout(layout)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			engine, err := guest.NewEngine(ctx, &guest.Config{MemoryLimitPages: pages})
			if err != nil {
				return fmt.Errorf("create engine: %w", err)
			}
			defer engine.Close(ctx)

			inst, err := engine.Instantiate(ctx, guest.BytesModule)
			if err != nil {
				return err
			}
			defer inst.Close(ctx)

			b := guest.NewBridge(inst.Memory(), inst.Arena(), o.tc, l)
			s, err := b.Concat(ctx, inst, transcoder.FromString(args[0]), transcoder.FromString(args[1]))
			if err != nil {
				return err
			}

			o.log.Debug("concat done", zap.Stringer("layout", l), zap.Int("units", len(s)))
			fmt.Fprintln(cmd.OutOrStdout(), s.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&layout, "layout", guest.LayoutBytes.String(), "carrier layout in guest memory (bytes, units)")
	cmd.Flags().Uint32Var(&pages, "memory-pages", 0, "guest memory limit in 64KiB pages (0 = runtime default)")
	return cmd
}
