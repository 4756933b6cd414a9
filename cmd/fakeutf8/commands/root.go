package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/fakeutf8/codec"
	"github.com/wippyai/fakeutf8/guest"
	"github.com/wippyai/fakeutf8/transcoder"
)

const (
	formatUnits  = "units"
	formatHex    = "hex"
	formatLatin1 = "latin1"
)

type options struct {
	log     *zap.Logger
	tc      *transcoder.Transcoder
	codec   string
	format  string
	strict  bool
	verbose bool
}

// setup builds the logger and transcoder from the parsed flags.
func (o *options) setup() error {
	o.log = zap.NewNop()
	if o.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		o.log = l
		transcoder.SetLogger(l)
		guest.SetLogger(l)
	}

	c, err := codec.Lookup(o.codec)
	if err != nil {
		return err
	}

	switch o.format {
	case formatUnits, formatHex, formatLatin1:
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", o.format, formatUnits, formatHex, formatLatin1)
	}

	o.tc = transcoder.New(
		transcoder.WithCodec(c),
		transcoder.WithStrictUnits(o.strict),
		transcoder.WithLogger(o.log),
	)
	o.log.Debug("transcoder ready",
		zap.String("codec", c.Name()),
		zap.Bool("strict", o.strict),
		zap.String("format", o.format))
	return nil
}

// NewRootCommand builds the command tree. Each call has its own flag state.
func NewRootCommand() *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:          "fakeutf8",
		Short:        "Convert between host strings and fake UTF-8 carriers",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.log != nil {
				_ = o.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&o.codec, "codec", "text", fmt.Sprintf("UTF-8 codec %v", codec.Names()))
	root.PersistentFlags().BoolVar(&o.strict, "strict", false, "reject units above 0xFF when repairing")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "log to stderr")
	root.PersistentFlags().StringVarP(&o.format, "format", "f", formatUnits, "carrier output format (units, hex, latin1)")

	root.AddCommand(widenCmd(o), narrowCmd(o), repairCmd(o), concatCmd(o), interactiveCmd(o))
	return root
}

func Execute() error {
	return NewRootCommand().Execute()
}
