package main

import "github.com/spf13/pflag"

// termFlags holds the input-size flags shared between qmc solve and qmc
// truth-table: both need a width and a don't-care list, and little else.
type termFlags struct {
	width     int
	dontcares []int
}

// newTermFlagSet builds a standalone flag set for tf's fields so callers can
// merge it into a subcommand's own flags with AddFlagSet, instead of
// repeating the --width/--dontcares/--dc registration per subcommand.
func newTermFlagSet(tf *termFlags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("terms", pflag.ContinueOnError)
	fs.IntVar(&tf.width, "width", 0, "number of input variables (required)")
	fs.IntSliceVar(&tf.dontcares, "dontcares", nil, "don't-care indices")
	fs.IntSliceVar(&tf.dontcares, "dc", nil, "alias for --dontcares")
	return fs
}
