package cmds

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bloomdict/bloomdict"
	"github.com/bloomdict/bloomdict/artifact"
)

var infoCmd = &cobra.Command{
	Use:   "info ARTIFACT",
	Short: "Describe a filter artifact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, codec, err := artifact.ReadFile(args[0])
		if err != nil {
			return err
		}
		writeInfo(cmd.OutOrStdout(), args[0], codec, filter)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func writeInfo(out io.Writer, path string, codec artifact.Codec, f *bloomdict.Filter) {
	set := f.PopCount()
	fmt.Fprintf(out, "artifact: %s\n", path)
	fmt.Fprintf(out, "    Codec: %s\n", codec)
	fmt.Fprintf(out, "    Bits: %d\n", f.MBits)
	fmt.Fprintf(out, "    Hashes: %d\n", f.K)
	fmt.Fprintf(out, "    Inserted: %d\n", f.NInserted)
	fmt.Fprintf(out, "    Set bits: %d (%.1f%%)\n", set, 100*float64(set)/float64(f.MBits))
	fmt.Fprintf(out, "    Estimated false positive rate: %.4g\n", f.FalsePositiveRate())
}
