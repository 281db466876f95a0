package cmds

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bloomdict/bloomdict"
	"github.com/bloomdict/bloomdict/artifact"
	"github.com/bloomdict/bloomdict/internal/wordlist"
	"github.com/bloomdict/bloomdict/pkg/log"
)

var matchesOnly bool

var checkCmd = &cobra.Command{
	Use:   "check [flags] ARTIFACT [WORD...]",
	Short: "Check words against a filter artifact",
	Long: `check answers membership for each word against the filter stored in
ARTIFACT. Words come from the command line, or from stdin one per line
when none are given. A word reported as present might still be a false
positive; a word reported as absent is certainly not in the dictionary.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, codec, err := artifact.ReadFile(args[0])
		if err != nil {
			return err
		}
		log.Debugf("loaded %s: codec %s, %d bits, %d hashes, %d inserts, estimated false positive rate %.4g",
			args[0], codec, filter.MBits, filter.K, filter.NInserted, filter.FalsePositiveRate())
		words := args[1:]
		if len(words) == 0 {
			if words, err = wordlist.Read(cmd.InOrStdin()); err != nil {
				return err
			}
		}
		matches := checkWords(cmd.OutOrStdout(), filter, words, matchesOnly)
		log.Infof("%d of %d words might be in the dictionary, estimated false positive rate %.4g",
			matches, len(words), filter.FalsePositiveRate())
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVarP(&matchesOnly, "matches-only", "m", false, "print only words that might be in the dictionary")
	rootCmd.AddCommand(checkCmd)
}

func checkWords(out io.Writer, filter *bloomdict.Filter, words []string, matchesOnly bool) int {
	matches := 0
	for _, word := range words {
		might := filter.MightContainString(word)
		if might {
			matches++
		}
		if might || !matchesOnly {
			fmt.Fprintln(out, resultLine(word, might))
		}
	}
	return matches
}

func resultLine(word string, might bool) string {
	if might {
		return word + " MIGHT BE in the dictionary"
	}
	return word + " is DEFINITELY NOT in the dictionary"
}
