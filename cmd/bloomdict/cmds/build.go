package cmds

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/bloomdict/bloomdict"
	"github.com/bloomdict/bloomdict/artifact"
	"github.com/bloomdict/bloomdict/internal/wordlist"
	"github.com/bloomdict/bloomdict/pkg/log"
)

var buildOut string

var buildCmd = &cobra.Command{
	Use:   "build [flags] WORDLIST",
	Short: "Build a filter artifact from a word list",
	Long: `build reads a word list, one word per line, inserts every word into a
filter sized for the target false positive rate and writes the filter
out as a compressed artifact.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		words, err := wordlist.ReadFile(args[0])
		if err != nil {
			return err
		}
		if len(words) == 0 {
			return errors.Errorf("word list %s is empty", args[0])
		}
		codec, err := artifact.ParseCodec(viper.GetString("codec"))
		if err != nil {
			return err
		}
		count := viper.GetUint64("expected-count")
		if count == 0 {
			count = uint64(len(words))
		}
		filter, err := buildFilter(words, count, viper.GetFloat64("rate"), viper.GetInt("workers"))
		if err != nil {
			return err
		}
		out := buildOut
		if out == "" {
			out = args[0] + ".bdf"
		}
		if err := artifact.WriteFile(out, filter, codec); err != nil {
			return err
		}
		set := filter.PopCount()
		log.Infof("built %s: %d words, %d bits, %d hashes, %d set bits (%.1f%%), estimated false positive rate %.4g",
			out, filter.NInserted, filter.MBits, filter.K,
			set, 100*float64(set)/float64(filter.MBits), filter.FalsePositiveRate())
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "artifact path (default WORDLIST.bdf)")
	buildCmd.Flags().String("codec", artifact.DefaultCodec.String(), "artifact compression: none, gzip, snappy or xz")
	buildCmd.Flags().Float64P("rate", "p", 0.01, "target false positive rate")
	buildCmd.Flags().Uint64P("expected-count", "n", 0, "expected word count (default: words in WORDLIST)")
	buildCmd.Flags().Int("workers", 1, "concurrent insert goroutines")
	_ = viper.BindPFlag("codec", buildCmd.Flags().Lookup("codec"))
	_ = viper.BindPFlag("rate", buildCmd.Flags().Lookup("rate"))
	_ = viper.BindPFlag("expected-count", buildCmd.Flags().Lookup("expected-count"))
	_ = viper.BindPFlag("workers", buildCmd.Flags().Lookup("workers"))
	rootCmd.AddCommand(buildCmd)
}

// buildFilter sizes a filter for count words and inserts all of them,
// splitting the list across goroutines when workers is above one.
func buildFilter(words []string, count uint64, rate float64, workers int) (*bloomdict.Filter, error) {
	filter, err := bloomdict.New(count, rate)
	if err != nil {
		return nil, errors.Wrapf(err, "size filter for %d words at rate %v", count, rate)
	}
	if workers <= 1 {
		for _, w := range words {
			filter.InsertString(w)
		}
		return filter, nil
	}
	var g errgroup.Group
	chunk := (len(words) + workers - 1) / workers
	for start := 0; start < len(words); start += chunk {
		part := words[start:min(start+chunk, len(words))]
		g.Go(func() error {
			for _, w := range part {
				filter.InsertAtomicString(w)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return filter, nil
}
