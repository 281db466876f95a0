package cmds

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/bloomdict/bloomdict/pkg/log"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "bloomdict",
	Short: "Build and query Bloom filter word dictionaries",
	Long: `bloomdict builds a Bloom filter from a word list and answers
membership queries against the resulting artifact. A lookup can report
a false positive at the configured rate but never a false negative.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configFile != "" {
			viper.SetConfigFile(configFile)
			if err := viper.ReadInConfig(); err != nil {
				return errors.Wrapf(err, "read config %s", configFile)
			}
		}
		if viper.GetBool("debug") {
			log.Init(zapcore.DebugLevel)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug level log")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file with flag defaults")
	viper.SetEnvPrefix("bloomdict")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

// Execute runs the command tree. Errors exit with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
