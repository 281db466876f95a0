package cmds

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of bloomdict",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bloomdict: Bloom filter dictionary CLI\n")
		fmt.Printf("    Version: %s\n", Version)
		if GitCommit != "" {
			fmt.Printf("    Git commit: %s\n", GitCommit)
		}
		if BuildTime != "" {
			fmt.Printf("    Built time: %s\n", BuildTime)
		}
		fmt.Printf("    Built Go version: %s\n", runtime.Version())
		fmt.Printf("    Built OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}
