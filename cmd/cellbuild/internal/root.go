package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cellbuild",
	Short: "cellbuild drives a CMake/Ninja build matrix",
	Long: `cellbuild configures and builds a CMake/Ninja project once per requested
architecture/configuration pair, stopping at the first failing cell.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBuild,
}

// Execute runs the root command and maps any failure to exit code 1.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// The driver already printed which cell failed.
		if !errors.Is(err, errBuildFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
