package internal

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/cellbuild/cellbuild/internal/driver"
	"github.com/cellbuild/cellbuild/internal/host"
	"github.com/cellbuild/cellbuild/internal/matrix"
	"github.com/cellbuild/cellbuild/internal/vsenv"
	"github.com/spf13/cobra"
)

// errBuildFailed signals a failed matrix cell; the driver has already
// reported which one.
var errBuildFailed = errors.New("build failed")

var (
	buildRunTests  bool
	buildConfigs   []string
	buildArches    []string
	buildSource    string
	buildDevPrompt string
	buildVerbose   bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build every cell of the matrix",
	Long: `Build runs the CMake configure and build steps once per requested
architecture/configuration pair. With no flags the full matrix
{x64,x86} x {Debug,RelWithDebInfo} is built.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	addBuildFlags(rootCmd)
	addBuildFlags(buildCmd)
	rootCmd.AddCommand(buildCmd)
}

func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&buildRunTests, "run-tests", false, "Compile the project's tests as well")
	cmd.Flags().StringArrayVar(&buildArches, "arch", nil, "Architecture to build (x64|x86); repeatable, default both")
	cmd.Flags().StringArrayVar(&buildConfigs, "configuration", nil, "Configuration to build (Debug|RelWithDebInfo); repeatable, default both")
	cmd.Flags().StringVar(&buildSource, "source", ".", "Project root containing CMakeLists.txt")
	cmd.Flags().StringVar(&buildDevPrompt, "dev-prompt", vsenv.DefaultDevPrompt, "Path of the Visual Studio vcvarsall.bat (Windows only)")
	cmd.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Echo external command lines")
}

func runBuild(cmd *cobra.Command, args []string) error {
	cells, err := resolveMatrix(buildArches, buildConfigs)
	if err != nil {
		return err
	}

	d, err := driver.New(host.Detect(), driver.Options{
		RunTests:  buildRunTests,
		Source:    buildSource,
		DevPrompt: buildDevPrompt,
		Verbose:   buildVerbose,
	})
	if err != nil {
		return err
	}
	if err := d.Run(cmd.Context(), cells); err != nil {
		return errBuildFailed
	}
	return nil
}

// resolveMatrix validates the flag values and expands them into the
// cell list, defaulting to the full matrix when a dimension is omitted.
func resolveMatrix(arches, configs []string) ([]matrix.Cell, error) {
	if len(arches) == 0 {
		arches = matrix.Arches
	}
	if len(configs) == 0 {
		configs = matrix.Configs
	}
	for _, arch := range arches {
		if !slices.Contains(matrix.Arches, arch) {
			return nil, fmt.Errorf("unknown arch %q (choose from %s)", arch, strings.Join(matrix.Arches, ", "))
		}
	}
	for _, config := range configs {
		if !slices.Contains(matrix.Configs, config) {
			return nil, fmt.Errorf("unknown configuration %q (choose from %s)", config, strings.Join(matrix.Configs, ", "))
		}
	}
	return matrix.Cells(arches, configs), nil
}
