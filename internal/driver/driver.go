// Package driver runs the configure/build matrix, one cell at a time.
package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cellbuild/cellbuild/internal/host"
	"github.com/cellbuild/cellbuild/internal/matrix"
	"github.com/cellbuild/cellbuild/internal/vsenv"
	"github.com/cellbuild/cellbuild/x/cmake"
)

// buildSystem is the slice of the cmake wrapper the driver needs.
// Narrowed so tests can fake the external tool.
type buildSystem interface {
	Configure(ctx context.Context, args ...string) error
	Build(ctx context.Context, args ...string) error
}

// Options configures a Driver.
type Options struct {
	RunTests  bool   // pass BUILD_TESTS=ON to the configure step
	Source    string // project root; defaults to the current directory
	DevPrompt string // vcvarsall.bat path; defaults to vsenv.DefaultDevPrompt
	Verbose   bool   // echo external command lines

	Stdout io.Writer // defaults to os.Stdout
	Stderr io.Writer // defaults to os.Stderr
}

// Driver builds every cell of a matrix, stopping at the first failure.
type Driver struct {
	host host.Descriptor
	opts Options

	// newBuildSystem is replaced in tests.
	newBuildSystem func(cell matrix.Cell, buildDir, outputDir string, environ []string) buildSystem
}

// New returns a Driver for the given host. The source directory is
// resolved to an absolute path up front because each step runs with the
// cell's intermediate directory as its working directory.
func New(h host.Descriptor, opts Options) (*Driver, error) {
	if opts.Source == "" {
		opts.Source = "."
	}
	source, err := filepath.Abs(opts.Source)
	if err != nil {
		return nil, err
	}
	opts.Source = source
	if opts.DevPrompt == "" {
		opts.DevPrompt = vsenv.DefaultDevPrompt
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	d := &Driver{host: h, opts: opts}
	d.newBuildSystem = d.newCellCMake
	return d, nil
}

// Run builds each cell in order. It returns nil when the whole matrix
// succeeded, or the first failing step's error with later cells left
// unattempted.
func (d *Driver) Run(ctx context.Context, cells []matrix.Cell) error {
	for _, cell := range cells {
		if err := d.buildCell(ctx, cell); err != nil {
			fmt.Fprintf(d.opts.Stdout, "%s build failed, bailing.\n", cell)
			return err
		}
	}
	fmt.Fprintln(d.opts.Stdout, "All good!")
	return nil
}

func (d *Driver) buildCell(ctx context.Context, cell matrix.Cell) error {
	var environ []string
	if d.host.Windows() {
		// Grab the environment for the right arch from the developer prompt.
		environ = vsenv.Environ(vsenv.Source(ctx, d.opts.DevPrompt, cell.Arch))
	}

	dirName := cell.DirName(d.host.Prefix)
	buildDir := filepath.Join("build", dirName)
	if err := mkdir("build", buildDir); err != nil {
		return err
	}

	// Ninja resolves output directories against its own working directory,
	// so the output override has to be absolute.
	outputDir, err := filepath.Abs(filepath.Join("bin", dirName))
	if err != nil {
		return err
	}
	if err := mkdir("bin", outputDir); err != nil {
		return err
	}

	bs := d.newBuildSystem(cell, buildDir, outputDir, environ)
	if err := bs.Configure(ctx); err != nil {
		return fmt.Errorf("configure %s: %w", cell, err)
	}
	if err := bs.Build(ctx); err != nil {
		return fmt.Errorf("build %s: %w", cell, err)
	}
	return nil
}

// newCellCMake assembles the cmake invocation for one cell.
func (d *Driver) newCellCMake(cell matrix.Cell, buildDir, outputDir string, environ []string) buildSystem {
	c := cmake.New(d.opts.Source, buildDir)
	c.Generator("Ninja")
	c.BuildType(cell.Config)
	c.Define("CMAKE_RUNTIME_OUTPUT_DIRECTORY", outputDir)
	c.Define("CMAKE_LIBRARY_OUTPUT_DIRECTORY", outputDir)
	c.DefineBool("BUILD_TESTS", d.opts.RunTests)
	if d.host.Linux64() && cell.Arch == matrix.ArchX86 {
		// 32-bit binaries on a 64-bit host.
		c.Define("CMAKE_C_FLAGS", "-m32")
		c.Define("CMAKE_CXX_FLAGS", "-m32")
	}
	c.Environ(environ)
	c.Verbose(d.opts.Verbose)
	c.SetStdout(d.opts.Stdout)
	c.SetStderr(d.opts.Stderr)
	return c
}

// mkdir creates dir and its immediate parent, tolerating directories
// that already exist. Creation stays non-recursive: only the build/ and
// bin/ parents are ever assumed missing.
func mkdir(parent, dir string) error {
	for _, p := range []string{parent, dir} {
		if err := os.Mkdir(p, 0o755); err != nil && !errors.Is(err, fs.ErrExist) {
			return err
		}
	}
	return nil
}
