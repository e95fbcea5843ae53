// Package cmake wraps the cmake configure/build workflow.
package cmake

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"
)

type defineValue struct {
	value    string
	typeName string
}

// CMake drives one out-of-tree CMake build: every step runs with the
// build directory as its working directory and the source directory as a
// plain trailing path argument, the way Ninja generators expect.
type CMake struct {
	sourceDir string
	buildDir  string
	generator string
	buildType string
	defines   map[string]defineValue
	environ   []string
	verbose   bool
	stdout    io.Writer
	stderr    io.Writer
}

// New returns a ready-to-use CMake.
func New(sourceDir, buildDir string) *CMake {
	return &CMake{
		sourceDir: sourceDir,
		buildDir:  buildDir,
		defines:   make(map[string]defineValue),
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
}

// Generator sets the CMake generator (e.g. "Ninja", "Unix Makefiles").
func (c *CMake) Generator(name string) { c.generator = name }

// BuildType sets CMAKE_BUILD_TYPE (e.g. "Debug", "RelWithDebInfo").
func (c *CMake) BuildType(name string) { c.buildType = name }

// Define adds a -D<key>:STRING=<value> definition.
func (c *CMake) Define(key, value string) {
	c.defines[key] = defineValue{value: value, typeName: "STRING"}
}

// DefineBool adds a -D<key>:BOOL=ON/OFF definition.
func (c *CMake) DefineBool(key string, value bool) {
	v := "OFF"
	if value {
		v = "ON"
	}
	c.defines[key] = defineValue{value: v, typeName: "BOOL"}
}

// Environ replaces the subprocess environment wholesale. A nil slice
// means inherit the current process environment.
func (c *CMake) Environ(env []string) { c.environ = env }

// Verbose echoes each command line before running it.
func (c *CMake) Verbose(on bool) { c.verbose = on }

// SetStdout redirects subprocess standard output.
func (c *CMake) SetStdout(w io.Writer) { c.stdout = w }

// SetStderr redirects subprocess standard error.
func (c *CMake) SetStderr(w io.Writer) { c.stderr = w }

// ConfigureArgs returns the configure step's argument list: the defines
// sorted by key, the generator, then the source directory.
func (c *CMake) ConfigureArgs() []string {
	if c.buildType != "" {
		c.Define("CMAKE_BUILD_TYPE", c.buildType)
	}
	args := c.definesArgs()
	if c.generator != "" {
		args = append(args, "-G", c.generator)
	}
	return append(args, c.sourceDir)
}

// Configure runs "cmake" in the build directory with all configured
// options. Extra args are appended at the end.
func (c *CMake) Configure(ctx context.Context, args ...string) error {
	return c.run(ctx, append(c.ConfigureArgs(), args...))
}

// Build runs "cmake --build ." in the build directory.
func (c *CMake) Build(ctx context.Context, args ...string) error {
	return c.run(ctx, append([]string{"--build", "."}, args...))
}

func (c *CMake) run(ctx context.Context, args []string) error {
	if c.verbose {
		fmt.Fprintf(c.stderr, "cmake %s (in %s)\n", strings.Join(args, " "), c.buildDir)
	}
	cmd := exec.CommandContext(ctx, "cmake", args...)
	cmd.Dir = c.buildDir
	cmd.Env = c.environ
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr
	return cmd.Run()
}

func (c *CMake) definesArgs() []string {
	if len(c.defines) == 0 {
		return nil
	}
	keys := make([]string, 0, len(c.defines))
	for k := range c.defines {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	args := make([]string, 0, len(keys))
	for _, k := range keys {
		d := c.defines[k]
		args = append(args, "-D"+k+":"+d.typeName+"="+d.value)
	}
	return args
}
