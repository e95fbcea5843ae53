// Package vsenv captures the Visual Studio developer environment.
//
// CMake generating Ninja files needs the compiler environment that
// vcvarsall.bat sets up for the target architecture. The batch file is
// run through the shell with "& set" appended and the resulting variable
// dump is parsed. See
// https://dmerej.info/blog/post/cmake-visual-studio-and-the-command-line/.
package vsenv

import (
	"context"
	"os/exec"
	"sort"
	"strings"
)

// DefaultDevPrompt is where Visual Studio 2019 Community installs
// vcvarsall.bat.
const DefaultDevPrompt = `C:\Program Files (x86)\Microsoft Visual Studio\2019\Community\VC\Auxiliary\Build\vcvarsall.bat`

// Source runs the developer-prompt batch file for arch ("x64" or "x86")
// and returns the environment it sets up. The exit status is ignored: a
// missing or broken script yields an empty or partial mapping, which then
// surfaces as a configure failure for that cell.
func Source(ctx context.Context, batFile, arch string) map[string]string {
	cmd := exec.CommandContext(ctx, "cmd", "/c", `"`+batFile+`" `+arch+` & set`)
	out, _ := cmd.Output()
	return ParseSet(out)
}

// ParseSet parses the output of the "set" builtin into a map. Lines
// without an "=" are skipped; only the first "=" separates key from
// value, so "FOO=bar=baz" maps FOO to "bar=baz".
func ParseSet(out []byte) map[string]string {
	env := make(map[string]string)
	for _, line := range strings.Split(string(out), "\n") {
		if !strings.Contains(line, "=") {
			continue
		}
		key, value, _ := strings.Cut(strings.TrimSpace(line), "=")
		env[key] = value
	}
	return env
}

// Environ flattens a captured environment into the sorted "key=value"
// form expected by exec.Cmd.
func Environ(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+env[k])
	}
	return out
}
