// Package host describes the machine the driver runs on.
package host

import "runtime"

// Descriptor captures the host facts that influence a build: the OS
// family prefix used in directory names and the kernel bit width. It is
// computed once at startup and passed around explicitly.
type Descriptor struct {
	OS     string // runtime.GOOS value
	Prefix string // "win" on Windows, "lin" everywhere else
	Bits   int    // 32 or 64
}

// Detect inspects the current machine.
func Detect() Descriptor {
	prefix := "lin"
	if runtime.GOOS == "windows" {
		prefix = "win"
	}
	return Descriptor{
		OS:     runtime.GOOS,
		Prefix: prefix,
		Bits:   kernelBits(),
	}
}

// Windows reports whether builds need the developer-prompt environment.
func (d Descriptor) Windows() bool { return d.Prefix == "win" }

// Linux64 reports whether this is a 64-bit Linux-like host, the one
// combination that needs -m32 overrides to produce x86 binaries.
func (d Descriptor) Linux64() bool { return d.Prefix == "lin" && d.Bits == 64 }
