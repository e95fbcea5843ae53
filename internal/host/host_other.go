//go:build !linux

package host

import "strconv"

// kernelBits falls back to the pointer width the binary was compiled
// with; only Linux needs the kernel probe for the -m32 decision.
func kernelBits() int { return strconv.IntSize }
