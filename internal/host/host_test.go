package host

import (
	"runtime"
	"testing"
)

func TestDetect(t *testing.T) {
	d := Detect()

	if d.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", d.OS, runtime.GOOS)
	}
	wantPrefix := "lin"
	if runtime.GOOS == "windows" {
		wantPrefix = "win"
	}
	if d.Prefix != wantPrefix {
		t.Errorf("Prefix = %q, want %q", d.Prefix, wantPrefix)
	}
	if d.Bits != 32 && d.Bits != 64 {
		t.Errorf("Bits = %d, want 32 or 64", d.Bits)
	}
	if d.Windows() && d.Linux64() {
		t.Error("host cannot be both Windows and Linux64")
	}
}

func TestLinux64(t *testing.T) {
	tests := []struct {
		d    Descriptor
		want bool
	}{
		{Descriptor{OS: "linux", Prefix: "lin", Bits: 64}, true},
		{Descriptor{OS: "linux", Prefix: "lin", Bits: 32}, false},
		{Descriptor{OS: "windows", Prefix: "win", Bits: 64}, false},
		{Descriptor{OS: "darwin", Prefix: "lin", Bits: 64}, true},
	}
	for _, tt := range tests {
		if got := tt.d.Linux64(); got != tt.want {
			t.Errorf("%+v.Linux64() = %v, want %v", tt.d, got, tt.want)
		}
	}
}
