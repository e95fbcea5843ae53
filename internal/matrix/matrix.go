// Package matrix enumerates the build cells of a matrix build.
package matrix

// Supported flag values, in default order.
var (
	Arches  = []string{ArchX64, ArchX86}
	Configs = []string{ConfigDebug, ConfigRelWithDebInfo}
)

const (
	ArchX64 = "x64"
	ArchX86 = "x86"

	ConfigDebug          = "Debug"
	ConfigRelWithDebInfo = "RelWithDebInfo"
)

// Cell is one (architecture, configuration) pair built as a unit.
type Cell struct {
	Arch   string
	Config string
}

// String returns "arch/config", the form used in status messages.
func (c Cell) String() string { return c.Arch + "/" + c.Config }

// DirName derives the per-cell directory name from the host prefix.
// Distinct cells map to distinct names for a fixed prefix.
func (c Cell) DirName(prefix string) string {
	return prefix + c.Arch + "-" + c.Config
}

// Cells returns the cartesian product of arches and configs,
// architecture-major, both in the order given. The order is observable:
// a failing run stops at the first cell that breaks.
func Cells(arches, configs []string) []Cell {
	cells := make([]Cell, 0, len(arches)*len(configs))
	for _, arch := range arches {
		for _, config := range configs {
			cells = append(cells, Cell{Arch: arch, Config: config})
		}
	}
	return cells
}
