package runmode

import (
	"sort"

	apperrors "github.com/livp123/dpdkintel/pkg/errors"
)

// Mode is a registered runmode.
type Mode struct {
	Name        string
	Description string
}

const workersMode = "workers"

var modes = map[string]Mode{
	workersMode: {
		Name: workersMode,
		Description: "Workers DpdkIntel mode, each thread does all tasks from decoding to logging. " +
			"Acquisition is done by separate core per interface",
	},
}

// DefaultMode returns the runmode used when runmode.name is not set.
func DefaultMode() string {
	return workersMode
}

// Modes lists the registered runmodes by name.
// Modes 按名称列出已注册的运行模式。
func Modes() []Mode {
	out := make([]Mode, 0, len(modes))
	for _, m := range modes {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LookupMode finds a runmode by name. An empty name selects the default.
// LookupMode 按名称查找运行模式，名称为空时选择默认模式。
func LookupMode(name string) (Mode, error) {
	if name == "" {
		name = DefaultMode()
	}
	m, ok := modes[name]
	if !ok {
		return Mode{}, apperrors.NewConfigError("runmode.name", "unknown runmode %q", name)
	}
	return m, nil
}
