package daemon

import (
	"github.com/livp123/dpdkintel/internal/runmode"
)

// DaemonOptions configuration options for the daemon
type DaemonOptions struct {
	// Spawner allows injecting a custom thread spawner.
	// If nil, workers run on pinned OS threads.
	Spawner runmode.Spawner

	// PidPath is written while the daemon runs. Empty disables the PID file.
	PidPath string
}
