//go:build !linux

package runmode

// setAffinity is a no-op where sched_setaffinity(2) does not exist.
func setAffinity(cpu int) error {
	return nil
}

func setThreadName(name string) {}
