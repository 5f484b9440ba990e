package runmode

import (
	"runtime"

	apperrors "github.com/livp123/dpdkintel/pkg/errors"
)

// Spawner starts fn on its own thread pinned to cpu. Spawn returns once the
// thread is running, or with the reason it could not start.
// Spawner 在绑定到 cpu 的独立线程上启动 fn。线程运行后 Spawn 返回，失败时返回原因。
type Spawner interface {
	Spawn(name string, cpu int, fn func()) error
}

// PinnedSpawner runs each worker on a locked OS thread with its affinity set
// to a single core. The thread is discarded when the worker returns.
// PinnedSpawner 在锁定的 OS 线程上运行每个工作线程，并将亲和性设为单个核心。
// 工作线程返回后该线程被丢弃。
type PinnedSpawner struct{}

func (PinnedSpawner) Spawn(name string, cpu int, fn func()) error {
	ack := make(chan error, 1)
	go func() {
		// no UnlockOSThread: the thread exits with the goroutine
		runtime.LockOSThread()
		if err := setAffinity(cpu); err != nil {
			ack <- err
			return
		}
		setThreadName(name)
		ack <- nil
		fn()
	}()
	if err := <-ack; err != nil {
		return apperrors.NewThreadStartError(name, err)
	}
	return nil
}
