package daemon

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/livp123/dpdkintel/internal/runmode"
	"github.com/livp123/dpdkintel/internal/utils/fileutil"
	"github.com/livp123/dpdkintel/internal/utils/logger"
)

// managePidFile writes the current PID to path. A file left behind by a dead
// process is replaced.
// managePidFile 将当前 PID 写入 path，已退出进程遗留的文件会被替换。
func managePidFile(path string) error {
	if data, err := os.ReadFile(path); err == nil {
		if pid, err := strconv.Atoi(strings.TrimSpace(string(data))); err == nil && processAlive(pid) {
			return fmt.Errorf("PID file %s exists and process %d is running", path, pid)
		}
	}
	pid := os.Getpid()
	if err := fileutil.AtomicWriteFile(path, []byte(strconv.Itoa(pid)), 0644); err != nil {
		return fmt.Errorf("failed to write PID file: %v", err)
	}
	return nil
}

func processAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := syscall.Kill(pid, 0)
	return err == nil || errors.Is(err, syscall.EPERM)
}

func removePidFile(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		logger.Get(ctx).Warnf("[WARN] Failed to remove PID file: %v", err)
	}
}

// waitForShutdown blocks until ctx is done or SIGINT/SIGTERM arrives. A worker
// that ends on its own is reported and left down.
// waitForShutdown 阻塞直到 ctx 结束或收到 SIGINT/SIGTERM。自行退出的工作线程只会被记录，不会重启。
func waitForShutdown(ctx context.Context, workers []*runmode.Worker) {
	log := logger.Get(ctx)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)

	exited := make(chan *runmode.Worker, len(workers))
	for _, w := range workers {
		go func(w *runmode.Worker) {
			select {
			case <-w.Done():
				exited <- w
			case <-ctx.Done():
			}
		}(w)
	}

	for {
		select {
		case <-ctx.Done():
			log.Infof("[STOP] Context done, shutting down...")
			return
		case s := <-sig:
			log.Infof("[STOP] Received %s, shutting down...", s)
			return
		case w := <-exited:
			if err := w.Err(); err != nil {
				log.Errorf("[ERROR] Worker %s stopped: %v", w.Name(), err)
			} else {
				log.Warnf("[WARN] Worker %s stopped", w.Name())
			}
		}
	}
}
