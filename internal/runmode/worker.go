package runmode

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"

	"github.com/livp123/dpdkintel/internal/utils/fmtutil"
	"github.com/livp123/dpdkintel/internal/utils/logger"
	"github.com/livp123/dpdkintel/pkg/sdk"
)

// Worker is one pinned thread running its module chain to completion for
// every packet before taking the next one.
// Worker 是一个绑核线程，每个数据包都会完整地走完模块链后才获取下一个。
type Worker struct {
	wc       sdk.WorkerContext
	binding  *sdk.Binding
	receiver sdk.Receiver
	stages   []sdk.Stage

	cancel  context.CancelFunc
	done    chan struct{}
	started bool

	mu  sync.Mutex
	err error

	packets atomic.Uint64
	dropped atomic.Uint64
}

func newWorker(wc sdk.WorkerContext, b *sdk.Binding, rx sdk.Receiver, stages []sdk.Stage) *Worker {
	return &Worker{
		wc:       wc,
		binding:  b,
		receiver: rx,
		stages:   stages,
		done:     make(chan struct{}),
	}
}

func (w *Worker) Name() string               { return w.wc.Name }
func (w *Worker) Context() sdk.WorkerContext { return w.wc }
func (w *Worker) Binding() *sdk.Binding      { return w.binding }
func (w *Worker) Packets() uint64            { return w.packets.Load() }
func (w *Worker) Errors() uint64             { return w.dropped.Load() }
func (w *Worker) Done() <-chan struct{}      { return w.done }

// Err returns the error that ended the loop, if any.
func (w *Worker) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

// Stop cancels the loop and waits for it to return.
// Stop 取消循环并等待其返回。
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.started {
		<-w.done
	}
}

func (w *Worker) run(ctx context.Context) {
	defer close(w.done)
	defer w.closeStages(ctx)

	log := logger.Get(ctx)
	log.Infof("[START] %s on cpu %d: %s", w.wc.Name, w.wc.CPU, w.binding)

	for {
		if ctx.Err() != nil {
			return
		}
		p, err := w.receiver.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				log.Infof("[STOP] %s: %s packet(s), %s error(s)", w.wc.Name,
					fmtutil.FormatNumber(w.Packets()), fmtutil.FormatNumber(w.Errors()))
				return
			}
			w.setErr(err)
			log.Errorf("[ERROR] %s: receive failed: %v", w.wc.Name, err)
			return
		}
		if p == nil {
			continue
		}
		w.process(ctx, p)
	}
}

// process runs the whole chain on p. A failing stage drops the packet.
func (w *Worker) process(ctx context.Context, p *sdk.Packet) {
	w.packets.Add(1)
	if err := w.receiver.Process(ctx, p); err != nil {
		w.drop(ctx, sdk.ModuleReceive, err)
		return
	}
	for i, st := range w.stages {
		if err := st.Process(ctx, p); err != nil {
			w.drop(ctx, w.wc.Chain[i+1], err)
			return
		}
	}
}

func (w *Worker) drop(ctx context.Context, id sdk.ModuleID, err error) {
	w.dropped.Add(1)
	logger.Get(ctx).Debugf("[DROP] %s: %s: %v", w.wc.Name, id, err)
}

func (w *Worker) setErr(err error) {
	w.mu.Lock()
	w.err = err
	w.mu.Unlock()
}

func (w *Worker) closeStages(ctx context.Context) {
	closeStages(ctx, w.wc.Name, append([]sdk.Stage{w.receiver}, w.stages...))
}

// closeStages closes every stage that holds resources.
func closeStages(ctx context.Context, owner string, stages []sdk.Stage) {
	for _, st := range stages {
		if c, ok := st.(io.Closer); ok {
			if err := c.Close(); err != nil {
				logger.Get(ctx).Warnf("[WARN] %s: close: %v", owner, err)
			}
		}
	}
}

// StopAll stops workers in reverse start order.
// StopAll 按启动的逆序停止工作线程。
func StopAll(workers []*Worker) {
	for i := len(workers) - 1; i >= 0; i-- {
		workers[i].Stop()
	}
}
