package runmode

import (
	"context"
	"fmt"

	"github.com/livp123/dpdkintel/internal/cpu"
	"github.com/livp123/dpdkintel/internal/utils/logger"
	apperrors "github.com/livp123/dpdkintel/pkg/errors"
	"github.com/livp123/dpdkintel/pkg/sdk"
)

// Builder wires, pins and starts the worker fleet.
// Builder 负责装配、绑核并启动工作线程。
type Builder struct {
	Registry *sdk.Registry
	Cores    *cpu.Allocator
	// Detect adds the Detect module between stream reassembly and respond.
	Detect bool
	// Outputs attaches output modules to a worker before it starts. Optional.
	Outputs func(ctx context.Context, wc *sdk.WorkerContext) error
	// Spawner defaults to PinnedSpawner.
	Spawner Spawner
	// Prefix of worker thread names, the worker index is appended.
	Prefix string
}

// Chain returns the module chain every worker runs, in order.
// Chain 返回每个工作线程按顺序运行的模块链。
func (b *Builder) Chain() []sdk.ModuleID {
	chain := []sdk.ModuleID{sdk.ModuleReceive, sdk.ModuleDecode, sdk.ModuleStreamTCP}
	if b.Detect {
		chain = append(chain, sdk.ModuleDetect)
	}
	return append(chain, sdk.ModuleRespondReject)
}

// Build starts n workers one after another. Each worker is fully wired and
// running before the next one is built. On the first failure every worker
// started so far is stopped and only the error is returned.
// Build 依次启动 n 个工作线程，每个线程完全装配并运行后才构建下一个。
// 首次失败时停止已启动的所有线程，仅返回错误。
func (b *Builder) Build(ctx context.Context, n int, binder *Binder) ([]*Worker, error) {
	log := logger.Get(ctx)
	workers := make([]*Worker, 0, n)
	for i := 0; i < n; i++ {
		w, err := b.build(ctx, i, binder)
		if err != nil {
			log.Errorf("[ERROR] Failed to build worker %d: %v", i, err)
			StopAll(workers)
			return nil, err
		}
		workers = append(workers, w)
	}
	log.Infof("[START] %d worker(s) running", len(workers))
	return workers, nil
}

func (b *Builder) build(ctx context.Context, i int, binder *Binder) (w *Worker, err error) {
	if b.Prefix == "" {
		return nil, apperrors.NewResourceError(fmt.Sprintf("name of worker %d", i), fmt.Errorf("empty thread prefix"))
	}
	name := fmt.Sprintf("%s%d", b.Prefix, i)

	binding, err := binder.Bind(i)
	if err != nil {
		return nil, err
	}

	chain := b.Chain()
	receiver, stages, err := b.resolve(ctx, chain, binding)
	if err != nil {
		return nil, err
	}
	// Until the thread runs, the stages are ours to close.
	// 线程启动前，模块由此处负责关闭。
	defer func() {
		if err != nil {
			closeStages(ctx, name, append([]sdk.Stage{receiver}, stages...))
		}
	}()

	core, err := b.Cores.Next()
	if err != nil {
		return nil, err
	}

	wc := sdk.WorkerContext{Name: name, Chain: chain, CPU: core}
	if b.Outputs != nil {
		if err = b.Outputs(ctx, &wc); err != nil {
			return nil, fmt.Errorf("failed to set up outputs of %s: %w", name, err)
		}
	}

	w = newWorker(wc, binding, receiver, stages)
	wctx, cancel := context.WithCancel(logger.Named(ctx, name))
	w.cancel = cancel

	spawner := b.Spawner
	if spawner == nil {
		spawner = PinnedSpawner{}
	}
	if err = spawner.Spawn(name, core, func() { w.run(wctx) }); err != nil {
		cancel()
		return nil, err
	}
	w.started = true
	return w, nil
}

// resolve instantiates every module of chain. The first one must acquire packets.
func (b *Builder) resolve(ctx context.Context, chain []sdk.ModuleID, binding *sdk.Binding) (sdk.Receiver, []sdk.Stage, error) {
	stages := make([]sdk.Stage, 0, len(chain))
	fail := func(err error) (sdk.Receiver, []sdk.Stage, error) {
		closeStages(ctx, binding.Interface, stages)
		return nil, nil, err
	}
	for _, id := range chain {
		factory, ok := b.Registry.Lookup(id)
		if !ok {
			return fail(apperrors.NewModuleError(id.String(), "not registered"))
		}
		st, err := factory(binding)
		if err != nil {
			return fail(apperrors.NewModuleError(id.String(), err.Error()))
		}
		if st == nil {
			return fail(apperrors.NewModuleError(id.String(), "factory returned no stage"))
		}
		stages = append(stages, st)
	}
	receiver, ok := stages[0].(sdk.Receiver)
	if !ok {
		return fail(apperrors.NewModuleError(chain[0].String(), "does not acquire packets"))
	}
	return receiver, stages[1:], nil
}
