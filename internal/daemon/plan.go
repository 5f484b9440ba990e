package daemon

import (
	"context"
	"fmt"

	"github.com/livp123/dpdkintel/internal/config"
	"github.com/livp123/dpdkintel/internal/cpu"
	"github.com/livp123/dpdkintel/internal/dpdk"
	"github.com/livp123/dpdkintel/internal/runmode"
	"github.com/livp123/dpdkintel/internal/utils/logger"
	apperrors "github.com/livp123/dpdkintel/pkg/errors"
	"github.com/livp123/dpdkintel/pkg/sdk"
)

// Plan is the worker topology derived from a configuration, before any
// thread exists.
// Plan 是由配置推导出的工作线程拓扑，此时尚未创建任何线程。
type Plan struct {
	Mode     runmode.Mode
	Config   *runmode.GlobalDpdkConfig
	PortMap  runmode.PortMap
	Workers  int
	Names    []string
	Bindings []*sdk.Binding
	Cores    []int
	Detect   bool
	Chain    []sdk.ModuleID
}

// Prepare resolves the port map, sizes the fleet and binds every worker
// without starting anything. hostDetect is the engine's own Detect switch.
// Prepare 解析端口映射、计算工作线程数并为每个线程生成绑定，不启动任何线程。
// hostDetect 是引擎自身的 Detect 开关。
func Prepare(ctx context.Context, cfg *config.GlobalConfig, src dpdk.PortSource, hostDetect bool) (*Plan, error) {
	log := logger.Get(ctx)

	mode, err := runmode.LookupMode(cfg.Runmode.Name)
	if err != nil {
		return nil, err
	}

	gc, pm, err := runmode.Resolve(ctx, cfg.Tree, src.Devices(), src.PortCount())
	if err != nil {
		return nil, err
	}

	n, err := runmode.EstimateWorkers(src)
	if err != nil {
		return nil, err
	}
	if n < gc.Ports {
		return nil, apperrors.NewConfigError("dpdkintel.inputs", "%d worker(s) for %d configured interface(s)", n, gc.Ports)
	}
	log.Infof("[CONF] %d worker(s) for %d live port(s)", n, src.PortCount())

	policy, err := runmode.NewDetectPolicy(cfg.Runmode.Detect, cfg.Runmode.DetectPolicy)
	if err != nil {
		return nil, err
	}
	detect, err := policy.Allow(runmode.PolicyEnv{Mode: gc.Mode.String(), Ports: gc.Ports, Workers: n})
	if err != nil {
		return nil, apperrors.NewConfigError("runmode.detect_policy", "%v", err)
	}
	detect = detect && hostDetect

	binder, err := runmode.NewBinder(gc, pm, src)
	if err != nil {
		return nil, err
	}
	cores, err := cpu.NewAllocator(ctx, cfg.Runmode.CPUs)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Mode:    mode,
		Config:  gc,
		PortMap: pm,
		Workers: n,
		Detect:  detect,
		Chain:   (&runmode.Builder{Detect: detect}).Chain(),
	}
	for i := 0; i < n; i++ {
		b, err := binder.Bind(i)
		if err != nil {
			return nil, err
		}
		core, err := cores.Next()
		if err != nil {
			return nil, err
		}
		plan.Names = append(plan.Names, fmt.Sprintf("%s%d", cfg.Runmode.ThreadPrefix, i))
		plan.Bindings = append(plan.Bindings, b)
		plan.Cores = append(plan.Cores, core)
	}
	return plan, nil
}
