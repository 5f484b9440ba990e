package daemon

import (
	"context"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/livp123/dpdkintel/internal/config"
	"github.com/livp123/dpdkintel/internal/cpu"
	"github.com/livp123/dpdkintel/internal/dpdk"
	"github.com/livp123/dpdkintel/internal/metrics"
	"github.com/livp123/dpdkintel/internal/runmode"
	"github.com/livp123/dpdkintel/internal/utils/logger"
	"github.com/livp123/dpdkintel/pkg/sdk"
)

// Start plans the topology and builds the whole fleet. Either every worker is
// running or none is and the error says why.
// Start 规划拓扑并构建全部工作线程：要么全部运行，要么一个都不运行并返回原因。
func Start(ctx context.Context, cfg *config.GlobalConfig, src dpdk.PortSource, host sdk.Host, opts *DaemonOptions) ([]*runmode.Worker, *Plan, error) {
	if opts == nil {
		opts = &DaemonOptions{}
	}

	plan, err := Prepare(ctx, cfg, src, host.DetectEnabled)
	if err != nil {
		return nil, nil, err
	}

	binder, err := runmode.NewBinder(plan.Config, plan.PortMap, src)
	if err != nil {
		return nil, nil, err
	}
	cores, err := cpu.NewAllocator(ctx, cfg.Runmode.CPUs)
	if err != nil {
		return nil, nil, err
	}
	builder := &runmode.Builder{
		Registry: host.Registry,
		Cores:    cores,
		Detect:   plan.Detect,
		Outputs:  host.SetupOutputs,
		Spawner:  opts.Spawner,
		Prefix:   cfg.Runmode.ThreadPrefix,
	}
	workers, err := builder.Build(ctx, plan.Workers, binder)
	if err != nil {
		return nil, nil, err
	}

	recordPlan(plan, src)
	return workers, plan, nil
}

func recordPlan(plan *Plan, src dpdk.PortSource) {
	metrics.PortMapEntries.Set(float64(plan.Config.Ports))
	metrics.Workers.Set(float64(plan.Workers))
	for port := 0; port < src.PortCount(); port++ {
		if q, err := src.RxQueues(port); err == nil {
			metrics.RxQueues.WithLabelValues(strconv.Itoa(port)).Set(float64(q))
		}
	}
}

// Run starts the fleet and keeps it running until ctx is done or a
// termination signal arrives. Workers are never restarted.
// Run 启动工作线程并保持运行，直到 ctx 结束或收到终止信号。工作线程不会被重启。
func Run(ctx context.Context, cfg *config.GlobalConfig, src dpdk.PortSource, host sdk.Host, opts *DaemonOptions) error {
	log := logger.Get(ctx)
	if opts == nil {
		opts = &DaemonOptions{}
	}

	log.Infof("[START] Starting dpdkintel (runmode %s)", cfg.Runmode.Name)
	if opts.PidPath != "" {
		if err := managePidFile(opts.PidPath); err != nil {
			return err
		}
		defer removePidFile(ctx, opts.PidPath)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers, _, err := Start(ctx, cfg, src, host, opts)
	if err != nil {
		return err
	}

	stats := make([]metrics.WorkerStats, len(workers))
	for i, w := range workers {
		stats[i] = w
	}
	collector := metrics.NewWorkerCollector(stats)
	if err := prometheus.Register(collector); err != nil {
		log.Warnf("[WARN] Failed to register worker metrics: %v", err)
	} else {
		defer prometheus.Unregister(collector)
	}

	server := metrics.NewMetricsServer(cfg.Metrics)
	if err := server.Start(ctx); err != nil {
		log.Warnf("[WARN] Failed to start metrics server: %v", err)
	}

	waitForShutdown(ctx, workers)

	runmode.StopAll(workers)
	if err := server.Stop(); err != nil {
		log.Warnf("[WARN] Failed to stop metrics server: %v", err)
	}
	log.Infof("[STOP] dpdkintel stopped")
	return nil
}
