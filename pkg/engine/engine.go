// Package engine is the entry point for a host engine embedding the dpdkintel
// runmode: it loads the configuration, builds the pinned worker fleet over the
// host's modules and keeps it running.
// engine 包是宿主引擎嵌入 dpdkintel 运行模式的入口：加载配置、基于宿主模块构建绑核工作线程并保持运行。
package engine

import (
	"context"

	"github.com/livp123/dpdkintel/internal/config"
	"github.com/livp123/dpdkintel/internal/daemon"
	"github.com/livp123/dpdkintel/internal/dpdk"
	"github.com/livp123/dpdkintel/internal/utils/logger"
	"github.com/livp123/dpdkintel/pkg/sdk"
)

// Options tune Run. The zero value is usable.
// Options 用于调整 Run，零值可直接使用。
type Options struct {
	// PidPath is written while running. Empty disables the PID file.
	PidPath string
}

// Run loads configPath and runs the workers until ctx is done or the process
// receives SIGINT/SIGTERM. Any startup error is returned before a single
// worker is left running.
// Run 加载 configPath 并运行工作线程，直到 ctx 结束或进程收到 SIGINT/SIGTERM。
// 任何启动错误都会在没有工作线程残留的情况下返回。
func Run(ctx context.Context, configPath string, host sdk.Host, opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}
	if configPath == "" {
		configPath = config.GetConfigPath()
	}

	cfg, err := config.LoadGlobalConfig(configPath)
	if err != nil {
		return err
	}
	logger.Init(cfg.Logging)
	defer func() { _ = logger.Sync() }()

	src, err := dpdk.NewSource(cfg.Capture)
	if err != nil {
		return err
	}
	return daemon.Run(ctx, cfg, src, host, &daemon.DaemonOptions{PidPath: opts.PidPath})
}
