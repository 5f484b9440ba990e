package daemon

import (
	"context"

	"github.com/livp123/dpdkintel/internal/config"
	"github.com/livp123/dpdkintel/internal/dpdk"
	"github.com/livp123/dpdkintel/internal/utils/logger"
)

/**
 * TestConfiguration validates the configuration file and resolves the port
 * map against the configured capture source, without starting any worker.
 * TestConfiguration 验证配置文件，并基于配置的抓包来源解析端口映射，不启动任何工作线程。
 */
func TestConfiguration(ctx context.Context, configPath string) (*Plan, error) {
	log := logger.Get(ctx)
	log.Infof("[SCAN] Testing configuration in %s...", configPath)

	cfg, err := config.LoadGlobalConfig(configPath)
	if err != nil {
		log.Errorf("[ERROR] Error loading %s: %v", configPath, err)
		return nil, err
	}
	log.Infof("[OK] Configuration syntax is valid")

	src, err := dpdk.NewSource(cfg.Capture)
	if err != nil {
		return nil, err
	}
	plan, err := Prepare(ctx, cfg, src, true)
	if err != nil {
		log.Errorf("[ERROR] Port map resolution failed: %v", err)
		return nil, err
	}

	log.Infof("[SUCCESS] All configurations are valid! %d port map entries, %d worker(s)", len(plan.PortMap), plan.Workers)
	return plan, nil
}
