package config

import (
	"fmt"

	apperrors "github.com/livp123/dpdkintel/pkg/errors"
)

// Validate checks the configuration for errors.
// The dpdkintel section is validated by the runmode resolver, not here.
// Validate 检查配置是否存在错误。dpdkintel 段由 runmode 解析器验证。
func (c *GlobalConfig) Validate() error {
	if err := c.Metrics.Validate(); err != nil {
		return fmt.Errorf("metrics config error: %w", err)
	}
	if err := c.Runmode.Validate(); err != nil {
		return fmt.Errorf("runmode config error: %w", err)
	}
	if err := c.Capture.Validate(); err != nil {
		return fmt.Errorf("capture config error: %w", err)
	}
	return nil
}

func (c *MetricsConfig) Validate() error {
	if c.Enabled && (c.Port <= 0 || c.Port > 65535) {
		return apperrors.NewConfigError("metrics.port", "invalid port %d (must be 1-65535)", c.Port)
	}
	return nil
}

func (c *RunmodeConfig) Validate() error {
	if c.Name == "" {
		return apperrors.NewConfigError("runmode.name", "must not be empty")
	}
	if c.ThreadPrefix == "" {
		return apperrors.NewConfigError("runmode.thread_prefix", "must not be empty")
	}
	return nil
}

func (c *CaptureConfig) Validate() error {
	switch c.Source {
	case SourceStatic:
		for i, p := range c.Ports {
			if p.RxQueues < 0 {
				return apperrors.NewConfigError(fmt.Sprintf("capture.ports[%d].rx_queues", i),
					"must not be negative, got %d", p.RxQueues)
			}
		}
	case SourceNetlink:
		if len(c.Devices) == 0 {
			return apperrors.NewConfigError("capture.devices", "netlink source needs at least one device")
		}
		seen := make(map[string]struct{}, len(c.Devices))
		for _, d := range c.Devices {
			if _, dup := seen[d]; dup {
				return apperrors.NewConfigError("capture.devices", "device %s listed twice", d)
			}
			seen[d] = struct{}{}
		}
	default:
		return apperrors.NewConfigError("capture.source", "unknown source %q (want %s or %s)",
			c.Source, SourceStatic, SourceNetlink)
	}

	seen := make(map[string]struct{}, len(c.Interfaces))
	for _, name := range c.Interfaces {
		if name == "" {
			return apperrors.NewConfigError("capture.interfaces", "empty interface name")
		}
		if _, dup := seen[name]; dup {
			return apperrors.NewConfigError("capture.interfaces", "interface %s listed twice", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}
