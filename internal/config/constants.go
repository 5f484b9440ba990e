package config

const (
	// DefaultConfigPath is the standard location for the dpdkintel configuration file.
	// DefaultConfigPath 是 dpdkintel 配置文件的标准位置。
	DefaultConfigPath = "/etc/dpdkintel/dpdkintel.yaml"

	// DefaultLogPath is used when file logging is enabled without a path.
	// DefaultLogPath 是启用文件日志但未指定路径时使用的位置。
	DefaultLogPath = "/var/log/dpdkintel/dpdkintel.log"

	// DefaultRunmode is the only runmode the worker topology builder implements.
	DefaultRunmode = "workers"

	// DefaultThreadPrefix names worker threads DPDK-WORKER-0, DPDK-WORKER-1, ...
	DefaultThreadPrefix = "DPDK-WORKER-"

	// DefaultMetricsPort serves /metrics when metrics are enabled.
	DefaultMetricsPort = 11812

	// Capture sources / 抓包端口来源
	SourceStatic  = "static"
	SourceNetlink = "netlink"

	// SectionDpdkIntel is the root key of the port pairing section.
	SectionDpdkIntel = "dpdkintel"
)
