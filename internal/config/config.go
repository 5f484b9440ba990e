package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/livp123/dpdkintel/internal/conftree"
	"github.com/livp123/dpdkintel/internal/runtime"
	"github.com/livp123/dpdkintel/internal/utils/fileutil"
	"github.com/livp123/dpdkintel/internal/utils/logger"
	apperrors "github.com/livp123/dpdkintel/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultConfigTemplate is written by InitConfig when no configuration exists.
// DefaultConfigTemplate 在配置文件不存在时由 InitConfig 写入。
const DefaultConfigTemplate = `# dpdkintel Configuration File / dpdkintel 配置文件

# Logging / 日志
logging:
  enabled: false
  level: "info"
  path: "/var/log/dpdkintel/dpdkintel.log"
  max_size: 10
  max_backups: 3
  max_age: 30
  compress: true

# Metrics: Prometheus endpoint on /metrics.
# 监控指标：在 /metrics 提供 Prometheus 指标。
metrics:
  enabled: false
  port: 11812

# Runmode / 运行模式
runmode:
  # Only "workers" is implemented: one thread per receive queue, every thread
  # runs the whole module chain.
  # 目前仅实现 "workers"：每个接收队列一个线程，每个线程运行完整模块链。
  name: "workers"
  # Cores handed to workers in order, e.g. "2-5,8". Empty means every possible core.
  # 按顺序分配给工作线程的 CPU 核心，例如 "2-5,8"。为空表示所有可用核心。
  cpus: ""
  # Attach the Detect module.
  # 是否挂载 Detect 模块。
  detect: true
  # Optional expression deciding Detect attachment, e.g. "Mode != 'bypass'".
  # 可选表达式，决定是否挂载 Detect，例如 "Mode != 'bypass'"。
  detect_policy: ""
  thread_prefix: "DPDK-WORKER-"

# Capture ports / 抓包端口
capture:
  # static: ports listed below; netlink: kernel links listed in devices.
  # static：使用下方列出的端口；netlink：使用 devices 中列出的内核网卡。
  source: "static"
  devices: []
  # Interfaces read from the dpdkintel section, empty means every live port.
  # 从 dpdkintel 段读取的接口，为空表示全部实时端口。
  interfaces: []
  ports:
    - rx_queues: 1
    - rx_queues: 1

# Port pairing / 端口配对
dpdkintel:
  # ips: inline pairs, ids: passive monitoring, anything else: bypass.
  # ips：串联配对，ids：被动监听，其他值：bypass。
  opmode: "ips"
  inputs:
    - interface: "0"
      copy-interface: "1"
    - interface: "1"
      copy-interface: "0"
`

// GlobalConfig is the whole configuration document.
// GlobalConfig 表示完整的配置文档。
type GlobalConfig struct {
	Logging logger.LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig        `yaml:"metrics"`
	Runmode RunmodeConfig        `yaml:"runmode"`
	Capture CaptureConfig        `yaml:"capture"`

	// Tree is the raw key/value view, the dpdkintel section is read from it.
	// Tree 是原始键值视图，dpdkintel 段从中读取。
	Tree *conftree.Node `yaml:"-"`
}

// MetricsConfig defines the Prometheus endpoint.
// MetricsConfig 定义 Prometheus 指标端点。
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// RunmodeConfig selects the runmode and how workers are placed.
// RunmodeConfig 选择运行模式以及工作线程的放置方式。
type RunmodeConfig struct {
	Name         string `yaml:"name"`
	CPUs         string `yaml:"cpus"`
	Detect       bool   `yaml:"detect"`
	DetectPolicy string `yaml:"detect_policy"`
	ThreadPrefix string `yaml:"thread_prefix"`
}

// CaptureConfig describes where live ports and their receive queues come from.
// CaptureConfig 描述实时端口及其接收队列的来源。
type CaptureConfig struct {
	Source  string       `yaml:"source"`
	Devices []string     `yaml:"devices"`
	Ports   []StaticPort `yaml:"ports"`

	// Interfaces limits the interfaces handed to the resolver. Every live port
	// still counts towards the worker fleet. Empty means all live ports.
	// Interfaces 限定交给解析器的接口，所有实时端口仍计入工作线程数。为空表示全部实时端口。
	Interfaces []string `yaml:"interfaces"`
}

// StaticPort is one port of the static source. Name defaults to the port id.
// A port with no receive queue is live but never polled.
type StaticPort struct {
	Name     string `yaml:"name"`
	RxQueues int    `yaml:"rx_queues"`
}

// Defaults returns a configuration populated with default values.
// Defaults 返回填充了默认值的配置。
func Defaults() GlobalConfig {
	return GlobalConfig{
		Logging: logger.LoggingConfig{
			Enabled:    false,
			Level:      "info",
			Path:       DefaultLogPath,
			MaxSize:    10, // 10MB
			MaxBackups: 3,
			MaxAge:     30, // 30 days
			Compress:   true,
		},
		Metrics: MetricsConfig{
			Port: DefaultMetricsPort,
		},
		Runmode: RunmodeConfig{
			Name:         DefaultRunmode,
			Detect:       true,
			ThreadPrefix: DefaultThreadPrefix,
		},
		Capture: CaptureConfig{
			Source: SourceStatic,
		},
	}
}

// ParseGlobalConfig decodes and validates a YAML document.
// ParseGlobalConfig 解码并验证 YAML 文档。
func ParseGlobalConfig(data []byte) (*GlobalConfig, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, apperrors.NewConfigError("yaml", "%v", err)
	}

	tree, err := conftree.Parse(data)
	if err != nil {
		return nil, apperrors.NewConfigError("yaml", "%v", err)
	}
	cfg.Tree = tree

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// LoadGlobalConfig loads the configuration from a YAML file.
// LoadGlobalConfig 从 YAML 文件加载配置。
func LoadGlobalConfig(path string) (*GlobalConfig, error) {
	safePath := filepath.Clean(path)
	data, err := os.ReadFile(safePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrConfigNotFound, safePath)
		}
		return nil, err
	}
	return ParseGlobalConfig(data)
}

// InitConfig writes the default template to path unless a file already exists.
// It reports whether a file was written.
// InitConfig 在文件不存在时将默认模板写入 path，并返回是否写入。
func InitConfig(path string) (bool, error) {
	written, err := fileutil.WriteFileIfAbsent(path, []byte(DefaultConfigTemplate), 0644)
	if err != nil {
		return false, fmt.Errorf("failed to write config: %w", err)
	}
	return written, nil
}

// GetConfigPath returns the configuration file path
// If runtime.ConfigPath is set (e.g., via CLI flag or test), it takes precedence.
// GetConfigPath 返回配置文件路径
// 如果 runtime.ConfigPath 已设置（例如通过 CLI 标志或测试），则优先使用它。
func GetConfigPath() string {
	if runtime.ConfigPath != "" {
		return runtime.ConfigPath
	}
	return DefaultConfigPath
}
