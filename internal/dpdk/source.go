// Package dpdk is the capture-library boundary: it reports the live ports,
// their order, and how many receive queues each one exposes.
// dpdk 包是抓包库边界：报告实时端口、端口顺序以及每个端口的接收队列数。
package dpdk

import (
	"fmt"
	"strconv"

	"github.com/livp123/dpdkintel/internal/config"
	apperrors "github.com/livp123/dpdkintel/pkg/errors"
)

// PortSource enumerates live capture ports. Port ids are dense, 0..PortCount()-1.
// PortSource 枚举实时抓包端口，端口 ID 连续，从 0 到 PortCount()-1。
type PortSource interface {
	// Devices returns the live interface names in enumeration order.
	Devices() []string
	// PortCount returns the total number of live ports.
	PortCount() int
	// RxQueues returns the receive queue count currently configured on port.
	RxQueues(port int) (int, error)
}

// NewSource builds the port source selected by capture.source, narrowed to
// capture.interfaces when set.
// NewSource 根据 capture.source 构建端口来源，设置 capture.interfaces 时只枚举其中的接口。
func NewSource(cfg config.CaptureConfig) (PortSource, error) {
	var src PortSource
	switch cfg.Source {
	case config.SourceStatic, "":
		src = NewStaticSource(cfg.Ports)
	case config.SourceNetlink:
		src = NewNetlinkSource(cfg.Devices)
	default:
		return nil, fmt.Errorf("unknown capture source %q", cfg.Source)
	}
	if len(cfg.Interfaces) == 0 {
		return src, nil
	}
	return Enumerate(src, cfg.Interfaces)
}

// subset enumerates only some interfaces of the wrapped source. Port count and
// queues still cover every live port.
type subset struct {
	PortSource
	names []string
}

// Enumerate restricts the interfaces src reports to names, in that order. Each
// name must be a live interface of src.
// Enumerate 将 src 报告的接口限定为 names（按给定顺序），每个名称都必须是 src 的实时接口。
func Enumerate(src PortSource, names []string) (PortSource, error) {
	live := make(map[string]bool)
	for _, d := range src.Devices() {
		live[d] = true
	}
	out := make([]string, len(names))
	for i, name := range names {
		if !live[name] {
			return nil, apperrors.NewConfigError("capture.interfaces", "%s is not a live interface", name)
		}
		out[i] = name
	}
	return &subset{PortSource: src, names: out}, nil
}

func (s *subset) Devices() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// PortName is the live interface name of a port: its decimal id.
func PortName(port int) string {
	return strconv.Itoa(port)
}

func checkPort(port, total int) error {
	if port < 0 || port >= total {
		return fmt.Errorf("port %d out of range [0, %d)", port, total)
	}
	return nil
}
