package dpdk

import (
	"fmt"

	"github.com/vishvananda/netlink"
)

// NetlinkSource maps kernel links to capture ports. Port i is the i-th entry
// of capture.devices; its queue count is read from the kernel on every call.
// NetlinkSource 将内核网卡映射为抓包端口。端口 i 对应 capture.devices 的第 i 项，
// 队列数在每次调用时从内核读取。
type NetlinkSource struct {
	links      []string
	linkByName func(name string) (netlink.Link, error)
}

// NewNetlinkSource creates a source over the named kernel links.
// NewNetlinkSource 基于指定的内核网卡创建端口来源。
func NewNetlinkSource(links []string) *NetlinkSource {
	l := make([]string, len(links))
	copy(l, links)
	return &NetlinkSource{links: l, linkByName: netlink.LinkByName}
}

// Devices returns the port ids as decimal names, the way the driver registers them.
func (s *NetlinkSource) Devices() []string {
	names := make([]string, len(s.links))
	for i := range s.links {
		names[i] = PortName(i)
	}
	return names
}

func (s *NetlinkSource) PortCount() int {
	return len(s.links)
}

// KernelName returns the kernel link behind a port id.
func (s *NetlinkSource) KernelName(port int) (string, error) {
	if err := checkPort(port, len(s.links)); err != nil {
		return "", err
	}
	return s.links[port], nil
}

// RxQueues returns the link's receive queue count. Links that do not report
// one have a single queue.
// RxQueues 返回网卡的接收队列数，未报告队列数的网卡视为单队列。
func (s *NetlinkSource) RxQueues(port int) (int, error) {
	name, err := s.KernelName(port)
	if err != nil {
		return 0, err
	}
	link, err := s.linkByName(name)
	if err != nil {
		return 0, fmt.Errorf("failed to look up link %s: %w", name, err)
	}
	if q := link.Attrs().NumRxQueues; q > 0 {
		return q, nil
	}
	return 1, nil
}
