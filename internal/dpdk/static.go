package dpdk

import (
	"github.com/livp123/dpdkintel/internal/config"
)

// StaticSource reports a fixed port table, used for dry runs and hosts whose
// driver layer hands the port list over up front.
// StaticSource 报告固定的端口表，用于演练以及预先提供端口列表的宿主。
type StaticSource struct {
	names  []string
	queues []int
}

// NewStaticSource builds a source from capture.ports. Unnamed ports are named
// after their id.
func NewStaticSource(ports []config.StaticPort) *StaticSource {
	s := &StaticSource{
		names:  make([]string, len(ports)),
		queues: make([]int, len(ports)),
	}
	for i, p := range ports {
		s.names[i] = p.Name
		if s.names[i] == "" {
			s.names[i] = PortName(i)
		}
		s.queues[i] = p.RxQueues
	}
	return s
}

func (s *StaticSource) Devices() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func (s *StaticSource) PortCount() int {
	return len(s.queues)
}

func (s *StaticSource) RxQueues(port int) (int, error) {
	if err := checkPort(port, len(s.queues)); err != nil {
		return 0, err
	}
	return s.queues[port], nil
}
