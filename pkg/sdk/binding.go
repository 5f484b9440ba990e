package sdk

import "fmt"

// NoPort marks the output side of a passive (IDS) pairing.
const NoPort = -1

// FanoutMode selects how packets spread across queues. Only hash and CPU
// fanout exist; round-robin and flow fanout are not supported.
// FanoutMode 选择数据包在队列间的分发方式，仅支持 hash 和 CPU。
type FanoutMode uint8

const (
	FanoutHash FanoutMode = iota
	FanoutCPU
)

func (f FanoutMode) String() string {
	switch f {
	case FanoutHash:
		return "hash"
	case FanoutCPU:
		return "cpu"
	default:
		return "unknown"
	}
}

// Binding describes the queue one worker captures from and, inline, the port
// it forwards to. A binding is created for a single worker and handed over to
// it; nothing else keeps a reference.
// Binding 描述单个工作线程所抓取的队列，以及串联模式下转发的目标端口。
// 每个 Binding 为单个工作线程创建并移交给它，其他组件不再持有引用。
type Binding struct {
	Interface     string
	PeerInterface string // empty in passive mode / 被动模式下为空
	InPort        int
	OutPort       int // NoPort in passive mode / 被动模式下为 NoPort
	RingID        int
	QueueID       int
	ClusterID     int
	Fanout        FanoutMode
	Promiscuous   bool
	// ChecksumValidation relies on NIC checksum offload.
	// ChecksumValidation 依赖网卡校验和卸载。
	ChecksumValidation bool
	// Filter is always empty, capture filters are not supported on this path.
	Filter string
	// Threads is the number of threads consuming this binding.
	Threads int
}

// Inline reports whether the binding forwards to a peer port.
func (b *Binding) Inline() bool {
	return b.OutPort != NoPort
}

func (b *Binding) String() string {
	if b.Inline() {
		return fmt.Sprintf("%s<->%s queue=%d ring=%d", b.Interface, b.PeerInterface, b.QueueID, b.RingID)
	}
	return fmt.Sprintf("%s queue=%d ring=%d", b.Interface, b.QueueID, b.RingID)
}
