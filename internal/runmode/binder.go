package runmode

import (
	"fmt"

	"github.com/livp123/dpdkintel/internal/dpdk"
	apperrors "github.com/livp123/dpdkintel/pkg/errors"
	"github.com/livp123/dpdkintel/pkg/sdk"
)

const (
	threadsPerBinding = 1
	defaultClusterID  = 1
)

type slot struct {
	entry PortMapEntry
	queue int
}

// Binder hands out one binding per worker, in worker creation order.
// Binder 按工作线程创建顺序为每个工作线程分配一个绑定描述。
type Binder struct {
	mode     OpMode
	slots    []slot
	nextRing int
}

// NewBinder expands the port map into (entry, queue) slots: every queue of
// the first entry, then every queue of the next one.
// NewBinder 将端口映射展开为 (配对, 队列) 槽位：先是第一个配对的所有队列，然后是下一个。
func NewBinder(gc *GlobalDpdkConfig, pm PortMap, src dpdk.PortSource) (*Binder, error) {
	if gc == nil {
		return nil, apperrors.NewConfigError(keySection, "port map has not been resolved")
	}
	b := &Binder{mode: gc.Mode}
	for _, e := range pm {
		q, err := src.RxQueues(e.InPort)
		if err != nil {
			return nil, apperrors.NewResourceError(fmt.Sprintf("rx queues of port %d", e.InPort), err)
		}
		for queue := 0; queue < q; queue++ {
			b.slots = append(b.slots, slot{entry: e, queue: queue})
		}
	}
	return b, nil
}

// Slots returns how many workers the port map can feed.
func (b *Binder) Slots() int {
	return len(b.slots)
}

// Bind creates the binding for worker i. The caller owns the result.
// Bind 为第 i 个工作线程创建绑定描述，结果归调用方所有。
func (b *Binder) Bind(i int) (*sdk.Binding, error) {
	if i < 0 || i >= len(b.slots) {
		return nil, apperrors.NewConfigError(keyInputs,
			"worker %d has no port to capture from (%d configured queue(s)); a live port with receive queues is missing from the inputs",
			i, len(b.slots))
	}
	s := b.slots[i]

	binding := &sdk.Binding{
		Interface:          dpdk.PortName(s.entry.InPort),
		InPort:             s.entry.InPort,
		OutPort:            sdk.NoPort,
		RingID:             b.nextRing,
		QueueID:            s.queue,
		ClusterID:          defaultClusterID,
		Fanout:             sdk.FanoutCPU,
		Promiscuous:        true,
		ChecksumValidation: true,
		Threads:            threadsPerBinding,
	}
	if !b.mode.Passive() {
		binding.OutPort = s.entry.OutPort
		binding.PeerInterface = dpdk.PortName(s.entry.OutPort)
	}
	b.nextRing++
	return binding, nil
}
