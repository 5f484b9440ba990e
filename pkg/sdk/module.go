package sdk

import (
	"context"
)

// ModuleID enumerates the stages a worker chain can hold. Hosts bind an
// implementation to each ID through a Registry.
// ModuleID 枚举工作线程模块链中可出现的模块，宿主通过 Registry 为每个 ID 绑定实现。
type ModuleID int

const (
	ModuleReceive ModuleID = iota
	ModuleDecode
	ModuleStreamTCP
	ModuleDetect
	ModuleRespondReject

	moduleCount
)

var moduleNames = [moduleCount]string{
	ModuleReceive:       "DpdkIntelReceive",
	ModuleDecode:        "DpdkIntelDecode",
	ModuleStreamTCP:     "StreamTcp",
	ModuleDetect:        "Detect",
	ModuleRespondReject: "RespondReject",
}

// String returns the registry name of the module.
func (m ModuleID) String() string {
	if m < 0 || m >= moduleCount {
		return "Unknown"
	}
	return moduleNames[m]
}

// Valid reports whether m is one of the enumerated modules.
func (m ModuleID) Valid() bool {
	return m >= 0 && m < moduleCount
}

// ParseModuleID looks a module up by its exact registry name.
// ParseModuleID 通过精确的注册名称查找模块。
func ParseModuleID(name string) (ModuleID, bool) {
	for i, n := range moduleNames {
		if n == name {
			return ModuleID(i), true
		}
	}
	return 0, false
}

// Stage processes one packet. A worker calls every stage of its chain, in
// order, for each packet before it acquires the next one.
// Stage 处理单个数据包。工作线程对每个数据包按顺序调用模块链中的所有模块，然后才获取下一个数据包。
type Stage interface {
	Process(ctx context.Context, p *Packet) error
}

// Receiver is the Receive stage: it also acquires packets from its queue.
// Next returns io.EOF when the queue is drained for good.
// Receiver 是接收模块，同时负责从队列获取数据包。队列永久耗尽时 Next 返回 io.EOF。
type Receiver interface {
	Stage
	Next(ctx context.Context) (*Packet, error)
}

// StageFunc adapts a function to the Stage interface.
type StageFunc func(ctx context.Context, p *Packet) error

func (f StageFunc) Process(ctx context.Context, p *Packet) error {
	return f(ctx, p)
}

// Factory builds a stage instance for one worker. The binding is the worker's
// own descriptor; stages other than Receive usually ignore it.
// Factory 为单个工作线程构建模块实例。
type Factory func(b *Binding) (Stage, error)
