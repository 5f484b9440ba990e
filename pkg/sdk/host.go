package sdk

import (
	"context"
)

// WorkerContext is the static description of one worker thread.
// WorkerContext 是单个工作线程的静态描述。
type WorkerContext struct {
	Name  string
	Chain []ModuleID
	CPU   int
}

// Host is what the engine embedding the runmode supplies.
// Host 是嵌入 runmode 的引擎需要提供的内容。
type Host struct {
	// Registry resolves every module of the chain. Required.
	Registry *Registry

	// DetectEnabled is the engine's own switch for the Detect module. It is
	// combined with runmode.detect and runmode.detect_policy.
	// DetectEnabled 是引擎自身的 Detect 开关，与 runmode.detect 和 runmode.detect_policy 共同生效。
	DetectEnabled bool

	// SetupOutputs attaches output modules to a worker before it starts. Optional.
	// SetupOutputs 在工作线程启动前为其挂载输出模块，可选。
	SetupOutputs func(ctx context.Context, w *WorkerContext) error
}
