package errors

import (
	"errors"
	"fmt"
)

// Every error below is fatal to startup. There is no warn-and-continue class.
// 以下所有错误在启动阶段均为致命错误，不存在“警告后继续”的类别。
var (
	ErrConfigInvalid  = errors.New("invalid configuration")
	ErrConfigNotFound = errors.New("config not found")
	ErrResource       = errors.New("resource allocation failed")
	ErrModuleNotFound = errors.New("module not found in registry")
	ErrThreadStart    = errors.New("thread start failed")
)

// NewConfigError reports an invalid or missing configuration key.
// NewConfigError 报告无效或缺失的配置项。
func NewConfigError(key string, format string, args ...interface{}) error {
	return fmt.Errorf("%w: key=%s: %s", ErrConfigInvalid, key, fmt.Sprintf(format, args...))
}

// NewResourceError reports a failed allocation (descriptor, thread name, core).
// NewResourceError 报告资源分配失败（描述符、线程名、CPU 核心）。
func NewResourceError(what string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %s", ErrResource, what)
	}
	return fmt.Errorf("%w: %s: %v", ErrResource, what, err)
}

// NewModuleError reports a pipeline stage that the host registry cannot resolve.
// NewModuleError 报告宿主注册表无法解析的流水线模块。
func NewModuleError(name string, reason string) error {
	if reason == "" {
		return fmt.Errorf("%w: %s", ErrModuleNotFound, name)
	}
	return fmt.Errorf("%w: %s: %s", ErrModuleNotFound, name, reason)
}

// NewThreadStartError reports a worker thread that failed to come up.
// NewThreadStartError 报告未能成功启动的工作线程。
func NewThreadStartError(thread string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrThreadStart, thread, err)
}

// Class names the taxonomy member of err for user-visible messages.
func Class(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConfigInvalid), errors.Is(err, ErrConfigNotFound):
		return "ConfigurationError"
	case errors.Is(err, ErrResource):
		return "ResourceError"
	case errors.Is(err, ErrModuleNotFound):
		return "ModuleResolutionError"
	case errors.Is(err, ErrThreadStart):
		return "ThreadStartError"
	default:
		return "Error"
	}
}

// ExitCode maps err to a process exit status. Every failure is non-zero.
// ExitCode 将错误映射为进程退出码，任何失败均为非零。
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
