package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestClass tests the taxonomy classification of wrapped errors
// TestClass 测试包装错误的分类
func TestClass(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"config", NewConfigError("dpdkintel.opmode", "not set"), "ConfigurationError"},
		{"config not found", fmt.Errorf("load: %w", ErrConfigNotFound), "ConfigurationError"},
		{"resource", NewResourceError("thread name", nil), "ResourceError"},
		{"module", NewModuleError("Detect", ""), "ModuleResolutionError"},
		{"thread", NewThreadStartError("DPDK-WORKER-0", errors.New("EINVAL")), "ThreadStartError"},
		{"wrapped twice", fmt.Errorf("outer: %w", NewModuleError("StreamTcp", "nil factory")), "ModuleResolutionError"},
		{"other", errors.New("boom"), "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Class(tt.err))
		})
	}
}

func TestConstructorsNameTheOffender(t *testing.T) {
	err := NewConfigError("dpdkintel.inputs", "no entry for interface %s", "3")
	assert.ErrorIs(t, err, ErrConfigInvalid)
	assert.Contains(t, err.Error(), "dpdkintel.inputs")
	assert.Contains(t, err.Error(), "interface 3")

	err = NewModuleError("RespondReject", "")
	assert.ErrorIs(t, err, ErrModuleNotFound)
	assert.Contains(t, err.Error(), "RespondReject")

	err = NewResourceError("core for DPDK-WORKER-2", errors.New("exhausted"))
	assert.ErrorIs(t, err, ErrResource)
	assert.Contains(t, err.Error(), "exhausted")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(NewConfigError("x", "y")))
	assert.Equal(t, 1, ExitCode(errors.New("anything")))
}
