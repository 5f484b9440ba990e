package runmode

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	apperrors "github.com/livp123/dpdkintel/pkg/errors"
)

// PolicyEnv is what a detect_policy expression can see.
// PolicyEnv 是 detect_policy 表达式可访问的变量。
type PolicyEnv struct {
	Mode    string
	Ports   int
	Workers int
}

// DetectPolicy decides whether the Detect module joins the worker chain.
// DetectPolicy 决定 Detect 模块是否加入工作线程的模块链。
type DetectPolicy struct {
	enabled bool
	source  string
	program *vm.Program
}

// NewDetectPolicy compiles runmode.detect_policy. An empty expression lets
// the enabled flag decide alone.
// NewDetectPolicy 编译 runmode.detect_policy，表达式为空时仅由 enabled 决定。
func NewDetectPolicy(enabled bool, expression string) (*DetectPolicy, error) {
	p := &DetectPolicy{enabled: enabled, source: expression}
	if expression == "" {
		return p, nil
	}
	program, err := expr.Compile(expression, expr.Env(PolicyEnv{}), expr.AsBool())
	if err != nil {
		return nil, apperrors.NewConfigError("runmode.detect_policy", "failed to compile %q: %v", expression, err)
	}
	p.program = program
	return p, nil
}

// Allow evaluates the policy for a given fleet.
// Allow 针对给定的工作线程规模评估策略。
func (p *DetectPolicy) Allow(env PolicyEnv) (bool, error) {
	if p == nil || !p.enabled {
		return false, nil
	}
	if p.program == nil {
		return true, nil
	}
	out, err := expr.Run(p.program, env)
	if err != nil {
		return false, fmt.Errorf("detect policy %q: %w", p.source, err)
	}
	allowed, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("detect policy %q returned %T, want bool", p.source, out)
	}
	return allowed, nil
}
