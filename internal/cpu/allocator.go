package cpu

import (
	"context"
	"fmt"

	"github.com/livp123/dpdkintel/internal/utils/logger"
	apperrors "github.com/livp123/dpdkintel/pkg/errors"
)

// Allocator hands out pre-enumerated cores in order, each at most once.
// Allocator 按顺序分配预先枚举的核心，每个核心至多分配一次。
type Allocator struct {
	cores []int
	next  int
}

// NewAllocator enumerates the cores from a core list. An empty list means
// every possible core. Cores the machine does not have are dropped.
// NewAllocator 从核心列表枚举核心。列表为空表示所有可用核心，本机不存在的核心会被丢弃。
func NewAllocator(ctx context.Context, list string) (*Allocator, error) {
	log := logger.Get(ctx)
	max := Possible()

	if list == "" {
		cores := make([]int, max)
		for i := range cores {
			cores[i] = i
		}
		return &Allocator{cores: cores}, nil
	}

	parsed, err := ParseCPUs(list)
	if err != nil {
		return nil, apperrors.NewConfigError("runmode.cpus", "%v", err)
	}
	cores, dropped := dropInvalid(parsed, max)
	if len(dropped) > 0 {
		log.Warnf("[WARN] Ignoring cores %v, machine has %d", dropped, max)
	}
	if len(cores) == 0 {
		return nil, apperrors.NewConfigError("runmode.cpus", "%v: %q", ErrNoCores, list)
	}
	return &Allocator{cores: cores}, nil
}

// Next returns the next free core.
// Next 返回下一个空闲核心。
func (a *Allocator) Next() (int, error) {
	if a.next >= len(a.cores) {
		return -1, apperrors.NewResourceError(fmt.Sprintf("core #%d", a.next),
			fmt.Errorf("only %d cores enumerated", len(a.cores)))
	}
	c := a.cores[a.next]
	a.next++
	return c, nil
}

// Remaining returns how many cores are still free.
func (a *Allocator) Remaining() int {
	return len(a.cores) - a.next
}

// Cores returns the enumerated cores in hand-out order.
func (a *Allocator) Cores() []int {
	out := make([]int, len(a.cores))
	copy(out, a.cores)
	return out
}

// FromCores builds an allocator over an explicit core list, used as is.
// FromCores 基于显式的核心列表构建分配器，列表按原样使用。
func FromCores(cores ...int) *Allocator {
	c := make([]int, len(cores))
	copy(c, cores)
	return &Allocator{cores: c}
}
