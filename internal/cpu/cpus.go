// Package cpu enumerates the processor cores workers are pinned to and hands
// them out one per worker.
// cpu 包枚举工作线程绑定的 CPU 核心，并为每个工作线程分配一个核心。
package cpu

import (
	"errors"
	"fmt"
	goruntime "runtime"
	"strconv"
	"strings"

	"github.com/cilium/ebpf"
)

var (
	ErrInvalidCPURange = errors.New("CPU range is invalid, min should not exceed max")
	ErrNoCores         = errors.New("no usable cores")
)

// possibleCPU is swapped in tests.
var possibleCPU = ebpf.PossibleCPU

// Possible returns the number of possible cores on the machine.
// Possible 返回本机可用的 CPU 核心数。
func Possible() int {
	n, err := possibleCPU()
	if err != nil || n <= 0 {
		return goruntime.NumCPU()
	}
	return n
}

// ParseCPUs parses a core list such as "1,10-13,9" into core numbers in list
// order, duplicates removed.
// ParseCPUs 将 "1,10-13,9" 形式的核心列表解析为按列表顺序排列、去重后的核心编号。
func ParseCPUs(s string) ([]int, error) {
	nums := make([]int, 0, 16)
	s = strings.TrimSpace(s)
	if s == "" {
		return nums, nil
	}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		lo, hi, isRange := strings.Cut(part, "-")
		start, err := strconv.Atoi(lo)
		if err != nil {
			return nil, fmt.Errorf("invalid core %q: %w", part, err)
		}
		if !isRange {
			nums = append(nums, start)
			continue
		}
		end, err := strconv.Atoi(hi)
		if err != nil {
			return nil, fmt.Errorf("invalid core range %q: %w", part, err)
		}
		if start > end {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCPURange, part)
		}
		for c := start; c <= end; c++ {
			nums = append(nums, c)
		}
	}
	return removeDuplicates(nums), nil
}

func removeDuplicates(cores []int) []int {
	result := []int{}
	seen := map[int]bool{}
	for _, c := range cores {
		if !seen[c] {
			result = append(result, c)
			seen[c] = true
		}
	}
	return result
}

// dropInvalid splits cores into those below max and those that are not.
func dropInvalid(cores []int, max int) (valid, dropped []int) {
	valid = []int{}
	for _, c := range cores {
		if c >= 0 && c < max {
			valid = append(valid, c)
		} else {
			dropped = append(dropped, c)
		}
	}
	return valid, dropped
}
