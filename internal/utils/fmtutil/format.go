// Package fmtutil provides formatting utilities for human-readable output.
// Package fmtutil 提供用于人类可读输出的格式化工具。
package fmtutil

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatNumber formats large numbers with K/M/G suffixes.
// FormatNumber 使用 K/M/G 后缀格式化大数字。
func FormatNumber(n uint64) string {
	switch {
	case n < 1000:
		return strconv.FormatUint(n, 10)
	case n < 1000000:
		return fmt.Sprintf("%.2fK", float64(n)/1000)
	case n < 1000000000:
		return fmt.Sprintf("%.2fM", float64(n)/1000000)
	default:
		return fmt.Sprintf("%.2fG", float64(n)/1000000000)
	}
}

// FormatCores folds a core list back into range form, e.g. [0 1 2 5] -> "0-2,5".
// Order is kept, only ascending runs are folded.
// FormatCores 将核心列表折叠为区间形式，例如 [0 1 2 5] -> "0-2,5"。保持原顺序，仅折叠递增的连续段。
func FormatCores(cores []int) string {
	var parts []string
	for i := 0; i < len(cores); {
		j := i
		for j+1 < len(cores) && cores[j+1] == cores[j]+1 {
			j++
		}
		if j == i {
			parts = append(parts, strconv.Itoa(cores[i]))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", cores[i], cores[j]))
		}
		i = j + 1
	}
	return strings.Join(parts, ",")
}
