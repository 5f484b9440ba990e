package fmtutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFormatNumber tests FormatNumber function
// TestFormatNumber 测试 FormatNumber 函数
func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input    uint64
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.00K"},
		{1500000, "1.50M"},
		{2500000000, "2.50G"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatNumber(tt.input))
	}
}

func TestFormatCores(t *testing.T) {
	tests := []struct {
		input    []int
		expected string
	}{
		{nil, ""},
		{[]int{3}, "3"},
		{[]int{0, 1, 2, 5}, "0-2,5"},
		{[]int{1, 10, 11, 12, 13, 9}, "1,10-13,9"},
		{[]int{4, 3}, "4,3"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatCores(tt.input))
	}
}
