package cpu

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/livp123/dpdkintel/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withPossible(t *testing.T, n int, err error) {
	orig := possibleCPU
	possibleCPU = func() (int, error) { return n, err }
	t.Cleanup(func() { possibleCPU = orig })
}

var cpuParseTests = []struct {
	line     string
	expected []int
	wantErr  bool
}{
	{"", []int{}, false},
	{"1-5", []int{1, 2, 3, 4, 5}, false},
	{"1,10-13,9", []int{1, 10, 11, 12, 13, 9}, false},
	{"10-14,13-15", []int{10, 11, 12, 13, 14, 15}, false},
	{" 2 , 4 ", []int{2, 4}, false},
	{"1-3,6-", nil, true},
	{"-1", nil, true},
	{"10-6", nil, true},
	{"a", nil, true},
}

func TestParseCPUs(t *testing.T) {
	for _, tt := range cpuParseTests {
		actual, err := ParseCPUs(tt.line)
		if tt.wantErr {
			assert.Error(t, err, tt.line)
			continue
		}
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.expected, actual, tt.line)
	}

	_, err := ParseCPUs("7-3")
	assert.ErrorIs(t, err, ErrInvalidCPURange)
}

func TestDropInvalid(t *testing.T) {
	valid, dropped := dropInvalid([]int{1, 2, 100, 3}, 20)
	assert.Equal(t, []int{1, 2, 3}, valid)
	assert.Equal(t, []int{100}, dropped)
}

func TestPossibleFallback(t *testing.T) {
	withPossible(t, 0, errors.New("no sysfs"))
	assert.Greater(t, Possible(), 0)

	withPossible(t, 12, nil)
	assert.Equal(t, 12, Possible())
}

// TestAllocator tests that cores are handed out in order and exactly once
// TestAllocator 测试核心按顺序且仅分配一次
func TestAllocator(t *testing.T) {
	withPossible(t, 8, nil)

	a, err := NewAllocator(context.Background(), "3,1,6-7,30")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 6, 7}, a.Cores())

	var got []int
	for a.Remaining() > 0 {
		c, err := a.Next()
		require.NoError(t, err)
		got = append(got, c)
	}
	assert.Equal(t, []int{3, 1, 6, 7}, got)

	_, err = a.Next()
	assert.ErrorIs(t, err, apperrors.ErrResource)
}

func TestAllocatorDefaultsToAllCores(t *testing.T) {
	withPossible(t, 4, nil)

	a, err := NewAllocator(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, a.Cores())
}

func TestAllocatorRejectsBadLists(t *testing.T) {
	withPossible(t, 4, nil)

	_, err := NewAllocator(context.Background(), "5-3")
	assert.ErrorIs(t, err, apperrors.ErrConfigInvalid)

	_, err = NewAllocator(context.Background(), "8-9")
	assert.ErrorIs(t, err, apperrors.ErrConfigInvalid)
	assert.ErrorContains(t, err, "runmode.cpus")
}

func TestFromCores(t *testing.T) {
	a := FromCores(5, 2)
	c, err := a.Next()
	require.NoError(t, err)
	assert.Equal(t, 5, c)
	assert.Equal(t, 1, a.Remaining())
}
