package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		flags    []bool
		expected int
	}{
		{
			name:     "empty list is zero",
			flags:    []bool{},
			expected: 0,
		},
		{
			name:     "nil list is zero",
			flags:    nil,
			expected: 0,
		},
		{
			name:     "single complete flag",
			flags:    []bool{true},
			expected: 100,
		},
		{
			name:     "single incomplete flag",
			flags:    []bool{false},
			expected: 0,
		},
		{
			name:     "half complete",
			flags:    []bool{true, false},
			expected: 50,
		},
		{
			name:     "two of three rounds up",
			flags:    []bool{true, true, false},
			expected: 67,
		},
		{
			name:     "one of three rounds down",
			flags:    []bool{true, false, false},
			expected: 33,
		},
		{
			name:     "one of eight rounds half up",
			flags:    []bool{true, false, false, false, false, false, false, false},
			expected: 13, // 12.5 rounds up
		},
		{
			name:     "three of four",
			flags:    []bool{true, true, true, false},
			expected: 75,
		},
		{
			name:     "all complete",
			flags:    []bool{true, true, true, true},
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Percent(tt.flags))
		})
	}
}

func TestPercent_AlwaysInRange(t *testing.T) {
	// Exhaust every flag combination up to length 6.
	for n := 0; n <= 6; n++ {
		for mask := 0; mask < 1<<n; mask++ {
			flags := make([]bool, n)
			for i := 0; i < n; i++ {
				flags[i] = mask&(1<<i) != 0
			}
			got := Percent(flags)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		}
	}
}
