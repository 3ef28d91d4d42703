package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{-1, "0.00 B"},
		{0, "0.00 B"},
		{512, "512.00 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{50 * 1024, "50.00 KB"},
		{3 << 20, "3.00 MB"},
		{int64(1.5 * float64(1<<30)), "1.50 GB"},
		{1 << 40, "1.00 TB"},
		{5 << 40, "5.00 TB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSize(tt.in), "input %d", tt.in)
	}
}
