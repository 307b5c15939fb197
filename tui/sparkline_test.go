package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSparkline(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		width  int
		want   string
	}{
		{"empty", nil, 10, ""},
		{"all zero", []int{0, 0, 0}, 0, "   "},
		{"scaled to max", []int{0, 1, 2, 7}, 0, " ▂▃█"},
		{"single value", []int{4}, 10, "█"},
		{"sampled down keeps peaks", []int{1, 7, 0, 0}, 2, "█ "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderSparkline(tt.values, tt.width))
		})
	}
}
