package tui

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunWithSpinner(t *testing.T) {
	tests := []struct {
		name      string
		fn        func() (string, error)
		wantVal   string
		wantErr   error
		wantEmpty bool
	}{
		{
			name:      "returns value from fn",
			fn:        func() (string, error) { return "hello", nil },
			wantVal:   "hello",
			wantEmpty: true,
		},
		{
			name:      "propagates error from fn",
			fn:        func() (string, error) { return "", errors.New("fail") },
			wantErr:   errors.New("fail"),
			wantEmpty: true,
		},
		{
			name:      "returns value even when fn also returns error",
			fn:        func() (string, error) { return "partial", errors.New("warn") },
			wantVal:   "partial",
			wantErr:   errors.New("warn"),
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			got, err := RunWithSpinner("testing...", tt.fn, WithWriter(&buf))

			assert.Equal(t, tt.wantVal, got)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
			if tt.wantEmpty {
				assert.Empty(t, buf.String(), "non-TTY writer should produce no spinner output")
			}
		})
	}
}

func TestSpinnerOptions(t *testing.T) {
	var buf bytes.Buffer
	sw := spinnerWriter{interval: spinnerStyle.FPS}

	WithWriter(&buf)(&sw)
	WithInterval(5 * time.Millisecond)(&sw)

	assert.Same(t, &buf, sw.writer)
	assert.Equal(t, 5*time.Millisecond, sw.interval)
}

func TestSpinnerStyle_ProvidesFrames(t *testing.T) {
	assert.NotEmpty(t, spinnerStyle.Frames)
	assert.Positive(t, spinnerStyle.FPS)
	for _, frame := range spinnerStyle.Frames {
		assert.NotEmpty(t, frame)
	}
}

func TestRunWithSpinner_CustomIntervalNonTTY(t *testing.T) {
	var buf bytes.Buffer
	calls := 0
	got, err := RunWithSpinner("importing...", func() (int, error) {
		calls++
		return 42, nil
	}, WithWriter(&buf), WithInterval(time.Millisecond))

	assert.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 1, calls)
	assert.Empty(t, buf.String())
}

func TestSpinnerWriter_KeepsFirstError(t *testing.T) {
	sw := spinnerWriter{writer: &failWriter{}}

	sw.printf("frame %d", 1)
	firstErr := sw.err
	assert.Error(t, firstErr)

	sw.printf("frame %d", 2)
	assert.Same(t, firstErr, sw.err)
}
