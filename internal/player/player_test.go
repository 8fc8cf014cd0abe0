package player

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameDelay(t *testing.T) {
	assert.Equal(t, 100*time.Millisecond, FrameDelay(0))
	assert.Equal(t, 100*time.Millisecond, FrameDelay(-12))
	assert.Equal(t, 250*time.Millisecond, FrameDelay(4))
	assert.Equal(t, time.Millisecond, FrameDelay(1000))
}

func TestPlayFraming(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Play(t.Context(), &buf, []string{"a\nb", "c", "d"}, 1000))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "a\nb\n"), "first frame is not preceded by a clear: %q", out)
	assert.Equal(t, 2, strings.Count(out, "\x1b[2J"))
	assert.True(t, strings.HasSuffix(out, "d\n"))

	clearAt := strings.Index(out, "\x1b[2J")
	assert.Less(t, strings.Index(out, "b\n"), clearAt)
	assert.Greater(t, strings.Index(out, "c\n"), clearAt)
}

func TestPlaySingleFrame(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Play(t.Context(), &buf, []string{"only"}, 1000))
	assert.Equal(t, "only\n", buf.String())
}

func TestPlayNoFrames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Play(t.Context(), &buf, nil, 0))
	assert.Empty(t, buf.String())
}

func TestPlayCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	var buf bytes.Buffer
	err := Play(ctx, &buf, []string{"a", "b"}, 0)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestPlayStopsWhileWaiting(t *testing.T) {
	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()

	var buf bytes.Buffer
	start := time.Now()
	// one frame per minute, only the timeout can end this early
	err := Play(ctx, &buf, []string{"a", "b"}, 1.0/60)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 10*time.Second)
	assert.Equal(t, "a\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestPlayWriteError(t *testing.T) {
	err := Play(t.Context(), failingWriter{}, []string{"a"}, 1000)
	assert.ErrorContains(t, err, "closed pipe")
}
