// Package player shows rendered frames one after another on a terminal.
package player

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/muesli/termenv"
)

// DefaultDelay is used when the frame rate is not positive.
const DefaultDelay = 100 * time.Millisecond

// FrameDelay returns the time each frame stays on screen at fps frames per second.
func FrameDelay(fps float64) time.Duration {
	if fps <= 0 {
		return DefaultDelay
	}
	return time.Duration(float64(time.Second) / fps)
}

/*
Play writes every frame to w followed by a newline and waits FrameDelay(fps) after each one. The screen is cleared (and the cursor homed) before every frame except the first.

Play returns ctx.Err() as soon as ctx is done, or the first write error.
*/
func Play(ctx context.Context, w io.Writer, frames []string, fps float64) error {
	out := termenv.NewOutput(w)
	delay := FrameDelay(fps)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	for i, frame := range frames {
		if err := ctx.Err(); err != nil {
			return err
		}

		if i > 0 {
			out.ClearScreen()
		}

		if _, err := fmt.Fprintln(w, frame); err != nil {
			return fmt.Errorf("write frame %d: %w", i, err)
		}

		timer.Reset(delay)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	return nil
}
