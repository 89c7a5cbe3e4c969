// Package latency simulates the round trip of a remote call.
package latency

import (
	"context"
	"time"
)

// Wait blocks for d or until ctx is done. It returns ctx.Err() when the wait
// was abandoned, in which case the caller must not apply its effect.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Do waits for d and then runs effect, unless ctx is done first.
func Do(ctx context.Context, d time.Duration, effect func() error) error {
	if err := Wait(ctx, d); err != nil {
		return err
	}
	return effect()
}
