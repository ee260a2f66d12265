package services

import (
	"context"
	"time"
)

// Watch invokes fn immediately and then on every tick until ctx is
// cancelled. The ticker is always released on exit, so a torn-down view
// can never be updated again. It replaces the old fixed-interval
// dashboard refresh.
func Watch(ctx context.Context, interval time.Duration, fn func()) {
	fn()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn()
		}
	}
}
