// Package heartbeat runs a periodic keep-alive tick that stops idle hosts
// from putting the process to sleep. It shares no state with request handling.
package heartbeat

import (
	"context"
	"time"

	"resume-ats/internal/shared/metrics"
	"resume-ats/internal/shared/telemetry"
)

// DefaultInterval stays under the five minute idle window of free hosting tiers.
const DefaultInterval = 4 * time.Minute

// Run ticks every interval until ctx is canceled. onTick, when non-nil, is
// called after each tick is logged.
func Run(ctx context.Context, interval time.Duration, onTick func(time.Time)) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	telemetry.Info("heartbeat.start", map[string]any{"interval": interval.String()})

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			telemetry.Info("heartbeat.stop", nil)
			return
		case now := <-ticker.C:
			metrics.IncHeartbeatTick()
			telemetry.Info("heartbeat.tick", map[string]any{"at": now.UTC().Format(time.RFC3339)})
			if onTick != nil {
				onTick(now)
			}
		}
	}
}

// Start launches Run in its own goroutine and returns a channel closed when it exits.
func Start(ctx context.Context, interval time.Duration) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		Run(ctx, interval, nil)
	}()
	return done
}
