package game

import (
	"context"
	"time"
)

// BaseDelay is the interval between gravity ticks at level 1.
const BaseDelay = 500 * time.Millisecond

// Delay shortens with every level.
func Delay(level int) time.Duration {
	if level < 1 {
		level = 1
	}

	return BaseDelay / time.Duration(level)
}

// LevelPacer sleeps Delay(level) between iterations.
type LevelPacer struct {
	timer *time.Timer
}

func NewLevelPacer() *LevelPacer {
	return &LevelPacer{}
}

func (p *LevelPacer) Wait(ctx context.Context, level int) error {
	d := Delay(level)
	if p.timer == nil {
		p.timer = time.NewTimer(d)
	} else {
		p.timer.Reset(d)
	}

	select {
	case <-ctx.Done():
		p.timer.Stop()
		return ctx.Err()
	case <-p.timer.C:
		return nil
	}
}
