package cron

import (
	"context"
	"fmt"
	"time"

	"slotbook/utils"

	robfigcron "github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// sweepTimeout bounds a single sweep run.
const sweepTimeout = 30 * time.Second

// SessionSweeper removes expired sessions. user.UserService satisfies it.
type SessionSweeper interface {
	SweepExpiredSessions(ctx context.Context) (int, error)
}

// StartSessionSweeper schedules periodic removal of expired sessions.
// The caller stops the returned scheduler on shutdown.
func StartSessionSweeper(schedule string, sweeper SessionSweeper) (*robfigcron.Cron, error) {
	c := robfigcron.New()
	if _, err := c.AddFunc(schedule, func() { sweepOnce(sweeper) }); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}
	c.Start()

	utils.GetLogger().Info("[SessionSweeper] Started", zap.String("schedule", schedule))
	return c, nil
}

func sweepOnce(sweeper SessionSweeper) {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	removed, err := sweeper.SweepExpiredSessions(ctx)
	if err != nil {
		utils.GetLogger().Error("[SessionSweeper] Sweep failed", zap.Error(err))
		return
	}
	if removed > 0 {
		utils.GetLogger().Info("[SessionSweeper] Removed expired sessions", zap.Int("count", removed))
	}
}
