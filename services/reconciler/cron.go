package reconciler

import (
	"time"

	"motorent/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Start runs one pass immediately to sync availability at boot, then
// schedules recurring passes. The schedule is a cron spec such as
// "@every 1h". The returned cron can be stopped on shutdown.
func (r *Reconciler) Start(schedule string) (*cron.Cron, error) {
	r.Run(time.Now())

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		r.Run(time.Now())
	})
	if err != nil {
		return nil, err
	}
	c.Start()

	utils.GetLogger().Info("reconciler scheduled", zap.String("schedule", schedule))
	return c, nil
}
