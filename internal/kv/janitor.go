// SPDX-License-Identifier: MIT
package kv

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrInvalidInterval is returned for a purge interval <= 0.
var ErrInvalidInterval = errors.New("purge interval must be positive")

// Janitor periodically purges expired cache entries.
type Janitor struct {
	store     Store
	interval  time.Duration
	scheduler gocron.Scheduler
	stopOnce  sync.Once
	stopErr   error
}

// NewJanitor creates a janitor for store. Call Start to begin purging.
func NewJanitor(store Store, interval time.Duration) (*Janitor, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}

	sched, err := gocron.NewScheduler(
		gocron.WithGlobalJobOptions(
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					log.Error().
						Str("job_id", jobID.String()).
						Str("job_name", jobName).
						Interface("panic", recoverData).
						Msg("Cache janitor panicked")
				}),
			),
		),
	)
	if err != nil {
		return nil, err
	}

	j := &Janitor{store: store, interval: interval, scheduler: sched}
	if _, err := sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(j.RunOnce),
		gocron.WithName("cache-purge"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	); err != nil {
		return nil, err
	}
	return j, nil
}

// Start begins purging; the first run happens immediately.
func (j *Janitor) Start() {
	log.Info().Dur("interval", j.interval).Msg("Cache janitor starting")
	j.scheduler.Start()
}

// Stop shuts the scheduler down. It is safe to call more than once.
func (j *Janitor) Stop() error {
	j.stopOnce.Do(func() {
		log.Info().Msg("Cache janitor stopping")
		j.stopErr = j.scheduler.Shutdown()
	})
	return j.stopErr
}

// RunOnce purges expired entries and logs the outcome.
func (j *Janitor) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := j.store.PurgeExpired(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Cache purge failed")
		return
	}
	if n > 0 {
		log.Debug().Int64("purged", n).Msg("Expired cache entries removed")
	}
}
