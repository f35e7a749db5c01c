package main

import (
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/marcus-crane/steammini/config"
	"github.com/marcus-crane/steammini/presence"
)

func SetupInBackground(cfg config.Config, tracker *presence.Tracker) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, err
	}

	// If we're redeployed, the first run populates the latest state straight away
	_, err = s.NewJob(
		gocron.DurationJob(cfg.PollInterval()),
		gocron.NewTask(tracker.Refresh),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return nil, err
	}

	return s, nil
}
