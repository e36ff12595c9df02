package watering

import (
	"context"
	"errors"
	"time"

	"github.com/robfig/cron/v3"

	"potager/entities"
	"potager/pkg/apperr"
	garden "potager/pkg/garden/repository"
	"potager/pkg/logger"
	"potager/pkg/metrics"
	"potager/pkg/watering/repository"
)

// Reminder periodically fills in missing next_watering dates on scheduled
// entries and reports the entries that are due.
type Reminder struct {
	schedules repository.ScheduleRepository
	garden    garden.GardenRepository
	log       *logger.Logger
	now       func() time.Time
	cron      *cron.Cron
}

func NewReminder(s repository.ScheduleRepository, g garden.GardenRepository, log *logger.Logger) *Reminder {
	return &Reminder{schedules: s, garden: g, log: log, now: time.Now}
}

// Start registers the sweep on spec (standard cron syntax or descriptors such as @hourly).
func (r *Reminder) Start(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if _, err := r.RunOnce(ctx); err != nil {
			r.log.WithError(err).Error("watering reminder sweep failed")
		}
	}); err != nil {
		return err
	}
	r.cron = c
	c.Start()
	r.log.WithField("spec", spec).Info("watering reminder scheduled")
	return nil
}

// Stop waits for a running sweep to finish.
func (r *Reminder) Stop() {
	if r.cron == nil {
		return
	}
	<-r.cron.Stop().Done()
}

// anchor is the last watering, or when the schedule was last written for an
// entry that was never watered.
func anchor(entry *entities.GardenEntry, sch *entities.WateringSchedule) time.Time {
	switch {
	case entry.LastWatered != nil:
		return *entry.LastWatered
	case !sch.UpdatedAt.IsZero():
		return sch.UpdatedAt
	default:
		return sch.CreatedAt
	}
}

// RunOnce performs one sweep and returns the number of due entries.
func (r *Reminder) RunOnce(ctx context.Context) (int, error) {
	list, err := r.schedules.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	now := r.now()
	due := 0
	for i := range list {
		sch := &list[i]
		entry, err := r.garden.FindOwned(ctx, sch.GardenEntryID, sch.UserID)
		if errors.Is(err, apperr.ErrNotFound) {
			continue
		}
		if err != nil {
			return due, err
		}
		next := entry.NextWatering
		if next == nil {
			// only fill gaps; next_watering set by a watering, a schedule
			// write or the user is left alone
			next = NextWatering(sch, anchor(entry, sch))
			if err := r.garden.SetNextWatering(ctx, entry.ID, next); err != nil {
				return due, err
			}
		}
		if next != nil && !next.After(now) {
			due++
			r.log.WithField("garden_entry_id", entry.ID).
				WithField("user_id", entry.UserID).
				WithField("next_watering", next.Format(time.RFC3339)).
				Info("plant due for watering")
		}
	}
	metrics.SetRemindersDue(due)
	r.log.WithField("schedules", len(list)).WithField("due", due).Debug("watering reminder sweep done")
	return due, nil
}
