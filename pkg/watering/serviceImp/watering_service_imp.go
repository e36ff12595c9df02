package serviceImp

import (
	"context"
	"errors"
	"time"

	"potager/entities"
	"potager/pkg/apperr"
	catalog "potager/pkg/catalog/repository"
	garden "potager/pkg/garden/repository"
	"potager/pkg/logger"
	"potager/pkg/metrics"
	"potager/pkg/watering"
	repo "potager/pkg/watering/repository"
	"potager/pkg/watering/service"
)

type wateringSvc struct {
	schedules repo.ScheduleRepository
	garden    garden.GardenRepository
	plants    catalog.CatalogRepository
	log       *logger.Logger
	now       func() time.Time
}

func NewWateringService(s repo.ScheduleRepository, g garden.GardenRepository, p catalog.CatalogRepository, log *logger.Logger) service.WateringService {
	return &wateringSvc{schedules: s, garden: g, plants: p, log: log, now: time.Now}
}

func (s *wateringSvc) Create(ctx context.Context, user *entities.User, in service.CreateInput) (*entities.WateringSchedule, error) {
	entry, err := s.garden.FindOwned(ctx, in.GardenEntryID, user.ID)
	if err != nil {
		return nil, err
	}
	sch := &entities.WateringSchedule{
		UserID:        user.ID,
		GardenEntryID: entry.ID,
		Mode:          in.Mode,
		CustomDays:    in.CustomDays,
	}
	return s.write(ctx, "create", entry, sch)
}

func (s *wateringSvc) Update(ctx context.Context, user *entities.User, gardenEntryID string, p service.SchedulePatch) (*entities.WateringSchedule, error) {
	cur, err := s.schedules.Get(ctx, user.ID, gardenEntryID)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, apperr.NotFound("Watering schedule not found")
	}
	entry, err := s.garden.FindOwned(ctx, gardenEntryID, user.ID)
	if err != nil {
		return nil, err
	}
	if p.Mode != nil {
		cur.Mode = *p.Mode
	}
	if p.CustomDays != nil {
		cur.CustomDays = *p.CustomDays
	}
	return s.write(ctx, "update", entry, cur)
}

func (s *wateringSvc) Get(ctx context.Context, user *entities.User, gardenEntryID string) (*entities.WateringSchedule, error) {
	return s.schedules.Get(ctx, user.ID, gardenEntryID)
}

func (s *wateringSvc) Delete(ctx context.Context, user *entities.User, gardenEntryID string) error {
	if err := s.schedules.Delete(ctx, user.ID, gardenEntryID); err != nil {
		return err
	}
	return s.garden.SetNextWatering(ctx, gardenEntryID, nil)
}

// write validates and normalises sch, upserts it and refreshes the entry's
// next_watering.
func (s *wateringSvc) write(ctx context.Context, op string, entry *entities.GardenEntry, sch *entities.WateringSchedule) (*entities.WateringSchedule, error) {
	switch sch.Mode {
	case entities.WateringModeAuto:
		freq, err := s.frequencyFor(ctx, entry)
		if err != nil {
			return nil, err
		}
		sch.AutoFrequency = &freq
	case entities.WateringModeCustom:
		if !watering.ValidateCustomDays(sch.CustomDays) {
			return nil, apperr.BadRequest("custom_days must list distinct weekdays between 1 (Monday) and 7 (Sunday)")
		}
		sch.AutoFrequency = nil
	default:
		return nil, apperr.BadRequest("mode must be auto or custom")
	}

	if err := s.schedules.Upsert(ctx, sch); err != nil {
		return nil, apperr.Internal("save watering schedule", err)
	}
	metrics.RecordScheduleWrite(op, sch.Mode)

	from := s.now()
	if entry.LastWatered != nil {
		from = *entry.LastWatered
	}
	if err := s.garden.SetNextWatering(ctx, entry.ID, watering.NextWatering(sch, from)); err != nil {
		return nil, err
	}

	stored, err := s.schedules.Get(ctx, sch.UserID, sch.GardenEntryID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, apperr.Internal("watering schedule vanished after write", nil)
	}
	return stored, nil
}

// frequencyFor resolves the catalog entry by id, then by name, and reads its
// monthly watering text.
func (s *wateringSvc) frequencyFor(ctx context.Context, entry *entities.GardenEntry) (int, error) {
	plant, err := s.plants.FindByID(ctx, entry.PlantID)
	if errors.Is(err, apperr.ErrNotFound) && entry.PlantName != "" {
		plant, err = s.plants.FindByName(ctx, entry.PlantName)
	}
	if errors.Is(err, apperr.ErrNotFound) {
		if s.log != nil {
			s.log.WithField("garden_entry_id", entry.ID).Warn("catalog entry not found, using default watering frequency")
		}
		return watering.DefaultFrequency, nil
	}
	if err != nil {
		return 0, err
	}
	return watering.DeriveAutoFrequency(plant.MonthlyWatering), nil
}
