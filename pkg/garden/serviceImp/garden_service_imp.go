package serviceImp

import (
	"context"
	"strings"
	"time"

	"potager/entities"
	"potager/pkg/apperr"
	catalog "potager/pkg/catalog/repository"
	repo "potager/pkg/garden/repository"
	"potager/pkg/garden/service"
	"potager/pkg/watering"
	schedules "potager/pkg/watering/repository"
)

var healthStatuses = map[string]bool{
	"excellente":   true,
	"bonne":        true,
	"préoccupante": true,
	"malade":       true,
}

type gardenSvc struct {
	r         repo.GardenRepository
	plants    catalog.CatalogRepository
	schedules schedules.ScheduleRepository
	now       func() time.Time
}

func NewGardenService(r repo.GardenRepository, plants catalog.CatalogRepository, sch schedules.ScheduleRepository) service.GardenService {
	return &gardenSvc{r: r, plants: plants, schedules: sch, now: time.Now}
}

func (s *gardenSvc) List(ctx context.Context, user *entities.User) ([]entities.GardenEntry, error) {
	return s.r.ListByUser(ctx, user.ID)
}

func (s *gardenSvc) Add(ctx context.Context, user *entities.User, in service.AddInput) (*entities.GardenEntry, error) {
	if strings.TrimSpace(in.PlantID) == "" {
		return nil, apperr.BadRequest("plant_id is required")
	}
	plant, err := s.plants.FindByID(ctx, in.PlantID)
	if err != nil {
		return nil, err
	}
	g := &entities.GardenEntry{
		UserID:       user.ID,
		PlantID:      plant.ID,
		PlantName:    plant.NameFR,
		CustomName:   strings.TrimSpace(in.CustomName),
		PlantedDate:  in.PlantedDate.Ptr(),
		Location:     in.Location,
		Notes:        in.Notes,
		ImageBase64:  in.ImageBase64,
		HealthStatus: "bonne",
	}
	if g.CustomName == "" {
		g.CustomName = plant.NameFR
	}
	if err := s.r.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *gardenSvc) Update(ctx context.Context, user *entities.User, id string, p service.GardenPatch) (*entities.GardenEntry, error) {
	cur, err := s.r.FindOwned(ctx, id, user.ID)
	if err != nil {
		return nil, err
	}
	if p.HealthStatus != nil {
		if !healthStatuses[*p.HealthStatus] {
			return nil, apperr.BadRequest("health_status must be one of excellente, bonne, préoccupante, malade")
		}
		cur.HealthStatus = *p.HealthStatus
	}
	if p.CustomName != nil {
		cur.CustomName = *p.CustomName
	}
	if p.PlantedDate != nil {
		cur.PlantedDate = p.PlantedDate.Ptr()
	}
	if p.Location != nil {
		cur.Location = *p.Location
	}
	if p.Notes != nil {
		cur.Notes = *p.Notes
	}
	if p.ImageBase64 != nil {
		cur.ImageBase64 = *p.ImageBase64
	}
	if p.LastWatered != nil {
		cur.LastWatered = p.LastWatered.Ptr()
	}
	if p.NextWatering != nil {
		cur.NextWatering = p.NextWatering.Ptr()
	}
	return cur, s.r.Save(ctx, cur)
}

func (s *gardenSvc) Remove(ctx context.Context, user *entities.User, id string) error {
	return s.r.Delete(ctx, id, user.ID)
}

// MarkWatered logs a watering and moves next_watering along the schedule, if any.
func (s *gardenSvc) MarkWatered(ctx context.Context, user *entities.User, id string, in service.WaterInput) (*entities.GardenEntry, error) {
	if _, err := s.r.FindOwned(ctx, id, user.ID); err != nil {
		return nil, err
	}
	at := s.now()
	if in.WateredAt != nil {
		at = in.WateredAt.Time
	}

	sch, err := s.schedules.Get(ctx, user.ID, id)
	if err != nil {
		return nil, err
	}
	var next *time.Time
	if sch != nil {
		next = watering.NextWatering(sch, at)
	}

	ev := &entities.WateringEvent{GardenEntryID: id, UserID: user.ID, WateredAt: at, Note: in.Note}
	if err := s.r.RecordWatering(ctx, ev, next); err != nil {
		return nil, err
	}
	return s.r.FindOwned(ctx, id, user.ID)
}

func (s *gardenSvc) History(ctx context.Context, user *entities.User, id string) ([]entities.WateringEvent, error) {
	if _, err := s.r.FindOwned(ctx, id, user.ID); err != nil {
		return nil, err
	}
	return s.r.ListWaterings(ctx, id, user.ID)
}
