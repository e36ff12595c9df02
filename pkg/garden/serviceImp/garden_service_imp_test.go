package serviceImp

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"potager/entities"
	"potager/pkg/apperr"
	catalogImp "potager/pkg/catalog/repositoryImp"
	gardenImp "potager/pkg/garden/repositoryImp"
	"potager/pkg/garden/service"
	"potager/pkg/testutil"
	scheduleImp "potager/pkg/watering/repositoryImp"
)

func strPtr(s string) *string { return &s }

func newService(t *testing.T) (*gardenSvc, *entities.User, *entities.Plant, func() int64) {
	t.Helper()
	db := testutil.NewDB(t)
	user := testutil.SeedUser(t, db, "ines@example.com", false)
	plant := testutil.SeedPlant(t, db, "p-basilic", "Basilic", "Juillet: 2-3 fois par semaine")
	svc := NewGardenService(gardenImp.New(db), catalogImp.New(db), scheduleImp.New(db)).(*gardenSvc)
	countSchedules := func() int64 {
		var n int64
		require.NoError(t, db.Model(&entities.WateringSchedule{}).Count(&n).Error)
		return n
	}
	return svc, user, plant, countSchedules
}

func TestAddStoresCatalogName(t *testing.T) {
	svc, user, plant, _ := newService(t)
	ctx := context.Background()

	g, err := svc.Add(ctx, user, service.AddInput{PlantID: plant.ID, Location: "extérieur"})
	require.NoError(t, err)
	assert.Equal(t, "Basilic", g.PlantName)
	assert.Equal(t, "Basilic", g.CustomName)
	assert.Equal(t, "bonne", g.HealthStatus)

	list, err := svc.List(ctx, user)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, g.ID, list[0].ID)
}

func TestAddUnknownPlant(t *testing.T) {
	svc, user, _, _ := newService(t)
	_, err := svc.Add(context.Background(), user, service.AddInput{PlantID: "nope"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.Add(context.Background(), user, service.AddInput{})
	assert.ErrorIs(t, err, apperr.ErrBadRequest)
}

func TestUpdatePatchesOnlyGivenFields(t *testing.T) {
	svc, user, plant, _ := newService(t)
	ctx := context.Background()
	g, err := svc.Add(ctx, user, service.AddInput{PlantID: plant.ID, CustomName: "Basilic du balcon", Notes: "pot bleu"})
	require.NoError(t, err)

	out, err := svc.Update(ctx, user, g.ID, service.GardenPatch{HealthStatus: strPtr("excellente")})
	require.NoError(t, err)
	assert.Equal(t, "excellente", out.HealthStatus)
	assert.Equal(t, "Basilic du balcon", out.CustomName)
	assert.Equal(t, "pot bleu", out.Notes)

	_, err = svc.Update(ctx, user, g.ID, service.GardenPatch{HealthStatus: strPtr("fanée")})
	assert.ErrorIs(t, err, apperr.ErrBadRequest)
}

func TestCrossUserAccessIsNotFound(t *testing.T) {
	svc, user, plant, _ := newService(t)
	ctx := context.Background()
	g, err := svc.Add(ctx, user, service.AddInput{PlantID: plant.ID})
	require.NoError(t, err)

	intruder := &entities.User{ID: "someone-else"}
	_, err = svc.Update(ctx, intruder, g.ID, service.GardenPatch{Notes: strPtr("x")})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.ErrorIs(t, svc.Remove(ctx, intruder, g.ID), apperr.ErrNotFound)
	_, err = svc.MarkWatered(ctx, intruder, g.ID, service.WaterInput{})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = svc.History(ctx, intruder, g.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	list, err := svc.List(ctx, intruder)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMarkWateredFollowsSchedule(t *testing.T) {
	svc, user, plant, _ := newService(t)
	ctx := context.Background()
	g, err := svc.Add(ctx, user, service.AddInput{PlantID: plant.ID})
	require.NoError(t, err)

	at := time.Date(2025, 7, 1, 7, 0, 0, 0, time.UTC)
	out, err := svc.MarkWatered(ctx, user, g.ID, service.WaterInput{WateredAt: &service.Timestamp{Time: at}})
	require.NoError(t, err)
	require.NotNil(t, out.LastWatered)
	assert.True(t, out.LastWatered.Equal(at))
	assert.Nil(t, out.NextWatering, "no schedule yet")

	three := 3
	require.NoError(t, svc.schedules.Upsert(ctx, &entities.WateringSchedule{
		UserID: user.ID, GardenEntryID: g.ID, Mode: entities.WateringModeAuto, AutoFrequency: &three,
	}))
	later := at.Add(48 * time.Hour)
	out, err = svc.MarkWatered(ctx, user, g.ID, service.WaterInput{WateredAt: &service.Timestamp{Time: later}, Note: "arrosage du soir"})
	require.NoError(t, err)
	require.NotNil(t, out.NextWatering)
	assert.True(t, out.NextWatering.Equal(later.Add(56*time.Hour)))

	events, err := svc.History(ctx, user, g.ID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "arrosage du soir", events[0].Note, "newest first")
}

func TestRemoveCascades(t *testing.T) {
	svc, user, plant, countSchedules := newService(t)
	ctx := context.Background()
	g, err := svc.Add(ctx, user, service.AddInput{PlantID: plant.ID})
	require.NoError(t, err)
	require.NoError(t, svc.schedules.Upsert(ctx, &entities.WateringSchedule{
		UserID: user.ID, GardenEntryID: g.ID, Mode: entities.WateringModeCustom, CustomDays: []int{1},
	}))
	_, err = svc.MarkWatered(ctx, user, g.ID, service.WaterInput{})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, user, g.ID))
	assert.EqualValues(t, 0, countSchedules())
	assert.ErrorIs(t, svc.Remove(ctx, user, g.ID), apperr.ErrNotFound)
}

func TestTimestampAcceptsSeveralLayouts(t *testing.T) {
	for _, raw := range []string{`"2025-06-01T10:00:00Z"`, `"2025-06-01T10:00:00"`, `"2025-06-01"`} {
		var ts service.Timestamp
		require.NoError(t, json.Unmarshal([]byte(raw), &ts), raw)
		assert.Equal(t, 2025, ts.Year())
		assert.Equal(t, time.June, ts.Month())
	}
	var ts service.Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"demain"`), &ts))
}
