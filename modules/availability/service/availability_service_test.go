package service

import (
	"context"
	"database/sql"
	"sort"
	"testing"

	"careconnect-api/core/errors"
	"careconnect-api/modules/availability/dto"
	"careconnect-api/modules/availability/entity"
	"careconnect-api/modules/availability/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

// fakeScheduleRepo keeps all schedule state in memory. WithTransaction
// snapshots the state and restores it when fn fails, mirroring rollback.
type fakeScheduleRepo struct {
	minSlots map[uuid.UUID]int
	days     []entity.AvailabilityDay
	slots    []entity.AvailabilitySlot
	deleted  int
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{minSlots: make(map[uuid.UUID]int)}
}

func (f *fakeScheduleRepo) WithTransaction(ctx context.Context, fn func(repo repository.AvailabilityRepositoryInterface) error) error {
	savedMin := make(map[uuid.UUID]int, len(f.minSlots))
	for k, v := range f.minSlots {
		savedMin[k] = v
	}
	savedDays := append([]entity.AvailabilityDay(nil), f.days...)
	savedSlots := append([]entity.AvailabilitySlot(nil), f.slots...)
	savedDeleted := f.deleted

	if err := fn(f); err != nil {
		f.minSlots = savedMin
		f.days = savedDays
		f.slots = savedSlots
		f.deleted = savedDeleted
		return err
	}
	return nil
}

func (f *fakeScheduleRepo) GetMinBookingSlot(ctx context.Context, profileID uuid.UUID) (int, error) {
	minutes, ok := f.minSlots[profileID]
	if !ok {
		return 0, sql.ErrNoRows
	}
	return minutes, nil
}

func (f *fakeScheduleRepo) UpdateMinBookingSlot(ctx context.Context, profileID uuid.UUID, minutes int) error {
	f.minSlots[profileID] = minutes
	return nil
}

func (f *fakeScheduleRepo) ListDaysByProfile(ctx context.Context, profileID uuid.UUID) ([]entity.AvailabilityDay, error) {
	var out []entity.AvailabilityDay
	for _, day := range f.days {
		if day.ProfileID == profileID {
			out = append(out, day)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DayOfWeek < out[j].DayOfWeek })
	return out, nil
}

func (f *fakeScheduleRepo) FindDayByProfileAndDow(ctx context.Context, profileID uuid.UUID, dayOfWeek int) (*entity.AvailabilityDay, error) {
	for i := range f.days {
		if f.days[i].ProfileID == profileID && f.days[i].DayOfWeek == dayOfWeek {
			day := f.days[i]
			return &day, nil
		}
	}
	return nil, nil
}

func (f *fakeScheduleRepo) InsertDay(ctx context.Context, day *entity.AvailabilityDay) error {
	day.ID = uuid.New()
	f.days = append(f.days, *day)
	return nil
}

func (f *fakeScheduleRepo) UpdateDayAvailability(ctx context.Context, dayID uuid.UUID, isAvailable bool) error {
	for i := range f.days {
		if f.days[i].ID == dayID {
			f.days[i].IsAvailable = isAvailable
			return nil
		}
	}
	return sql.ErrNoRows
}

func (f *fakeScheduleRepo) ListSlotsByDay(ctx context.Context, dayID uuid.UUID) ([]entity.AvailabilitySlot, error) {
	var out []entity.AvailabilitySlot
	for _, slot := range f.slots {
		if slot.AvailabilityDayID == dayID {
			out = append(out, slot)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (f *fakeScheduleRepo) ListSlotsByProfile(ctx context.Context, profileID uuid.UUID) ([]entity.AvailabilitySlot, error) {
	var out []entity.AvailabilitySlot
	for _, slot := range f.slots {
		if slot.ProfileID == profileID {
			out = append(out, slot)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) InsertSlot(ctx context.Context, slot *entity.AvailabilitySlot) error {
	slot.ID = uuid.New()
	f.slots = append(f.slots, *slot)
	return nil
}

func (f *fakeScheduleRepo) UpdateSlot(ctx context.Context, slot *entity.AvailabilitySlot) error {
	for i := range f.slots {
		if f.slots[i].ID == slot.ID {
			f.slots[i] = *slot
			return nil
		}
	}
	return sql.ErrNoRows
}

func (f *fakeScheduleRepo) DeleteSlotsByIDs(ctx context.Context, profileID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	drop := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := f.slots[:0]
	for _, slot := range f.slots {
		if slot.ProfileID == profileID && drop[slot.ID] {
			f.deleted++
			continue
		}
		kept = append(kept, slot)
	}
	f.slots = kept
	return nil
}

func newTestService(t *testing.T) (AvailabilityServiceInterface, *fakeScheduleRepo, uuid.UUID) {
	t.Helper()
	repo := newFakeScheduleRepo()
	profileID := uuid.New()
	repo.minSlots[profileID] = 30
	return NewAvailabilityService(repo), repo, profileID
}

func syncDay(dow int, available bool, slots ...dto.SyncSlotRequest) dto.SyncDayRequest {
	return dto.SyncDayRequest{
		DayOfWeek:   ptr(dow),
		IsAvailable: ptr(available),
		Slots:       slots,
	}
}

func TestSyncScheduleEndToEnd(t *testing.T) {
	svc, repo, profileID := newTestService(t)
	ctx := context.Background()

	result, appErr := svc.SyncSchedule(ctx, profileID, &dto.SyncScheduleRequest{
		MinBookingSlot: ptr(30),
		Days: []dto.SyncDayRequest{
			syncDay(1, true, dto.SyncSlotRequest{StartTime: "09:00", EndTime: "12:00"}),
		},
	})
	require.Nil(t, appErr)

	assert.Equal(t, 30, result.MinBookingSlot)
	require.Len(t, result.Days, 1)
	day := result.Days[0]
	assert.Equal(t, 1, day.DayOfWeek)
	assert.True(t, day.IsAvailable)
	require.Len(t, day.Slots, 1)

	slot := day.Slots[0]
	assert.Equal(t, "09:00:00", slot.StartTime)
	assert.Equal(t, "12:00:00", slot.EndTime)
	assert.Equal(t, 30, slot.SlotDurationMinutes)
	assert.True(t, slot.IsActive)
	assert.Equal(t, "9:00 AM", slot.StartTimeFormatted)
	assert.Equal(t, "12:00 PM", slot.EndTimeFormatted)

	// Resubmitting the day with no slots removes the slot but keeps the day.
	result, appErr = svc.SyncSchedule(ctx, profileID, &dto.SyncScheduleRequest{
		Days: []dto.SyncDayRequest{syncDay(1, true)},
	})
	require.Nil(t, appErr)
	require.Len(t, result.Days, 1)
	assert.True(t, result.Days[0].IsAvailable)
	assert.Empty(t, result.Days[0].Slots)
	assert.Empty(t, repo.slots)
}

func TestSyncScheduleIdempotentResubmission(t *testing.T) {
	svc, _, profileID := newTestService(t)
	ctx := context.Background()

	first, appErr := svc.SyncSchedule(ctx, profileID, &dto.SyncScheduleRequest{
		Days: []dto.SyncDayRequest{
			syncDay(1, true,
				dto.SyncSlotRequest{StartTime: "09:00", EndTime: "12:00"},
				dto.SyncSlotRequest{StartTime: "13:00", EndTime: "17:00"},
			),
		},
	})
	require.Nil(t, appErr)
	require.Len(t, first.Days[0].Slots, 2)

	// Echo the schedule back, ids included, the way a client edits it.
	resubmit := &dto.SyncScheduleRequest{Days: []dto.SyncDayRequest{syncDay(1, true)}}
	for _, slot := range first.Days[0].Slots {
		id := uuid.MustParse(slot.ID)
		resubmit.Days[0].Slots = append(resubmit.Days[0].Slots, dto.SyncSlotRequest{
			ID:        &id,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}

	second, appErr := svc.SyncSchedule(ctx, profileID, resubmit)
	require.Nil(t, appErr)
	third, appErr := svc.SyncSchedule(ctx, profileID, resubmit)
	require.Nil(t, appErr)

	assert.Equal(t, first, second)
	assert.Equal(t, second, third)
}

func TestSyncScheduleFullReplace(t *testing.T) {
	svc, repo, profileID := newTestService(t)
	ctx := context.Background()

	seeded, appErr := svc.SyncSchedule(ctx, profileID, &dto.SyncScheduleRequest{
		Days: []dto.SyncDayRequest{
			syncDay(2, true,
				dto.SyncSlotRequest{StartTime: "08:00", EndTime: "10:00"},
				dto.SyncSlotRequest{StartTime: "10:00", EndTime: "12:00"},
				dto.SyncSlotRequest{StartTime: "14:00", EndTime: "16:00"},
			),
		},
	})
	require.Nil(t, appErr)
	require.Len(t, seeded.Days[0].Slots, 3)
	keptID := uuid.MustParse(seeded.Days[0].Slots[0].ID)

	// Keep the first stored slot, add one new, omit the rest.
	result, appErr := svc.SyncSchedule(ctx, profileID, &dto.SyncScheduleRequest{
		Days: []dto.SyncDayRequest{
			syncDay(2, true,
				dto.SyncSlotRequest{ID: &keptID, StartTime: "08:00", EndTime: "10:00"},
				dto.SyncSlotRequest{StartTime: "18:00", EndTime: "20:00"},
			),
		},
	})
	require.Nil(t, appErr)

	require.Len(t, result.Days[0].Slots, 2)
	assert.Equal(t, keptID.String(), result.Days[0].Slots[0].ID)
	assert.Equal(t, "18:00:00", result.Days[0].Slots[1].StartTime)
	assert.Equal(t, 2, repo.deleted)
}

func TestSyncScheduleOverlapRejected(t *testing.T) {
	svc, repo, profileID := newTestService(t)
	ctx := context.Background()

	_, appErr := svc.SyncSchedule(ctx, profileID, &dto.SyncScheduleRequest{
		Days: []dto.SyncDayRequest{
			syncDay(1, true, dto.SyncSlotRequest{StartTime: "09:00", EndTime: "10:00"}),
		},
	})
	require.Nil(t, appErr)
	storedID := uuid.MustParse(mustGetSchedule(t, svc, profileID).Days[0].Slots[0].ID)

	_, appErr = svc.SyncSchedule(ctx, profileID, &dto.SyncScheduleRequest{
		Days: []dto.SyncDayRequest{
			syncDay(1, true,
				dto.SyncSlotRequest{ID: &storedID, StartTime: "09:00", EndTime: "10:00"},
				dto.SyncSlotRequest{StartTime: "09:30", EndTime: "10:30"},
			),
		},
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrValidation, appErr.Code)
	assert.Contains(t, appErr.Message, "day 1")

	// Failed sync leaves stored state untouched.
	require.Len(t, repo.slots, 1)
	assert.Equal(t, "09:00:00", repo.slots[0].StartTime)
}

func TestSyncScheduleIncomingOverlapRejected(t *testing.T) {
	svc, repo, profileID := newTestService(t)
	ctx := context.Background()

	// Two new slots in the same call that overlap each other.
	_, appErr := svc.SyncSchedule(ctx, profileID, &dto.SyncScheduleRequest{
		Days: []dto.SyncDayRequest{
			syncDay(3, true,
				dto.SyncSlotRequest{StartTime: "09:00", EndTime: "11:00"},
				dto.SyncSlotRequest{StartTime: "10:00", EndTime: "12:00"},
			),
		},
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrValidation, appErr.Code)
	assert.Empty(t, repo.slots)
}

func TestSyncScheduleDuplicateRejected(t *testing.T) {
	svc, _, profileID := newTestService(t)
	ctx := context.Background()

	// Both new in the same batch.
	_, appErr := svc.SyncSchedule(ctx, profileID, &dto.SyncScheduleRequest{
		Days: []dto.SyncDayRequest{
			syncDay(4, true,
				dto.SyncSlotRequest{StartTime: "09:00", EndTime: "10:00"},
				dto.SyncSlotRequest{StartTime: "09:00", EndTime: "10:00"},
			),
		},
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrValidation, appErr.Code)
	assert.Contains(t, appErr.Message, "duplicate")

	// One new matching one existing.
	_, appErr = svc.SyncSchedule(ctx, profileID, &dto.SyncScheduleRequest{
		Days: []dto.SyncDayRequest{
			syncDay(4, true, dto.SyncSlotRequest{StartTime: "09:00", EndTime: "10:00"}),
		},
	})
	require.Nil(t, appErr)

	_, appErr = svc.SyncSchedule(ctx, profileID, &dto.SyncScheduleRequest{
		Days: []dto.SyncDayRequest{
			syncDay(4, true, dto.SyncSlotRequest{StartTime: "09:00", EndTime: "10:00"}),
		},
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrValidation, appErr.Code)
	assert.Contains(t, appErr.Message, "duplicate")
}

func TestSyncScheduleInvalidRangeRejected(t *testing.T) {
	svc, repo, profileID := newTestService(t)

	_, appErr := svc.SyncSchedule(context.Background(), profileID, &dto.SyncScheduleRequest{
		Days: []dto.SyncDayRequest{
			syncDay(5, true, dto.SyncSlotRequest{StartTime: "14:00", EndTime: "13:00"}),
		},
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrValidation, appErr.Code)
	assert.Contains(t, appErr.Message, "day 5")
	assert.Empty(t, repo.slots)
	assert.Empty(t, repo.days)
}

func TestSyncScheduleMissingDayReference(t *testing.T) {
	svc, repo, profileID := newTestService(t)

	// The slot points at day 2 but only day 1 is submitted.
	_, appErr := svc.SyncSchedule(context.Background(), profileID, &dto.SyncScheduleRequest{
		Days: []dto.SyncDayRequest{
			syncDay(1, true, dto.SyncSlotRequest{
				DayOfWeek: ptr(2),
				StartTime: "09:00",
				EndTime:   "10:00",
			}),
		},
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrValidation, appErr.Code)
	assert.Contains(t, appErr.Message, "day 2")
	assert.Empty(t, repo.days)
}

func TestSyncScheduleRequestValidation(t *testing.T) {
	svc, _, profileID := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *dto.SyncScheduleRequest
	}{
		{
			name: "invalid min booking slot",
			req:  &dto.SyncScheduleRequest{MinBookingSlot: ptr(25)},
		},
		{
			name: "day_of_week missing",
			req: &dto.SyncScheduleRequest{
				Days: []dto.SyncDayRequest{{IsAvailable: ptr(true)}},
			},
		},
		{
			name: "day_of_week out of range",
			req: &dto.SyncScheduleRequest{
				Days: []dto.SyncDayRequest{{DayOfWeek: ptr(7), IsAvailable: ptr(true)}},
			},
		},
		{
			name: "is_available missing",
			req: &dto.SyncScheduleRequest{
				Days: []dto.SyncDayRequest{{DayOfWeek: ptr(1)}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, appErr := svc.SyncSchedule(ctx, profileID, tt.req)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrValidation, appErr.Code)
		})
	}
}

func TestSyncScheduleUnknownSlotID(t *testing.T) {
	svc, _, profileID := newTestService(t)

	bogus := uuid.New()
	_, appErr := svc.SyncSchedule(context.Background(), profileID, &dto.SyncScheduleRequest{
		Days: []dto.SyncDayRequest{
			syncDay(1, true, dto.SyncSlotRequest{ID: &bogus, StartTime: "09:00", EndTime: "10:00"}),
		},
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrValidation, appErr.Code)
	assert.Contains(t, appErr.Message, "unknown slot id")
}

func TestSyncScheduleMovesSlotBetweenDays(t *testing.T) {
	svc, repo, profileID := newTestService(t)
	ctx := context.Background()

	first, appErr := svc.SyncSchedule(ctx, profileID, &dto.SyncScheduleRequest{
		Days: []dto.SyncDayRequest{
			syncDay(1, true, dto.SyncSlotRequest{StartTime: "09:00", EndTime: "12:00"}),
			syncDay(2, true),
		},
	})
	require.Nil(t, appErr)
	slotID := uuid.MustParse(first.Days[0].Slots[0].ID)

	// Move the stored slot to day 2 via the per-slot day override.
	result, appErr := svc.SyncSchedule(ctx, profileID, &dto.SyncScheduleRequest{
		Days: []dto.SyncDayRequest{
			syncDay(1, true),
			syncDay(2, true, dto.SyncSlotRequest{
				ID:        &slotID,
				DayOfWeek: ptr(2),
				StartTime: "09:00",
				EndTime:   "12:00",
			}),
		},
	})
	require.Nil(t, appErr)

	require.Len(t, result.Days, 2)
	assert.Empty(t, result.Days[0].Slots)
	require.Len(t, result.Days[1].Slots, 1)
	assert.Equal(t, slotID.String(), result.Days[1].Slots[0].ID)
	require.Len(t, repo.slots, 1)
}

func TestGetScheduleProfileMissing(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, appErr := svc.GetSchedule(context.Background(), uuid.New())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func mustGetSchedule(t *testing.T, svc AvailabilityServiceInterface, profileID uuid.UUID) *dto.ScheduleResponse {
	t.Helper()
	result, appErr := svc.GetSchedule(context.Background(), profileID)
	require.Nil(t, appErr)
	return result
}
