package service

import (
	"context"
	"database/sql"
	"fmt"

	"careconnect-api/core/constants"
	"careconnect-api/core/errors"
	"careconnect-api/core/logger"
	"careconnect-api/modules/availability/dto"
	"careconnect-api/modules/availability/entity"
	"careconnect-api/modules/availability/repository"

	"github.com/google/uuid"
)

// AvailabilityService reconciles a worker's weekly schedule against a
// submitted desired state. The submitted slot set is authoritative: stored
// slots the caller omits are deleted.
type AvailabilityService struct {
	repo repository.AvailabilityRepositoryInterface
}

type AvailabilityServiceInterface interface {
	GetSchedule(ctx context.Context, profileID uuid.UUID) (*dto.ScheduleResponse, *errors.AppError)
	SyncSchedule(ctx context.Context, profileID uuid.UUID, req *dto.SyncScheduleRequest) (*dto.ScheduleResponse, *errors.AppError)
}

func NewAvailabilityService(repo repository.AvailabilityRepositoryInterface) AvailabilityServiceInterface {
	return &AvailabilityService{repo: repo}
}

// GetSchedule returns the full stored schedule: days ordered by day_of_week,
// slots ordered by start_time, with 12-hour display strings. Read-only; the
// profile must already exist.
func (s *AvailabilityService) GetSchedule(ctx context.Context, profileID uuid.UUID) (*dto.ScheduleResponse, *errors.AppError) {
	minSlot, err := s.repo.GetMinBookingSlot(ctx, profileID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewAppError(errors.ErrNotFound, "profile not found", nil)
		}
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load profile", err)
	}

	days, err := s.repo.ListDaysByProfile(ctx, profileID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load schedule", err)
	}

	resp := &dto.ScheduleResponse{
		MinBookingSlot: minSlot,
		Days:           make([]dto.DayResponse, 0, len(days)),
	}

	for _, day := range days {
		slots, err := s.repo.ListSlotsByDay(ctx, day.ID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load schedule", err)
		}

		dayResp := dto.DayResponse{
			DayOfWeek:   day.DayOfWeek,
			IsAvailable: day.IsAvailable,
			Slots:       make([]dto.SlotResponse, 0, len(slots)),
		}
		for _, slot := range slots {
			dayResp.Slots = append(dayResp.Slots, dto.SlotResponse{
				ID:                  slot.ID.String(),
				StartTime:           slot.StartTime,
				EndTime:             slot.EndTime,
				SlotDurationMinutes: slot.SlotDurationMinutes,
				IsActive:            slot.IsActive,
				StartTimeFormatted:  entity.FormatTime12Hour(slot.StartTime),
				EndTimeFormatted:    entity.FormatTime12Hour(slot.EndTime),
			})
		}
		resp.Days = append(resp.Days, dayResp)
	}

	return resp, nil
}

// SyncSchedule atomically reconciles stored state to the request. Any
// validation failure aborts the whole transaction; no partial writes are
// visible. On success the resulting schedule is re-read via the read path.
func (s *AvailabilityService) SyncSchedule(ctx context.Context, profileID uuid.UUID, req *dto.SyncScheduleRequest) (*dto.ScheduleResponse, *errors.AppError) {
	if appErr := validateSyncRequest(req); appErr != nil {
		return nil, appErr
	}

	err := s.repo.WithTransaction(ctx, func(repo repository.AvailabilityRepositoryInterface) error {
		return syncWithinTx(ctx, repo, profileID, req)
	})
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return nil, appErr
		}
		logger.Error("AvailabilityService:SyncSchedule", err, "profile_id", profileID)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to sync schedule", err)
	}

	return s.GetSchedule(ctx, profileID)
}

func validateSyncRequest(req *dto.SyncScheduleRequest) *errors.AppError {
	if req.MinBookingSlot != nil && !isValidMinBookingSlot(*req.MinBookingSlot) {
		return errors.NewValidationError(
			fmt.Sprintf("min_booking_slot must be one of %v", constants.MinBookingSlotOptions))
	}

	for i, day := range req.Days {
		if day.DayOfWeek == nil {
			return errors.NewValidationError(fmt.Sprintf("days[%d].day_of_week is required", i))
		}
		if *day.DayOfWeek < 0 || *day.DayOfWeek > 6 {
			return errors.NewValidationError(
				fmt.Sprintf("days[%d].day_of_week must be between 0 and 6", i))
		}
		if day.IsAvailable == nil {
			return errors.NewValidationError(fmt.Sprintf("days[%d].is_available is required", i))
		}
	}
	return nil
}

func isValidMinBookingSlot(minutes int) bool {
	for _, opt := range constants.MinBookingSlotOptions {
		if minutes == opt {
			return true
		}
	}
	return false
}

func syncWithinTx(ctx context.Context, repo repository.AvailabilityRepositoryInterface, profileID uuid.UUID, req *dto.SyncScheduleRequest) error {
	if req.MinBookingSlot != nil {
		if err := repo.UpdateMinBookingSlot(ctx, profileID, *req.MinBookingSlot); err != nil {
			return err
		}
	}

	// Upsert day rows keyed by (profile_id, day_of_week). Days are never
	// deleted; only the availability flag and the child slots change.
	dayIDs := make(map[int]uuid.UUID, len(req.Days))
	for _, day := range req.Days {
		dow := *day.DayOfWeek
		stored, err := repo.FindDayByProfileAndDow(ctx, profileID, dow)
		if err != nil {
			return err
		}
		if stored == nil {
			created := &entity.AvailabilityDay{
				ProfileID:   profileID,
				DayOfWeek:   dow,
				IsAvailable: *day.IsAvailable,
			}
			if err := repo.InsertDay(ctx, created); err != nil {
				return err
			}
			dayIDs[dow] = created.ID
		} else {
			if err := repo.UpdateDayAvailability(ctx, stored.ID, *day.IsAvailable); err != nil {
				return err
			}
			dayIDs[dow] = stored.ID
		}
	}

	// The working set starts as everything persisted for the profile and is
	// kept current while the batch is applied, so each submitted slot is
	// validated against both stored slots and slots accepted earlier in the
	// same call.
	persisted, err := repo.ListSlotsByProfile(ctx, profileID)
	if err != nil {
		return err
	}

	existingIDs := make(map[uuid.UUID]bool, len(persisted))
	working := make(map[uuid.UUID][]*entity.AvailabilitySlot)
	byID := make(map[uuid.UUID]*entity.AvailabilitySlot, len(persisted))
	for i := range persisted {
		slot := &persisted[i]
		existingIDs[slot.ID] = true
		working[slot.AvailabilityDayID] = append(working[slot.AvailabilityDayID], slot)
		byID[slot.ID] = slot
	}

	incoming := make(map[uuid.UUID]bool)
	for _, day := range req.Days {
		for _, slotReq := range day.Slots {
			dow := *day.DayOfWeek
			if slotReq.DayOfWeek != nil {
				dow = *slotReq.DayOfWeek
			}
			dayID, ok := dayIDs[dow]
			if !ok {
				// Slots never create day rows on their own.
				return errors.NewValidationError(
					fmt.Sprintf("day %d is referenced by a slot but missing from days", dow))
			}

			candidate, appErr := buildCandidate(profileID, dayID, dow, &slotReq)
			if appErr != nil {
				return appErr
			}

			if appErr := checkConflicts(candidate, working[dayID], slotReq.ID, dow); appErr != nil {
				return appErr
			}

			if slotReq.ID != nil {
				stored, ok := byID[*slotReq.ID]
				if !ok {
					return errors.NewValidationError(
						fmt.Sprintf("unknown slot id %s for day %d", slotReq.ID, dow))
				}
				candidate.ID = *slotReq.ID
				candidate.CreatedAt = stored.CreatedAt
				if err := repo.UpdateSlot(ctx, candidate); err != nil {
					return err
				}
				working[stored.AvailabilityDayID] = removeSlot(working[stored.AvailabilityDayID], stored.ID)
			} else {
				if err := repo.InsertSlot(ctx, candidate); err != nil {
					return err
				}
			}

			working[dayID] = append(working[dayID], candidate)
			byID[candidate.ID] = candidate
			incoming[candidate.ID] = true
		}
	}

	// Full-replace semantics: whatever was stored but not resubmitted goes.
	var toDelete []uuid.UUID
	for id := range existingIDs {
		if !incoming[id] {
			toDelete = append(toDelete, id)
		}
	}
	return repo.DeleteSlotsByIDs(ctx, profileID, toDelete)
}

func buildCandidate(profileID, dayID uuid.UUID, dow int, slotReq *dto.SyncSlotRequest) (*entity.AvailabilitySlot, *errors.AppError) {
	start, err := entity.ParseTimeOfDay(slotReq.StartTime)
	if err != nil {
		return nil, errors.NewValidationError(
			fmt.Sprintf("invalid start_time %q for day %d", slotReq.StartTime, dow))
	}
	end, err := entity.ParseTimeOfDay(slotReq.EndTime)
	if err != nil {
		return nil, errors.NewValidationError(
			fmt.Sprintf("invalid end_time %q for day %d", slotReq.EndTime, dow))
	}
	if end <= start {
		return nil, errors.NewValidationError(
			fmt.Sprintf("end_time must be after start_time for day %d", dow))
	}

	candidate := &entity.AvailabilitySlot{
		ProfileID:           profileID,
		AvailabilityDayID:   dayID,
		StartTime:           start.String(),
		EndTime:             end.String(),
		SlotDurationMinutes: constants.DefaultSlotDurationMins,
		IsActive:            true,
	}
	if slotReq.SlotDurationMinutes != nil {
		candidate.SlotDurationMinutes = *slotReq.SlotDurationMinutes
	}
	if slotReq.IsActive != nil {
		candidate.IsActive = *slotReq.IsActive
	}
	return candidate, nil
}

// checkConflicts rejects exact duplicates and interval overlaps within the
// day's working set, skipping the slot's own stored row when updating.
func checkConflicts(candidate *entity.AvailabilitySlot, daySlots []*entity.AvailabilitySlot, ownID *uuid.UUID, dow int) *errors.AppError {
	for _, other := range daySlots {
		if ownID != nil && other.ID == *ownID {
			continue
		}
		if candidate.SameWindow(other) {
			return errors.NewValidationError(
				fmt.Sprintf("duplicate slot %s-%s for day %d", candidate.StartTime, candidate.EndTime, dow))
		}
	}
	for _, other := range daySlots {
		if ownID != nil && other.ID == *ownID {
			continue
		}
		if candidate.Overlaps(other) {
			return errors.NewValidationError(
				fmt.Sprintf("slot %s-%s overlaps %s-%s for day %d",
					candidate.StartTime, candidate.EndTime, other.StartTime, other.EndTime, dow))
		}
	}
	return nil
}

func removeSlot(slots []*entity.AvailabilitySlot, id uuid.UUID) []*entity.AvailabilitySlot {
	for i, slot := range slots {
		if slot.ID == id {
			return append(slots[:i], slots[i+1:]...)
		}
	}
	return slots
}
