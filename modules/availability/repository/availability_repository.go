package repository

import (
	"context"
	"database/sql"

	"careconnect-api/core/database"
	"careconnect-api/core/logger"
	"careconnect-api/modules/availability/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// AvailabilityRepositoryInterface is the typed data-access contract for the
// schedule tables. All methods work both on the pool and inside a
// transaction started with WithTransaction.
type AvailabilityRepositoryInterface interface {
	WithTransaction(ctx context.Context, fn func(repo AvailabilityRepositoryInterface) error) error

	GetMinBookingSlot(ctx context.Context, profileID uuid.UUID) (int, error)
	UpdateMinBookingSlot(ctx context.Context, profileID uuid.UUID, minutes int) error

	ListDaysByProfile(ctx context.Context, profileID uuid.UUID) ([]entity.AvailabilityDay, error)
	FindDayByProfileAndDow(ctx context.Context, profileID uuid.UUID, dayOfWeek int) (*entity.AvailabilityDay, error)
	InsertDay(ctx context.Context, day *entity.AvailabilityDay) error
	UpdateDayAvailability(ctx context.Context, dayID uuid.UUID, isAvailable bool) error

	ListSlotsByDay(ctx context.Context, dayID uuid.UUID) ([]entity.AvailabilitySlot, error)
	ListSlotsByProfile(ctx context.Context, profileID uuid.UUID) ([]entity.AvailabilitySlot, error)
	InsertSlot(ctx context.Context, slot *entity.AvailabilitySlot) error
	UpdateSlot(ctx context.Context, slot *entity.AvailabilitySlot) error
	DeleteSlotsByIDs(ctx context.Context, profileID uuid.UUID, ids []uuid.UUID) error
}

type AvailabilityRepository struct {
	db database.IDatabase // nil when already bound to a transaction
	q  sqlx.ExtContext
}

func NewAvailabilityRepository(db database.IDatabase) *AvailabilityRepository {
	return &AvailabilityRepository{db: db, q: db.SQLx()}
}

// WithTransaction runs fn against a transaction-bound copy of the repository.
// Nested calls reuse the surrounding transaction.
func (r *AvailabilityRepository) WithTransaction(ctx context.Context, fn func(repo AvailabilityRepositoryInterface) error) error {
	if r.db == nil {
		return fn(r)
	}
	return database.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		return fn(&AvailabilityRepository{q: tx})
	})
}

// ===================== Profile (min_booking_slot) =====================

func (r *AvailabilityRepository) GetMinBookingSlot(ctx context.Context, profileID uuid.UUID) (int, error) {
	query := `SELECT min_booking_slot FROM psw_profiles WHERE id = $1`

	var minutes int
	err := sqlx.GetContext(ctx, r.q, &minutes, query, profileID)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, sql.ErrNoRows
		}
		logger.Error("AvailabilityRepository:GetMinBookingSlot", err)
		return 0, err
	}
	return minutes, nil
}

func (r *AvailabilityRepository) UpdateMinBookingSlot(ctx context.Context, profileID uuid.UUID, minutes int) error {
	query := `UPDATE psw_profiles SET min_booking_slot = $2, updated_at = NOW() WHERE id = $1`

	if _, err := r.q.ExecContext(ctx, query, profileID, minutes); err != nil {
		logger.Error("AvailabilityRepository:UpdateMinBookingSlot", err)
		return err
	}
	return nil
}

// ===================== Days =====================

func (r *AvailabilityRepository) ListDaysByProfile(ctx context.Context, profileID uuid.UUID) ([]entity.AvailabilityDay, error) {
	query := `
		SELECT id, profile_id, day_of_week, is_available, created_at, updated_at
		FROM availability_days
		WHERE profile_id = $1
		ORDER BY day_of_week
	`

	var days []entity.AvailabilityDay
	if err := sqlx.SelectContext(ctx, r.q, &days, query, profileID); err != nil {
		logger.Error("AvailabilityRepository:ListDaysByProfile", err)
		return nil, err
	}
	return days, nil
}

func (r *AvailabilityRepository) FindDayByProfileAndDow(ctx context.Context, profileID uuid.UUID, dayOfWeek int) (*entity.AvailabilityDay, error) {
	query := `
		SELECT id, profile_id, day_of_week, is_available, created_at, updated_at
		FROM availability_days
		WHERE profile_id = $1 AND day_of_week = $2
	`

	var day entity.AvailabilityDay
	err := sqlx.GetContext(ctx, r.q, &day, query, profileID, dayOfWeek)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AvailabilityRepository:FindDayByProfileAndDow", err)
		return nil, err
	}
	return &day, nil
}

func (r *AvailabilityRepository) InsertDay(ctx context.Context, day *entity.AvailabilityDay) error {
	query := `
		INSERT INTO availability_days (profile_id, day_of_week, is_available)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.q.QueryRowxContext(ctx, query, day.ProfileID, day.DayOfWeek, day.IsAvailable).
		Scan(&day.ID, &day.CreatedAt, &day.UpdatedAt)
	if err != nil {
		logger.Error("AvailabilityRepository:InsertDay", err)
		return err
	}
	return nil
}

func (r *AvailabilityRepository) UpdateDayAvailability(ctx context.Context, dayID uuid.UUID, isAvailable bool) error {
	query := `UPDATE availability_days SET is_available = $2, updated_at = NOW() WHERE id = $1`

	if _, err := r.q.ExecContext(ctx, query, dayID, isAvailable); err != nil {
		logger.Error("AvailabilityRepository:UpdateDayAvailability", err)
		return err
	}
	return nil
}

// ===================== Slots =====================

func (r *AvailabilityRepository) ListSlotsByDay(ctx context.Context, dayID uuid.UUID) ([]entity.AvailabilitySlot, error) {
	query := `
		SELECT id, profile_id, availability_day_id, start_time, end_time,
		       slot_duration_minutes, is_active, created_at, updated_at
		FROM availability_slots
		WHERE availability_day_id = $1
		ORDER BY start_time
	`

	var slots []entity.AvailabilitySlot
	if err := sqlx.SelectContext(ctx, r.q, &slots, query, dayID); err != nil {
		logger.Error("AvailabilityRepository:ListSlotsByDay", err)
		return nil, err
	}
	return slots, nil
}

func (r *AvailabilityRepository) ListSlotsByProfile(ctx context.Context, profileID uuid.UUID) ([]entity.AvailabilitySlot, error) {
	query := `
		SELECT id, profile_id, availability_day_id, start_time, end_time,
		       slot_duration_minutes, is_active, created_at, updated_at
		FROM availability_slots
		WHERE profile_id = $1
		ORDER BY availability_day_id, start_time
	`

	var slots []entity.AvailabilitySlot
	if err := sqlx.SelectContext(ctx, r.q, &slots, query, profileID); err != nil {
		logger.Error("AvailabilityRepository:ListSlotsByProfile", err)
		return nil, err
	}
	return slots, nil
}

func (r *AvailabilityRepository) InsertSlot(ctx context.Context, slot *entity.AvailabilitySlot) error {
	query := `
		INSERT INTO availability_slots (profile_id, availability_day_id, start_time, end_time, slot_duration_minutes, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.q.QueryRowxContext(ctx, query,
		slot.ProfileID, slot.AvailabilityDayID, slot.StartTime, slot.EndTime,
		slot.SlotDurationMinutes, slot.IsActive).
		Scan(&slot.ID, &slot.CreatedAt, &slot.UpdatedAt)
	if err != nil {
		logger.Error("AvailabilityRepository:InsertSlot", err)
		return err
	}
	return nil
}

func (r *AvailabilityRepository) UpdateSlot(ctx context.Context, slot *entity.AvailabilitySlot) error {
	query := `
		UPDATE availability_slots
		SET availability_day_id = $2, start_time = $3, end_time = $4,
		    slot_duration_minutes = $5, is_active = $6, updated_at = NOW()
		WHERE id = $1 AND profile_id = $7
	`

	if _, err := r.q.ExecContext(ctx, query,
		slot.ID, slot.AvailabilityDayID, slot.StartTime, slot.EndTime,
		slot.SlotDurationMinutes, slot.IsActive, slot.ProfileID); err != nil {
		logger.Error("AvailabilityRepository:UpdateSlot", err)
		return err
	}
	return nil
}

func (r *AvailabilityRepository) DeleteSlotsByIDs(ctx context.Context, profileID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`DELETE FROM availability_slots WHERE profile_id = ? AND id IN (?)`, profileID, ids)
	if err != nil {
		return err
	}

	query = r.q.Rebind(query)
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		logger.Error("AvailabilityRepository:DeleteSlotsByIDs", err)
		return err
	}
	return nil
}
