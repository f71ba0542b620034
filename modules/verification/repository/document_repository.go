package repository

import (
	"context"
	"database/sql"
	"time"

	"careconnect-api/core/constants"
	"careconnect-api/core/database"
	"careconnect-api/core/logger"
	"careconnect-api/modules/verification/entity"

	"github.com/google/uuid"
)

type DocumentRepository struct {
	db database.IDatabase
}

type DocumentRepositoryInterface interface {
	Create(ctx context.Context, doc *entity.VerificationDocument) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.VerificationDocument, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]entity.VerificationDocument, error)
	ListPending(ctx context.Context) ([]entity.VerificationDocument, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status, note string, reviewedAt time.Time) error
	ExpirePendingOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

func NewDocumentRepository(db database.IDatabase) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(ctx context.Context, doc *entity.VerificationDocument) error {
	query := `
		INSERT INTO verification_documents (profile_id, document_type, reference_number, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		doc.ProfileID, doc.DocumentType, doc.ReferenceNumber, doc.Status, doc.SubmittedAt).
		Scan(&doc.ID, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		logger.Error("DocumentRepository:Create", err)
		return err
	}
	return nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.VerificationDocument, error) {
	query := `
		SELECT id, profile_id, document_type, reference_number, status, submitted_at, reviewed_at, review_note, created_at, updated_at
		FROM verification_documents WHERE id = $1
	`

	var doc entity.VerificationDocument
	err := r.db.GetContext(ctx, &doc, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("DocumentRepository:GetByID", err)
		return nil, err
	}
	return &doc, nil
}

func (r *DocumentRepository) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]entity.VerificationDocument, error) {
	query := `
		SELECT id, profile_id, document_type, reference_number, status, submitted_at, reviewed_at, review_note, created_at, updated_at
		FROM verification_documents
		WHERE profile_id = $1
		ORDER BY submitted_at DESC
	`

	var docs []entity.VerificationDocument
	if err := r.db.SelectContext(ctx, &docs, query, profileID); err != nil {
		logger.Error("DocumentRepository:ListByProfile", err)
		return nil, err
	}
	return docs, nil
}

func (r *DocumentRepository) ListPending(ctx context.Context) ([]entity.VerificationDocument, error) {
	query := `
		SELECT id, profile_id, document_type, reference_number, status, submitted_at, reviewed_at, review_note, created_at, updated_at
		FROM verification_documents
		WHERE status = $1
		ORDER BY submitted_at
	`

	var docs []entity.VerificationDocument
	if err := r.db.SelectContext(ctx, &docs, query, constants.VerificationStatusPending); err != nil {
		logger.Error("DocumentRepository:ListPending", err)
		return nil, err
	}
	return docs, nil
}

func (r *DocumentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status, note string, reviewedAt time.Time) error {
	query := `
		UPDATE verification_documents
		SET status = $2, review_note = $3, reviewed_at = $4, updated_at = NOW()
		WHERE id = $1
	`

	if err := r.db.ExecContext(ctx, query, id, status, note, reviewedAt); err != nil {
		logger.Error("DocumentRepository:UpdateStatus", err)
		return err
	}
	return nil
}

// ExpirePendingOlderThan flips stale pending submissions to expired and
// returns how many rows changed.
func (r *DocumentRepository) ExpirePendingOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.NamedExecContext(ctx, `
		UPDATE verification_documents
		SET status = :expired, updated_at = NOW()
		WHERE status = :pending AND submitted_at < :cutoff
	`, map[string]any{
		"expired": constants.VerificationStatusExpired,
		"pending": constants.VerificationStatusPending,
		"cutoff":  cutoff,
	})
	if err != nil {
		logger.Error("DocumentRepository:ExpirePendingOlderThan", err)
		return 0, err
	}
	return result.RowsAffected()
}
