package service

import (
	"context"
	"strings"
	"time"

	"careconnect-api/core/constants"
	"careconnect-api/core/errors"
	"careconnect-api/core/logger"
	profileservice "careconnect-api/modules/profile/service"
	"careconnect-api/modules/verification/dto"
	"careconnect-api/modules/verification/entity"
	"careconnect-api/modules/verification/repository"

	"github.com/google/uuid"
)

var allowedDocumentTypes = map[string]bool{
	"psw_certificate":       true,
	"police_check":          true,
	"first_aid_certificate": true,
	"government_id":         true,
}

type VerificationService struct {
	repo       repository.DocumentRepositoryInterface
	profileSvc profileservice.ProfileServiceInterface
}

type VerificationServiceInterface interface {
	SubmitDocument(ctx context.Context, profileID uuid.UUID, req *dto.SubmitDocumentRequest) (*entity.VerificationDocument, *errors.AppError)
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]entity.VerificationDocument, *errors.AppError)
	ListPending(ctx context.Context) ([]entity.VerificationDocument, *errors.AppError)
	ReviewDocument(ctx context.Context, documentID uuid.UUID, req *dto.ReviewDocumentRequest) (*entity.VerificationDocument, *errors.AppError)
	ExpireStale(ctx context.Context, olderThan time.Duration) (int64, error)
}

func NewVerificationService(repo repository.DocumentRepositoryInterface, profileSvc profileservice.ProfileServiceInterface) VerificationServiceInterface {
	return &VerificationService{repo: repo, profileSvc: profileSvc}
}

func (s *VerificationService) SubmitDocument(ctx context.Context, profileID uuid.UUID, req *dto.SubmitDocumentRequest) (*entity.VerificationDocument, *errors.AppError) {
	docType := strings.TrimSpace(strings.ToLower(req.DocumentType))
	if !allowedDocumentTypes[docType] {
		return nil, errors.NewValidationError("unsupported document_type")
	}
	if strings.TrimSpace(req.ReferenceNumber) == "" {
		return nil, errors.NewValidationError("reference_number is required")
	}

	// A fresh submission supersedes any pending one of the same type.
	existing, err := s.repo.ListByProfile(ctx, profileID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list documents", err)
	}
	for i := range existing {
		if existing[i].DocumentType == docType && existing[i].Status == constants.VerificationStatusPending {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "a pending submission of this type already exists", nil)
		}
	}

	doc := &entity.VerificationDocument{
		ProfileID:       profileID,
		DocumentType:    docType,
		ReferenceNumber: strings.TrimSpace(req.ReferenceNumber),
		Status:          constants.VerificationStatusPending,
		SubmittedAt:     time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to submit document", err)
	}
	return doc, nil
}

func (s *VerificationService) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]entity.VerificationDocument, *errors.AppError) {
	docs, err := s.repo.ListByProfile(ctx, profileID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list documents", err)
	}
	return docs, nil
}

func (s *VerificationService) ListPending(ctx context.Context) ([]entity.VerificationDocument, *errors.AppError) {
	docs, err := s.repo.ListPending(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list pending documents", err)
	}
	return docs, nil
}

// ReviewDocument records the admin decision. Approving a document also marks
// the owning profile verified so it becomes bookable.
func (s *VerificationService) ReviewDocument(ctx context.Context, documentID uuid.UUID, req *dto.ReviewDocumentRequest) (*entity.VerificationDocument, *errors.AppError) {
	doc, err := s.repo.GetByID(ctx, documentID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get document", err)
	}
	if doc == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "document not found", nil)
	}
	if doc.Status != constants.VerificationStatusPending {
		return nil, errors.NewValidationError("document has already been reviewed")
	}

	status := constants.VerificationStatusRejected
	if req.Approve {
		status = constants.VerificationStatusVerified
	}
	reviewedAt := time.Now().UTC()

	if err := s.repo.UpdateStatus(ctx, documentID, status, req.Note, reviewedAt); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update document", err)
	}

	if req.Approve {
		if appErr := s.profileSvc.SetVerificationStatus(ctx, doc.ProfileID, constants.VerificationStatusVerified); appErr != nil {
			return nil, appErr
		}
	}

	doc.Status = status
	doc.ReviewedAt = &reviewedAt
	if req.Note != "" {
		note := req.Note
		doc.ReviewNote = &note
	}
	return doc, nil
}

// ExpireStale is run by the background worker, not a request handler, so it
// returns a plain error.
func (s *VerificationService) ExpireStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan)
	n, err := s.repo.ExpirePendingOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logger.Info("VerificationService:ExpireStale", "expired", n)
	}
	return n, nil
}
