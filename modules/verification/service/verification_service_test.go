package service

import (
	"context"
	"testing"
	"time"

	"careconnect-api/core/constants"
	"careconnect-api/core/errors"
	profiledto "careconnect-api/modules/profile/dto"
	profileentity "careconnect-api/modules/profile/entity"
	"careconnect-api/modules/verification/dto"
	"careconnect-api/modules/verification/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDocumentRepo struct {
	docs []entity.VerificationDocument
}

func (f *fakeDocumentRepo) Create(ctx context.Context, doc *entity.VerificationDocument) error {
	doc.ID = uuid.New()
	f.docs = append(f.docs, *doc)
	return nil
}

func (f *fakeDocumentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.VerificationDocument, error) {
	for i := range f.docs {
		if f.docs[i].ID == id {
			doc := f.docs[i]
			return &doc, nil
		}
	}
	return nil, nil
}

func (f *fakeDocumentRepo) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]entity.VerificationDocument, error) {
	var out []entity.VerificationDocument
	for _, doc := range f.docs {
		if doc.ProfileID == profileID {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (f *fakeDocumentRepo) ListPending(ctx context.Context) ([]entity.VerificationDocument, error) {
	var out []entity.VerificationDocument
	for _, doc := range f.docs {
		if doc.Status == constants.VerificationStatusPending {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (f *fakeDocumentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status, note string, reviewedAt time.Time) error {
	for i := range f.docs {
		if f.docs[i].ID == id {
			f.docs[i].Status = status
			f.docs[i].ReviewedAt = &reviewedAt
			if note != "" {
				f.docs[i].ReviewNote = &note
			}
			return nil
		}
	}
	return nil
}

func (f *fakeDocumentRepo) ExpirePendingOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	var n int64
	for i := range f.docs {
		if f.docs[i].Status == constants.VerificationStatusPending && f.docs[i].SubmittedAt.Before(cutoff) {
			f.docs[i].Status = constants.VerificationStatusExpired
			n++
		}
	}
	return n, nil
}

type fakeProfileService struct {
	statuses map[uuid.UUID]string
}

func (f *fakeProfileService) GetByUserID(ctx context.Context, userID uuid.UUID) (*profileentity.PswProfile, *errors.AppError) {
	return nil, errors.NewAppError(errors.ErrNotFound, "profile not found", nil)
}

func (f *fakeProfileService) GetOrCreateByUserID(ctx context.Context, userID uuid.UUID) (*profileentity.PswProfile, *errors.AppError) {
	return nil, errors.NewAppError(errors.ErrNotFound, "profile not found", nil)
}

func (f *fakeProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *profiledto.UpdateProfileRequest) (*profileentity.PswProfile, *errors.AppError) {
	return nil, errors.NewAppError(errors.ErrNotFound, "profile not found", nil)
}

func (f *fakeProfileService) SetVerificationStatus(ctx context.Context, profileID uuid.UUID, status string) *errors.AppError {
	if f.statuses == nil {
		f.statuses = make(map[uuid.UUID]string)
	}
	f.statuses[profileID] = status
	return nil
}

func TestSubmitDocument(t *testing.T) {
	repo := &fakeDocumentRepo{}
	svc := NewVerificationService(repo, &fakeProfileService{})
	profileID := uuid.New()

	doc, appErr := svc.SubmitDocument(context.Background(), profileID, &dto.SubmitDocumentRequest{
		DocumentType:    "Police_Check",
		ReferenceNumber: " PC-12345 ",
	})
	require.Nil(t, appErr)

	assert.Equal(t, "police_check", doc.DocumentType)
	assert.Equal(t, "PC-12345", doc.ReferenceNumber)
	assert.Equal(t, constants.VerificationStatusPending, doc.Status)
}

func TestSubmitDocumentValidation(t *testing.T) {
	svc := NewVerificationService(&fakeDocumentRepo{}, &fakeProfileService{})
	profileID := uuid.New()
	ctx := context.Background()

	_, appErr := svc.SubmitDocument(ctx, profileID, &dto.SubmitDocumentRequest{
		DocumentType:    "diploma",
		ReferenceNumber: "X-1",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrValidation, appErr.Code)

	_, appErr = svc.SubmitDocument(ctx, profileID, &dto.SubmitDocumentRequest{
		DocumentType:    "police_check",
		ReferenceNumber: "   ",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrValidation, appErr.Code)
}

func TestSubmitDocumentDuplicatePending(t *testing.T) {
	svc := NewVerificationService(&fakeDocumentRepo{}, &fakeProfileService{})
	profileID := uuid.New()
	ctx := context.Background()

	_, appErr := svc.SubmitDocument(ctx, profileID, &dto.SubmitDocumentRequest{
		DocumentType:    "police_check",
		ReferenceNumber: "PC-1",
	})
	require.Nil(t, appErr)

	_, appErr = svc.SubmitDocument(ctx, profileID, &dto.SubmitDocumentRequest{
		DocumentType:    "police_check",
		ReferenceNumber: "PC-2",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrAlreadyExists, appErr.Code)
}

func TestReviewDocumentApprove(t *testing.T) {
	repo := &fakeDocumentRepo{}
	profiles := &fakeProfileService{}
	svc := NewVerificationService(repo, profiles)
	profileID := uuid.New()
	ctx := context.Background()

	doc, appErr := svc.SubmitDocument(ctx, profileID, &dto.SubmitDocumentRequest{
		DocumentType:    "psw_certificate",
		ReferenceNumber: "CERT-9",
	})
	require.Nil(t, appErr)

	reviewed, appErr := svc.ReviewDocument(ctx, doc.ID, &dto.ReviewDocumentRequest{Approve: true, Note: "checks out"})
	require.Nil(t, appErr)
	assert.Equal(t, constants.VerificationStatusVerified, reviewed.Status)
	require.NotNil(t, reviewed.ReviewedAt)
	assert.Equal(t, constants.VerificationStatusVerified, profiles.statuses[profileID])

	// Second review of the same document is rejected.
	_, appErr = svc.ReviewDocument(ctx, doc.ID, &dto.ReviewDocumentRequest{Approve: false})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrValidation, appErr.Code)
}

func TestReviewDocumentReject(t *testing.T) {
	repo := &fakeDocumentRepo{}
	profiles := &fakeProfileService{}
	svc := NewVerificationService(repo, profiles)
	profileID := uuid.New()
	ctx := context.Background()

	doc, appErr := svc.SubmitDocument(ctx, profileID, &dto.SubmitDocumentRequest{
		DocumentType:    "government_id",
		ReferenceNumber: "ID-4",
	})
	require.Nil(t, appErr)

	reviewed, appErr := svc.ReviewDocument(ctx, doc.ID, &dto.ReviewDocumentRequest{Approve: false, Note: "blurry scan"})
	require.Nil(t, appErr)
	assert.Equal(t, constants.VerificationStatusRejected, reviewed.Status)
	require.NotNil(t, reviewed.ReviewNote)
	assert.Equal(t, "blurry scan", *reviewed.ReviewNote)

	// Rejection never touches the profile status.
	assert.Empty(t, profiles.statuses)
}

func TestReviewDocumentNotFound(t *testing.T) {
	svc := NewVerificationService(&fakeDocumentRepo{}, &fakeProfileService{})

	_, appErr := svc.ReviewDocument(context.Background(), uuid.New(), &dto.ReviewDocumentRequest{Approve: true})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestExpireStale(t *testing.T) {
	repo := &fakeDocumentRepo{
		docs: []entity.VerificationDocument{
			{
				DocumentType: "police_check",
				Status:       constants.VerificationStatusPending,
				SubmittedAt:  time.Now().UTC().Add(-40 * 24 * time.Hour),
			},
			{
				DocumentType: "psw_certificate",
				Status:       constants.VerificationStatusPending,
				SubmittedAt:  time.Now().UTC().Add(-time.Hour),
			},
		},
	}
	svc := NewVerificationService(repo, &fakeProfileService{})

	n, err := svc.ExpireStale(context.Background(), 30*24*time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	assert.Equal(t, constants.VerificationStatusExpired, repo.docs[0].Status)
	assert.Equal(t, constants.VerificationStatusPending, repo.docs[1].Status)
}
