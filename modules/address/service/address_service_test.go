package service

import (
	"context"
	"testing"

	"careconnect-api/core/errors"
	"careconnect-api/modules/address/dto"
	"careconnect-api/modules/address/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

type fakeAddressRepo struct {
	addresses []entity.Address
}

func (f *fakeAddressRepo) Create(ctx context.Context, address *entity.Address) error {
	address.ID = uuid.New()
	f.addresses = append(f.addresses, *address)
	return nil
}

func (f *fakeAddressRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	for i := range f.addresses {
		if f.addresses[i].ID == id {
			address := f.addresses[i]
			return &address, nil
		}
	}
	return nil, nil
}

func (f *fakeAddressRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Address, error) {
	var out []entity.Address
	for _, address := range f.addresses {
		if address.UserID == userID {
			out = append(out, address)
		}
	}
	return out, nil
}

func (f *fakeAddressRepo) Update(ctx context.Context, address *entity.Address) error {
	for i := range f.addresses {
		if f.addresses[i].ID == address.ID {
			isDefault := f.addresses[i].IsDefault
			f.addresses[i] = *address
			f.addresses[i].IsDefault = isDefault
			return nil
		}
	}
	return nil
}

func (f *fakeAddressRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range f.addresses {
		if f.addresses[i].ID == id {
			f.addresses = append(f.addresses[:i], f.addresses[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeAddressRepo) SetDefault(ctx context.Context, userID, addressID uuid.UUID) error {
	for i := range f.addresses {
		if f.addresses[i].UserID == userID {
			f.addresses[i].IsDefault = f.addresses[i].ID == addressID
		}
	}
	return nil
}

func (f *fakeAddressRepo) defaultFor(userID uuid.UUID) *entity.Address {
	for i := range f.addresses {
		if f.addresses[i].UserID == userID && f.addresses[i].IsDefault {
			return &f.addresses[i]
		}
	}
	return nil
}

func homeRequest() *dto.AddressRequest {
	return &dto.AddressRequest{
		Label:      "Home",
		Line1:      "12 Maple St",
		City:       "Toronto",
		Province:   "ON",
		PostalCode: "M5V 2T6",
	}
}

func TestCreateFirstAddressBecomesDefault(t *testing.T) {
	repo := &fakeAddressRepo{}
	svc := NewAddressService(repo)
	userID := uuid.New()

	created, appErr := svc.Create(context.Background(), userID, homeRequest())
	require.Nil(t, appErr)
	assert.True(t, created.IsDefault)
}

func TestCreateSecondAddressNotDefaultUnlessAsked(t *testing.T) {
	repo := &fakeAddressRepo{}
	svc := NewAddressService(repo)
	userID := uuid.New()
	ctx := context.Background()

	first, appErr := svc.Create(ctx, userID, homeRequest())
	require.Nil(t, appErr)

	work := homeRequest()
	work.Label = "Work"
	second, appErr := svc.Create(ctx, userID, work)
	require.Nil(t, appErr)
	assert.False(t, second.IsDefault)
	assert.Equal(t, first.ID, repo.defaultFor(userID).ID)

	// Asking for default flips the flag away from the first address.
	cottage := homeRequest()
	cottage.Label = "Cottage"
	cottage.IsDefault = ptr(true)
	third, appErr := svc.Create(ctx, userID, cottage)
	require.Nil(t, appErr)
	assert.True(t, third.IsDefault)
	assert.Equal(t, third.ID, repo.defaultFor(userID).ID)

	defaults := 0
	for _, address := range repo.addresses {
		if address.IsDefault {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestCreateAddressValidation(t *testing.T) {
	svc := NewAddressService(&fakeAddressRepo{})
	userID := uuid.New()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*dto.AddressRequest)
	}{
		{name: "label required", mutate: func(r *dto.AddressRequest) { r.Label = " " }},
		{name: "line1 required", mutate: func(r *dto.AddressRequest) { r.Line1 = "" }},
		{name: "city required", mutate: func(r *dto.AddressRequest) { r.City = "" }},
		{name: "province required", mutate: func(r *dto.AddressRequest) { r.Province = "" }},
		{name: "postal code required", mutate: func(r *dto.AddressRequest) { r.PostalCode = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := homeRequest()
			tt.mutate(req)
			_, appErr := svc.Create(ctx, userID, req)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrValidation, appErr.Code)
		})
	}
}

func TestSetDefaultSwitchesFlag(t *testing.T) {
	repo := &fakeAddressRepo{}
	svc := NewAddressService(repo)
	userID := uuid.New()
	ctx := context.Background()

	first, _ := svc.Create(ctx, userID, homeRequest())
	work := homeRequest()
	work.Label = "Work"
	second, _ := svc.Create(ctx, userID, work)

	require.Nil(t, svc.SetDefault(ctx, userID, second.ID))
	assert.Equal(t, second.ID, repo.defaultFor(userID).ID)

	require.Nil(t, svc.SetDefault(ctx, userID, first.ID))
	assert.Equal(t, first.ID, repo.defaultFor(userID).ID)
}

func TestDeleteDefaultPromotesRemaining(t *testing.T) {
	repo := &fakeAddressRepo{}
	svc := NewAddressService(repo)
	userID := uuid.New()
	ctx := context.Background()

	first, _ := svc.Create(ctx, userID, homeRequest())
	work := homeRequest()
	work.Label = "Work"
	second, _ := svc.Create(ctx, userID, work)

	require.Nil(t, svc.Delete(ctx, userID, first.ID))

	require.Len(t, repo.addresses, 1)
	assert.Equal(t, second.ID, repo.addresses[0].ID)
	assert.True(t, repo.addresses[0].IsDefault)
}

func TestAddressOwnershipEnforced(t *testing.T) {
	repo := &fakeAddressRepo{}
	svc := NewAddressService(repo)
	owner := uuid.New()
	intruder := uuid.New()
	ctx := context.Background()

	created, _ := svc.Create(ctx, owner, homeRequest())

	// Foreign addresses look like they do not exist.
	_, appErr := svc.Update(ctx, intruder, created.ID, homeRequest())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)

	appErr = svc.Delete(ctx, intruder, created.ID)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)

	appErr = svc.SetDefault(ctx, intruder, created.ID)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)

	require.Len(t, repo.addresses, 1)
}
