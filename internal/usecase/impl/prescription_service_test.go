package impl

import (
	"context"
	"testing"

	"pharmadz/internal/domain/entity"
	domainerrors "pharmadz/internal/domain/errors"
	"pharmadz/internal/domain/repository"
	mockRepo "pharmadz/internal/mocks/repository"
	"pharmadz/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPrescriptionService_SubmitPrescription(t *testing.T) {
	prescriptionRepo := mockRepo.NewMockPrescriptionRepository(t)
	pharmacyRepo := mockRepo.NewMockPharmacyRepository(t)
	service := NewPrescriptionService(prescriptionRepo, pharmacyRepo)

	ctx := context.Background()
	pharmacy := newTestPharmacy()

	pharmacyRepo.EXPECT().
		FindByID(ctx, pharmacy.ID).
		Return(pharmacy, nil)

	prescriptionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Prescription")).
		Return(nil)

	prescription, err := service.SubmitPrescription(ctx, usecase.SubmitPrescriptionInput{
		UserID:      "user-42",
		PharmacyID:  pharmacy.ID,
		Medications: []string{"Paracétamol 500mg", "Ibuprofène 400mg"},
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, prescription.ID)
	assert.Equal(t, entity.PrescriptionPending, prescription.Status)
	assert.Equal(t, "user-42", prescription.UserID)
	assert.Len(t, prescription.Medications, 2)
}

func TestPrescriptionService_SubmitPrescription_UnknownPharmacy(t *testing.T) {
	prescriptionRepo := mockRepo.NewMockPrescriptionRepository(t)
	pharmacyRepo := mockRepo.NewMockPharmacyRepository(t)
	service := NewPrescriptionService(prescriptionRepo, pharmacyRepo)

	ctx := context.Background()
	id := uuid.New()

	pharmacyRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrPharmacyNotFound)

	prescription, err := service.SubmitPrescription(ctx, usecase.SubmitPrescriptionInput{
		UserID:     "user-42",
		PharmacyID: id,
	})
	require.Error(t, err)
	assert.Nil(t, prescription)
	assert.ErrorIs(t, err, domainerrors.ErrPharmacyNotFound)
}

func TestPrescriptionService_ListUserPrescriptions(t *testing.T) {
	prescriptionRepo := mockRepo.NewMockPrescriptionRepository(t)
	pharmacyRepo := mockRepo.NewMockPharmacyRepository(t)
	service := NewPrescriptionService(prescriptionRepo, pharmacyRepo)

	ctx := context.Background()
	expected := []*entity.Prescription{
		{ID: uuid.New(), UserID: "user-42", Status: entity.PrescriptionPending},
	}

	prescriptionRepo.EXPECT().
		FindByUser(ctx, "user-42").
		Return(expected, nil)

	prescriptions, err := service.ListUserPrescriptions(ctx, "user-42")
	require.NoError(t, err)
	assert.Equal(t, expected, prescriptions)
}
