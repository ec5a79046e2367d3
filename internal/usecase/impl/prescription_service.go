package impl

import (
	"context"
	"time"

	"pharmadz/internal/domain/entity"
	domainerrors "pharmadz/internal/domain/errors"
	"pharmadz/internal/domain/repository"
	"pharmadz/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type prescriptionService struct {
	prescriptionRepo repository.PrescriptionRepository
	pharmacyRepo     repository.PharmacyRepository
}

// NewPrescriptionService creates a new prescription service instance
func NewPrescriptionService(prescriptionRepo repository.PrescriptionRepository, pharmacyRepo repository.PharmacyRepository) usecase.PrescriptionUsecase {
	return &prescriptionService{
		prescriptionRepo: prescriptionRepo,
		pharmacyRepo:     pharmacyRepo,
	}
}

// SubmitPrescription records a new prescription for a pharmacy.
func (s *prescriptionService) SubmitPrescription(ctx context.Context, input usecase.SubmitPrescriptionInput) (*entity.Prescription, error) {
	if _, err := s.pharmacyRepo.FindByID(ctx, input.PharmacyID); err != nil {
		if errors.Is(err, repository.ErrPharmacyNotFound) {
			return nil, domainerrors.ErrPharmacyNotFound.WrapMessage("prescription target lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find pharmacy")
	}

	prescription := &entity.Prescription{
		ID:          uuid.New(),
		UserID:      input.UserID,
		PharmacyID:  input.PharmacyID,
		Medications: input.Medications,
		ImageURL:    input.ImageURL,
		Status:      entity.PrescriptionPending,
		CreatedAt:   time.Now(),
	}

	if err := s.prescriptionRepo.Create(ctx, prescription); err != nil {
		return nil, errors.Wrap(err, "failed to create prescription")
	}

	return prescription, nil
}

// ListUserPrescriptions returns the prescriptions submitted by a user, newest first.
func (s *prescriptionService) ListUserPrescriptions(ctx context.Context, userID string) ([]*entity.Prescription, error) {
	prescriptions, err := s.prescriptionRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find prescriptions")
	}

	return prescriptions, nil
}
