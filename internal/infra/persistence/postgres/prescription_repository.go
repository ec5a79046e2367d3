package postgres

import (
	"context"
	"encoding/json"

	"pharmadz/internal/domain/entity"
	domainerrors "pharmadz/internal/domain/errors"
	"pharmadz/internal/domain/repository"
	"pharmadz/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// prescriptionRepository implements the repository.PrescriptionRepository interface.
type prescriptionRepository struct {
	db *gorm.DB
}

// NewPrescriptionRepository is the constructor for prescriptionRepository.
func NewPrescriptionRepository(db *gorm.DB) repository.PrescriptionRepository {
	return &prescriptionRepository{
		db: db,
	}
}

// Create persists a new prescription.
func (repo *prescriptionRepository) Create(ctx context.Context, prescription *entity.Prescription) error {
	prescriptionM, err := fromPrescriptionDomain(prescription)
	if err != nil {
		return errors.Wrap(err, "failed to encode prescription")
	}

	if err := repo.db.WithContext(ctx).Create(prescriptionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPharmacyNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required prescription information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create prescription")
	}

	// Update the entity with generated values
	prescription.ID = prescriptionM.ID
	prescription.CreatedAt = prescriptionM.CreatedAt

	return nil
}

// FindByID retrieves a prescription by its unique ID.
func (repo *prescriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Prescription, error) {
	var prescriptionM model.PrescriptionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&prescriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPrescriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find prescription by ID")
	}

	return toPrescriptionDomain(&prescriptionM)
}

// FindByUser retrieves all prescriptions submitted by a user, newest first.
func (repo *prescriptionRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Prescription, error) {
	var prescriptionModels []*model.PrescriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&prescriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find prescriptions by user")
	}

	prescriptions := make([]*entity.Prescription, 0, len(prescriptionModels))
	for _, prescriptionM := range prescriptionModels {
		prescription, err := toPrescriptionDomain(prescriptionM)
		if err != nil {
			return nil, err
		}
		prescriptions = append(prescriptions, prescription)
	}

	return prescriptions, nil
}

// --- Mapper Functions ---

// toPrescriptionDomain converts a GORM PrescriptionModel to a domain Prescription entity.
func toPrescriptionDomain(data *model.PrescriptionModel) (*entity.Prescription, error) {
	if data == nil {
		return nil, nil
	}

	var medications []string
	if len(data.Medications) > 0 {
		if err := json.Unmarshal(data.Medications, &medications); err != nil {
			return nil, errors.Wrap(err, "failed to decode prescription medications")
		}
	}

	return &entity.Prescription{
		ID:          data.ID,
		UserID:      data.UserID,
		PharmacyID:  data.PharmacyID,
		Medications: medications,
		ImageURL:    data.ImageURL,
		Status:      entity.PrescriptionStatus(data.Status),
		CreatedAt:   data.CreatedAt,
	}, nil
}

// fromPrescriptionDomain converts a domain Prescription entity to a GORM PrescriptionModel.
func fromPrescriptionDomain(data *entity.Prescription) (*model.PrescriptionModel, error) {
	if data == nil {
		return nil, nil
	}

	medications, err := json.Marshal(data.Medications)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode prescription medications")
	}

	return &model.PrescriptionModel{
		ID:          data.ID,
		UserID:      data.UserID,
		PharmacyID:  data.PharmacyID,
		Medications: medications,
		ImageURL:    data.ImageURL,
		Status:      string(data.Status),
		CreatedAt:   data.CreatedAt,
	}, nil
}
