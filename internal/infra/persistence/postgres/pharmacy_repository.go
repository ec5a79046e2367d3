package postgres

import (
	"context"

	"pharmadz/internal/domain/entity"
	domainerrors "pharmadz/internal/domain/errors"
	"pharmadz/internal/domain/repository"
	"pharmadz/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pharmacyRepository implements the repository.PharmacyRepository interface.
type pharmacyRepository struct {
	db *gorm.DB
}

// NewPharmacyRepository is the constructor for pharmacyRepository.
func NewPharmacyRepository(db *gorm.DB) repository.PharmacyRepository {
	return &pharmacyRepository{
		db: db,
	}
}

// stockPreload keeps stock lines in their stored display order.
func stockPreload(db *gorm.DB) *gorm.DB {
	return db.Order("stock_lines.position ASC")
}

// Find retrieves pharmacies matching the filter, stock lines preloaded in
// stored order. Location constraints are exact equality; a quartier
// constraint never matches rows with a NULL quartier.
func (repo *pharmacyRepository) Find(ctx context.Context, filter repository.PharmacyFilter) ([]*entity.Pharmacy, error) {
	query := repo.db.WithContext(ctx).Preload("Stock", stockPreload)

	if filter.Location.Wilaya != "" {
		query = query.Where("wilaya = ?", filter.Location.Wilaya)
	}
	if filter.Location.Commune != "" {
		query = query.Where("commune = ?", filter.Location.Commune)
	}
	if filter.Location.Quartier != "" {
		query = query.Where("quartier = ?", filter.Location.Quartier)
	}
	if filter.SubscribedOnly {
		query = query.Where("subscription_active = ?", true)
	}

	var pharmacyModels []*model.PharmacyModel
	if err := query.Order("created_at ASC").Find(&pharmacyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pharmacies")
	}

	pharmacies := make([]*entity.Pharmacy, 0, len(pharmacyModels))
	for _, pharmacyM := range pharmacyModels {
		pharmacies = append(pharmacies, toPharmacyDomain(pharmacyM))
	}

	return pharmacies, nil
}

// FindByID retrieves a pharmacy by its unique ID, stock lines included.
func (repo *pharmacyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Pharmacy, error) {
	var pharmacyM model.PharmacyModel

	if err := repo.db.WithContext(ctx).
		Preload("Stock", stockPreload).
		Where("id = ?", id).
		First(&pharmacyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPharmacyNotFound
		}

		return nil, errors.Wrap(err, "failed to find pharmacy by ID")
	}

	return toPharmacyDomain(&pharmacyM), nil
}

// Create persists a new pharmacy together with its stock lines.
func (repo *pharmacyRepository) Create(ctx context.Context, pharmacy *entity.Pharmacy) error {
	pharmacyM := fromPharmacyDomain(pharmacy)

	if err := repo.db.WithContext(ctx).Create(pharmacyM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrPharmacyCreationFailed.WrapMessage("missing required pharmacy information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pharmacy")
	}

	// Update the entity with generated values
	pharmacy.ID = pharmacyM.ID
	pharmacy.CreatedAt = pharmacyM.CreatedAt
	pharmacy.UpdatedAt = pharmacyM.UpdatedAt

	return nil
}

// Update modifies the pharmacy row. Stock lines are managed separately via
// ReplaceStock and deliberately untouched here.
func (repo *pharmacyRepository) Update(ctx context.Context, pharmacy *entity.Pharmacy) error {
	pharmacyM := fromPharmacyDomain(pharmacy)

	result := repo.db.WithContext(ctx).
		Model(&model.PharmacyModel{}).
		Where("id = ?", pharmacy.ID).
		Select("name", "phone", "email", "latitude", "longitude", "address",
			"wilaya", "commune", "quartier", "is_guard", "subscription_active", "updated_at").
		Updates(pharmacyM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update pharmacy")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPharmacyNotFound
	}

	return nil
}

// ReplaceStock swaps the whole stock list of a pharmacy atomically: delete
// the old lines, insert the new ones with their positions, touch updated_at.
func (repo *pharmacyRepository) ReplaceStock(ctx context.Context, id uuid.UUID, stock []entity.StockLine) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.PharmacyModel{}).
			Where("id = ?", id).
			Update("updated_at", gorm.Expr("NOW()"))
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to touch pharmacy")
		}
		if result.RowsAffected == 0 {
			return repository.ErrPharmacyNotFound
		}

		if err := tx.Where("pharmacy_id = ?", id).
			Delete(&model.StockLineModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear stock lines")
		}

		if len(stock) == 0 {
			return nil
		}

		lines := fromStockDomain(id, stock)
		if err := tx.Create(&lines).Error; err != nil {
			return errors.Wrap(err, "failed to insert stock lines")
		}

		return nil
	})
}

// Count returns the number of stored pharmacies.
func (repo *pharmacyRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PharmacyModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count pharmacies")
	}

	return count, nil
}

// --- Mapper Functions ---

// toPharmacyDomain converts a GORM PharmacyModel to a domain Pharmacy entity.
func toPharmacyDomain(data *model.PharmacyModel) *entity.Pharmacy {
	if data == nil {
		return nil
	}

	stock := make([]entity.StockLine, 0, len(data.Stock))
	for _, lineM := range data.Stock {
		stock = append(stock, entity.StockLine{
			MedicationName: lineM.MedicationName,
			Quantity:       lineM.Quantity,
			Price:          lineM.Price,
			Available:      lineM.Available,
		})
	}

	return &entity.Pharmacy{
		ID:    data.ID,
		Name:  data.Name,
		Phone: data.Phone,
		Email: data.Email,
		Location: entity.Location{
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
			Address:   data.Address,
			Wilaya:    data.Wilaya,
			Commune:   data.Commune,
			Quartier:  data.Quartier,
		},
		IsGuard:            data.IsGuard,
		Stock:              stock,
		SubscriptionActive: data.SubscriptionActive,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromPharmacyDomain converts a domain Pharmacy entity to a GORM PharmacyModel.
func fromPharmacyDomain(data *entity.Pharmacy) *model.PharmacyModel {
	if data == nil {
		return nil
	}

	return &model.PharmacyModel{
		ID:                 data.ID,
		Name:               data.Name,
		Phone:              data.Phone,
		Email:              data.Email,
		Latitude:           data.Location.Latitude,
		Longitude:          data.Location.Longitude,
		Address:            data.Location.Address,
		Wilaya:             data.Location.Wilaya,
		Commune:            data.Location.Commune,
		Quartier:           data.Location.Quartier,
		IsGuard:            data.IsGuard,
		SubscriptionActive: data.SubscriptionActive,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
		Stock:              fromStockDomain(data.ID, data.Stock),
	}
}

// fromStockDomain converts stock lines to GORM models, positions assigned
// from slice order.
func fromStockDomain(pharmacyID uuid.UUID, stock []entity.StockLine) []model.StockLineModel {
	lines := make([]model.StockLineModel, 0, len(stock))
	for position, line := range stock {
		lines = append(lines, model.StockLineModel{
			PharmacyID:     pharmacyID,
			Position:       position,
			MedicationName: line.MedicationName,
			Quantity:       line.Quantity,
			Price:          line.Price,
			Available:      line.Available,
		})
	}

	return lines
}
