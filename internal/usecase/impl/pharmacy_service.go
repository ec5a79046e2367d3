// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "pharmadz/internal/delivery/context"
	"pharmadz/internal/domain/entity"
	domainerrors "pharmadz/internal/domain/errors"
	"pharmadz/internal/domain/repository"
	"pharmadz/internal/domain/service"
	"pharmadz/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// pharmacyService implements the PharmacyUsecase interface.
type pharmacyService struct {
	pharmacyRepo   repository.PharmacyRepository
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// PharmacyServiceParams holds dependencies for PharmacyService, injected by Fx.
type PharmacyServiceParams struct {
	fx.In

	PharmacyRepo   repository.PharmacyRepository
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewPharmacyService is the constructor for pharmacyService. It receives all dependencies as interfaces.
func NewPharmacyService(params PharmacyServiceParams) usecase.PharmacyUsecase {
	return &pharmacyService{
		pharmacyRepo:   params.PharmacyRepo,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *pharmacyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPharmacies returns pharmacies matching the location filters, each with
// its full stock list. When a medication query is present, only pharmacies
// carrying at least one available matching line are kept.
func (srv *pharmacyService) ListPharmacies(ctx context.Context, input usecase.ListPharmaciesInput) ([]*entity.Pharmacy, error) {
	filter := repository.PharmacyFilter{
		Location: entity.LocationFilter{
			Wilaya:   input.Wilaya,
			Commune:  input.Commune,
			Quartier: input.Quartier,
		},
	}

	pharmacies, err := srv.pharmacyRepo.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pharmacies")
	}

	if input.Medication == "" {
		return pharmacies, nil
	}

	matched := make([]*entity.Pharmacy, 0, len(pharmacies))
	for _, pharmacy := range pharmacies {
		if entity.HasStockMatch(pharmacy.Stock, input.Medication) {
			matched = append(matched, pharmacy)
		}
	}

	return matched, nil
}

// GetPharmacy returns a single pharmacy by ID.
func (srv *pharmacyService) GetPharmacy(ctx context.Context, id uuid.UUID) (*entity.Pharmacy, error) {
	pharmacy, err := srv.pharmacyRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrPharmacyNotFound) {
		return nil, domainerrors.ErrPharmacyNotFound.WrapMessage("pharmacy lookup failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pharmacy")
	}

	return pharmacy, nil
}

// CreatePharmacy registers a new pharmacy record.
func (srv *pharmacyService) CreatePharmacy(ctx context.Context, input usecase.CreatePharmacyInput) (*entity.Pharmacy, error) {
	now := time.Now()
	pharmacy := &entity.Pharmacy{
		ID:    uuid.New(),
		Name:  input.Name,
		Phone: input.Phone,
		Email: input.Email,
		Location: entity.Location{
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
			Address:   input.Address,
			Wilaya:    input.Wilaya,
			Commune:   input.Commune,
			Quartier:  input.Quartier,
		},
		IsGuard:            input.IsGuard,
		Stock:              input.Stock,
		SubscriptionActive: input.SubscriptionActive,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := srv.pharmacyRepo.Create(ctx, pharmacy); err != nil {
		return nil, errors.Wrap(err, "failed to create pharmacy")
	}

	srv.log(ctx).Info("Pharmacy created",
		slog.String("pharmacy_id", pharmacy.ID.String()),
		slog.String("wilaya", pharmacy.Location.Wilaya),
	)

	return pharmacy, nil
}

// UpdatePharmacy applies a partial update: nil input fields leave the stored
// values untouched. Stock is never modified here; use ReplaceStock.
func (srv *pharmacyService) UpdatePharmacy(ctx context.Context, id uuid.UUID, input usecase.UpdatePharmacyInput) (*entity.Pharmacy, error) {
	pharmacy, err := srv.pharmacyRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrPharmacyNotFound) {
		return nil, domainerrors.ErrPharmacyNotFound.WrapMessage("pharmacy update failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pharmacy")
	}

	applyPharmacyUpdate(pharmacy, input)
	pharmacy.UpdatedAt = time.Now()

	if err := srv.pharmacyRepo.Update(ctx, pharmacy); err != nil {
		return nil, errors.Wrap(err, "failed to update pharmacy")
	}

	return pharmacy, nil
}

func applyPharmacyUpdate(pharmacy *entity.Pharmacy, input usecase.UpdatePharmacyInput) {
	if input.Name != nil {
		pharmacy.Name = *input.Name
	}
	if input.Phone != nil {
		pharmacy.Phone = *input.Phone
	}
	if input.Email != nil {
		pharmacy.Email = input.Email
	}
	if input.Latitude != nil {
		pharmacy.Location.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		pharmacy.Location.Longitude = *input.Longitude
	}
	if input.Address != nil {
		pharmacy.Location.Address = *input.Address
	}
	if input.Wilaya != nil {
		pharmacy.Location.Wilaya = *input.Wilaya
	}
	if input.Commune != nil {
		pharmacy.Location.Commune = *input.Commune
	}
	if input.Quartier != nil {
		pharmacy.Location.Quartier = input.Quartier
	}
	if input.IsGuard != nil {
		pharmacy.IsGuard = *input.IsGuard
	}
	if input.SubscriptionActive != nil {
		pharmacy.SubscriptionActive = *input.SubscriptionActive
	}
}

// ReplaceStock swaps the whole stock list of a pharmacy in one operation and
// publishes a stock.updated event. Event delivery is best-effort: a publish
// failure is logged, not returned.
func (srv *pharmacyService) ReplaceStock(ctx context.Context, id uuid.UUID, stock []entity.StockLine) error {
	pharmacy, err := srv.pharmacyRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrPharmacyNotFound) {
		return domainerrors.ErrPharmacyNotFound.WrapMessage("stock update failed")
	}
	if err != nil {
		return errors.Wrap(err, "failed to find pharmacy")
	}

	if err := srv.pharmacyRepo.ReplaceStock(ctx, id, stock); err != nil {
		if errors.Is(err, repository.ErrPharmacyNotFound) {
			return domainerrors.ErrPharmacyNotFound.WrapMessage("stock update failed")
		}

		return errors.Wrap(err, "failed to replace stock")
	}

	srv.log(ctx).Info("Stock replaced",
		slog.String("pharmacy_id", id.String()),
		slog.Int("line_count", len(stock)),
	)

	event := &service.StockUpdatedEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		PharmacyID: id.String(),
		Wilaya:     pharmacy.Location.Wilaya,
		Commune:    pharmacy.Location.Commune,
		LineCount:  len(stock),
		UpdatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if err := srv.eventPublisher.PublishStockUpdated(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish stock.updated event",
			slog.String("pharmacy_id", id.String()),
			slog.Any("error", err),
		)
	}

	return nil
}

// SearchMedication finds every available stock line matching the query across
// subscribed pharmacies in the requested area. Each match is returned as its
// own (pharmacy, stock line) pair, in pharmacy order then stock order.
func (srv *pharmacyService) SearchMedication(ctx context.Context, input usecase.SearchMedicationInput) (*usecase.SearchMedicationOutput, error) {
	filter := repository.PharmacyFilter{
		Location: entity.LocationFilter{
			Wilaya:   input.Wilaya,
			Commune:  input.Commune,
			Quartier: input.Quartier,
		},
		SubscribedOnly: true,
	}

	pharmacies, err := srv.pharmacyRepo.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pharmacies")
	}

	results := []usecase.SearchResult{}
	for _, pharmacy := range pharmacies {
		for _, line := range entity.FindStockMatches(pharmacy.Stock, input.Medication) {
			results = append(results, usecase.SearchResult{
				Pharmacy: pharmacy,
				Stock:    line,
			})
		}
	}

	srv.log(ctx).Info("Medication search completed",
		slog.String("medication", input.Medication),
		slog.Int("total_found", len(results)),
	)

	return &usecase.SearchMedicationOutput{
		Results:    results,
		TotalFound: len(results),
	}, nil
}
