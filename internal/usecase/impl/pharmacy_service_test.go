package impl

import (
	"context"
	"errors"
	"testing"

	"pharmadz/internal/domain/entity"
	domainerrors "pharmadz/internal/domain/errors"
	"pharmadz/internal/domain/repository"
	mockRepo "pharmadz/internal/mocks/repository"
	mockSvc "pharmadz/internal/mocks/service"
	"pharmadz/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPharmacyService(t *testing.T) (usecase.PharmacyUsecase, *mockRepo.MockPharmacyRepository, *mockSvc.MockEventPublisher) {
	pharmacyRepo := mockRepo.NewMockPharmacyRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewPharmacyService(PharmacyServiceParams{
		PharmacyRepo:   pharmacyRepo,
		EventPublisher: publisher,
		Logger:         newDiscardLogger(),
	})

	return service, pharmacyRepo, publisher
}

func TestPharmacyService_ListPharmacies_NoFilters(t *testing.T) {
	service, pharmacyRepo, _ := newPharmacyService(t)

	ctx := context.Background()
	expected := []*entity.Pharmacy{newTestPharmacy(), newTestPharmacy()}

	pharmacyRepo.EXPECT().
		Find(ctx, repository.PharmacyFilter{}).
		Return(expected, nil)

	pharmacies, err := service.ListPharmacies(ctx, usecase.ListPharmaciesInput{})
	require.NoError(t, err)
	assert.Equal(t, expected, pharmacies)
}

func TestPharmacyService_ListPharmacies_MedicationFilterKeepsMatchingOnly(t *testing.T) {
	service, pharmacyRepo, _ := newPharmacyService(t)

	ctx := context.Background()
	withParacetamol := newTestPharmacy()
	withoutParacetamol := newTestPharmacy()
	withoutParacetamol.Stock = []entity.StockLine{
		{MedicationName: "Doliprane 1000mg", Quantity: 5, Price: 180.0, Available: true},
	}

	pharmacyRepo.EXPECT().
		Find(ctx, repository.PharmacyFilter{
			Location: entity.LocationFilter{Wilaya: "Alger"},
		}).
		Return([]*entity.Pharmacy{withParacetamol, withoutParacetamol}, nil)

	pharmacies, err := service.ListPharmacies(ctx, usecase.ListPharmaciesInput{
		Wilaya:     "Alger",
		Medication: "paracétamol",
	})
	require.NoError(t, err)
	require.Len(t, pharmacies, 1)
	assert.Equal(t, withParacetamol.ID, pharmacies[0].ID)
}

func TestPharmacyService_ListPharmacies_UnavailableMedicationDoesNotQualify(t *testing.T) {
	service, pharmacyRepo, _ := newPharmacyService(t)

	ctx := context.Background()
	pharmacy := newTestPharmacy()

	pharmacyRepo.EXPECT().
		Find(ctx, mock.AnythingOfType("repository.PharmacyFilter")).
		Return([]*entity.Pharmacy{pharmacy}, nil)

	// Amoxicilline is in stock but flagged unavailable.
	pharmacies, err := service.ListPharmacies(ctx, usecase.ListPharmaciesInput{Medication: "amoxicilline"})
	require.NoError(t, err)
	assert.Empty(t, pharmacies)
}

func TestPharmacyService_GetPharmacy_NotFound(t *testing.T) {
	service, pharmacyRepo, _ := newPharmacyService(t)

	ctx := context.Background()
	id := uuid.New()

	pharmacyRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrPharmacyNotFound)

	pharmacy, err := service.GetPharmacy(ctx, id)
	require.Error(t, err)
	assert.Nil(t, pharmacy)
	assert.ErrorIs(t, err, domainerrors.ErrPharmacyNotFound)
}

func TestPharmacyService_CreatePharmacy(t *testing.T) {
	service, pharmacyRepo, _ := newPharmacyService(t)

	ctx := context.Background()
	quartier := "Centre-ville"
	input := usecase.CreatePharmacyInput{
		Name:     "Pharmacie Centrale Oran",
		Phone:    "+213 41 00 00 00",
		Latitude: 35.6976,
		Address:  "5 Boulevard de la Soummam",
		Wilaya:   "Oran",
		Commune:  "Oran Centre",
		Quartier: &quartier,
		Stock: []entity.StockLine{
			{MedicationName: "Paracétamol 500mg", Quantity: 10, Price: 115.0, Available: true},
		},
		SubscriptionActive: true,
	}

	pharmacyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Pharmacy")).
		Return(nil)

	pharmacy, err := service.CreatePharmacy(ctx, input)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, pharmacy.ID)
	assert.Equal(t, input.Name, pharmacy.Name)
	assert.Equal(t, "Oran", pharmacy.Location.Wilaya)
	require.NotNil(t, pharmacy.Location.Quartier)
	assert.Equal(t, quartier, *pharmacy.Location.Quartier)
	assert.Len(t, pharmacy.Stock, 1)
}

func TestPharmacyService_UpdatePharmacy_PartialUpdate(t *testing.T) {
	service, pharmacyRepo, _ := newPharmacyService(t)

	ctx := context.Background()
	existing := newTestPharmacy()
	newName := "Pharmacie El Amel - Hydra"
	subscribed := false

	pharmacyRepo.EXPECT().
		FindByID(ctx, existing.ID).
		Return(existing, nil)

	pharmacyRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Pharmacy")).
		Return(nil)

	updated, err := service.UpdatePharmacy(ctx, existing.ID, usecase.UpdatePharmacyInput{
		Name:               &newName,
		SubscriptionActive: &subscribed,
	})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	assert.False(t, updated.SubscriptionActive)
	// Untouched fields keep their stored values.
	assert.Equal(t, "Hydra", updated.Location.Commune)
	assert.Len(t, updated.Stock, 3)
}

func TestPharmacyService_ReplaceStock_Success(t *testing.T) {
	service, pharmacyRepo, publisher := newPharmacyService(t)

	ctx := context.Background()
	existing := newTestPharmacy()
	newStock := []entity.StockLine{
		{MedicationName: "Doliprane 1000mg", Quantity: 20, Price: 180.0, Available: true},
	}

	pharmacyRepo.EXPECT().
		FindByID(ctx, existing.ID).
		Return(existing, nil)

	pharmacyRepo.EXPECT().
		ReplaceStock(ctx, existing.ID, newStock).
		Return(nil)

	publisher.EXPECT().
		PublishStockUpdated(ctx, mock.AnythingOfType("*service.StockUpdatedEvent")).
		Return(nil)

	err := service.ReplaceStock(ctx, existing.ID, newStock)
	require.NoError(t, err)
}

func TestPharmacyService_ReplaceStock_NotFound(t *testing.T) {
	service, pharmacyRepo, _ := newPharmacyService(t)

	ctx := context.Background()
	id := uuid.New()

	pharmacyRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrPharmacyNotFound)

	err := service.ReplaceStock(ctx, id, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPharmacyNotFound)
}

func TestPharmacyService_ReplaceStock_PublishFailureIsNotAnError(t *testing.T) {
	service, pharmacyRepo, publisher := newPharmacyService(t)

	ctx := context.Background()
	existing := newTestPharmacy()

	pharmacyRepo.EXPECT().
		FindByID(ctx, existing.ID).
		Return(existing, nil)

	pharmacyRepo.EXPECT().
		ReplaceStock(ctx, existing.ID, mock.Anything).
		Return(nil)

	publisher.EXPECT().
		PublishStockUpdated(ctx, mock.Anything).
		Return(errors.New("broker unavailable"))

	err := service.ReplaceStock(ctx, existing.ID, []entity.StockLine{})
	require.NoError(t, err)
}

func TestPharmacyService_SearchMedication_OnePairPerMatchingLine(t *testing.T) {
	service, pharmacyRepo, _ := newPharmacyService(t)

	ctx := context.Background()
	pharmacy := newTestPharmacy()
	pharmacy.Stock = []entity.StockLine{
		{MedicationName: "Paracétamol 500mg", Quantity: 50, Price: 120.0, Available: true},
		{MedicationName: "Paracétamol 1000mg", Quantity: 10, Price: 220.0, Available: true},
		{MedicationName: "Ibuprofène 400mg", Quantity: 30, Price: 250.0, Available: true},
	}

	pharmacyRepo.EXPECT().
		Find(ctx, repository.PharmacyFilter{
			Location:       entity.LocationFilter{Wilaya: "Alger"},
			SubscribedOnly: true,
		}).
		Return([]*entity.Pharmacy{pharmacy}, nil)

	output, err := service.SearchMedication(ctx, usecase.SearchMedicationInput{
		Medication: "paracétamol",
		Wilaya:     "Alger",
	})
	require.NoError(t, err)
	require.Len(t, output.Results, 2)
	assert.Equal(t, 2, output.TotalFound)
	assert.Equal(t, "Paracétamol 500mg", output.Results[0].Stock.MedicationName)
	assert.Equal(t, "Paracétamol 1000mg", output.Results[1].Stock.MedicationName)
	assert.Equal(t, pharmacy.ID, output.Results[0].Pharmacy.ID)
}

func TestPharmacyService_SearchMedication_SubscribedOnlyFilterPushedDown(t *testing.T) {
	service, pharmacyRepo, _ := newPharmacyService(t)

	ctx := context.Background()

	pharmacyRepo.EXPECT().
		Find(ctx, mock.MatchedBy(func(f repository.PharmacyFilter) bool {
			return f.SubscribedOnly
		})).
		Return([]*entity.Pharmacy{}, nil)

	output, err := service.SearchMedication(ctx, usecase.SearchMedicationInput{Medication: "insuline"})
	require.NoError(t, err)
	assert.Empty(t, output.Results)
	assert.Zero(t, output.TotalFound)
}

func TestPharmacyService_SearchMedication_NoMatchesReturnsEmptyNotNil(t *testing.T) {
	service, pharmacyRepo, _ := newPharmacyService(t)

	ctx := context.Background()
	pharmacy := newTestPharmacy()

	pharmacyRepo.EXPECT().
		Find(ctx, mock.AnythingOfType("repository.PharmacyFilter")).
		Return([]*entity.Pharmacy{pharmacy}, nil)

	output, err := service.SearchMedication(ctx, usecase.SearchMedicationInput{Medication: "insuline"})
	require.NoError(t, err)
	assert.NotNil(t, output.Results)
	assert.Empty(t, output.Results)
	assert.Equal(t, 0, output.TotalFound)
}
