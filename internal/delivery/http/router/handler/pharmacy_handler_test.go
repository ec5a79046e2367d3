package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pharmadz/internal/delivery/http/validator"
	"pharmadz/internal/domain/entity"
	"pharmadz/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pharmacyUsecaseStub implements usecase.PharmacyUsecase with overridable functions.
type pharmacyUsecaseStub struct {
	listFn   func(ctx context.Context, input usecase.ListPharmaciesInput) ([]*entity.Pharmacy, error)
	getFn    func(ctx context.Context, id uuid.UUID) (*entity.Pharmacy, error)
	searchFn func(ctx context.Context, input usecase.SearchMedicationInput) (*usecase.SearchMedicationOutput, error)
}

func (s *pharmacyUsecaseStub) ListPharmacies(ctx context.Context, input usecase.ListPharmaciesInput) ([]*entity.Pharmacy, error) {
	return s.listFn(ctx, input)
}

func (s *pharmacyUsecaseStub) GetPharmacy(ctx context.Context, id uuid.UUID) (*entity.Pharmacy, error) {
	return s.getFn(ctx, id)
}

func (s *pharmacyUsecaseStub) CreatePharmacy(_ context.Context, _ usecase.CreatePharmacyInput) (*entity.Pharmacy, error) {
	panic("not expected")
}

func (s *pharmacyUsecaseStub) UpdatePharmacy(_ context.Context, _ uuid.UUID, _ usecase.UpdatePharmacyInput) (*entity.Pharmacy, error) {
	panic("not expected")
}

func (s *pharmacyUsecaseStub) ReplaceStock(_ context.Context, _ uuid.UUID, _ []entity.StockLine) error {
	panic("not expected")
}

func (s *pharmacyUsecaseStub) SearchMedication(ctx context.Context, input usecase.SearchMedicationInput) (*usecase.SearchMedicationOutput, error) {
	return s.searchFn(ctx, input)
}

func newEchoContext(t *testing.T, method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func testPharmacy(name, wilaya string) *entity.Pharmacy {
	return &entity.Pharmacy{
		ID:    uuid.New(),
		Name:  name,
		Phone: "021-123-456",
		Location: entity.Location{
			Wilaya:  wilaya,
			Commune: "Alger Centre",
			Address: "1 Rue Didouche Mourad",
		},
		Stock: []entity.StockLine{
			{MedicationName: "Paracétamol 500mg", Quantity: 50, Price: 120.0, Available: true},
		},
		SubscriptionActive: true,
	}
}

func TestPharmacyHandler_ListPharmacies(t *testing.T) {
	var captured usecase.ListPharmaciesInput
	h := &PharmacyHandler{
		logger: slog.Default(),
		pharmacyUC: &pharmacyUsecaseStub{
			listFn: func(_ context.Context, input usecase.ListPharmaciesInput) ([]*entity.Pharmacy, error) {
				captured = input

				return []*entity.Pharmacy{
					testPharmacy("Pharmacie Central Alger", "Alger"),
					testPharmacy("Pharmacie Hydra", "Alger"),
				}, nil
			},
		},
	}

	c, rec := newEchoContext(t, http.MethodGet, "/api/pharmacies?wilaya=Alger&medication=paracetamol", "")

	require.NoError(t, h.ListPharmacies(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Alger", captured.Wilaya)
	assert.Equal(t, "paracetamol", captured.Medication)
	assert.Contains(t, rec.Body.String(), "Pharmacie Central Alger")
	assert.Contains(t, rec.Body.String(), "Pharmacie Hydra")
}

func TestPharmacyHandler_GetPharmacy_InvalidID(t *testing.T) {
	h := &PharmacyHandler{logger: slog.Default(), pharmacyUC: &pharmacyUsecaseStub{}}

	c, rec := newEchoContext(t, http.MethodGet, "/api/pharmacies/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.GetPharmacy(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestPharmacyHandler_SearchMedication(t *testing.T) {
	pharmacy := testPharmacy("Pharmacie Central Alger", "Alger")

	var captured usecase.SearchMedicationInput
	h := &PharmacyHandler{
		logger: slog.Default(),
		pharmacyUC: &pharmacyUsecaseStub{
			searchFn: func(_ context.Context, input usecase.SearchMedicationInput) (*usecase.SearchMedicationOutput, error) {
				captured = input

				return &usecase.SearchMedicationOutput{
					Results: []usecase.SearchResult{
						{Pharmacy: pharmacy, Stock: pharmacy.Stock[0]},
					},
					TotalFound: 1,
				}, nil
			},
		},
	}

	body := `{"medication_name":"paracetamol","wilaya":"Alger"}`
	c, rec := newEchoContext(t, http.MethodPost, "/api/search-medication", body)

	require.NoError(t, h.SearchMedication(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "paracetamol", captured.Medication)
	assert.Equal(t, "Alger", captured.Wilaya)
	assert.Contains(t, rec.Body.String(), `"total_found":1`)
	assert.Contains(t, rec.Body.String(), "Paracétamol 500mg")
}

func TestPharmacyHandler_SearchMedication_MissingName(t *testing.T) {
	h := &PharmacyHandler{logger: slog.Default(), pharmacyUC: &pharmacyUsecaseStub{}}

	c, rec := newEchoContext(t, http.MethodPost, "/api/search-medication", `{"wilaya":"Alger"}`)

	require.NoError(t, h.SearchMedication(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestPharmacyHandler_UpdatePharmacy_RejectsUnknownFields(t *testing.T) {
	h := &PharmacyHandler{logger: slog.Default(), pharmacyUC: &pharmacyUsecaseStub{}}

	c, rec := newEchoContext(t, http.MethodPatch, "/api/pharmacies/"+uuid.NewString(), `{"nmae":"typo"}`)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	require.NoError(t, h.UpdatePharmacy(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}
