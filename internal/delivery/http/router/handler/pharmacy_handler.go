// Package handler contains the HTTP handlers for the application.
package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	deliverymiddleware "pharmadz/internal/delivery/http/middleware"
	"pharmadz/internal/delivery/http/response"
	"pharmadz/internal/domain/entity"
	"pharmadz/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PharmacyHandlerParams holds dependencies for PharmacyHandler, injected by Fx.
type PharmacyHandlerParams struct {
	fx.In

	PharmacyUC usecase.PharmacyUsecase
	Logger     *slog.Logger
}

// PharmacyHandler holds dependencies for pharmacy-related handlers
type PharmacyHandler struct {
	pharmacyUC usecase.PharmacyUsecase
	logger     *slog.Logger
}

// NewPharmacyHandler is the constructor for PharmacyHandler
func NewPharmacyHandler(params PharmacyHandlerParams) *PharmacyHandler {
	return &PharmacyHandler{
		pharmacyUC: params.PharmacyUC,
		logger:     params.Logger,
	}
}

// StockLineRequest represents one stock line in a request body
type StockLineRequest struct {
	MedicationName string  `json:"medication_name" validate:"required"`
	Quantity       int     `json:"quantity" validate:"min=0"`
	Price          float64 `json:"price" validate:"min=0"`
	Available      bool    `json:"available"`
}

// CreatePharmacyRequest represents the request body for registering a pharmacy
type CreatePharmacyRequest struct {
	Name               string             `json:"name" validate:"required"`
	Phone              string             `json:"phone"`
	Email              *string            `json:"email,omitempty" validate:"omitempty,email"`
	Latitude           float64            `json:"lat" validate:"min=-90,max=90"`
	Longitude          float64            `json:"lng" validate:"min=-180,max=180"`
	Address            string             `json:"address"`
	Wilaya             string             `json:"wilaya" validate:"required"`
	Commune            string             `json:"commune" validate:"required"`
	Quartier           *string            `json:"quartier,omitempty"`
	IsGuard            bool               `json:"is_guard"`
	Stock              []StockLineRequest `json:"stock" validate:"dive"`
	SubscriptionActive bool               `json:"subscription_active"`
}

// UpdatePharmacyRequest represents a partial update; absent fields stay untouched
type UpdatePharmacyRequest struct {
	Name               *string  `json:"name,omitempty"`
	Phone              *string  `json:"phone,omitempty"`
	Email              *string  `json:"email,omitempty" validate:"omitempty,email"`
	Latitude           *float64 `json:"lat,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude          *float64 `json:"lng,omitempty" validate:"omitempty,min=-180,max=180"`
	Address            *string  `json:"address,omitempty"`
	Wilaya             *string  `json:"wilaya,omitempty"`
	Commune            *string  `json:"commune,omitempty"`
	Quartier           *string  `json:"quartier,omitempty"`
	IsGuard            *bool    `json:"is_guard,omitempty"`
	SubscriptionActive *bool    `json:"subscription_active,omitempty"`
}

// ReplaceStockRequest represents the request body for a wholesale stock replace
type ReplaceStockRequest struct {
	Stock []StockLineRequest `json:"stock" validate:"required,dive"`
}

// SearchMedicationRequest represents the request body for a medication search
type SearchMedicationRequest struct {
	MedicationName string  `json:"medication_name" validate:"required"`
	Wilaya         *string `json:"wilaya,omitempty"`
	Commune        *string `json:"commune,omitempty"`
	Quartier       *string `json:"quartier,omitempty"`
}

// ListPharmacies handles GET /api/pharmacies with optional location and
// medication filters.
func (h *PharmacyHandler) ListPharmacies(c echo.Context) error {
	input := usecase.ListPharmaciesInput{
		Wilaya:     c.QueryParam("wilaya"),
		Commune:    c.QueryParam("commune"),
		Quartier:   c.QueryParam("quartier"),
		Medication: c.QueryParam("medication"),
	}

	pharmacies, err := h.pharmacyUC.ListPharmacies(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPharmacyListResponse(pharmacies), "Pharmacies retrieved successfully")
}

// GetPharmacy handles GET /api/pharmacies/:id
func (h *PharmacyHandler) GetPharmacy(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pharmacy ID")
	}

	pharmacy, err := h.pharmacyUC.GetPharmacy(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPharmacyResponse(pharmacy), "Pharmacy retrieved successfully")
}

// CreatePharmacy handles POST /api/pharmacies (admin only)
func (h *PharmacyHandler) CreatePharmacy(c echo.Context) error {
	var req CreatePharmacyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pharmacy input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	pharmacy, err := h.pharmacyUC.CreatePharmacy(c.Request().Context(), toCreatePharmacyInput(req))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPharmacyResponse(pharmacy), "Pharmacy created successfully")
}

// UpdatePharmacy handles PATCH /api/pharmacies/:id (admin only).
// Unknown fields in the body are rejected so typos do not silently no-op.
func (h *PharmacyHandler) UpdatePharmacy(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pharmacy ID")
	}

	var req UpdatePharmacyRequest
	if err := bindStrict(c.Request().Body, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.UpdatePharmacyInput{
		Name:               req.Name,
		Phone:              req.Phone,
		Email:              req.Email,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		Address:            req.Address,
		Wilaya:             req.Wilaya,
		Commune:            req.Commune,
		Quartier:           req.Quartier,
		IsGuard:            req.IsGuard,
		SubscriptionActive: req.SubscriptionActive,
	}

	pharmacy, err := h.pharmacyUC.UpdatePharmacy(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPharmacyResponse(pharmacy), "Pharmacy updated successfully")
}

// ReplaceStock handles POST /api/pharmacies/:id/stock. Pharmacy operators may
// only replace their own stock; admins may replace anyone's.
func (h *PharmacyHandler) ReplaceStock(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pharmacy ID")
	}

	if err := h.authorizeStockAccess(c, id); err != nil {
		return err
	}

	var req ReplaceStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.pharmacyUC.ReplaceStock(c.Request().Context(), id, toStockLines(req.Stock)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Stock updated successfully"}, "Stock updated successfully")
}

// SearchMedication handles POST /api/search-medication
func (h *PharmacyHandler) SearchMedication(c echo.Context) error {
	var req SearchMedicationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.SearchMedicationInput{
		Medication: req.MedicationName,
	}
	if req.Wilaya != nil {
		input.Wilaya = *req.Wilaya
	}
	if req.Commune != nil {
		input.Commune = *req.Commune
	}
	if req.Quartier != nil {
		input.Quartier = *req.Quartier
	}

	output, err := h.pharmacyUC.SearchMedication(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSearchMedicationResponse(output), "Search completed successfully")
}

// authorizeStockAccess allows admins unconditionally and pharmacy operators
// only on their own pharmacy.
func (h *PharmacyHandler) authorizeStockAccess(c echo.Context, pharmacyID uuid.UUID) error {
	roleVal := c.Get(deliverymiddleware.ContextKeyRole)
	role, ok := roleVal.(entity.Role)
	if !ok {
		return response.Forbidden(c, "FORBIDDEN", "Role information missing")
	}

	if role == entity.RoleAdmin {
		return nil
	}

	ownPharmacyVal := c.Get(deliverymiddleware.ContextKeyPharmacyID)
	ownPharmacyID, ok := ownPharmacyVal.(*uuid.UUID)
	if !ok || ownPharmacyID == nil {
		return response.Forbidden(c, "FORBIDDEN", "No pharmacy bound to this account")
	}

	if *ownPharmacyID != pharmacyID {
		return response.Forbidden(c, "FORBIDDEN", "Cannot modify another pharmacy's stock")
	}

	return nil
}

// bindStrict decodes the body rejecting unknown fields.
func bindStrict(body io.Reader, v any) error {
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()

	return decoder.Decode(v)
}

func toStockLines(lines []StockLineRequest) []entity.StockLine {
	stock := make([]entity.StockLine, 0, len(lines))
	for _, line := range lines {
		stock = append(stock, entity.StockLine{
			MedicationName: line.MedicationName,
			Quantity:       line.Quantity,
			Price:          line.Price,
			Available:      line.Available,
		})
	}

	return stock
}

func toCreatePharmacyInput(req CreatePharmacyRequest) usecase.CreatePharmacyInput {
	return usecase.CreatePharmacyInput{
		Name:               req.Name,
		Phone:              req.Phone,
		Email:              req.Email,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		Address:            req.Address,
		Wilaya:             req.Wilaya,
		Commune:            req.Commune,
		Quartier:           req.Quartier,
		IsGuard:            req.IsGuard,
		Stock:              toStockLines(req.Stock),
		SubscriptionActive: req.SubscriptionActive,
	}
}
