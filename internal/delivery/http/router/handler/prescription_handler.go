package handler

import (
	"log/slog"
	"net/http"

	"pharmadz/internal/delivery/http/response"
	"pharmadz/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PrescriptionHandlerParams holds dependencies for PrescriptionHandler, injected by Fx.
type PrescriptionHandlerParams struct {
	fx.In

	PrescriptionUC usecase.PrescriptionUsecase
	Logger         *slog.Logger
}

// PrescriptionHandler holds dependencies for prescription-related handlers
type PrescriptionHandler struct {
	prescriptionUC usecase.PrescriptionUsecase
	logger         *slog.Logger
}

// NewPrescriptionHandler is the constructor for PrescriptionHandler
func NewPrescriptionHandler(params PrescriptionHandlerParams) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionUC: params.PrescriptionUC,
		logger:         params.Logger,
	}
}

// SubmitPrescriptionRequest represents the request body for a prescription submission
type SubmitPrescriptionRequest struct {
	UserID      string   `json:"user_id" validate:"required"`
	PharmacyID  string   `json:"pharmacy_id" validate:"required,uuid"`
	Medications []string `json:"medications" validate:"required,min=1"`
	ImageURL    *string  `json:"image_url,omitempty"`
}

// SubmitPrescription handles POST /api/prescriptions
func (h *PrescriptionHandler) SubmitPrescription(c echo.Context) error {
	var req SubmitPrescriptionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid prescription input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	pharmacyID, err := uuid.Parse(req.PharmacyID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pharmacy ID")
	}

	prescription, err := h.prescriptionUC.SubmitPrescription(c.Request().Context(), usecase.SubmitPrescriptionInput{
		UserID:      req.UserID,
		PharmacyID:  pharmacyID,
		Medications: req.Medications,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPrescriptionResponse(prescription), "Prescription submitted successfully")
}

// ListUserPrescriptions handles GET /api/prescriptions/:userID
func (h *PrescriptionHandler) ListUserPrescriptions(c echo.Context) error {
	userID := c.Param("userID")
	if userID == "" {
		return response.BadRequest(c, "INVALID_ID", "User ID is required")
	}

	prescriptions, err := h.prescriptionUC.ListUserPrescriptions(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]PrescriptionResponse, 0, len(prescriptions))
	for _, prescription := range prescriptions {
		out = append(out, toPrescriptionResponse(prescription))
	}

	return response.Success(c, http.StatusOK, out, "Prescriptions retrieved successfully")
}
