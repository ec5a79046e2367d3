package handler

import (
	"time"

	"pharmadz/internal/domain/entity"
	"pharmadz/internal/usecase"
)

// LocationResponse is the wire shape of a pharmacy location.
type LocationResponse struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Address   string  `json:"address"`
	Wilaya    string  `json:"wilaya"`
	Commune   string  `json:"commune"`
	Quartier  *string `json:"quartier,omitempty"`
}

// StockLineResponse is the wire shape of one stock line.
type StockLineResponse struct {
	MedicationName string  `json:"medication_name"`
	Quantity       int     `json:"quantity"`
	Price          float64 `json:"price"`
	Available      bool    `json:"available"`
}

// PharmacyResponse is the wire shape of a pharmacy with its stock.
type PharmacyResponse struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	Phone              string              `json:"phone"`
	Email              *string             `json:"email,omitempty"`
	Location           LocationResponse    `json:"location"`
	IsGuard            bool                `json:"is_guard"`
	Stock              []StockLineResponse `json:"stock"`
	SubscriptionActive bool                `json:"subscription_active"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

// SearchResultResponse pairs a pharmacy with one matching stock line.
type SearchResultResponse struct {
	Pharmacy PharmacyResponse  `json:"pharmacy"`
	Stock    StockLineResponse `json:"stock"`
}

// SearchMedicationResponse is the wire shape of a medication search.
type SearchMedicationResponse struct {
	Results    []SearchResultResponse `json:"results"`
	TotalFound int                    `json:"total_found"`
}

// AccountResponse is the wire shape of an account. The password hash never
// leaves the server.
type AccountResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	PharmacyID *string   `json:"pharmacy_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// AuthResponse returns a token pair with the authenticated account.
type AuthResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	Account      AccountResponse `json:"account"`
}

// PrescriptionResponse is the wire shape of a prescription.
type PrescriptionResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	PharmacyID  string    `json:"pharmacy_id"`
	Medications []string  `json:"medications"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// --- Mapper Functions ---

func toStockLineResponse(line entity.StockLine) StockLineResponse {
	return StockLineResponse{
		MedicationName: line.MedicationName,
		Quantity:       line.Quantity,
		Price:          line.Price,
		Available:      line.Available,
	}
}

func toPharmacyResponse(pharmacy *entity.Pharmacy) PharmacyResponse {
	stock := make([]StockLineResponse, 0, len(pharmacy.Stock))
	for _, line := range pharmacy.Stock {
		stock = append(stock, toStockLineResponse(line))
	}

	return PharmacyResponse{
		ID:    pharmacy.ID.String(),
		Name:  pharmacy.Name,
		Phone: pharmacy.Phone,
		Email: pharmacy.Email,
		Location: LocationResponse{
			Latitude:  pharmacy.Location.Latitude,
			Longitude: pharmacy.Location.Longitude,
			Address:   pharmacy.Location.Address,
			Wilaya:    pharmacy.Location.Wilaya,
			Commune:   pharmacy.Location.Commune,
			Quartier:  pharmacy.Location.Quartier,
		},
		IsGuard:            pharmacy.IsGuard,
		Stock:              stock,
		SubscriptionActive: pharmacy.SubscriptionActive,
		CreatedAt:          pharmacy.CreatedAt,
		UpdatedAt:          pharmacy.UpdatedAt,
	}
}

func toPharmacyListResponse(pharmacies []*entity.Pharmacy) []PharmacyResponse {
	out := make([]PharmacyResponse, 0, len(pharmacies))
	for _, pharmacy := range pharmacies {
		out = append(out, toPharmacyResponse(pharmacy))
	}

	return out
}

func toSearchMedicationResponse(output *usecase.SearchMedicationOutput) SearchMedicationResponse {
	results := make([]SearchResultResponse, 0, len(output.Results))
	for _, result := range output.Results {
		results = append(results, SearchResultResponse{
			Pharmacy: toPharmacyResponse(result.Pharmacy),
			Stock:    toStockLineResponse(result.Stock),
		})
	}

	return SearchMedicationResponse{
		Results:    results,
		TotalFound: output.TotalFound,
	}
}

func toAccountResponse(account *entity.Account) AccountResponse {
	var pharmacyID *string
	if account.PharmacyID != nil {
		id := account.PharmacyID.String()
		pharmacyID = &id
	}

	return AccountResponse{
		ID:         account.ID.String(),
		Username:   account.Username,
		Email:      account.Email,
		Role:       string(account.Role),
		PharmacyID: pharmacyID,
		CreatedAt:  account.CreatedAt,
	}
}

func toAuthResponse(output *usecase.AuthOutput) AuthResponse {
	return AuthResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		Account:      toAccountResponse(output.Account),
	}
}

func toPrescriptionResponse(prescription *entity.Prescription) PrescriptionResponse {
	medications := prescription.Medications
	if medications == nil {
		medications = []string{}
	}

	return PrescriptionResponse{
		ID:          prescription.ID.String(),
		UserID:      prescription.UserID,
		PharmacyID:  prescription.PharmacyID.String(),
		Medications: medications,
		ImageURL:    prescription.ImageURL,
		Status:      string(prescription.Status),
		CreatedAt:   prescription.CreatedAt,
	}
}
