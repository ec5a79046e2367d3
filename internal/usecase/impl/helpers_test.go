package impl

import (
	"io"
	"log/slog"

	"pharmadz/config"
	"pharmadz/internal/domain/entity"

	"github.com/google/uuid"
)

// newDiscardLogger returns a logger that swallows everything, keeping test
// output clean.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Chat: &config.ChatConfig{},
		GoogleOAuth: &config.GoogleOAuthConfig{
			AdminEmails: []string{"admin@pharmadz.dz"},
		},
	}
}

// newTestPharmacy builds a subscribed pharmacy in Hydra with a small stock.
func newTestPharmacy() *entity.Pharmacy {
	return &entity.Pharmacy{
		ID:    uuid.New(),
		Name:  "Pharmacie El Amel",
		Phone: "+213 21 00 00 00",
		Location: entity.Location{
			Latitude:  36.7453,
			Longitude: 3.0335,
			Address:   "12 Rue Didouche Mourad, Hydra",
			Wilaya:    "Alger",
			Commune:   "Hydra",
		},
		Stock: []entity.StockLine{
			{MedicationName: "Paracétamol 500mg", Quantity: 50, Price: 120.0, Available: true},
			{MedicationName: "Ibuprofène 400mg", Quantity: 30, Price: 250.0, Available: true},
			{MedicationName: "Amoxicilline 250mg", Quantity: 0, Price: 350.0, Available: false},
		},
		SubscriptionActive: true,
	}
}
