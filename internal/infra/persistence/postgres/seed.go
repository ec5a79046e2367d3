package postgres

import (
	"context"
	"log/slog"
	"time"

	"pharmadz/config"
	"pharmadz/internal/domain/entity"
	"pharmadz/internal/domain/lifecycle"
	"pharmadz/internal/domain/repository"
	"pharmadz/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// SeedParams defines the required parameters for startup seeding.
type SeedParams struct {
	fx.In
	fx.Lifecycle

	Config       *config.Config
	Logger       *slog.Logger
	PharmacyRepo repository.PharmacyRepository
}

// RegisterSeed inserts the sample pharmacies on startup when seeding is
// enabled and the table is still empty. Existing data is never touched.
func RegisterSeed(params SeedParams) {
	if params.Config.Seed == nil || !params.Config.Seed.Enabled {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			count, err := params.PharmacyRepo.Count(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to count pharmacies before seeding")
			}
			if count > 0 {
				return nil
			}

			pharmacies := samplePharmacies()
			for _, pharmacy := range pharmacies {
				if err := params.PharmacyRepo.Create(ctx, pharmacy); err != nil {
					return errors.Wrapf(err, "failed to seed pharmacy %q", pharmacy.Name)
				}
			}

			params.Logger.InfoContext(ctx, "Seeded sample pharmacies",
				slog.Int("count", len(pharmacies)),
			)

			return nil
		},
	})
}

func strPtr(s string) *string {
	return &s
}

// samplePharmacies returns the development fixture set: two Algiers
// pharmacies and one in Oran.
func samplePharmacies() []*entity.Pharmacy {
	now := time.Now().UTC()

	return []*entity.Pharmacy{
		{
			ID:    uuid.New(),
			Name:  "Pharmacie Central Alger",
			Phone: "021-123-456",
			Email: strPtr("central@pharmacy.dz"),
			Location: entity.Location{
				Latitude:  36.7538,
				Longitude: 3.0588,
				Address:   "1 Rue Didouche Mourad, Alger Centre",
				Wilaya:    "Alger",
				Commune:   "Alger Centre",
				Quartier:  strPtr("Centre-ville"),
			},
			IsGuard: true,
			Stock: []entity.StockLine{
				{MedicationName: "Paracétamol 500mg", Quantity: 50, Price: 120.0, Available: true},
				{MedicationName: "Ibuprofène 400mg", Quantity: 30, Price: 250.0, Available: true},
				{MedicationName: "Amoxicilline 250mg", Quantity: 0, Price: 350.0, Available: false},
			},
			SubscriptionActive: true,
			CreatedAt:          now,
			UpdatedAt:          now,
		},
		{
			ID:    uuid.New(),
			Name:  "Pharmacie Hydra",
			Phone: "021-789-012",
			Location: entity.Location{
				Latitude:  36.7225,
				Longitude: 3.1572,
				Address:   "Avenue des Frères Bouadou, Hydra",
				Wilaya:    "Alger",
				Commune:   "Hydra",
				Quartier:  strPtr("Hydra"),
			},
			Stock: []entity.StockLine{
				{MedicationName: "Paracétamol 500mg", Quantity: 25, Price: 125.0, Available: true},
				{MedicationName: "Doliprane 1000mg", Quantity: 40, Price: 180.0, Available: true},
			},
			SubscriptionActive: true,
			CreatedAt:          now,
			UpdatedAt:          now,
		},
		{
			ID:    uuid.New(),
			Name:  "Pharmacie Oran Centre",
			Phone: "041-345-678",
			Location: entity.Location{
				Latitude:  35.6976,
				Longitude: -0.6337,
				Address:   "Boulevard de la Révolution, Oran",
				Wilaya:    "Oran",
				Commune:   "Oran",
				Quartier:  strPtr("Centre-ville"),
			},
			Stock: []entity.StockLine{
				{MedicationName: "Paracétamol 500mg", Quantity: 35, Price: 115.0, Available: true},
				{MedicationName: "Aspirine 500mg", Quantity: 20, Price: 200.0, Available: true},
			},
			SubscriptionActive: true,
			CreatedAt:          now,
			UpdatedAt:          now,
		},
	}
}
