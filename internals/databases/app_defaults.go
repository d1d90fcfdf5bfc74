package database

import (
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/Emmynem/alphaprimeclub-api/internals/constants"
	paymentModel "github.com/Emmynem/alphaprimeclub-api/internals/features/payments/model"
)

// SeedAppDefaults makes sure the gateway secret keys exist as app_defaults
// rows. Existing rows are left untouched so keys rotated at runtime survive
// restarts.
func SeedAppDefaults() {
	defaults := []struct {
		criteria string
		envKey   string
	}{
		{constants.PaystackSecretKeyCriteria, "PAYSTACK_SECRET_KEY"},
		{constants.SquadSecretKeyCriteria, "SQUAD_SECRET_KEY"},
	}

	for _, d := range defaults {
		var count int64
		if err := DB.Model(&paymentModel.AppDefault{}).
			Where("criteria = ?", d.criteria).
			Count(&count).Error; err != nil {
			log.Printf("app default check err (%s): %v", d.criteria, err)
			continue
		}
		if count > 0 {
			continue
		}

		value := os.Getenv(d.envKey)
		if value == "" {
			log.Printf("⚠️ %s not set, skipping app default %s", d.envKey, d.criteria)
			continue
		}

		row := paymentModel.AppDefault{
			UniqueID: uuid.NewString(),
			Criteria: d.criteria,
			DataType: "STRING",
			Value:    value,
			Status:   constants.DefaultStatus,
		}
		if err := DB.Create(&row).Error; err != nil {
			log.Printf("app default seed err (%s): %v", d.criteria, err)
		} else {
			log.Printf("✅ App default seeded: %s", d.criteria)
		}
	}
}
