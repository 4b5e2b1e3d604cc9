package configs

import (
	"os"

	"github.com/azamatp047/shukrona-backend/entity"
)

// SeedDemo fills an empty database with a small catalog for local runs.
// Controlled by SEED_DEMO=1; production never sets it.
func SeedDemo() error {
	if os.Getenv("SEED_DEMO") != "1" {
		return nil
	}

	var cnt int64
	if err := db.Model(&entity.Product{}).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}

	products := []entity.Product{
		{Name: "Osh (1kg)", BuyPrice: 25000, SellPrice: 40000, Stock: 50},
		{Name: "Somsa", BuyPrice: 4000, SellPrice: 7000, Stock: 200},
		{Name: "Non", BuyPrice: 2000, SellPrice: 4000, Stock: 100},
	}
	return db.Create(&products).Error
}
