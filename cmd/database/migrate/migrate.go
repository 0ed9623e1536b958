package migration

import (
	"StockPilot-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []struct {
		name  string
		model any
	}{
		{"user", &entities.User{}},
		{"store", &entities.Store{}},
		{"product", &entities.Product{}},
		{"inventory item", &entities.InventoryItem{}},
		{"inventory adjustment", &entities.InventoryAdjustment{}},
		{"sale", &entities.Sale{}},
		{"barcode scan", &entities.BarcodeScan{}},
		{"transaction", &entities.Transaction{}},
		{"kv entry", &entities.KVEntry{}},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			log.Fatalf("Error migrating %s database: %v", m.name, err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
