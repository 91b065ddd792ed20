package config

import (
	"log"
	"time"

	"property-management-backend/db/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// allModels defines all models that should be migrated.
// This is the only place you need to add new models.
var allModels = []interface{}{
	&models.Location{},
	&models.Apartment{},
	&models.Tenant{},
	&models.LeaseAgreement{},
	&models.Invoice{},
	&models.Payment{},
	&models.Complaint{},
	&models.MaintenanceRequest{},
	&models.User{},
}

// DatabasePath resolves the SQLite file, honouring the PAMS_DB_PATH override.
func DatabasePath() string {
	if path := GetEnv("PAMS_DB_PATH"); path != "" {
		return path
	}
	return "pams.db"
}

func ConfigureDatabase() *gorm.DB {
	// _foreign_keys=on turns on SQLite foreign key enforcement for every
	// connection the pool hands out.
	dsn := DatabasePath() + "?_foreign_keys=on"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("[DB-CONNECT] Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(allModels...); err != nil {
		log.Fatalf("failed to migrate tables: %v", err)
	}
	log.Println("Tables migrated successfully")

	// Connection pool configuration. SQLite serializes writers anyway, so a
	// single open connection avoids SQLITE_BUSY churn under load.
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("[DB-POOL] Failed to get underlying DB connection: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	log.Println("[DB-STATUS] Database setup complete")
	return db
}
