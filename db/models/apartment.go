package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Apartment is a rentable unit within a location. Occupied is denormalized
// against active leases; the daily reconciliation job re-derives it so it
// cannot drift for longer than a day.
type Apartment struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	LocationID uint   `gorm:"not null;index" json:"location_id"`
	Address    string `gorm:"not null" json:"address"`
	Beds       int    `gorm:"not null" json:"beds"`

	MonthlyRent decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"monthly_rent"`
	Occupied    bool            `gorm:"default:false" json:"occupied"`

	Location            *Location            `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	Leases              []LeaseAgreement     `gorm:"foreignKey:ApartmentID" json:"leases,omitempty"`
	MaintenanceRequests []MaintenanceRequest `gorm:"foreignKey:ApartmentID" json:"maintenance_requests,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
