package models

import (
	"time"

	"property-management-backend/utils"

	"github.com/shopspring/decimal"
)

// LeaseAgreement links a tenant to an apartment for a date range. The rent on
// the lease may diverge from the apartment's base rent (negotiated rates).
// Active is settable independently of the date range: an expired lease stays
// active until terminated or swept by the reconciliation job.
type LeaseAgreement struct {
	ID          uint `gorm:"primaryKey;autoIncrement" json:"id"`
	TenantID    uint `gorm:"not null;index" json:"tenant_id"`
	ApartmentID uint `gorm:"not null;index" json:"apartment_id"`

	StartDate   utils.DateOnly  `gorm:"type:date;not null" json:"start_date"`
	EndDate     utils.DateOnly  `gorm:"type:date;not null" json:"end_date"`
	MonthlyRent decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"monthly_rent"`
	Active      bool            `gorm:"default:true;index" json:"active"`

	Tenant    *Tenant    `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Apartment *Apartment `gorm:"foreignKey:ApartmentID" json:"apartment,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
