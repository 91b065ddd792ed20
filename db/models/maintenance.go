package models

import (
	"time"

	"property-management-backend/utils"

	"github.com/shopspring/decimal"
)

// MaintenanceRequest is reported against an apartment by a tenant.
// Priority runs 1 (low) to 5 (urgent).
type MaintenanceRequest struct {
	ID          uint `gorm:"primaryKey;autoIncrement" json:"id"`
	ApartmentID uint `gorm:"not null;index" json:"apartment_id"`
	TenantID    uint `gorm:"not null;index" json:"tenant_id"`

	Description   string           `gorm:"type:text;not null" json:"description"`
	Priority      int              `gorm:"not null" json:"priority"`
	ReportedDate  utils.DateOnly   `gorm:"type:date;not null" json:"reported_date"`
	ScheduledDate *utils.DateOnly  `gorm:"type:date" json:"scheduled_date"`
	Completed     bool             `gorm:"default:false;index" json:"completed"`
	Cost          *decimal.Decimal `gorm:"type:decimal(10,2)" json:"cost"`

	Apartment *Apartment `gorm:"foreignKey:ApartmentID" json:"apartment,omitempty"`
	Tenant    *Tenant    `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
