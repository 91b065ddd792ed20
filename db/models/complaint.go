package models

import (
	"time"

	"property-management-backend/utils"
)

// Complaint is a tenant-submitted issue tracked to resolution.
type Complaint struct {
	ID       uint `gorm:"primaryKey;autoIncrement" json:"id"`
	TenantID uint `gorm:"not null;index" json:"tenant_id"`

	Description   string         `gorm:"type:text;not null" json:"description"`
	SubmittedDate utils.DateOnly `gorm:"type:date;not null" json:"submitted_date"`
	Resolved      bool           `gorm:"default:false;index" json:"resolved"`

	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
