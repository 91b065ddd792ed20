package models

import (
	"time"

	"property-management-backend/utils"

	"github.com/shopspring/decimal"
)

// Invoice bills a tenant for an amount due by a date.
type Invoice struct {
	ID       uint `gorm:"primaryKey;autoIncrement" json:"id"`
	TenantID uint `gorm:"not null;index" json:"tenant_id"`

	AmountDue decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount_due"`
	DueDate   utils.DateOnly  `gorm:"type:date;not null;index" json:"due_date"`
	IssueDate utils.DateOnly  `gorm:"type:date;not null" json:"issue_date"`
	Paid      bool            `gorm:"default:false;index" json:"paid"`

	Tenant  *Tenant  `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Payment *Payment `gorm:"foreignKey:InvoiceID" json:"payment,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
