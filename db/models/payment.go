package models

import (
	"time"

	"property-management-backend/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment settles exactly one invoice. The unique index on InvoiceID backs
// the one-payment-per-invoice rule at the schema level, so two concurrent
// callers cannot both slip past the service-layer guard.
type Payment struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	InvoiceID uint `gorm:"not null;uniqueIndex" json:"invoice_id"`
	TenantID  uint `gorm:"not null;index" json:"tenant_id"`

	PaymentDate   utils.DateOnly  `gorm:"type:date;not null" json:"payment_date"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	ReceiptNumber string          `gorm:"uniqueIndex;not null" json:"receipt_number"`

	Invoice *Invoice `gorm:"foreignKey:InvoiceID" json:"invoice,omitempty"`
	Tenant  *Tenant  `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Generate a receipt number before saving when the caller did not supply one.
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ReceiptNumber == "" {
		p.ReceiptNumber = utils.NewReceiptNumber()
	}
	if p.PaymentDate.IsZero() {
		p.PaymentDate = utils.Today()
	}
	return nil
}
