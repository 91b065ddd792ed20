package services

import (
	"errors"

	"property-management-backend/apperrors"
	"property-management-backend/billing/repositories"
	"property-management-backend/db/models"
	"property-management-backend/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentService enforces the payment business rules in one transaction:
// the invoice must exist, belong to the paying tenant, be unpaid, and have
// no prior payment. The invoice is marked paid in the same transaction, and
// the unique index on payments.invoice_id backs the guard under concurrency.
type PaymentService struct {
	db          *gorm.DB
	paymentRepo repositories.PaymentRepository
}

func NewPaymentService(db *gorm.DB, paymentRepo repositories.PaymentRepository) *PaymentService {
	return &PaymentService{db: db, paymentRepo: paymentRepo}
}

// RecordPayment settles an invoice. A zero amount defaults to the invoice's
// amount due; a zero date defaults to today.
func (s *PaymentService) RecordPayment(invoiceID, tenantID uint, amount decimal.Decimal, paymentDate utils.DateOnly) (*models.Payment, error) {
	var recorded *models.Payment

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var invoice models.Invoice
		if err := tx.First(&invoice, invoiceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("invoice", invoiceID)
			}
			return err
		}

		if invoice.TenantID != tenantID {
			return apperrors.NewValidationError(map[string]string{
				"tenant_id": "Tenant does not match the invoice's tenant",
			})
		}

		if invoice.Paid {
			return apperrors.Conflict("invoice", "paid status")
		}

		if _, err := s.paymentRepo.GetPaymentByInvoiceID(tx, invoiceID); err == nil {
			return apperrors.Conflict("payment", "invoice")
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}

		if amount.LessThanOrEqual(decimal.Zero) {
			amount = invoice.AmountDue
		}

		payment := &models.Payment{
			InvoiceID:   invoiceID,
			TenantID:    tenantID,
			Amount:      amount,
			PaymentDate: paymentDate,
		}
		if _, err := s.paymentRepo.CreatePayment(tx, payment); err != nil {
			return err
		}

		if err := tx.Model(&models.Invoice{}).Where("id = ?", invoiceID).Update("paid", true).Error; err != nil {
			return err
		}

		recorded = payment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recorded, nil
}
