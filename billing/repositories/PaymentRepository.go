package repositories

import (
	"errors"
	"strings"

	"property-management-backend/apperrors"
	"property-management-backend/db/models"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	CreatePayment(tx *gorm.DB, payment *models.Payment) (*models.Payment, error)
	GetPaymentByID(id uint) (*models.Payment, error)
	GetPaymentByInvoiceID(tx *gorm.DB, invoiceID uint) (*models.Payment, error)
	GetFilteredPayments(pageSize int, offset int, filters map[string]string) ([]models.Payment, int64, error)
	DeletePayment(id uint) error
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) CreatePayment(tx *gorm.DB, payment *models.Payment) (*models.Payment, error) {
	if err := tx.Create(payment).Error; err != nil {
		if apperrors.IsUniqueViolation(err) {
			// Unique index on invoice_id: a concurrent caller won the race.
			return nil, apperrors.Conflict("payment", "invoice")
		}
		return nil, err
	}
	return payment, nil
}

func (r *paymentRepository) GetPaymentByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.Preload("Invoice").Preload("Tenant").First(&payment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("payment", id)
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) GetPaymentByInvoiceID(tx *gorm.DB, invoiceID uint) (*models.Payment, error) {
	var payment models.Payment
	err := tx.First(&payment, "invoice_id = ?", invoiceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("payment for invoice", invoiceID)
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) GetFilteredPayments(pageSize int, offset int, filters map[string]string) ([]models.Payment, int64, error) {
	var payments []models.Payment
	var total int64

	db := r.db.Model(&models.Payment{})

	for key, value := range filters {
		switch key {
		case "tenant_id":
			db = db.Where("tenant_id = ?", value)
		case "invoice_id":
			db = db.Where("invoice_id = ?", value)
		case "receipt_number":
			db = db.Where("receipt_number = ?", strings.TrimSpace(value))
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Limit(pageSize).Offset(offset).Order("payment_date DESC").Preload("Invoice").Find(&payments).Error; err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}

func (r *paymentRepository) DeletePayment(id uint) error {
	result := r.db.Delete(&models.Payment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("payment", id)
	}
	return nil
}
