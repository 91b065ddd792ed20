package repositories

import (
	"errors"
	"strings"

	"property-management-backend/apperrors"
	"property-management-backend/db/models"
	"property-management-backend/utils"

	"gorm.io/gorm"
)

type InvoiceRepository interface {
	CreateInvoice(invoice *models.Invoice) (*models.Invoice, error)
	GetInvoiceByID(id uint) (*models.Invoice, error)
	GetFilteredInvoices(pageSize int, offset int, filters map[string]string) ([]models.Invoice, int64, error)
	UpdateInvoice(id uint, fields map[string]interface{}) error
	DeleteInvoice(id uint) error
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) CreateInvoice(invoice *models.Invoice) (*models.Invoice, error) {
	var count int64
	if err := r.db.Model(&models.Tenant{}).Where("id = ?", invoice.TenantID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperrors.NotFound("tenant", invoice.TenantID)
	}

	if invoice.IssueDate.IsZero() {
		invoice.IssueDate = utils.Today()
	}

	if err := r.db.Create(invoice).Error; err != nil {
		return nil, err
	}
	return invoice, nil
}

func (r *invoiceRepository) GetInvoiceByID(id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.Preload("Tenant").Preload("Payment").First(&invoice, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("invoice", id)
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) GetFilteredInvoices(pageSize int, offset int, filters map[string]string) ([]models.Invoice, int64, error) {
	var invoices []models.Invoice
	var total int64

	db := r.db.Model(&models.Invoice{})

	for key, value := range filters {
		switch key {
		case "paid":
			if strings.ToLower(value) == "true" {
				db = db.Where("paid = ?", true)
			} else if strings.ToLower(value) == "false" {
				db = db.Where("paid = ?", false)
			}
		case "tenant_id":
			db = db.Where("tenant_id = ?", value)
		case "due_before":
			if d, err := utils.ParseFlexibleDate(value); err == nil {
				db = db.Where("due_date < ?", d.String())
			}
		case "due_after":
			if d, err := utils.ParseFlexibleDate(value); err == nil {
				db = db.Where("due_date > ?", d.String())
			}
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Limit(pageSize).Offset(offset).Order("due_date DESC").Preload("Tenant").Find(&invoices).Error; err != nil {
		return nil, 0, err
	}

	return invoices, total, nil
}

func (r *invoiceRepository) UpdateInvoice(id uint, fields map[string]interface{}) error {
	if err := utils.NormalizeDateFields(fields, "due_date", "issue_date"); err != nil {
		return err
	}
	result := r.db.Model(&models.Invoice{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("invoice", id)
	}
	return nil
}

func (r *invoiceRepository) DeleteInvoice(id uint) error {
	result := r.db.Delete(&models.Invoice{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("invoice", id)
	}
	return nil
}
