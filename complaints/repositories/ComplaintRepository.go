package repositories

import (
	"errors"
	"strings"

	"property-management-backend/apperrors"
	"property-management-backend/db/models"

	"gorm.io/gorm"
)

type ComplaintRepository interface {
	CreateComplaint(complaint *models.Complaint) (*models.Complaint, error)
	GetComplaintByID(id uint) (*models.Complaint, error)
	GetFilteredComplaints(pageSize int, offset int, filters map[string]string) ([]models.Complaint, int64, error)
	UpdateComplaint(id uint, fields map[string]interface{}) error
	DeleteComplaint(id uint) error
	TenantLocationID(tenantID uint) (*uint, error)
}

type complaintRepository struct {
	db *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &complaintRepository{db: db}
}

func (r *complaintRepository) CreateComplaint(complaint *models.Complaint) (*models.Complaint, error) {
	var count int64
	if err := r.db.Model(&models.Tenant{}).Where("id = ?", complaint.TenantID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperrors.NotFound("tenant", complaint.TenantID)
	}

	if err := r.db.Create(complaint).Error; err != nil {
		return nil, err
	}
	return complaint, nil
}

func (r *complaintRepository) GetComplaintByID(id uint) (*models.Complaint, error) {
	var complaint models.Complaint
	err := r.db.Preload("Tenant").First(&complaint, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("complaint", id)
		}
		return nil, err
	}
	return &complaint, nil
}

func (r *complaintRepository) GetFilteredComplaints(pageSize int, offset int, filters map[string]string) ([]models.Complaint, int64, error) {
	var complaints []models.Complaint
	var total int64

	db := r.db.Model(&models.Complaint{})

	for key, value := range filters {
		switch key {
		case "resolved":
			if strings.ToLower(value) == "true" {
				db = db.Where("resolved = ?", true)
			} else if strings.ToLower(value) == "false" {
				db = db.Where("resolved = ?", false)
			}
		case "tenant_id":
			db = db.Where("tenant_id = ?", value)
		case "location_id":
			// Scoped like tenants: the complaint follows its tenant's
			// active lease, and unhoused tenants' complaints stay visible.
			db = db.Where(`(NOT EXISTS (
					SELECT 1 FROM lease_agreements l
					WHERE l.tenant_id = complaints.tenant_id AND l.active)
				OR EXISTS (
					SELECT 1 FROM lease_agreements l
					JOIN apartments a ON a.id = l.apartment_id
					WHERE l.tenant_id = complaints.tenant_id AND l.active AND a.location_id = ?))`, value)
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Limit(pageSize).Offset(offset).Order("submitted_date DESC").Preload("Tenant").Find(&complaints).Error; err != nil {
		return nil, 0, err
	}

	return complaints, total, nil
}

// TenantLocationID resolves the location of the tenant's active lease. Nil
// means the tenant is not housed anywhere at the moment.
func (r *complaintRepository) TenantLocationID(tenantID uint) (*uint, error) {
	var ids []uint
	err := r.db.Model(&models.LeaseAgreement{}).
		Joins("JOIN apartments ON apartments.id = lease_agreements.apartment_id").
		Where("lease_agreements.tenant_id = ? AND lease_agreements.active = ?", tenantID, true).
		Limit(1).
		Pluck("apartments.location_id", &ids).Error
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return &ids[0], nil
}

func (r *complaintRepository) UpdateComplaint(id uint, fields map[string]interface{}) error {
	result := r.db.Model(&models.Complaint{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("complaint", id)
	}
	return nil
}

func (r *complaintRepository) DeleteComplaint(id uint) error {
	result := r.db.Delete(&models.Complaint{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("complaint", id)
	}
	return nil
}
