package repositories

import (
	"errors"
	"strings"

	"property-management-backend/apperrors"
	"property-management-backend/db/models"
	"property-management-backend/utils"

	"gorm.io/gorm"
)

type LeaseRepository interface {
	CreateLease(tx *gorm.DB, lease *models.LeaseAgreement) (*models.LeaseAgreement, error)
	GetLeaseByID(id uint) (*models.LeaseAgreement, error)
	GetFilteredLeases(pageSize int, offset int, filters map[string]string) ([]models.LeaseAgreement, int64, error)
	UpdateLease(id uint, fields map[string]interface{}) error
	DeleteLease(id uint) error
	SetActive(tx *gorm.DB, id uint, active bool) error
}

type leaseRepository struct {
	db *gorm.DB
}

func NewLeaseRepository(db *gorm.DB) LeaseRepository {
	return &leaseRepository{db: db}
}

func (r *leaseRepository) CreateLease(tx *gorm.DB, lease *models.LeaseAgreement) (*models.LeaseAgreement, error) {
	if err := tx.Create(lease).Error; err != nil {
		return nil, err
	}
	return lease, nil
}

func (r *leaseRepository) GetLeaseByID(id uint) (*models.LeaseAgreement, error) {
	var lease models.LeaseAgreement
	err := r.db.Preload("Tenant").Preload("Apartment").First(&lease, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("lease", id)
		}
		return nil, err
	}
	return &lease, nil
}

func (r *leaseRepository) GetFilteredLeases(pageSize int, offset int, filters map[string]string) ([]models.LeaseAgreement, int64, error) {
	var leases []models.LeaseAgreement
	var total int64

	db := r.db.Model(&models.LeaseAgreement{})

	for key, value := range filters {
		switch key {
		case "active":
			if strings.ToLower(value) == "true" {
				db = db.Where("active = ?", true)
			} else if strings.ToLower(value) == "false" {
				db = db.Where("active = ?", false)
			}
		case "tenant_id":
			db = db.Where("tenant_id = ?", value)
		case "apartment_id":
			db = db.Where("apartment_id = ?", value)
		case "location_id":
			db = db.Where("lease_agreements.apartment_id IN (SELECT id FROM apartments WHERE location_id = ?)", value)
		case "city":
			if city := utils.NormalizeLocation(value); city != "" {
				db = db.Joins("JOIN apartments ON apartments.id = lease_agreements.apartment_id").
					Joins("JOIN locations ON locations.id = apartments.location_id").
					Where("locations.city = ?", city)
			}
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Limit(pageSize).Offset(offset).Order("lease_agreements.start_date DESC").
		Preload("Tenant").Preload("Apartment").Find(&leases).Error; err != nil {
		return nil, 0, err
	}

	return leases, total, nil
}

func (r *leaseRepository) UpdateLease(id uint, fields map[string]interface{}) error {
	if err := utils.NormalizeDateFields(fields, "start_date", "end_date"); err != nil {
		return err
	}
	result := r.db.Model(&models.LeaseAgreement{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("lease", id)
	}
	return nil
}

func (r *leaseRepository) DeleteLease(id uint) error {
	result := r.db.Delete(&models.LeaseAgreement{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("lease", id)
	}
	return nil
}

func (r *leaseRepository) SetActive(tx *gorm.DB, id uint, active bool) error {
	result := tx.Model(&models.LeaseAgreement{}).Where("id = ?", id).Update("active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("lease", id)
	}
	return nil
}
