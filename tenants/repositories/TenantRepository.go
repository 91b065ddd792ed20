package repositories

import (
	"errors"
	"strings"

	"property-management-backend/apperrors"
	"property-management-backend/db/models"
	"property-management-backend/utils"

	"gorm.io/gorm"
)

type TenantRepository interface {
	CreateTenant(tenant *models.Tenant) (*models.Tenant, error)
	GetTenantByID(id uint) (*models.Tenant, error)
	GetTenantByEmail(email string) (*models.Tenant, error)
	GetFilteredTenants(pageSize int, offset int, filters map[string]string) ([]models.Tenant, int64, error)
	UpdateTenant(id uint, fields map[string]interface{}) error
	DeleteTenant(id uint) error
	ActiveLeaseLocationID(id uint) (*uint, error)
}

type tenantRepository struct {
	db *gorm.DB
}

func NewTenantRepository(db *gorm.DB) TenantRepository {
	return &tenantRepository{db: db}
}

func (r *tenantRepository) CreateTenant(tenant *models.Tenant) (*models.Tenant, error) {
	tenant.FirstName = strings.TrimSpace(tenant.FirstName)
	tenant.LastName = strings.TrimSpace(tenant.LastName)
	tenant.Email = strings.TrimSpace(strings.ToLower(tenant.Email))
	tenant.NINumber = strings.TrimSpace(tenant.NINumber)
	tenant.Phone = strings.TrimSpace(tenant.Phone)
	tenant.Occupation = strings.TrimSpace(tenant.Occupation)

	if err := r.db.Create(tenant).Error; err != nil {
		if apperrors.IsUniqueViolation(err) {
			if strings.Contains(err.Error(), "tenants.email") {
				return nil, apperrors.Conflict("tenant", "email")
			}
			return nil, apperrors.Conflict("tenant", "NI number")
		}
		return nil, err
	}
	return tenant, nil
}

func (r *tenantRepository) GetTenantByID(id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.First(&tenant, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("tenant", id)
		}
		return nil, err
	}
	return &tenant, nil
}

func (r *tenantRepository) GetTenantByEmail(email string) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.First(&tenant, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("tenant", email)
		}
		return nil, err
	}
	return &tenant, nil
}

// GetFilteredTenants retrieves tenants with filtering and pagination.
// The city filter follows the tenant's ACTIVE lease to its apartment's
// location, so tenants without an active lease do not match any city.
func (r *tenantRepository) GetFilteredTenants(pageSize int, offset int, filters map[string]string) ([]models.Tenant, int64, error) {
	var tenants []models.Tenant
	var total int64

	db := r.db.Model(&models.Tenant{})

	for key, value := range filters {
		switch key {
		case "city":
			if city := utils.NormalizeLocation(value); city != "" {
				db = db.Joins("JOIN lease_agreements ON lease_agreements.tenant_id = tenants.id AND lease_agreements.active = ?", true).
					Joins("JOIN apartments ON apartments.id = lease_agreements.apartment_id").
					Joins("JOIN locations ON locations.id = apartments.location_id").
					Where("locations.city = ?", city).
					Distinct()
			}
		case "location_id":
			// Tenants housed elsewhere are hidden; tenants with no active
			// lease stay visible so any location's staff can onboard them.
			db = db.Where(`(NOT EXISTS (
					SELECT 1 FROM lease_agreements l
					WHERE l.tenant_id = tenants.id AND l.active)
				OR EXISTS (
					SELECT 1 FROM lease_agreements l
					JOIN apartments a ON a.id = l.apartment_id
					WHERE l.tenant_id = tenants.id AND l.active AND a.location_id = ?))`, value)
		case "credit_check_status":
			db = db.Where("credit_check_status = ?", value)
		case "has_pets":
			if strings.ToLower(value) == "true" {
				db = db.Where("has_pets = ?", true)
			} else if strings.ToLower(value) == "false" {
				db = db.Where("has_pets = ?", false)
			}
		case "name":
			pattern := "%" + value + "%"
			db = db.Where("first_name LIKE ? OR last_name LIKE ?", pattern, pattern)
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Limit(pageSize).Offset(offset).Order("tenants.last_name, tenants.first_name").Find(&tenants).Error; err != nil {
		return nil, 0, err
	}

	return tenants, total, nil
}

func (r *tenantRepository) UpdateTenant(id uint, fields map[string]interface{}) error {
	if err := utils.NormalizeDateFields(fields, "date_of_birth"); err != nil {
		return err
	}
	result := r.db.Model(&models.Tenant{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		if apperrors.IsUniqueViolation(result.Error) {
			return apperrors.Conflict("tenant", "email or NI number")
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("tenant", id)
	}
	return nil
}

// ActiveLeaseLocationID resolves where a tenant currently lives. Nil means
// the tenant holds no active lease and belongs to no location partition.
func (r *tenantRepository) ActiveLeaseLocationID(id uint) (*uint, error) {
	var ids []uint
	err := r.db.Model(&models.LeaseAgreement{}).
		Joins("JOIN apartments ON apartments.id = lease_agreements.apartment_id").
		Where("lease_agreements.tenant_id = ? AND lease_agreements.active = ?", id, true).
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

func (r *tenantRepository) DeleteTenant(id uint) error {
	result := r.db.Delete(&models.Tenant{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("tenant", id)
	}
	return nil
}
