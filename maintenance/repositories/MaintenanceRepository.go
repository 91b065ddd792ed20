package repositories

import (
	"errors"
	"strings"

	"property-management-backend/apperrors"
	"property-management-backend/db/models"
	"property-management-backend/utils"

	"gorm.io/gorm"
)

type MaintenanceRepository interface {
	CreateRequest(request *models.MaintenanceRequest) (*models.MaintenanceRequest, error)
	GetRequestByID(id uint) (*models.MaintenanceRequest, error)
	GetFilteredRequests(pageSize int, offset int, filters map[string]string) ([]models.MaintenanceRequest, int64, error)
	UpdateRequest(id uint, fields map[string]interface{}) error
	DeleteRequest(id uint) error
	ApartmentLocationID(apartmentID uint) (uint, error)
}

type maintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

func (r *maintenanceRepository) CreateRequest(request *models.MaintenanceRequest) (*models.MaintenanceRequest, error) {
	var count int64
	if err := r.db.Model(&models.Apartment{}).Where("id = ?", request.ApartmentID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperrors.NotFound("apartment", request.ApartmentID)
	}

	if err := r.db.Model(&models.Tenant{}).Where("id = ?", request.TenantID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperrors.NotFound("tenant", request.TenantID)
	}

	if err := r.db.Create(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}

func (r *maintenanceRepository) GetRequestByID(id uint) (*models.MaintenanceRequest, error) {
	var request models.MaintenanceRequest
	err := r.db.Preload("Apartment").Preload("Tenant").First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("maintenance request", id)
		}
		return nil, err
	}
	return &request, nil
}

func (r *maintenanceRepository) GetFilteredRequests(pageSize int, offset int, filters map[string]string) ([]models.MaintenanceRequest, int64, error) {
	var requests []models.MaintenanceRequest
	var total int64

	db := r.db.Model(&models.MaintenanceRequest{})

	for key, value := range filters {
		switch key {
		case "completed":
			if strings.ToLower(value) == "true" {
				db = db.Where("completed = ?", true)
			} else if strings.ToLower(value) == "false" {
				db = db.Where("completed = ?", false)
			}
		case "apartment_id":
			db = db.Where("apartment_id = ?", value)
		case "tenant_id":
			db = db.Where("tenant_id = ?", value)
		case "min_priority":
			db = db.Where("priority >= ?", value)
		case "location_id":
			db = db.Where("maintenance_requests.apartment_id IN (SELECT id FROM apartments WHERE location_id = ?)", value)
		case "city":
			if city := utils.NormalizeLocation(value); city != "" {
				db = db.Joins("JOIN apartments ON apartments.id = maintenance_requests.apartment_id").
					Joins("JOIN locations ON locations.id = apartments.location_id").
					Where("locations.city = ?", city)
			}
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Limit(pageSize).Offset(offset).Order("priority DESC, reported_date").
		Preload("Apartment").Preload("Tenant").Find(&requests).Error; err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *maintenanceRepository) UpdateRequest(id uint, fields map[string]interface{}) error {
	if err := utils.NormalizeDateFields(fields, "scheduled_date", "reported_date"); err != nil {
		return err
	}
	result := r.db.Model(&models.MaintenanceRequest{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("maintenance request", id)
	}
	return nil
}

// ApartmentLocationID resolves which location an apartment belongs to.
func (r *maintenanceRepository) ApartmentLocationID(apartmentID uint) (uint, error) {
	var apartment models.Apartment
	err := r.db.Select("location_id").First(&apartment, apartmentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.NotFound("apartment", apartmentID)
		}
		return 0, err
	}
	return apartment.LocationID, nil
}

func (r *maintenanceRepository) DeleteRequest(id uint) error {
	result := r.db.Delete(&models.MaintenanceRequest{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("maintenance request", id)
	}
	return nil
}
