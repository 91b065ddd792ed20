package repositories

import (
	"errors"
	"strings"

	"property-management-backend/apperrors"
	"property-management-backend/db/models"

	"gorm.io/gorm"
)

type LocationRepository interface {
	CreateLocation(location *models.Location) (*models.Location, error)
	GetLocationByID(id uint) (*models.Location, error)
	GetLocationByCity(city string) (*models.Location, error)
	GetAllLocations() ([]models.Location, error)
	UpdateLocation(id uint, fields map[string]interface{}) error
	DeleteLocation(id uint) error
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) CreateLocation(location *models.Location) (*models.Location, error) {
	location.City = strings.TrimSpace(location.City)
	location.Address = strings.TrimSpace(location.Address)

	if err := r.db.Create(location).Error; err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.Conflict("location", "city or address")
		}
		return nil, err
	}
	return location, nil
}

func (r *locationRepository) GetLocationByID(id uint) (*models.Location, error) {
	var location models.Location
	err := r.db.First(&location, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("location", id)
		}
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) GetLocationByCity(city string) (*models.Location, error) {
	var location models.Location
	err := r.db.First(&location, "city = ?", city).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("location", city)
		}
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) GetAllLocations() ([]models.Location, error) {
	var locations []models.Location
	err := r.db.Order("city").Find(&locations).Error
	return locations, err
}

func (r *locationRepository) UpdateLocation(id uint, fields map[string]interface{}) error {
	result := r.db.Model(&models.Location{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		if apperrors.IsUniqueViolation(result.Error) {
			return apperrors.Conflict("location", "city or address")
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("location", id)
	}
	return nil
}

func (r *locationRepository) DeleteLocation(id uint) error {
	result := r.db.Delete(&models.Location{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("location", id)
	}
	return nil
}
