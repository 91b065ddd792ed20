package repositories

import (
	"errors"
	"strings"

	"property-management-backend/apperrors"
	"property-management-backend/db/models"
	"property-management-backend/utils"

	"gorm.io/gorm"
)

type ApartmentRepository interface {
	CreateApartment(apartment *models.Apartment) (*models.Apartment, error)
	GetApartmentByID(id uint) (*models.Apartment, error)
	GetFilteredApartments(pageSize int, offset int, filters map[string]string) ([]models.Apartment, int64, error)
	UpdateApartment(id uint, fields map[string]interface{}) error
	DeleteApartment(id uint) error
	SetOccupied(tx *gorm.DB, apartmentID uint, occupied bool) error
	HasOtherActiveLease(tx *gorm.DB, apartmentID uint, excludeLeaseID uint) (bool, error)
}

type apartmentRepository struct {
	db *gorm.DB
}

func NewApartmentRepository(db *gorm.DB) ApartmentRepository {
	return &apartmentRepository{db: db}
}

func (r *apartmentRepository) CreateApartment(apartment *models.Apartment) (*models.Apartment, error) {
	// The referenced location must exist; SQLite FK enforcement reports it,
	// but a typed error is friendlier than a driver message.
	var count int64
	if err := r.db.Model(&models.Location{}).Where("id = ?", apartment.LocationID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperrors.NotFound("location", apartment.LocationID)
	}

	if err := r.db.Create(apartment).Error; err != nil {
		return nil, err
	}
	return apartment, nil
}

func (r *apartmentRepository) GetApartmentByID(id uint) (*models.Apartment, error) {
	var apartment models.Apartment
	err := r.db.Preload("Location").First(&apartment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("apartment", id)
		}
		return nil, err
	}
	return &apartment, nil
}

// GetFilteredApartments retrieves apartments with filtering and pagination
func (r *apartmentRepository) GetFilteredApartments(pageSize int, offset int, filters map[string]string) ([]models.Apartment, int64, error) {
	var apartments []models.Apartment
	var total int64

	db := r.db.Model(&models.Apartment{})

	for key, value := range filters {
		switch key {
		case "city":
			if city := utils.NormalizeLocation(value); city != "" {
				db = db.Joins("JOIN locations ON locations.id = apartments.location_id").
					Where("locations.city = ?", city)
			}
		case "location_id":
			db = db.Where("apartments.location_id = ?", value)
		case "occupied":
			if strings.ToLower(value) == "true" {
				db = db.Where("occupied = ?", true)
			} else if strings.ToLower(value) == "false" {
				db = db.Where("occupied = ?", false)
			}
		case "min_beds":
			db = db.Where("beds >= ?", value)
		case "max_rent":
			db = db.Where("monthly_rent <= ?", value)
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Limit(pageSize).Offset(offset).Order("apartments.id").Preload("Location").Find(&apartments).Error; err != nil {
		return nil, 0, err
	}

	return apartments, total, nil
}

func (r *apartmentRepository) UpdateApartment(id uint, fields map[string]interface{}) error {
	result := r.db.Model(&models.Apartment{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("apartment", id)
	}
	return nil
}

func (r *apartmentRepository) DeleteApartment(id uint) error {
	result := r.db.Delete(&models.Apartment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("apartment", id)
	}
	return nil
}

// SetOccupied flips the denormalized occupancy flag inside the caller's
// transaction, so lease and apartment state move together.
func (r *apartmentRepository) SetOccupied(tx *gorm.DB, apartmentID uint, occupied bool) error {
	result := tx.Model(&models.Apartment{}).Where("id = ?", apartmentID).Update("occupied", occupied)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("apartment", apartmentID)
	}
	return nil
}

// HasOtherActiveLease reports whether the apartment still has an active lease
// other than the one being terminated.
func (r *apartmentRepository) HasOtherActiveLease(tx *gorm.DB, apartmentID uint, excludeLeaseID uint) (bool, error) {
	var count int64
	err := tx.Model(&models.LeaseAgreement{}).
		Where("apartment_id = ? AND active = ? AND id <> ?", apartmentID, true, excludeLeaseID).
		Count(&count).Error
	return count > 0, err
}
