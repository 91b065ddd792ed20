package services

import (
	"errors"

	apartmentRepos "property-management-backend/apartments/repositories"
	"property-management-backend/apperrors"
	"property-management-backend/db/models"
	leaseRepos "property-management-backend/leases/repositories"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LeaseService owns the multi-table lease operations. Creating or
// terminating a lease and flipping the apartment's occupancy flag happen in
// one transaction, so a failure cannot leave the two out of sync.
type LeaseService struct {
	db            *gorm.DB
	leaseRepo     leaseRepos.LeaseRepository
	apartmentRepo apartmentRepos.ApartmentRepository
}

func NewLeaseService(db *gorm.DB, leaseRepo leaseRepos.LeaseRepository, apartmentRepo apartmentRepos.ApartmentRepository) *LeaseService {
	return &LeaseService{db: db, leaseRepo: leaseRepo, apartmentRepo: apartmentRepo}
}

// CreateLease validates the parties, inserts the lease and marks the
// apartment occupied atomically. When no rent is supplied the apartment's
// base rent is used.
func (s *LeaseService) CreateLease(lease *models.LeaseAgreement) (*models.LeaseAgreement, error) {
	fields := map[string]string{}
	if lease.TenantID == 0 {
		fields["tenant_id"] = "Tenant is required"
	}
	if lease.ApartmentID == 0 {
		fields["apartment_id"] = "Apartment is required"
	}
	if lease.StartDate.IsZero() {
		fields["start_date"] = "Start date is required"
	}
	if lease.EndDate.IsZero() {
		fields["end_date"] = "End date is required"
	}
	if !lease.StartDate.IsZero() && !lease.EndDate.IsZero() && lease.EndDate.Before(lease.StartDate) {
		fields["end_date"] = "End date must not be before start date"
	}
	if len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var tenant models.Tenant
		if err := tx.First(&tenant, lease.TenantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("tenant", lease.TenantID)
			}
			return err
		}

		var apartment models.Apartment
		if err := tx.First(&apartment, lease.ApartmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("apartment", lease.ApartmentID)
			}
			return err
		}

		if apartment.Occupied {
			return apperrors.Conflict("apartment", "active lease")
		}

		if lease.MonthlyRent.LessThanOrEqual(decimal.Zero) {
			lease.MonthlyRent = apartment.MonthlyRent
		}
		lease.Active = true

		if _, err := s.leaseRepo.CreateLease(tx, lease); err != nil {
			return err
		}
		return s.apartmentRepo.SetOccupied(tx, lease.ApartmentID, true)
	})
	if err != nil {
		return nil, err
	}
	return lease, nil
}

// TerminateLease deactivates the lease and, when no other active lease holds
// the apartment, marks the apartment vacant. Both writes share a transaction.
func (s *LeaseService) TerminateLease(id uint) (*models.LeaseAgreement, error) {
	var terminated *models.LeaseAgreement

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var lease models.LeaseAgreement
		if err := tx.First(&lease, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("lease", id)
			}
			return err
		}

		if !lease.Active {
			return apperrors.Conflict("lease", "already terminated state")
		}

		if err := s.leaseRepo.SetActive(tx, id, false); err != nil {
			return err
		}

		stillLeased, err := s.apartmentRepo.HasOtherActiveLease(tx, lease.ApartmentID, lease.ID)
		if err != nil {
			return err
		}
		if !stillLeased {
			if err := s.apartmentRepo.SetOccupied(tx, lease.ApartmentID, false); err != nil {
				return err
			}
		}

		lease.Active = false
		terminated = &lease
		return nil
	})
	if err != nil {
		return nil, err
	}
	return terminated, nil
}
