package repositories_test

import (
	"strconv"
	"testing"

	"property-management-backend/apperrors"
	"property-management-backend/db/models"
	"property-management-backend/leases/repositories"
	"property-management-backend/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupLeaseRepo(t *testing.T) (*gorm.DB, repositories.LeaseRepository) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Location{}, &models.Apartment{}, &models.Tenant{}, &models.LeaseAgreement{}))
	return db, repositories.NewLeaseRepository(db)
}

func date(t *testing.T, s string) utils.DateOnly {
	d, err := utils.ParseFlexibleDate(s)
	require.NoError(t, err)
	return d
}

func TestUpdateLeaseStoresCanonicalDates(t *testing.T) {
	db, repo := setupLeaseRepo(t)

	lease := models.LeaseAgreement{
		TenantID: 1, ApartmentID: 1,
		StartDate: date(t, "2026-01-01"), EndDate: date(t, "2026-12-31"),
		MonthlyRent: decimal.NewFromInt(900), Active: true,
	}
	require.NoError(t, db.Create(&lease).Error)

	require.NoError(t, repo.UpdateLease(lease.ID, map[string]interface{}{
		"start_date": "01/03/2026",
		"end_date":   "2027-02-28",
	}))

	var stored struct {
		StartDate string
		EndDate   string
	}
	require.NoError(t, db.Raw(
		"SELECT start_date, end_date FROM lease_agreements WHERE id = ?", lease.ID).
		Scan(&stored).Error)
	assert.Equal(t, "2026-03-01", stored.StartDate)
	assert.Equal(t, "2027-02-28", stored.EndDate)

	// The expiry sweep compares end_date as text; the updated lease must
	// still match a plain string comparison.
	var expired int64
	require.NoError(t, db.Model(&models.LeaseAgreement{}).
		Where("active = ? AND end_date < ?", true, "2027-03-01").
		Count(&expired).Error)
	assert.EqualValues(t, 1, expired)
}

func TestUpdateLeaseRejectsMalformedDate(t *testing.T) {
	db, repo := setupLeaseRepo(t)

	lease := models.LeaseAgreement{
		TenantID: 1, ApartmentID: 1,
		StartDate: date(t, "2026-01-01"), EndDate: date(t, "2026-12-31"),
		MonthlyRent: decimal.NewFromInt(900), Active: true,
	}
	require.NoError(t, db.Create(&lease).Error)

	err := repo.UpdateLease(lease.ID, map[string]interface{}{"end_date": "next year"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGetFilteredLeasesLocationFilter(t *testing.T) {
	db, repo := setupLeaseRepo(t)

	bristol := models.Location{City: "Bristol", Address: "12 Harbourside Wharf"}
	manchester := models.Location{City: "Manchester", Address: "4 Deansgate Square"}
	require.NoError(t, db.Create(&bristol).Error)
	require.NoError(t, db.Create(&manchester).Error)

	south := models.Apartment{LocationID: bristol.ID, Address: "Flat 1", Beds: 2, MonthlyRent: decimal.NewFromInt(900)}
	north := models.Apartment{LocationID: manchester.ID, Address: "Unit 3", Beds: 3, MonthlyRent: decimal.NewFromInt(1200)}
	require.NoError(t, db.Create(&south).Error)
	require.NoError(t, db.Create(&north).Error)

	require.NoError(t, db.Create(&models.LeaseAgreement{
		TenantID: 1, ApartmentID: south.ID,
		StartDate: date(t, "2026-01-01"), EndDate: date(t, "2026-12-31"),
		MonthlyRent: decimal.NewFromInt(900), Active: true,
	}).Error)
	require.NoError(t, db.Create(&models.LeaseAgreement{
		TenantID: 2, ApartmentID: north.ID,
		StartDate: date(t, "2026-01-01"), EndDate: date(t, "2026-12-31"),
		MonthlyRent: decimal.NewFromInt(1200), Active: true,
	}).Error)

	leases, total, err := repo.GetFilteredLeases(10, 0, map[string]string{
		"location_id": strconv.FormatUint(uint64(bristol.ID), 10),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, leases, 1)
	assert.Equal(t, south.ID, leases[0].ApartmentID)
}
