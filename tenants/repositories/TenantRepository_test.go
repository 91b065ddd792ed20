package repositories_test

import (
	"strconv"
	"testing"

	"property-management-backend/apperrors"
	"property-management-backend/db/models"
	"property-management-backend/tenants/repositories"
	"property-management-backend/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Tenant{}, &models.LeaseAgreement{}, &models.Apartment{}, &models.Location{}))
	return db
}

func newTenant(email, ni string) *models.Tenant {
	return &models.Tenant{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     email,
		NINumber:  ni,
	}
}

func TestCreateTenantTrimsAndLowercases(t *testing.T) {
	repo := repositories.NewTenantRepository(setupTestDB(t))

	created, err := repo.CreateTenant(&models.Tenant{
		FirstName: "  Ada ",
		LastName:  " Lovelace  ",
		Email:     "  Ada.Lovelace@Example.COM ",
		NINumber:  " QQ123456C ",
		Phone:     " 07700 900123 ",
	})
	require.NoError(t, err)

	fetched, err := repo.GetTenantByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", fetched.FirstName)
	assert.Equal(t, "Lovelace", fetched.LastName)
	assert.Equal(t, "ada.lovelace@example.com", fetched.Email)
	assert.Equal(t, "QQ123456C", fetched.NINumber)
	assert.Equal(t, "07700 900123", fetched.Phone)
}

func TestCreateTenantDuplicateEmail(t *testing.T) {
	repo := repositories.NewTenantRepository(setupTestDB(t))

	_, err := repo.CreateTenant(newTenant("dup@example.com", "QQ111111A"))
	require.NoError(t, err)

	_, err = repo.CreateTenant(newTenant("dup@example.com", "QQ222222B"))
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestCreateTenantDuplicateNINumber(t *testing.T) {
	repo := repositories.NewTenantRepository(setupTestDB(t))

	_, err := repo.CreateTenant(newTenant("first@example.com", "QQ333333C"))
	require.NoError(t, err)

	_, err = repo.CreateTenant(newTenant("second@example.com", "QQ333333C"))
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestGetTenantByIDMissing(t *testing.T) {
	repo := repositories.NewTenantRepository(setupTestDB(t))

	_, err := repo.GetTenantByID(12345)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteTenantMissing(t *testing.T) {
	repo := repositories.NewTenantRepository(setupTestDB(t))

	err := repo.DeleteTenant(999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateTenantMissing(t *testing.T) {
	repo := repositories.NewTenantRepository(setupTestDB(t))

	err := repo.UpdateTenant(999, map[string]interface{}{"phone": "0123"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateTenantStoresCanonicalDateOfBirth(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewTenantRepository(db)

	created, err := repo.CreateTenant(newTenant("dob@example.com", "QQ444444D"))
	require.NoError(t, err)

	// Map updates skip the DateOnly Valuer, so the repository has to
	// canonicalize the string itself before it reaches the TEXT column.
	require.NoError(t, repo.UpdateTenant(created.ID, map[string]interface{}{
		"date_of_birth": "02/03/1990",
	}))

	var stored string
	require.NoError(t, db.Raw(
		"SELECT date_of_birth FROM tenants WHERE id = ?", created.ID).
		Scan(&stored).Error)
	assert.Equal(t, "1990-03-02", stored)

	err = repo.UpdateTenant(created.ID, map[string]interface{}{"date_of_birth": "yesterday"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

// housedTenant creates a tenant with an active lease on a new apartment in
// the given location.
func housedTenant(t *testing.T, db *gorm.DB, repo repositories.TenantRepository, email, ni string, locationID uint) *models.Tenant {
	tenant, err := repo.CreateTenant(newTenant(email, ni))
	require.NoError(t, err)

	apartment := models.Apartment{
		LocationID: locationID, Address: "Flat for " + email, Beds: 2,
		MonthlyRent: decimal.NewFromInt(900), Occupied: true,
	}
	require.NoError(t, db.Create(&apartment).Error)

	start, err := utils.ParseFlexibleDate("2026-01-01")
	require.NoError(t, err)
	end, err := utils.ParseFlexibleDate("2026-12-31")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.LeaseAgreement{
		TenantID: tenant.ID, ApartmentID: apartment.ID,
		StartDate: start, EndDate: end,
		MonthlyRent: decimal.NewFromInt(900), Active: true,
	}).Error)
	return tenant
}

func TestGetFilteredTenantsLocationFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewTenantRepository(db)

	bristol := models.Location{City: "Bristol", Address: "12 Harbourside Wharf"}
	manchester := models.Location{City: "Manchester", Address: "4 Deansgate Square"}
	require.NoError(t, db.Create(&bristol).Error)
	require.NoError(t, db.Create(&manchester).Error)

	local := housedTenant(t, db, repo, "local@example.com", "QQ555555A", bristol.ID)
	housedTenant(t, db, repo, "remote@example.com", "QQ666666B", manchester.ID)
	unhoused, err := repo.CreateTenant(newTenant("new@example.com", "QQ777777C"))
	require.NoError(t, err)

	tenants, total, err := repo.GetFilteredTenants(10, 0, map[string]string{
		"location_id": strconv.FormatUint(uint64(bristol.ID), 10),
	})
	require.NoError(t, err)

	// The Bristol resident and the not-yet-housed tenant are visible; the
	// Manchester resident is not.
	assert.EqualValues(t, 2, total)
	ids := make(map[uint]bool, len(tenants))
	for _, tenant := range tenants {
		ids[tenant.ID] = true
	}
	assert.True(t, ids[local.ID])
	assert.True(t, ids[unhoused.ID])
}

func TestActiveLeaseLocationID(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewTenantRepository(db)

	bristol := models.Location{City: "Bristol", Address: "12 Harbourside Wharf"}
	require.NoError(t, db.Create(&bristol).Error)

	housed := housedTenant(t, db, repo, "housed@example.com", "QQ888888D", bristol.ID)
	unhoused, err := repo.CreateTenant(newTenant("floating@example.com", "QQ999999E"))
	require.NoError(t, err)

	loc, err := repo.ActiveLeaseLocationID(housed.ID)
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, bristol.ID, *loc)

	loc, err = repo.ActiveLeaseLocationID(unhoused.ID)
	require.NoError(t, err)
	assert.Nil(t, loc)
}
