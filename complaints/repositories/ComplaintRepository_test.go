package repositories_test

import (
	"strconv"
	"testing"

	"property-management-backend/complaints/repositories"
	"property-management-backend/db/models"
	"property-management-backend/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func date(t *testing.T, s string) utils.DateOnly {
	d, err := utils.ParseFlexibleDate(s)
	require.NoError(t, err)
	return d
}

// setupComplaintRepo seeds a Bristol resident, a Manchester resident and an
// unhoused tenant, each with one open complaint.
func setupComplaintRepo(t *testing.T) (repositories.ComplaintRepository, models.Location, []models.Tenant) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Location{}, &models.Apartment{}, &models.Tenant{},
		&models.LeaseAgreement{}, &models.Complaint{}))

	bristol := models.Location{City: "Bristol", Address: "12 Harbourside Wharf"}
	manchester := models.Location{City: "Manchester", Address: "4 Deansgate Square"}
	require.NoError(t, db.Create(&bristol).Error)
	require.NoError(t, db.Create(&manchester).Error)

	tenants := []models.Tenant{
		{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", NINumber: "QQ111111A"},
		{FirstName: "Mary", LastName: "Shelley", Email: "mary@example.com", NINumber: "QQ222222B"},
		{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com", NINumber: "QQ333333C"},
	}
	for i := range tenants {
		require.NoError(t, db.Create(&tenants[i]).Error)
	}

	// Ada lives in Bristol, Mary in Manchester, Grace holds no lease.
	for i, locationID := range []uint{bristol.ID, manchester.ID} {
		apartment := models.Apartment{
			LocationID: locationID, Address: "Flat " + strconv.Itoa(i+1),
			Beds: 2, MonthlyRent: decimal.NewFromInt(900), Occupied: true,
		}
		require.NoError(t, db.Create(&apartment).Error)
		require.NoError(t, db.Create(&models.LeaseAgreement{
			TenantID: tenants[i].ID, ApartmentID: apartment.ID,
			StartDate: date(t, "2026-01-01"), EndDate: date(t, "2026-12-31"),
			MonthlyRent: decimal.NewFromInt(900), Active: true,
		}).Error)
	}

	repo := repositories.NewComplaintRepository(db)
	for i := range tenants {
		_, err := repo.CreateComplaint(&models.Complaint{
			TenantID:      tenants[i].ID,
			Description:   "Noise at night",
			SubmittedDate: date(t, "2026-02-01"),
		})
		require.NoError(t, err)
	}

	return repo, bristol, tenants
}

func TestGetFilteredComplaintsLocationFilter(t *testing.T) {
	repo, bristol, tenants := setupComplaintRepo(t)

	complaints, total, err := repo.GetFilteredComplaints(10, 0, map[string]string{
		"location_id": strconv.FormatUint(uint64(bristol.ID), 10),
	})
	require.NoError(t, err)

	// The Bristol resident's complaint and the unhoused tenant's complaint
	// are visible; the Manchester resident's is not.
	assert.EqualValues(t, 2, total)
	for _, complaint := range complaints {
		assert.NotEqual(t, tenants[1].ID, complaint.TenantID)
	}
}

func TestComplaintTenantLocationID(t *testing.T) {
	repo, bristol, tenants := setupComplaintRepo(t)

	loc, err := repo.TenantLocationID(tenants[0].ID)
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.Equal(t, bristol.ID, *loc)

	loc, err = repo.TenantLocationID(tenants[2].ID)
	require.NoError(t, err)
	assert.Nil(t, loc)
}
