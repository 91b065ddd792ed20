package jobs_test

import (
	"context"
	"testing"

	"property-management-backend/config"
	"property-management-backend/db/models"
	"property-management-backend/jobs"
	"property-management-backend/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupReconciler(t *testing.T) (*gorm.DB, *jobs.Reconciler) {
	config.Logger = zap.NewNop()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Location{}, &models.Apartment{}, &models.Tenant{},
		&models.LeaseAgreement{}, &models.Invoice{}, &models.Payment{}))

	return db, &jobs.Reconciler{DB: db, Ctx: context.Background()}
}

func date(t *testing.T, s string) utils.DateOnly {
	d, err := utils.ParseFlexibleDate(s)
	require.NoError(t, err)
	return d
}

func TestDeactivateExpiredLeases(t *testing.T) {
	db, rec := setupReconciler(t)

	expired := models.LeaseAgreement{
		TenantID: 1, ApartmentID: 1,
		StartDate: date(t, "2020-01-01"), EndDate: date(t, "2020-12-31"),
		MonthlyRent: decimal.NewFromInt(900), Active: true,
	}
	current := models.LeaseAgreement{
		TenantID: 2, ApartmentID: 2,
		StartDate: date(t, "2020-01-01"), EndDate: date(t, "2999-12-31"),
		MonthlyRent: decimal.NewFromInt(800), Active: true,
	}
	require.NoError(t, db.Create(&expired).Error)
	require.NoError(t, db.Create(&current).Error)

	require.NoError(t, rec.DeactivateExpiredLeases())

	var after models.LeaseAgreement
	require.NoError(t, db.First(&after, expired.ID).Error)
	assert.False(t, after.Active)

	after = models.LeaseAgreement{}
	require.NoError(t, db.First(&after, current.ID).Error)
	assert.True(t, after.Active)
}

func TestReconcileOccupiedFlags(t *testing.T) {
	db, rec := setupReconciler(t)

	location := models.Location{City: "Bristol", Address: "12 Harbourside Wharf"}
	require.NoError(t, db.Create(&location).Error)

	// Drift case 1: leased but flagged vacant.
	leasedVacant := models.Apartment{
		LocationID: location.ID, Address: "Flat 1", Beds: 2,
		MonthlyRent: decimal.NewFromInt(900), Occupied: false,
	}
	// Drift case 2: flagged occupied with no active lease.
	staleOccupied := models.Apartment{
		LocationID: location.ID, Address: "Flat 2", Beds: 1,
		MonthlyRent: decimal.NewFromInt(750), Occupied: true,
	}
	// Consistent, must not change.
	trulyVacant := models.Apartment{
		LocationID: location.ID, Address: "Flat 3", Beds: 1,
		MonthlyRent: decimal.NewFromInt(700), Occupied: false,
	}
	require.NoError(t, db.Create(&leasedVacant).Error)
	require.NoError(t, db.Create(&staleOccupied).Error)
	require.NoError(t, db.Create(&trulyVacant).Error)

	lease := models.LeaseAgreement{
		TenantID: 1, ApartmentID: leasedVacant.ID,
		StartDate: date(t, "2024-01-01"), EndDate: date(t, "2999-12-31"),
		MonthlyRent: decimal.NewFromInt(900), Active: true,
	}
	require.NoError(t, db.Create(&lease).Error)

	require.NoError(t, rec.ReconcileOccupiedFlags())

	var apt models.Apartment
	require.NoError(t, db.First(&apt, leasedVacant.ID).Error)
	assert.True(t, apt.Occupied)

	apt = models.Apartment{}
	require.NoError(t, db.First(&apt, staleOccupied.ID).Error)
	assert.False(t, apt.Occupied)

	apt = models.Apartment{}
	require.NoError(t, db.First(&apt, trulyVacant.ID).Error)
	assert.False(t, apt.Occupied)
}

func TestNotifyOverdueInvoicesWithoutMailer(t *testing.T) {
	_, rec := setupReconciler(t)

	// No SMTP configured: the sweep must skip cleanly rather than fail.
	require.NoError(t, rec.NotifyOverdueInvoices())
}
