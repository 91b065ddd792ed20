package repositories_test

import (
	"testing"

	"property-management-backend/db/models"
	"property-management-backend/reports/repositories"
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

// seedPortfolio loads a two-city portfolio: Bristol has one occupied
// apartment renting at 900 and one vacant at 750, Manchester has one vacant
// apartment. The Bristol tenant has a paid invoice for 900 and an unpaid
// one for 250.
func seedPortfolio(t *testing.T) (*gorm.DB, repositories.ReportRepository) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Location{}, &models.Apartment{}, &models.Tenant{},
		&models.LeaseAgreement{}, &models.Invoice{}, &models.Payment{}))

	bristol := models.Location{City: "Bristol", Address: "12 Harbourside Wharf"}
	manchester := models.Location{City: "Manchester", Address: "4 Deansgate Square"}
	require.NoError(t, db.Create(&bristol).Error)
	require.NoError(t, db.Create(&manchester).Error)

	occupied := models.Apartment{
		LocationID: bristol.ID, Address: "Flat 1", Beds: 2,
		MonthlyRent: decimal.NewFromInt(900), Occupied: true,
	}
	vacant := models.Apartment{
		LocationID: bristol.ID, Address: "Flat 2", Beds: 1,
		MonthlyRent: decimal.NewFromInt(750),
	}
	northern := models.Apartment{
		LocationID: manchester.ID, Address: "Unit 3", Beds: 3,
		MonthlyRent: decimal.NewFromInt(1200),
	}
	require.NoError(t, db.Create(&occupied).Error)
	require.NoError(t, db.Create(&vacant).Error)
	require.NoError(t, db.Create(&northern).Error)

	tenant := models.Tenant{
		FirstName: "Ada", LastName: "Lovelace",
		Email: "ada@example.com", NINumber: "QQ123456C",
	}
	require.NoError(t, db.Create(&tenant).Error)

	lease := models.LeaseAgreement{
		TenantID: tenant.ID, ApartmentID: occupied.ID,
		StartDate: date(t, "2024-01-01"), EndDate: date(t, "2024-12-31"),
		MonthlyRent: decimal.NewFromInt(900), Active: true,
	}
	require.NoError(t, db.Create(&lease).Error)

	paid := models.Invoice{
		TenantID: tenant.ID, AmountDue: decimal.NewFromInt(900),
		DueDate: date(t, "2024-01-31"), IssueDate: date(t, "2024-01-01"), Paid: true,
	}
	unpaid := models.Invoice{
		TenantID: tenant.ID, AmountDue: decimal.NewFromInt(250),
		DueDate: date(t, "2024-02-01"), IssueDate: date(t, "2024-01-15"),
	}
	require.NoError(t, db.Create(&paid).Error)
	require.NoError(t, db.Create(&unpaid).Error)

	settlement := models.Payment{
		InvoiceID: paid.ID, TenantID: tenant.ID,
		Amount: decimal.NewFromInt(900), PaymentDate: date(t, "2024-01-20"),
	}
	require.NoError(t, db.Create(&settlement).Error)

	return db, repositories.NewReportRepository(db)
}

func TestOccupancySummaryCountsAddUp(t *testing.T) {
	_, repo := seedPortfolio(t)

	rows, err := repo.OccupancySummary("")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	for _, row := range rows {
		assert.Equal(t, row.Total, row.Occupied+row.Vacant, "city %s", row.City)
	}

	bristol := rows[0]
	assert.Equal(t, "Bristol", bristol.City)
	assert.EqualValues(t, 1, bristol.Occupied)
	assert.EqualValues(t, 1, bristol.Vacant)
	assert.EqualValues(t, 2, bristol.Total)
}

func TestOccupancySummaryCityFilter(t *testing.T) {
	_, repo := seedPortfolio(t)

	rows, err := repo.OccupancySummary("Manchester")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Manchester", rows[0].City)
	assert.EqualValues(t, 0, rows[0].Occupied)

	// "all" means no filter, same as the empty string.
	all, err := repo.OccupancySummary("all")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRevenueSummary(t *testing.T) {
	_, repo := seedPortfolio(t)

	rows, err := repo.RevenueSummary("Bristol")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// One active lease at 900; the vacant apartment contributes nothing to
	// monthly revenue but both count toward potential.
	assert.True(t, rows[0].MonthlyRevenue.Equal(decimal.NewFromInt(900)),
		"monthly revenue was %s", rows[0].MonthlyRevenue)
	assert.True(t, rows[0].PotentialRevenue.Equal(decimal.NewFromInt(1650)),
		"potential revenue was %s", rows[0].PotentialRevenue)
}

func TestFinancialSummaryOutstanding(t *testing.T) {
	_, repo := seedPortfolio(t)

	summary, err := repo.FinancialSummary("")
	require.NoError(t, err)

	assert.True(t, summary.TotalInvoiced.Equal(decimal.NewFromInt(1150)))
	assert.True(t, summary.TotalCollected.Equal(decimal.NewFromInt(900)))
	assert.True(t, summary.Outstanding.Equal(summary.TotalInvoiced.Sub(summary.TotalCollected)))
	assert.EqualValues(t, 1, summary.PaidInvoices)
	assert.EqualValues(t, 1, summary.UnpaidInvoices)
}

func TestFinancialSummaryCollectedFollowsPayments(t *testing.T) {
	db, repo := seedPortfolio(t)

	// An invoice settled for less than its face value: collected must report
	// the money actually taken, not the invoiced amount.
	discounted := models.Invoice{
		TenantID: 1, AmountDue: decimal.NewFromInt(500),
		DueDate: date(t, "2024-03-01"), IssueDate: date(t, "2024-02-01"), Paid: true,
	}
	require.NoError(t, db.Create(&discounted).Error)
	require.NoError(t, db.Create(&models.Payment{
		InvoiceID: discounted.ID, TenantID: 1,
		Amount: decimal.NewFromInt(450), PaymentDate: date(t, "2024-02-10"),
	}).Error)

	summary, err := repo.FinancialSummary("")
	require.NoError(t, err)

	assert.True(t, summary.TotalInvoiced.Equal(decimal.NewFromInt(1650)),
		"total invoiced was %s", summary.TotalInvoiced)
	assert.True(t, summary.TotalCollected.Equal(decimal.NewFromInt(1350)),
		"total collected was %s", summary.TotalCollected)
	assert.EqualValues(t, 2, summary.PaidInvoices)
	assert.EqualValues(t, 1, summary.UnpaidInvoices)
}

func TestFinancialSummaryCityScoping(t *testing.T) {
	_, repo := seedPortfolio(t)

	// The only tenant is housed in Bristol, so Manchester sees nothing.
	summary, err := repo.FinancialSummary("Manchester")
	require.NoError(t, err)
	assert.True(t, summary.TotalInvoiced.IsZero())
	assert.EqualValues(t, 0, summary.PaidInvoices)
	assert.EqualValues(t, 0, summary.UnpaidInvoices)
}

func TestLateInvoicesAsOfBoundary(t *testing.T) {
	_, repo := seedPortfolio(t)

	// Due exactly on the asOf date is not yet late.
	onDue, err := repo.LateInvoices(date(t, "2024-02-01"))
	require.NoError(t, err)
	assert.Empty(t, onDue)

	dayAfter, err := repo.LateInvoices(date(t, "2024-02-02"))
	require.NoError(t, err)
	require.Len(t, dayAfter, 1)
	assert.True(t, dayAfter[0].AmountDue.Equal(decimal.NewFromInt(250)))
	// Paid invoices never show up, however overdue.
	assert.False(t, dayAfter[0].Paid)
}

func TestRevenueTrendFillsEmptyBuckets(t *testing.T) {
	db, repo := seedPortfolio(t)

	// Add a March invoice so January..March has a hole in February.
	tenantID := uint(1)
	march := models.Invoice{
		TenantID: tenantID, AmountDue: decimal.NewFromInt(300),
		DueDate: date(t, "2024-04-01"), IssueDate: date(t, "2024-03-10"),
	}
	require.NoError(t, db.Create(&march).Error)

	buckets, err := repo.RevenueTrend("month", nil, nil)
	require.NoError(t, err)
	require.Len(t, buckets, 3)

	assert.Equal(t, "2024-01", buckets[0].Key)
	assert.Equal(t, "Jan 2024", buckets[0].Label)
	assert.True(t, buckets[0].Invoiced.Equal(decimal.NewFromInt(1150)))
	assert.True(t, buckets[0].Collected.Equal(decimal.NewFromInt(900)))

	assert.Equal(t, "2024-02", buckets[1].Key)
	assert.Equal(t, "Feb 2024", buckets[1].Label)
	assert.True(t, buckets[1].Invoiced.IsZero())

	assert.Equal(t, "2024-03", buckets[2].Key)
	assert.True(t, buckets[2].Invoiced.Equal(decimal.NewFromInt(300)))
	// Nothing has been paid against the March invoice yet.
	assert.True(t, buckets[2].Collected.IsZero())
}

func TestRevenueTrendYearGranularity(t *testing.T) {
	_, repo := seedPortfolio(t)

	buckets, err := repo.RevenueTrend("year", nil, nil)
	require.NoError(t, err)
	require.Len(t, buckets, 1)
	assert.Equal(t, "2024", buckets[0].Key)
	assert.Equal(t, "2024", buckets[0].Label)
}

func TestRevenueTrendRejectsUnknownGranularity(t *testing.T) {
	_, repo := seedPortfolio(t)

	_, err := repo.RevenueTrend("week", nil, nil)
	assert.Error(t, err)
}

func TestOccupancyTrend(t *testing.T) {
	_, repo := seedPortfolio(t)

	buckets, err := repo.OccupancyTrend("month", nil, nil)
	require.NoError(t, err)
	require.Len(t, buckets, 1)
	assert.Equal(t, "2024-01", buckets[0].Key)
	assert.EqualValues(t, 1, buckets[0].LeasesStarted)
}

func TestTrendsOnEmptyData(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Invoice{}, &models.LeaseAgreement{}))
	repo := repositories.NewReportRepository(db)

	revenue, err := repo.RevenueTrend("month", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, revenue)

	occupancy, err := repo.OccupancyTrend("month", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, occupancy)
}
