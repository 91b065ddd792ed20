package repositories_test

import (
	"testing"

	"property-management-backend/apperrors"
	"property-management-backend/billing/repositories"
	"property-management-backend/db/models"
	"property-management-backend/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupInvoiceRepo(t *testing.T) (*gorm.DB, repositories.InvoiceRepository) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Tenant{}, &models.Invoice{}, &models.Payment{}))
	require.NoError(t, db.Create(&models.Tenant{
		FirstName: "Ada", LastName: "Lovelace",
		Email: "ada@example.com", NINumber: "QQ123456C",
	}).Error)
	return db, repositories.NewInvoiceRepository(db)
}

func date(t *testing.T, s string) utils.DateOnly {
	d, err := utils.ParseFlexibleDate(s)
	require.NoError(t, err)
	return d
}

func storedColumn(t *testing.T, db *gorm.DB, column string, id uint) string {
	var stored string
	require.NoError(t, db.Raw("SELECT "+column+" FROM invoices WHERE id = ?", id).Scan(&stored).Error)
	return stored
}

// Updates go through a map, bypassing the DateOnly Valuer, so the update path
// must canonicalize date strings itself or the TEXT columns lose the uniform
// YYYY-MM-DD form that due-date comparisons depend on.
func TestUpdateInvoiceStoresCanonicalDates(t *testing.T) {
	db, repo := setupInvoiceRepo(t)

	created, err := repo.CreateInvoice(&models.Invoice{
		TenantID: 1, AmountDue: decimal.NewFromInt(900),
		DueDate: date(t, "2025-11-01"), IssueDate: date(t, "2025-10-01"),
	})
	require.NoError(t, err)

	// UK-style input is converted, not written through raw.
	require.NoError(t, repo.UpdateInvoice(created.ID, map[string]interface{}{
		"due_date": "01/12/2025",
	}))
	assert.Equal(t, "2025-12-01", storedColumn(t, db, "due_date", created.ID))

	// ISO input stays plain ISO text rather than an RFC 3339 timestamp.
	require.NoError(t, repo.UpdateInvoice(created.ID, map[string]interface{}{
		"due_date":   "2026-02-01",
		"issue_date": "15/01/2026",
	}))
	assert.Equal(t, "2026-02-01", storedColumn(t, db, "due_date", created.ID))
	assert.Equal(t, "2026-01-15", storedColumn(t, db, "issue_date", created.ID))

	// The overdue sweep compares due_date as text, so the updated row must
	// still be found by a plain string comparison.
	var overdue int64
	require.NoError(t, db.Model(&models.Invoice{}).
		Where("paid = ? AND due_date < ?", false, "2026-03-01").
		Count(&overdue).Error)
	assert.EqualValues(t, 1, overdue)

	reloaded, err := repo.GetInvoiceByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-01", reloaded.DueDate.String())
}

func TestUpdateInvoiceRejectsMalformedDate(t *testing.T) {
	db, repo := setupInvoiceRepo(t)

	created, err := repo.CreateInvoice(&models.Invoice{
		TenantID: 1, AmountDue: decimal.NewFromInt(250),
		DueDate: date(t, "2025-11-01"),
	})
	require.NoError(t, err)

	err = repo.UpdateInvoice(created.ID, map[string]interface{}{"due_date": "12-31-2025"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	// The row is untouched after the rejected update.
	assert.Equal(t, "2025-11-01", storedColumn(t, db, "due_date", created.ID))
}
