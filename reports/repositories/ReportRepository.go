package repositories

import (
	"fmt"
	"time"

	"property-management-backend/db/models"
	"property-management-backend/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OccupancyRow summarizes one location's apartments.
type OccupancyRow struct {
	LocationID uint   `json:"location_id"`
	City       string `json:"city"`
	Occupied   int64  `json:"occupied"`
	Vacant     int64  `json:"vacant"`
	Total      int64  `json:"total"`
}

// RevenueRow carries both the realized rent roll (active leases) and the
// ceiling (base rents of every apartment) for one location.
type RevenueRow struct {
	LocationID       uint            `json:"location_id"`
	City             string          `json:"city"`
	MonthlyRevenue   decimal.Decimal `json:"monthly_revenue"`
	PotentialRevenue decimal.Decimal `json:"potential_revenue"`
}

type FinancialSummary struct {
	TotalInvoiced  decimal.Decimal `json:"total_invoiced"`
	TotalCollected decimal.Decimal `json:"total_collected"`
	Outstanding    decimal.Decimal `json:"outstanding"`
	PaidInvoices   int64           `json:"paid_invoices"`
	UnpaidInvoices int64           `json:"unpaid_invoices"`
}

// RevenueBucket is one period of the revenue trend series.
type RevenueBucket struct {
	Key       string          `json:"key"`
	Label     string          `json:"label"`
	Invoiced  decimal.Decimal `json:"invoiced"`
	Collected decimal.Decimal `json:"collected"`
}

// OccupancyBucket counts leases started in one period.
type OccupancyBucket struct {
	Key           string `json:"key"`
	Label         string `json:"label"`
	LeasesStarted int64  `json:"leases_started"`
}

type ReportRepository interface {
	OccupancySummary(city string) ([]OccupancyRow, error)
	RevenueSummary(city string) ([]RevenueRow, error)
	FinancialSummary(city string) (*FinancialSummary, error)
	LateInvoices(asOf utils.DateOnly) ([]models.Invoice, error)
	RevenueTrend(granularity string, from, to *utils.DateOnly) ([]RevenueBucket, error)
	OccupancyTrend(granularity string, from, to *utils.DateOnly) ([]OccupancyBucket, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) OccupancySummary(city string) ([]OccupancyRow, error) {
	var rows []OccupancyRow

	db := r.db.Model(&models.Location{}).
		Select(`locations.id AS location_id,
			locations.city AS city,
			COALESCE(SUM(CASE WHEN apartments.occupied THEN 1 ELSE 0 END), 0) AS occupied,
			COALESCE(SUM(CASE WHEN apartments.id IS NOT NULL AND NOT apartments.occupied THEN 1 ELSE 0 END), 0) AS vacant,
			COUNT(apartments.id) AS total`).
		Joins("LEFT JOIN apartments ON apartments.location_id = locations.id").
		Group("locations.id, locations.city").
		Order("locations.city")

	if city = utils.NormalizeLocation(city); city != "" {
		db = db.Where("locations.city = ?", city)
	}

	if err := db.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) RevenueSummary(city string) ([]RevenueRow, error) {
	var rows []RevenueRow

	// Active-lease rents and apartment base rents aggregated in one pass.
	// A correlated join would double-count apartments with lease history,
	// so the lease side is restricted to active rows.
	db := r.db.Model(&models.Location{}).
		Select(`locations.id AS location_id,
			locations.city AS city,
			COALESCE((SELECT SUM(l.monthly_rent) FROM lease_agreements l
				JOIN apartments a ON a.id = l.apartment_id
				WHERE l.active AND a.location_id = locations.id), 0) AS monthly_revenue,
			COALESCE(SUM(apartments.monthly_rent), 0) AS potential_revenue`).
		Joins("LEFT JOIN apartments ON apartments.location_id = locations.id").
		Group("locations.id, locations.city").
		Order("locations.city")

	if city = utils.NormalizeLocation(city); city != "" {
		db = db.Where("locations.city = ?", city)
	}

	if err := db.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) FinancialSummary(city string) (*FinancialSummary, error) {
	var row struct {
		TotalInvoiced  decimal.Decimal
		TotalCollected decimal.Decimal
		PaidInvoices   int64
		UnpaidInvoices int64
	}

	// Collected money comes from the payments ledger, not from the invoiced
	// amount: a recorded payment may settle an invoice for a different sum.
	// One payment per invoice, so the join cannot fan out invoice rows.
	db := r.db.Model(&models.Invoice{}).
		Select(`COALESCE(SUM(invoices.amount_due), 0) AS total_invoiced,
			COALESCE(SUM(payments.amount), 0) AS total_collected,
			COALESCE(SUM(CASE WHEN invoices.paid THEN 1 ELSE 0 END), 0) AS paid_invoices,
			COALESCE(SUM(CASE WHEN invoices.paid THEN 0 ELSE 1 END), 0) AS unpaid_invoices`).
		Joins("LEFT JOIN payments ON payments.invoice_id = invoices.id")

	// City scoping follows the tenant's current housing, so only invoices
	// of tenants with an active lease in that city count.
	if city = utils.NormalizeLocation(city); city != "" {
		db = db.Where(`invoices.tenant_id IN (
			SELECT l.tenant_id FROM lease_agreements l
			JOIN apartments a ON a.id = l.apartment_id
			JOIN locations loc ON loc.id = a.location_id
			WHERE l.active AND loc.city = ?)`, city)
	}

	if err := db.Scan(&row).Error; err != nil {
		return nil, err
	}

	return &FinancialSummary{
		TotalInvoiced:  row.TotalInvoiced,
		TotalCollected: row.TotalCollected,
		Outstanding:    row.TotalInvoiced.Sub(row.TotalCollected),
		PaidInvoices:   row.PaidInvoices,
		UnpaidInvoices: row.UnpaidInvoices,
	}, nil
}

func (r *reportRepository) LateInvoices(asOf utils.DateOnly) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.
		Where("paid = ? AND due_date < ?", false, asOf.String()).
		Order("due_date").
		Preload("Tenant").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *reportRepository) RevenueTrend(granularity string, from, to *utils.DateOnly) ([]RevenueBucket, error) {
	format, err := bucketFormat(granularity)
	if err != nil {
		return nil, err
	}

	lo, hi, empty, err := r.resolveRange(from, to, "invoices", "issue_date")
	if err != nil {
		return nil, err
	}
	if empty {
		return []RevenueBucket{}, nil
	}

	var rows []struct {
		BucketKey string
		Invoiced  decimal.Decimal
		Collected decimal.Decimal
	}
	// Collected is the actual payment taken against each invoice in the
	// bucket, which can differ from the invoiced amount.
	err = r.db.Model(&models.Invoice{}).
		Select(fmt.Sprintf(`strftime('%s', invoices.issue_date) AS bucket_key,
			COALESCE(SUM(invoices.amount_due), 0) AS invoiced,
			COALESCE(SUM(payments.amount), 0) AS collected`, format)).
		Joins("LEFT JOIN payments ON payments.invoice_id = invoices.id").
		Where("invoices.issue_date BETWEEN ? AND ?", lo.String(), hi.String()).
		Group("bucket_key").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byKey := make(map[string]RevenueBucket, len(rows))
	for _, row := range rows {
		byKey[row.BucketKey] = RevenueBucket{
			Key:       row.BucketKey,
			Invoiced:  row.Invoiced,
			Collected: row.Collected,
		}
	}

	buckets := []RevenueBucket{}
	for _, key := range bucketKeys(granularity, lo, hi) {
		b, ok := byKey[key]
		if !ok {
			b = RevenueBucket{Key: key, Invoiced: decimal.Zero, Collected: decimal.Zero}
		}
		b.Label = bucketLabel(granularity, key)
		buckets = append(buckets, b)
	}
	return buckets, nil
}

func (r *reportRepository) OccupancyTrend(granularity string, from, to *utils.DateOnly) ([]OccupancyBucket, error) {
	format, err := bucketFormat(granularity)
	if err != nil {
		return nil, err
	}

	lo, hi, empty, err := r.resolveRange(from, to, "lease_agreements", "start_date")
	if err != nil {
		return nil, err
	}
	if empty {
		return []OccupancyBucket{}, nil
	}

	var rows []struct {
		BucketKey     string
		LeasesStarted int64
	}
	err = r.db.Model(&models.LeaseAgreement{}).
		Select(fmt.Sprintf(`strftime('%s', start_date) AS bucket_key, COUNT(*) AS leases_started`, format)).
		Where("start_date BETWEEN ? AND ?", lo.String(), hi.String()).
		Group("bucket_key").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byKey := make(map[string]int64, len(rows))
	for _, row := range rows {
		byKey[row.BucketKey] = row.LeasesStarted
	}

	buckets := []OccupancyBucket{}
	for _, key := range bucketKeys(granularity, lo, hi) {
		buckets = append(buckets, OccupancyBucket{
			Key:           key,
			Label:         bucketLabel(granularity, key),
			LeasesStarted: byKey[key],
		})
	}
	return buckets, nil
}

// resolveRange fills an open date range from the table's MIN/MAX. The empty
// flag is set when the table has no rows at all and no range was supplied.
func (r *reportRepository) resolveRange(from, to *utils.DateOnly, table, column string) (utils.DateOnly, utils.DateOnly, bool, error) {
	if from != nil && to != nil {
		return *from, *to, false, nil
	}

	var bounds struct {
		Lo *string
		Hi *string
	}
	query := fmt.Sprintf("SELECT MIN(%s) AS lo, MAX(%s) AS hi FROM %s", column, column, table)
	if err := r.db.Raw(query).Scan(&bounds).Error; err != nil {
		return utils.DateOnly{}, utils.DateOnly{}, false, err
	}
	if bounds.Lo == nil || bounds.Hi == nil {
		// Nothing in the table, so an open-ended range cannot be resolved.
		return utils.DateOnly{}, utils.DateOnly{}, true, nil
	}

	lo := from
	hi := to
	if lo == nil {
		parsed, err := utils.ParseFlexibleDate(*bounds.Lo)
		if err != nil {
			return utils.DateOnly{}, utils.DateOnly{}, false, err
		}
		lo = &parsed
	}
	if hi == nil {
		parsed, err := utils.ParseFlexibleDate(*bounds.Hi)
		if err != nil {
			return utils.DateOnly{}, utils.DateOnly{}, false, err
		}
		hi = &parsed
	}
	return *lo, *hi, false, nil
}

func bucketFormat(granularity string) (string, error) {
	switch granularity {
	case "month", "":
		return "%Y-%m", nil
	case "year":
		return "%Y", nil
	default:
		return "", fmt.Errorf("unsupported granularity %q", granularity)
	}
}

// bucketKeys enumerates every period between lo and hi inclusive, so the
// series has no gaps even for periods with no data.
func bucketKeys(granularity string, lo, hi utils.DateOnly) []string {
	keys := []string{}
	if granularity == "year" {
		for y := lo.Time().Year(); y <= hi.Time().Year(); y++ {
			keys = append(keys, fmt.Sprintf("%04d", y))
		}
		return keys
	}

	cur := time.Date(lo.Time().Year(), lo.Time().Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(hi.Time().Year(), hi.Time().Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cur.After(end) {
		keys = append(keys, cur.Format("2006-01"))
		cur = cur.AddDate(0, 1, 0)
	}
	return keys
}

func bucketLabel(granularity, key string) string {
	if granularity == "year" {
		return key
	}
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return t.Format("Jan 2006")
}
