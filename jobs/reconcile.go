package jobs

import (
	"context"
	"fmt"

	"property-management-backend/config"
	"property-management-backend/db/models"
	"property-management-backend/utils"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Reconciler owns the nightly consistency sweep. The occupied flag on
// apartments and the active flag on leases are denormalized for cheap reads;
// this job re-derives both so drift never outlives a day.
type Reconciler struct {
	DB          *gorm.DB
	RedisClient *redis.Client
	Ctx         context.Context
}

// StartScheduler registers the daily reconciliation run and starts the cron
// loop. The returned cron can be stopped on shutdown.
func StartScheduler(rec *Reconciler) (*cron.Cron, error) {
	c := cron.New()

	schedule := utils.GetenvDefault("RECONCILE_SCHEDULE", "0 2 * * *")
	if _, err := c.AddFunc(schedule, rec.Run); err != nil {
		return nil, fmt.Errorf("could not schedule reconciliation job: %w", err)
	}

	c.Start()
	config.Logger.Info("Reconciliation scheduler started", zap.String("schedule", schedule))
	return c, nil
}

// Run executes one full sweep. Each step is independent so a failure in one
// does not block the others.
func (rec *Reconciler) Run() {
	config.Logger.Info("Reconciliation sweep starting")

	if err := rec.DeactivateExpiredLeases(); err != nil {
		config.Logger.Error("Expired lease sweep failed", zap.Error(err))
	}
	if err := rec.ReconcileOccupiedFlags(); err != nil {
		config.Logger.Error("Occupied flag reconciliation failed", zap.Error(err))
	}
	if err := rec.NotifyOverdueInvoices(); err != nil {
		config.Logger.Error("Overdue invoice notification failed", zap.Error(err))
	}

	utils.InvalidateReportCache(rec.Ctx, rec.RedisClient)
	config.Logger.Info("Reconciliation sweep finished")
}

// DeactivateExpiredLeases flips Active off for leases whose end date has
// passed. Termination through the API does the same flip eagerly; this is
// the backstop for leases that simply ran out.
func (rec *Reconciler) DeactivateExpiredLeases() error {
	today := utils.Today().String()

	result := rec.DB.Model(&models.LeaseAgreement{}).
		Where("active = ? AND end_date < ?", true, today).
		Update("active", false)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 {
		config.Logger.Info("Deactivated expired leases", zap.Int64("count", result.RowsAffected))
	}
	return nil
}

// ReconcileOccupiedFlags re-derives Apartment.Occupied from the presence of
// an active lease, fixing any drift in both directions.
func (rec *Reconciler) ReconcileOccupiedFlags() error {
	return rec.DB.Transaction(func(tx *gorm.DB) error {
		activeLease := "EXISTS (SELECT 1 FROM lease_agreements l WHERE l.apartment_id = apartments.id AND l.active)"

		set := tx.Model(&models.Apartment{}).
			Where("occupied = ? AND "+activeLease, false).
			Update("occupied", true)
		if set.Error != nil {
			return set.Error
		}

		unset := tx.Model(&models.Apartment{}).
			Where("occupied = ? AND NOT "+activeLease, true).
			Update("occupied", false)
		if unset.Error != nil {
			return unset.Error
		}

		if set.RowsAffected > 0 || unset.RowsAffected > 0 {
			config.Logger.Warn("Corrected drifted occupancy flags",
				zap.Int64("marked_occupied", set.RowsAffected),
				zap.Int64("marked_vacant", unset.RowsAffected))
		}
		return nil
	})
}

// NotifyOverdueInvoices emails each tenant a summary of their unpaid
// invoices past due. Skipped entirely when no mailer is configured.
func (rec *Reconciler) NotifyOverdueInvoices() error {
	if utils.GetMailer() == nil {
		config.Logger.Debug("Mailer not configured, skipping overdue notices")
		return nil
	}

	var overdue []models.Invoice
	err := rec.DB.
		Where("paid = ? AND due_date < ?", false, utils.Today().String()).
		Preload("Tenant").
		Order("tenant_id, due_date").
		Find(&overdue).Error
	if err != nil {
		return err
	}

	byTenant := map[uint][]models.Invoice{}
	for _, inv := range overdue {
		byTenant[inv.TenantID] = append(byTenant[inv.TenantID], inv)
	}

	for tenantID, invoices := range byTenant {
		tenant := invoices[0].Tenant
		if tenant == nil || tenant.Email == "" {
			continue
		}

		body := fmt.Sprintf("Dear %s,\n\nThe following invoices are overdue:\n\n", tenant.DisplayName())
		for _, inv := range invoices {
			body += fmt.Sprintf("  Invoice #%d: %s due %s\n", inv.ID, inv.AmountDue.StringFixed(2), inv.DueDate.String())
		}
		body += "\nPlease arrange payment at your earliest convenience.\n"

		if err := utils.SendEmail(tenant.Email, "Overdue rent invoices", body); err != nil {
			config.Logger.Error("Could not send overdue notice",
				zap.Uint("tenantID", tenantID),
				zap.Error(err))
			continue
		}
		config.Logger.Info("Sent overdue invoice notice",
			zap.Uint("tenantID", tenantID),
			zap.Int("invoices", len(invoices)))
	}

	return nil
}
