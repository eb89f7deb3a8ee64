package jobs

import (
	"context"
	"log"
	"time"

	"github.com/homecheff/affiliates/ent"
	"github.com/homecheff/affiliates/pkg/email"
	"github.com/homecheff/affiliates/pkg/ledger"
	"github.com/homecheff/affiliates/pkg/metrics"
	"github.com/robfig/cron/v3"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron    *cron.Cron
	db      *ent.Client
	ledger  *ledger.Service
	email   *email.Service
	metrics *metrics.Metrics
	logger  *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(db *ent.Client, ledgerService *ledger.Service, emailService *email.Service, m *metrics.Metrics, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:    cron.New(),
		db:      db,
		ledger:  ledgerService,
		email:   emailService,
		metrics: m,
		logger:  logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Hourly: move pending ledger entries past their hold period to available
	_, err := cm.cron.AddFunc("0 * * * *", func() {
		cm.logger.Println("🕐 Running ledger availability sweep...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := cm.RunSweep(ctx); err != nil {
			cm.logger.Printf("❌ Ledger sweep failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	cm.logger.Println("✅ Cron jobs configured")
	return nil
}

// RunSweep performs one availability sweep and notifies affected affiliates.
// Notification failures are logged, never propagated: the sweep's ledger
// writes are the part that matters.
func (cm *CronManager) RunSweep(ctx context.Context) error {
	swept, err := cm.ledger.SweepAvailable(ctx, time.Now())
	if err != nil {
		return err
	}
	if len(swept) == 0 {
		cm.logger.Println("✅ Sweep found nothing due")
		return nil
	}

	total := 0
	for _, sw := range swept {
		total += sw.Entries
		cm.notifyAffiliate(ctx, sw)
	}

	if cm.metrics != nil {
		cm.metrics.EntriesSwept.Add(float64(total))
	}

	cm.logger.Printf("✅ Sweep made %d entries available across %d affiliates", total, len(swept))
	return nil
}

func (cm *CronManager) notifyAffiliate(ctx context.Context, sw ledger.SweptCommission) {
	if cm.email == nil || sw.AmountCents <= 0 {
		return
	}

	aff, err := cm.db.Affiliate.Get(ctx, sw.AffiliateID)
	if err != nil {
		cm.logger.Printf("⚠️  Failed to load affiliate %d for notification: %v", sw.AffiliateID, err)
		return
	}

	owner, err := cm.db.User.Get(ctx, aff.UserID)
	if err != nil {
		cm.logger.Printf("⚠️  Failed to load user %d for notification: %v", aff.UserID, err)
		return
	}

	if err := cm.email.SendCommissionAvailable(owner.Email, owner.Name, sw.AmountCents); err != nil {
		cm.logger.Printf("⚠️  Failed to notify affiliate %d: %v", sw.AffiliateID, err)
	}
}

// Start begins running scheduled jobs
func (cm *CronManager) Start() {
	cm.cron.Start()
	cm.logger.Println("✅ Cron scheduler started")
}

// Stop gracefully stops scheduled jobs
func (cm *CronManager) Stop() {
	cm.cron.Stop()
	cm.logger.Println("Cron scheduler stopped")
}
