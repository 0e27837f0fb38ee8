package cron

import (
	"log"

	robfig "github.com/robfig/cron/v3"
)

type TokenPurger interface {
	PurgeExpiredTokens() (int64, error)
}

type AuditCleaner interface {
	CleanupOldLogs(days int) (int64, error)
}

const (
	tokenPurgeSpec   = "@hourly"
	auditCleanupSpec = "0 3 * * *"
)

// StartCleanupTasks schedules the refresh-token purge and the audit retention job, runs both once
// immediately and returns the running scheduler. Stop it on shutdown.
func StartCleanupTasks(tokens TokenPurger, audits AuditCleaner, retentionDays int) (*robfig.Cron, error) {
	log.Printf("[CLEANUP] Starting background cleanup tasks (audit retention: %d days)", retentionDays)

	purge := func() {
		n, err := tokens.PurgeExpiredTokens()
		if err != nil {
			log.Printf("[CLEANUP] Failed to purge expired refresh tokens: %v", err)
			return
		}
		if n > 0 {
			log.Printf("[CLEANUP] Purged %d expired refresh tokens", n)
		}
	}
	cleanAudit := func() {
		n, err := audits.CleanupOldLogs(retentionDays)
		if err != nil {
			log.Printf("[CLEANUP] Failed to cleanup old audit logs: %v", err)
			return
		}
		log.Printf("[CLEANUP] Audit log cleanup removed %d entries", n)
	}

	c := robfig.New()
	if _, err := c.AddFunc(tokenPurgeSpec, purge); err != nil {
		return nil, err
	}
	if _, err := c.AddFunc(auditCleanupSpec, cleanAudit); err != nil {
		return nil, err
	}

	// Run immediately on startup
	go func() {
		purge()
		cleanAudit()
	}()

	c.Start()
	return c, nil
}
