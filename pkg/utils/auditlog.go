package utils

import (
	"encoding/json"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/Sahindou/ifrit-ticket/internal/domain/audit"
	"github.com/Sahindou/ifrit-ticket/internal/repository"
)

// LogAuditWithConsole records a mutation in the background. note is appended to the
// generated description; request details are captured before the handler returns.
var LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, before, after interface{}, note string, repos repository.AuditRepo) {
	entry := &audit.AuditLog{
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    c.ClientIP(),
		UserAgent:    c.GetHeader("User-Agent"),
		Description:  audit.Describe(action, resourceType, before, after, note),
	}
	if uid, err := GetUserIDFromContext(c); err == nil {
		entry.UserID = &uid
	}

	go func() {
		if err := LogAudit(entry, before, after, repos); err != nil {
			log.Printf("[audit] %s %s %s: %v", action, resourceType, resourceID, err)
		}
	}()
}

// LogAudit snapshots before and after as JSON onto entry and stores it.
// A snapshot that cannot be encoded is left empty.
var LogAudit = func(entry *audit.AuditLog, before, after any, repos repository.AuditRepo) error {
	entry.OldData = snapshot(before)
	entry.NewData = snapshot(after)
	return repos.CreateAuditLog(entry)
}

func snapshot(v any) []byte {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("[audit] snapshot %T: %v", v, err)
		return nil
	}
	return data
}
