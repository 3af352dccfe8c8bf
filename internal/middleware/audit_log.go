package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/slotting-service/internal/domain/model"
)

// AuditLog records a state-changing action (login, catalog edit, optimization) for the
// current request. err may be nil.
func AuditLog(sink *AsyncLogger, c *gin.Context, action, message string, err error, fields map[string]any) {
	if sink == nil {
		return
	}

	entry := &model.LogEntry{
		Timestamp:  time.Now().UTC(),
		Level:      "info",
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		UserID:     GetUserID(c),
		UserEmail:  c.GetString(UserEmailKey),
		ActionType: action,
	}
	entry.WithFields(fields)
	if err != nil {
		entry.Level = "error"
		entry.Error = err.Error()
	}
	sink.Log(entry)
}
