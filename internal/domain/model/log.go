package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LogEntry is a request or audit record persisted to the logs collection.
// Context-specific data goes into Fields.
type LogEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
	Level      string             `bson:"level" json:"level"`
	Message    string             `bson:"message" json:"message"`
	RequestID  string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Method     string             `bson:"method,omitempty" json:"method,omitempty"`
	Path       string             `bson:"path,omitempty" json:"path,omitempty"`
	StatusCode int                `bson:"status_code,omitempty" json:"status_code,omitempty"`
	Duration   int64              `bson:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	IP         string             `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent  string             `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	Error      string             `bson:"error,omitempty" json:"error,omitempty"`
	UserID     string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
	UserEmail  string             `bson:"user_email,omitempty" json:"user_email,omitempty"`
	ActionType string             `bson:"action_type,omitempty" json:"action_type,omitempty"`
	Fields     map[string]any     `bson:"fields,omitempty" json:"fields,omitempty"`
}

// Audit action types recorded in LogEntry.ActionType.
const (
	ActionLogin          = "login"
	ActionRegister       = "register"
	ActionOptimize       = "optimize"
	ActionImportSKUs     = "import_skus"
	ActionUpdateLocation = "update_location"
	ActionDeleteLocation = "delete_location"
	ActionUpdatePallet   = "update_pallet"
	ActionDeletePallet   = "delete_pallet"
	ActionUpdateRoles    = "update_roles"
	ActionDeactivateUser = "deactivate_user"
)

// WithField sets one entry in Fields, allocating the map on first use.
func (e *LogEntry) WithField(key string, value any) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]any)
	}
	e.Fields[key] = value
	return e
}

// WithFields merges fields into Fields.
func (e *LogEntry) WithFields(fields map[string]any) *LogEntry {
	for k, v := range fields {
		e.WithField(k, v)
	}
	return e
}

// LogQueryOptions filters stored log entries. Zero values are ignored.
type LogQueryOptions struct {
	RequestID  string
	Level      string
	Method     string
	Path       string
	UserID     string
	ActionType string
	StartTime  *time.Time
	EndTime    *time.Time
	Limit      int
	Skip       int
}
