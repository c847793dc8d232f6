package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("store: not found")

// ErrConflict is returned when a versioned save loses a concurrent
// read-modify-write race. Callers should reload and retry.
var ErrConflict = errors.New("store: version conflict")

// ScheduleDoc is a stored schedule document. Data holds the serialized
// schedule; Version increments on every successful save.
type ScheduleDoc struct {
	OwnerID   string
	Version   int64
	Data      json.RawMessage
	UpdatedAt time.Time
}

// ScheduleRepo persists schedule documents keyed by owner.
type ScheduleRepo interface {
	// Load returns the schedule for ownerID, or ErrNotFound.
	Load(ctx context.Context, ownerID string) (*ScheduleDoc, error)
	// Save writes doc. A doc with Version 0 is inserted; otherwise
	// the write succeeds only if the stored version still matches,
	// returning ErrConflict when it does not. On success the doc's
	// Version is advanced.
	Save(ctx context.Context, doc *ScheduleDoc) error
	// Delete removes the schedule for ownerID, or returns ErrNotFound.
	Delete(ctx context.Context, ownerID string) error
}

// SessionDoc is a stored assessment session document.
type SessionDoc struct {
	SessionID string
	OwnerID   string
	Data      json.RawMessage
	UpdatedAt time.Time
}

// SessionRepo persists assessment session documents.
type SessionRepo interface {
	// Load returns the session with id, or ErrNotFound.
	Load(ctx context.Context, id string) (*SessionDoc, error)
	// Save inserts or replaces doc.
	Save(ctx context.Context, doc *SessionDoc) error
	// Delete removes the session with id, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
	// DeleteInactive removes sessions not updated since cutoff and
	// reports how many were removed.
	DeleteInactive(ctx context.Context, cutoff time.Time) (int, error)
}

// LLMRequestEventData captures a single model call for the usage log.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMUsageSummary aggregates the usage log for reporting.
type LLMUsageSummary struct {
	TotalRequests int
	FailedCount   int
	InputTokens   int64
	OutputTokens  int64
	ByPurpose     map[string]int
}

// EventRepo records model call events.
type EventRepo interface {
	// AppendLLMRequest appends one model call record.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	// LLMUsage aggregates all recorded model calls.
	LLMUsage(ctx context.Context) (LLMUsageSummary, error)
}
