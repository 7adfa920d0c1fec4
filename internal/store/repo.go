package store

import (
	"context"
	"time"

	"github.com/haxx0rman/qBank/internal/bank"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData is the full persisted state: the question bank plus the
// user's skill rating. It is what a snapshot row serializes.
type SnapshotData struct {
	Version    int        `json:"version"`
	UserRating float64    `json:"user_rating"`
	Bank       *bank.Bank `json:"bank"`
}

// Snapshot represents a point-in-time capture of bank state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages bank state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AttemptEventData captures a single answered or skipped question.
type AttemptEventData struct {
	SessionID            string
	QuestionID           string
	QuestionKind         string
	Result               string
	ResponseTimeMs       int64
	UserRatingBefore     float64
	UserRatingAfter      float64
	QuestionRatingBefore float64
	QuestionRatingAfter  float64
	IntervalDays         float64
	EaseFactor           float64
}

// AttemptEvent is an AttemptEventData as read back from the log.
type AttemptEvent struct {
	Sequence  int64
	Timestamp time.Time
	AttemptEventData
}

// SessionEventData captures a study-session lifecycle event.
type SessionEventData struct {
	SessionID       string
	Action          string // "start" or "end"
	QuestionsServed int
	CorrectAnswers  int
	Skipped         int
	DurationSecs    int
	Tags            []string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is an LLMRequestEventData as read back from the log.
type LLMRequestEvent struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAttempt records a question attempt.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// AppendSession records a session start or end.
	AppendSession(ctx context.Context, data SessionEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentAttempts returns attempt events newest first.
	RecentAttempts(ctx context.Context, opts QueryOpts) ([]AttemptEvent, error)

	// RecentLLMRequests returns LLM request events newest first.
	RecentLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMRequest returns the event with the given sequence, or nil.
	GetLLMRequest(ctx context.Context, sequence int64) (*LLMRequestEvent, error)
}
