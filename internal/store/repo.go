package store

import (
	"context"
	"time"
)

// Session event actions.
const (
	ActionStart = "start"
	ActionEnd   = "end"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // timestamp >= From (zero = no bound)
	To    time.Time // timestamp <= To (zero = no bound)
}

// SessionEventData captures a session start or end.
type SessionEventData struct {
	SessionID         string
	Action            string // ActionStart or ActionEnd
	Theme             string
	Mode              string
	QuestionsAnswered int
	CorrectAnswers    int
	BestStreak        int
	DurationSecs      int
	Timestamp         time.Time // zero = now
}

// AttemptEventData captures one graded answer.
type AttemptEventData struct {
	SessionID string
	Kind      string
	Prompt    string
	Expected  string
	Given     string
	Correct   bool
	Timestamp time.Time // zero = now
}

// SessionSummaryRecord is the journal view of one finished session.
type SessionSummaryRecord struct {
	SessionID         string
	Timestamp         time.Time
	Theme             string
	Mode              string
	QuestionsAnswered int
	CorrectAnswers    int
	BestStreak        int
	DurationSecs      int
}

// Accuracy returns CorrectAnswers/QuestionsAnswered, or 0 when nothing was
// answered.
func (r SessionSummaryRecord) Accuracy() float64 {
	if r.QuestionsAnswered == 0 {
		return 0
	}
	return float64(r.CorrectAnswers) / float64(r.QuestionsAnswered)
}

// Stats aggregates the whole journal.
type Stats struct {
	Sessions int
	Attempts int
	Correct  int
	ByKind   map[string]KindStats
}

// Accuracy returns Correct/Attempts, or 0 for an empty journal.
func (s Stats) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts)
}

// KindStats aggregates attempts of one question kind.
type KindStats struct {
	Attempts int
	Correct  int
}

// MissedPrompt is a prompt ranked by how often it was answered wrongly.
type MissedPrompt struct {
	Prompt   string
	Expected string
	Misses   int
}

// EventRepo provides append and query access to journal events.
type EventRepo interface {
	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAttemptEvent records one graded answer.
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error

	// QuerySessionSummaries returns finished sessions, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)

	// Stats aggregates all attempts in the journal.
	Stats(ctx context.Context) (Stats, error)

	// MostMissed returns the prompts with the most wrong answers.
	MostMissed(ctx context.Context, limit int) ([]MissedPrompt, error)

	// Reset deletes every event and rewinds the sequence counter.
	Reset(ctx context.Context) error
}
