package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// eventRepo implements EventRepo on raw SQL.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func timestampOrNow(t time.Time) int64 {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UnixMilli()
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	if data.Action != ActionStart && data.Action != ActionEnd {
		return fmt.Errorf("invalid session action %q", data.Action)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `INSERT INTO session_events
		(sequence, timestamp, session_id, action, theme, mode,
		 questions_answered, correct_answers, best_streak, duration_secs)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, timestampOrNow(data.Timestamp), data.SessionID, data.Action,
		data.Theme, data.Mode, data.QuestionsAnswered, data.CorrectAnswers,
		data.BestStreak, data.DurationSecs,
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `INSERT INTO attempt_events
		(sequence, timestamp, session_id, kind, prompt, expected, given, correct)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, timestampOrNow(data.Timestamp), data.SessionID, data.Kind,
		data.Prompt, data.Expected, data.Given, data.Correct,
	)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	var (
		where = []string{"action = ?"}
		args  = []any{ActionEnd}
	)
	if !opts.From.IsZero() {
		where = append(where, "timestamp >= ?")
		args = append(args, opts.From.UnixMilli())
	}
	if !opts.To.IsZero() {
		where = append(where, "timestamp <= ?")
		args = append(args, opts.To.UnixMilli())
	}

	query := `SELECT session_id, timestamp, theme, mode, questions_answered,
		correct_answers, best_streak, duration_secs
		FROM session_events WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY sequence DESC`
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}
	defer rows.Close()

	var records []SessionSummaryRecord
	for rows.Next() {
		var (
			rec SessionSummaryRecord
			ts  int64
		)
		if err := rows.Scan(&rec.SessionID, &ts, &rec.Theme, &rec.Mode,
			&rec.QuestionsAnswered, &rec.CorrectAnswers, &rec.BestStreak,
			&rec.DurationSecs); err != nil {
			return nil, fmt.Errorf("scan session summary: %w", err)
		}
		rec.Timestamp = time.UnixMilli(ts)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}
	return records, nil
}

func (r *eventRepo) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{ByKind: make(map[string]KindStats)}

	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT session_id) FROM session_events`,
	).Scan(&stats.Sessions)
	if err != nil {
		return Stats{}, fmt.Errorf("count sessions: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT kind, COUNT(*), COALESCE(SUM(correct), 0)
		 FROM attempt_events GROUP BY kind ORDER BY kind`)
	if err != nil {
		return Stats{}, fmt.Errorf("query attempt stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			kind string
			ks   KindStats
		)
		if err := rows.Scan(&kind, &ks.Attempts, &ks.Correct); err != nil {
			return Stats{}, fmt.Errorf("scan attempt stats: %w", err)
		}
		stats.ByKind[kind] = ks
		stats.Attempts += ks.Attempts
		stats.Correct += ks.Correct
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("query attempt stats: %w", err)
	}
	return stats, nil
}

func (r *eventRepo) MostMissed(ctx context.Context, limit int) ([]MissedPrompt, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT prompt, expected, COUNT(*) AS misses
		 FROM attempt_events WHERE correct = 0
		 GROUP BY prompt, expected
		 ORDER BY misses DESC, MAX(sequence) DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query most missed: %w", err)
	}
	defer rows.Close()

	var out []MissedPrompt
	for rows.Next() {
		var m MissedPrompt
		if err := rows.Scan(&m.Prompt, &m.Expected, &m.Misses); err != nil {
			return nil, fmt.Errorf("scan most missed: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query most missed: %w", err)
	}
	return out, nil
}

func (r *eventRepo) Reset(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"attempt_events", "session_events"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	if err := r.seq.reset(ctx, tx); err != nil {
		return fmt.Errorf("reset sequence: %w", err)
	}
	return tx.Commit()
}
