package session

import (
	"context"

	"go.uber.org/zap"

	"github.com/chemiz/chemiz/internal/quiz"
	"github.com/chemiz/chemiz/internal/store"
)

// Recorder receives journal events. store.EventRepo implements it.
type Recorder interface {
	AppendSessionEvent(ctx context.Context, data store.SessionEventData) error
	AppendAttemptEvent(ctx context.Context, data store.AttemptEventData) error
}

var _ Recorder = store.EventRepo(nil)

// Outcome is the result of grading one answer.
type Outcome struct {
	Correct bool

	// Question is the graded question.
	Question quiz.Question

	// Given is the raw input as submitted.
	Given string

	// Expected is the canonical correct answer.
	Expected string

	// Advanced is true when Current was replaced by a fresh question.
	Advanced bool
}

// Ensure generates a question when there is none.
func (s *State) Ensure() quiz.Question {
	if s.Current == nil {
		s.Current = s.source.Next(s.Theme, s.Mode)
	}
	return s.Current
}

// NewQuestion discards the current question and generates a fresh one.
func (s *State) NewQuestion() quiz.Question {
	s.Current = s.source.Next(s.Theme, s.Mode)
	return s.Current
}

// SetTheme switches the question family. A change regenerates the current
// question; setting the same theme is a no-op.
func (s *State) SetTheme(t quiz.Theme) {
	if t == s.Theme {
		return
	}
	s.Theme = t
	s.NewQuestion()
}

// SetMode switches between short answer and multiple choice. Choices are
// fixed at generation time, so a change regenerates the current question.
func (s *State) SetMode(m quiz.Mode) {
	if m == s.Mode {
		return
	}
	s.Mode = m
	s.NewQuestion()
}

// Submit grades input against the current question.
//
// A correct answer increments Score, Total and Streak, and advances to a new
// question (always for the basic family, per AdvanceConcept for concept
// questions). An incorrect answer increments Total, resets Streak and appends
// a WrongNote; the current question stays.
func (s *State) Submit(input string) (Outcome, error) {
	q := s.Current
	if q == nil {
		return Outcome{}, ErrNoQuestion
	}

	s.Start()

	out := Outcome{
		Correct:  s.matcher.Match(q.Space(), input, q.Answer()),
		Question: q,
		Given:    input,
		Expected: q.Answer(),
	}

	s.Total++
	if out.Correct {
		s.Score++
		s.Streak++
		if s.Streak > s.BestStreak {
			s.BestStreak = s.Streak
		}
		if s.shouldAdvance(q) {
			s.NewQuestion()
			out.Advanced = true
		}
	} else {
		s.Streak = 0
		s.WrongNotes = append(s.WrongNotes, WrongNote{
			Prompt:  q.Prompt(),
			Correct: q.Answer(),
			Given:   input,
			At:      s.now(),
		})
	}

	s.record(func(ctx context.Context, r Recorder) error {
		return r.AppendAttemptEvent(ctx, store.AttemptEventData{
			SessionID: s.ID,
			Kind:      q.Kind().String(),
			Prompt:    q.Prompt(),
			Expected:  out.Expected,
			Given:     input,
			Correct:   out.Correct,
			Timestamp: s.now(),
		})
	})

	return out, nil
}

func (s *State) shouldAdvance(q quiz.Question) bool {
	switch q.Kind() {
	case quiz.KindConceptChoice, quiz.KindConceptShort:
		return s.advanceConcept
	default:
		return true
	}
}

// ClearWrongNotes empties the wrong-answer log.
func (s *State) ClearWrongNotes() {
	s.WrongNotes = nil
}

// Start records the session start in the journal. It runs at most once and
// is called implicitly by the first Submit.
func (s *State) Start() {
	if s.started {
		return
	}
	s.started = true
	s.record(func(ctx context.Context, r Recorder) error {
		return r.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID: s.ID,
			Action:    store.ActionStart,
			Theme:     s.Theme.String(),
			Mode:      s.Mode.String(),
			Timestamp: s.StartedAt,
		})
	})
}

// Finish records the session end with its totals. Sessions that never
// started are not recorded.
func (s *State) Finish() Summary {
	sum := BuildSummary(s)
	if !s.started {
		return sum
	}
	s.record(func(ctx context.Context, r Recorder) error {
		return r.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:         s.ID,
			Action:            store.ActionEnd,
			Theme:             s.Theme.String(),
			Mode:              s.Mode.String(),
			QuestionsAnswered: sum.Total,
			CorrectAnswers:    sum.Score,
			BestStreak:        sum.BestStreak,
			DurationSecs:      int(sum.Duration.Seconds()),
			Timestamp:         s.now(),
		})
	})
	s.started = false
	return sum
}

// record forwards an event to the recorder. Failures are logged and never
// affect grading.
func (s *State) record(fn func(ctx context.Context, r Recorder) error) {
	if s.recorder == nil {
		return
	}
	if err := fn(context.Background(), s.recorder); err != nil {
		s.logger.Warn("journal write failed",
			zap.String("session_id", s.ID),
			zap.Error(err),
		)
	}
}
