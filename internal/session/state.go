package session

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chemiz/chemiz/internal/answer"
	"github.com/chemiz/chemiz/internal/quiz"
)

// ErrNoQuestion is returned by Submit when there is no current question.
var ErrNoQuestion = errors.New("no current question")

// QuestionSource generates questions. *quiz.Generator implements it.
type QuestionSource interface {
	Next(theme quiz.Theme, mode quiz.Mode) quiz.Question
}

// Matcher grades an input against a target in an answer space.
// *answer.Index implements it.
type Matcher interface {
	Match(space answer.Space, input, target string) bool
}

var (
	_ QuestionSource = (*quiz.Generator)(nil)
	_ Matcher        = (*answer.Index)(nil)
)

// WrongNote records one incorrect answer.
type WrongNote struct {
	Prompt  string
	Correct string
	Given   string
	At      time.Time
}

// Options configures a new State.
type Options struct {
	Source  QuestionSource
	Matcher Matcher
	Theme   quiz.Theme
	Mode    quiz.Mode

	// AdvanceConcept moves to a fresh concept question after a correct
	// answer. Basic questions always advance.
	AdvanceConcept bool

	// Recorder receives session and attempt events (nil = none).
	Recorder Recorder

	// Logger receives recorder failures (nil = no-op).
	Logger *zap.Logger

	// Now overrides the clock (nil = time.Now).
	Now func() time.Time
}

// State is the quiz state of one learner session. It is owned by the UI
// update loop and is not safe for concurrent use.
type State struct {
	// ID identifies the session in the journal.
	ID string

	// StartedAt is when the state was created.
	StartedAt time.Time

	// Current is the question being shown, nil when none has been generated.
	Current quiz.Question

	// Score counts correct gradings; Total counts all gradings.
	Score int
	Total int

	// Streak counts consecutive correct gradings; BestStreak is its maximum.
	Streak     int
	BestStreak int

	// WrongNotes holds incorrect gradings in order.
	WrongNotes []WrongNote

	Theme quiz.Theme
	Mode  quiz.Mode

	source         QuestionSource
	matcher        Matcher
	advanceConcept bool
	recorder       Recorder
	logger         *zap.Logger
	now            func() time.Time
	started        bool
}

// New returns an empty State with no current question.
func New(opts Options) (*State, error) {
	if opts.Source == nil {
		return nil, errors.New("session: nil question source")
	}
	if opts.Matcher == nil {
		return nil, errors.New("session: nil matcher")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &State{
		ID:             uuid.New().String(),
		StartedAt:      now(),
		Theme:          opts.Theme,
		Mode:           opts.Mode,
		source:         opts.Source,
		matcher:        opts.Matcher,
		advanceConcept: opts.AdvanceConcept,
		recorder:       opts.Recorder,
		logger:         logger.With(zap.String("component", "session")),
		now:            now,
	}, nil
}

// Rate returns Score/Total, or 0 before the first grading.
func (s *State) Rate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Score) / float64(s.Total)
}

// Elapsed returns the time since the state was created.
func (s *State) Elapsed() time.Duration {
	return s.now().Sub(s.StartedAt)
}
