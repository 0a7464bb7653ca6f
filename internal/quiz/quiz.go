// Package quiz serves timed trivia questions and judges the answers.
package quiz

import (
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyquiz/internal/loop/config"
	"github.com/tomz197/skyquiz/internal/object"
)

// Source is what triggered a question.
type Source int

const (
	SourceShield Source = iota
	SourceBomb
	SourceRandom
	SourceMilestone
	SourceRevive
)

func (s Source) String() string {
	switch s {
	case SourceShield:
		return "shield"
	case SourceBomb:
		return "bomb"
	case SourceRandom:
		return "random"
	case SourceMilestone:
		return "milestone"
	case SourceRevive:
		return "revive"
	}
	return "unknown"
}

// SourceForReward maps a pickup reward onto its quiz source.
func SourceForReward(kind object.RewardKind) Source {
	switch kind {
	case object.RewardBomb:
		return SourceBomb
	case object.RewardRandom:
		return SourceRandom
	default:
		return SourceShield
	}
}

// TimeLimit returns how long the player has to answer.
func (s Source) TimeLimit() time.Duration {
	if s == SourceRevive {
		return config.ReviveTimeLimit
	}
	return config.QuizTimeLimit
}

// Prompt is the question currently on screen.
type Prompt struct {
	Question Question
	Source   Source
	Deadline time.Time
}

// Outcome is the judged result of a prompt.
type Outcome struct {
	Source     Source
	Difficulty Difficulty
	QuestionID string
	Correct    bool
	TimedOut   bool
}

// Master asks one question at a time and times it out.
// It is safe for concurrent use.
type Master struct {
	mu      sync.Mutex
	bank    []Question
	rand    *rand.Rand
	now     func() time.Time
	logger  *log.Logger
	current *Prompt
	history []string
}

// Option configures a Master.
type Option func(*Master)

// WithRand sets the random source used to pick questions.
func WithRand(r *rand.Rand) Option {
	return func(m *Master) { m.rand = r }
}

// WithClock sets the clock used for deadlines.
func WithClock(now func() time.Time) Option {
	return func(m *Master) { m.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Master) { m.logger = l }
}

// NewMaster creates a Master over bank. An empty bank uses DefaultBank.
func NewMaster(bank []Question, opts ...Option) *Master {
	if len(bank) == 0 {
		bank = DefaultBank
	}
	m := &Master{
		bank:   bank,
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Ask puts up a question for source, graded by score.
// A question already pending is replaced.
func (m *Master) Ask(source Source, score int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		m.logger.Warn("quiz replaced before it was answered", "pending", m.current.Source, "new", source)
	}
	q := m.pick(DifficultyFor(score))
	m.remember(q.ID)
	m.current = &Prompt{
		Question: q,
		Source:   source,
		Deadline: m.now().Add(source.TimeLimit()),
	}
	m.logger.Debug("quiz asked", "source", source, "question", q.ID, "difficulty", q.Difficulty)
}

// pick chooses a question at difficulty d, avoiding recent ones when possible.
func (m *Master) pick(d Difficulty) Question {
	var fresh, graded []Question
	for _, q := range m.bank {
		if q.Difficulty != d {
			continue
		}
		graded = append(graded, q)
		if !slices.Contains(m.history, q.ID) {
			fresh = append(fresh, q)
		}
	}
	switch {
	case len(fresh) > 0:
		return fresh[m.rand.Intn(len(fresh))]
	case len(graded) > 0:
		return graded[m.rand.Intn(len(graded))]
	default:
		return m.bank[m.rand.Intn(len(m.bank))]
	}
}

func (m *Master) remember(id string) {
	m.history = append(m.history, id)
	if over := len(m.history) - config.QuizHistorySize; over > 0 {
		m.history = m.history[over:]
	}
}

// Pending returns the open prompt, if any.
func (m *Master) Pending() (Prompt, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return Prompt{}, false
	}
	return *m.current, true
}

// Answer judges choice against the pending question. It reports false when
// nothing is pending or choice is not one of the options.
func (m *Master) Answer(choice int) (Outcome, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil || choice < 0 || choice >= len(m.current.Question.Options) {
		return Outcome{}, false
	}
	out := m.outcome()
	out.Correct = choice == m.current.Question.Answer
	m.current = nil
	return out, true
}

// Poll times out the pending question once its deadline has passed.
func (m *Master) Poll(now time.Time) (Outcome, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil || now.Before(m.current.Deadline) {
		return Outcome{}, false
	}
	out := m.outcome()
	out.TimedOut = true
	m.current = nil
	return out, true
}

// Cancel drops the pending question without an outcome.
func (m *Master) Cancel() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
}

func (m *Master) outcome() Outcome {
	return Outcome{
		Source:     m.current.Source,
		Difficulty: m.current.Question.Difficulty,
		QuestionID: m.current.Question.ID,
	}
}
