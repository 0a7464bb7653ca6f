package quiz

import (
	"math/rand"
	"testing"
	"time"

	"github.com/tomz197/skyquiz/internal/object"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestMaster(bank []Question) (*Master, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	m := NewMaster(bank, WithRand(rand.New(rand.NewSource(1))), WithClock(clock.now))
	return m, clock
}

func TestDifficultyFor(t *testing.T) {
	tests := []struct {
		score int
		want  Difficulty
		bonus int
	}{
		{0, Easy, 100},
		{2999, Easy, 100},
		{3000, Medium, 300},
		{11999, Medium, 300},
		{12000, Hard, 500},
	}
	for _, tt := range tests {
		got := DifficultyFor(tt.score)
		if got != tt.want || got.Bonus() != tt.bonus {
			t.Errorf("DifficultyFor(%d) = %s/%d, want %s/%d", tt.score, got, got.Bonus(), tt.want, tt.bonus)
		}
	}
}

func TestSourceForReward(t *testing.T) {
	tests := map[object.RewardKind]Source{
		object.RewardShield: SourceShield,
		object.RewardBomb:   SourceBomb,
		object.RewardRandom: SourceRandom,
	}
	for kind, want := range tests {
		if got := SourceForReward(kind); got != want {
			t.Errorf("SourceForReward(%s) = %s, want %s", kind, got, want)
		}
	}
}

func TestAnswerJudgesChoice(t *testing.T) {
	m, _ := newTestMaster(nil)
	m.Ask(SourceBomb, 0)

	p, ok := m.Pending()
	if !ok {
		t.Fatal("expected a pending prompt")
	}
	if p.Question.Difficulty != Easy || p.Source != SourceBomb {
		t.Errorf("prompt = %+v", p)
	}

	if _, ok := m.Answer(len(p.Question.Options)); ok {
		t.Error("out-of-range choice must be ignored")
	}

	out, ok := m.Answer(p.Question.Answer)
	if !ok || !out.Correct || out.TimedOut || out.Source != SourceBomb {
		t.Errorf("Answer = %+v, %v", out, ok)
	}
	if _, ok := m.Pending(); ok {
		t.Error("prompt should be cleared after answering")
	}
	if _, ok := m.Answer(0); ok {
		t.Error("answering with nothing pending must report false")
	}
}

func TestWrongAnswer(t *testing.T) {
	m, _ := newTestMaster(nil)
	m.Ask(SourceShield, 5000)
	p, _ := m.Pending()

	wrong := (p.Question.Answer + 1) % len(p.Question.Options)
	out, ok := m.Answer(wrong)
	if !ok || out.Correct || out.Difficulty != Medium {
		t.Errorf("Answer = %+v, %v", out, ok)
	}
}

func TestPollTimesOut(t *testing.T) {
	tests := []struct {
		source Source
		limit  time.Duration
	}{
		{SourceShield, 15 * time.Second},
		{SourceRevive, 10 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.source.String(), func(t *testing.T) {
			m, clock := newTestMaster(nil)
			m.Ask(tt.source, 0)

			if _, ok := m.Poll(clock.t.Add(tt.limit - time.Millisecond)); ok {
				t.Fatal("timed out early")
			}
			out, ok := m.Poll(clock.t.Add(tt.limit))
			if !ok || !out.TimedOut || out.Correct || out.Source != tt.source {
				t.Errorf("Poll = %+v, %v", out, ok)
			}
			if _, ok := m.Pending(); ok {
				t.Error("timed-out prompt should be cleared")
			}
		})
	}
}

func TestRecentQuestionsAvoided(t *testing.T) {
	bank := []Question{
		{ID: "a", Difficulty: Easy, Options: trueFalse},
		{ID: "b", Difficulty: Easy, Options: trueFalse},
		{ID: "c", Difficulty: Easy, Options: trueFalse},
	}
	m, _ := newTestMaster(bank)

	seen := map[string]bool{}
	for range 3 {
		m.Ask(SourceShield, 0)
		p, _ := m.Pending()
		if seen[p.Question.ID] {
			t.Fatalf("question %s repeated before the pool was exhausted", p.Question.ID)
		}
		seen[p.Question.ID] = true
		m.Answer(0)
	}

	// Pool exhausted: falls back to any easy question.
	m.Ask(SourceShield, 0)
	if _, ok := m.Pending(); !ok {
		t.Fatal("expected a fallback question")
	}
}

func TestMissingDifficultyFallsBack(t *testing.T) {
	bank := []Question{{ID: "only", Difficulty: Easy, Options: trueFalse}}
	m, _ := newTestMaster(bank)
	m.Ask(SourceRevive, 50000)
	p, ok := m.Pending()
	if !ok || p.Question.ID != "only" {
		t.Errorf("Pending = %+v, %v", p, ok)
	}
}

func TestDefaultBankIsWellFormed(t *testing.T) {
	ids := map[string]bool{}
	perDifficulty := map[Difficulty]int{}
	for _, q := range DefaultBank {
		if ids[q.ID] {
			t.Errorf("duplicate id %s", q.ID)
		}
		ids[q.ID] = true
		if q.Answer < 0 || q.Answer >= len(q.Options) {
			t.Errorf("%s: answer %d out of range", q.ID, q.Answer)
		}
		perDifficulty[q.Difficulty]++
	}
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		if perDifficulty[d] == 0 {
			t.Errorf("no %s questions", d)
		}
	}
}
