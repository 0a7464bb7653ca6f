package loop

import (
	"math/rand"

	"github.com/tomz197/skyquiz/internal/quiz"
	"github.com/tomz197/skyquiz/internal/state"
)

var defaultRand = rand.Float64

// enqueueQuiz pauses the game and queues a question. Revive questions go
// to the front. The question is asked at the end of the tick.
func (c *Controller) enqueueQuiz(src quiz.Source) {
	if src == quiz.SourceRevive {
		c.quizQueue = append([]quiz.Source{src}, c.quizQueue...)
	} else {
		c.quizQueue = append(c.quizQueue, src)
	}
	c.store.Dispatch(state.Pause)
}

// askNext opens the next queued question unless one is already open.
func (c *Controller) askNext() {
	if c.quizOpen || len(c.quizQueue) == 0 {
		return
	}
	src := c.quizQueue[0]
	c.quizQueue = c.quizQueue[1:]

	if c.quiz == nil {
		c.logger.Debug("no quiz attached, failing question", "source", src)
		c.quizOpen, c.openSource = true, src
		c.ResolveQuiz(quiz.Outcome{Source: src})
		return
	}
	c.quizOpen, c.openSource = true, src
	c.quiz.Ask(src, c.store.State().Score)
}

// QuizPending reports whether a question is open or queued.
func (c *Controller) QuizPending() bool {
	return c.quizOpen || len(c.quizQueue) > 0
}

// ResolveQuiz applies the outcome of the open question, then asks the next
// queued one or resumes play. Reports false when no question was open.
func (c *Controller) ResolveQuiz(out quiz.Outcome) bool {
	if c.closed || !c.quizOpen {
		return false
	}
	src := c.openSource
	if out.Source != src {
		c.logger.Warn("quiz outcome for a different question", "open", src, "got", out.Source)
	}
	c.quizOpen = false

	if src == quiz.SourceRevive {
		if !out.Correct {
			c.quizQueue = c.quizQueue[:0]
			c.store.Dispatch(state.GameOver)
			return true
		}
		c.store.Dispatch(state.Revive)
		c.audio.PlayRevive()
	} else if out.Correct {
		c.grant(src)
		c.store.Dispatch(state.IncrementScore(out.Difficulty.Bonus()))
		c.audio.PlayPowerUp()
	}

	if len(c.quizQueue) > 0 {
		c.askNext()
		return true
	}
	c.store.Dispatch(state.Resume)
	return true
}

func (c *Controller) grant(src quiz.Source) {
	switch src {
	case quiz.SourceShield:
		c.store.Dispatch(state.ActivateShield)
	case quiz.SourceBomb:
		c.store.Dispatch(state.AddBomb)
	case quiz.SourceRandom:
		if c.rand() < 0.5 {
			c.store.Dispatch(state.ActivateShield)
		} else {
			c.store.Dispatch(state.AddBomb)
		}
	case quiz.SourceMilestone:
		c.store.Dispatch(state.AddExtraBullet)
		c.store.Dispatch(state.ActivateSpeedBoost(c.clock))
	}
}
