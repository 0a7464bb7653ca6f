package loop

import (
	"github.com/tomz197/skyquiz/internal/object"
	"github.com/tomz197/skyquiz/internal/quiz"
	"github.com/tomz197/skyquiz/internal/state"
)

// hooks routes resolver callbacks into the store, audio and presentation.
// One value lives for one tick.
//
// The resolver reports an avatar collision as LoseLife, then EnemyDestroyed
// when an enemy was rammed, then AvatarHit. Each collision plays one cue: the
// avatar's.
type hooks struct {
	c *Controller

	colliding bool // between LoseLife and AvatarHit
	down      bool // the avatar had no life left before this collision
}

func (h *hooks) AwardScore(points int) {
	h.c.store.Dispatch(state.IncrementScore(points))
}

func (h *hooks) LoseLife() bool {
	prev := h.c.store.State()
	h.colliding = true
	h.down = prev.Lives == 0 && !prev.PowerUps.Shield
	return h.c.store.Dispatch(state.LoseLife).Lives == 0
}

func (h *hooks) EnemyDestroyed(x, y float64, class object.SizeClass) {
	if !h.colliding {
		h.c.audio.PlayExplosion()
	}
	h.c.fx.EnemyDestroyed(x, y, class)
}

func (h *hooks) EnemyDamaged() {
	h.c.audio.PlayBulletHit()
	h.c.fx.EnemyDamaged()
}

// AvatarHit is skipped entirely for hits after the last life was already lost
// this tick.
func (h *hooks) AvatarHit(fatal bool) {
	h.colliding = false
	if h.down {
		return
	}
	if fatal {
		h.c.audio.PlayExplosion()
	} else {
		h.c.audio.PlayHit()
	}
	h.c.fx.AvatarHit(fatal)
}

func (h *hooks) RewardTriggered(kind object.RewardKind) {
	h.c.enqueueQuiz(quiz.SourceForReward(kind))
}
