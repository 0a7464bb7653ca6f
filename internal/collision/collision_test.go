package collision_test

import (
	"math/rand"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/tomz197/skyquiz/internal/collision"
	"github.com/tomz197/skyquiz/internal/collision/mocks"
	"github.com/tomz197/skyquiz/internal/object"
)

var area = object.PlayArea{Width: 800, Height: 600}

func enemyAt(c object.SizeClass, x, y float64) *object.Enemy {
	e := object.NewEnemy(c, x, 1)
	e.Y = y
	return e
}

func TestProjectileDestroysSmallEnemy(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockLedger(ctrl)
	fx := mocks.NewMockEffects(ctrl)

	e := enemyAt(object.ClassSmall, 100, 100)
	p := object.NewProjectile(100, 110)

	ledger.EXPECT().AwardScore(10)
	fx.EXPECT().EnemyDestroyed(100.0, 100.0, object.ClassSmall)

	r := collision.NewResolver(area)
	r.ResolveAll([]*object.Projectile{p}, []*object.Enemy{e}, nil, nil, nil, ledger, fx)

	if p.IsActive() || e.IsActive() {
		t.Error("projectile and enemy should both be inactive")
	}
}

func TestProjectileDamagesMediumEnemy(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockLedger(ctrl)
	fx := mocks.NewMockEffects(ctrl)

	e := enemyAt(object.ClassMedium, 100, 100)
	p := object.NewProjectile(100, 110)

	fx.EXPECT().EnemyDamaged()

	r := collision.NewResolver(area)
	r.ResolveAll([]*object.Projectile{p}, []*object.Enemy{e}, nil, nil, nil, ledger, fx)

	if p.IsActive() {
		t.Error("projectile should be consumed")
	}
	if !e.IsActive() || e.Health != 4 {
		t.Errorf("enemy active=%v health=%d, want active with 4", e.IsActive(), e.Health)
	}
}

func TestProjectileHitsLowestIndexOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockLedger(ctrl)
	fx := mocks.NewMockEffects(ctrl)

	first := enemyAt(object.ClassMedium, 100, 100)
	second := enemyAt(object.ClassMedium, 110, 100)
	p := object.NewProjectile(105, 100)

	fx.EXPECT().EnemyDamaged().Times(1)

	r := collision.NewResolver(area)
	r.ResolveAll([]*object.Projectile{p}, []*object.Enemy{first, second}, nil, nil, nil, ledger, fx)

	if first.Health != 4 || second.Health != 5 {
		t.Errorf("health = %d/%d, want 4/5", first.Health, second.Health)
	}
}

func TestTouchingEdgesDoNotCollide(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockLedger(ctrl)
	fx := mocks.NewMockEffects(ctrl)

	// Enemy box spans x 76..124, projectile box spans 124..140.
	e := enemyAt(object.ClassSmall, 100, 100)
	p := object.NewProjectile(132, 100)

	r := collision.NewResolver(area)
	r.ResolveAll([]*object.Projectile{p}, []*object.Enemy{e}, nil, nil, nil, ledger, fx)

	if !p.IsActive() || !e.IsActive() {
		t.Error("edge-touching boxes must not collide")
	}
}

func TestEnemyKilledByShotDoesNotHitAvatar(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockLedger(ctrl)
	fx := mocks.NewMockEffects(ctrl)

	avatar := object.NewAvatar(area)
	e := enemyAt(object.ClassSmall, avatar.X, avatar.Y)
	p := object.NewProjectile(avatar.X, avatar.Y)

	ledger.EXPECT().AwardScore(10)
	fx.EXPECT().EnemyDestroyed(gomock.Any(), gomock.Any(), object.ClassSmall).Times(1)

	r := collision.NewResolver(area)
	r.ResolveAll([]*object.Projectile{p}, []*object.Enemy{e}, avatar, nil, nil, ledger, fx)
}

func TestAvatarRamsEnemy(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockLedger(ctrl)
	fx := mocks.NewMockEffects(ctrl)

	avatar := object.NewAvatar(area)
	e := enemyAt(object.ClassLarge, avatar.X, avatar.Y-40)

	gomock.InOrder(
		ledger.EXPECT().LoseLife().Return(true),
		fx.EXPECT().EnemyDestroyed(avatar.X, avatar.Y-40, object.ClassLarge),
		fx.EXPECT().AvatarHit(true),
	)

	r := collision.NewResolver(area)
	r.ResolveAll(nil, []*object.Enemy{e}, avatar, nil, nil, ledger, fx)

	if e.IsActive() {
		t.Error("rammed enemy should be deactivated")
	}
}

func TestAvatarHitByEnemyShot(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockLedger(ctrl)
	fx := mocks.NewMockEffects(ctrl)

	avatar := object.NewAvatar(area)
	hit := object.NewEnemyProjectile(avatar.X, avatar.Y, 0)
	miss := object.NewEnemyProjectile(10, 10, 0)

	ledger.EXPECT().LoseLife().Return(false)
	fx.EXPECT().AvatarHit(false)

	r := collision.NewResolver(area)
	r.ResolveAll(nil, nil, avatar, []*object.EnemyProjectile{hit, miss}, nil, ledger, fx)

	if hit.IsActive() || !miss.IsActive() {
		t.Error("only the overlapping shot should be consumed")
	}
}

func TestAvatarCollectsPickup(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockLedger(ctrl)
	fx := mocks.NewMockEffects(ctrl)

	avatar := object.NewAvatar(area)
	p := object.NewPickup(object.RewardRandom, avatar.X)
	p.Y = avatar.Y

	fx.EXPECT().RewardTriggered(object.RewardRandom)

	r := collision.NewResolver(area)
	r.ResolveAll(nil, nil, avatar, nil, []*object.Pickup{p}, ledger, fx)

	if p.IsActive() {
		t.Error("collected pickup should be deactivated")
	}
}

// countingLedger records calls without expectations.
type countingLedger struct {
	score int
	lost  int
}

func (l *countingLedger) AwardScore(points int) { l.score += points }
func (l *countingLedger) LoseLife() bool        { l.lost++; return false }

type nopEffects struct{}

func (nopEffects) EnemyDestroyed(float64, float64, object.SizeClass) {}
func (nopEffects) EnemyDamaged()                                     {}
func (nopEffects) AvatarHit(bool)                                    {}
func (nopEffects) RewardTriggered(object.RewardKind)                 {}

// bruteForce is the reference full pairwise scan for step 1.
func bruteForce(shots []*object.Projectile, enemies []*object.Enemy) (hits []int, score int) {
	hits = make([]int, len(shots))
	for i, p := range shots {
		hits[i] = -1
		for j, e := range enemies {
			if !e.IsActive() || !p.Bounds().Overlaps(e.Bounds()) {
				continue
			}
			hits[i] = j
			p.Deactivate()
			if e.Hit(object.ProjectileDamage) {
				score += e.Class.Spec().Score
			}
			break
		}
	}
	return hits, score
}

func TestGridMatchesPairwiseScan(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	r := collision.NewResolver(area)

	for round := range 200 {
		var shotsA, shotsB []*object.Projectile
		var enemiesA, enemiesB []*object.Enemy
		for range 40 {
			c := object.Classes()[rng.Intn(3)]
			x, y := rng.Float64()*900-50, rng.Float64()*700-100
			enemiesA = append(enemiesA, enemyAt(c, x, y))
			enemiesB = append(enemiesB, enemyAt(c, x, y))
		}
		for range 60 {
			x, y := rng.Float64()*900-50, rng.Float64()*700-100
			shotsA = append(shotsA, object.NewProjectile(x, y))
			shotsB = append(shotsB, object.NewProjectile(x, y))
		}

		ledger := &countingLedger{}
		r.ResolveAll(shotsA, enemiesA, nil, nil, nil, ledger, nopEffects{})
		_, wantScore := bruteForce(shotsB, enemiesB)

		if ledger.score != wantScore {
			t.Fatalf("round %d: score %d, want %d", round, ledger.score, wantScore)
		}
		for i := range enemiesA {
			if enemiesA[i].Health != enemiesB[i].Health {
				t.Fatalf("round %d: enemy %d health %d, want %d", round, i, enemiesA[i].Health, enemiesB[i].Health)
			}
		}
		for i := range shotsA {
			if shotsA[i].IsActive() == shotsB[i].IsActive() {
				continue
			}
			t.Fatalf("round %d: shot %d active mismatch", round, i)
		}
	}
}
