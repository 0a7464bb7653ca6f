// Package config centralizes all tunable game parameters.
package config

import "time"

// Play area - the logical canvas every session simulates on.
// Terminal and browser clients scale it to fit.
const (
	AreaWidth  = 800
	AreaHeight = 600

	// Resize requests beyond these are clamped.
	MaxAreaWidth  = 4096
	MaxAreaHeight = 4096
)

// Player
const (
	InitialLives         = 3
	InitialReviveChances = 3
	FireInterval         = 200 * time.Millisecond
	ExtraBulletSpacing   = 20.0 // px between parallel shots
	MaxExtraBullets      = 2
	MaxBombs             = 3
)

// Power-ups
const (
	SpeedBoostDuration   = 8 * time.Second
	SpeedBoostMultiplier = 1.5
)

// Spawning
const (
	PickupInterval = 10 * time.Second
	StarCount      = 60
)

// Scoring
const (
	PointsPerLevel = 1000
)

// ScoreMilestones are the scores that trigger a bonus quiz once per game.
// A correct answer grants an extra gun and a speed boost.
var ScoreMilestones = []int{1000, 3000, 5000, 8000, 12000}

// Quiz
const (
	QuizTimeLimit   = 15 * time.Second
	ReviveTimeLimit = 10 * time.Second
	QuizHistorySize = 10 // recently asked questions avoided on the next pick
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS

	// Terminals larger than this are letterboxed with a border.
	MaxTermWidth  = 160
	MaxTermHeight = 60

	ShutdownDisplaySeconds = 5.0
)

// Server tick rate
const (
	ServerTickRate = 60
	ServerTickTime = time.Second / ServerTickRate
)
