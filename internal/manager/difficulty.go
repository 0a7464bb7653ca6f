package manager

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/tomz197/skyquiz/internal/object"
)

// Unbounded marks the open upper end of the last difficulty row.
const Unbounded = math.MaxInt

// DifficultyRow is one score band of the difficulty schedule.
// The band covers MinScore..MaxScore inclusive.
type DifficultyRow struct {
	Level            int
	MinScore         int
	MaxScore         int
	SpawnInterval    time.Duration
	SpeedMultiplier  float64
	LargeProbability float64
}

// DifficultyTable is an ordered, contiguous list of rows starting at score 0.
type DifficultyTable []DifficultyRow

// DefaultDifficulty is the production schedule.
var DefaultDifficulty = DifficultyTable{
	{Level: 1, MinScore: 0, MaxScore: 999, SpawnInterval: 2000 * time.Millisecond, SpeedMultiplier: 1.0, LargeProbability: 0.05},
	{Level: 2, MinScore: 1000, MaxScore: 2999, SpawnInterval: 1500 * time.Millisecond, SpeedMultiplier: 1.2, LargeProbability: 0.10},
	{Level: 3, MinScore: 3000, MaxScore: 4999, SpawnInterval: 1200 * time.Millisecond, SpeedMultiplier: 1.5, LargeProbability: 0.15},
	{Level: 4, MinScore: 5000, MaxScore: 7999, SpawnInterval: 800 * time.Millisecond, SpeedMultiplier: 1.8, LargeProbability: 0.20},
	{Level: 5, MinScore: 8000, MaxScore: Unbounded, SpawnInterval: 500 * time.Millisecond, SpeedMultiplier: 2.0, LargeProbability: 0.25},
}

var (
	ErrEmptyTable      = errors.New("difficulty table is empty")
	ErrTableGap        = errors.New("difficulty rows are not contiguous")
	ErrTableNotClosed  = errors.New("last difficulty row must be unbounded")
	ErrBadProbability  = errors.New("class probabilities must sum to 1")
	ErrBadRowParameter = errors.New("invalid difficulty row")
)

// Validate checks the table covers [0, ∞) with no gaps or overlaps.
func (t DifficultyTable) Validate() error {
	if len(t) == 0 {
		return ErrEmptyTable
	}
	next := 0
	for i, row := range t {
		if row.MinScore != next {
			return fmt.Errorf("row %d starts at %d, want %d: %w", i, row.MinScore, next, ErrTableGap)
		}
		if row.MaxScore < row.MinScore {
			return fmt.Errorf("row %d ends before it starts: %w", i, ErrTableGap)
		}
		if row.SpawnInterval <= 0 || row.SpeedMultiplier <= 0 {
			return fmt.Errorf("row %d: %w", i, ErrBadRowParameter)
		}
		if err := row.Weights().Validate(); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		if row.MaxScore == Unbounded {
			if i != len(t)-1 {
				return fmt.Errorf("row %d is unbounded but not last: %w", i, ErrTableGap)
			}
			return nil
		}
		next = row.MaxScore + 1
	}
	return ErrTableNotClosed
}

// Select returns the row containing score. Negative scores map to the first
// row. The table must be valid.
func (t DifficultyTable) Select(score int) DifficultyRow {
	for _, row := range t {
		if score <= row.MaxScore {
			return row
		}
	}
	return t[len(t)-1]
}

// ClassWeights holds the spawn probability of each size class.
type ClassWeights [3]float64

// BaseWeights returns the class probabilities from the size-class table.
func BaseWeights() ClassWeights {
	var w ClassWeights
	for _, c := range object.Classes() {
		w[c] = c.Spec().Probability
	}
	return w
}

// Weights returns the row's class probabilities. Large takes the row's
// probability; small and medium split the rest in their base ratio.
func (r DifficultyRow) Weights() ClassWeights {
	base := BaseWeights()
	rest := 1 - r.LargeProbability
	shared := base[object.ClassSmall] + base[object.ClassMedium]
	return ClassWeights{
		object.ClassSmall:  rest * base[object.ClassSmall] / shared,
		object.ClassMedium: rest * base[object.ClassMedium] / shared,
		object.ClassLarge:  r.LargeProbability,
	}
}

// Validate checks every weight is in [0, 1] and the weights sum to 1.
func (w ClassWeights) Validate() error {
	sum := 0.0
	for _, p := range w {
		if p < 0 || p > 1 {
			return ErrBadProbability
		}
		sum += p
	}
	if math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("sum is %v: %w", sum, ErrBadProbability)
	}
	return nil
}

// Sample maps a uniform draw u in [0, 1) onto a class using cumulative
// probabilities: small first, then medium, otherwise large.
func (w ClassWeights) Sample(u float64) object.SizeClass {
	if u < w[object.ClassSmall] {
		return object.ClassSmall
	}
	if u < w[object.ClassSmall]+w[object.ClassMedium] {
		return object.ClassMedium
	}
	return object.ClassLarge
}
