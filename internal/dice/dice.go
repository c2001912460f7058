// Package dice rolls polyhedral dice from an injected random source.
package dice

import "errors"

var (
	// ErrMissingDice is returned when a roll names no dice.
	ErrMissingDice = errors.New("at least one die spec is required")
	// ErrInvalidDiceSpec is returned for non-positive sides or counts.
	ErrInvalidDiceSpec = errors.New("dice spec must have positive sides and count")
)

// Source is the random source dice draw from. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Spec describes Count dice with Sides faces each.
type Spec struct {
	Sides int
	Count int
}

// Roll holds the faces rolled for one Spec.
type Roll struct {
	Sides   int
	Results []int
	Total   int
}

// Result is the outcome of a full request.
type Result struct {
	Rolls []Roll
	Total int
}

// ThreeD6 is the check roll used for night chores.
var ThreeD6 = []Spec{{Sides: 6, Count: 3}}

// RollWithRng rolls specs in order using src.
//
// Roll entries in the Result appear in the same order as specs. Result.Total
// is the sum of every die rolled.
func RollWithRng(src Source, specs []Spec) (Result, error) {
	if len(specs) == 0 {
		return Result{}, ErrMissingDice
	}

	rolls := make([]Roll, 0, len(specs))
	total := 0

	for _, spec := range specs {
		if spec.Sides <= 0 || spec.Count <= 0 {
			return Result{}, ErrInvalidDiceSpec
		}

		results := make([]int, spec.Count)
		rollTotal := 0
		for i := 0; i < spec.Count; i++ {
			value := rollDie(src, spec.Sides)
			results[i] = value
			rollTotal += value
		}

		rolls = append(rolls, Roll{
			Sides:   spec.Sides,
			Results: results,
			Total:   rollTotal,
		})
		total += rollTotal
	}

	return Result{
		Rolls: rolls,
		Total: total,
	}, nil
}

// Roll3d6 returns the sum of three six-sided dice.
func Roll3d6(src Source) int {
	// ThreeD6 is a valid spec, so the error is always nil.
	res, _ := RollWithRng(src, ThreeD6)
	return res.Total
}

func rollDie(src Source, sides int) int {
	return src.Intn(sides) + 1
}
