package dice

import (
	"math/rand"
	"testing"
)

// faces replays fixed die faces; Intn returns face-1 so rollDie yields face.
type faces struct {
	values []int
	next   int
}

func (f *faces) Intn(n int) int {
	v := f.values[f.next%len(f.values)]
	f.next++
	return v - 1
}

func TestRollWithRng(t *testing.T) {
	tests := []struct {
		name    string
		specs   []Spec
		wantErr error
	}{
		{name: "3d6", specs: ThreeD6},
		{name: "2d6 + 1d8", specs: []Spec{{Sides: 6, Count: 2}, {Sides: 8, Count: 1}}},
		{name: "no dice", specs: nil, wantErr: ErrMissingDice},
		{name: "invalid sides", specs: []Spec{{Sides: 0, Count: 1}}, wantErr: ErrInvalidDiceSpec},
		{name: "invalid count", specs: []Spec{{Sides: 6, Count: 0}}, wantErr: ErrInvalidDiceSpec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			result, err := RollWithRng(rng, tt.specs)
			if err != tt.wantErr {
				t.Fatalf("RollWithRng() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if len(result.Rolls) != len(tt.specs) {
				t.Fatalf("got %d rolls, want %d", len(result.Rolls), len(tt.specs))
			}

			sum := 0
			for i, roll := range result.Rolls {
				if len(roll.Results) != tt.specs[i].Count {
					t.Errorf("Roll[%d] got %d results, want %d", i, len(roll.Results), tt.specs[i].Count)
				}
				for _, v := range roll.Results {
					if v < 1 || v > roll.Sides {
						t.Errorf("Roll[%d] face %d out of range 1..%d", i, v, roll.Sides)
					}
				}
				sum += roll.Total
			}
			if sum != result.Total {
				t.Errorf("Total = %d, want %d", result.Total, sum)
			}
		})
	}
}

func TestRoll3d6(t *testing.T) {
	t.Run("scripted faces", func(t *testing.T) {
		got := Roll3d6(&faces{values: []int{2, 3, 4}})
		if got != 9 {
			t.Errorf("Roll3d6() = %d, want 9", got)
		}
	})

	t.Run("range", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 1000; i++ {
			got := Roll3d6(rng)
			if got < 3 || got > 18 {
				t.Fatalf("Roll3d6() = %d, out of [3,18]", got)
			}
		}
	})
}
