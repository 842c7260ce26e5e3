// Package record defines the creature observation model and loads datasets from disk.
package record

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Trait identifies one of the six battle statistics.
type Trait int

const (
	HP Trait = iota
	Attack
	Defense
	SpAtk
	SpDef
	Speed
)

// NumTraits is the number of battle traits carried by every record.
const NumTraits = 6

// Traits lists every trait in axis order.
var Traits = [NumTraits]Trait{HP, Attack, Defense, SpAtk, SpDef, Speed}

var traitNames = [NumTraits]string{"HP", "Attack", "Defense", "Sp_Atk", "Sp_Def", "Speed"}

// String returns the column-style name of the trait.
func (t Trait) String() string {
	if t < 0 || int(t) >= NumTraits {
		return "Trait(" + strconv.Itoa(int(t)) + ")"
	}
	return traitNames[t]
}

// Record is one observation: a creature with a category and eight numeric attributes.
type Record struct {
	Name     string
	Category string
	Mass     float64 // kg
	Size     float64 // m
	Traits   [NumTraits]float64
}

// Trait returns the value of a single battle trait.
func (r Record) Trait(t Trait) float64 {
	return r.Traits[t]
}

// Coerce converts a raw cell to a number the way JavaScript's unary plus does:
// surrounding whitespace is ignored, an empty cell is 0 and anything that does
// not parse is NaN.
func Coerce(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// ParseFloat reports overflow but still returns ±Inf.
		if errors.Is(err, strconv.ErrRange) {
			return v
		}
		return math.NaN()
	}
	return v
}

// parseStrict is Coerce without the lenient cases.
func parseStrict(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return math.NaN(), false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return math.NaN(), false
	}
	return v, true
}
