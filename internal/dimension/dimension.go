// Package dimension defines the five processing dimensions and the
// probability vector indexed by them.
package dimension

import (
	"fmt"
	"math"
	"strings"
)

// #region dimension
// Dimension is one of the five top-level processing modes.
type Dimension int

const (
	Movement Dimension = iota
	Evolution
	Being
	Design
	Space
)

// Count is the number of dimensions.
const Count = 5

var names = [Count]string{"Movement", "Evolution", "Being", "Design", "Space"}

// All returns every dimension in canonical order.
func All() [Count]Dimension {
	return [Count]Dimension{Movement, Evolution, Being, Design, Space}
}

// Valid reports whether d is one of the five dimensions.
func (d Dimension) Valid() bool {
	return d >= Movement && d <= Space
}

func (d Dimension) String() string {
	if !d.Valid() {
		return "Unknown"
	}
	return names[d]
}

// Parse matches a dimension name case-insensitively.
func Parse(name string) (Dimension, error) {
	for i, n := range names {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Dimension(i), nil
		}
	}
	return 0, fmt.Errorf("unknown dimension %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (d Dimension) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid dimension %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Dimension) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// #endregion dimension

// #region vector
// Vector is a probability mass over the five dimensions, indexed by Dimension.
type Vector [Count]float64

// Uniform returns the maximum-entropy vector (0.2 each).
func Uniform() Vector {
	return Vector{0.2, 0.2, 0.2, 0.2, 0.2}
}

// OneHot returns a vector with all mass on d.
func OneHot(d Dimension) Vector {
	var v Vector
	v[d] = 1
	return v
}

// Get returns the probability of d.
func (v Vector) Get(d Dimension) float64 {
	return v[d]
}

// Sum returns the total mass.
func (v Vector) Sum() float64 {
	var s float64
	for _, p := range v {
		s += p
	}
	return s
}

// Normalize scales v to sum to 1. A vector with no mass normalizes to Uniform.
func (v Vector) Normalize() Vector {
	total := v.Sum()
	if total == 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return Uniform()
	}
	var out Vector
	for i, p := range v {
		out[i] = p / total
	}
	return out
}

// Primary returns the highest-probability dimension. Ties go to the earlier
// dimension in canonical order.
func (v Vector) Primary() Dimension {
	best := Movement
	for _, d := range All() {
		if v[d] > v[best] {
			best = d
		}
	}
	return best
}

// Secondary returns the second-highest dimension.
func (v Vector) Secondary() Dimension {
	primary := v.Primary()
	second := Dimension(-1)
	for _, d := range All() {
		if d == primary {
			continue
		}
		if second < 0 || v[d] > v[second] {
			second = d
		}
	}
	return second
}

// Map returns the vector keyed by dimension name.
func (v Vector) Map() map[string]float64 {
	m := make(map[string]float64, Count)
	for _, d := range All() {
		m[d.String()] = v[d]
	}
	return m
}

// FromMap builds a vector from a name-keyed map. Missing names are zero.
func FromMap(m map[string]float64) (Vector, error) {
	var v Vector
	for name, p := range m {
		d, err := Parse(name)
		if err != nil {
			return Vector{}, err
		}
		v[d] = p
	}
	return v, nil
}

// Slice returns the components in canonical order.
func (v Vector) Slice() []float64 {
	out := make([]float64, Count)
	copy(out, v[:])
	return out
}

// #endregion vector
