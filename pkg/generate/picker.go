package generate

import (
	"math"
	"math/rand/v2"
)

// Picker produces values from some distribution.
type Picker[T any] interface {
	Pick() T
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Constant always picks the same value.
type Constant[T any] struct {
	Value T
}

func (c Constant[T]) Pick() T { return c.Value }

// IntRange picks integers uniformly in [Min, Max].
type IntRange struct {
	Min, Max int
	rng      *rand.Rand
}

// NewIntRange returns an IntRange seeded with seed.
func NewIntRange(lo, hi int, seed uint64) *IntRange {
	return &IntRange{Min: lo, Max: hi, rng: newRand(seed)}
}

func (r *IntRange) Pick() int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + r.rng.IntN(r.Max-r.Min+1)
}

// FloatRange picks floats uniformly in [Min, Max).
type FloatRange struct {
	Min, Max float64
	rng      *rand.Rand
}

// NewFloatRange returns a FloatRange seeded with seed.
func NewFloatRange(lo, hi float64, seed uint64) *FloatRange {
	return &FloatRange{Min: lo, Max: hi, rng: newRand(seed)}
}

func (r *FloatRange) Pick() float64 {
	return r.Min + r.rng.Float64()*(r.Max-r.Min)
}

// Poisson picks non-negative integers from a Poisson distribution.
type Poisson struct {
	Lambda float64
	rng    *rand.Rand
}

// NewPoisson returns a Poisson picker with mean lambda.
func NewPoisson(lambda float64, seed uint64) *Poisson {
	return &Poisson{Lambda: lambda, rng: newRand(seed)}
}

// Pick uses Knuth's multiplication method.
func (p *Poisson) Pick() int {
	limit := math.Exp(-p.Lambda)
	k, prod := 0, p.rng.Float64()
	for prod > limit {
		k++
		prod *= p.rng.Float64()
	}
	return k
}

// Bernoulli picks true with probability P.
type Bernoulli struct {
	P   float64
	rng *rand.Rand
}

// NewBernoulli returns a Bernoulli picker seeded with seed.
func NewBernoulli(p float64, seed uint64) *Bernoulli {
	return &Bernoulli{P: p, rng: newRand(seed)}
}

func (b *Bernoulli) Pick() bool {
	if b.P <= 0 {
		return false
	}
	return b.rng.Float64() < b.P
}

// Weighted picks one of its choices with probability proportional to the
// choice's weight.
type Weighted[T any] struct {
	choices []T
	weights []float64
	total   float64
	src     Picker[float64]
}

// NewWeighted returns an empty choice drawing from src, which must pick
// uniformly in [0, 1).
func NewWeighted[T any](src Picker[float64]) *Weighted[T] {
	return &Weighted[T]{src: src}
}

// Add registers v with weight w and returns the picker.
func (w *Weighted[T]) Add(v T, weight float64) *Weighted[T] {
	w.choices = append(w.choices, v)
	w.weights = append(w.weights, weight)
	w.total += weight
	return w
}

// Pick panics if no choice was added.
func (w *Weighted[T]) Pick() T {
	r := w.src.Pick() * w.total
	for i, weight := range w.weights {
		if r < weight {
			return w.choices[i]
		}
		r -= weight
	}
	return w.choices[len(w.choices)-1]
}
