// Package scale maps data values to canvas coordinates.
//
// The scales follow the d3-scale conventions the charts were designed with:
// a degenerate linear domain maps to the middle of the range, band and point
// scales distribute categories with proportional padding.
package scale

import (
	"math"
)

// Linear is a continuous scale from Domain to Range.
type Linear struct {
	Domain [2]float64
	Range  [2]float64
}

// NewLinear builds a linear scale.
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{Domain: [2]float64{d0, d1}, Range: [2]float64{r0, r1}}
}

// Map converts a domain value to a range value. Values outside the domain
// extrapolate. NaN maps to NaN.
func (s Linear) Map(v float64) float64 {
	d0, d1 := s.Domain[0], s.Domain[1]
	var t float64
	switch span := d1 - d0; {
	case math.IsNaN(span):
		return math.NaN()
	case span == 0:
		t = 0.5
	default:
		t = (v - d0) / span
	}
	return s.Range[0] + t*(s.Range[1]-s.Range[0])
}

// Ticks returns roughly count evenly spaced round values inside the domain.
func (s Linear) Ticks(count int) []float64 {
	return Ticks(s.Domain[0], s.Domain[1], count)
}

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// Ticks returns about count round numbers between start and stop inclusive,
// using 1, 2 and 5 multiples of a power of ten as the step.
func Ticks(start, stop float64, count int) []float64 {
	if math.IsNaN(start) || math.IsNaN(stop) || math.IsInf(start, 0) || math.IsInf(stop, 0) || count <= 0 {
		return nil
	}
	if start == stop {
		return []float64{start}
	}

	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}

	step := tickIncrement(start, stop, count)
	if step == 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil
	}

	var ticks []float64
	if step > 0 {
		lo := math.Ceil(start / step)
		hi := math.Floor(stop / step)
		for i := lo; i <= hi; i++ {
			ticks = append(ticks, i*step)
		}
	} else {
		step = -step
		lo := math.Ceil(start * step)
		hi := math.Floor(stop * step)
		for i := lo; i <= hi; i++ {
			ticks = append(ticks, i/step)
		}
	}

	if reverse {
		for i, j := 0, len(ticks)-1; i < j; i, j = i+1, j-1 {
			ticks[i], ticks[j] = ticks[j], ticks[i]
		}
	}
	return ticks
}

// tickIncrement returns a positive step, or the negated inverse of a step
// below 1 so that tick values are computed without rounding error.
func tickIncrement(start, stop float64, count int) float64 {
	step := (stop - start) / math.Max(0, float64(count))
	power := math.Floor(math.Log10(step))
	e := step / math.Pow(10, power)

	factor := 1.0
	switch {
	case e >= e10:
		factor = 10
	case e >= e5:
		factor = 5
	case e >= e2:
		factor = 2
	}

	if power >= 0 {
		return factor * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / factor
}

// Band divides a continuous range into equal bands, one per domain value.
type Band struct {
	domain    []string
	index     map[string]int
	start     float64
	step      float64
	bandwidth float64
}

// NewBand lays out domain across [r0, r1] with the given inner and outer
// padding, expressed as fractions of the step.
func NewBand(domain []string, r0, r1, paddingInner, paddingOuter float64) *Band {
	b := &Band{
		domain: append([]string(nil), domain...),
		index:  make(map[string]int, len(domain)),
	}
	for i, d := range b.domain {
		if _, ok := b.index[d]; !ok {
			b.index[d] = i
		}
	}

	n := float64(len(b.domain))
	b.step = (r1 - r0) / math.Max(1, n-paddingInner+paddingOuter*2)
	b.start = r0 + (r1-r0-b.step*(n-paddingInner))*0.5
	b.bandwidth = b.step * (1 - paddingInner)
	return b
}

// NewPoint is a band scale with zero-width bands, used to place axes.
func NewPoint(domain []string, r0, r1, padding float64) *Band {
	return NewBand(domain, r0, r1, 1, padding)
}

// Map returns the start of the band for value and whether value is in the domain.
func (b *Band) Map(value string) (float64, bool) {
	i, ok := b.index[value]
	if !ok {
		return math.NaN(), false
	}
	return b.start + b.step*float64(i), true
}

// Center returns the middle of the band for value.
func (b *Band) Center(value string) (float64, bool) {
	x, ok := b.Map(value)
	return x + b.bandwidth/2, ok
}

// Bandwidth is the width of each band.
func (b *Band) Bandwidth() float64 { return b.bandwidth }

// Step is the distance between the starts of adjacent bands.
func (b *Band) Step() float64 { return b.step }

// Domain returns the categories in order.
func (b *Band) Domain() []string { return append([]string(nil), b.domain...) }
