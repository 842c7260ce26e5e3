// Package aggregate rolls records up into per-category statistics.
package aggregate

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/junkd0g/pokeviz/internal/record"
)

// Summary holds the mean of every numeric attribute for one category.
type Summary struct {
	Category string                    `json:"category"`
	Count    int                       `json:"count"`
	Mass     float64                   `json:"avgWeight"`
	Size     float64                   `json:"avgHeight"`
	Traits   [record.NumTraits]float64 `json:"avgTraits"`
}

// Extent is the observed [Min, Max] of a set of values. Valid is false when the
// set held no numeric value, in which case Min and Max are NaN.
type Extent struct {
	Min   float64
	Max   float64
	Valid bool
}

// Aggregate groups records by exact category label and averages each attribute.
// Summaries come back in the order their category was first seen.
func Aggregate(records []record.Record) []Summary {
	order := []string{}
	groups := make(map[string][]record.Record)
	for _, r := range records {
		if _, ok := groups[r.Category]; !ok {
			order = append(order, r.Category)
		}
		groups[r.Category] = append(groups[r.Category], r)
	}

	summaries := make([]Summary, 0, len(order))
	for _, cat := range order {
		summaries = append(summaries, summarize(cat, groups[cat]))
	}
	return summaries
}

func summarize(category string, group []record.Record) Summary {
	s := Summary{
		Category: category,
		Count:    len(group),
		Mass:     mean(group, func(r record.Record) float64 { return r.Mass }),
		Size:     mean(group, func(r record.Record) float64 { return r.Size }),
	}
	for _, t := range record.Traits {
		s.Traits[t] = mean(group, func(r record.Record) float64 { return r.Trait(t) })
	}
	return s
}

// mean is the arithmetic mean; a NaN anywhere makes the result NaN.
func mean(group []record.Record, value func(record.Record) float64) float64 {
	if len(group) == 0 {
		return math.NaN()
	}
	xs := make([]float64, len(group))
	for i, r := range group {
		xs[i] = value(r)
	}
	return stat.Mean(xs, nil)
}

// SortByMass orders summaries by descending mean mass. Ties keep their input
// order and NaN masses go last.
func SortByMass(summaries []Summary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i].Mass, summaries[j].Mass
		if math.IsNaN(a) {
			return false
		}
		if math.IsNaN(b) {
			return true
		}
		return a > b
	})
}

// Filter returns the records of one category, in input order.
func Filter(records []record.Record, category string) []record.Record {
	var out []record.Record
	for _, r := range records {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// TraitMeans averages the six traits over the records of one category and
// reports how many records matched. With no match every mean is NaN.
func TraitMeans(records []record.Record, category string) ([record.NumTraits]float64, int) {
	group := Filter(records, category)

	var means [record.NumTraits]float64
	for _, t := range record.Traits {
		means[t] = mean(group, func(r record.Record) float64 { return r.Trait(t) })
	}
	return means, len(group)
}

// TraitExtents returns the per-trait minimum and maximum over the records of
// one category, without averaging.
func TraitExtents(records []record.Record, category string) [record.NumTraits]Extent {
	group := Filter(records, category)

	var extents [record.NumTraits]Extent
	for _, t := range record.Traits {
		values := make([]float64, len(group))
		for i, r := range group {
			values[i] = r.Trait(t)
		}
		extents[t] = ExtentOf(values)
	}
	return extents
}

// ExtentOf returns the min and max of values, skipping NaN.
func ExtentOf(values []float64) Extent {
	numeric := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			numeric = append(numeric, v)
		}
	}

	lo, err := stats.Min(numeric)
	if err != nil {
		return Extent{Min: math.NaN(), Max: math.NaN()}
	}
	hi, err := stats.Max(numeric)
	if err != nil {
		return Extent{Min: math.NaN(), Max: math.NaN()}
	}
	return Extent{Min: lo, Max: hi, Valid: true}
}
