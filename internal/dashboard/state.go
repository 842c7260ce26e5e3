package dashboard

import (
	"github.com/junkd0g/pokeviz/internal/aggregate"
	"github.com/junkd0g/pokeviz/internal/diagram"
	"github.com/junkd0g/pokeviz/internal/record"
	"github.com/junkd0g/pokeviz/internal/scene"
)

// Target names the view a render command redraws.
type Target string

const (
	TargetOverview Target = "overview"
	TargetRadar    Target = "radar"
	TargetParallel Target = "parallel"
)

// RenderCommand is one fully built view ready to be drawn.
type RenderCommand struct {
	Target   Target
	Category string
	Scene    *scene.Scene
}

// State is the dashboard's application state. It is a value: transitions
// return a new State and never touch the receiver. Records and summaries are
// shared between states and must not be modified.
type State struct {
	records   []record.Record
	summaries []aggregate.Summary
	layout    diagram.Layout

	selected     string
	hasSelection bool
}

// New aggregates the records, sorts the summaries by mean mass and selects
// the heaviest category. The selection stays unset when there are no records.
func New(records []record.Record, layout diagram.Layout) State {
	summaries := aggregate.Aggregate(records)
	aggregate.SortByMass(summaries)

	s := State{
		records:   records,
		summaries: summaries,
		layout:    layout,
	}
	if len(summaries) > 0 {
		s.selected = summaries[0].Category
		s.hasSelection = true
	}
	return s
}

// Current returns the selected category and whether one is set.
func (s State) Current() (string, bool) {
	return s.selected, s.hasSelection
}

// Summaries returns the per-category means, heaviest first.
func (s State) Summaries() []aggregate.Summary {
	return s.summaries
}

// Records returns the loaded dataset.
func (s State) Records() []record.Record {
	return s.records
}

// Layout returns the view geometry used for rendering.
func (s State) Layout() diagram.Layout {
	return s.layout
}

// Categories lists the category labels in display order.
func (s State) Categories() []string {
	out := make([]string, len(s.summaries))
	for i, sum := range s.summaries {
		out[i] = sum.Category
	}
	return out
}

// Initial returns the first paint: the overview, plus the detail views when
// a category is selected.
func (s State) Initial() []RenderCommand {
	if !s.hasSelection {
		return []RenderCommand{s.overview()}
	}
	return s.commands()
}

// OnCategorySelected records label as the selection and returns the commands
// that redraw every view for it. Labels are not validated: an unknown
// category yields empty detail views.
func (s State) OnCategorySelected(label string) (State, []RenderCommand) {
	next := s
	next.selected = label
	next.hasSelection = true
	return next, next.commands()
}

// Report bundles the state for the HTML dashboard.
func (s State) Report() *diagram.Report {
	return &diagram.Report{
		Summaries: s.summaries,
		Records:   s.records,
		Selected:  s.selected,
		Layout:    s.layout,
	}
}

func (s State) commands() []RenderCommand {
	return []RenderCommand{
		s.overview(),
		{
			Target:   TargetRadar,
			Category: s.selected,
			Scene:    diagram.Radar(s.records, s.selected, s.layout.Radar),
		},
		{
			Target:   TargetParallel,
			Category: s.selected,
			Scene:    diagram.Parallel(s.records, s.selected, s.layout.Parallel),
		},
	}
}

func (s State) overview() RenderCommand {
	return RenderCommand{
		Target:   TargetOverview,
		Category: s.selected,
		Scene:    diagram.Overview(s.summaries, s.selected, s.layout.Overview),
	}
}
