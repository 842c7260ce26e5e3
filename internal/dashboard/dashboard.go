package dashboard

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/junkd0g/pokeviz/internal/diagram"
	"github.com/junkd0g/pokeviz/internal/logging"
)

// Renderer draws a single view.
type Renderer interface {
	Draw(cmd RenderCommand) error
}

// Dashboard owns the current State and is its only writer. Selections are
// applied one at a time and every render command finishes before Select
// returns.
type Dashboard struct {
	mu       sync.Mutex
	state    State
	renderer Renderer
	log      *logging.Logger
}

// NewDashboard wraps an initial state. A nil logger discards output.
func NewDashboard(state State, renderer Renderer, log *logging.Logger) *Dashboard {
	if log == nil {
		log = logging.Discard()
	}
	return &Dashboard{state: state, renderer: renderer, log: log}
}

// State returns a snapshot of the current state.
func (d *Dashboard) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Start draws the initial views.
func (d *Dashboard) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.draw(d.state.Initial())
}

// Select makes label the current category and redraws every view. The
// selection is kept even if drawing fails.
func (d *Dashboard) Select(label string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	next, cmds := d.state.OnCategorySelected(label)
	d.state = next
	d.log.Info("selected category %q", label)

	return d.draw(cmds)
}

func (d *Dashboard) draw(cmds []RenderCommand) error {
	for _, cmd := range cmds {
		if err := d.renderer.Draw(cmd); err != nil {
			return fmt.Errorf("failed to draw %s: %w", cmd.Target, err)
		}
		d.log.Debug("drew %s for %q", cmd.Target, cmd.Category)
	}
	return nil
}

// FileRenderer writes each view to <Dir>/<target>.<format> for every
// configured format.
type FileRenderer struct {
	Dir     string
	Formats []diagram.Format
}

// Draw implements Renderer.
func (r FileRenderer) Draw(cmd RenderCommand) error {
	formats := r.Formats
	if len(formats) == 0 {
		formats = []diagram.Format{diagram.FormatSVG}
	}
	for _, f := range formats {
		if err := diagram.Generate(cmd.Scene, r.Path(cmd.Target, f)); err != nil {
			return err
		}
	}
	return nil
}

// Path is where a view in the given format is written.
func (r FileRenderer) Path(target Target, f diagram.Format) string {
	return filepath.Join(r.Dir, string(target)+"."+string(f))
}
