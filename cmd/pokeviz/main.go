package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/junkd0g/pokeviz/internal/aggregate"
	"github.com/junkd0g/pokeviz/internal/app"
	"github.com/junkd0g/pokeviz/internal/dashboard"
	"github.com/junkd0g/pokeviz/internal/diagram"
	"github.com/junkd0g/pokeviz/internal/record"
)

var (
	configPath string
	dataPath   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pokeviz",
		Short: "Average weight, height and traits of Pokémon by type",
		Long: `pokeviz aggregates a Pokémon dataset by primary type and renders an overview
bar/line chart, a radar chart and a parallel-coordinates chart of the selected type.

The config file is read from --config or POKEVIZ_CONFIG; a .env file in the working
directory is loaded first. LOG_LEVEL=ERROR|WARN|INFO|DEBUG overrides the configured level.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a TOML config file")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Dataset path (CSV or XLSX), overrides data.path")

	rootCmd.AddCommand(
		newRenderCmd(),
		newSummaryCmd(),
		newSelectCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRenderCmd() *cobra.Command {
	var (
		selected string
		outDir   string
		noHTML   bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render every view and the HTML dashboard",
		Long: `Render the overview, radar and parallel views for the initial selection (the
heaviest type) or for --select, plus dashboard.html unless --no-html is given.

Example: pokeviz render --data pokemon_alopez247.csv --select Water --out ./charts`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Load(configPath, dataPath)
			if err != nil {
				return err
			}
			if outDir != "" {
				a.Config.Output.Dir = outDir
			}
			if noHTML {
				a.Config.Output.HTML = false
			}
			return runRender(cmd, a, selected)
		},
	}

	cmd.Flags().StringVar(&selected, "select", "", "Type to select instead of the heaviest one")
	cmd.Flags().StringVar(&outDir, "out", "", "Output directory, overrides output.dir")
	cmd.Flags().BoolVar(&noHTML, "no-html", false, "Skip dashboard.html")

	return cmd
}

func runRender(cmd *cobra.Command, a *app.App, selected string) error {
	dash, err := a.Dashboard()
	if err != nil {
		return err
	}

	if selected != "" {
		err = dash.Select(selected)
	} else {
		err = dash.Start()
	}
	if err != nil {
		return err
	}

	r, _ := a.Renderer()
	for _, target := range []dashboard.Target{dashboard.TargetOverview, dashboard.TargetRadar, dashboard.TargetParallel} {
		for _, f := range r.Formats {
			fmt.Fprintln(cmd.OutOrStdout(), r.Path(target, f))
		}
	}

	if !a.Config.Output.HTML {
		return nil
	}
	htmlPath := filepath.Join(a.Config.Output.Dir, "dashboard.html")
	if err := diagram.GenerateHTML(dash.State().Report(), htmlPath, a.Config.HTMLConfig()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), htmlPath)
	return nil
}

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the per-type averages, heaviest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Load(configPath, dataPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), summaryTable(a.State))
			return nil
		},
	}
}

func newSelectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select [category]",
		Short: "Select a type and redraw the views for it",
		Long: `Select a type, the same as clicking its bar, and write the overview, radar and
parallel views to the output directory. Unknown types are accepted and give empty
detail views.

Example: pokeviz select Fire`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Load(configPath, dataPath)
			if err != nil {
				return err
			}
			dash, err := a.Dashboard()
			if err != nil {
				return err
			}
			if err := dash.Select(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), traitTable(dash.State(), args[0]))
			return nil
		},
	}
	return cmd
}

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	selectedStyle = cellStyle.Foreground(lipgloss.Color("10")).Bold(true)
)

func summaryTable(state dashboard.State) string {
	selected, _ := state.Current()
	summaries := state.Summaries()

	rows := make([][]string, len(summaries))
	for i, s := range summaries {
		rows[i] = []string{s.Category, strconv.Itoa(s.Count), formatFloat(s.Mass), formatFloat(s.Size)}
		for _, v := range s.Traits {
			rows[i] = append(rows[i], formatFloat(v))
		}
	}

	headers := []string{"Type", "Count", "Weight (kg)", "Height (m)"}
	for _, t := range record.Traits {
		headers = append(headers, t.String())
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(summaries) && summaries[row].Category == selected:
				return selectedStyle
			default:
				return cellStyle
			}
		}).
		String()
}

func traitTable(state dashboard.State, category string) string {
	means, n := aggregate.TraitMeans(state.Records(), category)
	extents := aggregate.TraitExtents(state.Records(), category)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Trait", "Mean", "Min", "Max").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, tr := range record.Traits {
		lo, hi := "-", "-"
		if e := extents[tr]; e.Valid {
			lo, hi = formatFloat(e.Min), formatFloat(e.Max)
		}
		t.Row(tr.String(), formatFloat(means[tr]), lo, hi)
	}

	return fmt.Sprintf("Selected type: %s (%d records)\n%s", category, n, t.String())
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
