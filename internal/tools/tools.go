package tools

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/junkd0g/pokeviz/internal/aggregate"
	"github.com/junkd0g/pokeviz/internal/dashboard"
	"github.com/junkd0g/pokeviz/internal/diagram"
	"github.com/junkd0g/pokeviz/internal/logging"
	"github.com/junkd0g/pokeviz/internal/record"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Options configures where the tools write their output.
type Options struct {
	OutputDir string
	HTML      diagram.HTMLConfig
	Log       *logging.Logger
}

// Handlers serves the dashboard tools. Every selection goes through the
// Dashboard, which serialises concurrent calls.
type Handlers struct {
	dash *dashboard.Dashboard
	opts Options
}

// NewHandlers binds the tool handlers to a dashboard.
func NewHandlers(dash *dashboard.Dashboard, opts Options) *Handlers {
	if opts.Log == nil {
		opts.Log = logging.Discard()
	}
	return &Handlers{dash: dash, opts: opts}
}

// Register registers all tools with the MCP server.
func Register(s *server.MCPServer, h *Handlers) {
	registerListCategoriesTool(s, h)
	registerSelectCategoryTool(s, h)
	registerRenderDashboardTool(s, h)
}

func registerListCategoriesTool(s *server.MCPServer, h *Handlers) {
	tool := mcp.NewTool("list_categories",
		mcp.WithDescription("Lists every Pokémon type with its record count and average weight and height, heaviest first. The currently selected type is marked."),
	)

	s.AddTool(tool, h.ListCategories)
}

func registerSelectCategoryTool(s *server.MCPServer, h *Handlers) {
	tool := mcp.NewTool("select_category",
		mcp.WithDescription("Selects a Pokémon type, the same as clicking its bar. Highlights it in the overview and redraws the radar and parallel-coordinates views for it."),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("The type label to select, e.g. Fire. Matching is case-sensitive"),
		),
	)

	s.AddTool(tool, h.SelectCategory)
}

func registerRenderDashboardTool(s *server.MCPServer, h *Handlers) {
	tool := mcp.NewTool("render_dashboard",
		mcp.WithDescription("Writes a self-contained interactive HTML dashboard with the overview, radar and parallel-coordinates views for the current selection."),
		mcp.WithString("output_path",
			mcp.Description("The output path for the HTML file. Defaults to dashboard.html in the configured output directory"),
		),
	)

	s.AddTool(tool, h.RenderDashboard)
}

// ListCategories handles list_categories.
func (h *Handlers) ListCategories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state := h.dash.State()
	summaries := state.Summaries()
	if len(summaries) == 0 {
		return mcp.NewToolResultText("No categories loaded."), nil
	}

	selected, _ := state.Current()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d categories, heaviest first:\n\n", len(summaries))
	for i, s := range summaries {
		marker := " "
		if s.Category == selected {
			marker = "*"
		}
		fmt.Fprintf(&sb, "%s %d. %s: %d records, avg weight %s kg, avg height %s m\n",
			marker, i+1, s.Category, s.Count, formatMean(s.Mass), formatMean(s.Size))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// SelectCategory handles select_category.
func (h *Handlers) SelectCategory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category, ok := request.Params.Arguments["category"].(string)
	if !ok || category == "" {
		return newToolResultError("category is required"), nil
	}

	if err := h.dash.Select(category); err != nil {
		h.opts.Log.Error("select %q: %v", category, err)
		return newToolResultError(fmt.Sprintf("failed to render views: %v", err)), nil
	}

	return mcp.NewToolResultText(buildSummary(h.dash.State(), category)), nil
}

// RenderDashboard handles render_dashboard.
func (h *Handlers) RenderDashboard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	outputPath := filepath.Join(h.opts.OutputDir, "dashboard.html")
	if op, ok := request.Params.Arguments["output_path"].(string); ok && op != "" {
		outputPath = op
	}

	if filepath.Ext(outputPath) != ".html" {
		return newToolResultError(fmt.Sprintf("output_path must end in .html: %s", outputPath)), nil
	}

	state := h.dash.State()
	if err := diagram.GenerateHTML(state.Report(), outputPath, h.opts.HTML); err != nil {
		h.opts.Log.Error("render dashboard: %v", err)
		return newToolResultError(fmt.Sprintf("failed to generate dashboard: %v", err)), nil
	}

	h.opts.Log.Info("dashboard written to %s", outputPath)
	selected, _ := state.Current()
	return mcp.NewToolResultText(fmt.Sprintf(
		"Dashboard generated successfully!\n\nOutput: %s\nCategories: %d\nSelected type: %s\n",
		outputPath, len(state.Summaries()), selected,
	)), nil
}

func newToolResultError(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: message,
			},
		},
		IsError: true,
	}
}

func buildSummary(state dashboard.State, category string) string {
	summary := fmt.Sprintf("Selected type: %s\n\n", category)

	var found *aggregate.Summary
	for i, s := range state.Summaries() {
		if s.Category == category {
			found = &state.Summaries()[i]
			break
		}
	}
	if found == nil {
		return summary + "No records have this type; the radar and parallel views are empty.\n"
	}

	summary += fmt.Sprintf("Records: %d\nAvg weight: %s kg\nAvg height: %s m\n\nAverage traits:\n",
		found.Count, formatMean(found.Mass), formatMean(found.Size))

	extents := aggregate.TraitExtents(state.Records(), category)
	for t, mean := range found.Traits {
		e := extents[t]
		line := fmt.Sprintf("  - %s: %s", record.Trait(t), formatMean(mean))
		if e.Valid {
			line += fmt.Sprintf(" (min %s, max %s)", formatMean(e.Min), formatMean(e.Max))
		}
		summary += line + "\n"
	}

	return summary
}

func formatMean(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.1f", v)
}
