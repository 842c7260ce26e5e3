package diagram

import (
	"encoding/json"
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	"github.com/junkd0g/pokeviz/internal/aggregate"
	"github.com/junkd0g/pokeviz/internal/record"
	"github.com/junkd0g/pokeviz/internal/scene"
)

// WidgetType defines available dashboard widgets.
type WidgetType string

const (
	WidgetStatsCards    WidgetType = "stats_cards"
	WidgetOverview      WidgetType = "overview"
	WidgetRadar         WidgetType = "radar"
	WidgetParallel      WidgetType = "parallel"
	WidgetCategoryTable WidgetType = "category_table"
)

// HTMLConfig configures what to include in the HTML dashboard.
type HTMLConfig struct {
	Title       string
	Description string
	Widgets     []WidgetType
	Theme       string // "dark" or "light"
}

// DefaultConfig returns a full-featured default configuration.
func DefaultConfig() HTMLConfig {
	return HTMLConfig{
		Title:       "Pokémon Type Explorer",
		Description: "Click a bar to compare the traits of one type",
		Theme:       "light",
		Widgets: []WidgetType{
			WidgetStatsCards,
			WidgetOverview,
			WidgetRadar,
			WidgetParallel,
			WidgetCategoryTable,
		},
	}
}

// Report is everything the dashboard shows.
type Report struct {
	Summaries []aggregate.Summary // in display order
	Records   []record.Record
	Selected  string
	Layout    Layout
}

// HTMLBuilder builds HTML dashboards.
type HTMLBuilder struct {
	report *Report
	config HTMLConfig
	data   *ReportData
}

// ReportData is the JSON payload embedded in the page.
type ReportData struct {
	Categories []CategoryData `json:"categories"`
	Selected   string         `json:"selected"`
	Highlight  string         `json:"highlight"`
	Stats      StatsData      `json:"stats"`
}

// CategoryData is one summary row. Means that are not numbers encode as null.
type CategoryData struct {
	Category string     `json:"category"`
	Count    int        `json:"count"`
	Weight   *float64   `json:"avgWeight"`
	Height   *float64   `json:"avgHeight"`
	Traits   []*float64 `json:"avgTraits"`
	Color    string     `json:"color"`
}

type StatsData struct {
	TotalRecords    int    `json:"totalRecords"`
	TotalCategories int    `json:"totalCategories"`
	Heaviest        string `json:"heaviest"`
	LargestGroup    string `json:"largestGroup"`
}

// GenerateHTML writes an interactive dashboard for the report.
func GenerateHTML(report *Report, outputPath string, config HTMLConfig) error {
	page, err := RenderHTML(report, config)
	if err != nil {
		return err
	}

	if err := writeFileBytes(outputPath, []byte(page)); err != nil {
		return fmt.Errorf("failed to write HTML file: %w", err)
	}

	return nil
}

// RenderHTML builds the dashboard page in memory.
func RenderHTML(report *Report, config HTMLConfig) (string, error) {
	builder := &HTMLBuilder{
		report: report,
		config: config,
	}
	builder.data = builder.buildReportData()
	return builder.render()
}

func (b *HTMLBuilder) buildReportData() *ReportData {
	overview := PrepareOverview(b.report.Summaries, b.report.Selected, b.report.Layout.Overview)

	data := &ReportData{
		Categories: make([]CategoryData, 0, len(b.report.Summaries)),
		Selected:   b.report.Selected,
		Highlight:  b.report.Layout.Overview.HighlightColor,
		Stats: StatsData{
			TotalRecords:    len(b.report.Records),
			TotalCategories: len(b.report.Summaries),
		},
	}

	largest := 0
	for i, s := range b.report.Summaries {
		cd := CategoryData{
			Category: s.Category,
			Count:    s.Count,
			Weight:   jsonNumber(s.Mass),
			Height:   jsonNumber(s.Size),
			Color:    overview.Bars[i].Color,
		}
		for _, v := range s.Traits {
			cd.Traits = append(cd.Traits, jsonNumber(v))
		}
		data.Categories = append(data.Categories, cd)

		if s.Count > largest {
			largest = s.Count
			data.Stats.LargestGroup = s.Category
		}
	}
	if len(b.report.Summaries) > 0 {
		data.Stats.Heaviest = b.report.Summaries[0].Category
	}

	return data
}

func jsonNumber(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func (b *HTMLBuilder) render() (string, error) {
	var sb strings.Builder

	// Write HTML head
	sb.WriteString(b.renderHead())

	sb.WriteString(`<body><div class="container">`)
	sb.WriteString(b.renderHeader())

	// Render requested widgets
	for _, widget := range b.config.Widgets {
		sb.WriteString(b.renderWidget(widget))
	}

	sb.WriteString(b.renderFooter())
	sb.WriteString(`</div>`)

	// Detail views for every category, swapped in on click
	sb.WriteString(b.renderTemplates())

	scripts, err := b.renderScripts()
	if err != nil {
		return "", err
	}
	sb.WriteString(scripts)

	sb.WriteString(`</body></html>`)

	return sb.String(), nil
}

func (b *HTMLBuilder) renderHead() string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>%s</style>
</head>`, html.EscapeString(b.config.Title), b.getThemeCSS())
}

func (b *HTMLBuilder) getThemeCSS() string {
	if b.config.Theme == "dark" {
		return baseCSS + darkThemeCSS
	}
	return baseCSS + lightThemeCSS
}

func (b *HTMLBuilder) renderHeader() string {
	return fmt.Sprintf(`
<header>
    <h1>%s</h1>
    <p>%s</p>
</header>`, html.EscapeString(b.config.Title), html.EscapeString(b.config.Description))
}

func (b *HTMLBuilder) renderFooter() string {
	return `<footer><p>Generated by pokeviz</p></footer>`
}

func (b *HTMLBuilder) renderWidget(widget WidgetType) string {
	switch widget {
	case WidgetStatsCards:
		return b.renderStatsCards()
	case WidgetOverview:
		return b.renderOverview()
	case WidgetRadar:
		return b.renderDetail("radar", "Trait Averages", b.radarSVG(b.report.Selected))
	case WidgetParallel:
		return b.renderDetail("parallel", "Trait Profiles", b.parallelSVG(b.report.Selected))
	case WidgetCategoryTable:
		return b.renderCategoryTable()
	default:
		return ""
	}
}

func (b *HTMLBuilder) renderStatsCards() string {
	return fmt.Sprintf(`
<div class="widget stats-grid">
    <div class="stat-card">
        <div class="number">%d</div>
        <div class="label">Pokémon</div>
    </div>
    <div class="stat-card">
        <div class="number">%d</div>
        <div class="label">Types</div>
    </div>
    <div class="stat-card">
        <div class="number">%s</div>
        <div class="label">Heaviest Type</div>
    </div>
    <div class="stat-card">
        <div class="number">%s</div>
        <div class="label">Most Common Type</div>
    </div>
</div>`,
		b.data.Stats.TotalRecords,
		b.data.Stats.TotalCategories,
		orDash(b.data.Stats.Heaviest),
		orDash(b.data.Stats.LargestGroup))
}

func (b *HTMLBuilder) renderOverview() string {
	s := Overview(b.report.Summaries, b.report.Selected, b.report.Layout.Overview)
	return `
<div class="widget chart-box">
    <h3>Average Weight and Height by Type</h3>
    <div id="overview" class="chart-large">` + scene.SVG(s) + `</div>
</div>`
}

func (b *HTMLBuilder) renderDetail(id, title, svg string) string {
	return fmt.Sprintf(`
<div class="widget chart-box half">
    <h3>%s</h3>
    <div id="%s-panel" class="chart">%s</div>
</div>`, title, id, svg)
}

func (b *HTMLBuilder) radarSVG(category string) string {
	if category == "" {
		return ""
	}
	return scene.SVG(Radar(b.report.Records, category, b.report.Layout.Radar))
}

func (b *HTMLBuilder) parallelSVG(category string) string {
	if category == "" {
		return ""
	}
	return scene.SVG(Parallel(b.report.Records, category, b.report.Layout.Parallel))
}

func (b *HTMLBuilder) renderCategoryTable() string {
	var rows strings.Builder
	for _, c := range b.data.Categories {
		class := ""
		if c.Category == b.data.Selected {
			class = ` class="selected"`
		}
		rows.WriteString(fmt.Sprintf(`
        <tr%s data-category="%s">
            <td><span class="badge" style="background:%s22;color:%s">%s</span></td>
            <td>%d</td>
            <td>%s</td>
            <td>%s</td>`,
			class, html.EscapeString(c.Category), c.Color, c.Color, html.EscapeString(c.Category),
			c.Count, formatMean(c.Weight), formatMean(c.Height)))
		for _, v := range c.Traits {
			rows.WriteString("<td>" + formatMean(v) + "</td>")
		}
		rows.WriteString("</tr>")
	}

	var heads strings.Builder
	for _, t := range record.Traits {
		heads.WriteString("<th>" + t.String() + "</th>")
	}

	return fmt.Sprintf(`
<div class="widget table-box">
    <h3>All Types</h3>
    <table id="category-table">
        <thead>
            <tr><th>Type</th><th>Count</th><th>Weight (kg)</th><th>Height (m)</th>%s</tr>
        </thead>
        <tbody>%s</tbody>
    </table>
</div>`, heads.String(), rows.String())
}

func (b *HTMLBuilder) hasWidget(w WidgetType) bool {
	for _, widget := range b.config.Widgets {
		if widget == w {
			return true
		}
	}
	return false
}

func (b *HTMLBuilder) renderTemplates() string {
	var sb strings.Builder
	for i, s := range b.report.Summaries {
		idx := strconv.Itoa(i)
		if b.hasWidget(WidgetRadar) {
			sb.WriteString(`<template id="radar-` + idx + `">` + b.radarSVG(s.Category) + `</template>`)
		}
		if b.hasWidget(WidgetParallel) {
			sb.WriteString(`<template id="parallel-` + idx + `">` + b.parallelSVG(s.Category) + `</template>`)
		}
	}
	return sb.String()
}

func (b *HTMLBuilder) renderScripts() (string, error) {
	dataJSON, err := json.Marshal(b.data)
	if err != nil {
		return "", fmt.Errorf("failed to encode report data: %w", err)
	}

	// json.Marshal escapes '<', so category names cannot close the script tag.
	return fmt.Sprintf(`
<script>
const data = %s;
%s
</script>`, dataJSON, selectionScript), nil
}

func formatMean(v *float64) string {
	if v == nil {
		return "NaN"
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return html.EscapeString(s)
}

// selectionScript recolours the bars, relabels the overview and swaps in the
// pre-rendered detail views when a bar is clicked.
const selectionScript = `
(function() {
    const bars = document.querySelectorAll('#overview rect.bar');
    const label = document.getElementById('selected-type-label');

    function select(category) {
        const idx = data.categories.findIndex(c => c.category === category);
        data.selected = category;
        bars.forEach(bar => bar.setAttribute('fill',
            bar.dataset.category === category ? data.highlight : bar.dataset.color));
        if (label) label.textContent = 'Selected type: ' + category;
        ['radar', 'parallel'].forEach(view => {
            const panel = document.getElementById(view + '-panel');
            const tpl = document.getElementById(view + '-' + idx);
            if (panel && tpl) panel.innerHTML = tpl.innerHTML;
        });
        document.querySelectorAll('#category-table tbody tr').forEach(row =>
            row.classList.toggle('selected', row.dataset.category === category));
    }

    bars.forEach(bar => {
        bar.style.cursor = 'pointer';
        bar.addEventListener('click', () => select(bar.dataset.category));
    });
})();
`

// Theme CSS
const baseCSS = `
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; min-height: 100vh; }
.container { max-width: 1600px; margin: 0 auto; padding: 20px; }
header { text-align: center; padding: 30px 0; margin-bottom: 30px; }
header h1 { font-size: 2.5rem; margin-bottom: 10px; }
header p { font-size: 1.1rem; }
.widget { margin-bottom: 25px; }
.stats-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(180px, 1fr)); gap: 20px; }
.stat-card { border-radius: 12px; padding: 20px; text-align: center; }
.stat-card .number { font-size: 2rem; font-weight: bold; }
.stat-card .label { margin-top: 5px; }
.chart-box { border-radius: 12px; padding: 20px; }
.chart-box.half { display: inline-block; width: calc(50% - 12px); vertical-align: top; }
.chart-box.half:nth-of-type(odd) { margin-right: 20px; }
.chart-box h3 { margin-bottom: 15px; font-size: 1.2rem; }
.chart svg, .chart-large svg { max-width: 100%; height: auto; background: #fff; border-radius: 8px; }
.table-box { border-radius: 12px; padding: 20px; overflow-x: auto; }
.table-box h3 { margin-bottom: 15px; font-size: 1.2rem; }
table { width: 100%; border-collapse: collapse; }
th, td { padding: 10px 12px; text-align: left; }
th { font-weight: 600; }
.badge { display: inline-block; padding: 4px 12px; border-radius: 20px; font-size: 0.85rem; font-weight: 500; }
footer { text-align: center; padding: 30px 0; margin-top: 30px; }
`

const darkThemeCSS = `
body { background: linear-gradient(135deg, #1a1a2e 0%, #16213e 100%); color: #e4e4e4; }
header { border-bottom: 1px solid #333; }
header p, .stat-card .label { color: #888; }
.stat-card, .chart-box, .table-box { background: rgba(255,255,255,0.05); border: 1px solid rgba(255,255,255,0.1); }
.chart-box h3, .table-box h3 { color: #fff; }
th, td { border-bottom: 1px solid rgba(255,255,255,0.1); }
th { background: rgba(255,255,255,0.05); }
tr.selected { background: rgba(50,205,50,0.15); }
footer { color: #666; border-top: 1px solid #333; }
`

const lightThemeCSS = `
body { background: linear-gradient(135deg, #f5f7fa 0%, #e4e8ec 100%); color: #333; }
header { border-bottom: 1px solid #ddd; }
header p, .stat-card .label { color: #666; }
.stat-card, .chart-box, .table-box { background: #fff; border: 1px solid #e0e0e0; box-shadow: 0 2px 8px rgba(0,0,0,0.05); }
.chart-box h3, .table-box h3 { color: #333; }
th, td { border-bottom: 1px solid #eee; }
th { background: #f9f9f9; }
tr.selected { background: rgba(50,205,50,0.15); }
footer { color: #999; border-top: 1px solid #ddd; }
`
