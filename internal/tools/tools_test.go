package tools

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junkd0g/pokeviz/internal/dashboard"
	"github.com/junkd0g/pokeviz/internal/diagram"
	"github.com/junkd0g/pokeviz/internal/record"
)

func newHandlers(t *testing.T) (*Handlers, string) {
	t.Helper()
	records := []record.Record{
		{Name: "Ember", Category: "Fire", Mass: 10, Size: 1, Traits: [6]float64{50, 50, 50, 50, 50, 50}},
		{Name: "Blaze", Category: "Fire", Mass: 20, Size: 2, Traits: [6]float64{60, 40, 60, 40, 60, 40}},
		{Name: "Drop", Category: "Water", Mass: 5, Size: 1, Traits: [6]float64{30, 30, 30, 30, 30, 30}},
	}
	dir := t.TempDir()
	renderer := dashboard.FileRenderer{Dir: dir, Formats: []diagram.Format{diagram.FormatSVG}}
	dash := dashboard.NewDashboard(dashboard.New(records, diagram.DefaultLayout()), renderer, nil)
	return NewHandlers(dash, Options{OutputDir: dir, HTML: diagram.DefaultConfig()}), dir
}

func call(args map[string]interface{}) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return tc.Text
}

func TestListCategories(t *testing.T) {
	h, _ := newHandlers(t)

	res, err := h.ListCategories(context.Background(), call(nil))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	out := text(t, res)
	assert.Contains(t, out, "* 1. Fire: 2 records, avg weight 15.0 kg, avg height 1.5 m")
	assert.Contains(t, out, "  2. Water: 1 records")
	assert.Less(t, strings.Index(out, "Fire"), strings.Index(out, "Water"))
}

func TestSelectCategory(t *testing.T) {
	h, dir := newHandlers(t)

	res, err := h.SelectCategory(context.Background(), call(map[string]interface{}{"category": "Water"}))
	require.NoError(t, err)
	require.False(t, res.IsError, text(t, res))

	out := text(t, res)
	assert.Contains(t, out, "Selected type: Water")
	assert.Contains(t, out, "HP: 30.0 (min 30.0, max 30.0)")

	cur, _ := h.dash.State().Current()
	assert.Equal(t, "Water", cur)

	overview, err := os.ReadFile(filepath.Join(dir, "overview.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(overview), "Selected type: Water")
	for _, name := range []string{"radar.svg", "parallel.svg"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	list, err := h.ListCategories(context.Background(), call(nil))
	require.NoError(t, err)
	assert.Contains(t, text(t, list), "* 2. Water")
}

func TestSelectCategory_Unknown(t *testing.T) {
	h, _ := newHandlers(t)

	res, err := h.SelectCategory(context.Background(), call(map[string]interface{}{"category": "Ghost"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, text(t, res), "No records have this type")
}

func TestSelectCategory_MissingArgument(t *testing.T) {
	h, _ := newHandlers(t)

	for _, args := range []map[string]interface{}{nil, {"category": ""}, {"category": 42}} {
		res, err := h.SelectCategory(context.Background(), call(args))
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Equal(t, "category is required", text(t, res))
	}
}

func TestRenderDashboard(t *testing.T) {
	h, dir := newHandlers(t)

	res, err := h.RenderDashboard(context.Background(), call(nil))
	require.NoError(t, err)
	require.False(t, res.IsError, text(t, res))
	assert.Contains(t, text(t, res), "Selected type: Fire")

	page, err := os.ReadFile(filepath.Join(dir, "dashboard.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), `<template id="radar-1">`)

	custom := filepath.Join(dir, "nested", "report.html")
	res, err = h.RenderDashboard(context.Background(), call(map[string]interface{}{"output_path": custom}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.FileExists(t, custom)
}

func TestRenderDashboard_BadExtension(t *testing.T) {
	h, dir := newHandlers(t)

	res, err := h.RenderDashboard(context.Background(), call(map[string]interface{}{
		"output_path": filepath.Join(dir, "report.pdf"),
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestRegister(t *testing.T) {
	h, _ := newHandlers(t)
	s := server.NewMCPServer("pokeviz-test", "0.0.0")

	assert.NotPanics(t, func() { Register(s, h) })
}
