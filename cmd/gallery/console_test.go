package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-gallery/pages"
	"scene-gallery/panel"
	"scene-gallery/session"
	"scene-gallery/session/sessiontest"
)

func newConsole(t *testing.T, route string) (*console, *bytes.Buffer) {
	t.Helper()
	page, ok := pages.Lookup(route)
	require.True(t, ok)
	d, err := page.Build(pages.Env{
		Container: session.NewElement(route),
		Scheduler: session.NewManualScheduler(),
		Renderer:  sessiontest.New(),
	})
	require.NoError(t, err)
	t.Cleanup(d.Close)
	out := &bytes.Buffer{}
	return &console{demo: d, out: out, quit: func() {}}, out
}

func drain(c *console) {
	for c.demo.Session.Flush() > 0 {
	}
}

func number(t *testing.T, c *console, path string) float64 {
	t.Helper()
	v, ok := c.demo.Panel.Value(path)
	require.True(t, ok)
	return v.Number
}

func TestConsoleSetAndReset(t *testing.T) {
	c, _ := newConsole(t, "datgui")

	require.NoError(t, c.exec("set xPosition 9"))
	assert.Equal(t, 5.0, number(t, c, "xPosition"))
	require.NoError(t, c.exec("set wireframe off"))

	require.NoError(t, c.exec("reset"))
	drain(c)
	assert.Equal(t, 0.0, number(t, c, "xPosition"))

	assert.ErrorIs(t, c.exec("set nope 1"), panel.ErrUnknownPath)
	assert.Error(t, c.exec("set xPosition"))
	assert.Error(t, c.exec("set xPosition abc"))
	assert.Error(t, c.exec("frobnicate"))
	assert.NoError(t, c.exec("   "))
}

func TestConsolePressAndButtons(t *testing.T) {
	c, out := newConsole(t, "orbitcamera")
	require.NoError(t, c.exec("buttons"))
	assert.Equal(t, "Play, Stop, Reset\n", out.String())

	require.NoError(t, c.exec("press Play"))
	assert.ErrorIs(t, c.exec("press Rewind"), panel.ErrUnknownButton)
}

func TestConsoleShowSaveLoad(t *testing.T) {
	c, out := newConsole(t, "shader")
	require.NoError(t, c.exec("show"))
	assert.Contains(t, out.String(), "speed: 0.2")

	path := filepath.Join(t.TempDir(), "shader.yaml")
	require.NoError(t, c.exec("set speed 1.5"))
	require.NoError(t, c.exec("save "+path))
	require.NoError(t, c.exec("set speed 0"))
	require.NoError(t, c.exec("load "+path))
	assert.InDelta(t, 1.5, number(t, c, "speed"), 1e-9)
}

func TestConsoleLayoutGoesThroughQueue(t *testing.T) {
	c, _ := newConsole(t, "multiviewports")
	require.NoError(t, c.exec("layout"))
	assert.Equal(t, session.LayoutSingle, c.demo.Session.Layout())
	drain(c)
	assert.Equal(t, session.LayoutQuad, c.demo.Session.Layout())
}

func TestConsoleRunStopsOnQuit(t *testing.T) {
	c, out := newConsole(t, "hello")
	quit := false
	c.quit = func() { quit = true }
	c.run(context.Background(), strings.NewReader("help\nbogus\nquit\nhelp\n"))
	assert.True(t, quit)
	assert.Equal(t, 1, strings.Count(out.String(), "commands:"))
	assert.Contains(t, out.String(), "error: unknown command")
}

func TestListPages(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, listPages(out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, len(pages.All()))
	assert.True(t, strings.HasPrefix(lines[0], "authoring"))
}

func TestPresetsCommand(t *testing.T) {
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"presets", "datgui"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "xPosition: 0")
	assert.Contains(t, out.String(), "wireframe: true")

	root.SetArgs([]string{"presets", "missing"})
	root.SetErr(&bytes.Buffer{})
	assert.Error(t, root.Execute())
}
