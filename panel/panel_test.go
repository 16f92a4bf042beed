package panel

import (
	stdmath "math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitClampsAndConverts(t *testing.T) {
	p := New(Snapshot{"x": Number(0), "rotY": Number(0)})
	var x, rot float64
	require.NoError(t, p.BindNumber("x", Constraints{Range: Between(-5, 5)}, func(v float64) { x = v }))
	require.NoError(t, p.BindNumber("rotY", Constraints{Range: Between(-180, 180), Unit: UnitDegrees}, func(v float64) { rot = v }))

	require.NoError(t, p.Commit("x", Number(7)))
	assert.Equal(t, 5.0, x)
	v, _ := p.Value("x")
	assert.Equal(t, 5.0, v.Number)

	require.NoError(t, p.Commit("x", Number(-12)))
	assert.Equal(t, -5.0, x)

	require.NoError(t, p.Commit("rotY", Number(90)))
	assert.InDelta(t, stdmath.Pi/2, rot, 1e-12)
	v, _ = p.Value("rotY")
	assert.Equal(t, 90.0, v.Number)
}

func TestCommitStep(t *testing.T) {
	p := New(Snapshot{"x": Number(0)})
	var x float64
	require.NoError(t, p.BindNumber("x", Constraints{Range: Between(-5, 5), Step: 0.5}, func(v float64) { x = v }))
	require.NoError(t, p.Commit("x", Number(1.3)))
	assert.Equal(t, 1.5, x)
}

func TestCommitErrors(t *testing.T) {
	p := New(Snapshot{"x": Number(0), "mode": Choice("a")})
	require.NoError(t, p.BindOption("mode", "Mode", []string{"a", "b"}, func(string) {}))

	assert.ErrorIs(t, p.Commit("nope", Number(1)), ErrUnknownPath)
	assert.ErrorIs(t, p.Commit("x", Bool(true)), ErrKindMismatch)
	assert.ErrorIs(t, p.Commit("mode", Choice("c")), ErrUnknownOption)
	assert.ErrorIs(t, p.Bind("missing", Constraints{}, func(Value) {}), ErrUnknownPath)

	v, _ := p.Value("mode")
	assert.Equal(t, "a", v.Option)
}

func TestColorChannels(t *testing.T) {
	p := New(Snapshot{"color": Color(255, 255, 255)})
	var got RGB
	require.NoError(t, p.BindColor("color", "Color", func(c RGB) { got = c }))

	require.NoError(t, p.Commit("color", Color(51, 300, -4)))
	assert.InDelta(t, 0.2, got.R, 1e-12)
	assert.Equal(t, 1.0, got.G)
	assert.Equal(t, 0.0, got.B)

	v, _ := p.Value("color")
	assert.Equal(t, RGB{R: 51, G: 255, B: 0}, v.Color)
}

func TestMultipleBindingsRunInOrder(t *testing.T) {
	p := New(Snapshot{"x": Number(0)})
	var order []string
	var wide, narrow float64
	require.NoError(t, p.BindNumber("x", Constraints{Range: Between(-5, 5)}, func(v float64) {
		order = append(order, "wide")
		wide = v
	}))
	require.NoError(t, p.BindNumber("x", Constraints{Range: Between(-1, 1)}, func(v float64) {
		order = append(order, "narrow")
		narrow = v
	}))

	require.NoError(t, p.Commit("x", Number(3)))
	assert.Equal(t, []string{"wide", "narrow"}, order)
	assert.Equal(t, 3.0, wide)
	assert.Equal(t, 1.0, narrow)

	v, _ := p.Value("x")
	assert.Equal(t, 3.0, v.Number)
}

func TestResetRestoresEveryPath(t *testing.T) {
	defaults := Snapshot{"x": Number(1), "wire": Bool(true), "bg": Color(10, 20, 30), "extra": Number(9)}
	p := New(defaults)
	calls := map[string]int{}
	var x float64
	var wire bool
	require.NoError(t, p.BindNumber("x", Constraints{Range: Between(-5, 5)}, func(v float64) { x = v; calls["x"]++ }))
	require.NoError(t, p.BindBool("wire", "Wireframe", func(b bool) { wire = b; calls["wire"]++ }))
	require.NoError(t, p.BindColor("bg", "Background", func(RGB) { calls["bg"]++ }))

	require.NoError(t, p.Commit("x", Number(4)))
	require.NoError(t, p.Commit("wire", Bool(false)))
	require.NoError(t, p.Commit("extra", Number(2)))

	p.Reset()
	assert.Equal(t, defaults, p.Snapshot())
	assert.Equal(t, 1.0, x)
	assert.True(t, wire)
	assert.Equal(t, map[string]int{"x": 2, "wire": 2, "bg": 1}, calls)
}

func TestSnapshotIsACopy(t *testing.T) {
	p := New(Snapshot{"x": Number(1)})
	s := p.Snapshot()
	s["x"] = Number(100)
	v, _ := p.Value("x")
	assert.Equal(t, 1.0, v.Number)
}

type queue struct{ pending []func() }

func (q *queue) Dispatch(fn func()) { q.pending = append(q.pending, fn) }

func (q *queue) drain() {
	batch := q.pending
	q.pending = nil
	for _, fn := range batch {
		fn()
	}
}

func TestDispatcherDefersHandlers(t *testing.T) {
	q := &queue{}
	p := New(Snapshot{"x": Number(0)}, WithDispatcher(q))
	var x float64
	require.NoError(t, p.BindNumber("x", Constraints{}, func(v float64) { x = v }))
	pressed := false
	p.AddButton("Home", func() { pressed = true })

	require.NoError(t, p.Commit("x", Number(2)))
	require.NoError(t, p.Press("Home"))
	assert.Equal(t, 0.0, x)
	assert.False(t, pressed)
	v, _ := p.Value("x")
	assert.Equal(t, 2.0, v.Number)

	q.drain()
	assert.Equal(t, 2.0, x)
	assert.True(t, pressed)

	assert.ErrorIs(t, p.Press("Away"), ErrUnknownButton)
	assert.Equal(t, []string{"Home"}, p.Buttons())
}

func TestImport(t *testing.T) {
	p := New(Snapshot{"x": Number(0), "y": Number(0)})
	var seen []string
	require.NoError(t, p.BindNumber("y", Constraints{Range: Between(0, 1)}, func(float64) { seen = append(seen, "y") }))
	require.NoError(t, p.BindNumber("x", Constraints{}, func(float64) { seen = append(seen, "x") }))

	err := p.Import(Snapshot{"x": Number(3), "y": Number(5), "z": Number(1)})
	assert.ErrorIs(t, err, ErrUnknownPath)
	assert.Equal(t, []string{"y", "x"}, seen)
	assert.Equal(t, Snapshot{"x": Number(3), "y": Number(1)}, p.Snapshot())
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue(KindNumber, " 2.5 ")
	require.NoError(t, err)
	assert.Equal(t, Number(2.5), v)

	v, err = ParseValue(KindBool, "off")
	require.NoError(t, err)
	assert.Equal(t, Bool(false), v)

	v, err = ParseValue(KindColor, "#049ef4")
	require.NoError(t, err)
	assert.Equal(t, Color(4, 158, 244), v)

	v, err = ParseValue(KindColor, "51, 51, 89")
	require.NoError(t, err)
	assert.Equal(t, Color(51, 51, 89), v)

	_, err = ParseValue(KindColor, "1,2")
	assert.Error(t, err)
	_, err = ParseValue(KindNumber, "abc")
	assert.Error(t, err)
}

func TestPresetRoundTrip(t *testing.T) {
	s := Snapshot{
		"model": Choice("cubo"),
		"wire":  Bool(true),
		"x":     Number(-2.5),
		"count": Number(3),
		"color": Color(51, 51, 89),
	}
	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, SavePreset(path, s))

	got, err := LoadPreset(path)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestDecodePresetText(t *testing.T) {
	got, err := DecodePreset(strings.NewReader("xPosition: 1\nwireframe: false\nbackgroundColor: {r: 10, g: 20, b: 30}\n"))
	require.NoError(t, err)
	assert.Equal(t, Snapshot{
		"xPosition":       Number(1),
		"wireframe":       Bool(false),
		"backgroundColor": Color(10, 20, 30),
	}, got)

	empty, err := DecodePreset(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPathsAndBindings(t *testing.T) {
	p := New(Snapshot{"b": Number(0), "a": Bool(false)})
	require.NoError(t, p.BindBool("a", "A", func(bool) {}))
	require.NoError(t, p.BindNumber("b", Constraints{Label: "B", Range: Between(5, -5)}, func(float64) {}))

	assert.Equal(t, []string{"a", "b"}, p.Paths())
	bs := p.Bindings()
	require.Len(t, bs, 2)
	assert.Equal(t, KindBool, bs[0].Kind)
	assert.Equal(t, &Range{Min: -5, Max: 5}, bs[1].Constraints.Range)
}

func TestFailingHandlerDoesNotStopOthers(t *testing.T) {
	p := New(Snapshot{"x": Number(0)})
	require.NoError(t, p.BindNumber("x", Constraints{}, func(float64) { panic("bad handler") }))
	var got float64
	require.NoError(t, p.BindNumber("x", Constraints{}, func(v float64) { got = v }))

	require.NoError(t, p.Commit("x", Number(3)))
	assert.Equal(t, 3.0, got)

	got = -1
	p.Reset()
	assert.Equal(t, 0.0, got)
}

func TestImportReadsScalarsByPathKind(t *testing.T) {
	p := New(Snapshot{"model": Choice("a"), "wire": Bool(false)})
	var model string
	require.NoError(t, p.BindOption("model", "model", []string{"a", "1"}, func(v string) { model = v }))
	var wire bool
	require.NoError(t, p.BindBool("wire", "wire", func(b bool) { wire = b }))

	s, err := DecodePreset(strings.NewReader("model: 1\nwire: \"yes\"\n"))
	require.NoError(t, err)
	require.Equal(t, KindNumber, s["model"].Kind)

	require.NoError(t, p.Import(s))
	assert.Equal(t, "1", model)
	assert.True(t, wire)
	v, _ := p.Value("model")
	assert.Equal(t, Choice("1"), v)
}

func TestValueAs(t *testing.T) {
	assert.Equal(t, Choice("2.5"), Number(2.5).As(KindOption))
	assert.Equal(t, Bool(true), Choice("on").As(KindBool))
	assert.Equal(t, Number(4), Choice("4").As(KindNumber))
	assert.Equal(t, Choice("red"), Choice("red").As(KindColor))
	assert.Equal(t, Choice("abc"), Choice("abc").As(KindNumber))
}
