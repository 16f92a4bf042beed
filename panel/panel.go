// Package panel binds named parameters to handlers that mutate a scene.
//
// A Panel holds a snapshot of display values seeded from defaults. Commit
// stores a new value after snapping and clamping it, then hands the value
// converted into scene units to every handler bound to the path.
package panel

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

var (
	ErrUnknownPath   = errors.New("panel: unknown path")
	ErrKindMismatch  = errors.New("panel: value kind mismatch")
	ErrUnknownOption = errors.New("panel: unknown option")
	ErrUnknownButton = errors.New("panel: unknown button")
)

// Handler receives a committed value in scene units.
type Handler func(Value)

// Dispatcher runs handler batches, typically on the render loop.
type Dispatcher interface {
	Dispatch(fn func())
}

// Binding describes one registered input.
type Binding struct {
	Path        string
	Kind        Kind
	Constraints Constraints
	Options     []string
}

type binding struct {
	Binding
	fn Handler
}

type button struct {
	label string
	fn    func()
}

// Panel is safe for use from multiple goroutines. Handlers run outside
// the panel's lock, on the dispatcher when one is set.
type Panel struct {
	mu         sync.Mutex
	defaults   Snapshot
	snapshot   Snapshot
	bindings   []binding
	buttons    []button
	dispatcher Dispatcher
	logger     *slog.Logger
}

// Option configures a Panel.
type Option func(*Panel)

// WithDispatcher routes handler invocations through d.
func WithDispatcher(d Dispatcher) Option {
	return func(p *Panel) { p.dispatcher = d }
}

// WithLogger sets where failing handlers are reported.
func WithLogger(l *slog.Logger) Option {
	return func(p *Panel) { p.logger = l }
}

// New creates a panel whose snapshot starts as a copy of defaults.
func New(defaults Snapshot, opts ...Option) *Panel {
	p := &Panel{
		defaults: defaults.Clone(),
		snapshot: defaults.Clone(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Bind registers fn for path. The path must exist in the defaults.
// Binding does not invoke fn.
func (p *Panel) Bind(path string, c Constraints, fn Handler) error {
	return p.bind(path, c, nil, fn)
}

func (p *Panel) bind(path string, c Constraints, options []string, fn Handler) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.defaults[path]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	p.bindings = append(p.bindings, binding{
		Binding: Binding{Path: path, Kind: v.Kind, Constraints: c, Options: options},
		fn:      fn,
	})
	return nil
}

// BindNumber binds a numeric input.
func (p *Panel) BindNumber(path string, c Constraints, fn func(float64)) error {
	return p.Bind(path, c, func(v Value) { fn(v.Number) })
}

// BindBool binds a checkbox.
func (p *Panel) BindBool(path string, label string, fn func(bool)) error {
	return p.Bind(path, Constraints{Label: label}, func(v Value) { fn(v.Bool) })
}

// BindColor binds a color input. Channels arrive in 0-1.
func (p *Panel) BindColor(path string, label string, fn func(RGB)) error {
	return p.Bind(path, Constraints{Label: label, Unit: UnitChannel}, func(v Value) { fn(v.Color) })
}

// BindOption binds a dropdown limited to options.
func (p *Panel) BindOption(path string, label string, options []string, fn func(string)) error {
	return p.bind(path, Constraints{Label: label}, append([]string(nil), options...), func(v Value) { fn(v.Option) })
}

// Commit stores raw for path and notifies its handlers in registration
// order. Numbers out of range are clamped, never rejected.
func (p *Panel) Commit(path string, raw Value) error {
	p.mu.Lock()
	calls, err := p.commitLocked(path, raw)
	p.mu.Unlock()
	if err != nil {
		return err
	}
	p.run(calls)
	return nil
}

type call struct {
	path string
	fn   Handler
	v    Value
}

func (p *Panel) commitLocked(path string, raw Value) ([]call, error) {
	cur, ok := p.snapshot[path]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	if raw.Kind != cur.Kind {
		return nil, fmt.Errorf("%w: %q is %v, got %v", ErrKindMismatch, path, cur.Kind, raw.Kind)
	}
	bs := p.bindingsFor(path)
	for _, b := range bs {
		if len(b.Options) > 0 && !contains(b.Options, raw.Option) {
			return nil, fmt.Errorf("%w: %q for %q", ErrUnknownOption, raw.Option, path)
		}
	}

	display := raw
	if primary, ok := primaryConstraints(bs); ok {
		display = primary.normalize(raw)
	}
	p.snapshot[path] = display

	calls := make([]call, 0, len(bs))
	for _, b := range bs {
		c := b.Constraints
		calls = append(calls, call{path: path, fn: b.fn, v: c.convert(c.normalize(display))})
	}
	return calls, nil
}

// primaryConstraints picks the constraints the stored value obeys: the
// first binding with a range, else the first binding.
func primaryConstraints(bs []binding) (Constraints, bool) {
	for _, b := range bs {
		if b.Constraints.Range != nil {
			return b.Constraints, true
		}
	}
	if len(bs) > 0 {
		return bs[0].Constraints, true
	}
	return Constraints{}, false
}

func (p *Panel) bindingsFor(path string) []binding {
	var out []binding
	for _, b := range p.bindings {
		if b.Path == path {
			out = append(out, b)
		}
	}
	return out
}

func (p *Panel) run(calls []call) {
	if len(calls) == 0 {
		return
	}
	fn := func() {
		for _, c := range calls {
			p.invoke(c)
		}
	}
	if p.dispatcher != nil {
		p.dispatcher.Dispatch(fn)
		return
	}
	fn()
}

// invoke runs one handler. A panicking handler is logged and does not stop
// the handlers after it.
func (p *Panel) invoke(c call) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warn("panel handler failed", "path", c.path, "panic", fmt.Sprint(r))
		}
	}()
	c.fn(c.v)
}

// Reset restores every value to its default and re-invokes every handler
// with its default in registration order.
func (p *Panel) Reset() {
	p.mu.Lock()
	p.snapshot = p.defaults.Clone()
	calls := make([]call, 0, len(p.bindings))
	for _, b := range p.bindings {
		c := b.Constraints
		calls = append(calls, call{path: b.Path, fn: b.fn, v: c.convert(c.normalize(p.snapshot[b.Path]))})
	}
	p.mu.Unlock()
	p.run(calls)
}

// Import commits every value in s. Bound paths are committed in binding
// order; unknown paths and kind mismatches are skipped and reported.
func (p *Panel) Import(s Snapshot) error {
	p.mu.Lock()
	var (
		calls []call
		errs  []error
		done  = make(map[string]bool, len(s))
	)
	commit := func(path string) {
		if done[path] {
			return
		}
		done[path] = true
		v := s[path]
		if cur, ok := p.snapshot[path]; ok {
			v = v.As(cur.Kind)
		}
		cs, err := p.commitLocked(path, v)
		if err != nil {
			errs = append(errs, err)
			return
		}
		calls = append(calls, cs...)
	}
	for _, b := range p.bindings {
		if _, ok := s[b.Path]; ok {
			commit(b.Path)
		}
	}
	for _, path := range s.Paths() {
		commit(path)
	}
	p.mu.Unlock()
	p.run(calls)
	return errors.Join(errs...)
}

// Snapshot returns a copy of the current display values.
func (p *Panel) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot.Clone()
}

// Defaults returns a copy of the default values.
func (p *Panel) Defaults() Snapshot {
	return p.defaults.Clone()
}

// Value returns the current display value at path.
func (p *Panel) Value(path string) (Value, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.snapshot[path]
	return v, ok
}

// Paths lists every path in the snapshot in sorted order.
func (p *Panel) Paths() []string {
	return p.defaults.Paths()
}

// Bindings lists registered inputs in registration order.
func (p *Panel) Bindings() []Binding {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Binding, len(p.bindings))
	for i, b := range p.bindings {
		out[i] = b.Binding
	}
	return out
}

// AddButton registers an action. Pressing runs fn on the dispatcher.
func (p *Panel) AddButton(label string, fn func()) {
	p.mu.Lock()
	p.buttons = append(p.buttons, button{label: label, fn: fn})
	p.mu.Unlock()
}

// Press runs the button registered under label.
func (p *Panel) Press(label string) error {
	p.mu.Lock()
	var fn func()
	for _, b := range p.buttons {
		if b.label == label {
			fn = b.fn
			break
		}
	}
	p.mu.Unlock()
	if fn == nil {
		return fmt.Errorf("%w: %q", ErrUnknownButton, label)
	}
	if p.dispatcher != nil {
		p.dispatcher.Dispatch(fn)
	} else {
		fn()
	}
	return nil
}

// Buttons lists button labels in registration order.
func (p *Panel) Buttons() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.buttons))
	for i, b := range p.buttons {
		out[i] = b.label
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
