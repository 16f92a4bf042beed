package scene

// Disposable is anything that owns GPU-side resources.
type Disposable interface {
	Dispose()
	Disposed() bool
}

// resources tracks release hooks registered by a renderer backend when it
// uploads a mesh, material or texture. Dispose runs them once.
type resources struct {
	disposed bool
	hooks    []func()
}

// OnDispose registers fn to run on the next Dispose. Registering re-arms
// a previously disposed resource, which happens when it is uploaded again.
func (r *resources) OnDispose(fn func()) {
	r.disposed = false
	r.hooks = append(r.hooks, fn)
}

func (r *resources) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	hooks := r.hooks
	r.hooks = nil
	for _, fn := range hooks {
		fn()
	}
}

func (r *resources) Disposed() bool {
	return r.disposed
}
