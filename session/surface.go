package session

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrOccupied is returned when a container already holds another surface.
	ErrOccupied = errors.New("container already holds a surface")
	// ErrContainerGone is returned when the container has been torn down.
	ErrContainerGone = errors.New("container is gone")
)

// AttachmentError reports a failed attach of a surface to a container.
type AttachmentError struct {
	Container string
	Err       error
}

func (e *AttachmentError) Error() string {
	return fmt.Sprintf("attach surface to %s: %v", e.Container, e.Err)
}

func (e *AttachmentError) Unwrap() error {
	return e.Err
}

// Container is a host element that can hold one surface at a time.
type Container interface {
	Name() string
	// Mount inserts s. It fails if another surface is mounted or the
	// container is gone.
	Mount(s *Surface) error
	// Unmount removes s if it is the mounted surface.
	Unmount(s *Surface)
	// Live reports whether the container still exists in the host.
	Live() bool
}

// Surface is the renderable target owned by a session.
type Surface struct {
	Width      int
	Height     int
	PixelRatio float32

	container Container
}

// Attached reports whether the surface sits in a live container.
func (s Surface) Attached() bool {
	return s.container != nil && s.container.Live()
}

// DrawingBufferSize is the surface size in physical pixels.
func (s Surface) DrawingBufferSize() (int, int) {
	ratio := s.PixelRatio
	if ratio <= 0 {
		ratio = 1
	}
	return int(float32(s.Width) * ratio), int(float32(s.Height) * ratio)
}

// Element is an in-memory Container. Hosts without a native element
// hierarchy and tests use it directly.
type Element struct {
	name string

	mu       sync.Mutex
	occupant *Surface
	gone     bool
}

func NewElement(name string) *Element {
	return &Element{name: name}
}

func (e *Element) Name() string { return e.name }

func (e *Element) Mount(s *Surface) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gone {
		return ErrContainerGone
	}
	if e.occupant != nil && e.occupant != s {
		return ErrOccupied
	}
	e.occupant = s
	return nil
}

func (e *Element) Unmount(s *Surface) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.occupant == s {
		e.occupant = nil
	}
}

func (e *Element) Live() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.gone
}

// Occupant returns the mounted surface, if any.
func (e *Element) Occupant() *Surface {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.occupant
}

// Remove tears the element down, as when the host UI unmounts it.
func (e *Element) Remove() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.gone = true
	e.occupant = nil
}
