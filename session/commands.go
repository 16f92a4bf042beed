package session

import (
	"fmt"
	"sync"
)

// Command is one queued mutation of the session's objects.
type Command interface {
	Execute()
	Description() string
}

// FuncCommand adapts a function to Command.
type FuncCommand struct {
	Desc string
	Fn   func()
}

func (c FuncCommand) Execute()            { c.Fn() }
func (c FuncCommand) Description() string { return c.Desc }

// Queue collects commands from any goroutine. The render loop drains it
// once at the start of each tick.
type Queue struct {
	mu       sync.Mutex
	commands []Command

	// OnPanic, when set, is told about a command that panicked. The rest
	// of the batch still runs.
	OnPanic func(cmd Command, err error)
}

func (q *Queue) Push(cmd Command) {
	q.mu.Lock()
	q.commands = append(q.commands, cmd)
	q.mu.Unlock()
}

// Drain executes every command queued so far in FIFO order. Commands
// pushed while draining wait for the next drain.
func (q *Queue) Drain() int {
	q.mu.Lock()
	batch := q.commands
	q.commands = nil
	q.mu.Unlock()

	for _, cmd := range batch {
		q.execute(cmd)
	}
	return len(batch)
}

func (q *Queue) execute(cmd Command) {
	defer func() {
		if r := recover(); r != nil && q.OnPanic != nil {
			q.OnPanic(cmd, fmt.Errorf("%v", r))
		}
	}()
	cmd.Execute()
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.commands)
}
