package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"scene-gallery/pages"
	"scene-gallery/panel"
)

var errQuit = errors.New("quit")

const consoleHelp = `commands:
  set <path> <value>  commit a parameter (numbers, true/false, r,g,b or #rrggbb, option names)
  press <button>      press a panel button
  reset               restore the page defaults
  show                print the current parameters
  save <file>         write the current parameters as a YAML preset
  load <file>         import a YAML preset
  layout              toggle single and quad view
  buttons             list the panel buttons
  quit                close the window
`

// console edits a running demo from text commands. It runs off the
// render thread; scene changes go through the session queue.
type console struct {
	demo *pages.Demo
	out  io.Writer
	quit func()
}

func (c *console) run(ctx context.Context, in io.Reader) {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if ctx.Err() != nil {
			return
		}
		err := c.exec(sc.Text())
		if errors.Is(err, errQuit) {
			c.quit()
			return
		}
		if err != nil {
			fmt.Fprintln(c.out, "error:", err)
		}
	}
}

func (c *console) exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]
	p := c.demo.Panel
	switch cmd {
	case "set":
		if len(args) < 2 {
			return fmt.Errorf("usage: set <path> <value>")
		}
		cur, ok := p.Value(args[0])
		if !ok {
			return fmt.Errorf("%w: %q", panel.ErrUnknownPath, args[0])
		}
		v, err := panel.ParseValue(cur.Kind, strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		return p.Commit(args[0], v)
	case "press":
		if len(args) == 0 {
			return fmt.Errorf("usage: press <button>")
		}
		return p.Press(strings.Join(args, " "))
	case "reset":
		p.Reset()
	case "show":
		return panel.EncodePreset(c.out, p.Snapshot())
	case "save":
		if len(args) != 1 {
			return fmt.Errorf("usage: save <file>")
		}
		return panel.SavePreset(args[0], p.Snapshot())
	case "load":
		if len(args) != 1 {
			return fmt.Errorf("usage: load <file>")
		}
		snap, err := panel.LoadPreset(args[0])
		if err != nil {
			return err
		}
		return p.Import(snap)
	case "layout":
		s := c.demo.Session
		s.Dispatch(func() {
			s.Logger().Info("layout", "layout", s.ToggleLayout().String())
		})
	case "buttons":
		fmt.Fprintln(c.out, strings.Join(p.Buttons(), ", "))
	case "help":
		fmt.Fprint(c.out, consoleHelp)
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}
	return nil
}
