package editor

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"filestep/internal/errors"
	"filestep/internal/log"
)

// CommandEditor drives a real editor through operator-configured shell
// commands. Placeholders in the command templates are substituted before the
// command runs: {path} and {format} on open/save, {window} on close.
//
// If the open command prints anything on stdout, its first line becomes the
// window token handed back from CreateWindow; otherwise a token is
// synthesized. Empty save/close templates are no-ops, for editors that save
// and close on their own.
type CommandEditor struct {
	open  string
	save  string
	close string
	out   io.Writer

	mu         sync.Mutex
	lastOutput string
	windowSeq  int
}

// NewCommand builds a CommandEditor from the three hook templates.
// Operator messages go to stdout.
func NewCommand(open, save, close string) *CommandEditor {
	return &CommandEditor{open: open, save: save, close: close, out: os.Stdout}
}

// SetOutput redirects operator messages, mainly for tests.
func (e *CommandEditor) SetOutput(w io.Writer) {
	e.out = w
}

func (e *CommandEditor) OpenDocument(path string) (DocumentHandle, error) {
	if _, err := os.Stat(path); err != nil {
		return "", errors.NewEditorError("cannot open document", err)
	}

	out, err := e.run(e.open, map[string]string{"{path}": path})
	if err != nil {
		return "", errors.NewEditorError(fmt.Sprintf("open command failed for %s", path), err)
	}

	e.mu.Lock()
	e.lastOutput = firstLine(out)
	e.mu.Unlock()

	log.Debug("opened document %s", path)
	return DocumentHandle(path), nil
}

func (e *CommandEditor) CreateWindow(doc DocumentHandle) (WindowHandle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.lastOutput != "" {
		win := WindowHandle(e.lastOutput)
		e.lastOutput = ""
		return win, nil
	}

	e.windowSeq++
	return WindowHandle(fmt.Sprintf("%s#%d", filepath.Base(string(doc)), e.windowSeq)), nil
}

func (e *CommandEditor) CloseWindow(win WindowHandle) error {
	if strings.TrimSpace(e.close) == "" {
		return nil
	}
	if _, err := e.run(e.close, map[string]string{"{window}": string(win)}); err != nil {
		return errors.NewEditorError(fmt.Sprintf("close command failed for window %s", win), err)
	}
	return nil
}

func (e *CommandEditor) SaveDocument(doc DocumentHandle, path, format string) error {
	if strings.TrimSpace(e.save) == "" {
		return nil
	}
	repl := map[string]string{"{path}": path, "{format}": format}
	if _, err := e.run(e.save, repl); err != nil {
		return errors.NewEditorError(fmt.Sprintf("save command failed for %s", path), err)
	}
	log.Debug("saved document %s as %s", path, format)
	return nil
}

func (e *CommandEditor) ReportMessage(text string) {
	fmt.Fprintln(e.out, text)
}

// run substitutes the placeholders and executes the template through the
// shell, returning captured stdout.
func (e *CommandEditor) run(template string, repl map[string]string) (string, error) {
	pairs := make([]string, 0, len(repl)*2)
	for k, v := range repl {
		pairs = append(pairs, k, v)
	}
	command := strings.NewReplacer(pairs...).Replace(template)

	cmd := exec.Command("sh", "-c", command)
	cmd.Stderr = os.Stderr
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(output), nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
