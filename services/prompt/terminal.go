package promptsvc

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/trezcool/courseadmin/core"
)

type terminalService struct {
	fd  int
	t   *term.Terminal
	out io.Writer

	makeRaw func(fd int) (*term.State, error)
	restore func(fd int, state *term.State) error
}

var _ core.Prompter = (*terminalService)(nil)

// NewTerminalService prompts on the terminal behind fd with line editing.
// One line editor serves every prompt so that typed-ahead input carries over to the next one.
func NewTerminalService(fd int, in io.Reader, out io.Writer) core.Prompter {
	return newTerminalService(fd, in, out)
}

func newTerminalService(fd int, in io.Reader, out io.Writer) *terminalService {
	rw := struct {
		io.Reader
		io.Writer
	}{in, out}
	return &terminalService{
		fd:      fd,
		t:       term.NewTerminal(rw, ""),
		out:     out,
		makeRaw: term.MakeRaw,
		restore: term.Restore,
	}
}

// readLine switches the terminal to raw mode for the duration of one line.
func (svc *terminalService) readLine(prompt string) (string, error) {
	oldState, err := svc.makeRaw(svc.fd)
	if err != nil {
		return "", errors.Wrap(err, "setting terminal raw mode")
	}
	defer func() { _ = svc.restore(svc.fd, oldState) }()

	svc.t.SetPrompt(prompt)
	line, err := svc.t.ReadLine()
	switch err {
	case nil, term.ErrPasteIndicator:
		return line, nil
	case io.EOF: // ctrl-D dismisses the prompt
		return "", nil
	default:
		return "", errors.Wrap(err, "reading answer")
	}
}

func (svc *terminalService) Prompt(msg string) (string, error) {
	return svc.readLine(string(svc.t.Escape.Cyan) + msg + string(svc.t.Escape.Reset) + " ")
}

func (svc *terminalService) Confirm(msg string) (bool, error) {
	ans, err := svc.readLine(string(svc.t.Escape.Yellow) + msg + string(svc.t.Escape.Reset) + " [y/N] ")
	if err != nil {
		return false, err
	}
	return isYes(ans), nil
}

func (svc *terminalService) Alert(msg string) error {
	_, err := fmt.Fprintln(svc.out, msg)
	return err
}
