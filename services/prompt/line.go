package promptsvc

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/pkg/errors"

	"github.com/trezcool/courseadmin/core"
)

type lineService struct {
	r   *bufio.Reader
	out io.Writer
	clr *color.Color
}

var _ core.Prompter = (*lineService)(nil)

// NewLineService reads answers line by line from r, for piped input and non-interactive sessions.
func NewLineService(r io.Reader, out io.Writer, colored bool) core.Prompter {
	clr := color.New()
	clr.SetOutput(out)
	if !colored {
		clr.Disable()
	}
	return &lineService{r: bufio.NewReader(r), out: out, clr: clr}
}

func (svc *lineService) readLine() (string, error) {
	line, err := svc.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, "reading answer")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (svc *lineService) Prompt(msg string) (string, error) {
	if _, err := fmt.Fprint(svc.out, svc.clr.Cyan(msg)+" "); err != nil {
		return "", err
	}
	return svc.readLine()
}

func (svc *lineService) Confirm(msg string) (bool, error) {
	if _, err := fmt.Fprint(svc.out, svc.clr.Yellow(msg)+" [y/N] "); err != nil {
		return false, err
	}
	ans, err := svc.readLine()
	if err != nil {
		return false, err
	}
	return isYes(ans), nil
}

func (svc *lineService) Alert(msg string) error {
	_, err := fmt.Fprintln(svc.out, svc.clr.Bold(msg))
	return err
}

func isYes(ans string) bool {
	switch core.CleanString(ans, true /* lower */) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
