package promptsvc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/term"
)

func newTestTerminal(input string) (*terminalService, *bytes.Buffer, *int) {
	var out bytes.Buffer
	svc := newTerminalService(-1, strings.NewReader(input), &out)
	rawCalls := new(int)
	svc.makeRaw = func(int) (*term.State, error) {
		*rawCalls++
		return nil, nil
	}
	svc.restore = func(int, *term.State) error { return nil }
	return svc, &out, rawCalls
}

func TestTerminalService(t *testing.T) {
	// every answer arrives in a single read, as when the user types ahead or pastes
	svc, out, rawCalls := newTestTerminal("CS101\ryes\rAlgebra\r")

	ans, err := svc.Prompt("Enter Course ID:")
	assert.NoError(t, err)
	assert.Equal(t, "CS101", ans)

	ok, err := svc.Confirm("Sure?")
	assert.NoError(t, err)
	assert.True(t, ok)

	ans, err = svc.Prompt("Enter Course Name:")
	assert.NoError(t, err)
	assert.Equal(t, "Algebra", ans)

	// input exhausted: dismissed prompt
	ans, err = svc.Prompt("Enter Professor Name:")
	assert.NoError(t, err)
	assert.Equal(t, "", ans)

	assert.Equal(t, 4, *rawCalls)
	assert.NoError(t, svc.Alert("done"))
	assert.Contains(t, out.String(), "Enter Course ID:")
	assert.True(t, strings.HasSuffix(out.String(), "done\n"))
}
