package promptsvc

import (
	"github.com/trezcool/courseadmin/core"
)

// Mock replays scripted answers and records every dialog it was shown.
type Mock struct {
	Answers  []string // consumed in order by Prompt; a missing answer is a dismissed prompt
	Confirms []bool   // consumed in order by Confirm; a missing answer declines

	Prompts       []string
	Confirmations []string
	Alerts        []string
}

var _ core.Prompter = (*Mock)(nil)

func NewMock(answers ...string) *Mock {
	return &Mock{Answers: answers}
}

func (m *Mock) Prompt(msg string) (string, error) {
	m.Prompts = append(m.Prompts, msg)
	if len(m.Answers) == 0 {
		return "", nil
	}
	ans := m.Answers[0]
	m.Answers = m.Answers[1:]
	return ans, nil
}

func (m *Mock) Confirm(msg string) (bool, error) {
	m.Confirmations = append(m.Confirmations, msg)
	if len(m.Confirms) == 0 {
		return false, nil
	}
	ok := m.Confirms[0]
	m.Confirms = m.Confirms[1:]
	return ok, nil
}

func (m *Mock) Alert(msg string) error {
	m.Alerts = append(m.Alerts, msg)
	return nil
}

// LastAlert returns the most recent alert, or "" when none was shown.
func (m *Mock) LastAlert() string {
	if len(m.Alerts) == 0 {
		return ""
	}
	return m.Alerts[len(m.Alerts)-1]
}
