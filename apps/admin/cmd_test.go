package main

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/courseadmin/apps"
	"github.com/trezcool/courseadmin/core"
	"github.com/trezcool/courseadmin/core/course"
	"github.com/trezcool/courseadmin/services/api"
	"github.com/trezcool/courseadmin/services/logger"
	"github.com/trezcool/courseadmin/services/prompt"
	"github.com/trezcool/courseadmin/tests"
)

func setup(t *testing.T, answers ...string) (*commandLine, *testutil.Backend, *promptsvc.Mock, *bytes.Buffer) {
	backend := testutil.NewBackend(t)
	logger := logsvc.NewConsoleLoggerMock()
	client, err := apisvc.NewClient(backend.Config(), logger)
	if err != nil {
		t.Fatalf("NewClient() failed: %v", err)
	}
	ui := promptsvc.NewMock(answers...)
	out := new(bytes.Buffer)
	return &commandLine{client: client, ui: ui, out: out, logger: logger}, backend, ui, out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	wantOut    []string
	extra      interface{}
}

func (tt cliTest) check(t *testing.T, err error, out string) {
	t.Helper()
	switch {
	case tt.wantErr != nil:
		assert.Equal(t, tt.wantErr, err)
	case tt.wantErrStr != "":
		if assert.Error(t, err) {
			assert.Equal(t, tt.wantErrStr, err.Error())
		}
	default:
		assert.NoError(t, err)
	}
	for _, want := range tt.wantOut {
		assert.Contains(t, out, want)
	}
}

func Test_commandLine_usage(t *testing.T) {
	tests := []cliTest{
		{name: "no command", wantErr: errHelp, wantOut: []string{"Usage:"}},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "typo", args: []string{"lsit"}, wantErr: errHelp, wantOut: []string{`Did you mean "list"?`}},
		{name: "edit: no id", args: []string{"edit"}, wantErr: errHelp},
		{name: "edit: help", args: []string{"edit", "-h"}, wantErr: errHelp},
		{name: "edit: bad flag", args: []string{"edit", "-lol"}, wantErrStr: "flag provided but not defined: -lol"},
		{name: "nav: no path", args: []string{"nav"}, wantErr: errHelp},
		{name: "student: no command", args: []string{"student"}, wantErr: errHelp},
		{name: "student: unknown command", args: []string{"student", "lol"}, wantErrStr: `"lol": no such student command`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, backend, _, out := setup(t)
			err := cli.run(context.Background(), append([]string{"admin"}, tt.args...))
			tt.check(t, err, out.String())
			assert.Empty(t, backend.Requests())
		})
	}
}

func Test_commandLine_list(t *testing.T) {
	cli, backend, _, out := setup(t)
	backend.CreateCourse(t, "C1", "Algebra", "Smith")

	err := cli.run(context.Background(), []string{"admin", "list"})
	assert.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if assert.Len(t, lines, 4) {
		assert.Equal(t, []string{"ID", "NAME", "PROFESSOR"}, strings.Fields(lines[0]))
		assert.Equal(t, []string{"C1", "Algebra", "Smith"}, strings.Fields(lines[3]))
	}

	err = cli.run(context.Background(), []string{"admin", "list", "-page", "/nope"})
	assert.Error(t, err)
}

func Test_commandLine_add(t *testing.T) {
	type extra struct {
		answers  []string
		failWith *string
	}
	serverMsg := "Course ID already exists!"
	noMsg := ""

	tests := []cliTest{
		{name: "missing field", extra: extra{answers: []string{"C1", "", "Smith"}}},
		{name: "added", extra: extra{answers: []string{"C1", "Algebra", "Smith"}}, wantOut: []string{"C1  ", "Algebra"}},
		{name: "server failure", extra: extra{answers: []string{"C1", "Algebra", "Smith"}, failWith: &serverMsg}},
		{name: "server failure without message", extra: extra{answers: []string{"C1", "Algebra", "Smith"}, failWith: &noMsg}},
	}
	wantAlerts := map[string]string{
		"missing field":                  course.MsgFieldsRequired,
		"added":                          course.MsgAdded,
		"server failure":                 serverMsg,
		"server failure without message": course.MsgGenericError,
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := tt.extra.(extra)
			cli, backend, ui, out := setup(t, x.answers...)
			if x.failWith != nil {
				backend.FailNext(*x.failWith)
			}

			err := cli.run(context.Background(), []string{"admin", "add"})
			tt.check(t, err, out.String())
			assert.Equal(t, []string{wantAlerts[tt.name]}, ui.Alerts)

			edits := backend.EditRequests(t)
			pageLoads := backend.RequestsTo(http.MethodGet, testutil.CoursePagePath)
			switch tt.name {
			case "missing field":
				assert.Empty(t, edits)
				assert.Empty(t, pageLoads)
			case "added":
				assert.Equal(t, []course.EditRequest{{Action: course.ActionAdd, ID: "C1", Name: "Algebra", Professor: "Smith"}}, edits)
				assert.Len(t, pageLoads, 1, "the course page is reloaded exactly once")
			default:
				assert.Len(t, edits, 1)
				assert.Empty(t, pageLoads)
			}
		})
	}
}

func Test_commandLine_edit(t *testing.T) {
	type extra struct {
		answers  []string
		confirms []bool
	}
	tests := []cliTest{
		{
			name:    "update",
			args:    []string{"edit", "-id", "C1"},
			extra:   extra{answers: []string{"Algebra II", "", "update"}},
			wantOut: []string{"Editing course C1", "Algebra II"},
		},
		{
			name:  "update with blank name",
			args:  []string{"edit", "-id", "C1"},
			extra: extra{answers: []string{"  ", "", "u"}},
		},
		{
			name:    "delete confirmed",
			args:    []string{"edit", "-id", "C1"},
			extra:   extra{answers: []string{"", "", "delete"}, confirms: []bool{true}},
			wantOut: []string{"MATH201"},
		},
		{
			name:  "delete declined",
			args:  []string{"edit", "-id", "C1"},
			extra: extra{answers: []string{"", "", "d"}, confirms: []bool{false}},
		},
		{
			name:    "cancel",
			args:    []string{"edit", "-id", "C1"},
			extra:   extra{answers: []string{"Changed", "Changed", ""}},
			wantOut: []string{msgCancelled},
		},
		{
			name:       "unknown course",
			args:       []string{"edit", "-id", "C11"},
			wantErrStr: `course "C11" not found on /edit_course (did you mean "C1"?)`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, _ := tt.extra.(extra)
			cli, backend, ui, out := setup(t, x.answers...)
			ui.Confirms = x.confirms
			backend.CreateCourse(t, "C1", "Algebra", "Smith")

			err := cli.run(context.Background(), append([]string{"admin"}, tt.args...))
			tt.check(t, err, out.String())

			edits := backend.EditRequests(t)
			stored, getErr := backend.Courses.Get("C1")
			switch tt.name {
			case "update":
				assert.Equal(t, []course.EditRequest{{Action: course.ActionUpdate, ID: "C1", Name: "Algebra II", Professor: "Smith"}}, edits)
				assert.Equal(t, []string{course.MsgUpdated}, ui.Alerts)
				assert.Equal(t, "Algebra II", stored.Name)
			case "update with blank name":
				assert.Empty(t, edits)
				assert.Equal(t, []string{course.MsgFieldsRequired}, ui.Alerts)
			case "delete confirmed":
				assert.Equal(t, []course.EditRequest{{Action: course.ActionDelete, ID: "C1"}}, edits)
				assert.Equal(t, []string{course.MsgConfirmDel}, ui.Confirmations)
				assert.Error(t, getErr)
				assert.NotContains(t, out.String(), "Algebra")
			case "delete declined", "cancel", "unknown course":
				assert.Empty(t, edits)
				assert.NoError(t, getErr)
				assert.Equal(t, "Algebra", stored.Name)
			}
		})
	}
}

func Test_commandLine_student(t *testing.T) {
	tests := []cliTest{
		{
			name:    "update",
			args:    []string{"student", "update", "-id", "1", "-name", "John Updated", "-email", "john.updated@example.com"},
			wantOut: []string{`"message":"Student updated"`, `"email":"john.updated@example.com"`},
		},
		{
			name:    "patch",
			args:    []string{"student", "patch", "-id", "2", "-set", "email=new.email@example.com"},
			wantOut: []string{`"message":"Student patched"`, `"name":"Jane Smith"`, `"email":"new.email@example.com"`},
		},
		{
			name:    "delete",
			args:    []string{"student", "delete", "-id", "1"},
			wantOut: []string{`{"message":"Student deleted"}`},
		},
		{
			name:    "options",
			args:    []string{"student", "options"},
			wantOut: []string{`"allowed_methods":["PUT","PATCH","DELETE","OPTIONS"]`},
		},
		{
			name:       "update: missing email",
			args:       []string{"student", "update", "-id", "1", "-name", "John"},
			wantErrStr: "name and email are required",
		},
		{
			name:       "patch: no fields",
			args:       []string{"student", "patch", "-id", "1"},
			wantErrStr: "at least one field is required",
		},
		{
			name:       "patch: bad field",
			args:       []string{"student", "patch", "-id", "1", "-set", "email"},
			wantErrStr: `invalid value "email" for flag -set: expected FIELD=VALUE, got "email"`,
		},
		{
			name:       "delete: missing id",
			args:       []string{"student", "delete"},
			wantErrStr: "a student id is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, _, _, out := setup(t)
			err := cli.run(context.Background(), append([]string{"admin"}, tt.args...))
			tt.check(t, err, out.String())
			if err != nil {
				assert.True(t, isUserError(err), "want a user error, got %T", err)
			}
		})
	}
}

func Test_commandLine_nav(t *testing.T) {
	tests := []cliTest{
		{name: "active link", args: []string{"nav", "-path", "/edit_course"}, wantOut: []string{"/edit_course\n"}},
		{name: "other page", args: []string{"nav", "-path", "/students", "-page", "/"}, wantOut: []string{"/students\n"}},
		{name: "no match", args: []string{"nav", "-path", "/courses", "-page", "/"}, wantOut: []string{"no navigation link points to /courses"}},
		{name: "html", args: []string{"nav", "-path", "/", "-html"}, wantOut: []string{`<a href="/" class="active">Home</a>`, `<a href="/students">Students</a>`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, _, _, out := setup(t)
			err := cli.run(context.Background(), append([]string{"admin"}, tt.args...))
			tt.check(t, err, out.String())
		})
	}
}

func Test_closest(t *testing.T) {
	assert.Equal(t, "student", closest("studnet", commands))
	assert.Equal(t, "edit", closest("edti", commands))
	assert.Equal(t, "", closest("zzzzzz", commands))
}

func Test_isUserError(t *testing.T) {
	assert.True(t, isUserError(apps.NewArgumentError("bad")))
	assert.True(t, isUserError(core.NewValidationError(nil)))
	assert.False(t, isUserError(errHelp))
}
