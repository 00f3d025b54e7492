package testutil

import (
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/trezcool/courseadmin/core"
	"github.com/trezcool/courseadmin/core/course"
	"github.com/trezcool/courseadmin/core/student"
	"github.com/trezcool/courseadmin/storage/database/inmem"
)

const (
	CoursePagePath = "/edit_course"
	CourseEditPath = "/edit_course"
	StudentsPath   = "/api/students"
)

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head><title>{{.Title}}</title></head>
<body>
<nav class="nav">
<a href="/">Home</a>
<a href="/edit_course">Edit Courses</a>
<a href="/students">Students</a>
</nav>
<button id="add-course-btn">Add Course</button>
<table>
{{range .Courses}}<tr><td>{{.ID}}</td><td>{{.Name}}</td><td>{{.Professor}}</td><td><button class="edit-btn" data-id="{{.ID}}" data-name="{{.Name}}" data-professor="{{.Professor}}">Edit</button></td></tr>
{{end}}</table>
<div id="edit-modal" class="hidden">
<input id="modal-course-id" readonly><input id="modal-course-name"><input id="modal-professor-name">
<button id="update-btn">Update</button><button id="delete-btn">Delete</button><button id="cancel-btn">Cancel</button>
</div>
</body>
</html>`))

type (
	// Request is a request received by the Backend.
	Request struct {
		Method    string
		Path      string
		Body      []byte
		RequestID string
	}

	// Backend is a fake course administration backend.
	Backend struct {
		*httptest.Server

		Courses  *inmemdb.CourseRepository
		Students *inmemdb.StudentRepository

		mu        sync.Mutex
		requests  []Request
		failNext  *string
		malformed bool
	}
)

// NewBackend starts a seeded Backend, closed at the end of the test.
func NewBackend(t *testing.T) *Backend {
	db := inmemdb.Open()
	db.Seed()
	b := &Backend{
		Courses:  inmemdb.NewCourseRepository(db),
		Students: inmemdb.NewStudentRepository(db),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.BodyDump(b.record))

	e.GET("/", b.renderPage("Home"))
	e.GET(CoursePagePath, b.renderPage("Edit Courses"))
	e.POST(CourseEditPath, b.editCourse)

	sg := e.Group(StudentsPath)
	sg.OPTIONS("", b.studentOptions)
	sg.PUT("/:id", b.replaceStudent)
	sg.PATCH("/:id", b.patchStudent)
	sg.DELETE("/:id", b.deleteStudent)

	b.Server = httptest.NewServer(e)
	t.Cleanup(b.Server.Close)
	return b
}

// Config returns a client configuration pointing at the Backend.
func (b *Backend) Config() *core.Config {
	return CoursesConfig(b.URL)
}

// FailNext makes the next course edit answer {success: false, error: msg}. An empty msg omits the error.
func (b *Backend) FailNext(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failNext = &msg
}

// SetMalformed makes every JSON endpoint answer with a body that is not JSON.
func (b *Backend) SetMalformed(malformed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.malformed = malformed
}

// Requests returns the requests received so far.
func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	reqs := make([]Request, len(b.requests))
	copy(reqs, b.requests)
	return reqs
}

// RequestsTo returns the requests received for method and path.
func (b *Backend) RequestsTo(method, path string) []Request {
	reqs := make([]Request, 0)
	for _, r := range b.Requests() {
		if r.Method == method && r.Path == path {
			reqs = append(reqs, r)
		}
	}
	return reqs
}

func (b *Backend) record(ctx echo.Context, reqBody, _ []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = append(b.requests, Request{
		Method:    ctx.Request().Method,
		Path:      ctx.Request().URL.Path,
		Body:      reqBody,
		RequestID: ctx.Request().Header.Get("X-Request-ID"),
	})
}

func (b *Backend) isMalformed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.malformed
}

func (b *Backend) popFailure() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failNext == nil {
		return "", false
	}
	msg := *b.failNext
	b.failNext = nil
	return msg, true
}

func (b *Backend) renderPage(title string) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		data := struct {
			Title   string
			Courses []course.Course
		}{title, b.Courses.QueryAll()}
		ctx.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
		ctx.Response().WriteHeader(http.StatusOK)
		return pageTmpl.Execute(ctx.Response(), data)
	}
}

func (b *Backend) reply(ctx echo.Context, code int, data interface{}) error {
	if b.isMalformed() {
		return ctx.HTML(code, "<h1>Internal Server Error</h1>")
	}
	return ctx.JSON(code, data)
}

func editResult(err error) course.EditResult {
	if err != nil {
		return course.EditResult{Error: err.Error()}
	}
	return course.EditResult{Success: true}
}

func (b *Backend) editCourse(ctx echo.Context) error {
	var req course.EditRequest
	if err := ctx.Bind(&req); err != nil {
		return b.reply(ctx, http.StatusBadRequest, course.EditResult{Error: "invalid request"})
	}
	if msg, ok := b.popFailure(); ok {
		return b.reply(ctx, http.StatusOK, course.EditResult{Error: msg})
	}

	c := course.Course{ID: req.ID, Name: req.Name, Professor: req.Professor}
	switch req.Action {
	case course.ActionAdd:
		if c.ID == "" || c.Name == "" || c.Professor == "" {
			return b.reply(ctx, http.StatusOK, course.EditResult{Error: "All fields are required!"})
		}
		return b.reply(ctx, http.StatusOK, editResult(b.Courses.Create(c)))
	case course.ActionUpdate:
		return b.reply(ctx, http.StatusOK, editResult(b.Courses.Update(c)))
	case course.ActionDelete:
		return b.reply(ctx, http.StatusOK, editResult(b.Courses.Delete(c.ID)))
	default:
		return b.reply(ctx, http.StatusBadRequest, course.EditResult{Error: "unknown action"})
	}
}

func studentID(ctx echo.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	return id, err == nil
}

func (b *Backend) studentResult(ctx echo.Context, msg string, s student.Student, err error) error {
	if err != nil {
		return b.reply(ctx, http.StatusNotFound, echo.Map{"error": err.Error()})
	}
	return b.reply(ctx, http.StatusOK, echo.Map{"message": msg, "student": s})
}

func (b *Backend) replaceStudent(ctx echo.Context) error {
	id, ok := studentID(ctx)
	if !ok {
		return b.reply(ctx, http.StatusNotFound, echo.Map{"error": "student not found"})
	}
	var s student.Student
	if err := json.NewDecoder(ctx.Request().Body).Decode(&s); err != nil {
		return b.reply(ctx, http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	s, err := b.Students.Replace(id, s)
	return b.studentResult(ctx, "Student updated", s, err)
}

func (b *Backend) patchStudent(ctx echo.Context) error {
	id, ok := studentID(ctx)
	if !ok {
		return b.reply(ctx, http.StatusNotFound, echo.Map{"error": "student not found"})
	}
	f := make(student.Fields)
	if err := json.NewDecoder(ctx.Request().Body).Decode(&f); err != nil {
		return b.reply(ctx, http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	s, err := b.Students.Merge(id, f)
	return b.studentResult(ctx, "Student patched", s, err)
}

func (b *Backend) deleteStudent(ctx echo.Context) error {
	id, ok := studentID(ctx)
	if !ok {
		return b.reply(ctx, http.StatusNotFound, echo.Map{"error": "student not found"})
	}
	if err := b.Students.Delete(id); err != nil {
		return b.reply(ctx, http.StatusNotFound, echo.Map{"error": err.Error()})
	}
	return b.reply(ctx, http.StatusOK, echo.Map{"message": "Student deleted"})
}

func (b *Backend) studentOptions(ctx echo.Context) error {
	ctx.Response().Header().Set(echo.HeaderAllow, "PUT, PATCH, DELETE, OPTIONS")
	return b.reply(ctx, http.StatusOK, echo.Map{"allowed_methods": []string{"PUT", "PATCH", "DELETE", "OPTIONS"}})
}
