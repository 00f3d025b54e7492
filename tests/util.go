package testutil

import (
	"encoding/json"
	"testing"

	"github.com/trezcool/courseadmin/core"
	"github.com/trezcool/courseadmin/core/course"
)

// CreateCourse stores a course in the Backend, failing the test on error.
func (b *Backend) CreateCourse(t *testing.T, id, name, professor string) course.Course {
	t.Helper()
	c := course.Course{ID: id, Name: name, Professor: professor}
	if err := b.Courses.Create(c); err != nil {
		t.Fatalf("CreateCourse() failed: %v", err)
	}
	return c
}

// EditRequests decodes every course-edit request received by the Backend.
func (b *Backend) EditRequests(t *testing.T) []course.EditRequest {
	t.Helper()
	reqs := b.RequestsTo("POST", CourseEditPath)
	edits := make([]course.EditRequest, 0, len(reqs))
	for _, r := range reqs {
		var er course.EditRequest
		if err := json.Unmarshal(r.Body, &er); err != nil {
			t.Fatalf("EditRequests() failed: %v", err)
		}
		edits = append(edits, er)
	}
	return edits
}

// DecodeBody unmarshals a recorded request body into a generic map.
func DecodeBody(t *testing.T, r Request) map[string]interface{} {
	t.Helper()
	data := make(map[string]interface{})
	if err := json.Unmarshal(r.Body, &data); err != nil {
		t.Fatalf("DecodeBody() failed: %v", err)
	}
	return data
}

// CoursesConfig returns a client configuration for a backend listening at baseURL.
func CoursesConfig(baseURL string) *core.Config {
	return &core.Config{
		Env:            "TEST",
		TestMode:       true,
		LogLevel:       "off",
		BaseURL:        baseURL,
		CoursePagePath: CoursePagePath,
		CourseEditPath: CourseEditPath,
		StudentsPath:   StudentsPath,
	}
}
