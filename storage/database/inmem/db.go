// Package inmemdb is the in-memory store behind the fake backend used in tests.
package inmemdb

import (
	"sync"

	"github.com/trezcool/courseadmin/core/course"
	"github.com/trezcool/courseadmin/core/student"
)

type (
	DB struct {
		course  *courseTable
		student *studentTable
	}

	courseTable struct {
		sync.RWMutex
		table map[string]*course.Course
		order []string // insertion order, for rendering
	}

	studentTable struct {
		sync.RWMutex
		table map[int]*student.Student
		pkSeq int
	}
)

func Open() *DB {
	return &DB{
		course:  &courseTable{table: make(map[string]*course.Course)},
		student: &studentTable{table: make(map[int]*student.Student)},
	}
}

// Seed adds the sample rows a fresh deployment starts with.
func (db *DB) Seed() {
	courses := NewCourseRepository(db)
	_ = courses.Create(course.Course{ID: "CS101", Name: "Introduction to Computer Science", Professor: "Dr. Smith"})
	_ = courses.Create(course.Course{ID: "MATH201", Name: "Advanced Mathematics", Professor: "Dr. Johnson"})

	students := NewStudentRepository(db)
	students.Create(student.Student{Name: "John Doe", Email: "john@example.com"})
	students.Create(student.Student{Name: "Jane Smith", Email: "jane@example.com"})
}
