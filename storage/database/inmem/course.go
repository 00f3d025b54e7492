package inmemdb

import (
	"errors"

	"github.com/trezcool/courseadmin/core/course"
)

var (
	ErrCourseExists   = errors.New("course ID already exists")
	ErrCourseNotFound = errors.New("course not found")
)

type CourseRepository struct {
	db *courseTable
}

func NewCourseRepository(db *DB) *CourseRepository {
	return &CourseRepository{db: db.course}
}

func (repo *CourseRepository) Create(c course.Course) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[c.ID]; ok {
		return ErrCourseExists
	}
	repo.db.table[c.ID] = &c
	repo.db.order = append(repo.db.order, c.ID)
	return nil
}

func (repo *CourseRepository) Get(id string) (course.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if c, ok := repo.db.table[id]; ok {
		return *c, nil
	}
	return course.Course{}, ErrCourseNotFound
}

func (repo *CourseRepository) QueryAll() []course.Course {
	repo.db.RLock()
	defer repo.db.RUnlock()

	courses := make([]course.Course, 0, len(repo.db.order))
	for _, id := range repo.db.order {
		courses = append(courses, *repo.db.table[id])
	}
	return courses
}

// Update sets the name and professor of an existing course.
func (repo *CourseRepository) Update(c course.Course) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	existing, ok := repo.db.table[c.ID]
	if !ok {
		return ErrCourseNotFound
	}
	existing.Name = c.Name
	existing.Professor = c.Professor
	return nil
}

func (repo *CourseRepository) Delete(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return ErrCourseNotFound
	}
	delete(repo.db.table, id)
	for i, oid := range repo.db.order {
		if oid == id {
			repo.db.order = append(repo.db.order[:i], repo.db.order[i+1:]...)
			break
		}
	}
	return nil
}
