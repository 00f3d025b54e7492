package inmemdb

import (
	"encoding/json"
	"errors"

	"github.com/trezcool/courseadmin/core/student"
)

var ErrStudentNotFound = errors.New("student not found")

type StudentRepository struct {
	db *studentTable
}

func NewStudentRepository(db *DB) *StudentRepository {
	return &StudentRepository{db: db.student}
}

func (repo *StudentRepository) Create(s student.Student) student.Student {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.pkSeq++
	s.ID = repo.db.pkSeq
	repo.db.table[s.ID] = &s
	return s
}

func (repo *StudentRepository) Get(id int) (student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if s, ok := repo.db.table[id]; ok {
		return *s, nil
	}
	return student.Student{}, ErrStudentNotFound
}

// Replace overwrites every field of the student but its ID.
func (repo *StudentRepository) Replace(id int, s student.Student) (student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return student.Student{}, ErrStudentNotFound
	}
	s.ID = id
	repo.db.table[id] = &s
	return s, nil
}

// Merge applies the known fields of f; unknown keys are ignored.
func (repo *StudentRepository) Merge(id int, f student.Fields) (student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	existing, ok := repo.db.table[id]
	if !ok {
		return student.Student{}, ErrStudentNotFound
	}
	// round-trip through JSON so that only the record's own fields are touched
	updated := *existing
	data, err := json.Marshal(f)
	if err != nil {
		return student.Student{}, err
	}
	if err := json.Unmarshal(data, &updated); err != nil {
		return student.Student{}, err
	}
	updated.ID = id
	repo.db.table[id] = &updated
	return updated, nil
}

func (repo *StudentRepository) Delete(id int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return ErrStudentNotFound
	}
	delete(repo.db.table, id)
	return nil
}
