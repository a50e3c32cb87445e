package inmemdb

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/gradebook"
)

type gradebookRepository struct {
	db *gradebookTable
}

var _ gradebook.Repository = (*gradebookRepository)(nil) // interface compliance check

func NewGradeBookRepository(db *DB) gradebook.Repository {
	return &gradebookRepository{db: db.gradebook}
}

func (repo *gradebookRepository) courses() []string {
	courses := make([]string, 0, len(repo.db.table))
	for c := range repo.db.table {
		courses = append(courses, c)
	}
	sort.Strings(courses)
	return courses
}

func (repo *gradebookRepository) CreateGradeBook(course string, gb *gradebook.GradeBook) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if gb == nil {
		return errors.Wrapf(core.ErrInvalidArgument, "nil gradebook for course %q", course)
	}
	if _, ok := repo.db.table[course]; ok {
		return errors.Wrapf(core.ErrDuplicate, "course %q", course)
	}
	repo.db.table[course] = gb
	return nil
}

func (repo *gradebookRepository) GetGradeBook(course string) (*gradebook.GradeBook, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if gb, ok := repo.db.table[course]; ok {
		return gb, nil
	}
	return nil, errors.Wrapf(core.ErrNotFound, "course %q", course)
}

func (repo *gradebookRepository) QueryAllCourses() []string {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.courses()
}

func (repo *gradebookRepository) DeleteGradeBook(course string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[course]; !ok {
		return errors.Wrapf(core.ErrNotFound, "course %q", course)
	}
	delete(repo.db.table, course)
	return nil
}
