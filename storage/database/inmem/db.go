package inmemdb

import (
	"sync"

	"github.com/trezcool/gradebook/core/gradebook"
)

type (
	DB struct {
		gradebook *gradebookTable
	}

	gradebookTable struct {
		sync.RWMutex
		table map[string]*gradebook.GradeBook // {course: GradeBook}
	}
)

func Open() (*DB, error) {
	db := &DB{
		gradebook: &gradebookTable{table: make(map[string]*gradebook.GradeBook)},
	}
	return db, nil
}
