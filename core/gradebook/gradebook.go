// Package gradebook keeps assignment scores per student and derives averages,
// letter grades and class statistics from them.
//
// Students and their assignments are kept in insertion order; ties in
// TopStudent and DropLowestScore go to the earliest entry.
package gradebook

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/gradebook/core"
)

// GradeBook tracks numeric scores for students.
// It is safe for concurrent use; Lock and Unlock gate mutations, they do not synchronise.
type GradeBook struct {
	mu           sync.RWMutex
	id           uuid.UUID
	passingScore float64
	locked       bool
	names        []string // insertion order
	students     map[string]*scoreRecord
}

// New creates an unlocked, empty GradeBook.
// passingScore must be a number in [0, 100].
func New(passingScore float64) (*GradeBook, error) {
	if err := (NewGradeBook{PassingScore: passingScore}).Validate(); err != nil {
		return nil, err
	}
	return &GradeBook{
		id:           uuid.New(),
		passingScore: passingScore,
		students:     make(map[string]*scoreRecord),
	}, nil
}

func (gb *GradeBook) ID() uuid.UUID { return gb.id }

func (gb *GradeBook) PassingScore() float64 { return gb.passingScore }

func (gb *GradeBook) IsLocked() bool {
	gb.mu.RLock()
	defer gb.mu.RUnlock()
	return gb.locked
}

// Lock prevents further modifications to students and scores.
func (gb *GradeBook) Lock() {
	gb.mu.Lock()
	defer gb.mu.Unlock()
	gb.locked = true
}

// Unlock allows modifications again.
func (gb *GradeBook) Unlock() {
	gb.mu.Lock()
	defer gb.mu.Unlock()
	gb.locked = false
}

// Len returns the number of students.
func (gb *GradeBook) Len() int {
	gb.mu.RLock()
	defer gb.mu.RUnlock()
	return len(gb.names)
}

// Students returns the student names in insertion order.
func (gb *GradeBook) Students() []string {
	gb.mu.RLock()
	defer gb.mu.RUnlock()
	names := make([]string, len(gb.names))
	copy(names, gb.names)
	return names
}

func (gb *GradeBook) checkUnlocked(action string) error {
	if gb.locked {
		return errors.Wrapf(core.ErrLocked, "cannot %s", action)
	}
	return nil
}

func (gb *GradeBook) student(name string) (*scoreRecord, error) {
	rec, ok := gb.students[name]
	if !ok {
		return nil, core.NewNotFoundError("student", name, gb.names)
	}
	return rec, nil
}

// Students

// AddStudent adds a student with no scores.
func (gb *GradeBook) AddStudent(name string) error {
	gb.mu.Lock()
	defer gb.mu.Unlock()

	if err := gb.checkUnlocked("add students"); err != nil {
		return err
	}
	if err := validateName("name", name); err != nil {
		return err
	}
	if _, ok := gb.students[name]; ok {
		return errors.Wrapf(core.ErrDuplicate, "student %q", name)
	}

	gb.names = append(gb.names, name)
	gb.students[name] = newScoreRecord()
	return nil
}

// RemoveStudent removes a student and all their scores.
func (gb *GradeBook) RemoveStudent(name string) error {
	gb.mu.Lock()
	defer gb.mu.Unlock()

	if err := gb.checkUnlocked("remove students"); err != nil {
		return err
	}
	if _, err := gb.student(name); err != nil {
		return err
	}

	delete(gb.students, name)
	for i, n := range gb.names {
		if n == name {
			gb.names = append(gb.names[:i], gb.names[i+1:]...)
			break
		}
	}
	return nil
}

func (gb *GradeBook) HasStudent(name string) bool {
	gb.mu.RLock()
	defer gb.mu.RUnlock()
	_, ok := gb.students[name]
	return ok
}

// Scores

// SetScore sets or overwrites the score of an assignment.
func (gb *GradeBook) SetScore(student, assignment string, score float64) error {
	gb.mu.Lock()
	defer gb.mu.Unlock()

	if err := gb.checkUnlocked("modify scores"); err != nil {
		return err
	}
	if err := validateName("assignment", assignment); err != nil {
		return err
	}
	rec, err := gb.student(student)
	if err != nil {
		return err
	}
	if err := validateScore(score); err != nil {
		return err
	}

	rec.set(assignment, score)
	return nil
}

// GetScore returns the score of an assignment, or `def` if it has none.
// Pass null.Float64{} to get "no value" back for missing scores.
func (gb *GradeBook) GetScore(student, assignment string, def null.Float64) (null.Float64, error) {
	gb.mu.RLock()
	defer gb.mu.RUnlock()

	rec, err := gb.student(student)
	if err != nil {
		return null.Float64{}, err
	}
	if score, ok := rec.get(assignment); ok {
		return null.Float64From(score), nil
	}
	return def, nil
}

// Scores returns a copy of the student's scores in insertion order.
func (gb *GradeBook) Scores(student string) ([]Score, error) {
	gb.mu.RLock()
	defer gb.mu.RUnlock()

	rec, err := gb.student(student)
	if err != nil {
		return nil, err
	}
	return rec.list(), nil
}

// ClearScore removes an assignment score, reporting whether there was one.
func (gb *GradeBook) ClearScore(student, assignment string) (bool, error) {
	gb.mu.Lock()
	defer gb.mu.Unlock()

	if err := gb.checkUnlocked("modify scores"); err != nil {
		return false, err
	}
	rec, err := gb.student(student)
	if err != nil {
		return false, err
	}
	return rec.remove(assignment), nil
}

// Calculations

// StudentAverage returns the mean of the student's scores; no value if they have none.
func (gb *GradeBook) StudentAverage(student string) (null.Float64, error) {
	gb.mu.RLock()
	defer gb.mu.RUnlock()

	rec, err := gb.student(student)
	if err != nil {
		return null.Float64{}, err
	}
	return null.NewFloat64(rec.average()), nil
}

// ClassAverage returns the mean of the student averages, ignoring students without scores.
func (gb *GradeBook) ClassAverage() null.Float64 {
	gb.mu.RLock()
	defer gb.mu.RUnlock()

	var (
		total float64
		n     int
	)
	for _, name := range gb.names {
		if avg, ok := gb.students[name].average(); ok {
			total += avg
			n++
		}
	}
	if n == 0 {
		return null.Float64{}
	}
	return null.Float64From(total / float64(n))
}

// LetterGrade returns A/B/C/D/F for the student's average.
//	90-100: A
//	80-89:  B
//	70-79:  C
//	60-69:  D
//	<60:    F
func (gb *GradeBook) LetterGrade(student string) (null.String, error) {
	avg, err := gb.StudentAverage(student)
	if err != nil || !avg.Valid {
		return null.String{}, err
	}
	return null.StringFrom(Letter(avg.Float64)), nil
}

// HasPassingGrade reports whether the student's average reaches the passing score.
func (gb *GradeBook) HasPassingGrade(student string) (null.Bool, error) {
	avg, err := gb.StudentAverage(student)
	if err != nil || !avg.Valid {
		return null.Bool{}, err
	}
	return null.BoolFrom(avg.Float64 >= gb.passingScore), nil
}

// TopStudent returns the student with the highest average, the earliest added wins ties.
func (gb *GradeBook) TopStudent() null.String {
	gb.mu.RLock()
	defer gb.mu.RUnlock()

	var (
		best    null.String
		bestAvg float64
	)
	for _, name := range gb.names {
		avg, ok := gb.students[name].average()
		if !ok {
			continue
		}
		if !best.Valid || avg > bestAvg {
			best, bestAvg = null.StringFrom(name), avg
		}
	}
	return best
}

// DropLowestScore removes the student's lowest score (the earliest one on ties).
// Nothing is dropped, and false returned, when the student has at most one score.
func (gb *GradeBook) DropLowestScore(student string) (bool, error) {
	gb.mu.Lock()
	defer gb.mu.Unlock()

	if err := gb.checkUnlocked("modify scores"); err != nil {
		return false, err
	}
	rec, err := gb.student(student)
	if err != nil {
		return false, err
	}
	if rec.len() <= 1 {
		return false, nil
	}

	lowest, _ := rec.lowest()
	return rec.remove(lowest), nil
}

// CurveStudent adds `points` to every score of the student, clamping results to [0, 100].
func (gb *GradeBook) CurveStudent(student string, points float64) error {
	gb.mu.Lock()
	defer gb.mu.Unlock()

	if err := gb.checkUnlocked("modify scores"); err != nil {
		return err
	}
	if err := validatePoints(points); err != nil {
		return err
	}
	rec, err := gb.student(student)
	if err != nil {
		return err
	}

	for _, sc := range rec.list() {
		rec.set(sc.Assignment, clamp(sc.Value+points, 0, 100))
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
