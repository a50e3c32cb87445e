package gradebook

import (
	"github.com/volatiletech/null/v8"
)

// Letter grades
const (
	LetterA = "A"
	LetterB = "B"
	LetterC = "C"
	LetterD = "D"
	LetterF = "F"
)

// letterCutoffs are checked in order, the first cutoff an average reaches wins.
var letterCutoffs = []struct {
	min    float64
	letter string
}{
	{90, LetterA},
	{80, LetterB},
	{70, LetterC},
	{60, LetterD},
}

// Letter maps an average to its letter grade.
func Letter(avg float64) string {
	for _, c := range letterCutoffs {
		if avg >= c.min {
			return c.letter
		}
	}
	return LetterF
}

// Score is a single assignment score.
type Score struct {
	Assignment string  `json:"assignment"`
	Value      float64 `json:"value"`
}

// NewGradeBook contains information needed to create a new GradeBook.
type NewGradeBook struct {
	PassingScore float64 `json:"passing_score" validate:"notnan,gte=0,lte=100"`
}

func (ng NewGradeBook) Validate() error { return validateStruct(ng) }

// StudentReport summarises one student's standing.
type StudentReport struct {
	Name    string       `json:"name"`
	Scores  []Score      `json:"scores"`
	Average null.Float64 `json:"average"`
	Letter  null.String  `json:"letter"`
	Passing null.Bool    `json:"passing"`
}

// Report is a point in time summary of a course.
type Report struct {
	Course       string          `json:"course"`
	PassingScore float64         `json:"passing_score"`
	Locked       bool            `json:"locked"`
	Students     []StudentReport `json:"students"`
	ClassAverage null.Float64    `json:"class_average"`
	TopStudent   null.String     `json:"top_student"`
}
