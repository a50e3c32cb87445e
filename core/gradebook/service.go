package gradebook

import (
	"github.com/kat-co/vala"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/gradebook/core"
)

type (
	// Repository keeps GradeBooks by course name.
	Repository interface {
		CreateGradeBook(course string, gb *GradeBook) error
		GetGradeBook(course string) (*GradeBook, error)
		// QueryAllCourses returns the course names sorted alphabetically.
		QueryAllCourses() []string
		DeleteGradeBook(course string) error
	}

	Service struct {
		repo Repository
		log  core.Logger
		conf *core.Config
	}
)

func NewService(repo Repository, log core.Logger, conf *core.Config) (*Service, error) {
	if err := vala.BeginValidation().Validate(
		vala.IsNotNil(repo, "repo"),
		vala.IsNotNil(log, "log"),
		vala.IsNotNil(conf, "conf"),
	).Check(); err != nil {
		return nil, errors.Wrap(core.ErrInvalidArgument, err.Error())
	}
	return &Service{repo: repo, log: log, conf: conf}, nil
}

// Open creates the GradeBook of a new course.
// The configured passing score is used when `passingScore` is not set.
func (svc *Service) Open(course string, passingScore null.Float64) (*GradeBook, error) {
	course = core.CleanString(course)
	if err := validateName("course", course); err != nil {
		return nil, err
	}
	score := svc.conf.PassingScore
	if passingScore.Valid {
		score = passingScore.Float64
	}

	gb, err := New(score)
	if err != nil {
		return nil, err
	}
	if err = svc.repo.CreateGradeBook(course, gb); err != nil {
		return nil, err
	}
	svc.log.Info("course opened", map[string]interface{}{
		"course":        course,
		"gradebook_id":  gb.ID().String(),
		"passing_score": score,
	})
	return gb, nil
}

// Course returns the GradeBook of an existing course.
func (svc *Service) Course(course string) (*GradeBook, error) {
	course = core.CleanString(course)
	gb, err := svc.repo.GetGradeBook(course)
	if errors.Is(err, core.ErrNotFound) {
		return nil, core.NewNotFoundError("course", course, svc.repo.QueryAllCourses())
	}
	return gb, err
}

// Close drops a course and every score recorded in it.
func (svc *Service) Close(course string) error {
	course = core.CleanString(course)
	gb, err := svc.Course(course)
	if err != nil {
		return err
	}
	if gb.IsLocked() {
		return errors.Wrapf(core.ErrLocked, "cannot close course %q", course)
	}
	if err = svc.repo.DeleteGradeBook(course); err != nil {
		return err
	}
	svc.log.Info("course closed", map[string]interface{}{"course": course, "gradebook_id": gb.ID().String()})
	return nil
}

func (svc *Service) Courses() []string {
	return svc.repo.QueryAllCourses()
}

// Report summarises every student of a course.
func (svc *Service) Report(course string) (Report, error) {
	gb, err := svc.Course(course)
	if err != nil {
		return Report{}, err
	}
	return BuildReport(core.CleanString(course), gb)
}

// BuildReport summarises every student of `gb`.
func BuildReport(course string, gb *GradeBook) (Report, error) {
	rpt := Report{
		Course:       course,
		PassingScore: gb.PassingScore(),
		Locked:       gb.IsLocked(),
		Students:     make([]StudentReport, 0, gb.Len()),
		ClassAverage: gb.ClassAverage(),
		TopStudent:   gb.TopStudent(),
	}
	for _, name := range gb.Students() {
		sr, err := buildStudentReport(gb, name)
		if err != nil {
			return Report{}, errors.Wrapf(err, "reporting on %q", name)
		}
		rpt.Students = append(rpt.Students, sr)
	}
	return rpt, nil
}

func buildStudentReport(gb *GradeBook, name string) (sr StudentReport, err error) {
	sr.Name = name
	if sr.Scores, err = gb.Scores(name); err != nil {
		return
	}
	if sr.Average, err = gb.StudentAverage(name); err != nil {
		return
	}
	if sr.Letter, err = gb.LetterGrade(name); err != nil {
		return
	}
	sr.Passing, err = gb.HasPassingGrade(name)
	return
}
