package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	pkgerrors "github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/gradebook"
)

var (
	errHelp = errors.New("help provided")
	errQuit = core.NewShutdownError("quit")
)

type commandLine struct {
	svc    *gradebook.Service
	log    core.Logger
	out    io.Writer
	course string // current course
}

func (cli *commandLine) printUsage() {
	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Usage:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %s\t%s\n", c.usage, c.help)
	}
	_ = w.Flush()
}

func (cli *commandLine) printf(format string, a ...interface{}) {
	fmt.Fprintf(cli.out, format, a...)
}

// run executes one command per line of `in` until EOF or "quit".
func (cli *commandLine) run(in io.Reader, interactive bool) error {
	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			cli.printf("%s> ", cli.course)
		}
		if !scanner.Scan() {
			break
		}
		line := core.CleanString(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := cli.exec(line); err != nil {
			if core.IsShutdown(err) {
				return nil
			}
			if err != errHelp {
				cli.printf("error: %v\n", err)
				cli.log.Warn("command failed", err, map[string]interface{}{"command": line, "course": cli.course})
			}
		}
	}
	return scanner.Err()
}

func (cli *commandLine) exec(line string) error {
	args := strings.Fields(line)
	cmd, ok := commandsByName[args[0]]
	if !ok {
		cli.printUsage()
		return errHelp
	}
	if len(args)-1 < cmd.minArgs || len(args)-1 > cmd.maxArgs {
		cli.printf("usage: %s\n", cmd.usage)
		return errHelp
	}
	if cmd.global {
		return cmd.fn(cli, nil, args[1:])
	}
	gb, err := cli.svc.Course(cli.course)
	if err != nil {
		return err
	}
	return cmd.fn(cli, gb, args[1:])
}

type command struct {
	name             string
	usage            string
	help             string
	minArgs, maxArgs int
	global           bool // does not need the current course
	fn               func(cli *commandLine, gb *gradebook.GradeBook, args []string) error
}

var (
	commands       []command
	commandsByName map[string]command
)

func init() {
	commands = []command{
		{name: "course", usage: "course NAME [PASSING]", help: "switch to a course, opening it if needed", minArgs: 1, maxArgs: 2, global: true, fn: (*commandLine).useCourse},
		{name: "courses", usage: "courses", help: "list courses", global: true, fn: (*commandLine).listCourses},
		{name: "drop-course", usage: "drop-course NAME", help: "close a course and drop its scores", minArgs: 1, maxArgs: 1, global: true, fn: (*commandLine).dropCourse},
		{name: "add", usage: "add NAME", help: "add a student", minArgs: 1, maxArgs: 1, fn: addStudent},
		{name: "remove", usage: "remove NAME", help: "remove a student and their scores", minArgs: 1, maxArgs: 1, fn: removeStudent},
		{name: "has", usage: "has NAME", help: "check a student exists", minArgs: 1, maxArgs: 1, fn: hasStudent},
		{name: "count", usage: "count", help: "number of students", fn: countStudents},
		{name: "set", usage: "set NAME ASSIGNMENT SCORE", help: "set an assignment score", minArgs: 3, maxArgs: 3, fn: setScore},
		{name: "get", usage: "get NAME ASSIGNMENT [DEFAULT]", help: "get an assignment score", minArgs: 2, maxArgs: 3, fn: getScore},
		{name: "clear", usage: "clear NAME ASSIGNMENT", help: "remove an assignment score", minArgs: 2, maxArgs: 2, fn: clearScore},
		{name: "avg", usage: "avg NAME", help: "student average", minArgs: 1, maxArgs: 1, fn: studentAverage},
		{name: "class", usage: "class", help: "class average", fn: classAverage},
		{name: "grade", usage: "grade NAME", help: "student letter grade", minArgs: 1, maxArgs: 1, fn: letterGrade},
		{name: "passing", usage: "passing NAME", help: "does the student pass", minArgs: 1, maxArgs: 1, fn: passingGrade},
		{name: "top", usage: "top", help: "student with the highest average", fn: topStudent},
		{name: "drop-lowest", usage: "drop-lowest NAME", help: "drop the student's lowest score", minArgs: 1, maxArgs: 1, fn: dropLowest},
		{name: "curve", usage: "curve NAME POINTS", help: "add points to every score of the student", minArgs: 2, maxArgs: 2, fn: curveStudent},
		{name: "lock", usage: "lock", help: "prevent modifications", fn: lock},
		{name: "unlock", usage: "unlock", help: "allow modifications", fn: unlock},
		{name: "report", usage: "report [json]", help: "summarise the course", maxArgs: 1, fn: (*commandLine).report},
		{name: "help", usage: "help", help: "show this message", global: true, fn: func(cli *commandLine, _ *gradebook.GradeBook, _ []string) error {
			cli.printUsage()
			return nil
		}},
		{name: "quit", usage: "quit", help: "exit", global: true, fn: func(*commandLine, *gradebook.GradeBook, []string) error { return errQuit }},
	}
	commandsByName = make(map[string]command, len(commands))
	for _, c := range commands {
		commandsByName[c.name] = c
	}
}

func parseNumber(field, s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, pkgerrors.Wrapf(core.ErrInvalidArgument, "%s %q must be numeric", field, s)
	}
	return f, nil
}

func fmtFloat(f null.Float64) string {
	if !f.Valid {
		return "none"
	}
	return strconv.FormatFloat(f.Float64, 'f', -1, 64)
}

func fmtString(s null.String) string {
	if !s.Valid {
		return "none"
	}
	return s.String
}

func fmtBool(b null.Bool) string {
	if !b.Valid {
		return "none"
	}
	return strconv.FormatBool(b.Bool)
}

// Courses

func (cli *commandLine) useCourse(_ *gradebook.GradeBook, args []string) error {
	name := core.CleanString(args[0])
	if _, err := cli.svc.Course(name); err == nil {
		if len(args) > 1 {
			return pkgerrors.Wrapf(core.ErrDuplicate, "course %q (passing score is fixed once opened)", name)
		}
		cli.course = name
		return nil
	} else if !errors.Is(err, core.ErrNotFound) {
		return err
	}

	var passing null.Float64
	if len(args) > 1 {
		score, err := parseNumber("passing score", args[1])
		if err != nil {
			return err
		}
		passing = null.Float64From(score)
	}
	gb, err := cli.svc.Open(name, passing)
	if err != nil {
		return err
	}
	cli.course = name
	cli.printf("opened %s (passing score %s)\n", name, fmtFloat(null.Float64From(gb.PassingScore())))
	return nil
}

func (cli *commandLine) listCourses(_ *gradebook.GradeBook, _ []string) error {
	for _, c := range cli.svc.Courses() {
		marker := " "
		if c == cli.course {
			marker = "*"
		}
		cli.printf("%s %s\n", marker, c)
	}
	return nil
}

func (cli *commandLine) dropCourse(_ *gradebook.GradeBook, args []string) error {
	name := core.CleanString(args[0])
	if err := cli.svc.Close(name); err != nil {
		return err
	}
	if name == cli.course {
		cli.course = ""
	}
	return nil
}

// Students

func addStudent(_ *commandLine, gb *gradebook.GradeBook, args []string) error {
	return gb.AddStudent(args[0])
}

func removeStudent(_ *commandLine, gb *gradebook.GradeBook, args []string) error {
	return gb.RemoveStudent(args[0])
}

func hasStudent(cli *commandLine, gb *gradebook.GradeBook, args []string) error {
	cli.printf("%t\n", gb.HasStudent(args[0]))
	return nil
}

func countStudents(cli *commandLine, gb *gradebook.GradeBook, _ []string) error {
	cli.printf("%d\n", gb.Len())
	return nil
}

// Scores

func setScore(_ *commandLine, gb *gradebook.GradeBook, args []string) error {
	score, err := parseNumber("score", args[2])
	if err != nil {
		return err
	}
	return gb.SetScore(args[0], args[1], score)
}

func getScore(cli *commandLine, gb *gradebook.GradeBook, args []string) error {
	var def null.Float64
	if len(args) > 2 {
		d, err := parseNumber("default", args[2])
		if err != nil {
			return err
		}
		def = null.Float64From(d)
	}
	score, err := gb.GetScore(args[0], args[1], def)
	if err != nil {
		return err
	}
	cli.printf("%s\n", fmtFloat(score))
	return nil
}

func clearScore(cli *commandLine, gb *gradebook.GradeBook, args []string) error {
	removed, err := gb.ClearScore(args[0], args[1])
	if err != nil {
		return err
	}
	cli.printf("%t\n", removed)
	return nil
}

// Calculations

func studentAverage(cli *commandLine, gb *gradebook.GradeBook, args []string) error {
	avg, err := gb.StudentAverage(args[0])
	if err != nil {
		return err
	}
	cli.printf("%s\n", fmtFloat(avg))
	return nil
}

func classAverage(cli *commandLine, gb *gradebook.GradeBook, _ []string) error {
	cli.printf("%s\n", fmtFloat(gb.ClassAverage()))
	return nil
}

func letterGrade(cli *commandLine, gb *gradebook.GradeBook, args []string) error {
	letter, err := gb.LetterGrade(args[0])
	if err != nil {
		return err
	}
	cli.printf("%s\n", fmtString(letter))
	return nil
}

func passingGrade(cli *commandLine, gb *gradebook.GradeBook, args []string) error {
	passing, err := gb.HasPassingGrade(args[0])
	if err != nil {
		return err
	}
	cli.printf("%s\n", fmtBool(passing))
	return nil
}

func topStudent(cli *commandLine, gb *gradebook.GradeBook, _ []string) error {
	cli.printf("%s\n", fmtString(gb.TopStudent()))
	return nil
}

func dropLowest(cli *commandLine, gb *gradebook.GradeBook, args []string) error {
	dropped, err := gb.DropLowestScore(args[0])
	if err != nil {
		return err
	}
	cli.printf("%t\n", dropped)
	return nil
}

func curveStudent(_ *commandLine, gb *gradebook.GradeBook, args []string) error {
	points, err := parseNumber("points", args[1])
	if err != nil {
		return err
	}
	return gb.CurveStudent(args[0], points)
}

func lock(_ *commandLine, gb *gradebook.GradeBook, _ []string) error {
	gb.Lock()
	return nil
}

func unlock(_ *commandLine, gb *gradebook.GradeBook, _ []string) error {
	gb.Unlock()
	return nil
}

func (cli *commandLine) report(_ *gradebook.GradeBook, args []string) error {
	rpt, err := cli.svc.Report(cli.course)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		if args[0] != "json" {
			cli.printf("usage: report [json]\n")
			return errHelp
		}
		data, err := json.MarshalIndent(rpt, "", "  ")
		if err != nil {
			return pkgerrors.Wrap(err, "encoding report")
		}
		cli.printf("%s\n", data)
		return nil
	}

	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "course %s\tpassing %s\tlocked %t\n", rpt.Course, fmtFloat(null.Float64From(rpt.PassingScore)), rpt.Locked)
	fmt.Fprintln(w, "STUDENT\tSCORES\tAVERAGE\tGRADE\tPASSING")
	for _, s := range rpt.Students {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", s.Name, len(s.Scores), fmtFloat(s.Average), fmtString(s.Letter), fmtBool(s.Passing))
	}
	fmt.Fprintf(w, "class average %s\ttop %s\n", fmtFloat(rpt.ClassAverage), fmtString(rpt.TopStudent))
	return w.Flush()
}
