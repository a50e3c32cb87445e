package main

import (
	"flag"
	"log"
	"os"

	"github.com/volatiletech/null/v8"
	"golang.org/x/term"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/gradebook"
	"github.com/trezcool/gradebook/services/logger"
	"github.com/trezcool/gradebook/storage/database/inmem"
)

var isTerminalFunc = term.IsTerminal // mockable

func main() {
	flags := flag.NewFlagSet("gradebook", flag.ExitOnError)
	confDir := flags.String("config", "config", "Directory holding the optional .env.<env> file.")
	course := flags.String("course", "", "Course to open on start (defaults to the configured one).")
	_ = flags.Parse(os.Args[1:])

	std := log.New(os.Stderr, "GRADEBOOK : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.LoadConfig(*confDir)
	if err != nil {
		std.Fatalf("loading config: %+v", err)
	}

	stdLogger := logsvc.NewStdLogger(std, conf.LogLevel)
	rbLogger := logsvc.NewRollbarLogger(stdLogger, conf)
	defer rbLogger.Close()

	// set up DB & repos
	db, err := inmemdb.Open()
	if err != nil {
		rbLogger.Fatal("opening database", err)
	}
	svc, err := gradebook.NewService(inmemdb.NewGradeBookRepository(db), rbLogger, conf)
	if err != nil {
		rbLogger.Fatal("starting service", err)
	}

	// open the starting course
	if *course == "" {
		*course = conf.DefaultCourse
	}
	if _, err = svc.Open(*course, null.Float64{}); err != nil {
		rbLogger.Fatal("opening course", err, map[string]interface{}{"course": *course})
	}

	// start shell
	cli := commandLine{
		svc:    svc,
		log:    rbLogger,
		out:    os.Stdout,
		course: core.CleanString(*course),
	}
	if err = cli.run(os.Stdin, isTerminalFunc(int(os.Stdin.Fd()))); err != nil {
		rbLogger.Error("reading commands", err)
		rbLogger.Close()
		os.Exit(1)
	}
}
