package core

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	AppName       string
	Env           string // DEV (local; default), TEST, QA, PROD
	Build         string
	Host          string
	Debug         bool
	TestMode      bool
	LogLevel      string
	PassingScore  float64
	DefaultCourse string
	RollbarToken  string
}

// LoadConfig reads the configuration from the environment.
// `dir` is searched for an optional ".env.<env>" file; env variables are prefixed with the env name (eg: DEV_PASSINGSCORE).
func LoadConfig(dir string) (*Config, error) {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("appName", "GradeBook")
	v.SetDefault("build", "dev")
	v.SetDefault("host", "localhost")
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("logLevel", "info")
	v.SetDefault("passingScore", 60.0)
	v.SetDefault("defaultCourse", "default")
	v.SetDefault("rollbarToken", "")

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	case "PROD":
		v.SetDefault("debug", false)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	if dir != "" {
		dotEnvPath := filepath.Join(dir, ".env."+strings.ToLower(env))
		if _, err := os.Stat(dotEnvPath); err == nil {
			if err := godotenv.Load(dotEnvPath); err != nil {
				return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "checking %s", dotEnvPath)
		}
	}
	v.AutomaticEnv()

	return &Config{
		AppName:       v.GetString("appName"),
		Env:           env,
		Build:         v.GetString("build"),
		Host:          v.GetString("host"),
		Debug:         v.GetBool("debug"),
		TestMode:      v.GetBool("testMode"),
		LogLevel:      strings.ToLower(v.GetString("logLevel")),
		PassingScore:  v.GetFloat64("passingScore"),
		DefaultCourse: CleanString(v.GetString("defaultCourse")),
		RollbarToken:  v.GetString("rollbarToken"),
	}, nil
}
