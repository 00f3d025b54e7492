package core

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds the admin client settings.
// Values come from (highest priority first): env vars prefixed with ENV, config/.env.<env>, config/admin.yaml, defaults.
type Config struct {
	AppName  string
	Env      string
	Build    string
	Debug    bool
	TestMode bool
	LogLevel string

	BaseURL        string
	CoursePagePath string
	CourseEditPath string
	StudentsPath   string
	RequestTimeout time.Duration // 0: no timeout

	RollbarToken string
}

// NewConfig loads the Config from configDir (defaults to "config" in the working directory).
func NewConfig(configDir ...string) (*Config, error) {
	dir := "config"
	if len(configDir) > 0 && configDir[0] != "" {
		dir = configDir[0]
	}
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("appName", "Course Admin")
	conf.SetDefault("debug", false)
	conf.SetDefault("testMode", false)
	conf.SetDefault("build", "dev")
	conf.SetDefault("logLevel", "info")
	conf.SetDefault("baseURL", "http://localhost:5000")
	conf.SetDefault("coursePagePath", "/edit_course")
	conf.SetDefault("courseEditPath", "/edit_course")
	conf.SetDefault("studentsPath", "/api/students")
	conf.SetDefault("requestTimeout", time.Duration(0))
	conf.SetDefault("rollbarToken", "")

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
		conf.SetDefault("debug", true)
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(dir, ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "stat %s", dotEnvPath)
	}

	conf.SetConfigName("admin")
	conf.SetConfigType("yaml")
	conf.AddConfigPath(dir)
	if err := conf.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "reading config file")
		}
	}
	conf.AutomaticEnv()

	return &Config{
		AppName:        conf.GetString("appName"),
		Env:            env,
		Build:          conf.GetString("build"),
		Debug:          conf.GetBool("debug"),
		TestMode:       conf.GetBool("testMode"),
		LogLevel:       conf.GetString("logLevel"),
		BaseURL:        strings.TrimRight(conf.GetString("baseURL"), "/"),
		CoursePagePath: conf.GetString("coursePagePath"),
		CourseEditPath: conf.GetString("courseEditPath"),
		StudentsPath:   conf.GetString("studentsPath"),
		RequestTimeout: conf.GetDuration("requestTimeout"),
		RollbarToken:   conf.GetString("rollbarToken"),
	}, nil
}
