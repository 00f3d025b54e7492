package core

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func setEnv(t *testing.T, key, val string) {
	t.Helper()
	prev, had := os.LookupEnv(key)
	if err := os.Setenv(key, val); err != nil {
		t.Fatalf("os.Setenv(%s) failed: %v", key, err)
	}
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, prev)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	prev, had := os.LookupEnv(key)
	_ = os.Unsetenv(key)
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, prev)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

func TestNewConfig_defaults(t *testing.T) {
	setEnv(t, "ENV", "QA")

	conf, err := NewConfig(t.TempDir())
	if err != nil {
		t.Fatalf("NewConfig() failed: %v", err)
	}
	assert.Equal(t, "QA", conf.Env)
	assert.Equal(t, "http://localhost:5000", conf.BaseURL)
	assert.Equal(t, "/edit_course", conf.CoursePagePath)
	assert.Equal(t, "/edit_course", conf.CourseEditPath)
	assert.Equal(t, "/api/students", conf.StudentsPath)
	assert.Equal(t, time.Duration(0), conf.RequestTimeout)
	assert.False(t, conf.Debug)
	assert.False(t, conf.TestMode)
}

func TestNewConfig_sources(t *testing.T) {
	dir := t.TempDir()
	setEnv(t, "ENV", "test")
	unsetEnv(t, "TEST_BASEURL") // set by the .env file

	yaml := "appName: Registrar\nstudentsPath: /v2/students\nrequestTimeout: 3s\n"
	if err := ioutil.WriteFile(filepath.Join(dir, "admin.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	dotEnv := "TEST_BASEURL=http://school.test:8080/\nTEST_STUDENTSPATH=/v3/students\n"
	if err := ioutil.WriteFile(filepath.Join(dir, ".env.test"), []byte(dotEnv), 0o600); err != nil {
		t.Fatal(err)
	}
	setEnv(t, "TEST_STUDENTSPATH", "/v4/students") // real env wins over .env

	conf, err := NewConfig(dir)
	if err != nil {
		t.Fatalf("NewConfig() failed: %v", err)
	}
	assert.Equal(t, "TEST", conf.Env)
	assert.True(t, conf.TestMode)
	assert.Equal(t, "Registrar", conf.AppName)
	assert.Equal(t, "http://school.test:8080", conf.BaseURL)
	assert.Equal(t, "/v4/students", conf.StudentsPath)
	assert.Equal(t, 3*time.Second, conf.RequestTimeout)
}
