package logsvc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/courseadmin/core"
)

func TestConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(NewStdLogger("admin", &buf, "info"), &core.Config{})

	logger.Debug("hidden")
	logger.Info("course rejected", map[string]interface{}{"error": "exists", "course_id": "C1"})
	logger.Error("request failed", errors.New("boom"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "course rejected course_id=C1 error=exists")
	assert.Contains(t, out, `request failed error="boom"`)
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestNewStdLogger_unknownLevel(t *testing.T) {
	std := NewStdLogger("admin", &bytes.Buffer{}, "loud")
	assert.Equal(t, levels["info"], std.Level())
}
