package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/superheroes/core/events"
	corelogger "github.com/kilianp07/superheroes/core/logger"
)

func TestZerologLoggerMethods(t *testing.T) {
	assert.NoError(t, os.Setenv("APP_ENV", "dev"))
	defer func() { assert.NoError(t, os.Unsetenv("APP_ENV")) }()
	l := NewZerologLogger("test")
	require.NotNil(t, l)
	l.Debugf("debug %d", 1)
	l.Debugw("debug", map[string]any{"k": 1})
	l.Infof("info %s", "test")
	l.Warnf("warn")
	l.Errorf("error")
}

func TestSetLevelFiltersDebug(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.DebugLevel)

	var buf bytes.Buffer
	l := NewWithWriter(&buf, "hero")

	SetLevel(corelogger.LevelInfo)
	l.Debugf("hidden")
	assert.Empty(t, buf.String())

	SetLevel(corelogger.LevelDebug)
	l.Debugf("shown")
	assert.Contains(t, buf.String(), `"message":"shown"`)
	assert.Contains(t, buf.String(), `"component":"hero"`)
}

func TestNotifierLogsFields(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.DebugLevel)
	SetLevel(corelogger.LevelDebug)

	var buf bytes.Buffer
	n := Notifier(NewWithWriter(&buf, "roster"))
	n.Notify(events.New("Wolverine", events.ActionUsePower, events.KindPowerUsed, "claws", 95, 5))

	line := strings.TrimSpace(buf.String())
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &rec))
	assert.Equal(t, "hero action", rec["message"])
	assert.Equal(t, "Wolverine", rec["hero"])
	assert.Equal(t, "use_power", rec["action"])
	assert.Equal(t, "power_used", rec["kind"])
	assert.EqualValues(t, 95, rec["energy"])
	assert.EqualValues(t, 5, rec["cost"])
}
