package logscope_test

import (
	"github.com/apperia-de/logscope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestLevelString(t *testing.T) {
	for _, test := range []struct {
		in   logscope.Level
		want string
	}{
		{logscope.LevelDebug, "debug"},
		{logscope.LevelInfo, "info"},
		{logscope.LevelWarn, "warn"},
		{logscope.LevelError, "error"},
		{logscope.LevelNone, "none"},
		{logscope.Level(99), "Level(99)"},
		{logscope.Level(-1), "Level(-1)"},
	} {
		assert.Equal(t, test.want, test.in.String(), test.in)
	}
}

func TestParseLevel(t *testing.T) {
	for _, test := range []struct {
		in   string
		want logscope.Level
		err  bool
	}{
		{"debug", logscope.LevelDebug, false},
		{"DEBUG", logscope.LevelDebug, false},
		{"info", logscope.LevelInfo, false},
		{"warn", logscope.LevelWarn, false},
		{"warning", logscope.LevelWarn, false},
		{"error", logscope.LevelError, false},
		{"err", logscope.LevelError, false},
		{"Error", logscope.LevelError, false},
		{"none", logscope.LevelNone, false},
		{"off", logscope.LevelNone, false},
		{"potato", 0, true},
		{"", 0, true},
	} {
		got, err := logscope.ParseLevel(test.in)
		if test.err {
			require.Error(t, err, test.in)
			continue
		}
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, got, test.in)
	}
}

func TestLevelOrdering(t *testing.T) {
	levels := []logscope.Level{
		logscope.LevelDebug,
		logscope.LevelInfo,
		logscope.LevelWarn,
		logscope.LevelError,
		logscope.LevelNone,
	}
	for i := 0; i < len(levels)-1; i++ {
		assert.True(t, levels[i] < levels[i+1], "%v must order below %v", levels[i], levels[i+1])
	}
}

func TestParseLevelRoundTrip(t *testing.T) {
	for _, lvl := range []logscope.Level{
		logscope.LevelDebug,
		logscope.LevelInfo,
		logscope.LevelWarn,
		logscope.LevelError,
		logscope.LevelNone,
	} {
		got, err := logscope.ParseLevel(lvl.String())
		require.NoError(t, err, lvl)
		assert.Equal(t, lvl, got)
	}
}
