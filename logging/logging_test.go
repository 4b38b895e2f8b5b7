package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/partitionlab/gohypart/logging"
)

func TestStdLogger_LevelGating(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewStdLogger(&buf, logging.LevelWarn)
	l.Debugf("hidden %d", 1)
	l.Infof("hidden %d", 2)
	l.Warnf("shown %d", 3)

	out := buf.String()
	require.False(t, strings.Contains(out, "hidden"))
	require.True(t, strings.Contains(out, "shown 3"))
}

func TestDiscard_NeverPanics(t *testing.T) {
	logging.Discard.Debugf("x")
	logging.Discard.Infof("x")
	logging.Discard.Warnf("x")
}

func TestParseLevel(t *testing.T) {
	lvl, ok := logging.ParseLevel("warn")
	require.True(t, ok)
	require.Equal(t, logging.LevelWarn, lvl)

	_, ok = logging.ParseLevel("bogus")
	require.False(t, ok)
}
