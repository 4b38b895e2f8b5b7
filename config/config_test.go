package config_test

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/partitionlab/gohypart/config"
	"github.com/partitionlab/gohypart/flow"
)

func TestNewFlagSet_ParsesRequiredFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c := config.NewFlagSet(fs)
	err := fs.Parse([]string{"-h", "graph.hgr", "-k", "4", "-e", "0.05", "-o", "km1", "-m", "direct"})
	require.NoError(t, err)
	require.Equal(t, "graph.hgr", c.Hypergraph)
	require.Equal(t, 4, c.Blocks)
	require.Equal(t, 0.05, c.Epsilon)
	require.Equal(t, "km1", c.Objective)
	require.NoError(t, c.Validate())
}

func TestValidate_RejectsMissingHypergraph(t *testing.T) {
	c := config.Default()
	require.Error(t, c.Validate())
}

func TestValidate_RejectsVCyclesWithRecursiveMode(t *testing.T) {
	c := config.Default()
	c.Hypergraph = "graph.hgr"
	c.ModeStr = "recursive"
	c.VCycles = 2
	require.Error(t, c.Validate())
}

func TestValidate_RejectsUnknownObjective(t *testing.T) {
	c := config.Default()
	c.Hypergraph = "graph.hgr"
	c.Objective = "bogus"
	require.Error(t, c.Validate())
}

func TestApplyPreset_OverridesDefaults(t *testing.T) {
	c := config.Default()
	kv, err := loadPresetString(t, "k = 8\nepsilon = 0.1\nr-flow-algorithm = edmonds_karp\n")
	require.NoError(t, err)
	require.NoError(t, c.ApplyPreset(kv))
	require.Equal(t, 8, c.Blocks)
	require.Equal(t, 0.1, c.Epsilon)
	require.Equal(t, "edmonds_karp", c.RFlowAlgorithm)
}

func TestApplyPreset_RejectsUnknownKey(t *testing.T) {
	c := config.Default()
	kv, err := loadPresetString(t, "not-a-real-flag = 1\n")
	require.NoError(t, err)
	require.Error(t, c.ApplyPreset(kv))
}

func TestRatingConfig_UnknownScoreRejected(t *testing.T) {
	c := config.Default()
	c.CRatingScore = "bogus"
	_, err := c.RatingConfig()
	require.Error(t, err)
}

func TestFlowConfig_ResolvesSolverKind(t *testing.T) {
	c := config.Default()
	c.RFlowAlgorithm = "push_relabel"
	fc, err := c.FlowConfig()
	require.NoError(t, err)
	require.Equal(t, flow.PushRelabelKind, fc.Solver)
	require.Equal(t, float64(c.RFlowAlpha), fc.Alpha)
}

// loadPresetString writes s to a temp file and loads it through
// LoadPreset, so the test exercises the real file-reading path.
func loadPresetString(t *testing.T, s string) (map[string]string, error) {
	t.Helper()
	tmp := t.TempDir() + "/preset.ini"
	require.NoError(t, os.WriteFile(tmp, []byte(s), 0o644))
	return config.LoadPreset(tmp)
}
