package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadPreset reads a `key = value` INI-shaped preset file, an INI that
// mirrors the flag names, one setting per line, blank lines
// and lines starting with `#` or `;` ignored, `[section]` headers
// tolerated but not otherwise meaningful (KaHyPar's own presets use a
// single flat section).
func LoadPreset(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config.LoadPreset: %w", err)
	}
	defer f.Close()
	return parsePreset(f)
}

func parsePreset(r io.Reader) (map[string]string, error) {
	kv := map[string]string{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			continue
		}
		idx := strings.Index(line, "=")
		if idx < 0 {
			return nil, invalidf("preset line %d: expected key = value, got %q", lineNo, line)
		}
		key := strings.TrimSpace(line[:idx])
		val := strings.TrimSpace(line[idx+1:])
		kv[key] = val
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config.LoadPreset: %w", err)
	}
	return kv, nil
}

// ApplyPreset overrides c's fields with whatever kv supplies, using the
// exact flag names NewFlagSet registers, so a preset file and explicit
// CLI flags share one vocabulary. Unknown keys are rejected rather than
// silently ignored, since a typo'd preset key should not just be a
// silent no-op.
func (c *Config) ApplyPreset(kv map[string]string) error {
	for key, val := range kv {
		if err := c.setByFlagName(key, val); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) setByFlagName(key, val string) error {
	switch key {
	case "hypergraph", "h":
		c.Hypergraph = val
	case "blocks", "k":
		return setInt(&c.Blocks, key, val)
	case "epsilon", "e":
		return setFloat(&c.Epsilon, key, val)
	case "objective", "o":
		c.Objective = val
	case "mode", "m":
		c.ModeStr = val
	case "seed":
		return setInt64(&c.Seed, key, val)
	case "vcycles":
		return setInt(&c.VCycles, key, val)
	case "cmaxnet":
		return setInt(&c.CMaxNet, key, val)
	case "c-type":
		c.CType = val
	case "c-s":
		return setFloat(&c.CS, key, val)
	case "c-t":
		return setFloat(&c.CT, key, val)
	case "c-rating-score":
		c.CRatingScore = val
	case "c-rating-use-communities":
		return setBool(&c.CRatingUseCommunities, key, val)
	case "c-rating-heavy_node_penalty":
		c.CRatingHeavyNodePenalty = val
	case "c-rating-acceptance-criterion":
		c.CRatingAcceptanceCriterion = val
	case "c-fixed-vertex-acceptance-criterion":
		c.CFixedVertexAcceptance = val
	case "i-type":
		c.IType = val
	case "i-s":
		return setFloat(&c.IS, key, val)
	case "i-t":
		return setFloat(&c.IT, key, val)
	case "i-rating-score":
		c.IRatingScore = val
	case "i-rating-use-communities":
		return setBool(&c.IRatingUseCommunities, key, val)
	case "i-rating-heavy_node_penalty":
		c.IRatingHeavyNodePenalty = val
	case "i-rating-acceptance-criterion":
		c.IRatingAcceptanceCriterion = val
	case "i-fixed-vertex-acceptance-criterion":
		c.IFixedVertexAcceptance = val
	case "i-runs":
		return setInt(&c.IRuns, key, val)
	case "r-type":
		c.RType = val
	case "r-runs":
		return setInt(&c.RRuns, key, val)
	case "r-fm-stop":
		c.RFMStop = val
	case "r-fm-stop-i":
		return setInt(&c.RFMStopI, key, val)
	case "r-fm-stop-alpha":
		return setFloat(&c.RFMStopAlpha, key, val)
	case "r-flow-algorithm":
		c.RFlowAlgorithm = val
	case "r-flow-network":
		c.RFlowNetwork = val
	case "r-flow-execution-policy":
		c.RFlowExecutionPolicy = val
	case "r-flow-alpha":
		return setFloat(&c.RFlowAlpha, key, val)
	case "r-flow-beta":
		return setInt(&c.RFlowBeta, key, val)
	case "r-flow-use-most-balanced-minimum-cut":
		return setBool(&c.RFlowUseMostBalancedMinimumCut, key, val)
	case "r-flow-use-adaptive-alpha-stopping-rule":
		return setBool(&c.RFlowUseAdaptiveAlphaStopping, key, val)
	case "r-flow-ignore-small-hyperedge-cut":
		return setBool(&c.RFlowIgnoreSmallHyperedgeCut, key, val)
	default:
		return invalidf("unknown preset key %q", key)
	}
	return nil
}

func setInt(dst *int, key, val string) error {
	n, err := strconv.Atoi(val)
	if err != nil {
		return invalidf("preset key %q: not an integer: %q", key, val)
	}
	*dst = n
	return nil
}

func setInt64(dst *int64, key, val string) error {
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return invalidf("preset key %q: not an integer: %q", key, val)
	}
	*dst = n
	return nil
}

func setFloat(dst *float64, key, val string) error {
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return invalidf("preset key %q: not a float: %q", key, val)
	}
	*dst = f
	return nil
}

func setBool(dst *bool, key, val string) error {
	b, err := strconv.ParseBool(val)
	if err != nil {
		return invalidf("preset key %q: not a bool: %q", key, val)
	}
	*dst = b
	return nil
}
