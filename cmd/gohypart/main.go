// Command gohypart is the CLI entry point: it reads an hMetis-compatible
// hypergraph, runs the multilevel partitioner, and writes the
// resulting block assignment, one line per vertex.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/partitionlab/gohypart/config"
	"github.com/partitionlab/gohypart/hgraph"
	"github.com/partitionlab/gohypart/hmetis"
	"github.com/partitionlab/gohypart/logging"
	"github.com/partitionlab/gohypart/partition"
)

// Exit codes: 0 on success, non-zero on validation failure (missing
// file, k<2, infeasible epsilon).
const (
	exitOK            = 0
	exitInvalidConfig = 1
	exitInvalidInput  = 2
	exitInfeasible    = 3
	exitInternal      = 4
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("gohypart", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fixedPath := fs.String("fixed", "", "path to a fixed-vertex file")
	outputPath := fs.String("output", "", "path to the output partition file")
	logLevel := fs.String("log-level", "warn", "debug | info | warn | silent")
	cfg := config.NewFlagSet(fs)

	if err := fs.Parse(args); err != nil {
		return exitInvalidConfig
	}

	if cfg.Preset != "" {
		kv, err := config.LoadPreset(cfg.Preset)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitInvalidConfig
		}
		if err := cfg.ApplyPreset(kv); err != nil {
			fmt.Fprintln(stderr, err)
			return exitInvalidConfig
		}
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitInvalidConfig
	}

	level, ok := logging.ParseLevel(*logLevel)
	if !ok {
		fmt.Fprintf(stderr, "gohypart: unknown log-level %q\n", *logLevel)
		return exitInvalidConfig
	}
	logger := logging.NewStdLogger(stderr, level)

	h, err := loadHypergraph(cfg, *fixedPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitInvalidInput
	}

	pcfg, err := buildPartitionConfig(cfg, h.N(), logger)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitInvalidConfig
	}

	result, err := partition.Partition(h, pcfg)
	if err != nil {
		if errors.Is(err, partition.ErrInvalidConfig) {
			fmt.Fprintln(stderr, err)
			return exitInvalidConfig
		}
		fmt.Fprintln(stderr, err)
		return exitInternal
	}

	if !result.Feasible {
		fmt.Fprintf(stderr, "gohypart: infeasible: imbalance=%f exceeds epsilon=%f\n", result.Imbalance, cfg.Epsilon)
		logger.Warnf("writing best-effort partition despite infeasibility")
	}

	out := *outputPath
	if out == "" {
		out = hmetis.ResultFilename(cfg.Hypergraph, cfg.Blocks, cfg.Epsilon, cfg.Seed)
	}
	if err := writePartition(out, h); err != nil {
		fmt.Fprintln(stderr, err)
		return exitInternal
	}

	logger.Infof("objective=%d imbalance=%f cycles=%d output=%s", result.Objective, result.Imbalance, result.Cycles, out)

	if !result.Feasible {
		return exitInfeasible
	}
	return exitOK
}

func loadHypergraph(cfg *config.Config, fixedPath string) (*hgraph.Hypergraph, error) {
	f, err := os.Open(cfg.Hypergraph)
	if err != nil {
		return nil, fmt.Errorf("gohypart: %w", err)
	}
	defer f.Close()

	var opts []hgraph.Option
	if cfg.CMaxNet > 0 {
		opts = append(opts, hgraph.WithCMaxNet(int64(cfg.CMaxNet)))
	}

	h, err := hmetis.ReadHypergraph(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("gohypart: %w", err)
	}

	if fixedPath != "" {
		ff, err := os.Open(fixedPath)
		if err != nil {
			return nil, fmt.Errorf("gohypart: %w", err)
		}
		defer ff.Close()
		fixed, err := hmetis.ReadFixedVertices(ff, h.N())
		if err != nil {
			return nil, fmt.Errorf("gohypart: %w", err)
		}
		h, err = rebuildWithFixedVertices(h, fixed)
		if err != nil {
			return nil, err
		}
	}

	return h, nil
}

// rebuildWithFixedVertices re-creates h with fixed-vertex assignments,
// since hgraph.WithFixedVertices is a construction-time option and
// ReadHypergraph has already returned a built Hypergraph by the time
// the fixed-vertex file is read.
func rebuildWithFixedVertices(h *hgraph.Hypergraph, fixed []int32) (*hgraph.Hypergraph, error) {
	n := h.N()
	pins := make([][]int32, h.M())
	ew := make([]int64, h.M())
	vw := make([]int64, n)
	for e := int32(0); e < int32(h.M()); e++ {
		h.ForEachPin(e, func(v int32) { pins[e] = append(pins[e], v) })
		ew[e] = h.EdgeWeight(e)
	}
	for v := int32(0); v < int32(n); v++ {
		vw[v] = h.VertexWeight(v)
	}
	return hgraph.New(n, pins, ew, vw, hgraph.WithFixedVertices(fixed))
}

func buildPartitionConfig(cfg *config.Config, n int, logger logging.Logger) (partition.Config, error) {
	ratingCfg, err := cfg.RatingConfig()
	if err != nil {
		return partition.Config{}, err
	}
	fmCfg, err := cfg.FMConfig()
	if err != nil {
		return partition.Config{}, err
	}
	flowCfg, err := cfg.FlowConfig()
	if err != nil {
		return partition.Config{}, err
	}
	execPolicy, err := cfg.ExecutionPolicy(n)
	if err != nil {
		return partition.Config{}, err
	}

	mode := partition.Direct
	if cfg.ModeValue() == config.Recursive {
		mode = partition.Recursive
	}

	refiners := partition.FMAndFlow
	switch cfg.RType {
	case "fm":
		refiners = partition.FMOnly
	case "flow":
		refiners = partition.FlowOnly
	case "fm+flow":
		refiners = partition.FMAndFlow
	default:
		return partition.Config{}, fmt.Errorf("gohypart: unknown r-type %q", cfg.RType)
	}

	return partition.Config{
		K:          cfg.Blocks,
		Epsilon:    cfg.Epsilon,
		Objective:  cfg.ObjectiveValue(),
		Mode:       mode,
		Seed:       cfg.Seed,
		VCycles:    cfg.VCycles,
		Rating:     ratingCfg,
		Initial:    cfg.InitialConfig(),
		FM:         fmCfg,
		Flow:       flowCfg,
		ExecPolicy: execPolicy,
		Refiners:   refiners,
		Logger:     logger,
	}, nil
}

func writePartition(path string, h *hgraph.Hypergraph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gohypart: %w", err)
	}
	defer f.Close()

	part := make([]int32, h.N())
	for v := int32(0); v < int32(h.N()); v++ {
		part[v] = h.Part(v)
	}
	return hmetis.WritePartition(f, part)
}
